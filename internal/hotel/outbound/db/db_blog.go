package db

import (
	"context"
	"fmt"

	"github.com/shandysiswandi/innkeep/internal/hotel/entity"
	"github.com/shandysiswandi/innkeep/internal/pkg/goerror"
)

func (s *DB) GetBlogList(ctx context.Context, filter entity.BlogListFilterData) (_ []entity.Blog, _ int64, err error) {
	ctx, span := s.startSpan(ctx, "GetBlogList")
	defer func() { s.endSpan(span, err) }()

	where := "deleted_at IS NULL"
	args := []any{}
	if filter.IsFilterBySearch {
		args = append(args, "%"+filter.Search+"%")
		where += " AND title ILIKE $1"
	}

	var count int64
	if err = s.conn.QueryRow(ctx, "SELECT COUNT(*) FROM blogs WHERE "+where, args...).Scan(&count); err != nil {
		return nil, 0, s.mapError(err)
	}

	args = append(args, filter.Size, filter.Page)
	query := fmt.Sprintf(`
		SELECT id, title, slug, COALESCE(cover_url, ''), author_id, created_at, updated_at
		FROM blogs
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	rows, err := s.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, s.mapError(err)
	}
	defer rows.Close()

	blogs := make([]entity.Blog, 0, filter.Size)
	for rows.Next() {
		var b entity.Blog
		if err = rows.Scan(&b.ID, &b.Title, &b.Slug, &b.CoverURL, &b.AuthorID,
			&b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, 0, s.mapError(err)
		}
		blogs = append(blogs, b)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, s.mapError(err)
	}

	return blogs, count, nil
}

func (s *DB) GetBlogByID(ctx context.Context, id int64) (_ *entity.Blog, err error) {
	ctx, span := s.startSpan(ctx, "GetBlogByID")
	defer func() { s.endSpan(span, err) }()

	query := `
		SELECT id, title, slug, body, COALESCE(cover_url, ''), author_id, created_at, updated_at
		FROM blogs
		WHERE id = $1 AND deleted_at IS NULL`

	var b entity.Blog
	err = s.conn.QueryRow(ctx, query, id).Scan(&b.ID, &b.Title, &b.Slug, &b.Body,
		&b.CoverURL, &b.AuthorID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &b, nil
}

func (s *DB) CreateBlog(ctx context.Context, blog entity.NewBlog) (err error) {
	ctx, span := s.startSpan(ctx, "CreateBlog")
	defer func() { s.endSpan(span, err) }()

	query := `
		INSERT INTO blogs (id, title, slug, body, author_id)
		VALUES ($1, $2, $3, $4, $5)`

	_, err = s.conn.Exec(ctx, query, blog.ID, blog.Title, blog.Slug, blog.Body, blog.AuthorID)
	return s.mapError(err)
}

func (s *DB) UpdateBlogCover(ctx context.Context, id int64, coverURL string) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateBlogCover")
	defer func() { s.endSpan(span, err) }()

	query := `
		UPDATE blogs
		SET cover_url = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`

	tag, err := s.conn.Exec(ctx, query, id, coverURL)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}

func (s *DB) MarkBlogDeleted(ctx context.Context, id, byID int64) (err error) {
	ctx, span := s.startSpan(ctx, "MarkBlogDeleted")
	defer func() { s.endSpan(span, err) }()

	query := `
		UPDATE blogs
		SET deleted_at = NOW(), deleted_by = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`

	tag, err := s.conn.Exec(ctx, query, id, byID)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}
