package db

import (
	"context"
	"fmt"

	"github.com/shandysiswandi/innkeep/internal/hotel/entity"
	"github.com/shandysiswandi/innkeep/internal/pkg/goerror"
)

func (s *DB) GetFeedbackList(ctx context.Context, filter entity.FeedbackListFilterData) (_ []entity.Feedback, _ int64, err error) {
	ctx, span := s.startSpan(ctx, "GetFeedbackList")
	defer func() { s.endSpan(span, err) }()

	where := "TRUE"
	args := []any{}
	if filter.IsFilterByStatus {
		args = append(args, filter.Statuses)
		where = "status = ANY($1)"
	}

	var count int64
	if err = s.conn.QueryRow(ctx, "SELECT COUNT(*) FROM feedback WHERE "+where, args...).Scan(&count); err != nil {
		return nil, 0, s.mapError(err)
	}

	args = append(args, filter.Size, filter.Page)
	query := fmt.Sprintf(`
		SELECT id, guest_name, COALESCE(email, ''), rating, comment, status, created_at
		FROM feedback
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	rows, err := s.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, s.mapError(err)
	}
	defer rows.Close()

	feedbacks := make([]entity.Feedback, 0, filter.Size)
	for rows.Next() {
		var f entity.Feedback
		if err = rows.Scan(&f.ID, &f.GuestName, &f.Email, &f.Rating, &f.Comment,
			&f.Status, &f.CreatedAt); err != nil {
			return nil, 0, s.mapError(err)
		}
		feedbacks = append(feedbacks, f)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, s.mapError(err)
	}

	return feedbacks, count, nil
}

func (s *DB) CreateFeedback(ctx context.Context, fb entity.NewFeedback) (err error) {
	ctx, span := s.startSpan(ctx, "CreateFeedback")
	defer func() { s.endSpan(span, err) }()

	query := `
		INSERT INTO feedback (id, guest_name, email, rating, comment, status)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6)`

	_, err = s.conn.Exec(ctx, query, fb.ID, fb.GuestName, fb.Email, fb.Rating,
		fb.Comment, entity.FeedbackStatusPending)
	return s.mapError(err)
}

func (s *DB) UpdateFeedbackStatus(ctx context.Context, id int64, status entity.FeedbackStatus, byID int64) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateFeedbackStatus")
	defer func() { s.endSpan(span, err) }()

	query := `
		UPDATE feedback
		SET status = $2, moderated_by = $3, moderated_at = NOW()
		WHERE id = $1`

	tag, err := s.conn.Exec(ctx, query, id, status, byID)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}
