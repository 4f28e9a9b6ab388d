package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/shandysiswandi/innkeep/internal/hotel/entity"
	"github.com/shandysiswandi/innkeep/internal/pkg/goerror"
	"github.com/shandysiswandi/innkeep/internal/pkg/strcase"
	"github.com/shandysiswandi/innkeep/internal/shared/constant"
)

type BlogCreateInput struct {
	IdempotencyKey string
	Title          string `validate:"required,min=3,max=150"`
	Body           string `validate:"required,min=10"`
}

type BlogCreateOutput struct {
	ID   int64
	Slug string
}

func (s *Usecase) BlogCreate(ctx context.Context, in BlogCreateInput) (*BlogCreateOutput, error) {
	ctx, span := s.startSpan(ctx, "BlogCreate")
	defer span.End()

	clm, err := s.authenticatedAndAuthorized(ctx, constant.PermHotelBlogs, constant.PermActCreate)
	if err != nil {
		return nil, err
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	id := s.uid.Generate()
	title := strings.TrimSpace(in.Title)
	slug := slugify(title)

	err = s.idempotent(ctx, in.IdempotencyKey, func(ctx context.Context) error {
		return s.repoDB.CreateBlog(ctx, entity.NewBlog{
			ID:       id,
			Title:    title,
			Slug:     slug,
			Body:     in.Body,
			AuthorID: clm.UserID,
		})
	})
	if err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			return nil, goerror.NewBusiness("blog slug already exists", goerror.CodeConflict)
		}
		var bizErr *goerror.Error
		if errors.As(err, &bizErr) {
			return nil, err
		}
		slog.ErrorContext(ctx, "failed to repo create blog", "error", err)
		return nil, goerror.NewServer(err)
	}

	s.recordActivity(ctx, clm.UserID, "blog_created", "blog", strconv.FormatInt(id, 10))

	return &BlogCreateOutput{ID: id, Slug: slug}, nil
}

// slugify turns a title into a URL slug: lowercase words joined by hyphens.
// CamelCase boundaries become word breaks before punctuation is collapsed.
func slugify(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	pendingDash := false
	for _, r := range strcase.ToLowerSnake(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}

	return b.String()
}
