package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/innkeep/internal/hotel/entity"
	"github.com/shandysiswandi/innkeep/internal/pkg/goerror"
)

type BlogDetailInput struct {
	ID int64 `validate:"required,gt=0"`
}

type BlogDetailOutput struct {
	Blog entity.Blog
}

// BlogDetail is public, it backs the marketing site.
func (s *Usecase) BlogDetail(ctx context.Context, in BlogDetailInput) (*BlogDetailOutput, error) {
	ctx, span := s.startSpan(ctx, "BlogDetail")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	blog, err := s.repoDB.GetBlogByID(ctx, in.ID)
	if err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return nil, goerror.NewBusiness("blog not found", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo get blog by id", "id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &BlogDetailOutput{Blog: *blog}, nil
}
