package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/shandysiswandi/innkeep/internal/pkg/goerror"
	"github.com/shandysiswandi/innkeep/internal/shared/constant"
)

type BlogDeleteInput struct {
	ID int64 `validate:"required,gt=0"`
}

func (s *Usecase) BlogDelete(ctx context.Context, in BlogDeleteInput) error {
	ctx, span := s.startSpan(ctx, "BlogDelete")
	defer span.End()

	clm, err := s.authenticatedAndAuthorized(ctx, constant.PermHotelBlogs, constant.PermActDelete)
	if err != nil {
		return err
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if err := s.repoDB.MarkBlogDeleted(ctx, in.ID, clm.UserID); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("blog not found", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo mark blog deleted", "id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	s.recordActivity(ctx, clm.UserID, "blog_deleted", "blog", strconv.FormatInt(in.ID, 10))

	return nil
}
