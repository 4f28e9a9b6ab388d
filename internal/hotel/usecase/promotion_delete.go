package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/shandysiswandi/innkeep/internal/pkg/goerror"
	"github.com/shandysiswandi/innkeep/internal/shared/constant"
)

type PromotionDeleteInput struct {
	ID int64 `validate:"required,gt=0"`
}

func (s *Usecase) PromotionDelete(ctx context.Context, in PromotionDeleteInput) error {
	ctx, span := s.startSpan(ctx, "PromotionDelete")
	defer span.End()

	clm, err := s.authenticatedAndAuthorized(ctx, constant.PermHotelPromotions, constant.PermActDelete)
	if err != nil {
		return err
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if err := s.repoDB.MarkPromotionDeleted(ctx, in.ID, clm.UserID); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("promotion not found", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo mark promotion deleted", "id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	s.recordActivity(ctx, clm.UserID, "promotion_deleted", "promotion", strconv.FormatInt(in.ID, 10))

	return nil
}
