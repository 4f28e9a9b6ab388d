package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/innkeep/internal/hotel/entity"
	"github.com/shandysiswandi/innkeep/internal/pkg/goerror"
	"github.com/shandysiswandi/innkeep/internal/shared/constant"
)

type PromotionDetailInput struct {
	ID int64 `validate:"required,gt=0"`
}

type PromotionDetailOutput struct {
	Promotion entity.Promotion
}

func (s *Usecase) PromotionDetail(ctx context.Context, in PromotionDetailInput) (*PromotionDetailOutput, error) {
	ctx, span := s.startSpan(ctx, "PromotionDetail")
	defer span.End()

	if _, err := s.authenticatedAndAuthorized(ctx, constant.PermHotelPromotions, constant.PermActRead); err != nil {
		return nil, err
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	promo, err := s.repoDB.GetPromotionByID(ctx, in.ID)
	if err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return nil, goerror.NewBusiness("promotion not found", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo get promotion by id", "id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &PromotionDetailOutput{Promotion: *promo}, nil
}
