package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/shandysiswandi/innkeep/internal/hotel/entity"
	"github.com/shandysiswandi/innkeep/internal/pkg/goerror"
	"github.com/shandysiswandi/innkeep/internal/pkg/valueobject"
	"github.com/shandysiswandi/innkeep/internal/shared/constant"
)

type PromotionUpdateInput struct {
	ID              int64  `validate:"required,gt=0"`
	Title           string `validate:"required,min=3,max=150"`
	Description     string `validate:"omitempty,max=2000"`
	DiscountPercent int16  `validate:"required,gt=0,lte=100"`
	Terms           valueobject.JSONMap
	StartsAt        time.Time `validate:"required"`
	EndsAt          time.Time `validate:"required"`
	Active          bool
}

func (s *Usecase) PromotionUpdate(ctx context.Context, in PromotionUpdateInput) error {
	ctx, span := s.startSpan(ctx, "PromotionUpdate")
	defer span.End()

	clm, err := s.authenticatedAndAuthorized(ctx, constant.PermHotelPromotions, constant.PermActUpdate)
	if err != nil {
		return err
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if !in.EndsAt.After(in.StartsAt) {
		return goerror.NewInvalidInput(nil, "ends_at", "ends_at must be after starts_at")
	}

	if err := s.repoDB.UpdatePromotion(ctx, entity.PatchPromotion{
		ID:              in.ID,
		Title:           strings.TrimSpace(in.Title),
		Description:     strings.TrimSpace(in.Description),
		DiscountPercent: in.DiscountPercent,
		Terms:           in.Terms,
		StartsAt:        in.StartsAt,
		EndsAt:          in.EndsAt,
		Active:          in.Active,
		UpdatedBy:       clm.UserID,
	}); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("promotion not found", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo update promotion", "id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	s.recordActivity(ctx, clm.UserID, "promotion_updated", "promotion", strconv.FormatInt(in.ID, 10))

	return nil
}
