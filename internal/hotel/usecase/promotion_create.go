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

type PromotionCreateInput struct {
	IdempotencyKey  string
	Title           string `validate:"required,min=3,max=150"`
	Description     string `validate:"omitempty,max=2000"`
	DiscountPercent int16  `validate:"required,gt=0,lte=100"`
	Terms           valueobject.JSONMap
	StartsAt        time.Time `validate:"required"`
	EndsAt          time.Time `validate:"required"`
	Active          bool
}

func (s *Usecase) PromotionCreate(ctx context.Context, in PromotionCreateInput) error {
	ctx, span := s.startSpan(ctx, "PromotionCreate")
	defer span.End()

	clm, err := s.authenticatedAndAuthorized(ctx, constant.PermHotelPromotions, constant.PermActCreate)
	if err != nil {
		return err
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if !in.EndsAt.After(in.StartsAt) {
		return goerror.NewInvalidInput(nil, "ends_at", "ends_at must be after starts_at")
	}

	id := s.uid.Generate()
	err = s.idempotent(ctx, in.IdempotencyKey, func(ctx context.Context) error {
		return s.repoDB.CreatePromotion(ctx, entity.NewPromotion{
			ID:              id,
			Title:           strings.TrimSpace(in.Title),
			Description:     strings.TrimSpace(in.Description),
			DiscountPercent: in.DiscountPercent,
			Terms:           in.Terms,
			StartsAt:        in.StartsAt,
			EndsAt:          in.EndsAt,
			Active:          in.Active,
			CreatedBy:       clm.UserID,
			UpdatedBy:       clm.UserID,
		})
	})
	if err != nil {
		var bizErr *goerror.Error
		if errors.As(err, &bizErr) {
			return err
		}
		slog.ErrorContext(ctx, "failed to repo create promotion", "error", err)
		return goerror.NewServer(err)
	}

	s.recordActivity(ctx, clm.UserID, "promotion_created", "promotion", strconv.FormatInt(id, 10))

	return nil
}
