package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/innkeep/internal/hotel/entity"
	"github.com/shandysiswandi/innkeep/internal/pkg/goerror"
	"github.com/shandysiswandi/innkeep/internal/shared/constant"
)

type PromotionListInput struct {
	Size int32
	Page int32
}

type PromotionListOutput struct {
	Promotions []entity.Promotion
	Total      int64
	Size       int32
	Page       int32
}

func (s *Usecase) PromotionList(ctx context.Context, in PromotionListInput) (*PromotionListOutput, error) {
	ctx, span := s.startSpan(ctx, "PromotionList")
	defer span.End()

	if _, err := s.authenticatedAndAuthorized(ctx, constant.PermHotelPromotions, constant.PermActRead); err != nil {
		return nil, err
	}

	if in.Size <= 0 {
		in.Size = 10
	}
	if in.Size > 100 {
		in.Size = 100
	}
	if in.Page <= 0 {
		in.Page = 1
	}

	promos, total, err := s.repoDB.GetPromotionList(ctx, in.Size, (in.Page-1)*in.Size)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get promotion list", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &PromotionListOutput{
		Promotions: promos,
		Total:      total,
		Size:       in.Size,
		Page:       in.Page,
	}, nil
}
