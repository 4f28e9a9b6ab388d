package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/innkeep/internal/hotel/entity"
	"github.com/shandysiswandi/innkeep/internal/pkg/goerror"
	"github.com/shandysiswandi/innkeep/internal/shared/constant"
)

type GuestListInput struct {
	Search string
	Size   int32
	Page   int32
}

type GuestListOutput struct {
	Guests []entity.Guest
	Total  int64
	Size   int32
	Page   int32
}

func (s *Usecase) GuestList(ctx context.Context, in GuestListInput) (*GuestListOutput, error) {
	ctx, span := s.startSpan(ctx, "GuestList")
	defer span.End()

	if _, err := s.authenticatedAndAuthorized(ctx, constant.PermHotelGuests, constant.PermActRead); err != nil {
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

	search := strings.TrimSpace(in.Search)
	guests, total, err := s.repoDB.GetGuestList(ctx, entity.GuestListFilterData{
		IsFilterBySearch: search != "",
		Search:           search,
		Size:             in.Size,
		Page:             (in.Page - 1) * in.Size,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get guest list", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &GuestListOutput{
		Guests: guests,
		Total:  total,
		Size:   in.Size,
		Page:   in.Page,
	}, nil
}
