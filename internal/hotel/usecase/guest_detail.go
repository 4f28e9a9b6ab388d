package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/innkeep/internal/hotel/entity"
	"github.com/shandysiswandi/innkeep/internal/pkg/goerror"
	"github.com/shandysiswandi/innkeep/internal/shared/constant"
)

type GuestDetailInput struct {
	ID int64 `validate:"required,gt=0"`
}

type GuestDetailOutput struct {
	Guest entity.Guest
}

func (s *Usecase) GuestDetail(ctx context.Context, in GuestDetailInput) (*GuestDetailOutput, error) {
	ctx, span := s.startSpan(ctx, "GuestDetail")
	defer span.End()

	if _, err := s.authenticatedAndAuthorized(ctx, constant.PermHotelGuests, constant.PermActRead); err != nil {
		return nil, err
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	guest, err := s.repoDB.GetGuestByID(ctx, in.ID)
	if err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return nil, goerror.NewBusiness("guest not found", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo get guest by id", "id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &GuestDetailOutput{Guest: *guest}, nil
}
