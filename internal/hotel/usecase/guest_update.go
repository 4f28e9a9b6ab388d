package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/shandysiswandi/innkeep/internal/hotel/entity"
	"github.com/shandysiswandi/innkeep/internal/pkg/goerror"
	"github.com/shandysiswandi/innkeep/internal/shared/constant"
)

type GuestUpdateInput struct {
	ID       int64  `validate:"required,gt=0"`
	FullName string `validate:"required,min=3,max=100"`
	Email    string `validate:"required,email"`
	Phone    string `validate:"omitempty,min=7,max=20"`
	Address  string `validate:"omitempty,max=255"`
	Notes    string `validate:"omitempty,max=1000"`
}

func (s *Usecase) GuestUpdate(ctx context.Context, in GuestUpdateInput) error {
	ctx, span := s.startSpan(ctx, "GuestUpdate")
	defer span.End()

	clm, err := s.authenticatedAndAuthorized(ctx, constant.PermHotelGuests, constant.PermActUpdate)
	if err != nil {
		return err
	}

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if err := s.repoDB.UpdateGuest(ctx, entity.PatchGuest{
		ID:        in.ID,
		FullName:  strings.TrimSpace(in.FullName),
		Email:     in.Email,
		Phone:     strings.TrimSpace(in.Phone),
		Address:   strings.TrimSpace(in.Address),
		Notes:     strings.TrimSpace(in.Notes),
		UpdatedBy: clm.UserID,
	}); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("guest not found", goerror.CodeNotFound)
		}
		if errors.Is(err, goerror.ErrConflict) {
			return goerror.NewBusiness("guest email already registered", goerror.CodeConflict)
		}
		slog.ErrorContext(ctx, "failed to repo update guest", "id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	s.recordActivity(ctx, clm.UserID, "guest_updated", "guest", strconv.FormatInt(in.ID, 10))

	return nil
}
