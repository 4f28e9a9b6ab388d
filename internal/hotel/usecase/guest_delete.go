package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/shandysiswandi/innkeep/internal/pkg/goerror"
	"github.com/shandysiswandi/innkeep/internal/shared/constant"
)

type GuestDeleteInput struct {
	ID int64 `validate:"required,gt=0"`
}

func (s *Usecase) GuestDelete(ctx context.Context, in GuestDeleteInput) error {
	ctx, span := s.startSpan(ctx, "GuestDelete")
	defer span.End()

	clm, err := s.authenticatedAndAuthorized(ctx, constant.PermHotelGuests, constant.PermActDelete)
	if err != nil {
		return err
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if err := s.repoDB.MarkGuestDeleted(ctx, in.ID, clm.UserID); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("guest not found", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo mark guest deleted", "id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	s.recordActivity(ctx, clm.UserID, "guest_deleted", "guest", strconv.FormatInt(in.ID, 10))

	return nil
}
