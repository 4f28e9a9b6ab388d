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

type GuestCreateInput struct {
	IdempotencyKey string
	FullName       string `validate:"required,min=3,max=100"`
	Email          string `validate:"required,email"`
	Phone          string `validate:"omitempty,min=7,max=20"`
	Address        string `validate:"omitempty,max=255"`
	Notes          string `validate:"omitempty,max=1000"`
}

func (s *Usecase) GuestCreate(ctx context.Context, in GuestCreateInput) error {
	ctx, span := s.startSpan(ctx, "GuestCreate")
	defer span.End()

	clm, err := s.authenticatedAndAuthorized(ctx, constant.PermHotelGuests, constant.PermActCreate)
	if err != nil {
		return err
	}

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	id := s.uid.Generate()
	err = s.idempotent(ctx, in.IdempotencyKey, func(ctx context.Context) error {
		return s.repoDB.CreateGuest(ctx, entity.NewGuest{
			ID:        id,
			FullName:  strings.TrimSpace(in.FullName),
			Email:     in.Email,
			Phone:     strings.TrimSpace(in.Phone),
			Address:   strings.TrimSpace(in.Address),
			Notes:     strings.TrimSpace(in.Notes),
			CreatedBy: clm.UserID,
			UpdatedBy: clm.UserID,
		})
	})
	if err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			return goerror.NewBusiness("guest email already registered", goerror.CodeConflict)
		}
		var bizErr *goerror.Error
		if errors.As(err, &bizErr) {
			return err
		}
		slog.ErrorContext(ctx, "failed to repo create guest", "error", err)
		return goerror.NewServer(err)
	}

	s.recordActivity(ctx, clm.UserID, "guest_created", "guest", strconv.FormatInt(id, 10))

	return nil
}
