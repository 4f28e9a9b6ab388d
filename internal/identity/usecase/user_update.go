package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/shandysiswandi/innkeep/internal/identity/entity"
	"github.com/shandysiswandi/innkeep/internal/pkg/goerror"
	"github.com/shandysiswandi/innkeep/internal/shared/constant"
)

type UserUpdateInput struct {
	ID       int64  `validate:"required,gt=0"`
	Email    string `validate:"required,email"`
	Phone    string `validate:"omitempty,min=7,max=20"`
	Password string `validate:"omitempty,password"`
	FullName string `validate:"required,min=3,max=100"`
	Status   int16  `validate:"required"`
}

func (s *Usecase) UserUpdate(ctx context.Context, in UserUpdateInput) error {
	ctx, span := s.startSpan(ctx, "UserUpdate")
	defer span.End()

	clm, err := s.authenticatedAndAuthorized(ctx, constant.PermIdentityMgmtUsers, constant.PermActUpdate)
	if err != nil {
		return err
	}

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	status := entity.UserStatus(in.Status)
	if status.IsUnknown() {
		return goerror.NewInvalidInput(nil, "status", "status is not recognized")
	}

	// empty password keeps the current credential
	var passHash string
	if in.Password != "" {
		h, err := s.bcrypt.Hash(in.Password)
		if err != nil {
			slog.ErrorContext(ctx, "failed to hash password", "error", err)
			return goerror.NewServer(err)
		}
		passHash = string(h)
	}

	if err := s.repoDB.UpdateUser(ctx, entity.PatchUser{
		ID:        in.ID,
		Email:     in.Email,
		Phone:     in.Phone,
		FullName:  strings.TrimSpace(in.FullName),
		Status:    status,
		UpdatedBy: clm.UserID,
	}, passHash); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("user not found", goerror.CodeNotFound)
		}
		if errors.Is(err, goerror.ErrConflict) {
			return goerror.NewBusiness("email already registered", goerror.CodeConflict)
		}
		slog.ErrorContext(ctx, "failed to repo update user", "id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	s.recordActivity(ctx, clm.UserID, "user_updated", "user", strconv.FormatInt(in.ID, 10))

	return nil
}
