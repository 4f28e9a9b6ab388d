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

type UserCreateInput struct {
	Email    string `validate:"required,email"`
	Phone    string `validate:"omitempty,min=7,max=20"`
	Password string `validate:"required,password"`
	FullName string `validate:"required,min=3,max=100"`
	Status   int16  `validate:"required"`
}

func (s *Usecase) UserCreate(ctx context.Context, in UserCreateInput) error {
	ctx, span := s.startSpan(ctx, "UserCreate")
	defer span.End()

	clm, err := s.authenticatedAndAuthorized(ctx, constant.PermIdentityMgmtUsers, constant.PermActCreate)
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

	passHash, err := s.bcrypt.Hash(in.Password)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "error", err)
		return goerror.NewServer(err)
	}

	id := s.uid.Generate()
	if err := s.repoDB.CreateUser(ctx, entity.NewUser{
		ID:        id,
		Email:     in.Email,
		Phone:     in.Phone,
		FullName:  strings.TrimSpace(in.FullName),
		Status:    status,
		CreatedBy: clm.UserID,
		UpdatedBy: clm.UserID,
	}, string(passHash)); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			return goerror.NewBusiness("email already registered", goerror.CodeConflict)
		}
		slog.ErrorContext(ctx, "failed to repo create user", "error", err)
		return goerror.NewServer(err)
	}

	s.recordActivity(ctx, clm.UserID, "user_created", "user", strconv.FormatInt(id, 10))

	return nil
}
