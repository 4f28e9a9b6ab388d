package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/innkeep/internal/pkg/goerror"
)

type PasswordResetInput struct {
	Identifier  string `validate:"required"`
	ResetToken  string `validate:"required,len=64,hexadecimal"`
	NewPassword string `validate:"required,password"`
}

// PasswordReset redeems the single-use reset credential and persists the new
// password. Only a successful redemption reaches the user directory.
func (s *Usecase) PasswordReset(ctx context.Context, in PasswordResetInput) error {
	ctx, span := s.startSpan(ctx, "PasswordReset")
	defer span.End()

	in.Identifier = strings.TrimSpace(strings.ToLower(in.Identifier))

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if err := s.otp.RedeemResetCredential(ctx, in.Identifier, in.ResetToken); err != nil {
		return goerror.NewBusiness("invalid or expired reset token", goerror.CodeUnauthorized)
	}

	user, err := s.repoDB.GetUserByIdentifier(ctx, in.Identifier)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "reset credential redeemed for missing user")
		return goerror.NewBusiness("no account found for that identifier", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by identifier", "error", err)
		return goerror.NewServer(err)
	}

	if err := s.ensureUserStatusAllowed(ctx, user.ID, user.Status); err != nil {
		return err
	}

	newHash, err := s.bcrypt.Hash(in.NewPassword)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash new password", "user_id", user.ID, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.repoDB.UpdateUserCredential(ctx, user.ID, string(newHash)); err != nil {
		slog.ErrorContext(ctx, "failed to update user password", "user_id", user.ID, "error", err)
		return goerror.NewServer(err)
	}

	s.recordActivity(ctx, user.ID, "password_reset", "user", in.Identifier)

	return nil
}
