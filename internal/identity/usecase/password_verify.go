package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/innkeep/internal/pkg/goerror"
	"github.com/shandysiswandi/innkeep/internal/pkg/otp"
)

type PasswordVerifyInput struct {
	Identifier string `validate:"required"`
	Code       string `validate:"required,len=6,numeric"`
}

type PasswordVerifyOutput struct {
	ResetToken string
	ExpiresIn  int64
}

// PasswordVerify checks the delivered code. A match yields the single-use
// reset token; a wrong guess reports how many attempts remain; anything else
// is the uniform invalid-or-expired failure.
func (s *Usecase) PasswordVerify(ctx context.Context, in PasswordVerifyInput) (*PasswordVerifyOutput, error) {
	ctx, span := s.startSpan(ctx, "PasswordVerify")
	defer span.End()

	in.Identifier = strings.TrimSpace(strings.ToLower(in.Identifier))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	verification, err := s.otp.VerifyChallenge(ctx, in.Identifier, in.Code)

	var mismatch *otp.MismatchError
	if errors.As(err, &mismatch) {
		slog.WarnContext(ctx, "recovery code mismatch", "remaining", mismatch.Remaining)
		return nil, goerror.NewBusiness(mismatch.Error(), goerror.CodeUnauthorized)
	}
	if errors.Is(err, otp.ErrChallengeInvalid) {
		return nil, goerror.NewBusiness("invalid or expired code", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to verify recovery challenge", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &PasswordVerifyOutput{
		ResetToken: verification.ResetToken,
		ExpiresIn:  int64(verification.ExpiresIn.Seconds()),
	}, nil
}
