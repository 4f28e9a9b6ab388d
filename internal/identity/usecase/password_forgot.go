package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/innkeep/internal/pkg/goerror"
	"github.com/shandysiswandi/innkeep/internal/pkg/otp"
)

type PasswordForgotInput struct {
	Identifier string `validate:"required"`
	Channel    string `validate:"required,oneof=email sms"`
}

type PasswordForgotOutput struct {
	Channel           string
	MaskedDestination string
	ExpiresIn         int64
}

// PasswordForgot starts the recovery flow: it resolves the account behind the
// identifier and asks the challenge service to issue and deliver a code.
// Account existence and eligibility are surfaced distinctly; that information
// is already disclosed by other parts of the product.
func (s *Usecase) PasswordForgot(ctx context.Context, in PasswordForgotInput) (*PasswordForgotOutput, error) {
	ctx, span := s.startSpan(ctx, "PasswordForgot")
	defer span.End()

	in.Identifier = strings.TrimSpace(strings.ToLower(in.Identifier))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	user, err := s.repoDB.GetUserByIdentifier(ctx, in.Identifier)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "recovery code requested for unknown identifier")
		return nil, goerror.NewBusiness("no account found for that identifier", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by identifier", "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.ensureUserStatusAllowed(ctx, user.ID, user.Status); err != nil {
		return nil, err
	}

	receipt, err := s.otp.RequestChallenge(ctx, in.Identifier, in.Channel)
	if errors.Is(err, otp.ErrChannelUnsupported) {
		return nil, goerror.NewBusiness("delivery channel is not supported", goerror.CodeInvalidInput)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to issue recovery challenge", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	s.recordActivity(ctx, user.ID, "password_recovery_requested", "user", in.Identifier)

	return &PasswordForgotOutput{
		Channel:           receipt.Channel,
		MaskedDestination: receipt.MaskedDestination,
		ExpiresIn:         int64(receipt.ExpiresIn.Seconds()),
	}, nil
}
