package otp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shandysiswandi/innkeep/internal/pkg/clock"
)

const (
	// OTPTTL is how long a numeric code stays valid.
	OTPTTL = 5 * time.Minute
	// OTPMaxAttempts bounds wrong guesses per numeric code.
	OTPMaxAttempts = 3
	// ResetCredentialTTL is how long a reset token stays valid.
	ResetCredentialTTL = 15 * time.Minute

	// A reset token is checked through the same attempt-limited path as a
	// numeric code; with a 256-bit secret a single attempt closes any
	// brute-force window entirely.
	resetMaxAttempts = 1

	// Keys for the two purposes must never collide.
	resetKeyPrefix = "reset:"
)

var (
	// ErrChannelUnsupported rejects any delivery channel outside email and sms.
	ErrChannelUnsupported = errors.New("unsupported delivery channel")

	// ErrChallengeInvalid is the uniform terminal failure for a missing,
	// expired, or attempt-exhausted challenge. The three causes are merged so
	// callers cannot probe whether a challenge ever existed.
	ErrChallengeInvalid = errors.New("invalid or expired code")
)

// MismatchError reports a wrong code while attempts remain.
type MismatchError struct {
	Remaining int
}

// Error implements the error interface.
func (e *MismatchError) Error() string {
	return fmt.Sprintf("incorrect code, %d attempts remaining", e.Remaining)
}

// ChallengeReceipt is the caller-visible outcome of a challenge request. The
// raw destination is never echoed back; only the masked form leaves the
// service.
type ChallengeReceipt struct {
	Channel           string
	MaskedDestination string
	ExpiresIn         time.Duration
	Delivery          Receipt
}

// Verification carries the reset credential issued on a successful match.
type Verification struct {
	ResetToken string
	ExpiresIn  time.Duration
}

// Service orchestrates code generation, challenge storage, and delivery.
type Service struct {
	store    *Store
	gen      *Generator
	channels map[string]Channel
}

// ServiceConfig wires the service's collaborators.
type ServiceConfig struct {
	Clock clock.Clocker
	Email Channel
	SMS   Channel
}

// NewService builds a Service with its own in-process challenge store.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		store: NewStore(cfg.Clock),
		gen:   NewGenerator(),
		channels: map[string]Channel{
			ChannelEmail: cfg.Email,
			ChannelSMS:   cfg.SMS,
		},
	}
}

// Run drives the periodic expiry sweep until ctx is done.
func (s *Service) Run(ctx context.Context) error {
	return s.store.Run(ctx)
}

// RequestChallenge generates a fresh code for identifier, stores it, and
// dispatches it over the requested channel. A new request overwrites any
// outstanding challenge for the same identifier. The adapter send happens
// outside the store's critical section.
func (s *Service) RequestChallenge(ctx context.Context, identifier, channel string) (*ChallengeReceipt, error) {
	adapter, ok := s.channels[channel]
	if !ok || adapter == nil {
		return nil, ErrChannelUnsupported
	}

	code, err := s.gen.Numeric()
	if err != nil {
		return nil, err
	}

	s.store.Put(identifier, code, PurposeOTP, OTPTTL, OTPMaxAttempts)

	receipt := adapter.Send(ctx, identifier, Message{
		Subject: "Your verification code",
		Body:    fmt.Sprintf("Your verification code is %s. It expires in %d minutes.", code, int(OTPTTL.Minutes())),
		Code:    code,
		TTL:     OTPTTL,
	})
	if receipt.Simulated {
		slog.InfoContext(ctx, "challenge delivery simulated", "channel", channel, "error", receipt.Err)
	}

	return &ChallengeReceipt{
		Channel:           channel,
		MaskedDestination: mask(identifier, channel),
		ExpiresIn:         OTPTTL,
		Delivery:          receipt,
	}, nil
}

// VerifyChallenge consumes the code stored for identifier. A match chains
// straight into a reset credential; a wrong code surfaces the remaining
// attempts; everything else collapses into ErrChallengeInvalid.
func (s *Service) VerifyChallenge(ctx context.Context, identifier, code string) (*Verification, error) {
	result := s.store.CheckAndConsume(identifier, code)

	switch result.Status {
	case StatusMatch:
		token, err := s.IssueResetCredential(ctx, identifier)
		if err != nil {
			return nil, err
		}
		return &Verification{ResetToken: token, ExpiresIn: ResetCredentialTTL}, nil

	case StatusMismatch:
		return nil, &MismatchError{Remaining: result.Remaining}

	default:
		return nil, ErrChallengeInvalid
	}
}

// IssueResetCredential stores a single-use high-entropy token for identifier
// and returns it.
func (s *Service) IssueResetCredential(ctx context.Context, identifier string) (string, error) {
	token, err := s.gen.Token()
	if err != nil {
		return "", err
	}

	s.store.Put(resetKeyPrefix+identifier, token, PurposeResetCredential, ResetCredentialTTL, resetMaxAttempts)

	slog.InfoContext(ctx, "reset credential issued", "ttl", ResetCredentialTTL)

	return token, nil
}

// RedeemResetCredential consumes the reset token for identifier. Only a match
// authorizes the caller to change the credential.
func (s *Service) RedeemResetCredential(_ context.Context, identifier, token string) error {
	if s.store.CheckAndConsume(resetKeyPrefix+identifier, token).Status != StatusMatch {
		return ErrChallengeInvalid
	}
	return nil
}

func mask(identifier, channel string) string {
	if channel == ChannelEmail {
		return maskEmail(identifier)
	}
	return maskPhone(identifier)
}

func maskEmail(addr string) string {
	at := strings.Index(addr, "@")
	if at <= 0 {
		return "***"
	}
	return addr[:1] + "***" + addr[at:]
}

func maskPhone(number string) string {
	if len(number) < 7 {
		return "***"
	}
	return number[:3] + strings.Repeat("*", len(number)-6) + number[len(number)-3:]
}
