package otp

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
)

type captureChannel struct {
	destination string
	message     Message
	calls       int
}

func (c *captureChannel) Send(_ context.Context, destination string, msg Message) Receipt {
	c.calls++
	c.destination = destination
	c.message = msg
	return Receipt{Delivered: true}
}

func newTestService(email, smsCh Channel) *Service {
	return NewService(ServiceConfig{Clock: newFakeClock(), Email: email, SMS: smsCh})
}

func TestServiceRequestThenVerify(t *testing.T) {
	email := &captureChannel{}
	svc := newTestService(email, &captureChannel{})
	ctx := context.Background()

	receipt, err := svc.RequestChallenge(ctx, "user@x.com", ChannelEmail)
	if err != nil {
		t.Fatalf("request challenge: %v", err)
	}
	if receipt.MaskedDestination != "u***@x.com" {
		t.Fatalf("unexpected masked destination %q", receipt.MaskedDestination)
	}
	if receipt.ExpiresIn != OTPTTL {
		t.Fatalf("unexpected ttl %v", receipt.ExpiresIn)
	}
	if len(email.message.Code) != 6 {
		t.Fatalf("expected a 6-digit code, got %q", email.message.Code)
	}

	verification, err := svc.VerifyChallenge(ctx, "user@x.com", email.message.Code)
	if err != nil {
		t.Fatalf("verify challenge: %v", err)
	}
	if !regexp.MustCompile(`^[0-9a-f]{64}$`).MatchString(verification.ResetToken) {
		t.Fatalf("reset token must be 64 hex chars, got %q", verification.ResetToken)
	}
	if verification.ExpiresIn != ResetCredentialTTL {
		t.Fatalf("unexpected reset ttl %v", verification.ExpiresIn)
	}
}

func TestServiceVerifyMismatchSurfacesRemaining(t *testing.T) {
	email := &captureChannel{}
	svc := newTestService(email, nil)
	ctx := context.Background()

	if _, err := svc.RequestChallenge(ctx, "user@x.com", ChannelEmail); err != nil {
		t.Fatalf("request challenge: %v", err)
	}

	_, err := svc.VerifyChallenge(ctx, "user@x.com", "000000")

	var mismatch *MismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected mismatch error, got %v", err)
	}
	if mismatch.Remaining != 2 {
		t.Fatalf("expected 2 remaining, got %d", mismatch.Remaining)
	}
	if !strings.Contains(err.Error(), "2 attempts remaining") {
		t.Fatalf("error must surface remaining attempts, got %q", err.Error())
	}
}

func TestServiceVerifyIsSingleUse(t *testing.T) {
	email := &captureChannel{}
	svc := newTestService(email, nil)
	ctx := context.Background()

	if _, err := svc.RequestChallenge(ctx, "user@x.com", ChannelEmail); err != nil {
		t.Fatalf("request challenge: %v", err)
	}

	if _, err := svc.VerifyChallenge(ctx, "user@x.com", email.message.Code); err != nil {
		t.Fatalf("first verification: %v", err)
	}

	if _, err := svc.VerifyChallenge(ctx, "user@x.com", email.message.Code); !errors.Is(err, ErrChallengeInvalid) {
		t.Fatalf("second verification must fail uniformly, got %v", err)
	}
}

func TestServiceVerifyWithoutChallengeIsUniformFailure(t *testing.T) {
	svc := newTestService(&captureChannel{}, nil)

	if _, err := svc.VerifyChallenge(context.Background(), "nobody@x.com", "123456"); !errors.Is(err, ErrChallengeInvalid) {
		t.Fatalf("expected uniform failure, got %v", err)
	}
}

func TestServiceLockoutThenFreshChallenge(t *testing.T) {
	email := &captureChannel{}
	svc := newTestService(email, nil)
	ctx := context.Background()

	if _, err := svc.RequestChallenge(ctx, "user@x.com", ChannelEmail); err != nil {
		t.Fatalf("request challenge: %v", err)
	}

	for range OTPMaxAttempts {
		//nolint:errcheck // wrong guesses on purpose
		svc.VerifyChallenge(ctx, "user@x.com", "000000")
	}

	if _, err := svc.VerifyChallenge(ctx, "user@x.com", email.message.Code); !errors.Is(err, ErrChallengeInvalid) {
		t.Fatalf("correct code after lockout must fail, got %v", err)
	}

	// a fresh request issues an independent, usable code
	if _, err := svc.RequestChallenge(ctx, "user@x.com", ChannelEmail); err != nil {
		t.Fatalf("fresh request after lockout: %v", err)
	}
	if _, err := svc.VerifyChallenge(ctx, "user@x.com", email.message.Code); err != nil {
		t.Fatalf("fresh code must verify, got %v", err)
	}
}

func TestServiceRedeemResetCredentialOnce(t *testing.T) {
	svc := newTestService(&captureChannel{}, nil)
	ctx := context.Background()

	token, err := svc.IssueResetCredential(ctx, "user@x.com")
	if err != nil {
		t.Fatalf("issue reset credential: %v", err)
	}

	if err := svc.RedeemResetCredential(ctx, "user@x.com", token); err != nil {
		t.Fatalf("redeem: %v", err)
	}

	if err := svc.RedeemResetCredential(ctx, "user@x.com", token); !errors.Is(err, ErrChallengeInvalid) {
		t.Fatalf("second redemption must fail, got %v", err)
	}
}

func TestServiceRedeemWrongTokenConsumesTheCredential(t *testing.T) {
	svc := newTestService(&captureChannel{}, nil)
	ctx := context.Background()

	token, err := svc.IssueResetCredential(ctx, "user@x.com")
	if err != nil {
		t.Fatalf("issue reset credential: %v", err)
	}

	if err := svc.RedeemResetCredential(ctx, "user@x.com", "deadbeef"); !errors.Is(err, ErrChallengeInvalid) {
		t.Fatalf("wrong token must fail, got %v", err)
	}

	// single attempt budget: the real token is burned too
	if err := svc.RedeemResetCredential(ctx, "user@x.com", token); !errors.Is(err, ErrChallengeInvalid) {
		t.Fatalf("credential must be consumed after the single attempt, got %v", err)
	}
}

func TestServiceRejectsUnsupportedChannel(t *testing.T) {
	svc := newTestService(&captureChannel{}, &captureChannel{})

	for _, channel := range []string{"voice", "carrier-pigeon", ""} {
		if _, err := svc.RequestChallenge(context.Background(), "user@x.com", channel); !errors.Is(err, ErrChannelUnsupported) {
			t.Fatalf("channel %q must be rejected, got %v", channel, err)
		}
	}
}

func TestServiceMasksPhoneDestination(t *testing.T) {
	smsCh := &captureChannel{}
	svc := newTestService(nil, smsCh)

	receipt, err := svc.RequestChallenge(context.Background(), "0901234567", ChannelSMS)
	if err != nil {
		t.Fatalf("request challenge: %v", err)
	}

	if receipt.MaskedDestination != "090****567" {
		t.Fatalf("unexpected masked phone %q", receipt.MaskedDestination)
	}
}

func TestServiceSimulatedDeliveryWhenUnconfigured(t *testing.T) {
	svc := NewService(ServiceConfig{
		Clock: newFakeClock(),
		Email: NewEmailChannel(nil, false),
		SMS:   NewSMSChannel(nil, "+81", false),
	})

	receipt, err := svc.RequestChallenge(context.Background(), "0901234567", ChannelSMS)
	if err != nil {
		t.Fatalf("request challenge: %v", err)
	}

	if !receipt.Delivery.Delivered || !receipt.Delivery.Simulated {
		t.Fatalf("unconfigured adapter must report simulated delivery, got %+v", receipt.Delivery)
	}
}
