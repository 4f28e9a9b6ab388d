package otp

import (
	"context"
	"errors"
	"testing"

	"github.com/shandysiswandi/innkeep/internal/pkg/sms"
)

type stubSMSProvider struct {
	to   string
	body string
	err  error
}

func (s *stubSMSProvider) Send(_ context.Context, to, body string) (*sms.SendResult, error) {
	s.to = to
	s.body = body
	if s.err != nil {
		return nil, s.err
	}
	return &sms.SendResult{MessageID: "msg-1"}, nil
}

func (*stubSMSProvider) Close() error { return nil }

func TestEmailChannelUnconfiguredSimulates(t *testing.T) {
	channel := NewEmailChannel(nil, false)

	receipt := channel.Send(context.Background(), "user@x.com", Message{Subject: "code"})

	if !receipt.Delivered || !receipt.Simulated || receipt.Err != nil {
		t.Fatalf("expected clean simulated receipt, got %+v", receipt)
	}
}

func TestSMSChannelNormalizesLocalNumbers(t *testing.T) {
	provider := &stubSMSProvider{}
	channel := NewSMSChannel(provider, "+81", true)

	receipt := channel.Send(context.Background(), "0901234567", Message{Body: "your code is 482193"})

	if receipt.Simulated {
		t.Fatalf("configured channel must deliver for real, got %+v", receipt)
	}
	if provider.to != "+81901234567" {
		t.Fatalf("expected international number, got %q", provider.to)
	}
	if receipt.ProviderMessageID != "msg-1" {
		t.Fatalf("expected provider message id, got %q", receipt.ProviderMessageID)
	}
}

func TestSMSChannelProviderFailureDegradesToSimulated(t *testing.T) {
	provider := &stubSMSProvider{err: errors.New("gateway down")}
	channel := NewSMSChannel(provider, "+81", true)

	receipt := channel.Send(context.Background(), "0901234567", Message{Body: "code"})

	if !receipt.Delivered || !receipt.Simulated {
		t.Fatalf("provider failure must degrade to simulated, got %+v", receipt)
	}
	if receipt.Err == nil {
		t.Fatal("degraded receipt must carry the cause")
	}
}
