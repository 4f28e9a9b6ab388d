package otp

import (
	"context"
	"time"
)

const (
	// ChannelEmail delivers codes over email.
	ChannelEmail = "email"
	// ChannelSMS delivers codes over SMS.
	ChannelSMS = "sms"

	sendTimeout = 10 * time.Second
)

// Message is the rendered payload handed to a channel adapter.
type Message struct {
	Subject string
	Body    string
	Code    string
	TTL     time.Duration
}

// Receipt is the outcome of a delivery attempt.
//
// Delivered is true even for simulated sends so the orchestration success path
// stays uniform with and without real gateways; Simulated and Err expose what
// actually happened so operators can alert on degraded delivery.
type Receipt struct {
	Delivered         bool
	Simulated         bool
	ProviderMessageID string
	Err               error
}

// Channel adapts a "send this message to this destination" request to a
// concrete provider. Implementations never fail hard: an unconfigured or
// broken provider resolves to a simulated receipt.
type Channel interface {
	Send(ctx context.Context, destination string, msg Message) Receipt
}
