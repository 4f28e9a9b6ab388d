// Package sms abstracts a transactional SMS gateway behind a narrow send
// contract, mirroring how pkg mail wraps email providers.
package sms

import (
	"context"
	"io"
)

// SendResult reports the provider-side identity of an accepted message.
type SendResult struct {
	// MessageID is the provider's identifier for the accepted message.
	MessageID string
}

// Provider abstracts an SMS gateway (HTTP API, aggregator, etc).
type Provider interface {
	io.Closer
	// Send dispatches body to the given phone number in international format.
	Send(ctx context.Context, to, body string) (*SendResult, error)
}
