package otp

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/shandysiswandi/innkeep/internal/pkg/sms"
)

// SMSChannel delivers challenge codes through an SMS provider.
//
// Destination formatting is this adapter's job: local numbers starting with a
// leading zero are rewritten to international form using countryPrefix before
// they reach the provider.
type SMSChannel struct {
	provider      sms.Provider
	countryPrefix string
	configured    bool
}

// NewSMSChannel wraps provider; configured=false forces simulated delivery
// without touching the network.
func NewSMSChannel(provider sms.Provider, countryPrefix string, configured bool) *SMSChannel {
	return &SMSChannel{provider: provider, countryPrefix: countryPrefix, configured: configured}
}

// Send texts the code, degrading to a simulated receipt when unconfigured or
// when the provider fails within the bounded timeout.
func (c *SMSChannel) Send(ctx context.Context, destination string, msg Message) Receipt {
	to := c.normalize(destination)

	if !c.configured || c.provider == nil {
		slog.InfoContext(ctx, "simulated sms delivery", "ttl", msg.TTL)
		return Receipt{Delivered: true, Simulated: true}
	}

	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	var messageID string
	err := retry.Do(sendCtx, retry.WithMaxRetries(1, retry.NewConstant(time.Second)), func(ctx context.Context) error {
		result, err := c.provider.Send(ctx, to, msg.Body)
		if err != nil {
			return retry.RetryableError(err)
		}
		messageID = result.MessageID
		return nil
	})
	if err != nil {
		slog.WarnContext(ctx, "sms delivery degraded to simulated", "error", err)
		return Receipt{Delivered: true, Simulated: true, Err: err}
	}

	return Receipt{Delivered: true, ProviderMessageID: messageID}
}

func (c *SMSChannel) normalize(number string) string {
	number = strings.TrimSpace(number)
	if c.countryPrefix != "" && strings.HasPrefix(number, "0") {
		return c.countryPrefix + number[1:]
	}
	return number
}
