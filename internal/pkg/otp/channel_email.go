package otp

import (
	"context"
	"log/slog"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/shandysiswandi/innkeep/internal/pkg/mail"
)

// EmailChannel delivers challenge codes through a mail provider.
type EmailChannel struct {
	mailer     mail.Mail
	configured bool
}

// NewEmailChannel wraps mailer; configured=false forces simulated delivery
// without touching the network.
func NewEmailChannel(mailer mail.Mail, configured bool) *EmailChannel {
	return &EmailChannel{mailer: mailer, configured: configured}
}

// Send mails the code, degrading to a simulated receipt when unconfigured or
// when the provider fails within the bounded timeout.
func (c *EmailChannel) Send(ctx context.Context, destination string, msg Message) Receipt {
	if !c.configured || c.mailer == nil {
		slog.InfoContext(ctx, "simulated email delivery", "subject", msg.Subject, "ttl", msg.TTL)
		return Receipt{Delivered: true, Simulated: true}
	}

	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	err := retry.Do(sendCtx, retry.WithMaxRetries(1, retry.NewConstant(time.Second)), func(ctx context.Context) error {
		return retry.RetryableError(c.mailer.Send(ctx, mail.Message{
			To:       []string{destination},
			Subject:  msg.Subject,
			TextBody: msg.Body,
		}))
	})
	if err != nil {
		slog.WarnContext(ctx, "email delivery degraded to simulated", "error", err)
		return Receipt{Delivered: true, Simulated: true, Err: err}
	}

	return Receipt{Delivered: true}
}
