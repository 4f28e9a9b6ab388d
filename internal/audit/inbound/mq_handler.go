package inbound

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/shandysiswandi/innkeep/internal/audit/usecase"
	"github.com/shandysiswandi/innkeep/internal/pkg/instrument"
	"github.com/shandysiswandi/innkeep/internal/pkg/messaging"
	"github.com/shandysiswandi/innkeep/internal/pkg/uid"
	"github.com/shandysiswandi/innkeep/internal/shared/event"
)

const keyOfCorrelationID string = "cID"

type MQHandler struct {
	uc   uc
	uuid uid.StringID
	ins  instrument.Instrumentation
}

func (h *MQHandler) ensureCorrelationID(ctx context.Context, headers []messaging.Header) context.Context {
	for i := range headers {
		if headers[i].Key == keyOfCorrelationID {
			return instrument.SetCorrelationID(ctx, string(headers[i].Value))
		}
	}
	return instrument.SetCorrelationID(ctx, h.uuid.Generate())
}

func (h *MQHandler) AuditTrailRecorder(ctx context.Context, msg messaging.Message) error {
	ctx = h.ensureCorrelationID(ctx, msg.Headers())

	ctx, span := h.ins.Tracer("audit.inbound.mq").Start(ctx, "AuditTrailRecorder")
	defer span.End()

	body := msg.Body()
	slog.InfoContext(ctx, "consume: audit trail", "msg_body", string(body))

	var payload event.AuditTrailMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		slog.ErrorContext(ctx, "failed to parse message body of audit trail", "msg_body", string(body), "error", err)
		return nil
	}

	if err := h.uc.RecordActivity(ctx, usecase.RecordActivityInput{
		Actor:      payload.Actor,
		Action:     payload.Action,
		Entity:     payload.Entity,
		EntityID:   payload.EntityID,
		OccurredAt: payload.OccurredAt,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to consume audit trail", "msg_body", string(body), "error", err)
		return err
	}

	return nil
}
