package inbound

import (
	"context"
	"log/slog"
	"slices"

	"github.com/shandysiswandi/innkeep/internal/audit/usecase"
	"github.com/shandysiswandi/innkeep/internal/pkg/config"
	"github.com/shandysiswandi/innkeep/internal/pkg/goroutine"
	"github.com/shandysiswandi/innkeep/internal/pkg/instrument"
	"github.com/shandysiswandi/innkeep/internal/pkg/messaging"
	"github.com/shandysiswandi/innkeep/internal/pkg/uid"
	"github.com/shandysiswandi/innkeep/internal/shared/event"
)

type uc interface {
	RecordActivity(ctx context.Context, in usecase.RecordActivityInput) error
	ActivityList(ctx context.Context, in usecase.ActivityListInput) (*usecase.ActivityListOutput, error)
}

func RegisterMQConsumer(
	ctx context.Context,
	cfg config.Config,
	routine *goroutine.Manager,
	messenger messaging.Messaging,
	uuid uid.StringID,
	uc uc,
	ins instrument.Instrumentation,
) {
	mqHandler := &MQHandler{uc: uc, uuid: uuid, ins: ins}

	enableConsumerNames := cfg.GetArray("modules.audit.consumer_names")

	var consumers = []struct {
		name              string
		topic             string // destination where publisher sent message
		natsConsumerName  string // for nats
		kafkaConsumerName string // for kafka
		handler           messaging.Handler
	}{
		{
			name:              event.AuditTrailConsumerAudit,
			topic:             event.AuditTrailDestination,
			natsConsumerName:  event.AuditTrailConsumerAudit,
			kafkaConsumerName: event.AuditTrailConsumerAudit,
			handler:           mqHandler.AuditTrailRecorder,
		},
	}

	for _, consumer := range consumers {
		if len(enableConsumerNames) > 0 && slices.Contains(enableConsumerNames, consumer.name) {
			routine.Go(ctx, func(pCtx context.Context) error {
				slog.InfoContext(ctx, "Running job for handling consumer", "consumer", consumer.name)
				return messenger.Consume(pCtx,
					consumer.topic,
					consumer.handler,
					messaging.WithQueueGroup(consumer.natsConsumerName),
					messaging.WithGroup(consumer.kafkaConsumerName),
					messaging.WithAutoAck(true),
					messaging.WithConcurrency(10),
					messaging.WithMaxInFlight(10),
				)
			})
		}
	}
}
