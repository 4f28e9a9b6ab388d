package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/shandysiswandi/innkeep/internal/audit/entity"
	"github.com/shandysiswandi/innkeep/internal/pkg/goerror"
)

type RecordActivityInput struct {
	Actor      int64  `validate:"required,gt=0"`
	Action     string `validate:"required,max=100"`
	Entity     string `validate:"required,max=100"`
	EntityID   string `validate:"required,max=100"`
	OccurredAt time.Time
}

// RecordActivity persists one audit-trail entry consumed from the broker.
func (s *Usecase) RecordActivity(ctx context.Context, in RecordActivityInput) error {
	ctx, span := s.startSpan(ctx, "RecordActivity")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if in.OccurredAt.IsZero() {
		in.OccurredAt = s.clock.Now()
	}

	if err := s.repoDB.CreateActivity(ctx, entity.NewActivity{
		ID:         s.uid.Generate(),
		Actor:      in.Actor,
		Action:     in.Action,
		Entity:     in.Entity,
		EntityID:   in.EntityID,
		OccurredAt: in.OccurredAt,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to repo create activity", "action", in.Action, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
