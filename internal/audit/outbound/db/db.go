// Package db implements audit-trail persistence on top of PostgreSQL.
package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/innkeep/internal/audit/entity"
	"github.com/shandysiswandi/innkeep/internal/pkg/goerror"
	"github.com/shandysiswandi/innkeep/internal/pkg/instrument"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type DB struct {
	conn *pgxpool.Pool
	ins  instrument.Instrumentation
}

func NewDB(conn *pgxpool.Pool, ins instrument.Instrumentation) *DB {
	return &DB{
		conn: conn,
		ins:  ins,
	}
}

func (s *DB) mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return goerror.ErrNotFound
	}

	return err
}

func (s *DB) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("audit.outbound.db").Start(ctx, name)
}

func (s *DB) endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, goerror.ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (s *DB) CreateActivity(ctx context.Context, act entity.NewActivity) (err error) {
	ctx, span := s.startSpan(ctx, "CreateActivity")
	defer func() { s.endSpan(span, err) }()

	query := `
		INSERT INTO audit_activities (id, actor, action, entity, entity_id, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err = s.conn.Exec(ctx, query, act.ID, act.Actor, act.Action, act.Entity,
		act.EntityID, act.OccurredAt)
	return s.mapError(err)
}

func (s *DB) GetActivityList(ctx context.Context, filter entity.ActivityListFilterData) (_ []entity.Activity, _ int64, err error) {
	ctx, span := s.startSpan(ctx, "GetActivityList")
	defer func() { s.endSpan(span, err) }()

	where := "TRUE"
	args := []any{}
	if filter.IsFilterByEntity {
		args = append(args, filter.Entity)
		where = "entity = $1"
	}

	var count int64
	if err = s.conn.QueryRow(ctx, "SELECT COUNT(*) FROM audit_activities WHERE "+where, args...).Scan(&count); err != nil {
		return nil, 0, s.mapError(err)
	}

	args = append(args, filter.Size, filter.Page)
	query := fmt.Sprintf(`
		SELECT id, actor, action, entity, entity_id, occurred_at, recorded_at
		FROM audit_activities
		WHERE %s
		ORDER BY occurred_at DESC
		LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	rows, err := s.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, s.mapError(err)
	}
	defer rows.Close()

	activities := make([]entity.Activity, 0, filter.Size)
	for rows.Next() {
		var a entity.Activity
		if err = rows.Scan(&a.ID, &a.Actor, &a.Action, &a.Entity, &a.EntityID,
			&a.OccurredAt, &a.RecordedAt); err != nil {
			return nil, 0, s.mapError(err)
		}
		activities = append(activities, a)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, s.mapError(err)
	}

	return activities, count, nil
}
