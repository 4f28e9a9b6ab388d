// Package audit consumes audit-trail events from the broker and records them
// for later inspection.
package audit

import (
	"context"

	"github.com/casbin/casbin/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/innkeep/internal/audit/inbound"
	"github.com/shandysiswandi/innkeep/internal/audit/outbound/db"
	"github.com/shandysiswandi/innkeep/internal/audit/usecase"
	"github.com/shandysiswandi/innkeep/internal/pkg/clock"
	"github.com/shandysiswandi/innkeep/internal/pkg/config"
	"github.com/shandysiswandi/innkeep/internal/pkg/goroutine"
	"github.com/shandysiswandi/innkeep/internal/pkg/instrument"
	"github.com/shandysiswandi/innkeep/internal/pkg/messaging"
	"github.com/shandysiswandi/innkeep/internal/pkg/router"
	"github.com/shandysiswandi/innkeep/internal/pkg/uid"
	"github.com/shandysiswandi/innkeep/internal/pkg/validator"
)

type Dependency struct {
	Ctx        context.Context
	DBConn     *pgxpool.Pool
	Enforcer   *casbin.Enforcer
	Messaging  messaging.Messaging
	Config     config.Config
	Instrument instrument.Instrumentation
	UID        uid.NumberID
	UUID       uid.StringID
	Clock      clock.Clocker
	Goroutine  *goroutine.Manager
	Validator  validator.Validator
	Router     *router.Router
}

func New(dep Dependency) error {
	repoDB := db.NewDB(dep.DBConn, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:     repoDB,
		Validator:  dep.Validator,
		UID:        dep.UID,
		Clock:      dep.Clock,
		Instrument: dep.Instrument,
		Enforcer:   dep.Enforcer,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)
	if dep.Ctx != nil {
		inbound.RegisterMQConsumer(dep.Ctx, dep.Config, dep.Goroutine, dep.Messaging, dep.UUID, uc, dep.Instrument)
	}

	return nil
}
