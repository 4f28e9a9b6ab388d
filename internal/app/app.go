package app

import (
	"context"
	"net/http"

	"github.com/casbin/casbin/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/innkeep/internal/pkg/clock"
	"github.com/shandysiswandi/innkeep/internal/pkg/config"
	"github.com/shandysiswandi/innkeep/internal/pkg/goroutine"
	"github.com/shandysiswandi/innkeep/internal/pkg/hash"
	"github.com/shandysiswandi/innkeep/internal/pkg/idempotency"
	"github.com/shandysiswandi/innkeep/internal/pkg/instrument"
	"github.com/shandysiswandi/innkeep/internal/pkg/jwt"
	"github.com/shandysiswandi/innkeep/internal/pkg/mail"
	"github.com/shandysiswandi/innkeep/internal/pkg/messaging"
	"github.com/shandysiswandi/innkeep/internal/pkg/otp"
	"github.com/shandysiswandi/innkeep/internal/pkg/router"
	"github.com/shandysiswandi/innkeep/internal/pkg/sms"
	"github.com/shandysiswandi/innkeep/internal/pkg/storage"
	"github.com/shandysiswandi/innkeep/internal/pkg/uid"
	"github.com/shandysiswandi/innkeep/internal/pkg/validator"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine *goroutine.Manager
	validator validator.Validator
	clock     clock.Clocker
	hmac      hash.Hash
	bcrypt    hash.Hash
	uid       uid.NumberID
	oid       uid.StringID
	uuid      uid.StringID
	jwt       jwt.JWT

	// resources
	dbConn    *pgxpool.Pool
	cacheConn *redis.Client
	idemp     idempotency.Idempotency
	mail      mail.Mail
	sms       sms.Provider
	otp       *otp.Service
	messaging messaging.Messaging
	storage   storage.Storage
	casbin    *casbin.Enforcer

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initJWT()
	app.initDatabase()
	app.initCache()
	app.initMail()
	app.initSMS()
	app.initOTP()
	app.initStorage()
	app.initMessaging()
	app.initCasbin()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
