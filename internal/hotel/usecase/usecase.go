package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/casbin/casbin/v3"
	"github.com/shandysiswandi/innkeep/internal/hotel/entity"
	"github.com/shandysiswandi/innkeep/internal/pkg/clock"
	"github.com/shandysiswandi/innkeep/internal/pkg/config"
	"github.com/shandysiswandi/innkeep/internal/pkg/goerror"
	"github.com/shandysiswandi/innkeep/internal/pkg/idempotency"
	"github.com/shandysiswandi/innkeep/internal/pkg/instrument"
	"github.com/shandysiswandi/innkeep/internal/pkg/jwt"
	"github.com/shandysiswandi/innkeep/internal/pkg/storage"
	"github.com/shandysiswandi/innkeep/internal/pkg/uid"
	"github.com/shandysiswandi/innkeep/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type ActivityEvent struct {
	Actor      int64
	Action     string
	Entity     string
	EntityID   string
	OccurredAt time.Time
}

type repoMessaging interface {
	PublishActivity(ctx context.Context, msg ActivityEvent) error
}

type repoDB interface {
	GetGuestList(ctx context.Context, filter entity.GuestListFilterData) ([]entity.Guest, int64, error)
	GetGuestByID(ctx context.Context, id int64) (*entity.Guest, error)
	CreateGuest(ctx context.Context, guest entity.NewGuest) error
	UpdateGuest(ctx context.Context, guest entity.PatchGuest) error
	MarkGuestDeleted(ctx context.Context, id, byID int64) error

	GetPromotionList(ctx context.Context, size, page int32) ([]entity.Promotion, int64, error)
	GetPromotionByID(ctx context.Context, id int64) (*entity.Promotion, error)
	CreatePromotion(ctx context.Context, promo entity.NewPromotion) error
	UpdatePromotion(ctx context.Context, promo entity.PatchPromotion) error
	MarkPromotionDeleted(ctx context.Context, id, byID int64) error

	GetFeedbackList(ctx context.Context, filter entity.FeedbackListFilterData) ([]entity.Feedback, int64, error)
	CreateFeedback(ctx context.Context, fb entity.NewFeedback) error
	UpdateFeedbackStatus(ctx context.Context, id int64, status entity.FeedbackStatus, byID int64) error

	GetBlogList(ctx context.Context, filter entity.BlogListFilterData) ([]entity.Blog, int64, error)
	GetBlogByID(ctx context.Context, id int64) (*entity.Blog, error)
	CreateBlog(ctx context.Context, blog entity.NewBlog) error
	UpdateBlogCover(ctx context.Context, id int64, coverURL string) error
	MarkBlogDeleted(ctx context.Context, id, byID int64) error
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	idemp         idempotency.Idempotency
	validator     validator.Validator
	cfg           config.Config
	storage       storage.Storage
	uid           uid.NumberID
	uuid          uid.StringID
	clock         clock.Clocker
	ins           instrument.Instrumentation
	enforcer      *casbin.Enforcer
}

type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	Idempotency   idempotency.Idempotency
	Validator     validator.Validator
	Config        config.Config
	Storage       storage.Storage
	UID           uid.NumberID
	UUID          uid.StringID
	Clock         clock.Clocker
	Instrument    instrument.Instrumentation
	Enforcer      *casbin.Enforcer
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		idemp:         dep.Idempotency,
		validator:     dep.Validator,
		cfg:           dep.Config,
		storage:       dep.Storage,
		uid:           dep.UID,
		uuid:          dep.UUID,
		clock:         dep.Clock,
		ins:           dep.Instrument,
		enforcer:      dep.Enforcer,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("hotel.usecase").Start(ctx, name)
}

func (s *Usecase) authenticatedAndAuthorized(ctx context.Context, obj, act string) (*jwt.Claims, error) {
	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	ok, err := s.enforcer.Enforce(clm.Subject, obj, act)
	if err != nil {
		slog.ErrorContext(ctx, "failed to check authorization", "user_id", clm.Subject, "error", err)
		return nil, goerror.NewServer(err)
	}

	if !ok {
		return nil, goerror.NewBusiness("Account not allowed", goerror.CodeForbidden)
	}

	return clm, nil
}

// idempotent guards a create operation with a client-supplied idempotency key.
// An empty key runs the operation directly.
func (s *Usecase) idempotent(ctx context.Context, key string, fn func(context.Context) error) error {
	if key == "" {
		return fn(ctx)
	}

	err := s.idemp.Exec(ctx, "hotel:"+key, fn)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, idempotency.ErrAlreadyInProgress):
		return goerror.NewBusiness("request is already being processed", goerror.CodeConflict)
	case errors.Is(err, idempotency.ErrAlreadyCompleted):
		return goerror.NewBusiness("request was already processed", goerror.CodeConflict)
	default:
		return err
	}
}

func (s *Usecase) recordActivity(ctx context.Context, actor int64, action, ent, entityID string) {
	if err := s.repoMessaging.PublishActivity(ctx, ActivityEvent{
		Actor:      actor,
		Action:     action,
		Entity:     ent,
		EntityID:   entityID,
		OccurredAt: s.clock.Now(),
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish activity event", "action", action, "entity", ent, "error", err)
	}
}
