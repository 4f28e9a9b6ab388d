package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/casbin/casbin/v3"
	"github.com/casbin/casbin/v3/model"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/shandysiswandi/innkeep/internal/hotel/entity"
	"github.com/shandysiswandi/innkeep/internal/pkg/goerror"
	"github.com/shandysiswandi/innkeep/internal/pkg/idempotency"
	"github.com/shandysiswandi/innkeep/internal/pkg/instrument"
	"github.com/shandysiswandi/innkeep/internal/pkg/jwt"
	"github.com/shandysiswandi/innkeep/internal/pkg/validator"
)

type stubRepoDB struct {
	getGuestList         func(ctx context.Context, filter entity.GuestListFilterData) ([]entity.Guest, int64, error)
	createFeedback       func(ctx context.Context, fb entity.NewFeedback) error
	updateFeedbackStatus func(ctx context.Context, id int64, status entity.FeedbackStatus, byID int64) error
	createBlog           func(ctx context.Context, blog entity.NewBlog) error
}

func (s *stubRepoDB) GetGuestList(ctx context.Context, filter entity.GuestListFilterData) ([]entity.Guest, int64, error) {
	return s.getGuestList(ctx, filter)
}

func (s *stubRepoDB) GetGuestByID(context.Context, int64) (*entity.Guest, error) {
	return nil, goerror.ErrNotFound
}

func (s *stubRepoDB) CreateGuest(context.Context, entity.NewGuest) error { return nil }

func (s *stubRepoDB) UpdateGuest(context.Context, entity.PatchGuest) error { return nil }

func (s *stubRepoDB) MarkGuestDeleted(context.Context, int64, int64) error { return nil }

func (s *stubRepoDB) GetPromotionList(context.Context, int32, int32) ([]entity.Promotion, int64, error) {
	return nil, 0, nil
}

func (s *stubRepoDB) GetPromotionByID(context.Context, int64) (*entity.Promotion, error) {
	return nil, goerror.ErrNotFound
}

func (s *stubRepoDB) CreatePromotion(context.Context, entity.NewPromotion) error { return nil }

func (s *stubRepoDB) UpdatePromotion(context.Context, entity.PatchPromotion) error { return nil }

func (s *stubRepoDB) MarkPromotionDeleted(context.Context, int64, int64) error { return nil }

func (s *stubRepoDB) GetFeedbackList(context.Context, entity.FeedbackListFilterData) ([]entity.Feedback, int64, error) {
	return nil, 0, nil
}

func (s *stubRepoDB) CreateFeedback(ctx context.Context, fb entity.NewFeedback) error {
	if s.createFeedback == nil {
		return nil
	}
	return s.createFeedback(ctx, fb)
}

func (s *stubRepoDB) UpdateFeedbackStatus(ctx context.Context, id int64, status entity.FeedbackStatus, byID int64) error {
	if s.updateFeedbackStatus == nil {
		return nil
	}
	return s.updateFeedbackStatus(ctx, id, status, byID)
}

func (s *stubRepoDB) GetBlogList(context.Context, entity.BlogListFilterData) ([]entity.Blog, int64, error) {
	return nil, 0, nil
}

func (s *stubRepoDB) GetBlogByID(context.Context, int64) (*entity.Blog, error) {
	return nil, goerror.ErrNotFound
}

func (s *stubRepoDB) CreateBlog(ctx context.Context, blog entity.NewBlog) error {
	if s.createBlog == nil {
		return nil
	}
	return s.createBlog(ctx, blog)
}

func (s *stubRepoDB) UpdateBlogCover(context.Context, int64, string) error { return nil }

func (s *stubRepoDB) MarkBlogDeleted(context.Context, int64, int64) error { return nil }

type captureMessaging struct {
	events []ActivityEvent
}

func (c *captureMessaging) PublishActivity(_ context.Context, msg ActivityEvent) error {
	c.events = append(c.events, msg)
	return nil
}

// stubIdempotency runs the guarded function once and replays a terminal state
// for keys it has already seen.
type stubIdempotency struct {
	seen map[string]error
}

func (s *stubIdempotency) Acquire(context.Context, string, time.Duration) (idempotency.State, error) {
	return idempotency.StateNone, nil
}

func (s *stubIdempotency) MarkCompleted(context.Context, string, time.Duration) error { return nil }

func (s *stubIdempotency) MarkFailed(context.Context, string, time.Duration) error { return nil }

func (s *stubIdempotency) Exec(ctx context.Context, key string, fn func(context.Context) error, _ ...idempotency.Option) error {
	if err, ok := s.seen[key]; ok {
		return err
	}

	if s.seen == nil {
		s.seen = make(map[string]error)
	}

	if err := fn(ctx); err != nil {
		s.seen[key] = err
		return err
	}

	s.seen[key] = idempotency.ErrAlreadyCompleted
	return nil
}

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

type fixedNumberID struct {
	id int64
}

func (f fixedNumberID) Generate() int64 { return f.id }

type fixedStringID struct {
	id string
}

func (f fixedStringID) Generate() string { return f.id }

type stubConfig struct{}

func (stubConfig) Close() error                     { return nil }
func (stubConfig) GetSecond(string) time.Duration   { return 0 }
func (stubConfig) GetMinute(string) time.Duration   { return 0 }
func (stubConfig) GetHour(string) time.Duration     { return 0 }
func (stubConfig) GetDay(string) time.Duration      { return 0 }
func (stubConfig) GetInt(string) int                { return 0 }
func (stubConfig) GetInt32(string) int32            { return 0 }
func (stubConfig) GetInt64(string) int64            { return 0 }
func (stubConfig) GetUint(string) uint              { return 0 }
func (stubConfig) GetUint16(string) uint16          { return 0 }
func (stubConfig) GetUint32(string) uint32          { return 0 }
func (stubConfig) GetUint64(string) uint64          { return 0 }
func (stubConfig) GetFloat32(string) float32        { return 0 }
func (stubConfig) GetFloat64(string) float64        { return 0 }
func (stubConfig) GetBool(string) bool              { return false }
func (stubConfig) GetString(string) string          { return "" }
func (stubConfig) GetBinary(string) []byte          { return nil }
func (stubConfig) GetArray(string) []string         { return nil }
func (stubConfig) GetMap(string) map[string]string  { return nil }

const testRBACModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && (p.obj == "*" || r.obj == p.obj) && (p.act == "*" || r.act == p.act)
`

func newTestEnforcer(t *testing.T, subject string, objActPairs ...string) *casbin.Enforcer {
	t.Helper()

	m, err := model.NewModelFromString(testRBACModel)
	if err != nil {
		t.Fatalf("init casbin model: %v", err)
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		t.Fatalf("init casbin enforcer: %v", err)
	}

	for i := 0; i+1 < len(objActPairs); i += 2 {
		if _, err := e.AddPolicy(subject, objActPairs[i], objActPairs[i+1]); err != nil {
			t.Fatalf("add policy: %v", err)
		}
	}

	return e
}

func authedContext(userID int64, subject string) context.Context {
	return jwt.SetAuth(context.Background(), jwt.Claims{
		RegisteredClaims: jwtlib.RegisteredClaims{Subject: subject},
		UserID:           userID,
	})
}

type usecaseStubs struct {
	repo  *stubRepoDB
	msg   *captureMessaging
	idemp *stubIdempotency
}

func newTestUsecase(t *testing.T, enforcer *casbin.Enforcer) (*Usecase, *usecaseStubs) {
	t.Helper()

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("init validator: %v", err)
	}

	stubs := &usecaseStubs{
		repo:  &stubRepoDB{},
		msg:   &captureMessaging{},
		idemp: &stubIdempotency{},
	}

	uc := New(Dependency{
		RepoDB:        stubs.repo,
		RepoMessaging: stubs.msg,
		Idempotency:   stubs.idemp,
		Validator:     v10,
		Config:        stubConfig{},
		UID:           fixedNumberID{id: 5001},
		UUID:          fixedStringID{id: "0123456789abcdef0123456789abcdef"},
		Clock:         &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
		Instrument:    instrument.NewNoop(),
		Enforcer:      enforcer,
	})

	return uc, stubs
}

func assertErrorCode(t *testing.T, err error, code goerror.Code) *goerror.Error {
	t.Helper()

	if err == nil {
		t.Fatalf("expected an error with code %v, got nil", code)
	}

	appErr, ok := err.(*goerror.Error)
	if !ok {
		t.Fatalf("expected *goerror.Error, got %T: %v", err, err)
	}
	if appErr.Code() != code {
		t.Fatalf("expected code %v, got %v (%s)", code, appErr.Code(), appErr.Error())
	}

	return appErr
}
