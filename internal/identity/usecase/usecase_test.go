package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shandysiswandi/innkeep/internal/identity/entity"
	"github.com/shandysiswandi/innkeep/internal/pkg/goerror"
	"github.com/shandysiswandi/innkeep/internal/pkg/instrument"
	"github.com/shandysiswandi/innkeep/internal/pkg/jwt"
	"github.com/shandysiswandi/innkeep/internal/pkg/otp"
	"github.com/shandysiswandi/innkeep/internal/pkg/validator"
)

type stubRepoDB struct {
	getUserLoginInfo     func(ctx context.Context, email string) (*entity.UserLoginInfo, error)
	getUserByIdentifier  func(ctx context.Context, identifier string) (*entity.User, error)
	createRefreshToken   func(ctx context.Context, in entity.RefreshToken) error
	updateUserCredential func(ctx context.Context, userID int64, hash string) error
}

func (s *stubRepoDB) GetUserLoginInfo(ctx context.Context, email string) (*entity.UserLoginInfo, error) {
	return s.getUserLoginInfo(ctx, email)
}

func (s *stubRepoDB) GetUserByIdentifier(ctx context.Context, identifier string) (*entity.User, error) {
	return s.getUserByIdentifier(ctx, identifier)
}

func (s *stubRepoDB) GetUserByEmail(context.Context, string) (*entity.User, error) {
	return nil, goerror.ErrNotFound
}

func (s *stubRepoDB) GetUserByID(context.Context, int64) (*entity.User, error) {
	return nil, goerror.ErrNotFound
}

func (s *stubRepoDB) GetUserList(context.Context, entity.UserListFilterData) ([]entity.User, int64, error) {
	return nil, 0, nil
}

func (s *stubRepoDB) GetUserRefreshToken(context.Context, string) (*entity.UserRefreshToken, error) {
	return nil, goerror.ErrNotFound
}

func (s *stubRepoDB) CreateUser(context.Context, entity.NewUser, string) error { return nil }

func (s *stubRepoDB) CreateRefreshToken(ctx context.Context, in entity.RefreshToken) error {
	if s.createRefreshToken == nil {
		return nil
	}
	return s.createRefreshToken(ctx, in)
}

func (s *stubRepoDB) UpdateUser(context.Context, entity.PatchUser, string) error { return nil }

func (s *stubRepoDB) UpdateUserProfile(context.Context, int64, string, string) error { return nil }

func (s *stubRepoDB) UpdateUserCredential(ctx context.Context, userID int64, hash string) error {
	if s.updateUserCredential == nil {
		return nil
	}
	return s.updateUserCredential(ctx, userID, hash)
}

func (s *stubRepoDB) RevokeRefreshToken(context.Context, string) error { return nil }

func (s *stubRepoDB) RotateRefreshToken(context.Context, entity.RotateRefreshToken) error {
	return nil
}

func (s *stubRepoDB) MarkUserDeleted(context.Context, int64, int64) error { return nil }

type stubOTPService struct {
	request func(ctx context.Context, identifier, channel string) (*otp.ChallengeReceipt, error)
	verify  func(ctx context.Context, identifier, code string) (*otp.Verification, error)
	redeem  func(ctx context.Context, identifier, token string) error
}

func (s *stubOTPService) RequestChallenge(ctx context.Context, identifier, channel string) (*otp.ChallengeReceipt, error) {
	return s.request(ctx, identifier, channel)
}

func (s *stubOTPService) VerifyChallenge(ctx context.Context, identifier, code string) (*otp.Verification, error) {
	return s.verify(ctx, identifier, code)
}

func (s *stubOTPService) RedeemResetCredential(ctx context.Context, identifier, token string) error {
	return s.redeem(ctx, identifier, token)
}

type captureMessaging struct {
	events []ActivityEvent
}

func (c *captureMessaging) PublishActivity(_ context.Context, msg ActivityEvent) error {
	c.events = append(c.events, msg)
	return nil
}

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

type fakeHash struct {
	prefix string
}

func (f *fakeHash) Hash(plaintext string) ([]byte, error) {
	return []byte(f.prefix + plaintext), nil
}

func (f *fakeHash) Verify(hashed, plaintext string) bool {
	return hashed == f.prefix+plaintext
}

type stubJWT struct{}

func (stubJWT) Generate(int64, string) (string, error) { return "signed-access-token", nil }

func (stubJWT) Verify(string) (jwt.Claims, error) { return jwt.Claims{}, nil }

type fixedNumberID struct {
	id int64
}

func (f fixedNumberID) Generate() int64 { return f.id }

type fixedStringID struct {
	id string
}

func (f fixedStringID) Generate() string { return f.id }

type stubConfig struct {
	days map[string]time.Duration
}

func (stubConfig) Close() error                     { return nil }
func (stubConfig) GetSecond(string) time.Duration   { return 0 }
func (stubConfig) GetMinute(string) time.Duration   { return 0 }
func (stubConfig) GetHour(string) time.Duration     { return 0 }
func (c stubConfig) GetDay(key string) time.Duration {
	return c.days[key]
}
func (stubConfig) GetInt(string) int               { return 0 }
func (stubConfig) GetInt32(string) int32           { return 0 }
func (stubConfig) GetInt64(string) int64           { return 0 }
func (stubConfig) GetUint(string) uint             { return 0 }
func (stubConfig) GetUint16(string) uint16         { return 0 }
func (stubConfig) GetUint32(string) uint32         { return 0 }
func (stubConfig) GetUint64(string) uint64         { return 0 }
func (stubConfig) GetFloat32(string) float32       { return 0 }
func (stubConfig) GetFloat64(string) float64       { return 0 }
func (stubConfig) GetBool(string) bool             { return false }
func (stubConfig) GetString(string) string         { return "" }
func (stubConfig) GetBinary(string) []byte         { return nil }
func (stubConfig) GetArray(string) []string        { return nil }
func (stubConfig) GetMap(string) map[string]string { return nil }

type usecaseStubs struct {
	repo *stubRepoDB
	otp  *stubOTPService
	msg  *captureMessaging
}

func newTestUsecase(t *testing.T) (*Usecase, *usecaseStubs) {
	t.Helper()

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("init validator: %v", err)
	}

	stubs := &usecaseStubs{
		repo: &stubRepoDB{},
		otp:  &stubOTPService{},
		msg:  &captureMessaging{},
	}

	uc := New(Dependency{
		RepoDB:        stubs.repo,
		RepoMessaging: stubs.msg,
		OTP:           stubs.otp,
		Validator:     v10,
		Config:        stubConfig{days: map[string]time.Duration{"modules.identity.refresh_token_ttl_days": 7 * 24 * time.Hour}},
		HMAC:          &fakeHash{prefix: "hmac:"},
		Bcrypt:        &fakeHash{prefix: "bcrypt:"},
		UID:           fixedNumberID{id: 9001},
		OID:           fixedStringID{id: "a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6"},
		Clock:         &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
		JWT:           stubJWT{},
		Instrument:    instrument.NewNoop(),
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
