package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shandysiswandi/innkeep/internal/identity/entity"
	"github.com/shandysiswandi/innkeep/internal/pkg/goerror"
)

func TestLoginIssuesTokenPair(t *testing.T) {
	uc, stubs := newTestUsecase(t)

	stubs.repo.getUserLoginInfo = func(_ context.Context, email string) (*entity.UserLoginInfo, error) {
		if email != "staff@hotel.test" {
			t.Fatalf("email must be normalized, got %q", email)
		}
		return &entity.UserLoginInfo{
			ID:       42,
			Email:    email,
			Status:   entity.UserStatusActive,
			Password: "bcrypt:s3cret-pass",
		}, nil
	}

	var stored entity.RefreshToken
	stubs.repo.createRefreshToken = func(_ context.Context, in entity.RefreshToken) error {
		stored = in
		return nil
	}

	out, err := uc.Login(context.Background(), LoginInput{
		Email:    "Staff@Hotel.Test",
		Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if out.AccessToken != "signed-access-token" {
		t.Fatalf("unexpected access token %q", out.AccessToken)
	}
	if out.RefreshToken == "" {
		t.Fatal("expected an opaque refresh token")
	}

	if stored.UserID != 42 {
		t.Fatalf("refresh token stored for wrong user %d", stored.UserID)
	}
	if stored.Token == out.RefreshToken {
		t.Fatal("refresh token must be stored hashed, not in the clear")
	}
	wantExpiry := time.Date(2025, 6, 8, 12, 0, 0, 0, time.UTC)
	if !stored.ExpiresAt.Equal(wantExpiry) {
		t.Fatalf("expected expiry %v, got %v", wantExpiry, stored.ExpiresAt)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	uc, stubs := newTestUsecase(t)

	stubs.repo.getUserLoginInfo = func(context.Context, string) (*entity.UserLoginInfo, error) {
		return nil, goerror.ErrNotFound
	}

	_, err := uc.Login(context.Background(), LoginInput{
		Email:    "nobody@hotel.test",
		Password: "whatever-pass",
	})

	appErr := assertErrorCode(t, err, goerror.CodeUnauthorized)
	if appErr.Msg() != "invalid email or password" {
		t.Fatalf("unknown account must get the uniform message, got %q", appErr.Msg())
	}
}

func TestLoginWrongPassword(t *testing.T) {
	uc, stubs := newTestUsecase(t)

	stubs.repo.getUserLoginInfo = func(context.Context, string) (*entity.UserLoginInfo, error) {
		return &entity.UserLoginInfo{
			ID:       42,
			Email:    "staff@hotel.test",
			Status:   entity.UserStatusActive,
			Password: "bcrypt:s3cret-pass",
		}, nil
	}

	_, err := uc.Login(context.Background(), LoginInput{
		Email:    "staff@hotel.test",
		Password: "wrong-pass-123",
	})

	appErr := assertErrorCode(t, err, goerror.CodeUnauthorized)
	if appErr.Msg() != "invalid email or password" {
		t.Fatalf("wrong password must get the uniform message, got %q", appErr.Msg())
	}
}

func TestLoginDeactivatedAccount(t *testing.T) {
	uc, stubs := newTestUsecase(t)

	stubs.repo.getUserLoginInfo = func(context.Context, string) (*entity.UserLoginInfo, error) {
		return &entity.UserLoginInfo{
			ID:       42,
			Email:    "staff@hotel.test",
			Status:   entity.UserStatusInactive,
			Password: "bcrypt:s3cret-pass",
		}, nil
	}

	_, err := uc.Login(context.Background(), LoginInput{
		Email:    "staff@hotel.test",
		Password: "s3cret-pass",
	})

	assertErrorCode(t, err, goerror.CodeForbidden)
}

func TestLoginRejectsMalformedEmail(t *testing.T) {
	uc, _ := newTestUsecase(t)

	_, err := uc.Login(context.Background(), LoginInput{
		Email:    "not-an-email",
		Password: "s3cret-pass",
	})

	assertErrorCode(t, err, goerror.CodeInvalidInput)
}
