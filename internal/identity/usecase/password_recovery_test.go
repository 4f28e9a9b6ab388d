package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shandysiswandi/innkeep/internal/identity/entity"
	"github.com/shandysiswandi/innkeep/internal/pkg/goerror"
	"github.com/shandysiswandi/innkeep/internal/pkg/otp"
)

func activeUser(id int64) *entity.User {
	return &entity.User{ID: id, Email: "staff@hotel.test", FullName: "Front Desk", Status: entity.UserStatusActive}
}

func TestPasswordForgotDeliversChallenge(t *testing.T) {
	uc, stubs := newTestUsecase(t)

	var requestedIdentifier string
	stubs.repo.getUserByIdentifier = func(_ context.Context, identifier string) (*entity.User, error) {
		requestedIdentifier = identifier
		return activeUser(42), nil
	}
	stubs.otp.request = func(_ context.Context, identifier, channel string) (*otp.ChallengeReceipt, error) {
		return &otp.ChallengeReceipt{
			Channel:           channel,
			MaskedDestination: "s***@hotel.test",
			ExpiresIn:         5 * time.Minute,
		}, nil
	}

	out, err := uc.PasswordForgot(context.Background(), PasswordForgotInput{
		Identifier: "  Staff@Hotel.Test ",
		Channel:    "email",
	})
	if err != nil {
		t.Fatalf("password forgot: %v", err)
	}

	if requestedIdentifier != "staff@hotel.test" {
		t.Fatalf("identifier must be normalized, got %q", requestedIdentifier)
	}
	if out.Channel != "email" || out.MaskedDestination != "s***@hotel.test" {
		t.Fatalf("unexpected output %+v", out)
	}
	if out.ExpiresIn != 300 {
		t.Fatalf("expected 300 seconds expiry, got %d", out.ExpiresIn)
	}

	if len(stubs.msg.events) != 1 || stubs.msg.events[0].Action != "password_recovery_requested" {
		t.Fatalf("expected a recovery activity event, got %+v", stubs.msg.events)
	}
}

func TestPasswordForgotUnknownIdentifier(t *testing.T) {
	uc, stubs := newTestUsecase(t)

	stubs.repo.getUserByIdentifier = func(context.Context, string) (*entity.User, error) {
		return nil, goerror.ErrNotFound
	}

	_, err := uc.PasswordForgot(context.Background(), PasswordForgotInput{
		Identifier: "nobody@hotel.test",
		Channel:    "email",
	})

	assertErrorCode(t, err, goerror.CodeNotFound)
}

func TestPasswordForgotBannedAccount(t *testing.T) {
	uc, stubs := newTestUsecase(t)

	stubs.repo.getUserByIdentifier = func(context.Context, string) (*entity.User, error) {
		return &entity.User{ID: 7, Status: entity.UserStatusBanned}, nil
	}

	_, err := uc.PasswordForgot(context.Background(), PasswordForgotInput{
		Identifier: "banned@hotel.test",
		Channel:    "sms",
	})

	assertErrorCode(t, err, goerror.CodeForbidden)
}

func TestPasswordForgotRejectsUnknownChannel(t *testing.T) {
	uc, _ := newTestUsecase(t)

	_, err := uc.PasswordForgot(context.Background(), PasswordForgotInput{
		Identifier: "staff@hotel.test",
		Channel:    "voice",
	})

	assertErrorCode(t, err, goerror.CodeInvalidInput)
}

func TestPasswordVerifyIssuesResetToken(t *testing.T) {
	uc, stubs := newTestUsecase(t)

	stubs.otp.verify = func(_ context.Context, identifier, code string) (*otp.Verification, error) {
		if identifier != "staff@hotel.test" || code != "123456" {
			t.Fatalf("unexpected verification input %q %q", identifier, code)
		}
		return &otp.Verification{ResetToken: strings.Repeat("ab", 32), ExpiresIn: 15 * time.Minute}, nil
	}

	out, err := uc.PasswordVerify(context.Background(), PasswordVerifyInput{
		Identifier: "Staff@Hotel.Test",
		Code:       "123456",
	})
	if err != nil {
		t.Fatalf("password verify: %v", err)
	}

	if out.ResetToken != strings.Repeat("ab", 32) {
		t.Fatalf("unexpected reset token %q", out.ResetToken)
	}
	if out.ExpiresIn != 900 {
		t.Fatalf("expected 900 seconds expiry, got %d", out.ExpiresIn)
	}
}

func TestPasswordVerifyMismatchReportsRemaining(t *testing.T) {
	uc, stubs := newTestUsecase(t)

	stubs.otp.verify = func(context.Context, string, string) (*otp.Verification, error) {
		return nil, &otp.MismatchError{Remaining: 1}
	}

	_, err := uc.PasswordVerify(context.Background(), PasswordVerifyInput{
		Identifier: "staff@hotel.test",
		Code:       "000000",
	})

	appErr := assertErrorCode(t, err, goerror.CodeUnauthorized)
	if !strings.Contains(appErr.Msg(), "1 attempts remaining") {
		t.Fatalf("mismatch must surface remaining attempts, got %q", appErr.Msg())
	}
}

func TestPasswordVerifyExpiredChallenge(t *testing.T) {
	uc, stubs := newTestUsecase(t)

	stubs.otp.verify = func(context.Context, string, string) (*otp.Verification, error) {
		return nil, otp.ErrChallengeInvalid
	}

	_, err := uc.PasswordVerify(context.Background(), PasswordVerifyInput{
		Identifier: "staff@hotel.test",
		Code:       "123456",
	})

	assertErrorCode(t, err, goerror.CodeUnauthorized)
}

func TestPasswordVerifyRejectsMalformedCode(t *testing.T) {
	uc, _ := newTestUsecase(t)

	for _, code := range []string{"", "12345", "12345a", "1234567"} {
		_, err := uc.PasswordVerify(context.Background(), PasswordVerifyInput{
			Identifier: "staff@hotel.test",
			Code:       code,
		})

		assertErrorCode(t, err, goerror.CodeInvalidInput)
	}
}

func TestPasswordResetPersistsNewCredential(t *testing.T) {
	uc, stubs := newTestUsecase(t)

	token := strings.Repeat("cd", 32)
	stubs.otp.redeem = func(_ context.Context, identifier, got string) error {
		if identifier != "staff@hotel.test" || got != token {
			t.Fatalf("unexpected redemption input %q %q", identifier, got)
		}
		return nil
	}
	stubs.repo.getUserByIdentifier = func(context.Context, string) (*entity.User, error) {
		return activeUser(42), nil
	}

	var storedHash string
	stubs.repo.updateUserCredential = func(_ context.Context, userID int64, hash string) error {
		if userID != 42 {
			t.Fatalf("unexpected user id %d", userID)
		}
		storedHash = hash
		return nil
	}

	err := uc.PasswordReset(context.Background(), PasswordResetInput{
		Identifier:  "staff@hotel.test",
		ResetToken:  token,
		NewPassword: "brand-new-pass-1",
	})
	if err != nil {
		t.Fatalf("password reset: %v", err)
	}

	if storedHash != "bcrypt:brand-new-pass-1" {
		t.Fatalf("new password must be hashed before storage, got %q", storedHash)
	}
	if len(stubs.msg.events) != 1 || stubs.msg.events[0].Action != "password_reset" {
		t.Fatalf("expected a reset activity event, got %+v", stubs.msg.events)
	}
}

func TestPasswordResetInvalidToken(t *testing.T) {
	uc, stubs := newTestUsecase(t)

	stubs.otp.redeem = func(context.Context, string, string) error {
		return otp.ErrChallengeInvalid
	}

	err := uc.PasswordReset(context.Background(), PasswordResetInput{
		Identifier:  "staff@hotel.test",
		ResetToken:  strings.Repeat("ef", 32),
		NewPassword: "brand-new-pass-1",
	})

	assertErrorCode(t, err, goerror.CodeUnauthorized)
}

func TestPasswordResetRejectsMalformedToken(t *testing.T) {
	uc, _ := newTestUsecase(t)

	err := uc.PasswordReset(context.Background(), PasswordResetInput{
		Identifier:  "staff@hotel.test",
		ResetToken:  "not-hex",
		NewPassword: "brand-new-pass-1",
	})

	assertErrorCode(t, err, goerror.CodeInvalidInput)
}
