package usecase

import (
	"context"
	"testing"

	"github.com/shandysiswandi/innkeep/internal/hotel/entity"
	"github.com/shandysiswandi/innkeep/internal/pkg/goerror"
	"github.com/shandysiswandi/innkeep/internal/shared/constant"
)

func TestFeedbackSubmitIsPublic(t *testing.T) {
	uc, stubs := newTestUsecase(t, newTestEnforcer(t, "42"))

	var created entity.NewFeedback
	stubs.repo.createFeedback = func(_ context.Context, fb entity.NewFeedback) error {
		created = fb
		return nil
	}

	err := uc.FeedbackSubmit(context.Background(), FeedbackSubmitInput{
		GuestName: "  Jordan Guest  ",
		Email:     " Jordan@Example.Com ",
		Rating:    5,
		Comment:   "  Lovely stay, great staff.  ",
	})
	if err != nil {
		t.Fatalf("feedback submit: %v", err)
	}

	if created.ID != 5001 {
		t.Fatalf("expected generated id, got %d", created.ID)
	}
	if created.GuestName != "Jordan Guest" || created.Comment != "Lovely stay, great staff." {
		t.Fatalf("inputs must be trimmed, got %+v", created)
	}
	if created.Email != "jordan@example.com" {
		t.Fatalf("email must be normalized, got %q", created.Email)
	}
}

func TestFeedbackSubmitValidation(t *testing.T) {
	uc, _ := newTestUsecase(t, newTestEnforcer(t, "42"))

	cases := []FeedbackSubmitInput{
		{GuestName: "J", Rating: 5, Comment: "Nice place."},
		{GuestName: "Jordan", Rating: 0, Comment: "Nice place."},
		{GuestName: "Jordan", Rating: 6, Comment: "Nice place."},
		{GuestName: "Jordan", Rating: 4, Comment: "no"},
		{GuestName: "Jordan", Email: "not-an-email", Rating: 4, Comment: "Nice place."},
	}

	for _, in := range cases {
		if err := uc.FeedbackSubmit(context.Background(), in); err == nil {
			t.Fatalf("input %+v must be rejected", in)
		}
	}
}

func TestFeedbackModeratePublishes(t *testing.T) {
	enforcer := newTestEnforcer(t, "42", constant.PermHotelFeedback, constant.PermActUpdate)
	uc, stubs := newTestUsecase(t, enforcer)

	var gotID, gotBy int64
	var gotStatus entity.FeedbackStatus
	stubs.repo.updateFeedbackStatus = func(_ context.Context, id int64, status entity.FeedbackStatus, byID int64) error {
		gotID, gotStatus, gotBy = id, status, byID
		return nil
	}

	err := uc.FeedbackModerate(authedContext(42, "42"), FeedbackModerateInput{
		ID:     77,
		Status: int16(entity.FeedbackStatusPublished),
	})
	if err != nil {
		t.Fatalf("feedback moderate: %v", err)
	}

	if gotID != 77 || gotStatus != entity.FeedbackStatusPublished || gotBy != 42 {
		t.Fatalf("unexpected moderation call id=%d status=%v by=%d", gotID, gotStatus, gotBy)
	}
	if len(stubs.msg.events) != 1 || stubs.msg.events[0].Action != "feedback_moderated" {
		t.Fatalf("expected a moderation activity event, got %+v", stubs.msg.events)
	}
}

func TestFeedbackModerateRejectsUnknownStatus(t *testing.T) {
	enforcer := newTestEnforcer(t, "42", constant.PermHotelFeedback, constant.PermActUpdate)
	uc, _ := newTestUsecase(t, enforcer)

	err := uc.FeedbackModerate(authedContext(42, "42"), FeedbackModerateInput{ID: 77, Status: 9})

	assertErrorCode(t, err, goerror.CodeInvalidInput)
}

func TestFeedbackModerateMissingEntry(t *testing.T) {
	enforcer := newTestEnforcer(t, "42", constant.PermHotelFeedback, constant.PermActUpdate)
	uc, stubs := newTestUsecase(t, enforcer)

	stubs.repo.updateFeedbackStatus = func(context.Context, int64, entity.FeedbackStatus, int64) error {
		return goerror.ErrNotFound
	}

	err := uc.FeedbackModerate(authedContext(42, "42"), FeedbackModerateInput{
		ID:     404,
		Status: int16(entity.FeedbackStatusHidden),
	})

	assertErrorCode(t, err, goerror.CodeNotFound)
}
