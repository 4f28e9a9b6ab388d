package usecase

import (
	"context"
	"testing"

	"github.com/shandysiswandi/innkeep/internal/hotel/entity"
	"github.com/shandysiswandi/innkeep/internal/pkg/goerror"
	"github.com/shandysiswandi/innkeep/internal/shared/constant"
)

func TestGuestListRequiresAuthentication(t *testing.T) {
	uc, _ := newTestUsecase(t, newTestEnforcer(t, "42"))

	_, err := uc.GuestList(context.Background(), GuestListInput{})

	assertErrorCode(t, err, goerror.CodeUnauthorized)
}

func TestGuestListRequiresPermission(t *testing.T) {
	uc, _ := newTestUsecase(t, newTestEnforcer(t, "42"))

	_, err := uc.GuestList(authedContext(42, "42"), GuestListInput{})

	assertErrorCode(t, err, goerror.CodeForbidden)
}

func TestGuestListAppliesPaginationDefaults(t *testing.T) {
	enforcer := newTestEnforcer(t, "42", constant.PermHotelGuests, constant.PermActRead)
	uc, stubs := newTestUsecase(t, enforcer)

	var captured entity.GuestListFilterData
	stubs.repo.getGuestList = func(_ context.Context, filter entity.GuestListFilterData) ([]entity.Guest, int64, error) {
		captured = filter
		return []entity.Guest{{ID: 1, FullName: "A Guest"}}, 1, nil
	}

	out, err := uc.GuestList(authedContext(42, "42"), GuestListInput{})
	if err != nil {
		t.Fatalf("guest list: %v", err)
	}

	if captured.Size != 10 || captured.Page != 0 {
		t.Fatalf("expected default size 10 offset 0, got size=%d offset=%d", captured.Size, captured.Page)
	}
	if out.Size != 10 || out.Page != 1 {
		t.Fatalf("expected size 10 page 1 echoed back, got size=%d page=%d", out.Size, out.Page)
	}
	if out.Total != 1 || len(out.Guests) != 1 {
		t.Fatalf("unexpected result %+v", out)
	}
}

func TestGuestListClampsSizeAndComputesOffset(t *testing.T) {
	enforcer := newTestEnforcer(t, "42", constant.PermHotelGuests, constant.PermActRead)
	uc, stubs := newTestUsecase(t, enforcer)

	var captured entity.GuestListFilterData
	stubs.repo.getGuestList = func(_ context.Context, filter entity.GuestListFilterData) ([]entity.Guest, int64, error) {
		captured = filter
		return nil, 0, nil
	}

	if _, err := uc.GuestList(authedContext(42, "42"), GuestListInput{Size: 500, Page: 3}); err != nil {
		t.Fatalf("guest list: %v", err)
	}

	if captured.Size != 100 {
		t.Fatalf("size must be clamped to 100, got %d", captured.Size)
	}
	if captured.Page != 200 {
		t.Fatalf("expected offset 200 for page 3, got %d", captured.Page)
	}
}

func TestGuestListTrimsSearch(t *testing.T) {
	enforcer := newTestEnforcer(t, "42", constant.PermHotelGuests, constant.PermActRead)
	uc, stubs := newTestUsecase(t, enforcer)

	var captured entity.GuestListFilterData
	stubs.repo.getGuestList = func(_ context.Context, filter entity.GuestListFilterData) ([]entity.Guest, int64, error) {
		captured = filter
		return nil, 0, nil
	}

	if _, err := uc.GuestList(authedContext(42, "42"), GuestListInput{Search: "  smith  "}); err != nil {
		t.Fatalf("guest list: %v", err)
	}

	if !captured.IsFilterBySearch || captured.Search != "smith" {
		t.Fatalf("expected trimmed search filter, got %+v", captured)
	}
}
