package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shandysiswandi/innkeep/internal/audit/entity"
	"github.com/shandysiswandi/innkeep/internal/pkg/instrument"
	"github.com/shandysiswandi/innkeep/internal/pkg/validator"
)

type stubRepoDB struct {
	createActivity  func(ctx context.Context, act entity.NewActivity) error
	getActivityList func(ctx context.Context, filter entity.ActivityListFilterData) ([]entity.Activity, int64, error)
}

func (s *stubRepoDB) CreateActivity(ctx context.Context, act entity.NewActivity) error {
	return s.createActivity(ctx, act)
}

func (s *stubRepoDB) GetActivityList(ctx context.Context, filter entity.ActivityListFilterData) ([]entity.Activity, int64, error) {
	return s.getActivityList(ctx, filter)
}

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

type fixedNumberID struct {
	id int64
}

func (f fixedNumberID) Generate() int64 { return f.id }

func newTestUsecase(t *testing.T) (*Usecase, *stubRepoDB) {
	t.Helper()

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("init validator: %v", err)
	}

	repo := &stubRepoDB{}
	uc := New(Dependency{
		RepoDB:     repo,
		Validator:  v10,
		UID:        fixedNumberID{id: 7001},
		Clock:      &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
		Instrument: instrument.NewNoop(),
	})

	return uc, repo
}

func TestRecordActivityPersistsEntry(t *testing.T) {
	uc, repo := newTestUsecase(t)

	occurred := time.Date(2025, 5, 31, 9, 30, 0, 0, time.UTC)
	var stored entity.NewActivity
	repo.createActivity = func(_ context.Context, act entity.NewActivity) error {
		stored = act
		return nil
	}

	err := uc.RecordActivity(context.Background(), RecordActivityInput{
		Actor:      42,
		Action:     "guest_created",
		Entity:     "guest",
		EntityID:   "1234",
		OccurredAt: occurred,
	})
	if err != nil {
		t.Fatalf("record activity: %v", err)
	}

	if stored.ID != 7001 || stored.Actor != 42 {
		t.Fatalf("unexpected stored activity %+v", stored)
	}
	if !stored.OccurredAt.Equal(occurred) {
		t.Fatalf("occurred_at must be preserved, got %v", stored.OccurredAt)
	}
}

func TestRecordActivityDefaultsOccurredAt(t *testing.T) {
	uc, repo := newTestUsecase(t)

	var stored entity.NewActivity
	repo.createActivity = func(_ context.Context, act entity.NewActivity) error {
		stored = act
		return nil
	}

	err := uc.RecordActivity(context.Background(), RecordActivityInput{
		Actor:    42,
		Action:   "blog_created",
		Entity:   "blog",
		EntityID: "5678",
	})
	if err != nil {
		t.Fatalf("record activity: %v", err)
	}

	want := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	if !stored.OccurredAt.Equal(want) {
		t.Fatalf("zero occurred_at must default to the clock, got %v", stored.OccurredAt)
	}
}

func TestRecordActivityRejectsIncompleteEvents(t *testing.T) {
	uc, _ := newTestUsecase(t)

	cases := []RecordActivityInput{
		{Action: "guest_created", Entity: "guest", EntityID: "1"},
		{Actor: 42, Entity: "guest", EntityID: "1"},
		{Actor: 42, Action: "guest_created", EntityID: "1"},
		{Actor: 42, Action: "guest_created", Entity: "guest"},
	}

	for _, in := range cases {
		if err := uc.RecordActivity(context.Background(), in); err == nil {
			t.Fatalf("input %+v must be rejected", in)
		}
	}
}
