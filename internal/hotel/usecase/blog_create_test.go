package usecase

import (
	"context"
	"testing"

	"github.com/shandysiswandi/innkeep/internal/hotel/entity"
	"github.com/shandysiswandi/innkeep/internal/pkg/goerror"
	"github.com/shandysiswandi/innkeep/internal/shared/constant"
)

func TestBlogCreateBuildsSlug(t *testing.T) {
	enforcer := newTestEnforcer(t, "42", constant.PermHotelBlogs, constant.PermActCreate)
	uc, stubs := newTestUsecase(t, enforcer)

	var created entity.NewBlog
	stubs.repo.createBlog = func(_ context.Context, blog entity.NewBlog) error {
		created = blog
		return nil
	}

	out, err := uc.BlogCreate(authedContext(42, "42"), BlogCreateInput{
		Title: "Summer Pool Opening 2025",
		Body:  "The rooftop pool opens this weekend.",
	})
	if err != nil {
		t.Fatalf("blog create: %v", err)
	}

	if out.Slug != "summer-pool-opening-2025" {
		t.Fatalf("unexpected slug %q", out.Slug)
	}
	if created.Slug != out.Slug || created.AuthorID != 42 {
		t.Fatalf("unexpected stored blog %+v", created)
	}
	if len(stubs.msg.events) != 1 || stubs.msg.events[0].Action != "blog_created" {
		t.Fatalf("expected a blog activity event, got %+v", stubs.msg.events)
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Summer Pool Opening 2025":  "summer-pool-opening-2025",
		"Wi-Fi & Spa: What's New?":  "wi-fi-spa-what-s-new",
		"  Trimmed   Everywhere  ":  "trimmed-everywhere",
		"RoomService Goes 24/7":     "room-service-goes-24-7",
	}

	for in, want := range cases {
		if got := slugify(in); got != want {
			t.Fatalf("slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBlogCreateDuplicateSlug(t *testing.T) {
	enforcer := newTestEnforcer(t, "42", constant.PermHotelBlogs, constant.PermActCreate)
	uc, stubs := newTestUsecase(t, enforcer)

	stubs.repo.createBlog = func(context.Context, entity.NewBlog) error {
		return goerror.ErrConflict
	}

	_, err := uc.BlogCreate(authedContext(42, "42"), BlogCreateInput{
		Title: "Summer Pool Opening 2025",
		Body:  "The rooftop pool opens this weekend.",
	})

	appErr := assertErrorCode(t, err, goerror.CodeConflict)
	if appErr.Msg() != "blog slug already exists" {
		t.Fatalf("unexpected message %q", appErr.Msg())
	}
}

func TestBlogCreateReplayedIdempotencyKey(t *testing.T) {
	enforcer := newTestEnforcer(t, "42", constant.PermHotelBlogs, constant.PermActCreate)
	uc, stubs := newTestUsecase(t, enforcer)

	calls := 0
	stubs.repo.createBlog = func(context.Context, entity.NewBlog) error {
		calls++
		return nil
	}

	in := BlogCreateInput{
		IdempotencyKey: "req-123",
		Title:          "Summer Pool Opening 2025",
		Body:           "The rooftop pool opens this weekend.",
	}

	if _, err := uc.BlogCreate(authedContext(42, "42"), in); err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err := uc.BlogCreate(authedContext(42, "42"), in)

	assertErrorCode(t, err, goerror.CodeConflict)
	if calls != 1 {
		t.Fatalf("replayed key must not re-run the write, got %d calls", calls)
	}
}

func TestBlogCreateRequiresPermission(t *testing.T) {
	uc, _ := newTestUsecase(t, newTestEnforcer(t, "42"))

	_, err := uc.BlogCreate(authedContext(42, "42"), BlogCreateInput{
		Title: "Summer Pool Opening 2025",
		Body:  "The rooftop pool opens this weekend.",
	})

	assertErrorCode(t, err, goerror.CodeForbidden)
}
