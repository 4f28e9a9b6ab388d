package inbound

import (
	"context"

	"github.com/shandysiswandi/innkeep/internal/hotel/usecase"
	"github.com/shandysiswandi/innkeep/internal/pkg/router"
)

type uc interface {
	GuestList(ctx context.Context, in usecase.GuestListInput) (*usecase.GuestListOutput, error)
	GuestDetail(ctx context.Context, in usecase.GuestDetailInput) (*usecase.GuestDetailOutput, error)
	GuestCreate(ctx context.Context, in usecase.GuestCreateInput) error
	GuestUpdate(ctx context.Context, in usecase.GuestUpdateInput) error
	GuestDelete(ctx context.Context, in usecase.GuestDeleteInput) error

	PromotionList(ctx context.Context, in usecase.PromotionListInput) (*usecase.PromotionListOutput, error)
	PromotionDetail(ctx context.Context, in usecase.PromotionDetailInput) (*usecase.PromotionDetailOutput, error)
	PromotionCreate(ctx context.Context, in usecase.PromotionCreateInput) error
	PromotionUpdate(ctx context.Context, in usecase.PromotionUpdateInput) error
	PromotionDelete(ctx context.Context, in usecase.PromotionDeleteInput) error

	FeedbackSubmit(ctx context.Context, in usecase.FeedbackSubmitInput) error
	FeedbackList(ctx context.Context, in usecase.FeedbackListInput) (*usecase.FeedbackListOutput, error)
	FeedbackModerate(ctx context.Context, in usecase.FeedbackModerateInput) error

	BlogCreate(ctx context.Context, in usecase.BlogCreateInput) (*usecase.BlogCreateOutput, error)
	BlogUpdateCover(ctx context.Context, in usecase.BlogUpdateCoverInput) error
	BlogList(ctx context.Context, in usecase.BlogListInput) (*usecase.BlogListOutput, error)
	BlogDetail(ctx context.Context, in usecase.BlogDetailInput) (*usecase.BlogDetailOutput, error)
	BlogDelete(ctx context.Context, in usecase.BlogDeleteInput) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Guests (need authenticated & authorization)
	r.GET("/api/v1/hotel/guests", end.GuestList)
	r.GET("/api/v1/hotel/guests/:id", end.GuestDetail)
	r.POST("/api/v1/hotel/guests", end.GuestCreate)
	r.PUT("/api/v1/hotel/guests/:id", end.GuestUpdate)
	r.DELETE("/api/v1/hotel/guests/:id", end.GuestDelete)

	// Promotions (need authenticated & authorization)
	r.GET("/api/v1/hotel/promotions", end.PromotionList)
	r.GET("/api/v1/hotel/promotions/:id", end.PromotionDetail)
	r.POST("/api/v1/hotel/promotions", end.PromotionCreate)
	r.PUT("/api/v1/hotel/promotions/:id", end.PromotionUpdate)
	r.DELETE("/api/v1/hotel/promotions/:id", end.PromotionDelete)

	// Feedback (submit is public)
	r.POST("/api/v1/hotel/feedback", end.FeedbackSubmit)
	r.GET("/api/v1/hotel/feedback", end.FeedbackList)
	r.PUT("/api/v1/hotel/feedback/:id/status", end.FeedbackModerate)

	// Blogs (list and detail are public)
	r.GET("/api/v1/hotel/blogs", end.BlogList)
	r.GET("/api/v1/hotel/blogs/:id", end.BlogDetail)
	r.POST("/api/v1/hotel/blogs", end.BlogCreate)
	r.PUT("/api/v1/hotel/blogs/:id/cover", end.BlogUpdateCover)
	r.DELETE("/api/v1/hotel/blogs/:id", end.BlogDelete)
}
