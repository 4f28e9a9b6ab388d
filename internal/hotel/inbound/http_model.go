package inbound

import (
	"time"

	"github.com/shandysiswandi/innkeep/internal/pkg/valueobject"
)

type GuestRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Notes    string `json:"notes"`
}

type GuestResponse struct {
	ID        int64     `json:"id,string"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

type GuestsResponse struct {
	Page   int32           `json:"page"`
	Size   int32           `json:"size"`
	Total  int64           `json:"total"`
	Guests []GuestResponse `json:"guests"`
}

type GuestDetailResponse struct {
	Guest GuestResponse `json:"guest"`
}

type PromotionRequest struct {
	Title           string              `json:"title"`
	Description     string              `json:"description"`
	DiscountPercent int16               `json:"discount_percent"`
	Terms           valueobject.JSONMap `json:"terms"`
	StartsAt        time.Time           `json:"starts_at"`
	EndsAt          time.Time           `json:"ends_at"`
	Active          bool                `json:"active"`
}

type PromotionResponse struct {
	ID              int64               `json:"id,string"`
	Title           string              `json:"title"`
	Description     string              `json:"description,omitempty"`
	DiscountPercent int16               `json:"discount_percent"`
	Terms           valueobject.JSONMap `json:"terms,omitempty"`
	StartsAt        time.Time           `json:"starts_at"`
	EndsAt          time.Time           `json:"ends_at"`
	Active          bool                `json:"active"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

type PromotionsResponse struct {
	Page       int32               `json:"page"`
	Size       int32               `json:"size"`
	Total      int64               `json:"total"`
	Promotions []PromotionResponse `json:"promotions"`
}

type PromotionDetailResponse struct {
	Promotion PromotionResponse `json:"promotion"`
}

type FeedbackSubmitRequest struct {
	GuestName string `json:"guest_name"`
	Email     string `json:"email"`
	Rating    int16  `json:"rating"`
	Comment   string `json:"comment"`
}

type FeedbackSubmitResponse struct{}

func (FeedbackSubmitResponse) Message() string {
	return "Thank you for your feedback."
}

type FeedbackModerateRequest struct {
	Status int16 `json:"status"`
}

type FeedbackResponse struct {
	ID        int64     `json:"id,string"`
	GuestName string    `json:"guest_name"`
	Email     string    `json:"email,omitempty"`
	Rating    int16     `json:"rating"`
	Comment   string    `json:"comment"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type FeedbacksResponse struct {
	Page      int32              `json:"page"`
	Size      int32              `json:"size"`
	Total     int64              `json:"total"`
	Feedbacks []FeedbackResponse `json:"feedbacks"`
}

type BlogCreateRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type BlogCreateResponse struct {
	ID   int64  `json:"id,string"`
	Slug string `json:"slug"`
}

type BlogResponse struct {
	ID        int64     `json:"id,string"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Body      string    `json:"body,omitempty"`
	CoverURL  string    `json:"cover_url,omitempty"`
	AuthorID  int64     `json:"author_id,string"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BlogsResponse struct {
	Page  int32          `json:"page"`
	Size  int32          `json:"size"`
	Total int64          `json:"total"`
	Blogs []BlogResponse `json:"blogs"`
}

type BlogDetailResponse struct {
	Blog BlogResponse `json:"blog"`
}
