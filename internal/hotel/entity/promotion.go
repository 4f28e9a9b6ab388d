package entity

import (
	"time"

	"github.com/shandysiswandi/innkeep/internal/pkg/valueobject"
)

type Promotion struct {
	ID              int64
	Title           string
	Description     string
	DiscountPercent int16
	Terms           valueobject.JSONMap
	StartsAt        time.Time
	EndsAt          time.Time
	Active          bool
	UpdatedAt       time.Time
}

type NewPromotion struct {
	ID              int64
	Title           string
	Description     string
	DiscountPercent int16
	Terms           valueobject.JSONMap
	StartsAt        time.Time
	EndsAt          time.Time
	Active          bool
	CreatedBy       int64
	UpdatedBy       int64
}

type PatchPromotion struct {
	ID              int64
	Title           string
	Description     string
	DiscountPercent int16
	Terms           valueobject.JSONMap
	StartsAt        time.Time
	EndsAt          time.Time
	Active          bool
	UpdatedBy       int64
}
