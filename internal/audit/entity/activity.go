package entity

import "time"

// Activity is a recorded audit-trail entry describing who did what to which
// resource.
type Activity struct {
	ID         int64
	Actor      int64
	Action     string
	Entity     string
	EntityID   string
	OccurredAt time.Time
	RecordedAt time.Time
}

type NewActivity struct {
	ID         int64
	Actor      int64
	Action     string
	Entity     string
	EntityID   string
	OccurredAt time.Time
}

type ActivityListFilterData struct {
	IsFilterByEntity bool
	Entity           string
	Size             int32
	Page             int32
}
