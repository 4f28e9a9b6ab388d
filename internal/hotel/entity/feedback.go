package entity

import "time"

type FeedbackStatus int16

const (
	FeedbackStatusUnknown   FeedbackStatus = iota
	FeedbackStatusPending                  // awaiting moderation
	FeedbackStatusPublished                // visible on the public site
	FeedbackStatusHidden                   // rejected by a moderator
)

func (f FeedbackStatus) String() string {
	switch f {
	case FeedbackStatusPending:
		return "pending"
	case FeedbackStatusPublished:
		return "published"
	case FeedbackStatusHidden:
		return "hidden"
	default:
		return "unknown"
	}
}

func (f FeedbackStatus) IsUnknown() bool {
	switch f {
	case FeedbackStatusPending, FeedbackStatusPublished, FeedbackStatusHidden:
		return false
	default:
		return true
	}
}

type Feedback struct {
	ID        int64
	GuestName string
	Email     string
	Rating    int16
	Comment   string
	Status    FeedbackStatus
	CreatedAt time.Time
}

type NewFeedback struct {
	ID        int64
	GuestName string
	Email     string
	Rating    int16
	Comment   string
}

type FeedbackListFilterData struct {
	IsFilterByStatus bool
	Statuses         []int16
	Size             int32
	Page             int32
}
