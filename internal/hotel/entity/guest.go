package entity

import "time"

type Guest struct {
	ID        int64
	FullName  string
	Email     string
	Phone     string
	Address   string
	Notes     string
	UpdatedAt time.Time
}

type NewGuest struct {
	ID        int64
	FullName  string
	Email     string
	Phone     string
	Address   string
	Notes     string
	CreatedBy int64
	UpdatedBy int64
}

type PatchGuest struct {
	ID        int64
	FullName  string
	Email     string
	Phone     string
	Address   string
	Notes     string
	UpdatedBy int64
}

type GuestListFilterData struct {
	IsFilterBySearch bool
	Search           string
	Size             int32
	Page             int32
}
