package entity

import "time"

type User struct {
	ID        int64
	Email     string
	Phone     string
	FullName  string
	Status    UserStatus
	UpdatedAt time.Time
	DeletedAt *time.Time
}

type UserLoginInfo struct {
	ID       int64
	Email    string
	Status   UserStatus
	Password string
}

type RefreshToken struct {
	ID        int64
	UserID    int64
	Token     string
	ExpiresAt time.Time
	Revoked   bool
}

type UserRefreshToken struct {
	UserID           int64
	UserEmail        string
	UserStatus       UserStatus
	RefreshID        int64
	RefreshToken     string
	RefreshRevoked   bool
	RefreshExpiresAt time.Time
}

type RotateRefreshToken struct {
	NewID        int64
	OldID        int64
	UserID       int64
	NewToken     string
	NewExpiresAt time.Time
}

type UserListFilterData struct {
	IsFilterBySearch bool
	IsFilterByStatus bool
	Search           string
	Statuses         []int16
	DateFrom         time.Time
	DateTo           time.Time
	Size             int32
	Page             int32
	OrderBy          string
	OrderDirection   string
}

type NewUser struct {
	ID        int64
	Email     string
	Phone     string
	FullName  string
	Status    UserStatus
	CreatedBy int64
	UpdatedBy int64
}

type PatchUser struct {
	ID        int64
	Email     string
	Phone     string
	FullName  string
	Status    UserStatus
	UpdatedBy int64
}
