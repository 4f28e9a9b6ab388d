package entity

import "time"

type Blog struct {
	ID        int64
	Title     string
	Slug      string
	Body      string
	CoverURL  string
	AuthorID  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

type NewBlog struct {
	ID       int64
	Title    string
	Slug     string
	Body     string
	CoverURL string
	AuthorID int64
}

type BlogListFilterData struct {
	IsFilterBySearch bool
	Search           string
	Size             int32
	Page             int32
}
