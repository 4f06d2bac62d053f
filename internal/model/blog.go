package model

import "time"

// Blog represents a blog record in the database. UserID is the owner,
// bound at creation and never reassigned.
type Blog struct {
	ID        string
	Title     string
	Author    string
	URL       string
	Likes     int
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateBlogRequest represents a blog creation payload. Likes defaults to
// zero when absent.
type CreateBlogRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
}

// UpdateBlogRequest represents a partial update. Pointer fields distinguish
// "field absent" from "field set to the zero value"; absent fields are left
// untouched.
type UpdateBlogRequest struct {
	Title  *string `json:"title"`
	Author *string `json:"author"`
	URL    *string `json:"url"`
	Likes  *int    `json:"likes"`
}

// BlogResponse represents a blog in API responses, with the owner reduced
// to a public projection. The id is always a plain string field; storage
// column names never leak.
type BlogResponse struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Author string   `json:"author"`
	URL    string   `json:"url"`
	Likes  int      `json:"likes"`
	User   *UserRef `json:"user,omitempty"`
}
