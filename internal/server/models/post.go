package models

import "time"

// Post is a published content item. Tags and Authors are loaded by the
// repository joins; Status=true marks the post as publicly visible.
type Post struct {
	ID        string
	Title     string
	Content   string
	Image     string
	Slug      string
	Status    bool
	CreatedAt time.Time
	Tags      []Tag
	Authors   []AuthorRef
}

// AuthorRef is the projection of an account embedded in post listings.
type AuthorRef struct {
	ID       string
	FullName string
	Slug     string
}

// SearchHit is one full-text search result row.
type SearchHit struct {
	Name    string
	Content string
	Slug    string
	Image   string
}
