package models

import "time"

// Tag is a taxonomy label attachable to posts.
type Tag struct {
	ID        string
	Title     string
	Slug      string
	Status    bool
	CreatedAt time.Time
}
