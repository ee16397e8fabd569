package models

import "time"

// Base holds the columns every entity table carries
type Base struct {
	ID         int64     `json:"id" db:"id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
	IsArchived bool      `json:"is_archived" db:"is_archived"`
}

// Key returns the record id
func (b Base) Key() int64 {
	return b.ID
}

// Archived reports whether the record has been soft-deleted
func (b Base) Archived() bool {
	return b.IsArchived
}
