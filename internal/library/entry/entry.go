// Copyright (c) 2026 BookLog. All rights reserved.

/*
Package entry implements the personal library: the per-user reading state
attached to catalog books.

A library entry is the join of (user, book) carrying everything personal —
reading status, progress, rating, review, tags, favorite flag, and the
journal counters. At most one entry exists per (user, book) pair; the
database unique constraint is the authoritative guard.

# Status machine

TO_READ → READING → FINISHED, with ABANDONED reachable from TO_READ or
READING. Transitions are never rejected: any status is reachable from any
status, and the side effects (date stamping, progress pinning) are what give
the machine its shape.
*/
package entry

import "time"

// # Status

// Status is the reading-progress state of a library entry.
type Status string

const (
	StatusToRead    Status = "TO_READ"
	StatusReading   Status = "READING"
	StatusFinished  Status = "FINISHED"
	StatusAbandoned Status = "ABANDONED"
)

// AllStatuses lists every status in display order. Used for zero-filling
// aggregates and validating transport input.
var AllStatuses = []Status{StatusToRead, StatusReading, StatusFinished, StatusAbandoned}

// Valid reports whether s is one of the four defined statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusToRead, StatusReading, StatusFinished, StatusAbandoned:
		return true
	}
	return false
}

// # Domain Entities

// LibraryEntry is a user's per-book reading-state record.
type LibraryEntry struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	BookID string `json:"book_id"`

	Status       Status     `json:"status"`
	AddedDate    time.Time  `json:"added_date"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	FinishDate   *time.Time `json:"finish_date,omitempty"`
	UserRating   *int       `json:"user_rating,omitempty"`
	UserReview   string     `json:"user_review,omitempty"`
	Progress     int        `json:"progress"`
	LastReadDate *time.Time `json:"last_read_date,omitempty"`
	Tags         []string   `json:"tags"`
	Favorite     bool       `json:"favorite"`

	// Journal counters, maintained transactionally by the journal service.
	NotesCount      int `json:"notes_count"`
	HighlightsCount int `json:"highlights_count"`
	SessionsCount   int `json:"sessions_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Stats maps every status to the number of entries in it. All four statuses
// are always present, zero-filled when the aggregate observed no rows.
type Stats map[Status]int

// # Field Identifiers

const (
	FieldStatus   = "status"
	FieldProgress = "progress"
	FieldRating   = "rating"
	FieldTags     = "tags"
	FieldBookID   = "book_id"
	FieldTag      = "tag"

	// RecentlyReadLimit caps the recently-read list.
	RecentlyReadLimit = 5

	MinRating   = 1
	MaxRating   = 5
	MinProgress = 0
	MaxProgress = 100
)
