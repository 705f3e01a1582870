// Copyright (c) 2026 BookLog. All rights reserved.

// Package journal manages the records a reader keeps while reading:
// notes, highlights and reading sessions. Each record belongs to a
// (user, book) pair and feeds the counters on the user's library entry.
package journal

import "time"

// # Enumerations

// Emotion captures how a reading session felt.
type Emotion string

const (
	EmotionHappy    Emotion = "HAPPY"
	EmotionSad      Emotion = "SAD"
	EmotionConfused Emotion = "CONFUSED"
	EmotionExcited  Emotion = "EXCITED"
	EmotionBored    Emotion = "BORED"
)

// Valid reports whether the value is a known emotion.
func (emotion Emotion) Valid() bool {
	switch emotion {
	case EmotionHappy, EmotionSad, EmotionConfused, EmotionExcited, EmotionBored:
		return true
	}
	return false
}

// # Entities

// Note is a free-form annotation a reader attaches to a book, optionally
// anchored to a page or chapter.
type Note struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	BookID    string    `json:"book_id"`
	Content   string    `json:"content"`
	Page      *int      `json:"page,omitempty"`
	Chapter   string    `json:"chapter,omitempty"`
	NotedAt   time.Time `json:"noted_at"`
	Tags      []string  `json:"tags"`
	Favorite  bool      `json:"favorite"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Highlight is a quoted passage. Location carries an e-book position
// when a physical page number does not apply exactly.
type Highlight struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	BookID        string    `json:"book_id"`
	Content       string    `json:"content"`
	Page          int       `json:"page"`
	Location      string    `json:"location,omitempty"`
	HighlightedAt time.Time `json:"highlighted_at"`
	Color         string    `json:"color,omitempty"`
	Note          string    `json:"note,omitempty"`
	Tags          []string  `json:"tags"`
	Favorite      bool      `json:"favorite"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ReadingSession records one sitting with a book: the page span covered,
// how long it took and how it felt.
type ReadingSession struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	BookID          string    `json:"book_id"`
	ReadAt          time.Time `json:"read_at"`
	StartPage       int       `json:"start_page"`
	EndPage         int       `json:"end_page"`
	DurationMinutes int       `json:"duration_minutes"`
	Notes           string    `json:"notes,omitempty"`
	Emotion         *Emotion  `json:"emotion,omitempty"`
	Rating          *int      `json:"rating,omitempty"`
	Location        string    `json:"location,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// # Field Identifiers

const (
	FieldNoteID      = "note_id"
	FieldHighlightID = "highlight_id"
	FieldSessionID   = "session_id"
	FieldBookID      = "book_id"
	FieldContent     = "content"
	FieldPage        = "page"
	FieldStartPage   = "start_page"
	FieldEndPage     = "end_page"
	FieldDuration    = "duration_minutes"
	FieldEmotion     = "emotion"
	FieldRating      = "rating"
	FieldQuery       = "q"
	FieldFrom        = "from"
	FieldTo          = "to"
)

// RecentSessionsLimit caps the recent-sessions listing.
const RecentSessionsLimit = 10
