// Copyright (c) 2026 BookLog. All rights reserved.

package journal

import (
	"context"
	"time"
)

// NoteRepository defines the persistence contract for reading notes.
// Create and Delete also adjust the owning library entry's note counter
// in the same transaction when an entry exists for the (user, book) pair.
type NoteRepository interface {
	/*
		Create persists a new note and bumps the entry's note counter.

		Parameters:
		  - context: context.Context
		  - note: *Note

		Returns:
		  - error: Execution errors
	*/
	Create(context context.Context, note *Note) error

	/*
		FindByID retrieves a note by its identifier.

		Parameters:
		  - context: context.Context
		  - noteID: string

		Returns:
		  - *Note: Hydrated entity
		  - error: apperr.NotFound or execution errors
	*/
	FindByID(context context.Context, noteID string) (*Note, error)

	/*
		Update persists the mutable fields of an existing note.

		Parameters:
		  - context: context.Context
		  - note: *Note

		Returns:
		  - error: Execution errors
	*/
	Update(context context.Context, note *Note) error

	/*
		Delete removes a note and decrements the entry's note counter.

		Parameters:
		  - context: context.Context
		  - note: *Note

		Returns:
		  - error: Execution errors
	*/
	Delete(context context.Context, note *Note) error

	/*
		ListByUser retrieves a page of the user's notes, newest first,
		optionally narrowed to favorites.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - favoritesOnly: bool
		  - limit: int
		  - offset: int

		Returns:
		  - []*Note: Page of notes
		  - int: Total matching count
		  - error: Execution errors
	*/
	ListByUser(context context.Context, userID string, favoritesOnly bool, limit, offset int) ([]*Note, int, error)

	/*
		ListByBook retrieves a page of the user's notes on one book.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - bookID: string
		  - limit: int
		  - offset: int

		Returns:
		  - []*Note: Page of notes
		  - int: Total matching count
		  - error: Execution errors
	*/
	ListByBook(context context.Context, userID, bookID string, limit, offset int) ([]*Note, int, error)

	/*
		Search retrieves notes whose content contains the query,
		case-insensitively.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - query: string
		  - limit: int
		  - offset: int

		Returns:
		  - []*Note: Page of matching notes
		  - int: Total matching count
		  - error: Execution errors
	*/
	Search(context context.Context, userID, query string, limit, offset int) ([]*Note, int, error)
}

// HighlightRepository defines the persistence contract for highlights,
// with the same counter semantics as notes.
type HighlightRepository interface {
	Create(context context.Context, highlight *Highlight) error
	FindByID(context context.Context, highlightID string) (*Highlight, error)
	Update(context context.Context, highlight *Highlight) error
	Delete(context context.Context, highlight *Highlight) error
	ListByUser(context context.Context, userID string, favoritesOnly bool, limit, offset int) ([]*Highlight, int, error)
	ListByBook(context context.Context, userID, bookID string, limit, offset int) ([]*Highlight, int, error)
}

// SessionRepository defines the persistence contract for reading
// sessions, with the same counter semantics as notes.
type SessionRepository interface {
	Create(context context.Context, session *ReadingSession) error
	FindByID(context context.Context, sessionID string) (*ReadingSession, error)
	Delete(context context.Context, session *ReadingSession) error
	ListByUser(context context.Context, userID string, limit, offset int) ([]*ReadingSession, int, error)
	ListByBook(context context.Context, userID, bookID string, limit, offset int) ([]*ReadingSession, int, error)

	/*
		TotalMinutes sums session durations for the user inside the
		half-open range [from, to).

		Parameters:
		  - context: context.Context
		  - userID: string
		  - from: time.Time
		  - to: time.Time

		Returns:
		  - int: Total minutes read, zero when no sessions match
		  - error: Execution errors
	*/
	TotalMinutes(context context.Context, userID string, from, to time.Time) (int, error)

	/*
		ListRecent retrieves the user's latest sessions by read time.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - limit: int

		Returns:
		  - []*ReadingSession: Most recent sessions first
		  - error: Execution errors
	*/
	ListRecent(context context.Context, userID string, limit int) ([]*ReadingSession, error)
}
