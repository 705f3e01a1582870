// Copyright (c) 2026 BookLog. All rights reserved.

package entry

import "context"

// # Library Data Access

// Repository defines the data access contract for library entries.
type Repository interface {

	/*
		FindByUserAndBook returns the entry for the (user, book) pair.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - bookID: string

		Returns:
		  - *LibraryEntry: Hydrated entity
		  - error: apperr.NotFound or retrieval failures
	*/
	FindByUserAndBook(context context.Context, userID, bookID string) (*LibraryEntry, error)

	/*
		Exists reports whether an entry exists for the (user, book) pair.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - bookID: string

		Returns:
		  - bool: Presence flag
		  - error: Retrieval failures
	*/
	Exists(context context.Context, userID, bookID string) (bool, error)

	/*
		Create persists a new library entry.

		Parameters:
		  - context: context.Context
		  - entry: *LibraryEntry

		Returns:
		  - error: Conflict on a duplicate (user, book) pair, or persistence failures
	*/
	Create(context context.Context, entry *LibraryEntry) error

	/*
		Update persists the full mutable state of an entry.

		Parameters:
		  - context: context.Context
		  - entry: *LibraryEntry

		Returns:
		  - error: Persistence failures
	*/
	Update(context context.Context, entry *LibraryEntry) error

	/*
		Delete permanently removes the entry for the (user, book) pair.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - bookID: string

		Returns:
		  - error: Persistence failures
	*/
	Delete(context context.Context, userID, bookID string) error

	/*
		List returns a page of the user's library, newest additions first.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - limit: int
		  - offset: int

		Returns:
		  - []*LibraryEntry: Page of entities
		  - int: Total library size
		  - error: Retrieval failures
	*/
	List(context context.Context, userID string, limit, offset int) ([]*LibraryEntry, int, error)

	/*
		ListByStatus returns a page of the user's library narrowed to one status.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - status: Status
		  - limit: int
		  - offset: int

		Returns:
		  - []*LibraryEntry: Page of entities
		  - int: Total count in that status
		  - error: Retrieval failures
	*/
	ListByStatus(context context.Context, userID string, status Status, limit, offset int) ([]*LibraryEntry, int, error)

	/*
		ListByTag returns a page of entries carrying the given tag, optionally
		narrowed to one status.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - tag: string
		  - status: *Status (nil = any status)
		  - limit: int
		  - offset: int

		Returns:
		  - []*LibraryEntry: Page of entities
		  - int: Total count matching
		  - error: Retrieval failures
	*/
	ListByTag(context context.Context, userID, tag string, status *Status, limit, offset int) ([]*LibraryEntry, int, error)

	/*
		CountByStatus returns the entry count per observed status. Statuses
		with zero entries are absent; the service zero-fills.

		Parameters:
		  - context: context.Context
		  - userID: string

		Returns:
		  - map[Status]int: Observed status counts
		  - error: Retrieval failures
	*/
	CountByStatus(context context.Context, userID string) (map[Status]int, error)

	/*
		ListRecentlyRead returns READING entries ordered by last-read time,
		most recent first.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - limit: int

		Returns:
		  - []*LibraryEntry: Recent slice
		  - error: Retrieval failures
	*/
	ListRecentlyRead(context context.Context, userID string, limit int) ([]*LibraryEntry, error)
}
