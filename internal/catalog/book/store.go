// Copyright (c) 2026 BookLog. All rights reserved.

package book

import (
	"context"
	"time"
)

// # Catalog Data Access

// Repository defines the data access contract for the shared catalog.
type Repository interface {

	/*
		FindByID returns the book with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Book: Hydrated entity
		  - error: Database retrieval failures
	*/
	FindByID(context context.Context, id string) (*Book, error)

	/*
		FindByISBN13 returns the book carrying the given ISBN-13.

		Parameters:
		  - context: context.Context
		  - isbn: string

		Returns:
		  - *Book: Hydrated entity
		  - error: Database retrieval failures
	*/
	FindByISBN13(context context.Context, isbn string) (*Book, error)

	/*
		FindByISBN10 returns the book carrying the given ISBN-10.

		Parameters:
		  - context: context.Context
		  - isbn: string

		Returns:
		  - *Book: Hydrated entity
		  - error: Database retrieval failures
	*/
	FindByISBN10(context context.Context, isbn string) (*Book, error)

	/*
		List returns a page of the catalog, optionally narrowed by a search
		query and structured filters.

		Parameters:
		  - context: context.Context
		  - query: string (substring over title/subtitle/authors; empty = all)
		  - filter: Filter (AND of provided members)
		  - limit: int
		  - offset: int

		Returns:
		  - []*Book: Page of hydrated entities
		  - int: Total count matching the query and filters
		  - error: Database retrieval failures
	*/
	List(context context.Context, query string, filter Filter, limit, offset int) ([]*Book, int, error)

	/*
		ListPopular returns the top books ordered by average rating.

		Parameters:
		  - context: context.Context
		  - limit: int

		Returns:
		  - []*Book: Leaderboard slice
		  - error: Database retrieval failures
	*/
	ListPopular(context context.Context, limit int) ([]*Book, error)

	/*
		Create persists a new catalog record.

		Parameters:
		  - context: context.Context
		  - book: *Book

		Returns:
		  - error: Conflict on duplicate ISBN, or persistence failures
	*/
	Create(context context.Context, book *Book) error

	/*
		Update persists the full current state of a catalog record.

		Parameters:
		  - context: context.Context
		  - book: *Book

		Returns:
		  - error: Conflict on duplicate ISBN, or persistence failures
	*/
	Update(context context.Context, book *Book) error

	/*
		Delete permanently removes a catalog record.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: Persistence failures
	*/
	Delete(context context.Context, id string) error
}

// # Volatile Cache

// CacheRepository defines the volatile storage contract for the popularity
// leaderboard. Implementations must treat misses as a normal condition.
type CacheRepository interface {

	// GetPopular returns the cached leaderboard, or (nil, nil) on a miss.
	GetPopular(context context.Context) ([]*Book, error)

	// SetPopular stores the leaderboard with the given time-to-live.
	SetPopular(context context.Context, books []*Book, timeToLive time.Duration) error

	// InvalidatePopular drops the cached leaderboard.
	InvalidatePopular(context context.Context) error
}
