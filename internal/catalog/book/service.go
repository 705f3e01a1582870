// Copyright (c) 2026 BookLog. All rights reserved.

package book

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/booklogapp/booklog-server/internal/platform/apperr"
	"github.com/booklogapp/booklog-server/internal/platform/constants"
	"github.com/booklogapp/booklog-server/pkg/uuid"
)

// # Service Layer

// Service orchestrates business logic for the shared book catalog.
type Service struct {
	bookRepository  Repository
	cacheRepository CacheRepository
	logger          *slog.Logger
}

// NewService constructs a new [Service] with its storage dependencies.
func NewService(bookRepo Repository, cacheRepo CacheRepository, logger *slog.Logger) *Service {
	return &Service{
		bookRepository:  bookRepo,
		cacheRepository: cacheRepo,
		logger:          logger,
	}
}

// # Lookup

/*
GetByID retrieves a single catalog record.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Book: Hydrated entity
  - error: NotFound or retrieval failures
*/
func (service *Service) GetByID(context context.Context, id string) (*Book, error) {
	book, err := service.bookRepository.FindByID(context, id)
	if err != nil {
		return nil, fmt.Errorf("book_service_get_failed: %w", err)
	}
	return book, nil
}

/*
GetByISBN resolves a book by either ISBN form.

Description: Tries the ISBN-13 column first, then falls back to ISBN-10,
so clients can pass whichever identifier they scanned.

Parameters:
  - context: context.Context
  - isbn: string

Returns:
  - *Book: Hydrated entity
  - error: NotFound when neither column matches
*/
func (service *Service) GetByISBN(context context.Context, isbn string) (*Book, error) {
	book, err := service.bookRepository.FindByISBN13(context, isbn)
	if err == nil {
		return book, nil
	}
	if !apperr.IsNotFound(err) {
		return nil, fmt.Errorf("book_service_isbn13_lookup_failed: %w", err)
	}

	book, err = service.bookRepository.FindByISBN10(context, isbn)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.NotFound("Book")
		}
		return nil, fmt.Errorf("book_service_isbn10_lookup_failed: %w", err)
	}

	return book, nil
}

// # Listing & Search

/*
List returns a page of the whole catalog.

Parameters:
  - context: context.Context
  - limit: int
  - offset: int

Returns:
  - []*Book: Page of entities
  - int: Total catalog size
  - error: Retrieval failures
*/
func (service *Service) List(context context.Context, limit, offset int) ([]*Book, int, error) {
	books, total, err := service.bookRepository.List(context, "", Filter{}, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("book_service_list_failed: %w", err)
	}
	return books, total, nil
}

/*
Search returns catalog records whose title, subtitle, or any author contains
the query as a case-insensitive substring.

Parameters:
  - context: context.Context
  - query: string
  - limit: int
  - offset: int

Returns:
  - []*Book: Matching page
  - int: Total match count
  - error: Retrieval failures
*/
func (service *Service) Search(context context.Context, query string, limit, offset int) ([]*Book, int, error) {
	books, total, err := service.bookRepository.List(context, query, Filter{}, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("book_service_search_failed: %w", err)
	}
	return books, total, nil
}

/*
FindByFilters returns catalog records matching the AND of all provided
filter members.

Description: Language codes are canonicalized to their BCP-47 base ("EN",
"en-US" → "en") before the exact match, so callers need not agree on casing
or region subtags.

Parameters:
  - context: context.Context
  - filter: Filter
  - limit: int
  - offset: int

Returns:
  - []*Book: Matching page
  - int: Total match count
  - error: Retrieval failures
*/
func (service *Service) FindByFilters(context context.Context, filter Filter, limit, offset int) ([]*Book, int, error) {
	filter.Language = normalizeLanguage(filter.Language)

	books, total, err := service.bookRepository.List(context, "", filter, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("book_service_filter_failed: %w", err)
	}
	return books, total, nil
}

/*
Popular returns the top-rated catalog records.

Description: Serves from the Redis leaderboard cache when warm; on a miss it
queries Postgres and re-primes the cache with a TTL. Cache failures degrade
to the database rather than failing the request.

Parameters:
  - context: context.Context

Returns:
  - []*Book: Leaderboard (at most PopularBooksLimit entries)
  - error: Retrieval failures
*/
func (service *Service) Popular(context context.Context) ([]*Book, error) {
	cached, err := service.cacheRepository.GetPopular(context)
	if err != nil {
		service.logger.Warn("popular_books_cache_read_failed", slog.String("error", err.Error()))
	}
	if cached != nil {
		return cached, nil
	}

	books, err := service.bookRepository.ListPopular(context, PopularBooksLimit)
	if err != nil {
		return nil, fmt.Errorf("book_service_popular_failed: %w", err)
	}

	if err := service.cacheRepository.SetPopular(context, books, constants.PopularBooksCacheTTL); err != nil {
		service.logger.Warn("popular_books_cache_write_failed", slog.String("error", err.Error()))
	}

	return books, nil
}

// # Catalog Writes

// CreateInput holds the bibliographic data for a new catalog record.
type CreateInput struct {
	Title         string
	Subtitle      string
	Authors       []string
	Publisher     string
	PublishedDate *time.Time
	Description   string
	PageCount     int
	Categories    []string
	ThumbnailURL  string
	Language      string
	ISBN10        *string
	ISBN13        *string
	AverageRating float64
	RatingsCount  int
	PreviewLink   string
	InfoLink      string
}

/*
Create adds a new record to the shared catalog.

Description: Normalizes the language code, assigns a time-sortable ID, and
persists. The ISBN unique constraints are the authoritative duplicate guard;
a violation surfaces as Conflict. The popularity cache is invalidated.

Parameters:
  - context: context.Context
  - input: CreateInput

Returns:
  - *Book: Created entity
  - error: Conflict on duplicate ISBN, or storage failures
*/
func (service *Service) Create(context context.Context, input CreateInput) (*Book, error) {
	book := &Book{
		ID:            uuid.New(),
		Title:         input.Title,
		Subtitle:      input.Subtitle,
		Authors:       emptyIfNil(input.Authors),
		Publisher:     input.Publisher,
		PublishedDate: input.PublishedDate,
		Description:   input.Description,
		PageCount:     input.PageCount,
		Categories:    emptyIfNil(input.Categories),
		ThumbnailURL:  input.ThumbnailURL,
		Language:      normalizeLanguage(input.Language),
		ISBN10:        input.ISBN10,
		ISBN13:        input.ISBN13,
		AverageRating: input.AverageRating,
		RatingsCount:  input.RatingsCount,
		PreviewLink:   input.PreviewLink,
		InfoLink:      input.InfoLink,
	}

	if err := service.bookRepository.Create(context, book); err != nil {
		if apperr.IsConflict(err) {
			return nil, apperr.Conflict("A book with this ISBN already exists")
		}
		return nil, fmt.Errorf("book_service_create_failed: %w", err)
	}

	service.invalidatePopular(context)
	service.logger.Info("book_created", slog.String("book_id", book.ID), slog.String("title", book.Title))

	return book, nil
}

// UpdateInput defines the patchable subset of catalog fields. Nil pointers
// and empty slices leave the corresponding field untouched.
type UpdateInput struct {
	Title         *string
	Subtitle      *string
	Authors       []string
	Publisher     *string
	PublishedDate *time.Time
	Description   *string
	PageCount     *int
	Categories    []string
	ThumbnailURL  *string
	Language      *string
	AverageRating *float64
	RatingsCount  *int
	PreviewLink   *string
	InfoLink      *string
}

/*
Update applies a partial update to a catalog record.

Description: Scalar fields update when non-nil; list fields update only when
non-empty, so a patch can never wipe authors or categories. ISBNs are
immutable once set, so they are absent from the patch surface.

Parameters:
  - context: context.Context
  - id: string
  - input: UpdateInput

Returns:
  - *Book: Updated entity
  - error: NotFound or storage failures
*/
func (service *Service) Update(context context.Context, id string, input UpdateInput) (*Book, error) {
	book, err := service.bookRepository.FindByID(context, id)
	if err != nil {
		return nil, fmt.Errorf("book_service_update_lookup_failed: %w", err)
	}

	if input.Title != nil {
		book.Title = *input.Title
	}
	if input.Subtitle != nil {
		book.Subtitle = *input.Subtitle
	}
	if len(input.Authors) > 0 {
		book.Authors = input.Authors
	}
	if input.Publisher != nil {
		book.Publisher = *input.Publisher
	}
	if input.PublishedDate != nil {
		book.PublishedDate = input.PublishedDate
	}
	if input.Description != nil {
		book.Description = *input.Description
	}
	if input.PageCount != nil {
		book.PageCount = *input.PageCount
	}
	if len(input.Categories) > 0 {
		book.Categories = input.Categories
	}
	if input.ThumbnailURL != nil {
		book.ThumbnailURL = *input.ThumbnailURL
	}
	if input.Language != nil {
		book.Language = normalizeLanguage(*input.Language)
	}
	if input.AverageRating != nil {
		book.AverageRating = *input.AverageRating
	}
	if input.RatingsCount != nil {
		book.RatingsCount = *input.RatingsCount
	}
	if input.PreviewLink != nil {
		book.PreviewLink = *input.PreviewLink
	}
	if input.InfoLink != nil {
		book.InfoLink = *input.InfoLink
	}

	if err := service.bookRepository.Update(context, book); err != nil {
		return nil, fmt.Errorf("book_service_update_failed: %w", err)
	}

	service.invalidatePopular(context)

	return book, nil
}

/*
Delete permanently removes a catalog record.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: NotFound or storage failures
*/
func (service *Service) Delete(context context.Context, id string) error {
	if _, err := service.bookRepository.FindByID(context, id); err != nil {
		return fmt.Errorf("book_service_delete_lookup_failed: %w", err)
	}

	if err := service.bookRepository.Delete(context, id); err != nil {
		return fmt.Errorf("book_service_delete_failed: %w", err)
	}

	service.invalidatePopular(context)
	service.logger.Info("book_deleted", slog.String("book_id", id))

	return nil
}

// # Helpers

// invalidatePopular drops the leaderboard cache. Best effort: a failed
// invalidation only extends staleness up to the TTL.
func (service *Service) invalidatePopular(context context.Context) {
	if err := service.cacheRepository.InvalidatePopular(context); err != nil {
		service.logger.Warn("popular_books_cache_invalidate_failed", slog.String("error", err.Error()))
	}
}

// normalizeLanguage reduces a language code to its lowercase BCP-47 base
// ("EN", "en-US" → "en"). Unparseable codes are lowercased as-is.
func normalizeLanguage(code string) string {
	if code == "" {
		return ""
	}

	tag, err := language.Parse(code)
	if err != nil {
		return strings.ToLower(code)
	}

	base, _ := tag.Base()
	return base.String()
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
