// Copyright (c) 2026 BookLog. All rights reserved.

package entry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/booklogapp/booklog-server/internal/platform/apperr"
	"github.com/booklogapp/booklog-server/pkg/uuid"
)

// # Service Layer

// Service orchestrates the library-entry status machine and its side effects.
type Service struct {
	entryRepository Repository
	logger          *slog.Logger
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(entryRepo Repository, logger *slog.Logger) *Service {
	return &Service{
		entryRepository: entryRepo,
		logger:          logger,
	}
}

// # Entry Lifecycle

/*
Add puts a book into the user's library.

Description: Creates the (user, book) entry with addedDate = now and
progress = 0. An initial READING status stamps startDate; an initial
FINISHED status stamps both dates and pins progress to 100. The existence
pre-check is an optimization; the unique constraint is the authoritative
guard against concurrent double-adds.

Parameters:
  - context: context.Context
  - userID: string
  - bookID: string
  - initialStatus: Status

Returns:
  - *LibraryEntry: Created entry
  - error: Conflict if the pair already exists, or storage failures
*/
func (service *Service) Add(context context.Context, userID, bookID string, initialStatus Status) (*LibraryEntry, error) {
	exists, err := service.entryRepository.Exists(context, userID, bookID)
	if err != nil {
		return nil, fmt.Errorf("entry_service_add_precheck_failed: %w", err)
	}
	if exists {
		return nil, apperr.Conflict("Book is already in your library")
	}

	now := time.Now()
	libraryEntry := &LibraryEntry{
		ID:        uuid.New(),
		UserID:    userID,
		BookID:    bookID,
		Status:    initialStatus,
		AddedDate: now,
		Progress:  MinProgress,
		Tags:      []string{},
	}

	switch initialStatus {
	case StatusReading:
		libraryEntry.StartDate = &now
	case StatusFinished:
		libraryEntry.StartDate = &now
		libraryEntry.FinishDate = &now
		libraryEntry.Progress = MaxProgress
	}

	if err := service.entryRepository.Create(context, libraryEntry); err != nil {
		if apperr.IsConflict(err) {
			return nil, apperr.Conflict("Book is already in your library")
		}
		return nil, fmt.Errorf("entry_service_add_failed: %w", err)
	}

	service.logger.Info("library_entry_added",
		slog.String("user_id", userID),
		slog.String("book_id", bookID),
		slog.String("status", string(initialStatus)),
	)

	return libraryEntry, nil
}

/*
Get returns the user's entry for a book.

Parameters:
  - context: context.Context
  - userID: string
  - bookID: string

Returns:
  - *LibraryEntry: Hydrated entry
  - error: NotFound or retrieval failures
*/
func (service *Service) Get(context context.Context, userID, bookID string) (*LibraryEntry, error) {
	libraryEntry, err := service.entryRepository.FindByUserAndBook(context, userID, bookID)
	if err != nil {
		return nil, fmt.Errorf("entry_service_get_failed: %w", err)
	}
	return libraryEntry, nil
}

/*
Exists reports whether the user's library contains a book.

Parameters:
  - context: context.Context
  - userID: string
  - bookID: string

Returns:
  - bool: Presence flag
  - error: Retrieval failures
*/
func (service *Service) Exists(context context.Context, userID, bookID string) (bool, error) {
	exists, err := service.entryRepository.Exists(context, userID, bookID)
	if err != nil {
		return false, fmt.Errorf("entry_service_exists_failed: %w", err)
	}
	return exists, nil
}

/*
Remove deletes the entry permanently (hard delete, not archival).

Parameters:
  - context: context.Context
  - userID: string
  - bookID: string

Returns:
  - error: NotFound or storage failures
*/
func (service *Service) Remove(context context.Context, userID, bookID string) error {
	if _, err := service.entryRepository.FindByUserAndBook(context, userID, bookID); err != nil {
		return fmt.Errorf("entry_service_remove_lookup_failed: %w", err)
	}

	if err := service.entryRepository.Delete(context, userID, bookID); err != nil {
		return fmt.Errorf("entry_service_remove_failed: %w", err)
	}

	service.logger.Info("library_entry_removed",
		slog.String("user_id", userID),
		slog.String("book_id", bookID),
	)

	return nil
}

// # Status Machine

/*
SetStatus transitions the entry to a new status unconditionally.

Description: No transition is illegal — any status is reachable from any
status. Side effects:
  - Entering READING stamps startDate only if it was previously unset
    (idempotent backfill).
  - Entering FINISHED stamps finishDate, pins progress to 100, and backfills
    startDate if unset.
  - An explicit progress value overrides the status-driven progress only for
    non-FINISHED targets; the FINISHED=100 invariant always wins.
  - lastReadDate is always refreshed.

Parameters:
  - context: context.Context
  - userID: string
  - bookID: string
  - newStatus: Status
  - progress: *int (nil = no explicit override)

Returns:
  - *LibraryEntry: Updated entry
  - error: NotFound or storage failures
*/
func (service *Service) SetStatus(context context.Context, userID, bookID string, newStatus Status, progress *int) (*LibraryEntry, error) {
	libraryEntry, err := service.entryRepository.FindByUserAndBook(context, userID, bookID)
	if err != nil {
		return nil, fmt.Errorf("entry_service_set_status_lookup_failed: %w", err)
	}

	now := time.Now()
	libraryEntry.Status = newStatus

	switch newStatus {
	case StatusReading:
		// Idempotent backfill: a second READING transition keeps the first date
		if libraryEntry.StartDate == nil {
			libraryEntry.StartDate = &now
		}
	case StatusFinished:
		libraryEntry.FinishDate = &now
		libraryEntry.Progress = MaxProgress
		if libraryEntry.StartDate == nil {
			libraryEntry.StartDate = &now
		}
	}

	// Explicit progress never unpins FINISHED from 100
	if progress != nil && newStatus != StatusFinished {
		libraryEntry.Progress = *progress
	}

	libraryEntry.LastReadDate = &now

	if err := service.entryRepository.Update(context, libraryEntry); err != nil {
		return nil, fmt.Errorf("entry_service_set_status_failed: %w", err)
	}

	return libraryEntry, nil
}

/*
SetProgress updates the reading progress.

Description: Refreshes lastReadDate alongside the new progress. Reaching 100
while not already FINISHED auto-transitions to FINISHED and stamps
finishDate (auto-completion rule).

Parameters:
  - context: context.Context
  - userID: string
  - bookID: string
  - progress: int (0–100, validated at the transport layer)

Returns:
  - *LibraryEntry: Updated entry
  - error: NotFound or storage failures
*/
func (service *Service) SetProgress(context context.Context, userID, bookID string, progress int) (*LibraryEntry, error) {
	libraryEntry, err := service.entryRepository.FindByUserAndBook(context, userID, bookID)
	if err != nil {
		return nil, fmt.Errorf("entry_service_set_progress_lookup_failed: %w", err)
	}

	now := time.Now()
	libraryEntry.Progress = progress
	libraryEntry.LastReadDate = &now

	// Auto-completion rule
	if progress == MaxProgress && libraryEntry.Status != StatusFinished {
		libraryEntry.Status = StatusFinished
		libraryEntry.FinishDate = &now
	}

	if err := service.entryRepository.Update(context, libraryEntry); err != nil {
		return nil, fmt.Errorf("entry_service_set_progress_failed: %w", err)
	}

	return libraryEntry, nil
}

// # Personal Metadata

/*
SetRating records the user's rating and, optionally, a review.

Description: Independent of status. The review is applied only when non-nil,
so a rating-only call never clears an existing review.

Parameters:
  - context: context.Context
  - userID: string
  - bookID: string
  - rating: int (1–5, validated at the transport layer)
  - review: *string (nil = leave unchanged)

Returns:
  - *LibraryEntry: Updated entry
  - error: NotFound or storage failures
*/
func (service *Service) SetRating(context context.Context, userID, bookID string, rating int, review *string) (*LibraryEntry, error) {
	libraryEntry, err := service.entryRepository.FindByUserAndBook(context, userID, bookID)
	if err != nil {
		return nil, fmt.Errorf("entry_service_set_rating_lookup_failed: %w", err)
	}

	libraryEntry.UserRating = &rating
	if review != nil {
		libraryEntry.UserReview = *review
	}

	if err := service.entryRepository.Update(context, libraryEntry); err != nil {
		return nil, fmt.Errorf("entry_service_set_rating_failed: %w", err)
	}

	return libraryEntry, nil
}

/*
SetTags replaces the entry's tag set entirely (not additive).

Parameters:
  - context: context.Context
  - userID: string
  - bookID: string
  - tags: []string

Returns:
  - *LibraryEntry: Updated entry
  - error: NotFound or storage failures
*/
func (service *Service) SetTags(context context.Context, userID, bookID string, tags []string) (*LibraryEntry, error) {
	libraryEntry, err := service.entryRepository.FindByUserAndBook(context, userID, bookID)
	if err != nil {
		return nil, fmt.Errorf("entry_service_set_tags_lookup_failed: %w", err)
	}

	if tags == nil {
		tags = []string{}
	}
	libraryEntry.Tags = tags

	if err := service.entryRepository.Update(context, libraryEntry); err != nil {
		return nil, fmt.Errorf("entry_service_set_tags_failed: %w", err)
	}

	return libraryEntry, nil
}

/*
ToggleFavorite flips the entry's favorite flag.

Parameters:
  - context: context.Context
  - userID: string
  - bookID: string

Returns:
  - *LibraryEntry: Updated entry
  - error: NotFound or storage failures
*/
func (service *Service) ToggleFavorite(context context.Context, userID, bookID string) (*LibraryEntry, error) {
	libraryEntry, err := service.entryRepository.FindByUserAndBook(context, userID, bookID)
	if err != nil {
		return nil, fmt.Errorf("entry_service_toggle_favorite_lookup_failed: %w", err)
	}

	libraryEntry.Favorite = !libraryEntry.Favorite

	if err := service.entryRepository.Update(context, libraryEntry); err != nil {
		return nil, fmt.Errorf("entry_service_toggle_favorite_failed: %w", err)
	}

	return libraryEntry, nil
}

// # Listing & Aggregates

/*
List returns a page of the user's library, newest additions first.

Parameters:
  - context: context.Context
  - userID: string
  - limit: int
  - offset: int

Returns:
  - []*LibraryEntry: Page of entries
  - int: Total library size
  - error: Retrieval failures
*/
func (service *Service) List(context context.Context, userID string, limit, offset int) ([]*LibraryEntry, int, error) {
	entries, total, err := service.entryRepository.List(context, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("entry_service_list_failed: %w", err)
	}
	return entries, total, nil
}

/*
ListByStatus returns a page of the user's library narrowed to one status.

Parameters:
  - context: context.Context
  - userID: string
  - status: Status
  - limit: int
  - offset: int

Returns:
  - []*LibraryEntry: Page of entries
  - int: Total count in that status
  - error: Retrieval failures
*/
func (service *Service) ListByStatus(context context.Context, userID string, status Status, limit, offset int) ([]*LibraryEntry, int, error) {
	entries, total, err := service.entryRepository.ListByStatus(context, userID, status, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("entry_service_list_by_status_failed: %w", err)
	}
	return entries, total, nil
}

/*
ListByTag returns entries carrying a tag, optionally narrowed to one status.

Parameters:
  - context: context.Context
  - userID: string
  - tag: string
  - status: *Status (nil = any)
  - limit: int
  - offset: int

Returns:
  - []*LibraryEntry: Page of entries
  - int: Total count matching
  - error: Retrieval failures
*/
func (service *Service) ListByTag(context context.Context, userID, tag string, status *Status, limit, offset int) ([]*LibraryEntry, int, error) {
	entries, total, err := service.entryRepository.ListByTag(context, userID, tag, status, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("entry_service_list_by_tag_failed: %w", err)
	}
	return entries, total, nil
}

/*
Stats returns the user's entry count per status.

Description: The aggregate query only returns observed groups; this method
zero-fills so all four statuses are always present in the output.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - Stats: All four statuses mapped to counts (zero included)
  - error: Retrieval failures
*/
func (service *Service) Stats(context context.Context, userID string) (Stats, error) {
	observed, err := service.entryRepository.CountByStatus(context, userID)
	if err != nil {
		return nil, fmt.Errorf("entry_service_stats_failed: %w", err)
	}

	stats := make(Stats, len(AllStatuses))
	for _, status := range AllStatuses {
		stats[status] = observed[status]
	}

	return stats, nil
}

/*
RecentlyRead returns the user's most recently read in-progress entries.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - []*LibraryEntry: Up to RecentlyReadLimit READING entries, most recent first
  - error: Retrieval failures
*/
func (service *Service) RecentlyRead(context context.Context, userID string) ([]*LibraryEntry, error) {
	entries, err := service.entryRepository.ListRecentlyRead(context, userID, RecentlyReadLimit)
	if err != nil {
		return nil, fmt.Errorf("entry_service_recently_read_failed: %w", err)
	}
	return entries, nil
}
