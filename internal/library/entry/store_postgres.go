// Copyright (c) 2026 BookLog. All rights reserved.

// PostgreSQL implementation of the library storage contract.
package entry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/booklogapp/booklog-server/internal/platform/database/schema"
	"github.com/booklogapp/booklog-server/internal/platform/dberr"
)

// PostgresRepository implements the Repository interface using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL implementation of the Repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
Create persists a new library entry.

Description: The (userid, bookid) unique constraint is the authoritative
duplicate guard; a violation surfaces as Conflict.

Parameters:
  - context: context.Context
  - entry: *LibraryEntry

Returns:
  - error: Conflict or execution errors
*/
func (repository *PostgresRepository) Create(context context.Context, entry *LibraryEntry) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		schema.LibraryEntry.Table, entryColumns(),
	)

	now := time.Now()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now
	}
	entry.UpdatedAt = now

	_, err := repository.pool.Exec(context, query,
		entry.ID, entry.UserID, entry.BookID, entry.Status, entry.AddedDate,
		entry.StartDate, entry.FinishDate, entry.UserRating, entry.UserReview,
		entry.Progress, entry.LastReadDate, entry.Tags, entry.Favorite,
		entry.NotesCount, entry.HighlightsCount, entry.SessionsCount,
		entry.CreatedAt, entry.UpdatedAt,
	)

	if err != nil {
		return dberr.Wrap(err, "library entry")
	}

	return nil
}

/*
FindByUserAndBook retrieves the entry for the (user, book) pair.

Parameters:
  - context: context.Context
  - userID: string
  - bookID: string

Returns:
  - *LibraryEntry: Hydrated entity
  - error: apperr.NotFound or execution errors
*/
func (repository *PostgresRepository) FindByUserAndBook(context context.Context, userID, bookID string) (*LibraryEntry, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s = $2`,
		entryColumns(), schema.LibraryEntry.Table,
		schema.LibraryEntry.UserID, schema.LibraryEntry.BookID,
	)

	entry := &LibraryEntry{}
	err := repository.pool.QueryRow(context, query, userID, bookID).Scan(entryFields(entry)...)
	if err != nil {
		return nil, dberr.Wrap(err, "library entry")
	}

	return entry, nil
}

/*
Exists reports whether an entry exists for the (user, book) pair.

Parameters:
  - context: context.Context
  - userID: string
  - bookID: string

Returns:
  - bool: Presence flag
  - error: Execution errors
*/
func (repository *PostgresRepository) Exists(context context.Context, userID, bookID string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND %s = $2)`,
		schema.LibraryEntry.Table, schema.LibraryEntry.UserID, schema.LibraryEntry.BookID,
	)

	var exists bool
	if err := repository.pool.QueryRow(context, query, userID, bookID).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "library entry")
	}

	return exists, nil
}

/*
Update persists the full mutable state of an entry.

Parameters:
  - context: context.Context
  - entry: *LibraryEntry

Returns:
  - error: Execution errors
*/
func (repository *PostgresRepository) Update(context context.Context, entry *LibraryEntry) error {
	ref := schema.LibraryEntry
	query := fmt.Sprintf(`
		UPDATE %s SET
			%s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7,
			%s = $8, %s = $9, %s = $10, %s = $11
		WHERE %s = $1`,
		ref.Table,
		ref.Status, ref.StartDate, ref.FinishDate, ref.UserRating, ref.UserReview,
		ref.Progress, ref.LastReadDate, ref.Tags, ref.Favorite, ref.UpdatedAt,
		ref.ID,
	)

	entry.UpdatedAt = time.Now()
	_, err := repository.pool.Exec(context, query,
		entry.ID, entry.Status, entry.StartDate, entry.FinishDate,
		entry.UserRating, entry.UserReview, entry.Progress, entry.LastReadDate,
		entry.Tags, entry.Favorite, entry.UpdatedAt,
	)

	if err != nil {
		return dberr.Wrap(err, "library entry")
	}

	return nil
}

/*
Delete permanently removes the entry for the (user, book) pair.

Parameters:
  - context: context.Context
  - userID: string
  - bookID: string

Returns:
  - error: Execution errors
*/
func (repository *PostgresRepository) Delete(context context.Context, userID, bookID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.LibraryEntry.Table, schema.LibraryEntry.UserID, schema.LibraryEntry.BookID,
	)

	_, err := repository.pool.Exec(context, query, userID, bookID)
	if err != nil {
		return dberr.Wrap(err, "library entry")
	}

	return nil
}

/*
List retrieves a page of the user's library, newest additions first.

Description: COUNT(*) OVER() carries the total on every row to avoid a
second round trip.

Parameters:
  - context: context.Context
  - userID: string
  - limit: int
  - offset: int

Returns:
  - []*LibraryEntry: Page of hydrated entities
  - int: Total library size
  - error: Execution errors
*/
func (repository *PostgresRepository) List(context context.Context, userID string, limit, offset int) ([]*LibraryEntry, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total_count
		FROM %s
		WHERE %s = $1
		ORDER BY %s DESC, %s DESC
		LIMIT $2 OFFSET $3`,
		entryColumns(), schema.LibraryEntry.Table, schema.LibraryEntry.UserID,
		schema.LibraryEntry.AddedDate, schema.LibraryEntry.ID,
	)

	return repository.queryPage(context, query, userID, limit, offset)
}

/*
ListByStatus retrieves a page of the user's library narrowed to one status.

Parameters:
  - context: context.Context
  - userID: string
  - status: Status
  - limit: int
  - offset: int

Returns:
  - []*LibraryEntry: Page of hydrated entities
  - int: Total count in that status
  - error: Execution errors
*/
func (repository *PostgresRepository) ListByStatus(context context.Context, userID string, status Status, limit, offset int) ([]*LibraryEntry, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total_count
		FROM %s
		WHERE %s = $1 AND %s = $2
		ORDER BY %s DESC, %s DESC
		LIMIT $3 OFFSET $4`,
		entryColumns(), schema.LibraryEntry.Table,
		schema.LibraryEntry.UserID, schema.LibraryEntry.Status,
		schema.LibraryEntry.AddedDate, schema.LibraryEntry.ID,
	)

	return repository.queryPage(context, query, userID, status, limit, offset)
}

/*
ListByTag retrieves entries carrying a tag, optionally narrowed to one status.

Description: Tag membership uses the array containment operator against the
tags column.

Parameters:
  - context: context.Context
  - userID: string
  - tag: string
  - status: *Status (nil = any)
  - limit: int
  - offset: int

Returns:
  - []*LibraryEntry: Page of hydrated entities
  - int: Total count matching
  - error: Execution errors
*/
func (repository *PostgresRepository) ListByTag(context context.Context, userID, tag string, status *Status, limit, offset int) ([]*LibraryEntry, int, error) {
	var queryBuilder strings.Builder
	args := []any{userID, []string{tag}}
	argID := 3

	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total_count
		FROM %s
		WHERE %s = $1 AND %s @> $2`,
		entryColumns(), schema.LibraryEntry.Table,
		schema.LibraryEntry.UserID, schema.LibraryEntry.Tags,
	))

	if status != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", schema.LibraryEntry.Status, argID))
		args = append(args, *status)
		argID++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s DESC, %s DESC",
		schema.LibraryEntry.AddedDate, schema.LibraryEntry.ID))
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1))
	args = append(args, limit, offset)

	return repository.queryPage(context, queryBuilder.String(), args...)
}

/*
CountByStatus returns the entry count per observed status.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - map[Status]int: Observed status counts (zero groups absent)
  - error: Execution errors
*/
func (repository *PostgresRepository) CountByStatus(context context.Context, userID string) (map[Status]int, error) {
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*)
		FROM %s
		WHERE %s = $1
		GROUP BY %s`,
		schema.LibraryEntry.Status, schema.LibraryEntry.Table,
		schema.LibraryEntry.UserID, schema.LibraryEntry.Status,
	)

	rows, err := repository.pool.Query(context, query, userID)
	if err != nil {
		return nil, dberr.Wrap(err, "library entry")
	}
	defer rows.Close()

	counts := make(map[Status]int)
	for rows.Next() {
		var status Status
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, dberr.Wrap(err, "library entry")
		}
		counts[status] = count
	}

	return counts, nil
}

/*
ListRecentlyRead returns READING entries ordered by last-read time.

Parameters:
  - context: context.Context
  - userID: string
  - limit: int

Returns:
  - []*LibraryEntry: Recent slice, most recent first
  - error: Execution errors
*/
func (repository *PostgresRepository) ListRecentlyRead(context context.Context, userID string, limit int) ([]*LibraryEntry, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE %s = $1 AND %s = $2
		ORDER BY %s DESC NULLS LAST, %s DESC
		LIMIT $3`,
		entryColumns(), schema.LibraryEntry.Table,
		schema.LibraryEntry.UserID, schema.LibraryEntry.Status,
		schema.LibraryEntry.LastReadDate, schema.LibraryEntry.ID,
	)

	rows, err := repository.pool.Query(context, query, userID, StatusReading, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "library entry")
	}
	defer rows.Close()

	entries := make([]*LibraryEntry, 0, limit)
	for rows.Next() {
		entry := &LibraryEntry{}
		if err := rows.Scan(entryFields(entry)...); err != nil {
			return nil, dberr.Wrap(err, "library entry")
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// # Scan Helpers

func (repository *PostgresRepository) queryPage(context context.Context, query string, args ...any) ([]*LibraryEntry, int, error) {
	rows, err := repository.pool.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "library entry")
	}
	defer rows.Close()

	entries := make([]*LibraryEntry, 0)
	var totalCount int

	for rows.Next() {
		entry := &LibraryEntry{}
		fields := append(entryFields(entry), &totalCount)
		if err := rows.Scan(fields...); err != nil {
			return nil, 0, dberr.Wrap(err, "library entry")
		}
		entries = append(entries, entry)
	}

	return entries, totalCount, nil
}

func entryColumns() string {
	ref := schema.LibraryEntry
	return strings.Join([]string{
		ref.ID, ref.UserID, ref.BookID, ref.Status, ref.AddedDate,
		ref.StartDate, ref.FinishDate, ref.UserRating, ref.UserReview,
		ref.Progress, ref.LastReadDate, ref.Tags, ref.Favorite,
		ref.NotesCount, ref.HighlightsCount, ref.SessionsCount,
		ref.CreatedAt, ref.UpdatedAt,
	}, ", ")
}

func entryFields(entry *LibraryEntry) []any {
	return []any{
		&entry.ID, &entry.UserID, &entry.BookID, &entry.Status, &entry.AddedDate,
		&entry.StartDate, &entry.FinishDate, &entry.UserRating, &entry.UserReview,
		&entry.Progress, &entry.LastReadDate, &entry.Tags, &entry.Favorite,
		&entry.NotesCount, &entry.HighlightsCount, &entry.SessionsCount,
		&entry.CreatedAt, &entry.UpdatedAt,
	}
}
