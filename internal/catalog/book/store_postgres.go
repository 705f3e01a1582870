// Copyright (c) 2026 BookLog. All rights reserved.

// PostgreSQL implementation of the catalog storage contract.
package book

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
Create persists a new catalog record.

Description: Inserts the full bibliographic row. Duplicate non-null ISBNs
surface as Conflict through the unique constraints.

Parameters:
  - context: context.Context
  - book: *Book

Returns:
  - error: Conflict on duplicate ISBN, or execution errors
*/
func (repository *PostgresRepository) Create(context context.Context, book *Book) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`,
		schema.Book.Table, bookColumns(),
	)

	now := time.Now()
	if book.CreatedAt.IsZero() {
		book.CreatedAt = now
	}
	book.UpdatedAt = now

	_, err := repository.pool.Exec(context, query,
		book.ID, book.Title, book.Subtitle, book.Authors, book.Publisher,
		book.PublishedDate, book.Description, book.PageCount, book.Categories,
		book.ThumbnailURL, book.Language, book.ISBN10, book.ISBN13,
		book.AverageRating, book.RatingsCount, book.PreviewLink, book.InfoLink,
		book.CreatedAt, book.UpdatedAt,
	)

	if err != nil {
		return dberr.Wrap(err, "book")
	}

	return nil
}

/*
FindByID retrieves a catalog record by primary key.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Book: Hydrated entity
  - error: apperr.NotFound or execution errors
*/
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Book, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		bookColumns(), schema.Book.Table, schema.Book.ID)

	return repository.queryOne(context, query, id)
}

// FindByISBN13 retrieves a catalog record by its ISBN-13.
func (repository *PostgresRepository) FindByISBN13(context context.Context, isbn string) (*Book, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		bookColumns(), schema.Book.Table, schema.Book.ISBN13)

	return repository.queryOne(context, query, isbn)
}

// FindByISBN10 retrieves a catalog record by its ISBN-10.
func (repository *PostgresRepository) FindByISBN10(context context.Context, isbn string) (*Book, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		bookColumns(), schema.Book.Table, schema.Book.ISBN10)

	return repository.queryOne(context, query, isbn)
}

/*
List retrieves a page of the catalog with dynamic narrowing.

Description:
  - Window Function: COUNT(*) OVER() carries the total matching count on
    every row, avoiding a second round trip.
  - Substring matching: ILIKE against title/subtitle; array columns are
    matched per element via EXISTS over unnest().
  - Language: exact equality (codes are canonicalized by the service).

Parameters:
  - context: context.Context
  - searchQuery: string
  - filter: Filter
  - limit: int
  - offset: int

Returns:
  - []*Book: Page of hydrated entities
  - int: Total count matching the narrowing
  - error: Database execution errors
*/
func (repository *PostgresRepository) List(context context.Context, searchQuery string, filter Filter, limit, offset int) ([]*Book, int, error) {

	// Query build initialization
	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total_count
		FROM %s
		WHERE TRUE
	`, bookColumns(), schema.Book.Table))

	// Free-text search over title, subtitle, and author names
	if searchQuery != "" {
		queryBuilder.WriteString(fmt.Sprintf(
			` AND (%s ILIKE $%d OR %s ILIKE $%d OR EXISTS (SELECT 1 FROM unnest(%s) a WHERE a ILIKE $%d))`,
			schema.Book.Title, argID, schema.Book.Subtitle, argID, schema.Book.Authors, argID,
		))
		args = append(args, "%"+searchQuery+"%")
		argID++
	}

	// Title Filtering
	if filter.Title != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s ILIKE $%d", schema.Book.Title, argID))
		args = append(args, "%"+filter.Title+"%")
		argID++
	}

	// Author Filtering (per array element)
	if filter.Author != "" {
		queryBuilder.WriteString(fmt.Sprintf(
			" AND EXISTS (SELECT 1 FROM unnest(%s) a WHERE a ILIKE $%d)", schema.Book.Authors, argID))
		args = append(args, "%"+filter.Author+"%")
		argID++
	}

	// Publisher Filtering
	if filter.Publisher != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s ILIKE $%d", schema.Book.Publisher, argID))
		args = append(args, "%"+filter.Publisher+"%")
		argID++
	}

	// Category Filtering (per array element)
	if filter.Category != "" {
		queryBuilder.WriteString(fmt.Sprintf(
			" AND EXISTS (SELECT 1 FROM unnest(%s) c WHERE c ILIKE $%d)", schema.Book.Categories, argID))
		args = append(args, "%"+filter.Category+"%")
		argID++
	}

	// Language Filtering (exact, canonicalized upstream)
	if filter.Language != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", schema.Book.Language, argID))
		args = append(args, filter.Language)
		argID++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s ASC, %s DESC", schema.Book.Title, schema.Book.ID))

	// Pagination injection
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1))
	args = append(args, limit, offset)

	rows, err := repository.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "book")
	}
	defer rows.Close()

	books := make([]*Book, 0)
	var totalCount int

	for rows.Next() {
		book := &Book{}
		fields := append(bookFields(book), &totalCount)
		if err := rows.Scan(fields...); err != nil {
			return nil, 0, dberr.Wrap(err, "book")
		}
		books = append(books, book)
	}

	return books, totalCount, nil
}

/*
ListPopular retrieves the top catalog records by average rating.

Parameters:
  - context: context.Context
  - limit: int

Returns:
  - []*Book: Leaderboard slice (highest rated first, ties by ratings count)
  - error: Database execution errors
*/
func (repository *PostgresRepository) ListPopular(context context.Context, limit int) ([]*Book, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		ORDER BY %s DESC, %s DESC
		LIMIT $1`,
		bookColumns(), schema.Book.Table,
		schema.Book.AverageRating, schema.Book.RatingsCount,
	)

	rows, err := repository.pool.Query(context, query, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "book")
	}
	defer rows.Close()

	books := make([]*Book, 0, limit)
	for rows.Next() {
		book := &Book{}
		if err := rows.Scan(bookFields(book)...); err != nil {
			return nil, dberr.Wrap(err, "book")
		}
		books = append(books, book)
	}

	return books, nil
}

/*
Update persists the full current state of a catalog record.

Parameters:
  - context: context.Context
  - book: *Book

Returns:
  - error: Conflict on duplicate ISBN, or execution errors
*/
func (repository *PostgresRepository) Update(context context.Context, book *Book) error {
	ref := schema.Book
	query := fmt.Sprintf(`
		UPDATE %s SET
			%s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8,
			%s = $9, %s = $10, %s = $11, %s = $12, %s = $13, %s = $14,
			%s = $15, %s = $16, %s = $17, %s = $18
		WHERE %s = $1`,
		ref.Table,
		ref.Title, ref.Subtitle, ref.Authors, ref.Publisher, ref.PublishedDate,
		ref.Description, ref.PageCount, ref.Categories, ref.ThumbnailURL,
		ref.Language, ref.ISBN10, ref.ISBN13, ref.AverageRating,
		ref.RatingsCount, ref.PreviewLink, ref.InfoLink, ref.UpdatedAt,
		ref.ID,
	)

	book.UpdatedAt = time.Now()
	_, err := repository.pool.Exec(context, query,
		book.ID, book.Title, book.Subtitle, book.Authors, book.Publisher,
		book.PublishedDate, book.Description, book.PageCount, book.Categories,
		book.ThumbnailURL, book.Language, book.ISBN10, book.ISBN13,
		book.AverageRating, book.RatingsCount, book.PreviewLink, book.InfoLink,
		book.UpdatedAt,
	)

	if err != nil {
		return dberr.Wrap(err, "book")
	}

	return nil
}

/*
Delete permanently removes a catalog record.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: Execution errors
*/
func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Book.Table, schema.Book.ID)

	_, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "book")
	}

	return nil
}

// # Scan Helpers

func (repository *PostgresRepository) queryOne(context context.Context, query string, arg any) (*Book, error) {
	book := &Book{}
	err := repository.pool.QueryRow(context, query, arg).Scan(bookFields(book)...)
	if err != nil {
		return nil, dberr.Wrap(err, "book")
	}
	return book, nil
}

func bookColumns() string {
	ref := schema.Book
	return strings.Join([]string{
		ref.ID, ref.Title, ref.Subtitle, ref.Authors, ref.Publisher,
		ref.PublishedDate, ref.Description, ref.PageCount, ref.Categories,
		ref.ThumbnailURL, ref.Language, ref.ISBN10, ref.ISBN13,
		ref.AverageRating, ref.RatingsCount, ref.PreviewLink, ref.InfoLink,
		ref.CreatedAt, ref.UpdatedAt,
	}, ", ")
}

func bookFields(book *Book) []any {
	return []any{
		&book.ID, &book.Title, &book.Subtitle, &book.Authors, &book.Publisher,
		&book.PublishedDate, &book.Description, &book.PageCount, &book.Categories,
		&book.ThumbnailURL, &book.Language, &book.ISBN10, &book.ISBN13,
		&book.AverageRating, &book.RatingsCount, &book.PreviewLink, &book.InfoLink,
		&book.CreatedAt, &book.UpdatedAt,
	}
}
