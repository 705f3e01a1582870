// Copyright (c) 2026 BookLog. All rights reserved.

// PostgreSQL implementations of the journal storage contracts. Record
// creation and deletion run in a transaction that also adjusts the
// matching counter on the owner's library entry, when one exists.
package journal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/booklogapp/booklog-server/internal/platform/database/schema"
	"github.com/booklogapp/booklog-server/internal/platform/dberr"
)

// adjustEntryCounter shifts a counter column on the (user, book) library
// entry. A missing entry is not an error; the journal outlives library
// membership.
func adjustEntryCounter(context context.Context, tx pgx.Tx, column string, delta int, userID, bookID string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = GREATEST(%s + $1, 0), %s = NOW()
		WHERE %s = $2 AND %s = $3`,
		schema.LibraryEntry.Table, column, column, schema.LibraryEntry.UpdatedAt,
		schema.LibraryEntry.UserID, schema.LibraryEntry.BookID,
	)

	_, err := tx.Exec(context, query, delta, userID, bookID)
	return err
}

// # Notes

// PostgresNoteRepository implements the NoteRepository interface using pgx.
type PostgresNoteRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresNoteRepository creates a new PostgreSQL implementation of the NoteRepository.
func NewPostgresNoteRepository(pool *pgxpool.Pool) *PostgresNoteRepository {
	return &PostgresNoteRepository{pool: pool}
}

/*
Create persists a new note and bumps the entry's note counter in one
transaction.

Parameters:
  - context: context.Context
  - note: *Note

Returns:
  - error: Execution errors
*/
func (repository *PostgresNoteRepository) Create(context context.Context, note *Note) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		schema.ReadingNote.Table, noteColumns(),
	)

	now := time.Now()
	if note.CreatedAt.IsZero() {
		note.CreatedAt = now
	}
	note.UpdatedAt = now

	tx, err := repository.pool.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "note")
	}
	defer tx.Rollback(context)

	_, err = tx.Exec(context, query,
		note.ID, note.UserID, note.BookID, note.Content, note.Page,
		note.Chapter, note.NotedAt, note.Tags, note.Favorite,
		note.CreatedAt, note.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "note")
	}

	if err := adjustEntryCounter(context, tx, schema.LibraryEntry.NotesCount, 1, note.UserID, note.BookID); err != nil {
		return dberr.Wrap(err, "note")
	}

	if err := tx.Commit(context); err != nil {
		return dberr.Wrap(err, "note")
	}

	return nil
}

/*
FindByID retrieves a note by its identifier.

Parameters:
  - context: context.Context
  - noteID: string

Returns:
  - *Note: Hydrated entity
  - error: apperr.NotFound or execution errors
*/
func (repository *PostgresNoteRepository) FindByID(context context.Context, noteID string) (*Note, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1`,
		noteColumns(), schema.ReadingNote.Table, schema.ReadingNote.ID,
	)

	note := &Note{}
	err := repository.pool.QueryRow(context, query, noteID).Scan(noteFields(note)...)
	if err != nil {
		return nil, dberr.Wrap(err, "note")
	}

	return note, nil
}

/*
Update persists the mutable fields of an existing note.

Parameters:
  - context: context.Context
  - note: *Note

Returns:
  - error: Execution errors
*/
func (repository *PostgresNoteRepository) Update(context context.Context, note *Note) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7
		WHERE %s = $1`,
		schema.ReadingNote.Table,
		schema.ReadingNote.Content, schema.ReadingNote.Page,
		schema.ReadingNote.Chapter, schema.ReadingNote.Tags,
		schema.ReadingNote.Favorite, schema.ReadingNote.UpdatedAt,
		schema.ReadingNote.ID,
	)

	note.UpdatedAt = time.Now()

	_, err := repository.pool.Exec(context, query,
		note.ID, note.Content, note.Page, note.Chapter, note.Tags,
		note.Favorite, note.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "note")
	}

	return nil
}

/*
Delete removes a note and decrements the entry's note counter in one
transaction.

Parameters:
  - context: context.Context
  - note: *Note

Returns:
  - error: Execution errors
*/
func (repository *PostgresNoteRepository) Delete(context context.Context, note *Note) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE %s = $1`,
		schema.ReadingNote.Table, schema.ReadingNote.ID,
	)

	tx, err := repository.pool.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "note")
	}
	defer tx.Rollback(context)

	tag, err := tx.Exec(context, query, note.ID)
	if err != nil {
		return dberr.Wrap(err, "note")
	}

	if tag.RowsAffected() > 0 {
		if err := adjustEntryCounter(context, tx, schema.LibraryEntry.NotesCount, -1, note.UserID, note.BookID); err != nil {
			return dberr.Wrap(err, "note")
		}
	}

	if err := tx.Commit(context); err != nil {
		return dberr.Wrap(err, "note")
	}

	return nil
}

/*
ListByUser retrieves a page of the user's notes, newest first.

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
func (repository *PostgresNoteRepository) ListByUser(context context.Context, userID string, favoritesOnly bool, limit, offset int) ([]*Note, int, error) {
	var builder strings.Builder
	fmt.Fprintf(&builder, `
		SELECT %s, COUNT(*) OVER() AS total_count
		FROM %s
		WHERE %s = $1`,
		noteColumns(), schema.ReadingNote.Table, schema.ReadingNote.UserID,
	)
	if favoritesOnly {
		fmt.Fprintf(&builder, ` AND %s = TRUE`, schema.ReadingNote.Favorite)
	}
	fmt.Fprintf(&builder, `
		ORDER BY %s DESC, %s DESC
		LIMIT $2 OFFSET $3`,
		schema.ReadingNote.NotedAt, schema.ReadingNote.ID,
	)

	return repository.queryPage(context, builder.String(), userID, limit, offset)
}

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
func (repository *PostgresNoteRepository) ListByBook(context context.Context, userID, bookID string, limit, offset int) ([]*Note, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total_count
		FROM %s
		WHERE %s = $1 AND %s = $4
		ORDER BY %s DESC, %s DESC
		LIMIT $2 OFFSET $3`,
		noteColumns(), schema.ReadingNote.Table,
		schema.ReadingNote.UserID, schema.ReadingNote.BookID,
		schema.ReadingNote.NotedAt, schema.ReadingNote.ID,
	)

	return repository.queryPage(context, query, userID, limit, offset, bookID)
}

/*
Search retrieves notes whose content contains the query, case-insensitively.

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
func (repository *PostgresNoteRepository) Search(context context.Context, userID, query string, limit, offset int) ([]*Note, int, error) {
	sqlQuery := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total_count
		FROM %s
		WHERE %s = $1 AND %s ILIKE $4
		ORDER BY %s DESC, %s DESC
		LIMIT $2 OFFSET $3`,
		noteColumns(), schema.ReadingNote.Table,
		schema.ReadingNote.UserID, schema.ReadingNote.Content,
		schema.ReadingNote.NotedAt, schema.ReadingNote.ID,
	)

	pattern := "%" + query + "%"
	return repository.queryPage(context, sqlQuery, userID, limit, offset, pattern)
}

// queryPage runs a paginated note query whose first three placeholders
// are userID, limit and offset, scanning the trailing total_count column.
func (repository *PostgresNoteRepository) queryPage(context context.Context, query, userID string, limit, offset int, extraArgs ...any) ([]*Note, int, error) {
	args := append([]any{userID, limit, offset}, extraArgs...)

	rows, err := repository.pool.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "note")
	}
	defer rows.Close()

	notes := []*Note{}
	totalCount := 0
	for rows.Next() {
		note := &Note{}
		fields := append(noteFields(note), &totalCount)
		if err := rows.Scan(fields...); err != nil {
			return nil, 0, dberr.Wrap(err, "note")
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "note")
	}

	return notes, totalCount, nil
}

// noteColumns returns the comma-separated column list matching [noteFields].
func noteColumns() string {
	return strings.Join(schema.ReadingNote.Columns(), ", ")
}

// noteFields returns scan destinations ordered to match [noteColumns].
func noteFields(note *Note) []any {
	return []any{
		&note.ID, &note.UserID, &note.BookID, &note.Content, &note.Page,
		&note.Chapter, &note.NotedAt, &note.Tags, &note.Favorite,
		&note.CreatedAt, &note.UpdatedAt,
	}
}

// # Highlights

// PostgresHighlightRepository implements the HighlightRepository interface using pgx.
type PostgresHighlightRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresHighlightRepository creates a new PostgreSQL implementation of the HighlightRepository.
func NewPostgresHighlightRepository(pool *pgxpool.Pool) *PostgresHighlightRepository {
	return &PostgresHighlightRepository{pool: pool}
}

// Create persists a new highlight and bumps the entry's highlight counter
// in one transaction.
func (repository *PostgresHighlightRepository) Create(context context.Context, highlight *Highlight) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		schema.ReadingHighlight.Table, highlightColumns(),
	)

	now := time.Now()
	if highlight.CreatedAt.IsZero() {
		highlight.CreatedAt = now
	}
	highlight.UpdatedAt = now

	tx, err := repository.pool.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "highlight")
	}
	defer tx.Rollback(context)

	_, err = tx.Exec(context, query,
		highlight.ID, highlight.UserID, highlight.BookID, highlight.Content,
		highlight.Page, highlight.Location, highlight.HighlightedAt,
		highlight.Color, highlight.Note, highlight.Tags, highlight.Favorite,
		highlight.CreatedAt, highlight.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "highlight")
	}

	if err := adjustEntryCounter(context, tx, schema.LibraryEntry.HighlightsCount, 1, highlight.UserID, highlight.BookID); err != nil {
		return dberr.Wrap(err, "highlight")
	}

	if err := tx.Commit(context); err != nil {
		return dberr.Wrap(err, "highlight")
	}

	return nil
}

// FindByID retrieves a highlight by its identifier.
func (repository *PostgresHighlightRepository) FindByID(context context.Context, highlightID string) (*Highlight, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1`,
		highlightColumns(), schema.ReadingHighlight.Table, schema.ReadingHighlight.ID,
	)

	highlight := &Highlight{}
	err := repository.pool.QueryRow(context, query, highlightID).Scan(highlightFields(highlight)...)
	if err != nil {
		return nil, dberr.Wrap(err, "highlight")
	}

	return highlight, nil
}

// Update persists the mutable fields of an existing highlight.
func (repository *PostgresHighlightRepository) Update(context context.Context, highlight *Highlight) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9
		WHERE %s = $1`,
		schema.ReadingHighlight.Table,
		schema.ReadingHighlight.Content, schema.ReadingHighlight.Page,
		schema.ReadingHighlight.Location, schema.ReadingHighlight.Color,
		schema.ReadingHighlight.Note, schema.ReadingHighlight.Tags,
		schema.ReadingHighlight.Favorite, schema.ReadingHighlight.UpdatedAt,
		schema.ReadingHighlight.ID,
	)

	highlight.UpdatedAt = time.Now()

	_, err := repository.pool.Exec(context, query,
		highlight.ID, highlight.Content, highlight.Page, highlight.Location,
		highlight.Color, highlight.Note, highlight.Tags, highlight.Favorite,
		highlight.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "highlight")
	}

	return nil
}

// Delete removes a highlight and decrements the entry's highlight counter
// in one transaction.
func (repository *PostgresHighlightRepository) Delete(context context.Context, highlight *Highlight) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE %s = $1`,
		schema.ReadingHighlight.Table, schema.ReadingHighlight.ID,
	)

	tx, err := repository.pool.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "highlight")
	}
	defer tx.Rollback(context)

	tag, err := tx.Exec(context, query, highlight.ID)
	if err != nil {
		return dberr.Wrap(err, "highlight")
	}

	if tag.RowsAffected() > 0 {
		if err := adjustEntryCounter(context, tx, schema.LibraryEntry.HighlightsCount, -1, highlight.UserID, highlight.BookID); err != nil {
			return dberr.Wrap(err, "highlight")
		}
	}

	if err := tx.Commit(context); err != nil {
		return dberr.Wrap(err, "highlight")
	}

	return nil
}

// ListByUser retrieves a page of the user's highlights, newest first.
func (repository *PostgresHighlightRepository) ListByUser(context context.Context, userID string, favoritesOnly bool, limit, offset int) ([]*Highlight, int, error) {
	var builder strings.Builder
	fmt.Fprintf(&builder, `
		SELECT %s, COUNT(*) OVER() AS total_count
		FROM %s
		WHERE %s = $1`,
		highlightColumns(), schema.ReadingHighlight.Table, schema.ReadingHighlight.UserID,
	)
	if favoritesOnly {
		fmt.Fprintf(&builder, ` AND %s = TRUE`, schema.ReadingHighlight.Favorite)
	}
	fmt.Fprintf(&builder, `
		ORDER BY %s DESC, %s DESC
		LIMIT $2 OFFSET $3`,
		schema.ReadingHighlight.HighlightedAt, schema.ReadingHighlight.ID,
	)

	return repository.queryPage(context, builder.String(), userID, limit, offset)
}

// ListByBook retrieves a page of the user's highlights on one book.
func (repository *PostgresHighlightRepository) ListByBook(context context.Context, userID, bookID string, limit, offset int) ([]*Highlight, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total_count
		FROM %s
		WHERE %s = $1 AND %s = $4
		ORDER BY %s DESC, %s DESC
		LIMIT $2 OFFSET $3`,
		highlightColumns(), schema.ReadingHighlight.Table,
		schema.ReadingHighlight.UserID, schema.ReadingHighlight.BookID,
		schema.ReadingHighlight.HighlightedAt, schema.ReadingHighlight.ID,
	)

	return repository.queryPage(context, query, userID, limit, offset, bookID)
}

// queryPage runs a paginated highlight query whose first three
// placeholders are userID, limit and offset.
func (repository *PostgresHighlightRepository) queryPage(context context.Context, query, userID string, limit, offset int, extraArgs ...any) ([]*Highlight, int, error) {
	args := append([]any{userID, limit, offset}, extraArgs...)

	rows, err := repository.pool.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "highlight")
	}
	defer rows.Close()

	highlights := []*Highlight{}
	totalCount := 0
	for rows.Next() {
		highlight := &Highlight{}
		fields := append(highlightFields(highlight), &totalCount)
		if err := rows.Scan(fields...); err != nil {
			return nil, 0, dberr.Wrap(err, "highlight")
		}
		highlights = append(highlights, highlight)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "highlight")
	}

	return highlights, totalCount, nil
}

// highlightColumns returns the comma-separated column list matching [highlightFields].
func highlightColumns() string {
	return strings.Join(schema.ReadingHighlight.Columns(), ", ")
}

// highlightFields returns scan destinations ordered to match [highlightColumns].
func highlightFields(highlight *Highlight) []any {
	return []any{
		&highlight.ID, &highlight.UserID, &highlight.BookID, &highlight.Content,
		&highlight.Page, &highlight.Location, &highlight.HighlightedAt,
		&highlight.Color, &highlight.Note, &highlight.Tags, &highlight.Favorite,
		&highlight.CreatedAt, &highlight.UpdatedAt,
	}
}

// # Sessions

// PostgresSessionRepository implements the SessionRepository interface using pgx.
type PostgresSessionRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresSessionRepository creates a new PostgreSQL implementation of the SessionRepository.
func NewPostgresSessionRepository(pool *pgxpool.Pool) *PostgresSessionRepository {
	return &PostgresSessionRepository{pool: pool}
}

// Create persists a new session and bumps the entry's session counter in
// one transaction.
func (repository *PostgresSessionRepository) Create(context context.Context, session *ReadingSession) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		schema.ReadingSession.Table, sessionColumns(),
	)

	now := time.Now()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}
	session.UpdatedAt = now

	tx, err := repository.pool.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "reading session")
	}
	defer tx.Rollback(context)

	_, err = tx.Exec(context, query,
		session.ID, session.UserID, session.BookID, session.ReadAt,
		session.StartPage, session.EndPage, session.DurationMinutes,
		session.Notes, session.Emotion, session.Rating, session.Location,
		session.CreatedAt, session.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "reading session")
	}

	if err := adjustEntryCounter(context, tx, schema.LibraryEntry.SessionsCount, 1, session.UserID, session.BookID); err != nil {
		return dberr.Wrap(err, "reading session")
	}

	if err := tx.Commit(context); err != nil {
		return dberr.Wrap(err, "reading session")
	}

	return nil
}

// FindByID retrieves a session by its identifier.
func (repository *PostgresSessionRepository) FindByID(context context.Context, sessionID string) (*ReadingSession, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1`,
		sessionColumns(), schema.ReadingSession.Table, schema.ReadingSession.ID,
	)

	session := &ReadingSession{}
	err := repository.pool.QueryRow(context, query, sessionID).Scan(sessionFields(session)...)
	if err != nil {
		return nil, dberr.Wrap(err, "reading session")
	}

	return session, nil
}

// Delete removes a session and decrements the entry's session counter in
// one transaction.
func (repository *PostgresSessionRepository) Delete(context context.Context, session *ReadingSession) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE %s = $1`,
		schema.ReadingSession.Table, schema.ReadingSession.ID,
	)

	tx, err := repository.pool.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "reading session")
	}
	defer tx.Rollback(context)

	tag, err := tx.Exec(context, query, session.ID)
	if err != nil {
		return dberr.Wrap(err, "reading session")
	}

	if tag.RowsAffected() > 0 {
		if err := adjustEntryCounter(context, tx, schema.LibraryEntry.SessionsCount, -1, session.UserID, session.BookID); err != nil {
			return dberr.Wrap(err, "reading session")
		}
	}

	if err := tx.Commit(context); err != nil {
		return dberr.Wrap(err, "reading session")
	}

	return nil
}

// ListByUser retrieves a page of the user's sessions, newest first.
func (repository *PostgresSessionRepository) ListByUser(context context.Context, userID string, limit, offset int) ([]*ReadingSession, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total_count
		FROM %s
		WHERE %s = $1
		ORDER BY %s DESC, %s DESC
		LIMIT $2 OFFSET $3`,
		sessionColumns(), schema.ReadingSession.Table, schema.ReadingSession.UserID,
		schema.ReadingSession.ReadAt, schema.ReadingSession.ID,
	)

	return repository.queryPage(context, query, userID, limit, offset)
}

// ListByBook retrieves a page of the user's sessions on one book.
func (repository *PostgresSessionRepository) ListByBook(context context.Context, userID, bookID string, limit, offset int) ([]*ReadingSession, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total_count
		FROM %s
		WHERE %s = $1 AND %s = $4
		ORDER BY %s DESC, %s DESC
		LIMIT $2 OFFSET $3`,
		sessionColumns(), schema.ReadingSession.Table,
		schema.ReadingSession.UserID, schema.ReadingSession.BookID,
		schema.ReadingSession.ReadAt, schema.ReadingSession.ID,
	)

	return repository.queryPage(context, query, userID, limit, offset, bookID)
}

/*
TotalMinutes sums session durations for the user inside [from, to).

Parameters:
  - context: context.Context
  - userID: string
  - from: time.Time
  - to: time.Time

Returns:
  - int: Total minutes read, zero when no sessions match
  - error: Execution errors
*/
func (repository *PostgresSessionRepository) TotalMinutes(context context.Context, userID string, from, to time.Time) (int, error) {
	query := fmt.Sprintf(`
		SELECT COALESCE(SUM(%s), 0)
		FROM %s
		WHERE %s = $1 AND %s >= $2 AND %s < $3`,
		schema.ReadingSession.DurationMinutes, schema.ReadingSession.Table,
		schema.ReadingSession.UserID, schema.ReadingSession.ReadAt,
		schema.ReadingSession.ReadAt,
	)

	total := 0
	err := repository.pool.QueryRow(context, query, userID, from, to).Scan(&total)
	if err != nil {
		return 0, dberr.Wrap(err, "reading session")
	}

	return total, nil
}

// ListRecent retrieves the user's latest sessions by read time.
func (repository *PostgresSessionRepository) ListRecent(context context.Context, userID string, limit int) ([]*ReadingSession, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s DESC, %s DESC
		LIMIT $2`,
		sessionColumns(), schema.ReadingSession.Table, schema.ReadingSession.UserID,
		schema.ReadingSession.ReadAt, schema.ReadingSession.ID,
	)

	rows, err := repository.pool.Query(context, query, userID, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "reading session")
	}
	defer rows.Close()

	sessions := []*ReadingSession{}
	for rows.Next() {
		session := &ReadingSession{}
		if err := rows.Scan(sessionFields(session)...); err != nil {
			return nil, dberr.Wrap(err, "reading session")
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "reading session")
	}

	return sessions, nil
}

// queryPage runs a paginated session query whose first three placeholders
// are userID, limit and offset.
func (repository *PostgresSessionRepository) queryPage(context context.Context, query, userID string, limit, offset int, extraArgs ...any) ([]*ReadingSession, int, error) {
	args := append([]any{userID, limit, offset}, extraArgs...)

	rows, err := repository.pool.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "reading session")
	}
	defer rows.Close()

	sessions := []*ReadingSession{}
	totalCount := 0
	for rows.Next() {
		session := &ReadingSession{}
		fields := append(sessionFields(session), &totalCount)
		if err := rows.Scan(fields...); err != nil {
			return nil, 0, dberr.Wrap(err, "reading session")
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "reading session")
	}

	return sessions, totalCount, nil
}

// sessionColumns returns the comma-separated column list matching [sessionFields].
func sessionColumns() string {
	return strings.Join(schema.ReadingSession.Columns(), ", ")
}

// sessionFields returns scan destinations ordered to match [sessionColumns].
func sessionFields(session *ReadingSession) []any {
	return []any{
		&session.ID, &session.UserID, &session.BookID, &session.ReadAt,
		&session.StartPage, &session.EndPage, &session.DurationMinutes,
		&session.Notes, &session.Emotion, &session.Rating, &session.Location,
		&session.CreatedAt, &session.UpdatedAt,
	}
}
