// Copyright (c) 2026 BookLog. All rights reserved.

package journal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/booklogapp/booklog-server/internal/platform/apperr"
	"github.com/booklogapp/booklog-server/pkg/uuid"
)

// # Service Layer

// Service orchestrates notes, highlights and reading sessions. Records
// owned by another user read as NotFound so identifiers cannot be probed
// across accounts.
type Service struct {
	noteRepository      NoteRepository
	highlightRepository HighlightRepository
	sessionRepository   SessionRepository
	logger              *slog.Logger
}

// NewService constructs a new [Service] with its repository dependencies.
func NewService(noteRepo NoteRepository, highlightRepo HighlightRepository, sessionRepo SessionRepository, logger *slog.Logger) *Service {
	return &Service{
		noteRepository:      noteRepo,
		highlightRepository: highlightRepo,
		sessionRepository:   sessionRepo,
		logger:              logger,
	}
}

// # Notes

// CreateNoteInput carries the fields for a new note.
type CreateNoteInput struct {
	BookID  string
	Content string
	Page    *int
	Chapter string
	Tags    []string
}

// UpdateNoteInput carries a partial note update. Nil fields are untouched;
// a non-nil Tags slice replaces the tag set entirely.
type UpdateNoteInput struct {
	Content  *string
	Page     *int
	Chapter  *string
	Tags     []string
	Favorite *bool
}

/*
CreateNote records a new note against a book.

Parameters:
  - context: context.Context
  - userID: string
  - input: CreateNoteInput

Returns:
  - *Note: Created note
  - error: Storage failures
*/
func (service *Service) CreateNote(context context.Context, userID string, input CreateNoteInput) (*Note, error) {
	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	note := &Note{
		ID:      uuid.New(),
		UserID:  userID,
		BookID:  input.BookID,
		Content: input.Content,
		Page:    input.Page,
		Chapter: input.Chapter,
		NotedAt: time.Now(),
		Tags:    tags,
	}

	if err := service.noteRepository.Create(context, note); err != nil {
		return nil, fmt.Errorf("journal_service_create_note_failed: %w", err)
	}

	service.logger.Info("note_created",
		slog.String("user_id", userID),
		slog.String("book_id", input.BookID),
		slog.String("note_id", note.ID),
	)

	return note, nil
}

/*
GetNote returns one of the user's notes.

Parameters:
  - context: context.Context
  - userID: string
  - noteID: string

Returns:
  - *Note: Hydrated note
  - error: NotFound or retrieval failures
*/
func (service *Service) GetNote(context context.Context, userID, noteID string) (*Note, error) {
	note, err := service.noteRepository.FindByID(context, noteID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.NotFound("Note")
		}
		return nil, fmt.Errorf("journal_service_get_note_failed: %w", err)
	}
	if note.UserID != userID {
		return nil, apperr.NotFound("Note")
	}
	return note, nil
}

/*
UpdateNote applies a partial update to a note.

Parameters:
  - context: context.Context
  - userID: string
  - noteID: string
  - input: UpdateNoteInput

Returns:
  - *Note: Updated note
  - error: NotFound or storage failures
*/
func (service *Service) UpdateNote(context context.Context, userID, noteID string, input UpdateNoteInput) (*Note, error) {
	note, err := service.GetNote(context, userID, noteID)
	if err != nil {
		return nil, err
	}

	if input.Content != nil {
		note.Content = *input.Content
	}
	if input.Page != nil {
		note.Page = input.Page
	}
	if input.Chapter != nil {
		note.Chapter = *input.Chapter
	}
	if input.Tags != nil {
		note.Tags = input.Tags
	}
	if input.Favorite != nil {
		note.Favorite = *input.Favorite
	}

	if err := service.noteRepository.Update(context, note); err != nil {
		return nil, fmt.Errorf("journal_service_update_note_failed: %w", err)
	}

	return note, nil
}

/*
DeleteNote removes a note permanently.

Parameters:
  - context: context.Context
  - userID: string
  - noteID: string

Returns:
  - error: NotFound or storage failures
*/
func (service *Service) DeleteNote(context context.Context, userID, noteID string) error {
	note, err := service.GetNote(context, userID, noteID)
	if err != nil {
		return err
	}

	if err := service.noteRepository.Delete(context, note); err != nil {
		return fmt.Errorf("journal_service_delete_note_failed: %w", err)
	}

	return nil
}

/*
ListNotes returns a page of the user's notes, optionally favorites only.

Parameters:
  - context: context.Context
  - userID: string
  - favoritesOnly: bool
  - limit: int
  - offset: int

Returns:
  - []*Note: Page of notes
  - int: Total count
  - error: Retrieval failures
*/
func (service *Service) ListNotes(context context.Context, userID string, favoritesOnly bool, limit, offset int) ([]*Note, int, error) {
	notes, total, err := service.noteRepository.ListByUser(context, userID, favoritesOnly, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("journal_service_list_notes_failed: %w", err)
	}
	return notes, total, nil
}

/*
ListBookNotes returns a page of the user's notes on one book.

Parameters:
  - context: context.Context
  - userID: string
  - bookID: string
  - limit: int
  - offset: int

Returns:
  - []*Note: Page of notes
  - int: Total count
  - error: Retrieval failures
*/
func (service *Service) ListBookNotes(context context.Context, userID, bookID string, limit, offset int) ([]*Note, int, error) {
	notes, total, err := service.noteRepository.ListByBook(context, userID, bookID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("journal_service_list_book_notes_failed: %w", err)
	}
	return notes, total, nil
}

/*
SearchNotes returns notes whose content matches the query.

Parameters:
  - context: context.Context
  - userID: string
  - query: string
  - limit: int
  - offset: int

Returns:
  - []*Note: Page of matching notes
  - int: Total count
  - error: Retrieval failures
*/
func (service *Service) SearchNotes(context context.Context, userID, query string, limit, offset int) ([]*Note, int, error) {
	notes, total, err := service.noteRepository.Search(context, userID, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("journal_service_search_notes_failed: %w", err)
	}
	return notes, total, nil
}

// # Highlights

// CreateHighlightInput carries the fields for a new highlight.
type CreateHighlightInput struct {
	BookID   string
	Content  string
	Page     int
	Location string
	Color    string
	Note     string
	Tags     []string
}

// UpdateHighlightInput carries a partial highlight update. Nil fields are
// untouched; a non-nil Tags slice replaces the tag set entirely.
type UpdateHighlightInput struct {
	Content  *string
	Page     *int
	Location *string
	Color    *string
	Note     *string
	Tags     []string
	Favorite *bool
}

/*
CreateHighlight records a new highlighted passage.

Parameters:
  - context: context.Context
  - userID: string
  - input: CreateHighlightInput

Returns:
  - *Highlight: Created highlight
  - error: Storage failures
*/
func (service *Service) CreateHighlight(context context.Context, userID string, input CreateHighlightInput) (*Highlight, error) {
	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	highlight := &Highlight{
		ID:            uuid.New(),
		UserID:        userID,
		BookID:        input.BookID,
		Content:       input.Content,
		Page:          input.Page,
		Location:      input.Location,
		HighlightedAt: time.Now(),
		Color:         input.Color,
		Note:          input.Note,
		Tags:          tags,
	}

	if err := service.highlightRepository.Create(context, highlight); err != nil {
		return nil, fmt.Errorf("journal_service_create_highlight_failed: %w", err)
	}

	service.logger.Info("highlight_created",
		slog.String("user_id", userID),
		slog.String("book_id", input.BookID),
		slog.String("highlight_id", highlight.ID),
	)

	return highlight, nil
}

/*
GetHighlight returns one of the user's highlights.

Parameters:
  - context: context.Context
  - userID: string
  - highlightID: string

Returns:
  - *Highlight: Hydrated highlight
  - error: NotFound or retrieval failures
*/
func (service *Service) GetHighlight(context context.Context, userID, highlightID string) (*Highlight, error) {
	highlight, err := service.highlightRepository.FindByID(context, highlightID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.NotFound("Highlight")
		}
		return nil, fmt.Errorf("journal_service_get_highlight_failed: %w", err)
	}
	if highlight.UserID != userID {
		return nil, apperr.NotFound("Highlight")
	}
	return highlight, nil
}

/*
UpdateHighlight applies a partial update to a highlight.

Parameters:
  - context: context.Context
  - userID: string
  - highlightID: string
  - input: UpdateHighlightInput

Returns:
  - *Highlight: Updated highlight
  - error: NotFound or storage failures
*/
func (service *Service) UpdateHighlight(context context.Context, userID, highlightID string, input UpdateHighlightInput) (*Highlight, error) {
	highlight, err := service.GetHighlight(context, userID, highlightID)
	if err != nil {
		return nil, err
	}

	if input.Content != nil {
		highlight.Content = *input.Content
	}
	if input.Page != nil {
		highlight.Page = *input.Page
	}
	if input.Location != nil {
		highlight.Location = *input.Location
	}
	if input.Color != nil {
		highlight.Color = *input.Color
	}
	if input.Note != nil {
		highlight.Note = *input.Note
	}
	if input.Tags != nil {
		highlight.Tags = input.Tags
	}
	if input.Favorite != nil {
		highlight.Favorite = *input.Favorite
	}

	if err := service.highlightRepository.Update(context, highlight); err != nil {
		return nil, fmt.Errorf("journal_service_update_highlight_failed: %w", err)
	}

	return highlight, nil
}

/*
DeleteHighlight removes a highlight permanently.

Parameters:
  - context: context.Context
  - userID: string
  - highlightID: string

Returns:
  - error: NotFound or storage failures
*/
func (service *Service) DeleteHighlight(context context.Context, userID, highlightID string) error {
	highlight, err := service.GetHighlight(context, userID, highlightID)
	if err != nil {
		return err
	}

	if err := service.highlightRepository.Delete(context, highlight); err != nil {
		return fmt.Errorf("journal_service_delete_highlight_failed: %w", err)
	}

	return nil
}

/*
ListHighlights returns a page of the user's highlights, optionally
favorites only.

Parameters:
  - context: context.Context
  - userID: string
  - favoritesOnly: bool
  - limit: int
  - offset: int

Returns:
  - []*Highlight: Page of highlights
  - int: Total count
  - error: Retrieval failures
*/
func (service *Service) ListHighlights(context context.Context, userID string, favoritesOnly bool, limit, offset int) ([]*Highlight, int, error) {
	highlights, total, err := service.highlightRepository.ListByUser(context, userID, favoritesOnly, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("journal_service_list_highlights_failed: %w", err)
	}
	return highlights, total, nil
}

/*
ListBookHighlights returns a page of the user's highlights on one book.

Parameters:
  - context: context.Context
  - userID: string
  - bookID: string
  - limit: int
  - offset: int

Returns:
  - []*Highlight: Page of highlights
  - int: Total count
  - error: Retrieval failures
*/
func (service *Service) ListBookHighlights(context context.Context, userID, bookID string, limit, offset int) ([]*Highlight, int, error) {
	highlights, total, err := service.highlightRepository.ListByBook(context, userID, bookID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("journal_service_list_book_highlights_failed: %w", err)
	}
	return highlights, total, nil
}

// # Sessions

// LogSessionInput carries the fields for a new reading session. A nil
// ReadAt defaults to now.
type LogSessionInput struct {
	BookID          string
	ReadAt          *time.Time
	StartPage       int
	EndPage         int
	DurationMinutes int
	Notes           string
	Emotion         *Emotion
	Rating          *int
	Location        string
}

/*
LogSession records one reading sitting.

Parameters:
  - context: context.Context
  - userID: string
  - input: LogSessionInput

Returns:
  - *ReadingSession: Created session
  - error: Storage failures
*/
func (service *Service) LogSession(context context.Context, userID string, input LogSessionInput) (*ReadingSession, error) {
	readAt := time.Now()
	if input.ReadAt != nil {
		readAt = *input.ReadAt
	}

	session := &ReadingSession{
		ID:              uuid.New(),
		UserID:          userID,
		BookID:          input.BookID,
		ReadAt:          readAt,
		StartPage:       input.StartPage,
		EndPage:         input.EndPage,
		DurationMinutes: input.DurationMinutes,
		Notes:           input.Notes,
		Emotion:         input.Emotion,
		Rating:          input.Rating,
		Location:        input.Location,
	}

	if err := service.sessionRepository.Create(context, session); err != nil {
		return nil, fmt.Errorf("journal_service_log_session_failed: %w", err)
	}

	service.logger.Info("reading_session_logged",
		slog.String("user_id", userID),
		slog.String("book_id", input.BookID),
		slog.Int("duration_minutes", input.DurationMinutes),
	)

	return session, nil
}

/*
GetSession returns one of the user's reading sessions.

Parameters:
  - context: context.Context
  - userID: string
  - sessionID: string

Returns:
  - *ReadingSession: Hydrated session
  - error: NotFound or retrieval failures
*/
func (service *Service) GetSession(context context.Context, userID, sessionID string) (*ReadingSession, error) {
	session, err := service.sessionRepository.FindByID(context, sessionID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.NotFound("Reading session")
		}
		return nil, fmt.Errorf("journal_service_get_session_failed: %w", err)
	}
	if session.UserID != userID {
		return nil, apperr.NotFound("Reading session")
	}
	return session, nil
}

/*
DeleteSession removes a reading session permanently.

Parameters:
  - context: context.Context
  - userID: string
  - sessionID: string

Returns:
  - error: NotFound or storage failures
*/
func (service *Service) DeleteSession(context context.Context, userID, sessionID string) error {
	session, err := service.GetSession(context, userID, sessionID)
	if err != nil {
		return err
	}

	if err := service.sessionRepository.Delete(context, session); err != nil {
		return fmt.Errorf("journal_service_delete_session_failed: %w", err)
	}

	return nil
}

/*
ListSessions returns a page of the user's sessions, newest first.

Parameters:
  - context: context.Context
  - userID: string
  - limit: int
  - offset: int

Returns:
  - []*ReadingSession: Page of sessions
  - int: Total count
  - error: Retrieval failures
*/
func (service *Service) ListSessions(context context.Context, userID string, limit, offset int) ([]*ReadingSession, int, error) {
	sessions, total, err := service.sessionRepository.ListByUser(context, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("journal_service_list_sessions_failed: %w", err)
	}
	return sessions, total, nil
}

/*
ListBookSessions returns a page of the user's sessions on one book.

Parameters:
  - context: context.Context
  - userID: string
  - bookID: string
  - limit: int
  - offset: int

Returns:
  - []*ReadingSession: Page of sessions
  - int: Total count
  - error: Retrieval failures
*/
func (service *Service) ListBookSessions(context context.Context, userID, bookID string, limit, offset int) ([]*ReadingSession, int, error) {
	sessions, total, err := service.sessionRepository.ListByBook(context, userID, bookID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("journal_service_list_book_sessions_failed: %w", err)
	}
	return sessions, total, nil
}

/*
TotalReadingTime sums the user's reading minutes inside [from, to).

Parameters:
  - context: context.Context
  - userID: string
  - from: time.Time
  - to: time.Time

Returns:
  - int: Total minutes read
  - error: Validation or retrieval failures
*/
func (service *Service) TotalReadingTime(context context.Context, userID string, from, to time.Time) (int, error) {
	if to.Before(from) {
		return 0, apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   FieldTo,
			Message: "must not be before from",
		})
	}

	minutes, err := service.sessionRepository.TotalMinutes(context, userID, from, to)
	if err != nil {
		return 0, fmt.Errorf("journal_service_total_reading_time_failed: %w", err)
	}
	return minutes, nil
}

/*
RecentSessions returns the user's latest sessions by read time.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - []*ReadingSession: Most recent sessions first
  - error: Retrieval failures
*/
func (service *Service) RecentSessions(context context.Context, userID string) ([]*ReadingSession, error) {
	sessions, err := service.sessionRepository.ListRecent(context, userID, RecentSessionsLimit)
	if err != nil {
		return nil, fmt.Errorf("journal_service_recent_sessions_failed: %w", err)
	}
	return sessions, nil
}
