// Copyright (c) 2026 BookLog. All rights reserved.

// HTTP delivery layer for notes, highlights and reading sessions.
package journal

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/booklogapp/booklog-server/internal/platform/middleware"
	requestutil "github.com/booklogapp/booklog-server/internal/platform/request"
	"github.com/booklogapp/booklog-server/internal/platform/respond"
	"github.com/booklogapp/booklog-server/internal/platform/validate"
	"github.com/booklogapp/booklog-server/pkg/pagination"
)

// # Definitions & Constructors

// Handler implements journal HTTP endpoints across three resources,
// each mounted on its own router.
type Handler struct {
	journalService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{journalService: service}
}

// NoteRoutes returns a [chi.Router] configured with note-specific routes.
//
// # Endpoints
//   - GET    /                : Paginated notes (?favorites=true narrows).
//   - POST   /                : Create a note.
//   - GET    /search?q=       : Content search.
//   - GET    /book/{bookID}   : Notes on one book.
//   - GET    /{noteID}        : One note.
//   - PUT    /{noteID}        : Partial update.
//   - DELETE /{noteID}        : Remove a note.
func (handler *Handler) NoteRoutes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.listNotes)
	router.Post("/", handler.createNote)
	router.Get("/search", handler.searchNotes)
	router.Get("/book/{bookID}", handler.listBookNotes)
	router.Get("/{noteID}", handler.getNote)
	router.Put("/{noteID}", handler.updateNote)
	router.Delete("/{noteID}", handler.deleteNote)

	return router
}

// HighlightRoutes returns a [chi.Router] configured with highlight-specific routes.
//
// # Endpoints
//   - GET    /                : Paginated highlights (?favorites=true narrows).
//   - POST   /                : Create a highlight.
//   - GET    /book/{bookID}   : Highlights on one book.
//   - GET    /{highlightID}   : One highlight.
//   - PUT    /{highlightID}   : Partial update.
//   - DELETE /{highlightID}   : Remove a highlight.
func (handler *Handler) HighlightRoutes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.listHighlights)
	router.Post("/", handler.createHighlight)
	router.Get("/book/{bookID}", handler.listBookHighlights)
	router.Get("/{highlightID}", handler.getHighlight)
	router.Put("/{highlightID}", handler.updateHighlight)
	router.Delete("/{highlightID}", handler.deleteHighlight)

	return router
}

// SessionRoutes returns a [chi.Router] configured with session-specific routes.
//
// # Endpoints
//   - GET    /                : Paginated sessions.
//   - POST   /                : Log a session.
//   - GET    /stats?from=&to= : Total reading minutes in a range.
//   - GET    /recent          : Latest sessions.
//   - GET    /book/{bookID}   : Sessions on one book.
//   - GET    /{sessionID}     : One session.
//   - DELETE /{sessionID}     : Remove a session.
func (handler *Handler) SessionRoutes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.listSessions)
	router.Post("/", handler.logSession)
	router.Get("/stats", handler.sessionStats)
	router.Get("/recent", handler.recentSessions)
	router.Get("/book/{bookID}", handler.listBookSessions)
	router.Get("/{sessionID}", handler.getSession)
	router.Delete("/{sessionID}", handler.deleteSession)

	return router
}

// # Request Payloads

type createNoteRequest struct {
	BookID  string   `json:"book_id"`
	Content string   `json:"content"`
	Page    *int     `json:"page"`
	Chapter string   `json:"chapter"`
	Tags    []string `json:"tags"`
}

type updateNoteRequest struct {
	Content  *string  `json:"content"`
	Page     *int     `json:"page"`
	Chapter  *string  `json:"chapter"`
	Tags     []string `json:"tags"`
	Favorite *bool    `json:"favorite"`
}

type createHighlightRequest struct {
	BookID   string   `json:"book_id"`
	Content  string   `json:"content"`
	Page     int      `json:"page"`
	Location string   `json:"location"`
	Color    string   `json:"color"`
	Note     string   `json:"note"`
	Tags     []string `json:"tags"`
}

type updateHighlightRequest struct {
	Content  *string  `json:"content"`
	Page     *int     `json:"page"`
	Location *string  `json:"location"`
	Color    *string  `json:"color"`
	Note     *string  `json:"note"`
	Tags     []string `json:"tags"`
	Favorite *bool    `json:"favorite"`
}

type logSessionRequest struct {
	BookID          string  `json:"book_id"`
	ReadAt          *string `json:"read_at"`
	StartPage       int     `json:"start_page"`
	EndPage         int     `json:"end_page"`
	DurationMinutes int     `json:"duration_minutes"`
	Notes           string  `json:"notes"`
	Emotion         *string `json:"emotion"`
	Rating          *int    `json:"rating"`
	Location        string  `json:"location"`
}

// idParam extracts and validates a UUID URL parameter.
func idParam(request *http.Request, name, field string) (string, error) {
	value := requestutil.ID(request, name)
	validator := &validate.Validator{}
	validator.Required(field, value).UUID(field, value)
	if err := validator.Err(); err != nil {
		return "", err
	}
	return value, nil
}

// favoritesOnly reads the optional ?favorites=true query flag.
func favoritesOnly(request *http.Request) bool {
	return request.URL.Query().Get("favorites") == "true"
}

// # Note Handlers

/*
CreateNote records a new note against a book.

POST /api/v1/notes

Request:
  - Body: createNoteRequest

Response:
  - 201: Note: Created note
  - 400: ErrValidation: Missing book_id or content
*/
func (handler *Handler) createNote(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createNoteRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldBookID, input.BookID).
		UUID(FieldBookID, input.BookID).
		Required(FieldContent, input.Content)
	if input.Page != nil {
		validator.Custom(FieldPage, *input.Page < 0, "must not be negative")
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	note, err := handler.journalService.CreateNote(request.Context(), userID, CreateNoteInput{
		BookID:  input.BookID,
		Content: input.Content,
		Page:    input.Page,
		Chapter: input.Chapter,
		Tags:    input.Tags,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, note)
}

/*
GetNote returns one of the caller's notes.

GET /api/v1/notes/{noteID}

Response:
  - 200: Note: The note
  - 404: ErrNotFound: Unknown or foreign note
*/
func (handler *Handler) getNote(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	noteID, err := idParam(request, "noteID", FieldNoteID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	note, err := handler.journalService.GetNote(request.Context(), userID, noteID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, note)
}

/*
UpdateNote applies a partial update to a note.

PUT /api/v1/notes/{noteID}

Request:
  - Body: updateNoteRequest (all fields optional)

Response:
  - 200: Note: Updated note
  - 404: ErrNotFound: Unknown or foreign note
*/
func (handler *Handler) updateNote(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	noteID, err := idParam(request, "noteID", FieldNoteID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateNoteRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	note, err := handler.journalService.UpdateNote(request.Context(), userID, noteID, UpdateNoteInput{
		Content:  input.Content,
		Page:     input.Page,
		Chapter:  input.Chapter,
		Tags:     input.Tags,
		Favorite: input.Favorite,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, note)
}

/*
DeleteNote removes the caller's note.

DELETE /api/v1/notes/{noteID}

Response:
  - 204: No Content: Note removed
  - 404: ErrNotFound: Unknown or foreign note
*/
func (handler *Handler) deleteNote(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	noteID, err := idParam(request, "noteID", FieldNoteID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.journalService.DeleteNote(request.Context(), userID, noteID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
ListNotes returns a page of the caller's notes.

GET /api/v1/notes?page=&limit=&favorites=

Response:
  - 200: Paginated[Note]
*/
func (handler *Handler) listNotes(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)
	notes, total, err := handler.journalService.ListNotes(request.Context(), userID, favoritesOnly(request), params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, notes, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
ListBookNotes returns a page of the caller's notes on one book.

GET /api/v1/notes/book/{bookID}?page=&limit=

Response:
  - 200: Paginated[Note]
*/
func (handler *Handler) listBookNotes(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	bookID, err := idParam(request, "bookID", FieldBookID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)
	notes, total, err := handler.journalService.ListBookNotes(request.Context(), userID, bookID, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, notes, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
SearchNotes returns notes whose content matches the query.

GET /api/v1/notes/search?q=&page=&limit=

Response:
  - 200: Paginated[Note]
  - 400: ErrValidation: Missing query
*/
func (handler *Handler) searchNotes(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	query := request.URL.Query().Get(FieldQuery)
	if query == "" {
		respond.Error(writer, request, validate.RequiredError(FieldQuery, "is required"))
		return
	}

	params := pagination.FromRequest(request)
	notes, total, err := handler.journalService.SearchNotes(request.Context(), userID, query, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, notes, pagination.NewMeta(params.Page, params.Limit, total))
}

// # Highlight Handlers

/*
CreateHighlight records a new highlighted passage.

POST /api/v1/highlights

Request:
  - Body: createHighlightRequest

Response:
  - 201: Highlight: Created highlight
  - 400: ErrValidation: Missing book_id/content or negative page
*/
func (handler *Handler) createHighlight(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createHighlightRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldBookID, input.BookID).
		UUID(FieldBookID, input.BookID).
		Required(FieldContent, input.Content).
		Custom(FieldPage, input.Page < 0, "must not be negative")
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	highlight, err := handler.journalService.CreateHighlight(request.Context(), userID, CreateHighlightInput{
		BookID:   input.BookID,
		Content:  input.Content,
		Page:     input.Page,
		Location: input.Location,
		Color:    input.Color,
		Note:     input.Note,
		Tags:     input.Tags,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, highlight)
}

/*
GetHighlight returns one of the caller's highlights.

GET /api/v1/highlights/{highlightID}

Response:
  - 200: Highlight: The highlight
  - 404: ErrNotFound: Unknown or foreign highlight
*/
func (handler *Handler) getHighlight(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	highlightID, err := idParam(request, "highlightID", FieldHighlightID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	highlight, err := handler.journalService.GetHighlight(request.Context(), userID, highlightID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, highlight)
}

/*
UpdateHighlight applies a partial update to a highlight.

PUT /api/v1/highlights/{highlightID}

Request:
  - Body: updateHighlightRequest (all fields optional)

Response:
  - 200: Highlight: Updated highlight
  - 404: ErrNotFound: Unknown or foreign highlight
*/
func (handler *Handler) updateHighlight(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	highlightID, err := idParam(request, "highlightID", FieldHighlightID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateHighlightRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	highlight, err := handler.journalService.UpdateHighlight(request.Context(), userID, highlightID, UpdateHighlightInput{
		Content:  input.Content,
		Page:     input.Page,
		Location: input.Location,
		Color:    input.Color,
		Note:     input.Note,
		Tags:     input.Tags,
		Favorite: input.Favorite,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, highlight)
}

/*
DeleteHighlight removes the caller's highlight.

DELETE /api/v1/highlights/{highlightID}

Response:
  - 204: No Content: Highlight removed
  - 404: ErrNotFound: Unknown or foreign highlight
*/
func (handler *Handler) deleteHighlight(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	highlightID, err := idParam(request, "highlightID", FieldHighlightID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.journalService.DeleteHighlight(request.Context(), userID, highlightID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
ListHighlights returns a page of the caller's highlights.

GET /api/v1/highlights?page=&limit=&favorites=

Response:
  - 200: Paginated[Highlight]
*/
func (handler *Handler) listHighlights(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)
	highlights, total, err := handler.journalService.ListHighlights(request.Context(), userID, favoritesOnly(request), params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, highlights, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
ListBookHighlights returns a page of the caller's highlights on one book.

GET /api/v1/highlights/book/{bookID}?page=&limit=

Response:
  - 200: Paginated[Highlight]
*/
func (handler *Handler) listBookHighlights(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	bookID, err := idParam(request, "bookID", FieldBookID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)
	highlights, total, err := handler.journalService.ListBookHighlights(request.Context(), userID, bookID, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, highlights, pagination.NewMeta(params.Page, params.Limit, total))
}

// # Session Handlers

/*
LogSession records one reading sitting.

POST /api/v1/sessions

Request:
  - Body: logSessionRequest

Response:
  - 201: ReadingSession: Created session
  - 400: ErrValidation: Bad pages, duration, emotion or rating
*/
func (handler *Handler) logSession(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input logSessionRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldBookID, input.BookID).
		UUID(FieldBookID, input.BookID).
		Custom(FieldStartPage, input.StartPage < 0, "must not be negative").
		Custom(FieldEndPage, input.EndPage < input.StartPage, "must not be before start_page").
		Custom(FieldDuration, input.DurationMinutes <= 0, "must be a positive number")
	if input.Rating != nil {
		validator.Range(FieldRating, *input.Rating, 1, 5)
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	var emotion *Emotion
	if input.Emotion != nil && *input.Emotion != "" {
		candidate := Emotion(*input.Emotion)
		if !candidate.Valid() {
			respond.Error(writer, request, validate.RequiredError(FieldEmotion, "must be one of HAPPY, SAD, CONFUSED, EXCITED, BORED"))
			return
		}
		emotion = &candidate
	}

	var readAt *time.Time
	if input.ReadAt != nil && *input.ReadAt != "" {
		parsed, err := time.Parse(time.RFC3339, *input.ReadAt)
		if err != nil {
			respond.Error(writer, request, validate.RequiredError("read_at", "must be an RFC 3339 timestamp"))
			return
		}
		readAt = &parsed
	}

	session, err := handler.journalService.LogSession(request.Context(), userID, LogSessionInput{
		BookID:          input.BookID,
		ReadAt:          readAt,
		StartPage:       input.StartPage,
		EndPage:         input.EndPage,
		DurationMinutes: input.DurationMinutes,
		Notes:           input.Notes,
		Emotion:         emotion,
		Rating:          input.Rating,
		Location:        input.Location,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, session)
}

/*
GetSession returns one of the caller's sessions.

GET /api/v1/sessions/{sessionID}

Response:
  - 200: ReadingSession: The session
  - 404: ErrNotFound: Unknown or foreign session
*/
func (handler *Handler) getSession(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	sessionID, err := idParam(request, "sessionID", FieldSessionID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.journalService.GetSession(request.Context(), userID, sessionID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, session)
}

/*
DeleteSession removes the caller's session.

DELETE /api/v1/sessions/{sessionID}

Response:
  - 204: No Content: Session removed
  - 404: ErrNotFound: Unknown or foreign session
*/
func (handler *Handler) deleteSession(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	sessionID, err := idParam(request, "sessionID", FieldSessionID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.journalService.DeleteSession(request.Context(), userID, sessionID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
ListSessions returns a page of the caller's sessions.

GET /api/v1/sessions?page=&limit=

Response:
  - 200: Paginated[ReadingSession]
*/
func (handler *Handler) listSessions(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)
	sessions, total, err := handler.journalService.ListSessions(request.Context(), userID, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, sessions, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
ListBookSessions returns a page of the caller's sessions on one book.

GET /api/v1/sessions/book/{bookID}?page=&limit=

Response:
  - 200: Paginated[ReadingSession]
*/
func (handler *Handler) listBookSessions(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	bookID, err := idParam(request, "bookID", FieldBookID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)
	sessions, total, err := handler.journalService.ListBookSessions(request.Context(), userID, bookID, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, sessions, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
SessionStats sums the caller's reading minutes inside a date range.

GET /api/v1/sessions/stats?from=&to=

Request:
  - from, to: RFC 3339 timestamps; both default to the last 30 days

Response:
  - 200: {total_minutes: int, from, to}
  - 400: ErrValidation: Bad timestamps or inverted range
*/
func (handler *Handler) sessionStats(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now

	if raw := request.URL.Query().Get(FieldFrom); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			respond.Error(writer, request, validate.RequiredError(FieldFrom, "must be an RFC 3339 timestamp"))
			return
		}
		from = parsed
	}
	if raw := request.URL.Query().Get(FieldTo); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			respond.Error(writer, request, validate.RequiredError(FieldTo, "must be an RFC 3339 timestamp"))
			return
		}
		to = parsed
	}

	minutes, err := handler.journalService.TotalReadingTime(request.Context(), userID, from, to)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		"total_minutes": minutes,
		"from":          from,
		"to":            to,
	})
}

/*
RecentSessions returns the caller's latest sessions.

GET /api/v1/sessions/recent

Response:
  - 200: []ReadingSession: Most recent sessions first
*/
func (handler *Handler) recentSessions(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	sessions, err := handler.journalService.RecentSessions(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, sessions)
}
