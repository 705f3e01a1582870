// Copyright (c) 2026 BookLog. All rights reserved.

// HTTP delivery layer for the personal library.
package entry

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/booklogapp/booklog-server/internal/platform/middleware"
	requestutil "github.com/booklogapp/booklog-server/internal/platform/request"
	"github.com/booklogapp/booklog-server/internal/platform/respond"
	"github.com/booklogapp/booklog-server/internal/platform/validate"
	"github.com/booklogapp/booklog-server/pkg/pagination"
)

// # Definitions & Constructors

// Handler implements library-entry HTTP endpoints. Every route operates on
// the authenticated caller's own library; ownership is implicit in the token.
type Handler struct {
	entryService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{entryService: service}
}

// Routes returns a [chi.Router] configured with library-specific routes.
//
// # Endpoints
//   - GET    /                          : Paginated library.
//   - GET    /status/{status}           : Library narrowed to one status.
//   - GET    /tag?tag=&status=          : Library narrowed by tag.
//   - GET    /stats                     : Entry counts per status (zero-filled).
//   - GET    /recent                    : Recently read READING entries.
//   - POST   /books/{bookID}            : Add a book to the library.
//   - GET    /books/{bookID}            : The caller's entry for a book.
//   - GET    /books/{bookID}/exists     : Membership probe.
//   - DELETE /books/{bookID}            : Remove from the library.
//   - PUT    /books/{bookID}/status     : Status transition.
//   - PUT    /books/{bookID}/progress   : Progress update (auto-completes at 100).
//   - PUT    /books/{bookID}/rating     : Rating and optional review.
//   - PUT    /books/{bookID}/tags       : Full tag replacement.
//   - PUT    /books/{bookID}/favorite   : Favorite toggle.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.list)
	router.Get("/status/{status}", handler.listByStatus)
	router.Get("/tag", handler.listByTag)
	router.Get("/stats", handler.stats)
	router.Get("/recent", handler.recentlyRead)

	router.Route("/books/{bookID}", func(r chi.Router) {
		r.Post("/", handler.add)
		r.Get("/", handler.get)
		r.Get("/exists", handler.exists)
		r.Delete("/", handler.remove)
		r.Put("/status", handler.setStatus)
		r.Put("/progress", handler.setProgress)
		r.Put("/rating", handler.setRating)
		r.Put("/tags", handler.setTags)
		r.Put("/favorite", handler.toggleFavorite)
	})

	return router
}

// # Request Payloads

type addEntryRequest struct {
	Status string `json:"status"`
}

type setStatusRequest struct {
	Status   string `json:"status"`
	Progress *int   `json:"progress"`
}

type setProgressRequest struct {
	Progress int `json:"progress"`
}

type setRatingRequest struct {
	Rating int     `json:"rating"`
	Review *string `json:"review"`
}

type setTagsRequest struct {
	Tags []string `json:"tags"`
}

// bookIDParam extracts and validates the {bookID} URL parameter.
func bookIDParam(request *http.Request) (string, error) {
	bookID := requestutil.ID(request, "bookID")
	validator := &validate.Validator{}
	validator.Required(FieldBookID, bookID).UUID(FieldBookID, bookID)
	if err := validator.Err(); err != nil {
		return "", err
	}
	return bookID, nil
}

/*
Add puts a book into the caller's library.

POST /api/v1/library/books/{bookID}

Request:
  - Body: addEntryRequest (Status — optional, defaults to TO_READ)

Response:
  - 201: LibraryEntry: Created entry
  - 409: ErrConflict: The book is already in the library
*/
func (handler *Handler) add(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	bookID, err := bookIDParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// An empty body means "shelve it for later"
	input := addEntryRequest{Status: string(StatusToRead)}
	if request.ContentLength > 0 {
		if err := requestutil.DecodeJSON(request, &input); err != nil {
			respond.Error(writer, request, validate.ErrInvalidJSON)
			return
		}
		if input.Status == "" {
			input.Status = string(StatusToRead)
		}
	}

	initialStatus := Status(input.Status)
	if !initialStatus.Valid() {
		respond.Error(writer, request, validate.RequiredError(FieldStatus, "must be one of TO_READ, READING, FINISHED, ABANDONED"))
		return
	}

	libraryEntry, err := handler.entryService.Add(request.Context(), userID, bookID, initialStatus)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, libraryEntry)
}

/*
Get returns the caller's entry for a book.

GET /api/v1/library/books/{bookID}

Response:
  - 200: LibraryEntry: The entry
  - 404: ErrNotFound: Book not in the library
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	bookID, err := bookIDParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	libraryEntry, err := handler.entryService.Get(request.Context(), userID, bookID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, libraryEntry)
}

/*
Exists probes library membership without a 404 round trip.

GET /api/v1/library/books/{bookID}/exists

Response:
  - 200: {exists: bool}
*/
func (handler *Handler) exists(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	bookID, err := bookIDParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	exists, err := handler.entryService.Exists(request.Context(), userID, bookID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]bool{"exists": exists})
}

/*
Remove deletes the caller's entry for a book.

DELETE /api/v1/library/books/{bookID}

Response:
  - 204: No Content: Entry removed
  - 404: ErrNotFound: Book not in the library
*/
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	bookID, err := bookIDParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.entryService.Remove(request.Context(), userID, bookID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
SetStatus transitions the entry to a new status.

PUT /api/v1/library/books/{bookID}/status

Request:
  - Body: setStatusRequest (Status, Progress?)

Response:
  - 200: LibraryEntry: Updated entry
  - 400: ErrValidation: Unknown status or out-of-range progress
  - 404: ErrNotFound: Book not in the library
*/
func (handler *Handler) setStatus(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	bookID, err := bookIDParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input setStatusRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	newStatus := Status(input.Status)
	if !newStatus.Valid() {
		respond.Error(writer, request, validate.RequiredError(FieldStatus, "must be one of TO_READ, READING, FINISHED, ABANDONED"))
		return
	}

	if input.Progress != nil {
		validator := &validate.Validator{}
		validator.Range(FieldProgress, *input.Progress, MinProgress, MaxProgress)
		if err := validator.Err(); err != nil {
			respond.Error(writer, request, err)
			return
		}
	}

	libraryEntry, err := handler.entryService.SetStatus(request.Context(), userID, bookID, newStatus, input.Progress)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, libraryEntry)
}

/*
SetProgress updates the reading progress.

PUT /api/v1/library/books/{bookID}/progress

Request:
  - Body: setProgressRequest (Progress 0–100)

Response:
  - 200: LibraryEntry: Updated entry (FINISHED if progress hit 100)
  - 400: ErrValidation: Out-of-range progress
*/
func (handler *Handler) setProgress(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	bookID, err := bookIDParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input setProgressRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Range(FieldProgress, input.Progress, MinProgress, MaxProgress)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	libraryEntry, err := handler.entryService.SetProgress(request.Context(), userID, bookID, input.Progress)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, libraryEntry)
}

/*
SetRating records the caller's rating and optional review.

PUT /api/v1/library/books/{bookID}/rating

Request:
  - Body: setRatingRequest (Rating 1–5, Review?)

Response:
  - 200: LibraryEntry: Updated entry
  - 400: ErrValidation: Out-of-range rating
*/
func (handler *Handler) setRating(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	bookID, err := bookIDParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input setRatingRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Range(FieldRating, input.Rating, MinRating, MaxRating)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	libraryEntry, err := handler.entryService.SetRating(request.Context(), userID, bookID, input.Rating, input.Review)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, libraryEntry)
}

/*
SetTags replaces the entry's tag set entirely.

PUT /api/v1/library/books/{bookID}/tags

Request:
  - Body: setTagsRequest (Tags)

Response:
  - 200: LibraryEntry: Updated entry
*/
func (handler *Handler) setTags(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	bookID, err := bookIDParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input setTagsRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	libraryEntry, err := handler.entryService.SetTags(request.Context(), userID, bookID, input.Tags)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, libraryEntry)
}

/*
ToggleFavorite flips the entry's favorite flag.

PUT /api/v1/library/books/{bookID}/favorite

Response:
  - 200: LibraryEntry: Updated entry
*/
func (handler *Handler) toggleFavorite(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	bookID, err := bookIDParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	libraryEntry, err := handler.entryService.ToggleFavorite(request.Context(), userID, bookID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, libraryEntry)
}

/*
List returns a page of the caller's library.

GET /api/v1/library?page=&limit=

Response:
  - 200: Paginated[LibraryEntry]
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)
	entries, total, err := handler.entryService.List(request.Context(), userID, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, entries, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
ListByStatus returns a page of the caller's library in one status.

GET /api/v1/library/status/{status}?page=&limit=

Response:
  - 200: Paginated[LibraryEntry]
  - 400: ErrValidation: Unknown status
*/
func (handler *Handler) listByStatus(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	status := Status(requestutil.Param(request, "status"))
	if !status.Valid() {
		respond.Error(writer, request, validate.RequiredError(FieldStatus, "must be one of TO_READ, READING, FINISHED, ABANDONED"))
		return
	}

	params := pagination.FromRequest(request)
	entries, total, err := handler.entryService.ListByStatus(request.Context(), userID, status, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, entries, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
ListByTag returns entries carrying a tag, optionally narrowed by status.

GET /api/v1/library/tag?tag=&status=&page=&limit=

Response:
  - 200: Paginated[LibraryEntry]
  - 400: ErrValidation: Missing tag or unknown status
*/
func (handler *Handler) listByTag(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	tag := request.URL.Query().Get(FieldTag)
	if tag == "" {
		respond.Error(writer, request, validate.RequiredError(FieldTag, "is required"))
		return
	}

	var status *Status
	if raw := request.URL.Query().Get(FieldStatus); raw != "" {
		candidate := Status(raw)
		if !candidate.Valid() {
			respond.Error(writer, request, validate.RequiredError(FieldStatus, "must be one of TO_READ, READING, FINISHED, ABANDONED"))
			return
		}
		status = &candidate
	}

	params := pagination.FromRequest(request)
	entries, total, err := handler.entryService.ListByTag(request.Context(), userID, tag, status, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, entries, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
Stats returns the caller's entry counts per status, zero-filled.

GET /api/v1/library/stats

Response:
  - 200: Stats: All four statuses mapped to counts
*/
func (handler *Handler) stats(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	stats, err := handler.entryService.Stats(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, stats)
}

/*
RecentlyRead returns the caller's most recently read in-progress entries.

GET /api/v1/library/recent

Response:
  - 200: []LibraryEntry: Up to five READING entries, most recent first
*/
func (handler *Handler) recentlyRead(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	entries, err := handler.entryService.RecentlyRead(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entries)
}
