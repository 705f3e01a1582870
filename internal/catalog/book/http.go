// Copyright (c) 2026 BookLog. All rights reserved.

// HTTP delivery layer for the shared book catalog.
package book

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/booklogapp/booklog-server/internal/platform/middleware"
	requestutil "github.com/booklogapp/booklog-server/internal/platform/request"
	"github.com/booklogapp/booklog-server/internal/platform/respond"
	"github.com/booklogapp/booklog-server/internal/platform/validate"
	"github.com/booklogapp/booklog-server/pkg/pagination"
	"github.com/booklogapp/booklog-server/pkg/query"
)

// # Definitions & Constructors

// Handler implements catalog-related HTTP endpoints.
type Handler struct {
	bookService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{bookService: service}
}

// Routes returns a [chi.Router] configured with catalog-specific routes.
//
// # Endpoints
//
// Reads are public; writes require authentication.
//   - GET    /             : Paginated catalog, optionally filtered.
//   - GET    /search       : Free-text search.
//   - GET    /popular      : Top-rated leaderboard (cached).
//   - GET    /isbn/{isbn}  : Lookup by either ISBN form.
//   - GET    /{bookID}     : Single record.
//   - POST   /             : Create a record.
//   - PUT    /{bookID}     : Patch a record.
//   - DELETE /{bookID}     : Remove a record.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Get("/search", handler.search)
	router.Get("/popular", handler.popular)
	router.Get("/isbn/{isbn}", handler.getByISBN)
	router.Get("/{bookID}", handler.getByID)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/", handler.create)
		r.Put("/{bookID}", handler.update)
		r.Delete("/{bookID}", handler.remove)
	})

	return router
}

// # Request Payloads

type createBookRequest struct {
	Title         string   `json:"title"`
	Subtitle      string   `json:"subtitle"`
	Authors       []string `json:"authors"`
	Publisher     string   `json:"publisher"`
	PublishedDate string   `json:"published_date"`
	Description   string   `json:"description"`
	PageCount     int      `json:"page_count"`
	Categories    []string `json:"categories"`
	ThumbnailURL  string   `json:"thumbnail_url"`
	Language      string   `json:"language"`
	ISBN10        *string  `json:"isbn10"`
	ISBN13        *string  `json:"isbn13"`
	AverageRating float64  `json:"average_rating"`
	RatingsCount  int      `json:"ratings_count"`
	PreviewLink   string   `json:"preview_link"`
	InfoLink      string   `json:"info_link"`
}

type updateBookRequest struct {
	Title         *string  `json:"title"`
	Subtitle      *string  `json:"subtitle"`
	Authors       []string `json:"authors"`
	Publisher     *string  `json:"publisher"`
	PublishedDate *string  `json:"published_date"`
	Description   *string  `json:"description"`
	PageCount     *int     `json:"page_count"`
	Categories    []string `json:"categories"`
	ThumbnailURL  *string  `json:"thumbnail_url"`
	Language      *string  `json:"language"`
	AverageRating *float64 `json:"average_rating"`
	RatingsCount  *int     `json:"ratings_count"`
	PreviewLink   *string  `json:"preview_link"`
	InfoLink      *string  `json:"info_link"`
}

/*
List returns a catalog page, optionally narrowed by structured filters.

GET /api/v1/books?title=&author=&publisher=&category=&language=&page=&limit=

Response:
  - 200: Paginated[Book]: Matching page with pagination meta
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	filter := Filter{}
	if v := query.OptionalString(request, "title"); v != nil {
		filter.Title = *v
	}
	if v := query.OptionalString(request, "author"); v != nil {
		filter.Author = *v
	}
	if v := query.OptionalString(request, "publisher"); v != nil {
		filter.Publisher = *v
	}
	if v := query.OptionalString(request, "category"); v != nil {
		filter.Category = *v
	}
	if v := query.OptionalString(request, "language"); v != nil {
		filter.Language = *v
	}

	var (
		books []*Book
		total int
		err   error
	)
	if filter.IsZero() {
		books, total, err = handler.bookService.List(request.Context(), params.Limit, params.Offset())
	} else {
		books, total, err = handler.bookService.FindByFilters(request.Context(), filter, params.Limit, params.Offset())
	}
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, books, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
Search performs a free-text catalog search.

GET /api/v1/books/search?q=&page=&limit=

Response:
  - 200: Paginated[Book]: Matching page
  - 400: ErrValidation: Missing query
*/
func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {
	searchQuery := request.URL.Query().Get(FieldQuery)
	if searchQuery == "" {
		respond.Error(writer, request, validate.RequiredError(FieldQuery, "is required"))
		return
	}

	params := pagination.FromRequest(request)
	books, total, err := handler.bookService.Search(request.Context(), searchQuery, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, books, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
Popular returns the top-rated leaderboard.

GET /api/v1/books/popular

Response:
  - 200: []Book: At most PopularBooksLimit records
*/
func (handler *Handler) popular(writer http.ResponseWriter, request *http.Request) {
	books, err := handler.bookService.Popular(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, books)
}

/*
GetByISBN resolves a record by either ISBN form.

GET /api/v1/books/isbn/{isbn}

Response:
  - 200: Book: Matching record
  - 404: ErrNotFound: Neither ISBN column matches
*/
func (handler *Handler) getByISBN(writer http.ResponseWriter, request *http.Request) {
	isbn := requestutil.Param(request, "isbn")

	validator := &validate.Validator{}
	if len(isbn) == 10 {
		validator.ISBN10(FieldISBN10, isbn)
	} else {
		validator.ISBN13(FieldISBN13, isbn)
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	book, err := handler.bookService.GetByISBN(request.Context(), isbn)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, book)
}

/*
GetByID returns a single catalog record.

GET /api/v1/books/{bookID}

Response:
  - 200: Book: Matching record
  - 404: ErrNotFound: Unknown id
*/
func (handler *Handler) getByID(writer http.ResponseWriter, request *http.Request) {
	bookID := requestutil.ID(request, "bookID")

	validator := &validate.Validator{}
	validator.Required(FieldBookID, bookID).UUID(FieldBookID, bookID)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	book, err := handler.bookService.GetByID(request.Context(), bookID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, book)
}

/*
Create adds a new record to the catalog.

POST /api/v1/books

Request:
  - Body: createBookRequest

Response:
  - 201: Book: Created record
  - 400: ErrInvalidJSON: Bad input or validation failure
  - 409: ErrConflict: Duplicate ISBN
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createBookRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).MaxLen(FieldTitle, input.Title, 500)
	if input.ISBN10 != nil {
		validator.ISBN10(FieldISBN10, *input.ISBN10)
	}
	if input.ISBN13 != nil {
		validator.ISBN13(FieldISBN13, *input.ISBN13)
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	publishedDate, err := parseDate(input.PublishedDate)
	if err != nil {
		respond.Error(writer, request, validate.RequiredError("published_date", "must be YYYY-MM-DD"))
		return
	}

	book, err := handler.bookService.Create(request.Context(), CreateInput{
		Title:         input.Title,
		Subtitle:      input.Subtitle,
		Authors:       input.Authors,
		Publisher:     input.Publisher,
		PublishedDate: publishedDate,
		Description:   input.Description,
		PageCount:     input.PageCount,
		Categories:    input.Categories,
		ThumbnailURL:  input.ThumbnailURL,
		Language:      input.Language,
		ISBN10:        input.ISBN10,
		ISBN13:        input.ISBN13,
		AverageRating: input.AverageRating,
		RatingsCount:  input.RatingsCount,
		PreviewLink:   input.PreviewLink,
		InfoLink:      input.InfoLink,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, book)
}

/*
Update applies a partial update to a catalog record.

PUT /api/v1/books/{bookID}

Description: Absent (null) scalars and lists are left untouched.

Request:
  - Body: updateBookRequest

Response:
  - 200: Book: Updated record
  - 404: ErrNotFound: Unknown id
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	bookID := requestutil.ID(request, "bookID")

	validator := &validate.Validator{}
	validator.Required(FieldBookID, bookID).UUID(FieldBookID, bookID)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateBookRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if input.Title != nil {
		titleValidator := &validate.Validator{}
		titleValidator.Required(FieldTitle, *input.Title).MaxLen(FieldTitle, *input.Title, 500)
		if err := titleValidator.Err(); err != nil {
			respond.Error(writer, request, err)
			return
		}
	}

	var publishedDate *time.Time
	if input.PublishedDate != nil {
		parsed, err := parseDate(*input.PublishedDate)
		if err != nil {
			respond.Error(writer, request, validate.RequiredError("published_date", "must be YYYY-MM-DD"))
			return
		}
		publishedDate = parsed
	}

	book, err := handler.bookService.Update(request.Context(), bookID, UpdateInput{
		Title:         input.Title,
		Subtitle:      input.Subtitle,
		Authors:       input.Authors,
		Publisher:     input.Publisher,
		PublishedDate: publishedDate,
		Description:   input.Description,
		PageCount:     input.PageCount,
		Categories:    input.Categories,
		ThumbnailURL:  input.ThumbnailURL,
		Language:      input.Language,
		AverageRating: input.AverageRating,
		RatingsCount:  input.RatingsCount,
		PreviewLink:   input.PreviewLink,
		InfoLink:      input.InfoLink,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, book)
}

/*
Remove deletes a catalog record.

DELETE /api/v1/books/{bookID}

Response:
  - 204: No Content: Record deleted
  - 404: ErrNotFound: Unknown id
*/
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	bookID := requestutil.ID(request, "bookID")

	validator := &validate.Validator{}
	validator.Required(FieldBookID, bookID).UUID(FieldBookID, bookID)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.bookService.Delete(request.Context(), bookID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// parseDate accepts an empty string (no date) or a YYYY-MM-DD value.
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
