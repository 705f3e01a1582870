// Copyright (c) 2026 BookLog. All rights reserved.

// HTTP delivery layer for reading goals.
package goal

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

// Handler implements reading-goal HTTP endpoints.
type Handler struct {
	goalService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{goalService: service}
}

// Routes returns a [chi.Router] configured with goal-specific routes.
//
// # Endpoints
//   - GET    /                   : Paginated goals.
//   - POST   /                   : Create a goal.
//   - GET    /active             : Goals running right now.
//   - GET    /{goalID}           : One goal.
//   - PUT    /{goalID}           : Partial update.
//   - PUT    /{goalID}/progress  : Progress update (auto-completes at target).
//   - DELETE /{goalID}           : Remove a goal.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.list)
	router.Post("/", handler.create)
	router.Get("/active", handler.active)

	router.Route("/{goalID}", func(r chi.Router) {
		r.Get("/", handler.get)
		r.Put("/", handler.update)
		r.Put("/progress", handler.updateProgress)
		r.Delete("/", handler.remove)
	})

	return router
}

// # Request Payloads

type createGoalRequest struct {
	Type            string  `json:"type"`
	Target          int     `json:"target"`
	Period          string  `json:"period"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	ReminderEnabled bool    `json:"reminder_enabled"`
	ReminderTime    *string `json:"reminder_time"`
}

type updateGoalRequest struct {
	Target          *int    `json:"target"`
	EndDate         *string `json:"end_date"`
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	ReminderEnabled *bool   `json:"reminder_enabled"`
	ReminderTime    *string `json:"reminder_time"`
}

type updateProgressRequest struct {
	Progress int `json:"progress"`
}

// goalIDParam extracts and validates the {goalID} URL parameter.
func goalIDParam(request *http.Request) (string, error) {
	goalID := requestutil.ID(request, "goalID")
	validator := &validate.Validator{}
	validator.Required(FieldGoalID, goalID).UUID(FieldGoalID, goalID)
	if err := validator.Err(); err != nil {
		return "", err
	}
	return goalID, nil
}

// parseDate parses an optional YYYY-MM-DD value; empty yields nil.
func parseDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, validate.RequiredError(field, "must be a date in YYYY-MM-DD format")
	}
	return &parsed, nil
}

/*
Create registers a new reading goal.

POST /api/v1/goals

Request:
  - Body: createGoalRequest

Response:
  - 201: ReadingGoal: Created goal
  - 400: ErrValidation: Unknown type/period, non-positive target or bad dates
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createGoalRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldType, input.Type).
		OneOf(FieldType, input.Type, string(TypeBooks), string(TypePages), string(TypeTime)).
		Required(FieldPeriod, input.Period).
		OneOf(FieldPeriod, input.Period,
			string(PeriodDaily), string(PeriodWeekly), string(PeriodMonthly),
			string(PeriodYearly), string(PeriodCustom)).
		Custom(FieldTarget, input.Target <= 0, "must be a positive number")
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	startDate, err := parseDate(FieldStartDate, input.StartDate)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	endDate, err := parseDate(FieldEndDate, input.EndDate)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	createInput := CreateInput{
		GoalType:        GoalType(input.Type),
		Target:          input.Target,
		Period:          Period(input.Period),
		EndDate:         endDate,
		Name:            input.Name,
		Description:     input.Description,
		ReminderEnabled: input.ReminderEnabled,
		ReminderTime:    input.ReminderTime,
	}
	if startDate != nil {
		createInput.StartDate = *startDate
	}

	readingGoal, err := handler.goalService.Create(request.Context(), userID, createInput)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, readingGoal)
}

/*
Get returns one of the caller's goals.

GET /api/v1/goals/{goalID}

Response:
  - 200: ReadingGoal: The goal
  - 404: ErrNotFound: Unknown or foreign goal
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	goalID, err := goalIDParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	readingGoal, err := handler.goalService.Get(request.Context(), userID, goalID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, readingGoal)
}

/*
List returns a page of the caller's goals, newest first.

GET /api/v1/goals?page=&limit=

Response:
  - 200: Paginated[ReadingGoal]
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)
	goals, total, err := handler.goalService.List(request.Context(), userID, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, goals, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
Active returns the caller's currently running goals.

GET /api/v1/goals/active

Response:
  - 200: []ReadingGoal: Active goals
*/
func (handler *Handler) active(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	goals, err := handler.goalService.Active(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, goals)
}

/*
Update applies a partial update to a goal.

PUT /api/v1/goals/{goalID}

Request:
  - Body: updateGoalRequest (all fields optional)

Response:
  - 200: ReadingGoal: Updated goal
  - 404: ErrNotFound: Unknown or foreign goal
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	goalID, err := goalIDParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateGoalRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if input.Target != nil {
		validator := &validate.Validator{}
		validator.Custom(FieldTarget, *input.Target <= 0, "must be a positive number")
		if err := validator.Err(); err != nil {
			respond.Error(writer, request, err)
			return
		}
	}

	updateInput := UpdateInput{
		Target:          input.Target,
		Name:            input.Name,
		Description:     input.Description,
		ReminderEnabled: input.ReminderEnabled,
		ReminderTime:    input.ReminderTime,
	}
	if input.EndDate != nil {
		endDate, err := parseDate(FieldEndDate, *input.EndDate)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		updateInput.EndDate = endDate
	}

	readingGoal, err := handler.goalService.Update(request.Context(), userID, goalID, updateInput)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, readingGoal)
}

/*
UpdateProgress sets the goal's absolute progress.

PUT /api/v1/goals/{goalID}/progress

Request:
  - Body: updateProgressRequest (Progress >= 0)

Response:
  - 200: ReadingGoal: Updated goal, completed when the target is reached
  - 404: ErrNotFound: Unknown or foreign goal
*/
func (handler *Handler) updateProgress(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	goalID, err := goalIDParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateProgressRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Custom(FieldProgress, input.Progress < 0, "must not be negative")
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	readingGoal, err := handler.goalService.UpdateProgress(request.Context(), userID, goalID, input.Progress)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, readingGoal)
}

/*
Remove deletes the caller's goal.

DELETE /api/v1/goals/{goalID}

Response:
  - 204: No Content: Goal removed
  - 404: ErrNotFound: Unknown or foreign goal
*/
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	goalID, err := goalIDParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.goalService.Delete(request.Context(), userID, goalID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
