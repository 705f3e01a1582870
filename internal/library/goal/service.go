// Copyright (c) 2026 BookLog. All rights reserved.

package goal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/booklogapp/booklog-server/internal/platform/apperr"
	"github.com/booklogapp/booklog-server/pkg/uuid"
)

// # Service Layer

// Service orchestrates reading-goal lifecycle and progress accounting.
type Service struct {
	goalRepository Repository
	logger         *slog.Logger
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(goalRepo Repository, logger *slog.Logger) *Service {
	return &Service{
		goalRepository: goalRepo,
		logger:         logger,
	}
}

// CreateInput carries the fields for a new reading goal.
type CreateInput struct {
	GoalType        GoalType
	Target          int
	Period          Period
	StartDate       time.Time
	EndDate         *time.Time
	Name            string
	Description     string
	ReminderEnabled bool
	ReminderTime    *string
}

// UpdateInput carries a partial goal update. Nil fields are untouched.
type UpdateInput struct {
	Target          *int
	EndDate         *time.Time
	Name            *string
	Description     *string
	ReminderEnabled *bool
	ReminderTime    *string
}

/*
Create registers a new reading goal for the user.

Description: Goals start with zero progress and not completed. A zero
start date defaults to now; an end date before the start date is a
validation error.

Parameters:
  - context: context.Context
  - userID: string
  - input: CreateInput

Returns:
  - *ReadingGoal: Created goal
  - error: Validation or storage failures
*/
func (service *Service) Create(context context.Context, userID string, input CreateInput) (*ReadingGoal, error) {
	startDate := input.StartDate
	if startDate.IsZero() {
		startDate = time.Now()
	}
	if input.EndDate != nil && input.EndDate.Before(startDate) {
		return nil, apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   FieldEndDate,
			Message: "must not be before start_date",
		})
	}

	readingGoal := &ReadingGoal{
		ID:              uuid.New(),
		UserID:          userID,
		GoalType:        input.GoalType,
		Target:          input.Target,
		Period:          input.Period,
		StartDate:       startDate,
		EndDate:         input.EndDate,
		Progress:        0,
		Name:            input.Name,
		Description:     input.Description,
		ReminderEnabled: input.ReminderEnabled,
		ReminderTime:    input.ReminderTime,
	}

	if err := service.goalRepository.Create(context, readingGoal); err != nil {
		return nil, fmt.Errorf("goal_service_create_failed: %w", err)
	}

	service.logger.Info("reading_goal_created",
		slog.String("user_id", userID),
		slog.String("goal_id", readingGoal.ID),
		slog.String("type", string(readingGoal.GoalType)),
		slog.String("period", string(readingGoal.Period)),
	)

	return readingGoal, nil
}

/*
Get returns one of the user's goals.

Description: A goal owned by another user reads as NotFound so goal IDs
cannot be probed across accounts.

Parameters:
  - context: context.Context
  - userID: string
  - goalID: string

Returns:
  - *ReadingGoal: Hydrated goal
  - error: NotFound or retrieval failures
*/
func (service *Service) Get(context context.Context, userID, goalID string) (*ReadingGoal, error) {
	readingGoal, err := service.goalRepository.FindByID(context, goalID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.NotFound("Reading goal")
		}
		return nil, fmt.Errorf("goal_service_get_failed: %w", err)
	}
	if readingGoal.UserID != userID {
		return nil, apperr.NotFound("Reading goal")
	}
	return readingGoal, nil
}

/*
List returns a page of the user's goals, newest first.

Parameters:
  - context: context.Context
  - userID: string
  - limit: int
  - offset: int

Returns:
  - []*ReadingGoal: Page of goals
  - int: Total count
  - error: Retrieval failures
*/
func (service *Service) List(context context.Context, userID string, limit, offset int) ([]*ReadingGoal, int, error) {
	goals, total, err := service.goalRepository.List(context, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("goal_service_list_failed: %w", err)
	}
	return goals, total, nil
}

/*
Active returns the user's currently running goals.

Description: A goal is active when its start date has passed, its end
date has not (or is open-ended) and it is not completed.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - []*ReadingGoal: Active goals
  - error: Retrieval failures
*/
func (service *Service) Active(context context.Context, userID string) ([]*ReadingGoal, error) {
	goals, err := service.goalRepository.ListActive(context, userID, time.Now())
	if err != nil {
		return nil, fmt.Errorf("goal_service_active_failed: %w", err)
	}
	return goals, nil
}

/*
UpdateProgress sets the goal's absolute progress.

Description: When progress reaches the target the goal is marked
completed. Completion is one-way here; lowering progress afterwards
does not reopen the goal.

Parameters:
  - context: context.Context
  - userID: string
  - goalID: string
  - progress: int

Returns:
  - *ReadingGoal: Updated goal
  - error: NotFound or storage failures
*/
func (service *Service) UpdateProgress(context context.Context, userID, goalID string, progress int) (*ReadingGoal, error) {
	readingGoal, err := service.Get(context, userID, goalID)
	if err != nil {
		return nil, err
	}

	readingGoal.Progress = progress
	if progress >= readingGoal.Target {
		readingGoal.Completed = true
	}

	if err := service.goalRepository.Update(context, readingGoal); err != nil {
		return nil, fmt.Errorf("goal_service_update_progress_failed: %w", err)
	}

	if readingGoal.Completed {
		service.logger.Info("reading_goal_completed",
			slog.String("user_id", userID),
			slog.String("goal_id", goalID),
		)
	}

	return readingGoal, nil
}

/*
Update applies a partial update to the goal's descriptive fields.

Description: Nil input fields are untouched. Type, period and start
date are fixed at creation; progress moves through UpdateProgress.

Parameters:
  - context: context.Context
  - userID: string
  - goalID: string
  - input: UpdateInput

Returns:
  - *ReadingGoal: Updated goal
  - error: NotFound, validation or storage failures
*/
func (service *Service) Update(context context.Context, userID, goalID string, input UpdateInput) (*ReadingGoal, error) {
	readingGoal, err := service.Get(context, userID, goalID)
	if err != nil {
		return nil, err
	}

	if input.Target != nil {
		readingGoal.Target = *input.Target
	}
	if input.EndDate != nil {
		if input.EndDate.Before(readingGoal.StartDate) {
			return nil, apperr.ValidationError("Validation failed", apperr.FieldError{
				Field:   FieldEndDate,
				Message: "must not be before start_date",
			})
		}
		readingGoal.EndDate = input.EndDate
	}
	if input.Name != nil {
		readingGoal.Name = *input.Name
	}
	if input.Description != nil {
		readingGoal.Description = *input.Description
	}
	if input.ReminderEnabled != nil {
		readingGoal.ReminderEnabled = *input.ReminderEnabled
	}
	if input.ReminderTime != nil {
		readingGoal.ReminderTime = input.ReminderTime
	}

	// A raised target can reopen the goal, a lowered one can complete it
	if input.Target != nil {
		readingGoal.Completed = readingGoal.Progress >= readingGoal.Target
	}

	if err := service.goalRepository.Update(context, readingGoal); err != nil {
		return nil, fmt.Errorf("goal_service_update_failed: %w", err)
	}

	return readingGoal, nil
}

/*
Delete removes the user's goal permanently.

Parameters:
  - context: context.Context
  - userID: string
  - goalID: string

Returns:
  - error: NotFound or storage failures
*/
func (service *Service) Delete(context context.Context, userID, goalID string) error {
	if _, err := service.Get(context, userID, goalID); err != nil {
		return err
	}

	if err := service.goalRepository.Delete(context, goalID); err != nil {
		return fmt.Errorf("goal_service_delete_failed: %w", err)
	}

	service.logger.Info("reading_goal_deleted",
		slog.String("user_id", userID),
		slog.String("goal_id", goalID),
	)

	return nil
}
