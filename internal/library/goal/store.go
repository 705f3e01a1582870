// Copyright (c) 2026 BookLog. All rights reserved.

package goal

import (
	"context"
	"time"
)

// Repository defines the persistence contract for reading goals.
// Ownership checks live in the service; the store addresses goals by ID.
type Repository interface {
	/*
		Create persists a new reading goal.

		Parameters:
		  - context: context.Context
		  - goal: *ReadingGoal

		Returns:
		  - error: Execution errors
	*/
	Create(context context.Context, goal *ReadingGoal) error

	/*
		FindByID retrieves a goal by its identifier.

		Parameters:
		  - context: context.Context
		  - goalID: string

		Returns:
		  - *ReadingGoal: Hydrated entity
		  - error: apperr.NotFound or execution errors
	*/
	FindByID(context context.Context, goalID string) (*ReadingGoal, error)

	/*
		List retrieves a page of the user's goals, newest first.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - limit: int
		  - offset: int

		Returns:
		  - []*ReadingGoal: Page of goals
		  - int: Total matching count
		  - error: Execution errors
	*/
	List(context context.Context, userID string, limit, offset int) ([]*ReadingGoal, int, error)

	/*
		ListActive retrieves the user's goals running at the given instant:
		startdate <= now, enddate NULL or >= now, not completed.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - now: time.Time

		Returns:
		  - []*ReadingGoal: Active goals
		  - error: Execution errors
	*/
	ListActive(context context.Context, userID string, now time.Time) ([]*ReadingGoal, error)

	/*
		Update persists the mutable fields of an existing goal.

		Parameters:
		  - context: context.Context
		  - goal: *ReadingGoal

		Returns:
		  - error: apperr.NotFound or execution errors
	*/
	Update(context context.Context, goal *ReadingGoal) error

	/*
		Delete removes a goal permanently.

		Parameters:
		  - context: context.Context
		  - goalID: string

		Returns:
		  - error: apperr.NotFound or execution errors
	*/
	Delete(context context.Context, goalID string) error
}
