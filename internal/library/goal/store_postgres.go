// Copyright (c) 2026 BookLog. All rights reserved.

// PostgreSQL implementation of the reading-goal storage contract.
package goal

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
Create persists a new reading goal.

Parameters:
  - context: context.Context
  - goal: *ReadingGoal

Returns:
  - error: Execution errors
*/
func (repository *PostgresRepository) Create(context context.Context, goal *ReadingGoal) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		schema.ReadingGoal.Table, goalColumns(),
	)

	now := time.Now()
	if goal.CreatedAt.IsZero() {
		goal.CreatedAt = now
	}
	goal.UpdatedAt = now

	_, err := repository.pool.Exec(context, query,
		goal.ID, goal.UserID, goal.GoalType, goal.Target, goal.Period,
		goal.StartDate, goal.EndDate, goal.Progress, goal.Completed,
		goal.Name, goal.Description, goal.ReminderEnabled, goal.ReminderTime,
		goal.CreatedAt, goal.UpdatedAt,
	)

	if err != nil {
		return dberr.Wrap(err, "reading goal")
	}

	return nil
}

/*
FindByID retrieves a goal by its identifier.

Parameters:
  - context: context.Context
  - goalID: string

Returns:
  - *ReadingGoal: Hydrated entity
  - error: apperr.NotFound or execution errors
*/
func (repository *PostgresRepository) FindByID(context context.Context, goalID string) (*ReadingGoal, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1`,
		goalColumns(), schema.ReadingGoal.Table, schema.ReadingGoal.ID,
	)

	goal := &ReadingGoal{}
	err := repository.pool.QueryRow(context, query, goalID).Scan(goalFields(goal)...)
	if err != nil {
		return nil, dberr.Wrap(err, "reading goal")
	}

	return goal, nil
}

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
func (repository *PostgresRepository) List(context context.Context, userID string, limit, offset int) ([]*ReadingGoal, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total_count
		FROM %s
		WHERE %s = $1
		ORDER BY %s DESC, %s DESC
		LIMIT $2 OFFSET $3`,
		goalColumns(), schema.ReadingGoal.Table, schema.ReadingGoal.UserID,
		schema.ReadingGoal.CreatedAt, schema.ReadingGoal.ID,
	)

	rows, err := repository.pool.Query(context, query, userID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "reading goal")
	}
	defer rows.Close()

	goals := []*ReadingGoal{}
	totalCount := 0
	for rows.Next() {
		goal := &ReadingGoal{}
		fields := append(goalFields(goal), &totalCount)
		if err := rows.Scan(fields...); err != nil {
			return nil, 0, dberr.Wrap(err, "reading goal")
		}
		goals = append(goals, goal)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "reading goal")
	}

	return goals, totalCount, nil
}

/*
ListActive retrieves the user's goals running at the given instant.

Parameters:
  - context: context.Context
  - userID: string
  - now: time.Time

Returns:
  - []*ReadingGoal: Active goals, oldest start first
  - error: Execution errors
*/
func (repository *PostgresRepository) ListActive(context context.Context, userID string, now time.Time) ([]*ReadingGoal, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
		  AND %s <= $2::date
		  AND (%s IS NULL OR %s >= $2::date)
		  AND %s = FALSE
		ORDER BY %s ASC`,
		goalColumns(), schema.ReadingGoal.Table, schema.ReadingGoal.UserID,
		schema.ReadingGoal.StartDate, schema.ReadingGoal.EndDate,
		schema.ReadingGoal.EndDate, schema.ReadingGoal.Completed,
		schema.ReadingGoal.StartDate,
	)

	rows, err := repository.pool.Query(context, query, userID, now)
	if err != nil {
		return nil, dberr.Wrap(err, "reading goal")
	}
	defer rows.Close()

	goals := []*ReadingGoal{}
	for rows.Next() {
		goal := &ReadingGoal{}
		if err := rows.Scan(goalFields(goal)...); err != nil {
			return nil, dberr.Wrap(err, "reading goal")
		}
		goals = append(goals, goal)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "reading goal")
	}

	return goals, nil
}

/*
Update persists the mutable fields of an existing goal.

Parameters:
  - context: context.Context
  - goal: *ReadingGoal

Returns:
  - error: Execution errors
*/
func (repository *PostgresRepository) Update(context context.Context, goal *ReadingGoal) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9, %s = $10
		WHERE %s = $1`,
		schema.ReadingGoal.Table,
		schema.ReadingGoal.Target, schema.ReadingGoal.EndDate,
		schema.ReadingGoal.Progress, schema.ReadingGoal.Completed,
		schema.ReadingGoal.Name, schema.ReadingGoal.Description,
		schema.ReadingGoal.ReminderEnabled, schema.ReadingGoal.ReminderTime,
		schema.ReadingGoal.UpdatedAt, schema.ReadingGoal.ID,
	)

	goal.UpdatedAt = time.Now()

	_, err := repository.pool.Exec(context, query,
		goal.ID, goal.Target, goal.EndDate, goal.Progress, goal.Completed,
		goal.Name, goal.Description, goal.ReminderEnabled, goal.ReminderTime,
		goal.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "reading goal")
	}

	return nil
}

/*
Delete removes a goal permanently.

Parameters:
  - context: context.Context
  - goalID: string

Returns:
  - error: Execution errors
*/
func (repository *PostgresRepository) Delete(context context.Context, goalID string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE %s = $1`,
		schema.ReadingGoal.Table, schema.ReadingGoal.ID,
	)

	_, err := repository.pool.Exec(context, query, goalID)
	if err != nil {
		return dberr.Wrap(err, "reading goal")
	}

	return nil
}

// # Scan Helpers

// goalColumns returns the comma-separated column list matching [goalFields].
func goalColumns() string {
	return strings.Join(schema.ReadingGoal.Columns(), ", ")
}

// goalFields returns scan destinations ordered to match [goalColumns].
func goalFields(goal *ReadingGoal) []any {
	return []any{
		&goal.ID, &goal.UserID, &goal.GoalType, &goal.Target, &goal.Period,
		&goal.StartDate, &goal.EndDate, &goal.Progress, &goal.Completed,
		&goal.Name, &goal.Description, &goal.ReminderEnabled, &goal.ReminderTime,
		&goal.CreatedAt, &goal.UpdatedAt,
	}
}
