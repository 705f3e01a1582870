// Copyright (c) 2026 BookLog. All rights reserved.

// Package goal manages per-user reading goals: targets over books, pages
// or reading time, bounded by a period, with progress tracking and
// automatic completion.
package goal

import "time"

// # Enumerations

// GoalType identifies what a goal counts.
type GoalType string

const (
	TypeBooks GoalType = "BOOKS"
	TypePages GoalType = "PAGES"
	TypeTime  GoalType = "TIME"
)

// Valid reports whether the value is a known goal type.
func (goalType GoalType) Valid() bool {
	switch goalType {
	case TypeBooks, TypePages, TypeTime:
		return true
	}
	return false
}

// Period identifies the cadence a goal runs on. CUSTOM covers arbitrary
// date ranges supplied by the user.
type Period string

const (
	PeriodDaily   Period = "DAILY"
	PeriodWeekly  Period = "WEEKLY"
	PeriodMonthly Period = "MONTHLY"
	PeriodYearly  Period = "YEARLY"
	PeriodCustom  Period = "CUSTOM"
)

// Valid reports whether the value is a known goal period.
func (period Period) Valid() bool {
	switch period {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly, PeriodCustom:
		return true
	}
	return false
}

// # Entity

// ReadingGoal is a user's commitment to read a target amount within a
// window. EndDate is nil for open-ended goals; ReminderTime holds an
// HH:MM wall-clock string when reminders are enabled.
type ReadingGoal struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	GoalType        GoalType   `json:"type"`
	Target          int        `json:"target"`
	Period          Period     `json:"period"`
	StartDate       time.Time  `json:"start_date"`
	EndDate         *time.Time `json:"end_date,omitempty"`
	Progress        int        `json:"progress"`
	Completed       bool       `json:"completed"`
	Name            string     `json:"name,omitempty"`
	Description     string     `json:"description,omitempty"`
	ReminderEnabled bool       `json:"reminder_enabled"`
	ReminderTime    *string    `json:"reminder_time,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// Active reports whether the goal is running at the given instant:
// started, not yet ended (or open-ended), and not completed.
func (goal *ReadingGoal) Active(now time.Time) bool {
	if goal.Completed {
		return false
	}
	if goal.StartDate.After(now) {
		return false
	}
	return goal.EndDate == nil || !goal.EndDate.Before(now)
}

// # Field Identifiers

const (
	FieldGoalID    = "goal_id"
	FieldType      = "type"
	FieldTarget    = "target"
	FieldPeriod    = "period"
	FieldStartDate = "start_date"
	FieldEndDate   = "end_date"
	FieldProgress  = "progress"
)
