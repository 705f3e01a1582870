// Copyright (c) 2026 BookLog. All rights reserved.

package goal_test

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/booklogapp/booklog-server/internal/library/goal"
	"github.com/booklogapp/booklog-server/internal/platform/apperr"
	"github.com/booklogapp/booklog-server/pkg/pointer"
)

// # Test Doubles

type fakeGoalRepository struct {
	goals map[string]*goal.ReadingGoal
}

func newFakeGoalRepository() *fakeGoalRepository {
	return &fakeGoalRepository{goals: make(map[string]*goal.ReadingGoal)}
}

func (f *fakeGoalRepository) Create(_ context.Context, readingGoal *goal.ReadingGoal) error {
	copied := *readingGoal
	f.goals[readingGoal.ID] = &copied
	return nil
}

func (f *fakeGoalRepository) FindByID(_ context.Context, goalID string) (*goal.ReadingGoal, error) {
	stored, ok := f.goals[goalID]
	if !ok {
		return nil, apperr.NotFound("reading goal")
	}
	copied := *stored
	return &copied, nil
}

func (f *fakeGoalRepository) List(_ context.Context, userID string, limit, offset int) ([]*goal.ReadingGoal, int, error) {
	var matches []*goal.ReadingGoal
	for _, stored := range f.goals {
		if stored.UserID == userID {
			copied := *stored
			matches = append(matches, &copied)
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].CreatedAt.After(matches[j].CreatedAt)
	})
	total := len(matches)
	if offset >= total {
		return nil, total, nil
	}
	matches = matches[offset:]
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, total, nil
}

func (f *fakeGoalRepository) ListActive(_ context.Context, userID string, now time.Time) ([]*goal.ReadingGoal, error) {
	var matches []*goal.ReadingGoal
	for _, stored := range f.goals {
		if stored.UserID == userID && stored.Active(now) {
			copied := *stored
			matches = append(matches, &copied)
		}
	}
	return matches, nil
}

func (f *fakeGoalRepository) Update(_ context.Context, readingGoal *goal.ReadingGoal) error {
	if _, ok := f.goals[readingGoal.ID]; !ok {
		return apperr.NotFound("reading goal")
	}
	copied := *readingGoal
	f.goals[readingGoal.ID] = &copied
	return nil
}

func (f *fakeGoalRepository) Delete(_ context.Context, goalID string) error {
	if _, ok := f.goals[goalID]; !ok {
		return apperr.NotFound("reading goal")
	}
	delete(f.goals, goalID)
	return nil
}

// # Helpers

func newTestService() (*goal.Service, *fakeGoalRepository) {
	repository := newFakeGoalRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return goal.NewService(repository, logger), repository
}

const testUserID = "11111111-1111-1111-1111-111111111111"

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// # Tests

/*
TestCreate_Defaults verifies that a new goal starts open with zero
progress and defaults its start date to now.
*/
func TestCreate_Defaults(t *testing.T) {
	service, _ := newTestService()

	readingGoal, err := service.Create(context.Background(), testUserID, goal.CreateInput{
		GoalType: goal.TypeBooks,
		Target:   12,
		Period:   goal.PeriodYearly,
		Name:     "A book a month",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, readingGoal.Progress)
	assert.False(t, readingGoal.Completed)
	assert.False(t, readingGoal.StartDate.IsZero())
	assert.Nil(t, readingGoal.EndDate)
	assert.NotEmpty(t, readingGoal.ID)
}

/*
TestCreate_EndBeforeStart verifies the end-date ordering guard.
*/
func TestCreate_EndBeforeStart(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Create(context.Background(), testUserID, goal.CreateInput{
		GoalType:  goal.TypePages,
		Target:    500,
		Period:    goal.PeriodCustom,
		StartDate: date(2026, time.June, 1),
		EndDate:   pointer.To(date(2026, time.May, 1)),
	})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

/*
TestGet_ForeignGoal verifies that another user's goal reads as not
found rather than forbidden.
*/
func TestGet_ForeignGoal(t *testing.T) {
	service, _ := newTestService()

	readingGoal, err := service.Create(context.Background(), testUserID, goal.CreateInput{
		GoalType: goal.TypeBooks,
		Target:   3,
		Period:   goal.PeriodMonthly,
	})
	require.NoError(t, err)

	_, err = service.Get(context.Background(), "99999999-9999-9999-9999-999999999999", readingGoal.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestUpdateProgress_Completion verifies the goal completes exactly when
progress reaches the target and stays completed afterwards.
*/
func TestUpdateProgress_Completion(t *testing.T) {
	service, _ := newTestService()

	readingGoal, err := service.Create(context.Background(), testUserID, goal.CreateInput{
		GoalType: goal.TypeBooks,
		Target:   5,
		Period:   goal.PeriodMonthly,
	})
	require.NoError(t, err)

	// 1. Short of the target stays open
	partial, err := service.UpdateProgress(context.Background(), testUserID, readingGoal.ID, 4)
	require.NoError(t, err)
	assert.False(t, partial.Completed)

	// 2. Reaching the target completes the goal
	done, err := service.UpdateProgress(context.Background(), testUserID, readingGoal.ID, 5)
	require.NoError(t, err)
	assert.True(t, done.Completed)

	// 3. Completion is sticky against later progress drops
	dropped, err := service.UpdateProgress(context.Background(), testUserID, readingGoal.ID, 2)
	require.NoError(t, err)
	assert.True(t, dropped.Completed)
}

/*
TestUpdate_TargetRecomputesCompletion verifies that changing the target
re-evaluates completion in both directions.
*/
func TestUpdate_TargetRecomputesCompletion(t *testing.T) {
	service, _ := newTestService()

	readingGoal, err := service.Create(context.Background(), testUserID, goal.CreateInput{
		GoalType: goal.TypePages,
		Target:   100,
		Period:   goal.PeriodWeekly,
	})
	require.NoError(t, err)

	_, err = service.UpdateProgress(context.Background(), testUserID, readingGoal.ID, 100)
	require.NoError(t, err)

	// 1. Raising the target reopens the goal
	raised, err := service.Update(context.Background(), testUserID, readingGoal.ID, goal.UpdateInput{
		Target: pointer.To(150),
	})
	require.NoError(t, err)
	assert.False(t, raised.Completed)

	// 2. Lowering it back below progress completes again
	lowered, err := service.Update(context.Background(), testUserID, readingGoal.ID, goal.UpdateInput{
		Target: pointer.To(80),
	})
	require.NoError(t, err)
	assert.True(t, lowered.Completed)
}

/*
TestUpdate_Partial verifies nil fields survive a partial update.
*/
func TestUpdate_Partial(t *testing.T) {
	service, _ := newTestService()

	readingGoal, err := service.Create(context.Background(), testUserID, goal.CreateInput{
		GoalType:    goal.TypeTime,
		Target:      300,
		Period:      goal.PeriodWeekly,
		Name:        "Evening reading",
		Description: "Thirty minutes before bed",
	})
	require.NoError(t, err)

	updated, err := service.Update(context.Background(), testUserID, readingGoal.ID, goal.UpdateInput{
		Name: pointer.To("Morning reading"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Morning reading", updated.Name)
	assert.Equal(t, "Thirty minutes before bed", updated.Description)
	assert.Equal(t, 300, updated.Target)
}

/*
TestActive verifies the activity window: started, not ended or
open-ended, not completed.
*/
func TestActive(t *testing.T) {
	service, _ := newTestService()
	now := time.Now()

	// 1. Running goal inside its window
	running, err := service.Create(context.Background(), testUserID, goal.CreateInput{
		GoalType:  goal.TypeBooks,
		Target:    2,
		Period:    goal.PeriodCustom,
		StartDate: now.AddDate(0, 0, -7),
		EndDate:   pointer.To(now.AddDate(0, 0, 7)),
	})
	require.NoError(t, err)

	// 2. Open-ended goal with a past start
	openEnded, err := service.Create(context.Background(), testUserID, goal.CreateInput{
		GoalType:  goal.TypePages,
		Target:    1000,
		Period:    goal.PeriodYearly,
		StartDate: now.AddDate(0, -1, 0),
	})
	require.NoError(t, err)

	// 3. Not yet started
	_, err = service.Create(context.Background(), testUserID, goal.CreateInput{
		GoalType:  goal.TypeBooks,
		Target:    1,
		Period:    goal.PeriodCustom,
		StartDate: now.AddDate(0, 0, 14),
	})
	require.NoError(t, err)

	// 4. Already expired
	_, err = service.Create(context.Background(), testUserID, goal.CreateInput{
		GoalType:  goal.TypeBooks,
		Target:    1,
		Period:    goal.PeriodCustom,
		StartDate: now.AddDate(0, 0, -30),
		EndDate:   pointer.To(now.AddDate(0, 0, -10)),
	})
	require.NoError(t, err)

	// 5. Completed inside its window
	finished, err := service.Create(context.Background(), testUserID, goal.CreateInput{
		GoalType:  goal.TypeBooks,
		Target:    1,
		Period:    goal.PeriodCustom,
		StartDate: now.AddDate(0, 0, -7),
	})
	require.NoError(t, err)
	_, err = service.UpdateProgress(context.Background(), testUserID, finished.ID, 1)
	require.NoError(t, err)

	active, err := service.Active(context.Background(), testUserID)
	require.NoError(t, err)

	activeIDs := make(map[string]bool, len(active))
	for _, candidate := range active {
		activeIDs[candidate.ID] = true
	}
	assert.Len(t, active, 2)
	assert.True(t, activeIDs[running.ID])
	assert.True(t, activeIDs[openEnded.ID])
}

/*
TestDelete verifies removal and not-found on double delete.
*/
func TestDelete(t *testing.T) {
	service, _ := newTestService()

	readingGoal, err := service.Create(context.Background(), testUserID, goal.CreateInput{
		GoalType: goal.TypeBooks,
		Target:   1,
		Period:   goal.PeriodDaily,
	})
	require.NoError(t, err)

	require.NoError(t, service.Delete(context.Background(), testUserID, readingGoal.ID))

	err = service.Delete(context.Background(), testUserID, readingGoal.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}
