// Copyright (c) 2026 BookLog. All rights reserved.

package entry_test

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/booklogapp/booklog-server/internal/library/entry"
	"github.com/booklogapp/booklog-server/internal/platform/apperr"
	"github.com/booklogapp/booklog-server/pkg/pointer"
)

// # Test Doubles

type fakeEntryRepository struct {
	entries map[string]*entry.LibraryEntry
}

func newFakeEntryRepository() *fakeEntryRepository {
	return &fakeEntryRepository{entries: make(map[string]*entry.LibraryEntry)}
}

func entryKey(userID, bookID string) string {
	return userID + "/" + bookID
}

func (f *fakeEntryRepository) FindByUserAndBook(_ context.Context, userID, bookID string) (*entry.LibraryEntry, error) {
	stored, ok := f.entries[entryKey(userID, bookID)]
	if !ok {
		return nil, apperr.NotFound("library entry")
	}
	copied := *stored
	return &copied, nil
}

func (f *fakeEntryRepository) Exists(_ context.Context, userID, bookID string) (bool, error) {
	_, ok := f.entries[entryKey(userID, bookID)]
	return ok, nil
}

func (f *fakeEntryRepository) Create(_ context.Context, libraryEntry *entry.LibraryEntry) error {
	key := entryKey(libraryEntry.UserID, libraryEntry.BookID)
	if _, ok := f.entries[key]; ok {
		return apperr.Conflict("library entry already exists")
	}
	copied := *libraryEntry
	f.entries[key] = &copied
	return nil
}

func (f *fakeEntryRepository) Update(_ context.Context, libraryEntry *entry.LibraryEntry) error {
	key := entryKey(libraryEntry.UserID, libraryEntry.BookID)
	if _, ok := f.entries[key]; !ok {
		return apperr.NotFound("library entry")
	}
	copied := *libraryEntry
	f.entries[key] = &copied
	return nil
}

func (f *fakeEntryRepository) Delete(_ context.Context, userID, bookID string) error {
	key := entryKey(userID, bookID)
	if _, ok := f.entries[key]; !ok {
		return apperr.NotFound("library entry")
	}
	delete(f.entries, key)
	return nil
}

func (f *fakeEntryRepository) List(_ context.Context, userID string, limit, offset int) ([]*entry.LibraryEntry, int, error) {
	matches := f.collect(func(e *entry.LibraryEntry) bool { return e.UserID == userID })
	return paginate(matches, limit, offset), len(matches), nil
}

func (f *fakeEntryRepository) ListByStatus(_ context.Context, userID string, status entry.Status, limit, offset int) ([]*entry.LibraryEntry, int, error) {
	matches := f.collect(func(e *entry.LibraryEntry) bool {
		return e.UserID == userID && e.Status == status
	})
	return paginate(matches, limit, offset), len(matches), nil
}

func (f *fakeEntryRepository) ListByTag(_ context.Context, userID, tag string, status *entry.Status, limit, offset int) ([]*entry.LibraryEntry, int, error) {
	matches := f.collect(func(e *entry.LibraryEntry) bool {
		if e.UserID != userID {
			return false
		}
		if status != nil && e.Status != *status {
			return false
		}
		for _, candidate := range e.Tags {
			if candidate == tag {
				return true
			}
		}
		return false
	})
	return paginate(matches, limit, offset), len(matches), nil
}

func (f *fakeEntryRepository) CountByStatus(_ context.Context, userID string) (map[entry.Status]int, error) {
	counts := make(map[entry.Status]int)
	for _, stored := range f.entries {
		if stored.UserID == userID {
			counts[stored.Status]++
		}
	}
	return counts, nil
}

func (f *fakeEntryRepository) ListRecentlyRead(_ context.Context, userID string, limit int) ([]*entry.LibraryEntry, error) {
	matches := f.collect(func(e *entry.LibraryEntry) bool {
		return e.UserID == userID && e.Status == entry.StatusReading && e.LastReadDate != nil
	})
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].LastReadDate.Equal(*matches[j].LastReadDate) {
			return matches[i].ID > matches[j].ID
		}
		return matches[i].LastReadDate.After(*matches[j].LastReadDate)
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

func (f *fakeEntryRepository) collect(keep func(*entry.LibraryEntry) bool) []*entry.LibraryEntry {
	var matches []*entry.LibraryEntry
	for _, stored := range f.entries {
		if keep(stored) {
			copied := *stored
			matches = append(matches, &copied)
		}
	}
	return matches
}

func paginate(entries []*entry.LibraryEntry, limit, offset int) []*entry.LibraryEntry {
	if offset >= len(entries) {
		return nil
	}
	entries = entries[offset:]
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// # Helpers

func newTestService() (*entry.Service, *fakeEntryRepository) {
	repository := newFakeEntryRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return entry.NewService(repository, logger), repository
}

const (
	testUserID = "11111111-1111-1111-1111-111111111111"
	testBookID = "22222222-2222-2222-2222-222222222222"
)

// # Tests

/*
TestAdd_Defaults verifies that a freshly added book starts as an
unread entry with zeroed progress and a stamped added date.
*/
func TestAdd_Defaults(t *testing.T) {
	service, _ := newTestService()

	libraryEntry, err := service.Add(context.Background(), testUserID, testBookID, entry.StatusToRead)
	require.NoError(t, err)

	assert.Equal(t, entry.StatusToRead, libraryEntry.Status)
	assert.Equal(t, entry.MinProgress, libraryEntry.Progress)
	assert.False(t, libraryEntry.AddedDate.IsZero())
	assert.Nil(t, libraryEntry.StartDate)
	assert.Nil(t, libraryEntry.FinishDate)
	assert.NotEmpty(t, libraryEntry.ID)
}

/*
TestAdd_InitialStatusStamps verifies the date side effects of adding a
book directly as READING or FINISHED.
*/
func TestAdd_InitialStatusStamps(t *testing.T) {
	testCases := []struct {
		name          string
		initialStatus entry.Status
		wantStart     bool
		wantFinish    bool
		wantProgress  int
	}{
		{
			name:          "reading stamps start date",
			initialStatus: entry.StatusReading,
			wantStart:     true,
			wantProgress:  entry.MinProgress,
		},
		{
			name:          "finished stamps both dates and pins progress",
			initialStatus: entry.StatusFinished,
			wantStart:     true,
			wantFinish:    true,
			wantProgress:  entry.MaxProgress,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			service, _ := newTestService()

			libraryEntry, err := service.Add(context.Background(), testUserID, testBookID, testCase.initialStatus)
			require.NoError(t, err)

			assert.Equal(t, testCase.wantStart, libraryEntry.StartDate != nil)
			assert.Equal(t, testCase.wantFinish, libraryEntry.FinishDate != nil)
			assert.Equal(t, testCase.wantProgress, libraryEntry.Progress)
		})
	}
}

/*
TestAdd_Duplicate verifies that adding the same book twice yields a
conflict and leaves the original entry untouched.
*/
func TestAdd_Duplicate(t *testing.T) {
	service, _ := newTestService()

	// 1. First add succeeds
	original, err := service.Add(context.Background(), testUserID, testBookID, entry.StatusReading)
	require.NoError(t, err)

	// 2. Second add conflicts
	_, err = service.Add(context.Background(), testUserID, testBookID, entry.StatusToRead)
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))

	// 3. The original entry keeps its status
	stored, err := service.Get(context.Background(), testUserID, testBookID)
	require.NoError(t, err)
	assert.Equal(t, original.Status, stored.Status)
}

/*
TestSetStatus_ReadingBackfillsStartDate verifies that moving to READING
stamps the start date once and keeps it on repeat transitions.
*/
func TestSetStatus_ReadingBackfillsStartDate(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Add(context.Background(), testUserID, testBookID, entry.StatusToRead)
	require.NoError(t, err)

	// 1. First transition to READING stamps the start date
	first, err := service.SetStatus(context.Background(), testUserID, testBookID, entry.StatusReading, nil)
	require.NoError(t, err)
	require.NotNil(t, first.StartDate)
	require.NotNil(t, first.LastReadDate)

	// 2. A repeat transition is idempotent for the start date
	second, err := service.SetStatus(context.Background(), testUserID, testBookID, entry.StatusReading, nil)
	require.NoError(t, err)
	require.NotNil(t, second.StartDate)
	assert.True(t, second.StartDate.Equal(*first.StartDate))
}

/*
TestSetStatus_FinishedPinsProgress verifies that transitioning to
FINISHED completes the entry regardless of an explicit progress value,
while a non-FINISHED target honors the explicit progress.
*/
func TestSetStatus_FinishedPinsProgress(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Add(context.Background(), testUserID, testBookID, entry.StatusReading)
	require.NoError(t, err)

	// 1. FINISHED overrides the explicit progress with 100
	finished, err := service.SetStatus(context.Background(), testUserID, testBookID, entry.StatusFinished, pointer.To(40))
	require.NoError(t, err)
	assert.Equal(t, entry.MaxProgress, finished.Progress)
	require.NotNil(t, finished.FinishDate)
	require.NotNil(t, finished.StartDate)

	// 2. A non-FINISHED target applies the explicit progress as given
	reading, err := service.SetStatus(context.Background(), testUserID, testBookID, entry.StatusReading, pointer.To(40))
	require.NoError(t, err)
	assert.Equal(t, 40, reading.Progress)
}

/*
TestSetStatus_RefreshesLastReadDate verifies that every status change
touches the last-read timestamp, even without a progress value.
*/
func TestSetStatus_RefreshesLastReadDate(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Add(context.Background(), testUserID, testBookID, entry.StatusToRead)
	require.NoError(t, err)

	updated, err := service.SetStatus(context.Background(), testUserID, testBookID, entry.StatusAbandoned, nil)
	require.NoError(t, err)
	assert.NotNil(t, updated.LastReadDate)
}

/*
TestSetProgress_AutoCompletes verifies that reaching 100 percent flips
the entry to FINISHED with a finish date, while partial progress leaves
the status alone.
*/
func TestSetProgress_AutoCompletes(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Add(context.Background(), testUserID, testBookID, entry.StatusReading)
	require.NoError(t, err)

	// 1. Partial progress only moves the needle
	partial, err := service.SetProgress(context.Background(), testUserID, testBookID, 55)
	require.NoError(t, err)
	assert.Equal(t, 55, partial.Progress)
	assert.Equal(t, entry.StatusReading, partial.Status)
	assert.Nil(t, partial.FinishDate)
	require.NotNil(t, partial.LastReadDate)

	// 2. Hitting 100 completes the book
	completed, err := service.SetProgress(context.Background(), testUserID, testBookID, entry.MaxProgress)
	require.NoError(t, err)
	assert.Equal(t, entry.StatusFinished, completed.Status)
	assert.Equal(t, entry.MaxProgress, completed.Progress)
	assert.NotNil(t, completed.FinishDate)
}

/*
TestSetProgress_AlreadyFinished verifies that re-sending 100 percent to
a finished entry does not stamp a new finish date.
*/
func TestSetProgress_AlreadyFinished(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Add(context.Background(), testUserID, testBookID, entry.StatusFinished)
	require.NoError(t, err)

	before, err := service.Get(context.Background(), testUserID, testBookID)
	require.NoError(t, err)
	require.NotNil(t, before.FinishDate)

	after, err := service.SetProgress(context.Background(), testUserID, testBookID, entry.MaxProgress)
	require.NoError(t, err)
	assert.Equal(t, entry.StatusFinished, after.Status)
	assert.True(t, after.FinishDate.Equal(*before.FinishDate))
}

/*
TestSetRating verifies rating updates and that a nil review leaves the
stored review untouched.
*/
func TestSetRating(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Add(context.Background(), testUserID, testBookID, entry.StatusFinished)
	require.NoError(t, err)

	// 1. Rating with a review stores both
	rated, err := service.SetRating(context.Background(), testUserID, testBookID, 4, pointer.To("Compelling middle act"))
	require.NoError(t, err)
	require.NotNil(t, rated.UserRating)
	assert.Equal(t, 4, *rated.UserRating)
	assert.Equal(t, "Compelling middle act", rated.UserReview)

	// 2. Re-rating without a review keeps the old review text
	rerated, err := service.SetRating(context.Background(), testUserID, testBookID, 5, nil)
	require.NoError(t, err)
	require.NotNil(t, rerated.UserRating)
	assert.Equal(t, 5, *rerated.UserRating)
	assert.Equal(t, "Compelling middle act", rerated.UserReview)
}

/*
TestSetTags_FullReplacement verifies tags are replaced wholesale and
that a nil set clears them to an empty list.
*/
func TestSetTags_FullReplacement(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Add(context.Background(), testUserID, testBookID, entry.StatusToRead)
	require.NoError(t, err)

	// 1. Initial tag set
	tagged, err := service.SetTags(context.Background(), testUserID, testBookID, []string{"sci-fi", "loaned"})
	require.NoError(t, err)
	assert.Equal(t, []string{"sci-fi", "loaned"}, tagged.Tags)

	// 2. Replacement drops tags absent from the new set
	replaced, err := service.SetTags(context.Background(), testUserID, testBookID, []string{"favorites"})
	require.NoError(t, err)
	assert.Equal(t, []string{"favorites"}, replaced.Tags)

	// 3. Nil clears to an empty, non-nil list
	cleared, err := service.SetTags(context.Background(), testUserID, testBookID, nil)
	require.NoError(t, err)
	assert.NotNil(t, cleared.Tags)
	assert.Empty(t, cleared.Tags)
}

/*
TestToggleFavorite verifies the flag flips on each call.
*/
func TestToggleFavorite(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Add(context.Background(), testUserID, testBookID, entry.StatusToRead)
	require.NoError(t, err)

	first, err := service.ToggleFavorite(context.Background(), testUserID, testBookID)
	require.NoError(t, err)
	assert.True(t, first.Favorite)

	second, err := service.ToggleFavorite(context.Background(), testUserID, testBookID)
	require.NoError(t, err)
	assert.False(t, second.Favorite)
}

/*
TestRemove verifies removal and that a second removal reports not found.
*/
func TestRemove(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Add(context.Background(), testUserID, testBookID, entry.StatusToRead)
	require.NoError(t, err)

	require.NoError(t, service.Remove(context.Background(), testUserID, testBookID))

	err = service.Remove(context.Background(), testUserID, testBookID)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestStats_ZeroFilled verifies that stats always report all four
statuses, including zeroes for an empty library.
*/
func TestStats_ZeroFilled(t *testing.T) {
	service, _ := newTestService()

	// 1. An empty library still reports every status
	empty, err := service.Stats(context.Background(), testUserID)
	require.NoError(t, err)
	require.Len(t, empty, len(entry.AllStatuses))
	for _, status := range entry.AllStatuses {
		assert.Equal(t, 0, empty[status])
	}

	// 2. Observed statuses are counted, the rest stay zero
	_, err = service.Add(context.Background(), testUserID, testBookID, entry.StatusReading)
	require.NoError(t, err)
	_, err = service.Add(context.Background(), testUserID, "33333333-3333-3333-3333-333333333333", entry.StatusReading)
	require.NoError(t, err)
	_, err = service.Add(context.Background(), testUserID, "44444444-4444-4444-4444-444444444444", entry.StatusFinished)
	require.NoError(t, err)

	stats, err := service.Stats(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats[entry.StatusReading])
	assert.Equal(t, 1, stats[entry.StatusFinished])
	assert.Equal(t, 0, stats[entry.StatusToRead])
	assert.Equal(t, 0, stats[entry.StatusAbandoned])
}

/*
TestRecentlyRead verifies only READING entries surface, most recently
read first, capped at the limit.
*/
func TestRecentlyRead(t *testing.T) {
	service, _ := newTestService()

	bookIDs := []string{
		"55555555-5555-5555-5555-555555555551",
		"55555555-5555-5555-5555-555555555552",
		"55555555-5555-5555-5555-555555555553",
		"55555555-5555-5555-5555-555555555554",
		"55555555-5555-5555-5555-555555555555",
		"55555555-5555-5555-5555-555555555556",
	}

	// 1. Six books in READING, each touched in order
	for _, bookID := range bookIDs {
		_, err := service.Add(context.Background(), testUserID, bookID, entry.StatusReading)
		require.NoError(t, err)
		_, err = service.SetProgress(context.Background(), testUserID, bookID, 10)
		require.NoError(t, err)
	}

	// 2. A finished book never shows up as recently read
	finishedID := "66666666-6666-6666-6666-666666666666"
	_, err := service.Add(context.Background(), testUserID, finishedID, entry.StatusFinished)
	require.NoError(t, err)

	recent, err := service.RecentlyRead(context.Background(), testUserID)
	require.NoError(t, err)

	require.Len(t, recent, entry.RecentlyReadLimit)
	for _, libraryEntry := range recent {
		assert.Equal(t, entry.StatusReading, libraryEntry.Status)
		assert.NotEqual(t, finishedID, libraryEntry.BookID)
	}
	for i := 1; i < len(recent); i++ {
		assert.False(t, recent[i].LastReadDate.After(*recent[i-1].LastReadDate))
	}
}

/*
TestRecentlyRead_SameDayOrder verifies entries last read at the same moment
come back in a stable order, newest entry ID first.
*/
func TestRecentlyRead_SameDayOrder(t *testing.T) {
	service, repository := newTestService()

	readAt := time.Date(2026, time.August, 20, 0, 0, 0, 0, time.UTC)
	ids := []string{
		"77777777-7777-7777-7777-777777777771",
		"77777777-7777-7777-7777-777777777772",
		"77777777-7777-7777-7777-777777777773",
	}
	bookIDs := []string{
		"88888888-8888-8888-8888-888888888881",
		"88888888-8888-8888-8888-888888888882",
		"88888888-8888-8888-8888-888888888883",
	}

	// 1. Three READING entries touched on the same day
	for i, id := range ids {
		err := repository.Create(context.Background(), &entry.LibraryEntry{
			ID:           id,
			UserID:       testUserID,
			BookID:       bookIDs[i],
			Status:       entry.StatusReading,
			LastReadDate: &readAt,
		})
		require.NoError(t, err)
	}

	recent, err := service.RecentlyRead(context.Background(), testUserID)
	require.NoError(t, err)

	// 2. Ties on the read date break toward the highest ID
	require.Len(t, recent, len(ids))
	assert.Equal(t, ids[2], recent[0].ID)
	assert.Equal(t, ids[1], recent[1].ID)
	assert.Equal(t, ids[0], recent[2].ID)
}

/*
TestListByTag_StatusFilter verifies tag listing and the optional status
narrowing.
*/
func TestListByTag_StatusFilter(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Add(context.Background(), testUserID, testBookID, entry.StatusReading)
	require.NoError(t, err)
	_, err = service.SetTags(context.Background(), testUserID, testBookID, []string{"book-club"})
	require.NoError(t, err)

	otherBookID := "77777777-7777-7777-7777-777777777777"
	_, err = service.Add(context.Background(), testUserID, otherBookID, entry.StatusFinished)
	require.NoError(t, err)
	_, err = service.SetTags(context.Background(), testUserID, otherBookID, []string{"book-club"})
	require.NoError(t, err)

	// 1. No status filter returns both tagged entries
	all, total, err := service.ListByTag(context.Background(), testUserID, "book-club", nil, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, all, 2)

	// 2. Narrowing by status keeps only the matching entry
	finishedStatus := entry.StatusFinished
	finished, total, err := service.ListByTag(context.Background(), testUserID, "book-club", &finishedStatus, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, finished, 1)
	assert.Equal(t, otherBookID, finished[0].BookID)
}
