// Copyright (c) 2026 BookLog. All rights reserved.

package journal_test

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/booklogapp/booklog-server/internal/library/journal"
	"github.com/booklogapp/booklog-server/internal/platform/apperr"
	"github.com/booklogapp/booklog-server/pkg/pointer"
)

// # Test Doubles

type fakeNoteRepository struct {
	notes map[string]*journal.Note
}

func newFakeNoteRepository() *fakeNoteRepository {
	return &fakeNoteRepository{notes: make(map[string]*journal.Note)}
}

func (f *fakeNoteRepository) Create(_ context.Context, note *journal.Note) error {
	copied := *note
	f.notes[note.ID] = &copied
	return nil
}

func (f *fakeNoteRepository) FindByID(_ context.Context, noteID string) (*journal.Note, error) {
	stored, ok := f.notes[noteID]
	if !ok {
		return nil, apperr.NotFound("note")
	}
	copied := *stored
	return &copied, nil
}

func (f *fakeNoteRepository) Update(_ context.Context, note *journal.Note) error {
	if _, ok := f.notes[note.ID]; !ok {
		return apperr.NotFound("note")
	}
	copied := *note
	f.notes[note.ID] = &copied
	return nil
}

func (f *fakeNoteRepository) Delete(_ context.Context, note *journal.Note) error {
	if _, ok := f.notes[note.ID]; !ok {
		return apperr.NotFound("note")
	}
	delete(f.notes, note.ID)
	return nil
}

func (f *fakeNoteRepository) ListByUser(_ context.Context, userID string, favoritesOnly bool, limit, offset int) ([]*journal.Note, int, error) {
	matches := f.collect(func(note *journal.Note) bool {
		if note.UserID != userID {
			return false
		}
		return !favoritesOnly || note.Favorite
	})
	return pageNotes(matches, limit, offset), len(matches), nil
}

func (f *fakeNoteRepository) ListByBook(_ context.Context, userID, bookID string, limit, offset int) ([]*journal.Note, int, error) {
	matches := f.collect(func(note *journal.Note) bool {
		return note.UserID == userID && note.BookID == bookID
	})
	return pageNotes(matches, limit, offset), len(matches), nil
}

func (f *fakeNoteRepository) Search(_ context.Context, userID, query string, limit, offset int) ([]*journal.Note, int, error) {
	lowered := strings.ToLower(query)
	matches := f.collect(func(note *journal.Note) bool {
		return note.UserID == userID && strings.Contains(strings.ToLower(note.Content), lowered)
	})
	return pageNotes(matches, limit, offset), len(matches), nil
}

func (f *fakeNoteRepository) collect(keep func(*journal.Note) bool) []*journal.Note {
	var matches []*journal.Note
	for _, stored := range f.notes {
		if keep(stored) {
			copied := *stored
			matches = append(matches, &copied)
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].NotedAt.After(matches[j].NotedAt)
	})
	return matches
}

func pageNotes(notes []*journal.Note, limit, offset int) []*journal.Note {
	if offset >= len(notes) {
		return nil
	}
	notes = notes[offset:]
	if len(notes) > limit {
		notes = notes[:limit]
	}
	return notes
}

type fakeHighlightRepository struct {
	highlights map[string]*journal.Highlight
}

func newFakeHighlightRepository() *fakeHighlightRepository {
	return &fakeHighlightRepository{highlights: make(map[string]*journal.Highlight)}
}

func (f *fakeHighlightRepository) Create(_ context.Context, highlight *journal.Highlight) error {
	copied := *highlight
	f.highlights[highlight.ID] = &copied
	return nil
}

func (f *fakeHighlightRepository) FindByID(_ context.Context, highlightID string) (*journal.Highlight, error) {
	stored, ok := f.highlights[highlightID]
	if !ok {
		return nil, apperr.NotFound("highlight")
	}
	copied := *stored
	return &copied, nil
}

func (f *fakeHighlightRepository) Update(_ context.Context, highlight *journal.Highlight) error {
	if _, ok := f.highlights[highlight.ID]; !ok {
		return apperr.NotFound("highlight")
	}
	copied := *highlight
	f.highlights[highlight.ID] = &copied
	return nil
}

func (f *fakeHighlightRepository) Delete(_ context.Context, highlight *journal.Highlight) error {
	if _, ok := f.highlights[highlight.ID]; !ok {
		return apperr.NotFound("highlight")
	}
	delete(f.highlights, highlight.ID)
	return nil
}

func (f *fakeHighlightRepository) ListByUser(_ context.Context, userID string, favoritesOnly bool, limit, offset int) ([]*journal.Highlight, int, error) {
	var matches []*journal.Highlight
	for _, stored := range f.highlights {
		if stored.UserID != userID {
			continue
		}
		if favoritesOnly && !stored.Favorite {
			continue
		}
		copied := *stored
		matches = append(matches, &copied)
	}
	return matches, len(matches), nil
}

func (f *fakeHighlightRepository) ListByBook(_ context.Context, userID, bookID string, limit, offset int) ([]*journal.Highlight, int, error) {
	var matches []*journal.Highlight
	for _, stored := range f.highlights {
		if stored.UserID == userID && stored.BookID == bookID {
			copied := *stored
			matches = append(matches, &copied)
		}
	}
	return matches, len(matches), nil
}

type fakeSessionRepository struct {
	sessions map[string]*journal.ReadingSession
}

func newFakeSessionRepository() *fakeSessionRepository {
	return &fakeSessionRepository{sessions: make(map[string]*journal.ReadingSession)}
}

func (f *fakeSessionRepository) Create(_ context.Context, session *journal.ReadingSession) error {
	copied := *session
	f.sessions[session.ID] = &copied
	return nil
}

func (f *fakeSessionRepository) FindByID(_ context.Context, sessionID string) (*journal.ReadingSession, error) {
	stored, ok := f.sessions[sessionID]
	if !ok {
		return nil, apperr.NotFound("reading session")
	}
	copied := *stored
	return &copied, nil
}

func (f *fakeSessionRepository) Delete(_ context.Context, session *journal.ReadingSession) error {
	if _, ok := f.sessions[session.ID]; !ok {
		return apperr.NotFound("reading session")
	}
	delete(f.sessions, session.ID)
	return nil
}

func (f *fakeSessionRepository) ListByUser(_ context.Context, userID string, limit, offset int) ([]*journal.ReadingSession, int, error) {
	matches := f.collect(userID)
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

func (f *fakeSessionRepository) ListByBook(_ context.Context, userID, bookID string, limit, offset int) ([]*journal.ReadingSession, int, error) {
	var matches []*journal.ReadingSession
	for _, stored := range f.sessions {
		if stored.UserID == userID && stored.BookID == bookID {
			copied := *stored
			matches = append(matches, &copied)
		}
	}
	return matches, len(matches), nil
}

func (f *fakeSessionRepository) TotalMinutes(_ context.Context, userID string, from, to time.Time) (int, error) {
	total := 0
	for _, stored := range f.sessions {
		if stored.UserID != userID {
			continue
		}
		if stored.ReadAt.Before(from) || !stored.ReadAt.Before(to) {
			continue
		}
		total += stored.DurationMinutes
	}
	return total, nil
}

func (f *fakeSessionRepository) ListRecent(_ context.Context, userID string, limit int) ([]*journal.ReadingSession, error) {
	matches := f.collect(userID)
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

func (f *fakeSessionRepository) collect(userID string) []*journal.ReadingSession {
	var matches []*journal.ReadingSession
	for _, stored := range f.sessions {
		if stored.UserID == userID {
			copied := *stored
			matches = append(matches, &copied)
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].ReadAt.After(matches[j].ReadAt)
	})
	return matches
}

// # Helpers

func newTestService() *journal.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return journal.NewService(newFakeNoteRepository(), newFakeHighlightRepository(), newFakeSessionRepository(), logger)
}

const (
	testUserID  = "11111111-1111-1111-1111-111111111111"
	otherUserID = "99999999-9999-9999-9999-999999999999"
	testBookID  = "22222222-2222-2222-2222-222222222222"
)

// # Note Tests

/*
TestCreateNote verifies note creation stamps noted_at and normalizes
nil tags to an empty list.
*/
func TestCreateNote(t *testing.T) {
	service := newTestService()

	note, err := service.CreateNote(context.Background(), testUserID, journal.CreateNoteInput{
		BookID:  testBookID,
		Content: "The unreliable narrator shows up in chapter three",
		Page:    pointer.To(41),
		Chapter: "3",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, note.ID)
	assert.False(t, note.NotedAt.IsZero())
	assert.NotNil(t, note.Tags)
	assert.Empty(t, note.Tags)
	assert.False(t, note.Favorite)
}

/*
TestUpdateNote_Partial verifies nil fields survive a partial update and
the favorite flag toggles independently.
*/
func TestUpdateNote_Partial(t *testing.T) {
	service := newTestService()

	note, err := service.CreateNote(context.Background(), testUserID, journal.CreateNoteInput{
		BookID:  testBookID,
		Content: "Original content",
		Chapter: "1",
		Tags:    []string{"themes"},
	})
	require.NoError(t, err)

	updated, err := service.UpdateNote(context.Background(), testUserID, note.ID, journal.UpdateNoteInput{
		Favorite: pointer.To(true),
	})
	require.NoError(t, err)

	assert.Equal(t, "Original content", updated.Content)
	assert.Equal(t, "1", updated.Chapter)
	assert.Equal(t, []string{"themes"}, updated.Tags)
	assert.True(t, updated.Favorite)
}

/*
TestGetNote_ForeignNote verifies another user's note reads as not found.
*/
func TestGetNote_ForeignNote(t *testing.T) {
	service := newTestService()

	note, err := service.CreateNote(context.Background(), testUserID, journal.CreateNoteInput{
		BookID:  testBookID,
		Content: "Private note",
	})
	require.NoError(t, err)

	_, err = service.GetNote(context.Background(), otherUserID, note.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestSearchNotes verifies case-insensitive content matching scoped to
the caller.
*/
func TestSearchNotes(t *testing.T) {
	service := newTestService()

	_, err := service.CreateNote(context.Background(), testUserID, journal.CreateNoteInput{
		BookID:  testBookID,
		Content: "The Symbolism of the lighthouse",
	})
	require.NoError(t, err)
	_, err = service.CreateNote(context.Background(), testUserID, journal.CreateNoteInput{
		BookID:  testBookID,
		Content: "Pacing drags in the middle",
	})
	require.NoError(t, err)
	_, err = service.CreateNote(context.Background(), otherUserID, journal.CreateNoteInput{
		BookID:  testBookID,
		Content: "symbolism everywhere",
	})
	require.NoError(t, err)

	notes, total, err := service.SearchNotes(context.Background(), testUserID, "symbolism", 20, 0)
	require.NoError(t, err)

	assert.Equal(t, 1, total)
	require.Len(t, notes, 1)
	assert.Equal(t, "The Symbolism of the lighthouse", notes[0].Content)
}

/*
TestListNotes_FavoritesFilter verifies the favorites narrowing.
*/
func TestListNotes_FavoritesFilter(t *testing.T) {
	service := newTestService()

	starred, err := service.CreateNote(context.Background(), testUserID, journal.CreateNoteInput{
		BookID:  testBookID,
		Content: "Keep this one",
	})
	require.NoError(t, err)
	_, err = service.UpdateNote(context.Background(), testUserID, starred.ID, journal.UpdateNoteInput{
		Favorite: pointer.To(true),
	})
	require.NoError(t, err)

	_, err = service.CreateNote(context.Background(), testUserID, journal.CreateNoteInput{
		BookID:  testBookID,
		Content: "Ordinary note",
	})
	require.NoError(t, err)

	all, total, err := service.ListNotes(context.Background(), testUserID, false, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, all, 2)

	favorites, total, err := service.ListNotes(context.Background(), testUserID, true, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, favorites, 1)
	assert.Equal(t, starred.ID, favorites[0].ID)
}

// # Highlight Tests

/*
TestHighlightLifecycle verifies create, partial update and delete for
highlights, including the not-found on double delete.
*/
func TestHighlightLifecycle(t *testing.T) {
	service := newTestService()

	// 1. Create with color and anchor
	highlight, err := service.CreateHighlight(context.Background(), testUserID, journal.CreateHighlightInput{
		BookID:  testBookID,
		Content: "All happy families are alike",
		Page:    1,
		Color:   "yellow",
	})
	require.NoError(t, err)
	assert.False(t, highlight.HighlightedAt.IsZero())

	// 2. Partial update keeps the untouched fields
	updated, err := service.UpdateHighlight(context.Background(), testUserID, highlight.ID, journal.UpdateHighlightInput{
		Note:     pointer.To("Famous opening line"),
		Favorite: pointer.To(true),
	})
	require.NoError(t, err)
	assert.Equal(t, "All happy families are alike", updated.Content)
	assert.Equal(t, "yellow", updated.Color)
	assert.Equal(t, "Famous opening line", updated.Note)
	assert.True(t, updated.Favorite)

	// 3. Delete, then the record is gone
	require.NoError(t, service.DeleteHighlight(context.Background(), testUserID, highlight.ID))
	err = service.DeleteHighlight(context.Background(), testUserID, highlight.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

// # Session Tests

/*
TestLogSession verifies defaults and the captured page span.
*/
func TestLogSession(t *testing.T) {
	service := newTestService()

	emotion := journal.EmotionExcited
	session, err := service.LogSession(context.Background(), testUserID, journal.LogSessionInput{
		BookID:          testBookID,
		StartPage:       10,
		EndPage:         42,
		DurationMinutes: 45,
		Emotion:         &emotion,
		Rating:          pointer.To(5),
	})
	require.NoError(t, err)

	assert.False(t, session.ReadAt.IsZero())
	assert.Equal(t, 10, session.StartPage)
	assert.Equal(t, 42, session.EndPage)
	assert.Equal(t, 45, session.DurationMinutes)
	require.NotNil(t, session.Emotion)
	assert.Equal(t, journal.EmotionExcited, *session.Emotion)
}

/*
TestTotalReadingTime verifies the range sum includes only sessions
inside [from, to) and rejects inverted ranges.
*/
func TestTotalReadingTime(t *testing.T) {
	service := newTestService()
	now := time.Now()

	logAt := func(readAt time.Time, minutes int) {
		t.Helper()
		_, err := service.LogSession(context.Background(), testUserID, journal.LogSessionInput{
			BookID:          testBookID,
			ReadAt:          &readAt,
			StartPage:       0,
			EndPage:         10,
			DurationMinutes: minutes,
		})
		require.NoError(t, err)
	}

	logAt(now.AddDate(0, 0, -1), 30)
	logAt(now.AddDate(0, 0, -3), 20)
	logAt(now.AddDate(0, 0, -40), 60)

	// 1. Only sessions inside the window count
	total, err := service.TotalReadingTime(context.Background(), testUserID, now.AddDate(0, 0, -7), now)
	require.NoError(t, err)
	assert.Equal(t, 50, total)

	// 2. An inverted range is a validation error
	_, err = service.TotalReadingTime(context.Background(), testUserID, now, now.AddDate(0, 0, -7))
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

/*
TestRecentSessions verifies ordering and the cap.
*/
func TestRecentSessions(t *testing.T) {
	service := newTestService()
	now := time.Now()

	for i := 0; i < journal.RecentSessionsLimit+3; i++ {
		readAt := now.Add(-time.Duration(i) * time.Hour)
		_, err := service.LogSession(context.Background(), testUserID, journal.LogSessionInput{
			BookID:          testBookID,
			ReadAt:          &readAt,
			StartPage:       0,
			EndPage:         5,
			DurationMinutes: 15,
		})
		require.NoError(t, err)
	}

	recent, err := service.RecentSessions(context.Background(), testUserID)
	require.NoError(t, err)

	require.Len(t, recent, journal.RecentSessionsLimit)
	for i := 1; i < len(recent); i++ {
		assert.True(t, recent[i].ReadAt.Before(recent[i-1].ReadAt))
	}
}

/*
TestDeleteSession_Foreign verifies a session cannot be deleted by
another user.
*/
func TestDeleteSession_Foreign(t *testing.T) {
	service := newTestService()

	session, err := service.LogSession(context.Background(), testUserID, journal.LogSessionInput{
		BookID:          testBookID,
		StartPage:       0,
		EndPage:         12,
		DurationMinutes: 20,
	})
	require.NoError(t, err)

	err = service.DeleteSession(context.Background(), otherUserID, session.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))

	// Still retrievable by its owner
	_, err = service.GetSession(context.Background(), testUserID, session.ID)
	require.NoError(t, err)
}
