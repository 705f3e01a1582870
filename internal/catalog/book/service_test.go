// Copyright (c) 2026 BookLog. All rights reserved.

package book_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/booklogapp/booklog-server/internal/catalog/book"
	"github.com/booklogapp/booklog-server/internal/platform/apperr"
	"github.com/booklogapp/booklog-server/pkg/pointer"
)

// # Test Doubles

type fakeBookRepository struct {
	books      map[string]*book.Book
	lastFilter book.Filter
}

func newFakeBookRepository() *fakeBookRepository {
	return &fakeBookRepository{books: make(map[string]*book.Book)}
}

func (f *fakeBookRepository) FindByID(_ context.Context, id string) (*book.Book, error) {
	stored, ok := f.books[id]
	if !ok {
		return nil, apperr.NotFound("book")
	}
	copied := *stored
	return &copied, nil
}

func (f *fakeBookRepository) FindByISBN13(_ context.Context, isbn string) (*book.Book, error) {
	for _, stored := range f.books {
		if stored.ISBN13 != nil && *stored.ISBN13 == isbn {
			copied := *stored
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("book")
}

func (f *fakeBookRepository) FindByISBN10(_ context.Context, isbn string) (*book.Book, error) {
	for _, stored := range f.books {
		if stored.ISBN10 != nil && *stored.ISBN10 == isbn {
			copied := *stored
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("book")
}

func (f *fakeBookRepository) List(_ context.Context, _ string, filter book.Filter, limit, offset int) ([]*book.Book, int, error) {
	f.lastFilter = filter
	all := make([]*book.Book, 0, len(f.books))
	for _, stored := range f.books {
		all = append(all, stored)
	}
	return all, len(all), nil
}

func (f *fakeBookRepository) ListPopular(_ context.Context, limit int) ([]*book.Book, error) {
	all := make([]*book.Book, 0, len(f.books))
	for _, stored := range f.books {
		all = append(all, stored)
	}
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeBookRepository) Create(_ context.Context, created *book.Book) error {
	for _, stored := range f.books {
		if created.ISBN13 != nil && stored.ISBN13 != nil && *created.ISBN13 == *stored.ISBN13 {
			return apperr.Conflict("book already exists")
		}
		if created.ISBN10 != nil && stored.ISBN10 != nil && *created.ISBN10 == *stored.ISBN10 {
			return apperr.Conflict("book already exists")
		}
	}
	f.books[created.ID] = created
	return nil
}

func (f *fakeBookRepository) Update(_ context.Context, updated *book.Book) error {
	if _, ok := f.books[updated.ID]; !ok {
		return apperr.NotFound("book")
	}
	f.books[updated.ID] = updated
	return nil
}

func (f *fakeBookRepository) Delete(_ context.Context, id string) error {
	delete(f.books, id)
	return nil
}

// fakeCacheRepository counts reads and writes so tests can observe the
// cache-aside flow without a live Redis.
type fakeCacheRepository struct {
	cached        []*book.Book
	sets          int
	invalidations int
}

func (f *fakeCacheRepository) GetPopular(_ context.Context) ([]*book.Book, error) {
	return f.cached, nil
}

func (f *fakeCacheRepository) SetPopular(_ context.Context, books []*book.Book, _ time.Duration) error {
	f.cached = books
	f.sets++
	return nil
}

func (f *fakeCacheRepository) InvalidatePopular(_ context.Context) error {
	f.cached = nil
	f.invalidations++
	return nil
}

func newTestService() (*book.Service, *fakeBookRepository, *fakeCacheRepository) {
	repo := newFakeBookRepository()
	cache := &fakeCacheRepository{}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return book.NewService(repo, cache, logger), repo, cache
}

// # Lookup

/*
TestGetByISBN verifies the ISBN-13-then-ISBN-10 fallback order.
*/
func TestGetByISBN(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()

	created, err := service.Create(ctx, book.CreateInput{
		Title:  "The Go Programming Language",
		ISBN10: pointer.To("0134190440"),
		ISBN13: pointer.To("9780134190440"),
	})
	require.NoError(t, err)

	// 1. Resolves by ISBN-13
	found, err := service.GetByISBN(ctx, "9780134190440")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	// 2. Falls back to ISBN-10
	found, err = service.GetByISBN(ctx, "0134190440")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	// 3. Unknown ISBN is NotFound
	_, err = service.GetByISBN(ctx, "9999999999999")
	assert.True(t, apperr.IsNotFound(err))
}

// # Writes

/*
TestCreate_DuplicateISBN verifies the Conflict contract for duplicate ISBNs.
*/
func TestCreate_DuplicateISBN(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()

	_, err := service.Create(ctx, book.CreateInput{
		Title:  "First Edition",
		ISBN13: pointer.To("9780134190440"),
	})
	require.NoError(t, err)

	_, err = service.Create(ctx, book.CreateInput{
		Title:  "Shady Reprint",
		ISBN13: pointer.To("9780134190440"),
	})
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))

	// Books without any ISBN never collide
	_, err = service.Create(ctx, book.CreateInput{Title: "Samizdat One"})
	require.NoError(t, err)
	_, err = service.Create(ctx, book.CreateInput{Title: "Samizdat Two"})
	require.NoError(t, err)
}

/*
TestUpdate_PatchSemantics verifies nil scalars are untouched and list fields
overwrite only when the provided list is non-empty.
*/
func TestUpdate_PatchSemantics(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()

	created, err := service.Create(ctx, book.CreateInput{
		Title:      "Original Title",
		Subtitle:   "Original Subtitle",
		Authors:    []string{"Frank Herbert"},
		Categories: []string{"Science Fiction"},
		PageCount:  412,
	})
	require.NoError(t, err)

	// 1. An explicit empty list must not wipe the stored values
	updated, err := service.Update(ctx, created.ID, book.UpdateInput{
		Title:      pointer.To("Revised Title"),
		Authors:    []string{},
		Categories: []string{},
	})
	require.NoError(t, err)

	assert.Equal(t, "Revised Title", updated.Title)
	assert.Equal(t, "Original Subtitle", updated.Subtitle)
	assert.Equal(t, []string{"Frank Herbert"}, updated.Authors)
	assert.Equal(t, []string{"Science Fiction"}, updated.Categories)
	assert.Equal(t, 412, updated.PageCount)

	// 2. A non-empty list replaces the stored one wholesale
	updated, err = service.Update(ctx, created.ID, book.UpdateInput{
		Authors: []string{"Frank Herbert", "Brian Herbert"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Frank Herbert", "Brian Herbert"}, updated.Authors)
	assert.Equal(t, []string{"Science Fiction"}, updated.Categories)
}

/*
TestFindByFilters_LanguageCanonicalization verifies language codes are
reduced to their BCP-47 base before the exact match.
*/
func TestFindByFilters_LanguageCanonicalization(t *testing.T) {
	service, repo, _ := newTestService()

	_, _, err := service.FindByFilters(context.Background(), book.Filter{Language: "EN-us"}, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, "en", repo.lastFilter.Language)
}

// # Popularity Cache

/*
TestPopular_CacheAside verifies the miss-prime-hit flow and the eager
invalidation on catalog writes.
*/
func TestPopular_CacheAside(t *testing.T) {
	service, _, cache := newTestService()
	ctx := context.Background()

	_, err := service.Create(ctx, book.CreateInput{Title: "Crowd Favorite", AverageRating: 4.9})
	require.NoError(t, err)
	// Create invalidates whatever board might have been cached
	assert.Equal(t, 1, cache.invalidations)

	// 1. First read misses and primes the cache
	books, err := service.Popular(ctx)
	require.NoError(t, err)
	assert.Len(t, books, 1)
	assert.Equal(t, 1, cache.sets)

	// 2. Second read is served from the cache without re-priming
	_, err = service.Popular(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)

	// 3. A catalog write drops the board again
	_, err = service.Create(ctx, book.CreateInput{Title: "New Contender", AverageRating: 5.0})
	require.NoError(t, err)
	assert.Nil(t, cache.cached)
}
