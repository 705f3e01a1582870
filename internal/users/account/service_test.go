// Copyright (c) 2026 BookLog. All rights reserved.

package account_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/booklogapp/booklog-server/internal/platform/apperr"
	"github.com/booklogapp/booklog-server/internal/platform/sec"
	"github.com/booklogapp/booklog-server/internal/users/account"
	"github.com/booklogapp/booklog-server/internal/users/auth"
	"github.com/booklogapp/booklog-server/pkg/pointer"
)

// # Test Doubles

type fakeAccountRepository struct {
	users map[string]*auth.User
}

func newFakeAccountRepository() *fakeAccountRepository {
	return &fakeAccountRepository{users: make(map[string]*auth.User)}
}

func (f *fakeAccountRepository) FindByID(_ context.Context, id string) (*auth.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperr.NotFound("user account")
	}
	copied := *user
	return &copied, nil
}

func (f *fakeAccountRepository) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("user account")
}

func (f *fakeAccountRepository) Create(_ context.Context, user *auth.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeAccountRepository) Update(_ context.Context, user *auth.User) error {
	stored, ok := f.users[user.ID]
	if !ok {
		return apperr.NotFound("user account")
	}
	stored.DisplayName = user.DisplayName
	stored.PhotoURL = user.PhotoURL
	return nil
}

func (f *fakeAccountRepository) UpdatePassword(_ context.Context, userID, newHash string) error {
	stored, ok := f.users[userID]
	if !ok {
		return apperr.NotFound("user account")
	}
	stored.PasswordHash = newHash
	return nil
}

func (f *fakeAccountRepository) UpdateLastLogin(_ context.Context, userID string, loginTime time.Time) error {
	if stored, ok := f.users[userID]; ok {
		stored.LastLoginAt = &loginTime
	}
	return nil
}

func (f *fakeAccountRepository) Delete(_ context.Context, userID string) error {
	delete(f.users, userID)
	return nil
}

func newTestService() (*account.Service, *fakeAccountRepository) {
	repo := newFakeAccountRepository()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return account.NewService(repo, logger), repo
}

func seedUser(repo *fakeAccountRepository, password string) *auth.User {
	hash, _ := sec.HashPassword(password)
	user := &auth.User{
		ID:           "user-1",
		Email:        "reader@example.com",
		DisplayName:  "Avid Reader",
		PhotoURL:     "https://example.com/a.png",
		PasswordHash: hash,
		AuthProvider: auth.ProviderEmail,
	}
	repo.users[user.ID] = user
	return user
}

// # Profile

/*
TestUpdateProfile_Partial verifies that only provided fields are overwritten
and nil fields are left untouched.
*/
func TestUpdateProfile_Partial(t *testing.T) {
	service, repo := newTestService()
	seedUser(repo, "secret-pass")

	// 1. Only the display name is provided; the photo must survive
	updated, err := service.UpdateProfile(context.Background(), "user-1", account.UpdateProfileInput{
		DisplayName: pointer.To("Night Reader"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Night Reader", updated.DisplayName)
	assert.Equal(t, "https://example.com/a.png", updated.PhotoURL)

	// 2. An explicit empty photo URL clears the field
	updated, err = service.UpdateProfile(context.Background(), "user-1", account.UpdateProfileInput{
		PhotoURL: pointer.To(""),
	})
	require.NoError(t, err)
	assert.Equal(t, "Night Reader", updated.DisplayName)
	assert.Empty(t, updated.PhotoURL)
}

/*
TestGetPublicProfile verifies the public view never leaks private fields.
*/
func TestGetPublicProfile(t *testing.T) {
	service, repo := newTestService()
	seedUser(repo, "secret-pass")

	profile, err := service.GetPublicProfile(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, "user-1", profile.ID)
	assert.Equal(t, "Avid Reader", profile.DisplayName)
	assert.Equal(t, "https://example.com/a.png", profile.PhotoURL)

	_, err = service.GetPublicProfile(context.Background(), "missing")
	assert.True(t, apperr.IsNotFound(err))
}

// # Credentials & Lifecycle

/*
TestChangePassword verifies the current-password gate and the hash rotation.
*/
func TestChangePassword(t *testing.T) {
	service, repo := newTestService()
	seedUser(repo, "secret-pass")
	ctx := context.Background()

	// 1. Wrong current password is rejected as Unauthorized
	err := service.ChangePassword(ctx, "user-1", "wrong-pass", "brand-new-pass")
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)

	// 2. Correct current password rotates the hash
	err = service.ChangePassword(ctx, "user-1", "secret-pass", "brand-new-pass")
	require.NoError(t, err)
	assert.True(t, sec.CheckPasswordHash("brand-new-pass", repo.users["user-1"].PasswordHash))
}

/*
TestDeleteAccount verifies hard deletion and the NotFound contract for
already-deleted accounts.
*/
func TestDeleteAccount(t *testing.T) {
	service, repo := newTestService()
	seedUser(repo, "secret-pass")
	ctx := context.Background()

	require.NoError(t, service.DeleteAccount(ctx, "user-1"))
	assert.Empty(t, repo.users)

	err := service.DeleteAccount(ctx, "user-1")
	assert.True(t, apperr.IsNotFound(err))
}
