// Copyright (c) 2026 BookLog. All rights reserved.

package auth_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/booklogapp/booklog-server/internal/platform/apperr"
	"github.com/booklogapp/booklog-server/internal/platform/sec"
	"github.com/booklogapp/booklog-server/internal/users/auth"
)

// # Test Doubles

// fakeUserRepository is an in-memory UserRepository for service tests.
type fakeUserRepository struct {
	byID    map[string]*auth.User
	byEmail map[string]*auth.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		byID:    make(map[string]*auth.User),
		byEmail: make(map[string]*auth.User),
	}
}

func (f *fakeUserRepository) FindByID(_ context.Context, id string) (*auth.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, apperr.NotFound("user account")
	}
	return user, nil
}

func (f *fakeUserRepository) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, apperr.NotFound("user account")
	}
	return user, nil
}

func (f *fakeUserRepository) Create(_ context.Context, user *auth.User) error {
	if _, exists := f.byEmail[user.Email]; exists {
		return apperr.Conflict("user account already exists")
	}
	f.byID[user.ID] = user
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepository) Update(_ context.Context, user *auth.User) error {
	f.byID[user.ID] = user
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepository) UpdatePassword(_ context.Context, userID, newHash string) error {
	if user, ok := f.byID[userID]; ok {
		user.PasswordHash = newHash
	}
	return nil
}

func (f *fakeUserRepository) UpdateLastLogin(_ context.Context, userID string, loginTime time.Time) error {
	if user, ok := f.byID[userID]; ok {
		user.LastLoginAt = &loginTime
	}
	return nil
}

func (f *fakeUserRepository) Delete(_ context.Context, userID string) error {
	if user, ok := f.byID[userID]; ok {
		delete(f.byEmail, user.Email)
		delete(f.byID, userID)
	}
	return nil
}

// stubTokenProvider issues predictable tokens of the form "token-for:<uid>".
type stubTokenProvider struct{}

func (stubTokenProvider) GenerateAccessToken(userID, email string, _ time.Duration) (string, error) {
	return "token-for:" + userID, nil
}

func (stubTokenProvider) VerifyToken(tokenString string) (*sec.AuthClaims, error) {
	var userID string
	if _, err := fmt.Sscanf(tokenString, "token-for:%s", &userID); err != nil {
		return nil, fmt.Errorf("invalid token")
	}
	return &sec.AuthClaims{UserID: userID}, nil
}

func newTestService() (*auth.Service, *fakeUserRepository) {
	repo := newFakeUserRepository()
	return auth.NewService(repo, stubTokenProvider{}), repo
}

// # Registration

/*
TestRegister_Success verifies that a valid registration creates the account
and immediately issues an access token.
*/
func TestRegister_Success(t *testing.T) {
	service, repo := newTestService()

	session, err := service.Register(context.Background(), auth.RegisterInput{
		Email:       "reader@example.com",
		Password:    "secret-pass",
		DisplayName: "Avid Reader",
	})

	require.NoError(t, err)
	require.NotNil(t, session.User)

	// 1. The profile is persisted with the EMAIL provider
	stored := repo.byEmail["reader@example.com"]
	require.NotNil(t, stored)
	assert.Equal(t, auth.ProviderEmail, stored.AuthProvider)
	assert.Equal(t, "Avid Reader", stored.DisplayName)

	// 2. The password is never stored in plain text
	assert.NotEqual(t, "secret-pass", stored.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("secret-pass", stored.PasswordHash))

	// 3. Registration doubles as the first login
	assert.Equal(t, "token-for:"+stored.ID, session.AccessToken)
	assert.NotNil(t, stored.LastLoginAt)
}

/*
TestRegister_DuplicateEmail verifies that re-registering an email yields a
Conflict, not an internal failure.
*/
func TestRegister_DuplicateEmail(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	input := auth.RegisterInput{
		Email:       "reader@example.com",
		Password:    "secret-pass",
		DisplayName: "First",
	}
	_, err := service.Register(ctx, input)
	require.NoError(t, err)

	input.DisplayName = "Second"
	_, err = service.Register(ctx, input)

	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
}

// # Login

/*
TestLogin verifies the credential checks and the generic rejection message
for both unknown emails and wrong passwords.
*/
func TestLogin(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	_, err := service.Register(ctx, auth.RegisterInput{
		Email:       "reader@example.com",
		Password:    "secret-pass",
		DisplayName: "Avid Reader",
	})
	require.NoError(t, err)

	testCases := []struct {
		name     string
		email    string
		password string
		wantErr  bool
	}{
		{name: "valid credentials", email: "reader@example.com", password: "secret-pass", wantErr: false},
		{name: "unknown email", email: "nobody@example.com", password: "secret-pass", wantErr: true},
		{name: "wrong password", email: "reader@example.com", password: "not-the-pass", wantErr: true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			session, err := service.Login(ctx, auth.LoginInput{
				Email:    testCase.email,
				Password: testCase.password,
			})

			if testCase.wantErr {
				require.Error(t, err)
				appError := apperr.As(err)
				require.NotNil(t, appError)
				// Same generic message for both failure modes (anti-enumeration)
				assert.Equal(t, "Invalid login credentials", appError.Message)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, session.AccessToken)
			assert.NotNil(t, session.User.LastLoginAt)
		})
	}
}

// # Token Renewal

/*
TestRefresh verifies that a valid token is exchanged for a fresh one and that
tokens of deleted accounts are rejected.
*/
func TestRefresh(t *testing.T) {
	service, repo := newTestService()
	ctx := context.Background()

	session, err := service.Register(ctx, auth.RegisterInput{
		Email:       "reader@example.com",
		Password:    "secret-pass",
		DisplayName: "Avid Reader",
	})
	require.NoError(t, err)

	// 1. Valid token renews without the password
	renewed, err := service.Refresh(ctx, session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, renewed.User.ID)

	// 2. Garbage tokens are rejected as Unauthorized
	_, err = service.Refresh(ctx, "not a token")
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)

	// 3. Tokens of deleted accounts are rejected
	require.NoError(t, repo.Delete(ctx, session.User.ID))
	_, err = service.Refresh(ctx, session.AccessToken)
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
}
