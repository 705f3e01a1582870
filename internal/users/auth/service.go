// Copyright (c) 2026 BookLog. All rights reserved.

/*
Package auth implements the core identity and access management system.

It handles everything from user registration and secure password hashing to
access-token issuance and renewal via RSA-signed JWTs.

Architecture:

  - Service: Orchestrates business logic (Register, Login, Refresh).
  - Repository: Abstracted interface for Postgres (Users).
  - Security: Leverages Bcrypt and RSA-signed JWTs.

The package ensures that identity data remains consistent and secure throughout
the platform's lifecycle.
*/
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/booklogapp/booklog-server/internal/platform/apperr"
	"github.com/booklogapp/booklog-server/internal/platform/constants"
	"github.com/booklogapp/booklog-server/internal/platform/sec"
	"github.com/booklogapp/booklog-server/pkg/uuid"
)

// # Contracts & Types

// TokenProvider defines the contract for issuing and checking security tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the given user.
	//
	// # Parameters
	//   - userID: The ID of the account.
	//   - email: The email of the account.
	//   - timeToLive: The duration before the token expires.
	//
	// # Returns
	//   - A signed JWT string, or an err if signing fails.
	GenerateAccessToken(userID, email string, timeToLive time.Duration) (string, error)

	// VerifyToken checks the signature and expiry of a JWT string and
	// returns its claims.
	VerifyToken(tokenString string) (*sec.AuthClaims, error)
}

// Service implements user authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed carefully.
type Service struct {
	userRepository UserRepository
	tokenProvider  TokenProvider
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(userRepo UserRepository, tokenProv TokenProvider) *Service {
	return &Service{
		userRepository: userRepo,
		tokenProvider:  tokenProv,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
}

// LoginSession represents a successfully established authentication.
type LoginSession struct {
	AccessToken string
	ExpiresIn   time.Duration
	User        *User
}

/*
Register validates, hashes, and persists a brand new user account, then logs
the member straight in.

Description: Deep-enrollment of a new member. The email pre-check is a
fast-path courtesy; the users.account unique constraint remains the
authoritative guard against duplicate registration races.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *LoginSession: Created profile plus a fresh access token
  - err: Conflict (if email exists) or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*LoginSession, error) {

	// Verify email uniqueness. Return a client-safe Conflict err.
	_, err := service.userRepository.FindByEmail(context, input.Email)
	if err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}

	// Prevent storing plain-text passwords. Default cost is used for balance
	// between security and CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// Construct the new User entity. Time-sortable ID to prevent PG index fragmentation.
	now := time.Now()
	user := &User{
		ID:           uuid.New(),
		Email:        input.Email,
		DisplayName:  input.DisplayName,
		PasswordHash: hashedPassword,
		AuthProvider: ProviderEmail,
		LastLoginAt:  &now,
	}

	// Persist the user to the database. A concurrent duplicate surfaces here
	// as Conflict via the unique constraint, not as an internal failure.
	if err := service.userRepository.Create(context, user); err != nil {
		if apperr.IsConflict(err) {
			return nil, apperr.Conflict("Email is already registered")
		}
		return nil, fmt.Errorf("auth_service_register_failed: %w", err)
	}

	// Registration doubles as the first login
	accessToken, err := service.tokenProvider.GenerateAccessToken(user.ID, user.Email, constants.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	return &LoginSession{
		AccessToken: accessToken,
		ExpiresIn:   constants.AccessTokenTTL,
		User:        user,
	}, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string
	Password string
}

/*
Login validates user credentials and issues an access token.

Description: Verifies identity, performs constant-time password comparison,
stamps the last-login time, and returns a signed JWT.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginSession: Transport-ready session identifiers
  - err: Unauthorized or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {
	user, err := service.userRepository.FindByEmail(context, input.Email)

	// If (err != nil) the user does not exist. Generic message to prevent enumeration.
	if err != nil {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	// Verify password hash using constant-time comparison in bcrypt to prevent timing attacks
	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	// Stamp last login. Best effort: a failed stamp must not block the login.
	now := time.Now()
	if err := service.userRepository.UpdateLastLogin(context, user.ID, now); err == nil {
		user.LastLoginAt = &now
	}

	accessToken, err := service.tokenProvider.GenerateAccessToken(user.ID, user.Email, constants.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	return &LoginSession{
		AccessToken: accessToken,
		ExpiresIn:   constants.AccessTokenTTL,
		User:        user,
	}, nil
}

// # Token Renewal

/*
Refresh exchanges a still-valid access token for a fresh one.

Description: Verifies signature and expiry of the presented token, confirms
the account still exists, and re-issues without password re-verification.

Parameters:
  - context: context.Context
  - token: string

Returns:
  - *LoginSession: Renewed session credentials
  - err: Unauthorized or storage failures
*/
func (service *Service) Refresh(context context.Context, token string) (*LoginSession, error) {
	claims, err := service.tokenProvider.VerifyToken(token)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired token")
	}

	// The account may have been deleted since issuance
	user, err := service.userRepository.FindByID(context, claims.UserID)
	if err != nil {
		return nil, apperr.Unauthorized("Account no longer exists")
	}

	accessToken, err := service.tokenProvider.GenerateAccessToken(user.ID, user.Email, constants.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_refresh_token_failed: %w", err)
	}

	return &LoginSession{
		AccessToken: accessToken,
		ExpiresIn:   constants.AccessTokenTTL,
		User:        user,
	}, nil
}
