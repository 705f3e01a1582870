// Copyright (c) 2026 BookLog. All rights reserved.

/*
Package account manages the profile surface of an existing user.

While package auth owns how an identity comes into existence, this package
owns everything a member does with it afterwards: reading their profile,
partial updates, password rotation, and account deletion.
*/
package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/booklogapp/booklog-server/internal/platform/apperr"
	"github.com/booklogapp/booklog-server/internal/platform/sec"
	"github.com/booklogapp/booklog-server/internal/users/auth"
)

// # Service Layer

// Service orchestrates business logic for user account management.
type Service struct {
	accountRepository auth.UserRepository
	logger            *slog.Logger
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(accountRepo auth.UserRepository, logger *slog.Logger) *Service {
	return &Service{
		accountRepository: accountRepo,
		logger:            logger,
	}
}

// # Profile Management

/*
GetProfile retrieves the full private identity of a user.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - *auth.User: The hydrated user profile
  - error: Not found or execution failures
*/
func (service *Service) GetProfile(context context.Context, userID string) (*auth.User, error) {
	user, err := service.accountRepository.FindByID(context, userID)
	if err != nil {
		return nil, fmt.Errorf("account_service_get_profile_failed: %w", err)
	}
	return user, nil
}

// PublicProfile is the subset of a user's identity visible to other members.
type PublicProfile struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	PhotoURL    string `json:"photo_url,omitempty"`
}

/*
GetPublicProfile retrieves the public-facing identity of any user.

Description: Strips the account down to id, display name, and photo. Email,
provider, and timestamps never leave the private surface.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - *PublicProfile: Redacted profile
  - error: Not found or execution failures
*/
func (service *Service) GetPublicProfile(context context.Context, userID string) (*PublicProfile, error) {
	user, err := service.accountRepository.FindByID(context, userID)
	if err != nil {
		return nil, fmt.Errorf("account_service_get_public_profile_failed: %w", err)
	}

	return &PublicProfile{
		ID:          user.ID,
		DisplayName: user.DisplayName,
		PhotoURL:    user.PhotoURL,
	}, nil
}

// UpdateProfileInput defines the mutable subset of user profile fields.
// Nil pointers leave the corresponding field untouched.
type UpdateProfileInput struct {
	DisplayName *string
	PhotoURL    *string
}

/*
UpdateProfile applies a partial set of changes to a user's account metadata.

Description: Fetches the existing user state, overrides provided fields, and
synchronizes the change to persistent storage.

Parameters:
  - context: context.Context
  - userID: string
  - input: UpdateProfileInput

Returns:
  - *auth.User: The updated user profile
  - error: Update or storage failures
*/
func (service *Service) UpdateProfile(context context.Context, userID string, input UpdateProfileInput) (*auth.User, error) {
	user, err := service.accountRepository.FindByID(context, userID)
	if err != nil {
		return nil, fmt.Errorf("account_service_update_lookup_failed: %w", err)
	}

	// Apply delta updates
	if input.DisplayName != nil {
		user.DisplayName = *input.DisplayName
	}

	// Apply delta updates
	if input.PhotoURL != nil {
		user.PhotoURL = *input.PhotoURL
	}

	if err := service.accountRepository.Update(context, user); err != nil {
		return nil, fmt.Errorf("account_service_update_failed: %w", err)
	}

	service.logger.Info("user_profile_updated", slog.String("user_id", userID))

	return user, nil
}

// # Credential & Lifecycle

/*
ChangePassword rotates the user's password after verifying the current one.

Parameters:
  - context: context.Context
  - userID: string
  - currentPassword: string
  - newPassword: string

Returns:
  - error: Unauthorized on current-password mismatch, or storage failures
*/
func (service *Service) ChangePassword(context context.Context, userID, currentPassword, newPassword string) error {
	user, err := service.accountRepository.FindByID(context, userID)
	if err != nil {
		return fmt.Errorf("account_service_change_password_lookup_failed: %w", err)
	}

	// Verify the current password before allowing the change
	if !sec.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return apperr.Unauthorized("Current password is incorrect")
	}

	hashedPassword, err := sec.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("account_service_change_password_hash_failed: %w", err)
	}

	if err := service.accountRepository.UpdatePassword(context, userID, hashedPassword); err != nil {
		return fmt.Errorf("account_service_change_password_update_failed: %w", err)
	}

	service.logger.Info("user_password_changed", slog.String("user_id", userID))

	return nil
}

/*
DeleteAccount permanently removes the user and everything they own.

Description: Hard delete. Library entries, goals, notes, highlights, and
sessions are removed by database-level cascades in the same statement.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - error: Not found or deletion failures
*/
func (service *Service) DeleteAccount(context context.Context, userID string) error {

	// Resolve first so a missing account reports NotFound, not silent success
	if _, err := service.accountRepository.FindByID(context, userID); err != nil {
		return fmt.Errorf("account_service_delete_lookup_failed: %w", err)
	}

	if err := service.accountRepository.Delete(context, userID); err != nil {
		return fmt.Errorf("account_service_delete_failed: %w", err)
	}

	service.logger.Info("user_account_deleted", slog.String("user_id", userID))

	return nil
}
