// Copyright (c) 2026 BookLog. All rights reserved.

/*
Package auth implements the user identity layer.

It defines the core domain entity (User) and the logic for registration,
credential verification, and access-token issuance.

# Architecture

This layer is the "Truth" of the system. Entities defined here have no external
dependencies and encapsulate all business rules related to user identity.
*/
package auth

import "time"

// # Domain Entities

// AuthProvider identifies the identity source of an account.
type AuthProvider string

const (
	ProviderEmail  AuthProvider = "EMAIL"
	ProviderGoogle AuthProvider = "GOOGLE"
	ProviderApple  AuthProvider = "APPLE"
	ProviderGuest  AuthProvider = "GUEST"
)

// User represents a registered member of the BookLog platform.
type User struct {
	ID           string       `json:"id"`
	Email        string       `json:"email"`
	DisplayName  string       `json:"display_name"`
	PasswordHash string       `json:"-"` // Explicitly omitted from JSON for security.
	PhotoURL     string       `json:"photo_url,omitempty"`
	AuthProvider AuthProvider `json:"auth_provider"`
	LastLoginAt  *time.Time   `json:"last_login_at,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// # Field Identifiers

// Global field names for validation and identity mapping in the authentication domain.
const (
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldDisplayName = "display_name"
	FieldToken       = "token"
	FieldAccessToken = "access_token"
	FieldTokenType   = "token_type"
	FieldExpiresIn   = "expires_in"
	FieldUser        = "user"
	FieldMessage     = "message"

	// MinPasswordLength is the weakest password accepted at registration
	// and password change.
	MinPasswordLength = 6
)
