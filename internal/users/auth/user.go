// Copyright (c) 2026 Alor Foundation. All rights reserved.

/*
Package auth implements the user identity layer of the foundation site.

It defines the core User entity and the logic for registration, credential
and Google provider sign-in, and password recovery.

# Architecture

This layer is the source of truth for identity. Entities defined here have
no transport dependencies and encapsulate all account business rules.
*/
package auth

import (
	"time"

	"github.com/alorfdn/alor/internal/platform/sec"
)

// # Domain Entities

// User represents a registered account on the foundation site.
type User struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"` // Empty for provider-authenticated accounts.
	Image        string       `json:"image,omitempty"`
	Role         sec.UserRole `json:"role"`
	Provider     string       `json:"provider"`
	ProviderID   string       `json:"-"`
	LastLoginAt  *time.Time   `json:"lastLoginAt,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// Account providers.
const (
	ProviderCredentials = "credentials"
	ProviderGoogle      = "google"
)

// # Field Identifiers

// Global field names for validation in the authentication domain.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldToken    = "token"
)
