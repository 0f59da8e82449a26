// Copyright (c) 2026 Alor Foundation. All rights reserved.

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/alorfdn/alor/internal/platform/apperr"
	"github.com/alorfdn/alor/internal/platform/mailer"
	"github.com/alorfdn/alor/internal/platform/sec"
	"github.com/alorfdn/alor/pkg/uuidv7"
)

// # Contracts & Types

// TokenProvider defines the contract for generating access tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the given user.
	//
	// # Parameters
	//   - userID: The ID of the account.
	//   - name: The display name of the account.
	//   - role: The role of the account.
	//   - timeToLive: The duration before the token expires.
	//
	// # Returns
	//   - A signed JWT string, or an err if signing fails.
	GenerateAccessToken(userID, name, role string, timeToLive time.Duration) (string, error)
}

// Service implements the account authentication use cases.
type Service struct {
	userRepository       UserRepository
	resetTokenRepository ResetTokenRepository
	tokenProvider        TokenProvider
	mail                 mailer.Sender
}

// NewService constructs a new auth [Service] with necessary dependencies.
func NewService(
	userRepo UserRepository,
	resetRepo ResetTokenRepository,
	tokenProv TokenProvider,
	mail mailer.Sender,
) *Service {
	return &Service{
		userRepository:       userRepo,
		resetTokenRepository: resetRepo,
		tokenProvider:        tokenProv,
		mail:                 mail,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

/*
Register validates, hashes, and persists a brand new user account.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *User: Created entity
  - error: Conflict (if the email is taken) or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*User, error) {

	// Verify email uniqueness. Return a client-safe Conflict err.
	_, err := service.userRepository.FindByEmail(context, input.Email)
	if err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}

	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// Time-sortable ID to prevent PG index fragmentation.
	user := &User{
		ID:           uuidv7.New(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         sec.RoleUser,
		Provider:     ProviderCredentials,
	}

	if err := service.userRepository.Create(context, user); err != nil {
		return nil, fmt.Errorf("auth_service_register_failed: %w", err)
	}

	return user, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string
	Password string
}

// AuthSession represents a successfully established stateless session.
type AuthSession struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *User
}

/*
Login validates user credentials and issues an access token.

Description: Verifies identity, performs constant-time password comparison
via bcrypt, records the sign-in time, and returns a signed JWT.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *AuthSession: Transport-ready session
  - error: Unauthorized or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*AuthSession, error) {
	user, err := service.userRepository.FindByEmail(context, input.Email)

	// Generic message on every failure path to prevent enumeration.
	if err != nil {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	// Provider accounts have no password hash and cannot log in with one.
	if user.PasswordHash == "" || !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	return service.establishSession(context, user)
}

// GoogleInput carries the provider profile forwarded by the frontend
// after a completed Google OAuth exchange.
type GoogleInput struct {
	Name       string
	Email      string
	Image      string
	ProviderID string
}

/*
GoogleSignIn signs a Google-authenticated user in, creating the account
on first contact (provider upsert).

Parameters:
  - context: context.Context
  - input: GoogleInput

Returns:
  - *AuthSession: Transport-ready session
  - error: Storage or token failures
*/
func (service *Service) GoogleSignIn(context context.Context, input GoogleInput) (*AuthSession, error) {
	user, err := service.userRepository.FindByEmail(context, input.Email)
	if err != nil {
		// First contact: enroll as a provider account with no password.
		user = &User{
			ID:         uuidv7.New(),
			Name:       input.Name,
			Email:      input.Email,
			Image:      input.Image,
			Role:       sec.RoleUser,
			Provider:   ProviderGoogle,
			ProviderID: input.ProviderID,
		}
		if err := service.userRepository.Create(context, user); err != nil {
			return nil, fmt.Errorf("auth_service_google_create_failed: %w", err)
		}
	}

	return service.establishSession(context, user)
}

// establishSession records the sign-in time and issues the access token.
func (service *Service) establishSession(context context.Context, user *User) (*AuthSession, error) {
	now := time.Now()
	if err := service.userRepository.UpdateLastLogin(context, user.ID, now); err != nil {
		return nil, fmt.Errorf("auth_service_last_login_failed: %w", err)
	}
	user.LastLoginAt = &now

	accessToken, err := service.tokenProvider.GenerateAccessToken(user.ID, user.Name, string(user.Role), AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	return &AuthSession{
		AccessToken: accessToken,
		ExpiresAt:   now.Add(AccessTokenTTL),
		User:        user,
	}, nil
}

/*
Me returns the authenticated user's current profile.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - *User: Hydrated entity
  - error: NotFound or retrieval failures
*/
func (service *Service) Me(context context.Context, userID string) (*User, error) {
	return service.userRepository.FindByID(context, userID)
}

// # Password Recovery

/*
RequestPasswordReset initiates the forgot-password flow.

Description: Generates a secure token, saves it to Redis, and emails it to
the account holder. A missing account is treated as success to prevent
user enumeration.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - error: Generation or storage errors
*/
func (service *Service) RequestPasswordReset(context context.Context, email string) error {
	user, err := service.userRepository.FindByEmail(context, email)
	if err != nil {
		return nil
	}

	token, err := sec.GenerateSecureToken(ResetTokenLength)
	if err != nil {
		return fmt.Errorf("auth_service_generate_reset_token_failed: %w", err)
	}

	if err := service.resetTokenRepository.Set(context, token, user.ID, ResetTokenTTL); err != nil {
		return fmt.Errorf("auth_service_save_reset_token_failed: %w", err)
	}

	// Delivery failure is not surfaced to the caller; the token remains
	// valid and support can re-trigger the flow.
	_ = service.mail.Send(mailer.Email{
		To:      []string{user.Email},
		Subject: "Reset your Alor Foundation password",
		HTMLBody: fmt.Sprintf(
			"<p>Hello %s,</p><p>Use this code to reset your password within the next hour:</p><p><strong>%s</strong></p><p>If you did not request a reset, you can ignore this email.</p>",
			user.Name, token,
		),
	})

	return nil
}

/*
ResetPassword completes the forgot-password flow.

Description: Verifies the token, hashes the new password, updates the
account, and consumes the token.

Parameters:
  - context: context.Context
  - token: string
  - newPassword: string

Returns:
  - error: Validation or update failures
*/
func (service *Service) ResetPassword(context context.Context, token, newPassword string) error {
	userID, err := service.resetTokenRepository.Get(context, token)
	if err != nil {
		return err
	}

	hashedPassword, err := sec.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("auth_service_reset_password_hash_failed: %w", err)
	}

	if err := service.userRepository.UpdatePassword(context, userID, hashedPassword); err != nil {
		return fmt.Errorf("auth_service_reset_password_update_failed: %w", err)
	}

	_ = service.resetTokenRepository.Delete(context, token)

	return nil
}
