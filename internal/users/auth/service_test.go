// Copyright (c) 2026 Alor Foundation. All rights reserved.

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alorfdn/alor/internal/platform/apperr"
	"github.com/alorfdn/alor/internal/platform/mailer"
	"github.com/alorfdn/alor/internal/platform/sec"
)

// memoryUserRepository is an in-memory UserRepository for service tests.
type memoryUserRepository struct {
	byEmail map[string]*User
	byID    map[string]*User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{
		byEmail: map[string]*User{},
		byID:    map[string]*User{},
	}
}

func (m *memoryUserRepository) FindByID(_ context.Context, id string) (*User, error) {
	if u, ok := m.byID[id]; ok {
		return u, nil
	}
	return nil, apperr.NotFound("User")
}

func (m *memoryUserRepository) FindByEmail(_ context.Context, email string) (*User, error) {
	if u, ok := m.byEmail[email]; ok {
		return u, nil
	}
	return nil, apperr.NotFound("User")
}

func (m *memoryUserRepository) Create(_ context.Context, user *User) error {
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	m.byEmail[user.Email] = user
	m.byID[user.ID] = user
	return nil
}

func (m *memoryUserRepository) UpdateLastLogin(_ context.Context, userID string, at time.Time) error {
	u, ok := m.byID[userID]
	if !ok {
		return apperr.NotFound("User")
	}
	u.LastLoginAt = &at
	return nil
}

func (m *memoryUserRepository) UpdatePassword(_ context.Context, userID, newHash string) error {
	u, ok := m.byID[userID]
	if !ok {
		return apperr.NotFound("User")
	}
	u.PasswordHash = newHash
	return nil
}

func (m *memoryUserRepository) IdentityExists(_ context.Context, userID string) (bool, error) {
	_, ok := m.byID[userID]
	return ok, nil
}

// memoryResetTokens is an in-memory ResetTokenRepository.
type memoryResetTokens struct {
	tokens map[string]string
}

func newMemoryResetTokens() *memoryResetTokens {
	return &memoryResetTokens{tokens: map[string]string{}}
}

func (m *memoryResetTokens) Set(_ context.Context, token, userID string, _ time.Duration) error {
	m.tokens[token] = userID
	return nil
}

func (m *memoryResetTokens) Get(_ context.Context, token string) (string, error) {
	if id, ok := m.tokens[token]; ok {
		return id, nil
	}
	return "", apperr.NotFound("Reset token is invalid or expired")
}

func (m *memoryResetTokens) Delete(_ context.Context, token string) error {
	delete(m.tokens, token)
	return nil
}

// staticTokenProvider returns a fixed token string.
type staticTokenProvider struct{}

func (staticTokenProvider) GenerateAccessToken(userID, name, role string, _ time.Duration) (string, error) {
	return "token-" + userID, nil
}

// recordingMailer captures sent emails.
type recordingMailer struct {
	sent []mailer.Email
}

func (r *recordingMailer) Enabled() bool { return true }

func (r *recordingMailer) Send(email mailer.Email) error {
	r.sent = append(r.sent, email)
	return nil
}

func newTestService() (*Service, *memoryUserRepository, *memoryResetTokens, *recordingMailer) {
	users := newMemoryUserRepository()
	resets := newMemoryResetTokens()
	mail := &recordingMailer{}
	service := NewService(users, resets, staticTokenProvider{}, mail)
	return service, users, resets, mail
}

func TestRegister(t *testing.T) {
	service, users, _, _ := newTestService()
	ctx := context.Background()

	user, err := service.Register(ctx, RegisterInput{
		Name:     "Amina",
		Email:    "amina@example.org",
		Password: "hunter22",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, sec.RoleUser, user.Role)
	assert.Equal(t, ProviderCredentials, user.Provider)
	assert.Nil(t, user.LastLoginAt, "registration must not count as a login")
	assert.True(t, sec.CheckPasswordHash("hunter22", user.PasswordHash))

	// Duplicate email must be rejected with a conflict.
	_, err = service.Register(ctx, RegisterInput{
		Name:     "Other",
		Email:    "amina@example.org",
		Password: "different",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeConflict, apperr.As(err).Code)

	assert.Len(t, users.byID, 1)
}

func TestLogin(t *testing.T) {
	service, _, _, _ := newTestService()
	ctx := context.Background()

	registered, err := service.Register(ctx, RegisterInput{
		Name:     "Amina",
		Email:    "amina@example.org",
		Password: "hunter22",
	})
	require.NoError(t, err)

	t.Run("valid_credentials", func(t *testing.T) {
		session, err := service.Login(ctx, LoginInput{Email: "amina@example.org", Password: "hunter22"})
		require.NoError(t, err)

		assert.Equal(t, "token-"+registered.ID, session.AccessToken)
		require.NotNil(t, session.User.LastLoginAt)
		assert.WithinDuration(t, time.Now(), *session.User.LastLoginAt, 5*time.Second)
	})

	t.Run("wrong_password", func(t *testing.T) {
		_, err := service.Login(ctx, LoginInput{Email: "amina@example.org", Password: "wrong"})
		require.Error(t, err)
		assert.Equal(t, apperr.CodeUnauthorized, apperr.As(err).Code)
	})

	t.Run("unknown_email", func(t *testing.T) {
		_, err := service.Login(ctx, LoginInput{Email: "nobody@example.org", Password: "hunter22"})
		require.Error(t, err)
		assert.Equal(t, apperr.CodeUnauthorized, apperr.As(err).Code)
	})
}

func TestGoogleSignIn(t *testing.T) {
	service, users, _, _ := newTestService()
	ctx := context.Background()

	input := GoogleInput{
		Name:       "Amina",
		Email:      "amina@example.org",
		Image:      "https://lh3.example.com/a/photo",
		ProviderID: "goog-123",
	}

	// First contact creates a provider account without a password.
	session, err := service.GoogleSignIn(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, ProviderGoogle, session.User.Provider)
	assert.Empty(t, session.User.PasswordHash)
	assert.NotNil(t, session.User.LastLoginAt)
	assert.Len(t, users.byID, 1)

	// Second sign-in reuses the existing account.
	_, err = service.GoogleSignIn(ctx, input)
	require.NoError(t, err)
	assert.Len(t, users.byID, 1)

	// A provider account cannot use password login.
	_, err = service.Login(ctx, LoginInput{Email: input.Email, Password: "anything"})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeUnauthorized, apperr.As(err).Code)
}

func TestPasswordReset(t *testing.T) {
	service, _, resets, mail := newTestService()
	ctx := context.Background()

	_, err := service.Register(ctx, RegisterInput{
		Name:     "Amina",
		Email:    "amina@example.org",
		Password: "hunter22",
	})
	require.NoError(t, err)

	// Unknown emails are silently accepted to prevent enumeration.
	require.NoError(t, service.RequestPasswordReset(ctx, "nobody@example.org"))
	assert.Empty(t, mail.sent)

	require.NoError(t, service.RequestPasswordReset(ctx, "amina@example.org"))
	require.Len(t, mail.sent, 1)
	require.Len(t, resets.tokens, 1)

	var token string
	for stored := range resets.tokens {
		token = stored
	}

	require.NoError(t, service.ResetPassword(ctx, token, "newpassword"))

	// Token is single-use.
	err = service.ResetPassword(ctx, token, "again")
	require.Error(t, err)
	assert.Equal(t, apperr.CodeNotFound, apperr.As(err).Code)

	// New password works, old one does not.
	_, err = service.Login(ctx, LoginInput{Email: "amina@example.org", Password: "newpassword"})
	require.NoError(t, err)
	_, err = service.Login(ctx, LoginInput{Email: "amina@example.org", Password: "hunter22"})
	require.Error(t, err)
}
