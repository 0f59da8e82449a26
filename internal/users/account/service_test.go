// Copyright (c) 2026 Alor Foundation. All rights reserved.

package account

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alorfdn/alor/internal/platform/apperr"
	"github.com/alorfdn/alor/internal/platform/sec"
	"github.com/alorfdn/alor/internal/users/auth"
)

// memoryRepository is an in-memory Repository for service tests.
type memoryRepository struct {
	users map[string]*auth.User
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{users: map[string]*auth.User{}}
}

func (m *memoryRepository) List(_ context.Context, limit, offset int) ([]*auth.User, int, error) {
	var out []*auth.User
	for _, u := range m.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	total := len(out)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return out[offset:end], total, nil
}

func (m *memoryRepository) UpdateRole(_ context.Context, userID string, role sec.UserRole) (*auth.User, error) {
	u, ok := m.users[userID]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	u.Role = role
	return u, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seedUser(repo *memoryRepository, id, name string, createdAt time.Time) {
	repo.users[id] = &auth.User{
		ID:        id,
		Name:      name,
		Email:     name + "@example.org",
		Role:      sec.RoleUser,
		Provider:  auth.ProviderCredentials,
		CreatedAt: createdAt,
	}
}

func TestList_PaginatesNewestFirst(t *testing.T) {
	repo := newMemoryRepository()
	now := time.Now()
	seedUser(repo, "u1", "oldest", now.Add(-3*time.Hour))
	seedUser(repo, "u2", "middle", now.Add(-2*time.Hour))
	seedUser(repo, "u3", "newest", now.Add(-1*time.Hour))

	service := NewService(repo, discardLogger())

	users, total, err := service.List(context.Background(), 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, users, 2)
	assert.Equal(t, "newest", users[0].Name)
	assert.Equal(t, "middle", users[1].Name)

	users, total, err = service.List(context.Background(), 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, users, 1)
	assert.Equal(t, "oldest", users[0].Name)
}

func TestUpdateRole(t *testing.T) {
	t.Run("promotes a member to admin", func(t *testing.T) {
		repo := newMemoryRepository()
		seedUser(repo, "u1", "member", time.Now())

		service := NewService(repo, discardLogger())

		user, err := service.UpdateRole(context.Background(), "u1", sec.RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, sec.RoleAdmin, user.Role)
		assert.Equal(t, sec.RoleAdmin, repo.users["u1"].Role)
	})

	t.Run("rejects unknown roles", func(t *testing.T) {
		repo := newMemoryRepository()
		seedUser(repo, "u1", "member", time.Now())

		service := NewService(repo, discardLogger())

		_, err := service.UpdateRole(context.Background(), "u1", sec.UserRole("superuser"))
		require.Error(t, err)
		assert.Equal(t, apperr.CodeValidation, apperr.As(err).Code)
		assert.Equal(t, sec.RoleUser, repo.users["u1"].Role)
	})

	t.Run("missing user", func(t *testing.T) {
		service := NewService(newMemoryRepository(), discardLogger())

		_, err := service.UpdateRole(context.Background(), "ghost", sec.RoleAdmin)
		require.Error(t, err)
		assert.Equal(t, apperr.CodeNotFound, apperr.As(err).Code)
	})
}
