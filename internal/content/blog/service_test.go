// Copyright (c) 2026 Alor Foundation. All rights reserved.

package blog

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
)

// memoryRepository is an in-memory blog Repository for service tests.
type memoryRepository struct {
	posts map[string]*Blog
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{posts: map[string]*Blog{}}
}

func (m *memoryRepository) Create(_ context.Context, post *Blog) error {
	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now
	m.posts[post.ID] = post
	return nil
}

func (m *memoryRepository) List(_ context.Context, filter Filter, limit, offset int) ([]*Blog, int, error) {
	var matched []*Blog
	for _, p := range m.posts {
		if filter.Status == "" || p.Status == filter.Status {
			matched = append(matched, p)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := len(matched)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func (m *memoryRepository) GetByID(_ context.Context, id string) (*Blog, error) {
	if p, ok := m.posts[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, apperr.NotFound("Blog")
}

func (m *memoryRepository) GetBySlug(_ context.Context, slug string) (*Blog, error) {
	for _, p := range m.posts {
		if p.Slug == slug {
			copied := *p
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("Blog")
}

func (m *memoryRepository) IncrementViews(_ context.Context, id string) (int, error) {
	p, ok := m.posts[id]
	if !ok {
		return 0, apperr.NotFound("Blog")
	}
	p.Views++
	return p.Views, nil
}

func (m *memoryRepository) Update(_ context.Context, id string, input UpdateInput) (*Blog, error) {
	p, ok := m.posts[id]
	if !ok {
		return nil, apperr.NotFound("Blog")
	}
	if input.Title != nil {
		p.Title = *input.Title
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.VideoURL != nil {
		p.VideoURL = *input.VideoURL
	}
	if input.Images != nil {
		p.Images = *input.Images
	}
	if input.Status != nil {
		p.Status = *input.Status
	}
	p.UpdatedAt = time.Now()
	copied := *p
	return &copied, nil
}

func (m *memoryRepository) ToggleStatus(_ context.Context, id string) (*Blog, error) {
	p, ok := m.posts[id]
	if !ok {
		return nil, apperr.NotFound("Blog")
	}
	if p.Status == StatusPublished {
		p.Status = StatusDraft
	} else {
		p.Status = StatusPublished
	}
	copied := *p
	return &copied, nil
}

func (m *memoryRepository) Delete(_ context.Context, id string) error {
	if _, ok := m.posts[id]; !ok {
		return apperr.NotFound("Blog")
	}
	delete(m.posts, id)
	return nil
}

func newTestService(repo *memoryRepository) *Service {
	return NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCreate(t *testing.T) {
	t.Run("defaults to published with a derived slug", func(t *testing.T) {
		service := newTestService(newMemoryRepository())

		post, err := service.Create(context.Background(), "author-1", CreateInput{
			Title:       "Winter Relief 2026",
			Description: "<p>Distribution update</p>",
		})

		require.NoError(t, err)
		assert.Equal(t, StatusPublished, post.Status)
		assert.Equal(t, "winter-relief-2026", post.Slug)
		assert.Equal(t, "author-1", post.AuthorID)
		assert.Equal(t, 0, post.Views)
		assert.NotNil(t, post.Images)
	})

	t.Run("sanitizes script tags out of the description", func(t *testing.T) {
		service := newTestService(newMemoryRepository())

		post, err := service.Create(context.Background(), "author-1", CreateInput{
			Title:       "Safe post",
			Description: `<p>hello</p><script>alert("x")</script>`,
		})

		require.NoError(t, err)
		assert.Equal(t, "<p>hello</p>", post.Description)
	})

	t.Run("suffixes the slug when the title is already taken", func(t *testing.T) {
		service := newTestService(newMemoryRepository())

		first, err := service.Create(context.Background(), "author-1", CreateInput{
			Title:       "Annual Report",
			Description: "first",
		})
		require.NoError(t, err)

		second, err := service.Create(context.Background(), "author-1", CreateInput{
			Title:       "Annual Report",
			Description: "second",
		})
		require.NoError(t, err)

		assert.Equal(t, "annual-report", first.Slug)
		assert.NotEqual(t, first.Slug, second.Slug)
		assert.Contains(t, second.Slug, "annual-report-")
	})

	t.Run("rejects missing title and non-YouTube video links", func(t *testing.T) {
		service := newTestService(newMemoryRepository())

		_, err := service.Create(context.Background(), "author-1", CreateInput{
			Description: "body only",
		})
		require.Error(t, err)
		assert.Equal(t, apperr.CodeValidation, apperr.As(err).Code)

		_, err = service.Create(context.Background(), "author-1", CreateInput{
			Title:       "Video post",
			Description: "body",
			VideoURL:    "https://vimeo.com/12345",
		})
		require.Error(t, err)
		assert.Equal(t, apperr.CodeValidation, apperr.As(err).Code)
	})
}

func TestList(t *testing.T) {
	repo := newMemoryRepository()
	service := newTestService(repo)

	for _, input := range []CreateInput{
		{Title: "Published one", Description: "a"},
		{Title: "Published two", Description: "b"},
		{Title: "Draft one", Description: "c", Status: StatusDraft},
	} {
		_, err := service.Create(context.Background(), "author-1", input)
		require.NoError(t, err)
	}

	t.Run("filters by status", func(t *testing.T) {
		drafts, total, err := service.List(context.Background(), Filter{Status: StatusDraft}, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, drafts, 1)
		assert.Equal(t, "Draft one", drafts[0].Title)
	})

	t.Run("returns all statuses without a filter", func(t *testing.T) {
		_, total, err := service.List(context.Background(), Filter{}, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, 3, total)
	})

	t.Run("rejects an unknown status value", func(t *testing.T) {
		_, _, err := service.List(context.Background(), Filter{Status: "archived"}, 10, 0)
		require.Error(t, err)
		assert.Equal(t, apperr.CodeValidation, apperr.As(err).Code)
	})
}

func TestGet_CountsViews(t *testing.T) {
	repo := newMemoryRepository()
	service := newTestService(repo)

	post, err := service.Create(context.Background(), "author-1", CreateInput{
		Title:       "Counted",
		Description: "body",
	})
	require.NoError(t, err)

	first, err := service.Get(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Views)

	second, err := service.GetBySlug(context.Background(), post.Slug)
	require.NoError(t, err)
	assert.Equal(t, 2, second.Views)
}

func TestToggleStatus(t *testing.T) {
	repo := newMemoryRepository()
	service := newTestService(repo)

	post, err := service.Create(context.Background(), "author-1", CreateInput{
		Title:       "Toggled",
		Description: "body",
	})
	require.NoError(t, err)

	toggled, message, err := service.ToggleStatus(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusDraft, toggled.Status)
	assert.Equal(t, "Blog status changed to draft", message)

	toggled, message, err = service.ToggleStatus(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusPublished, toggled.Status)
	assert.Equal(t, "Blog status changed to published", message)
}

func TestUpdate_PartialFields(t *testing.T) {
	repo := newMemoryRepository()
	service := newTestService(repo)

	post, err := service.Create(context.Background(), "author-1", CreateInput{
		Title:       "Original title",
		Description: "original body",
		VideoURL:    "https://www.youtube.com/watch?v=abc123",
	})
	require.NoError(t, err)

	title := "Updated title"
	updated, err := service.Update(context.Background(), post.ID, UpdateInput{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "Updated title", updated.Title)
	assert.Equal(t, "original body", updated.Description)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc123", updated.VideoURL)

	dirty := `new <script>bad()</script>body`
	updated, err = service.Update(context.Background(), post.ID, UpdateInput{Description: &dirty})
	require.NoError(t, err)
	assert.Equal(t, "new body", updated.Description)
}
