// Copyright (c) 2026 Alor Foundation. All rights reserved.

package program

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alorfdn/alor/internal/platform/apperr"
	"github.com/alorfdn/alor/internal/upload/imgbb"
)

// memoryRepository is an in-memory program Repository for service tests.
type memoryRepository struct {
	programs map[string]*Program
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{programs: map[string]*Program{}}
}

func (m *memoryRepository) Create(_ context.Context, entity *Program) error {
	now := time.Now()
	entity.CreatedAt = now
	entity.UpdatedAt = now
	m.programs[entity.ID] = entity
	return nil
}

func (m *memoryRepository) ListActive(_ context.Context, limit, offset int) ([]*Program, int, error) {
	var out []*Program
	for _, entity := range m.programs {
		if entity.IsActive {
			out = append(out, entity)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return page(out, limit, offset), len(out), nil
}

func (m *memoryRepository) ListAll(_ context.Context, limit, offset int) ([]*Program, int, error) {
	var out []*Program
	for _, entity := range m.programs {
		out = append(out, entity)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return page(out, limit, offset), len(out), nil
}

func page(programs []*Program, limit, offset int) []*Program {
	if offset >= len(programs) {
		return nil
	}
	end := offset + limit
	if end > len(programs) {
		end = len(programs)
	}
	return programs[offset:end]
}

func (m *memoryRepository) GetByID(_ context.Context, id string) (*Program, error) {
	if entity, ok := m.programs[id]; ok {
		return entity, nil
	}
	return nil, apperr.NotFound("Program")
}

func (m *memoryRepository) Update(_ context.Context, id string, input UpdateInput) (*Program, error) {
	entity, ok := m.programs[id]
	if !ok {
		return nil, apperr.NotFound("Program")
	}
	if input.Title != nil {
		entity.Title = *input.Title
	}
	if input.Description != nil {
		entity.Description = *input.Description
	}
	if input.Photo != nil {
		entity.Photo = *input.Photo
	}
	if input.YoutubeLink != nil {
		entity.YoutubeLink = *input.YoutubeLink
	}
	if input.GalleryImages != nil {
		entity.GalleryImages = *input.GalleryImages
	}
	if input.IsActive != nil {
		entity.IsActive = *input.IsActive
	}
	if input.SortOrder != nil {
		entity.SortOrder = *input.SortOrder
	}
	entity.UpdatedAt = time.Now()
	return entity, nil
}

func (m *memoryRepository) Delete(_ context.Context, id string) error {
	if _, ok := m.programs[id]; !ok {
		return apperr.NotFound("Program")
	}
	delete(m.programs, id)
	return nil
}

// stubUploader hosts every data URL except those containing "broken".
type stubUploader struct {
	uploads int
}

func (s *stubUploader) Upload(_ context.Context, dataURL string) (*imgbb.Result, error) {
	if strings.Contains(dataURL, "broken") {
		return nil, apperr.Upstream("Failed to upload image", nil)
	}
	s.uploads++
	return &imgbb.Result{
		URL:          "https://i.ibb.co/hosted/image.jpg",
		ThumbnailURL: "https://i.ibb.co/hosted/thumb.jpg",
		DeleteURL:    "https://ibb.co/delete/abc",
	}, nil
}

func newTestService(repo *memoryRepository, uploader *stubUploader) *Service {
	return NewService(repo, uploader, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCreate(t *testing.T) {
	t.Run("requires title, description, and photo", func(t *testing.T) {
		service := newTestService(newMemoryRepository(), &stubUploader{})

		_, err := service.Create(context.Background(), CreateInput{Title: "Only title"})

		require.Error(t, err)
		assert.Equal(t, apperr.CodeValidation, apperr.As(err).Code)
	})

	t.Run("fails when the cover photo upload fails", func(t *testing.T) {
		repo := newMemoryRepository()
		service := newTestService(repo, &stubUploader{})

		_, err := service.Create(context.Background(), CreateInput{
			Title:       "Flood Relief",
			Description: "desc",
			Photo:       "data:image/png;base64,broken",
		})

		require.Error(t, err)
		assert.Equal(t, apperr.CodeUpstream, apperr.As(err).Code)
		assert.Empty(t, repo.programs)
	})

	t.Run("skips failed gallery uploads without failing the create", func(t *testing.T) {
		repo := newMemoryRepository()
		uploader := &stubUploader{}
		service := newTestService(repo, uploader)

		entity, err := service.Create(context.Background(), CreateInput{
			Title:       "Winter Blanket Drive",
			Description: "desc",
			Photo:       "https://example.org/cover.jpg",
			GalleryImages: []string{
				"data:image/png;base64,first",
				"data:image/png;base64,broken",
				"https://example.org/already-hosted.jpg",
			},
		})

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://i.ibb.co/hosted/image.jpg",
			"https://example.org/already-hosted.jpg",
		}, entity.GalleryImages)
		assert.Equal(t, 1, uploader.uploads)
	})

	t.Run("sanitizes the description and defaults list fields", func(t *testing.T) {
		service := newTestService(newMemoryRepository(), &stubUploader{})

		entity, err := service.Create(context.Background(), CreateInput{
			Title:       "Education Fund",
			Description: `<p>school</p><script>x()</script>`,
			Photo:       "https://example.org/cover.jpg",
		})

		require.NoError(t, err)
		assert.Equal(t, "<p>school</p>", entity.Description)
		assert.NotNil(t, entity.Objectives)
		assert.NotNil(t, entity.GalleryImages)
		assert.True(t, entity.IsActive)
	})

	t.Run("rejects a non-YouTube video link", func(t *testing.T) {
		service := newTestService(newMemoryRepository(), &stubUploader{})

		_, err := service.Create(context.Background(), CreateInput{
			Title:       "Video Program",
			Description: "desc",
			Photo:       "https://example.org/cover.jpg",
			YoutubeLink: "https://vimeo.com/999",
		})

		require.Error(t, err)
		assert.Equal(t, apperr.CodeValidation, apperr.As(err).Code)
	})
}

func TestListActive_HidesInactivePrograms(t *testing.T) {
	repo := newMemoryRepository()
	service := newTestService(repo, &stubUploader{})

	first, err := service.Create(context.Background(), CreateInput{
		Title:       "Active Program",
		Description: "desc",
		Photo:       "https://example.org/a.jpg",
	})
	require.NoError(t, err)

	second, err := service.Create(context.Background(), CreateInput{
		Title:       "Retired Program",
		Description: "desc",
		Photo:       "https://example.org/b.jpg",
	})
	require.NoError(t, err)

	inactive := false
	_, err = service.Update(context.Background(), second.ID, UpdateInput{IsActive: &inactive})
	require.NoError(t, err)

	active, total, err := service.ListActive(context.Background(), 10, 0)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, 1, total)
	assert.Equal(t, first.ID, active[0].ID)

	all, total, err := service.ListAll(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, 2, total)
}

func TestUpdate_ReplacesGalleryBestEffort(t *testing.T) {
	repo := newMemoryRepository()
	uploader := &stubUploader{}
	service := newTestService(repo, uploader)

	entity, err := service.Create(context.Background(), CreateInput{
		Title:         "Medical Camp",
		Description:   "desc",
		Photo:         "https://example.org/cover.jpg",
		GalleryImages: []string{"https://example.org/old.jpg"},
	})
	require.NoError(t, err)

	gallery := []string{"data:image/png;base64,broken", "https://example.org/new.jpg"}
	updated, err := service.Update(context.Background(), entity.ID, UpdateInput{GalleryImages: &gallery})
	require.NoError(t, err)

	assert.Equal(t, []string{"https://example.org/new.jpg"}, updated.GalleryImages)
	assert.Equal(t, 0, uploader.uploads)
}
