// Copyright (c) 2026 Alor Foundation. All rights reserved.

package gallery

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alorfdn/alor/internal/platform/apperr"
	"github.com/alorfdn/alor/internal/upload/imgbb"
)

// memoryRepository is an in-memory gallery Repository for service tests.
type memoryRepository struct {
	topics      map[string]*Topic
	images      map[string]*Image
	videoTopics map[string]*VideoTopic
	videos      map[string]*Video
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		topics:      map[string]*Topic{},
		images:      map[string]*Image{},
		videoTopics: map[string]*VideoTopic{},
		videos:      map[string]*Video{},
	}
}

func (m *memoryRepository) CreateTopic(_ context.Context, topic *Topic) error {
	topic.CreatedAt = time.Now()
	m.topics[topic.ID] = topic
	return nil
}

func (m *memoryRepository) ListTopics(_ context.Context, limit, offset int) ([]*Topic, int, error) {
	var out []*Topic
	for _, t := range m.topics {
		out = append(out, t)
	}
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

func (m *memoryRepository) GetTopic(_ context.Context, id string) (*Topic, error) {
	if t, ok := m.topics[id]; ok {
		return t, nil
	}
	return nil, apperr.NotFound("Topic")
}

func (m *memoryRepository) UpdateTopic(_ context.Context, id string, input UpdateTopicInput) (*Topic, error) {
	t, ok := m.topics[id]
	if !ok {
		return nil, apperr.NotFound("Topic")
	}
	if input.Name != nil {
		t.Name = *input.Name
	}
	if input.Description != nil {
		t.Description = *input.Description
	}
	return t, nil
}

func (m *memoryRepository) DeleteTopic(_ context.Context, id string) error {
	if _, ok := m.topics[id]; !ok {
		return apperr.NotFound("Topic")
	}
	delete(m.topics, id)
	return nil
}

func (m *memoryRepository) CreateImage(_ context.Context, image *Image) error {
	image.CreatedAt = time.Now()
	m.images[image.ID] = image
	return nil
}

func (m *memoryRepository) ListImages(_ context.Context, topicID string, _, _ int) ([]*Image, int, error) {
	var out []*Image
	for _, img := range m.images {
		if topicID == "" || img.TopicID == topicID {
			out = append(out, img)
		}
	}
	return out, len(out), nil
}

func (m *memoryRepository) DeleteImage(_ context.Context, id string) error {
	if _, ok := m.images[id]; !ok {
		return apperr.NotFound("Image")
	}
	delete(m.images, id)
	return nil
}

func (m *memoryRepository) DeleteImagesByTopic(_ context.Context, topicID string) (int64, error) {
	var removed int64
	for id, img := range m.images {
		if img.TopicID == topicID {
			delete(m.images, id)
			removed++
		}
	}
	return removed, nil
}

func (m *memoryRepository) CreateVideoTopic(_ context.Context, topic *VideoTopic) error {
	topic.CreatedAt = time.Now()
	m.videoTopics[topic.ID] = topic
	return nil
}

func (m *memoryRepository) ListVideoTopics(_ context.Context, limit, offset int) ([]*VideoTopic, int, error) {
	var out []*VideoTopic
	for _, t := range m.videoTopics {
		out = append(out, t)
	}
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

func (m *memoryRepository) GetVideoTopic(_ context.Context, id string) (*VideoTopic, error) {
	if t, ok := m.videoTopics[id]; ok {
		return t, nil
	}
	return nil, apperr.NotFound("Video topic")
}

func (m *memoryRepository) DeleteVideoTopic(_ context.Context, id string) error {
	if _, ok := m.videoTopics[id]; !ok {
		return apperr.NotFound("Video topic")
	}
	delete(m.videoTopics, id)
	return nil
}

func (m *memoryRepository) CreateVideo(_ context.Context, video *Video) error {
	video.CreatedAt = time.Now()
	m.videos[video.ID] = video
	return nil
}

func (m *memoryRepository) ListVideos(_ context.Context, topicID string, _, _ int) ([]*Video, int, error) {
	var out []*Video
	for _, v := range m.videos {
		if topicID == "" || v.TopicID == topicID {
			out = append(out, v)
		}
	}
	return out, len(out), nil
}

func (m *memoryRepository) DeleteVideo(_ context.Context, id string) error {
	if _, ok := m.videos[id]; !ok {
		return apperr.NotFound("Video")
	}
	delete(m.videos, id)
	return nil
}

func (m *memoryRepository) DeleteVideosByTopic(_ context.Context, topicID string) (int64, error) {
	var removed int64
	for id, v := range m.videos {
		if v.TopicID == topicID {
			delete(m.videos, id)
			removed++
		}
	}
	return removed, nil
}

// stubUploader returns a fixed result, or an error when rejected.
type stubUploader struct {
	rejectWith error
	uploads    int
}

func (s *stubUploader) Upload(_ context.Context, dataURL string) (*imgbb.Result, error) {
	if s.rejectWith != nil {
		return nil, s.rejectWith
	}
	s.uploads++
	return &imgbb.Result{
		URL:          "https://i.ibb.co/hosted.png",
		ThumbnailURL: "https://i.ibb.co/thumb.png",
		DeleteURL:    "https://ibb.co/delete",
	}, nil
}

func newTestService(uploader *stubUploader) (*Service, *memoryRepository) {
	repo := newMemoryRepository()
	service := NewService(repo, uploader, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return service, repo
}

func TestDeleteTopic_CascadesImages(t *testing.T) {
	service, repo := newTestService(&stubUploader{})
	ctx := context.Background()

	topic, err := service.CreateTopic(ctx, "Field Visits", "")
	require.NoError(t, err)
	other, err := service.CreateTopic(ctx, "Events", "")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := service.UploadImage(ctx, UploadImageInput{
			TopicID: topic.ID,
			Image:   "data:image/png;base64,aGVsbG8=",
		})
		require.NoError(t, err)
	}
	kept, err := service.UploadImage(ctx, UploadImageInput{
		TopicID: other.ID,
		Image:   "data:image/png;base64,aGVsbG8=",
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteTopic(ctx, topic.ID))

	_, ok := repo.topics[topic.ID]
	assert.False(t, ok, "topic removed")
	assert.Len(t, repo.images, 1, "only the other topic's image survives")
	_, ok = repo.images[kept.ID]
	assert.True(t, ok)

	// Deleting a missing topic is a 404, not a silent success.
	err = service.DeleteTopic(ctx, topic.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeNotFound, apperr.As(err).Code)
}

func TestUploadImage_AtomicOnUploadFailure(t *testing.T) {
	uploader := &stubUploader{rejectWith: apperr.Upstream("Invalid base64 string", nil)}
	service, repo := newTestService(uploader)
	ctx := context.Background()

	topic, err := service.CreateTopic(ctx, "Field Visits", "")
	require.NoError(t, err)

	_, err = service.UploadImage(ctx, UploadImageInput{
		TopicID: topic.ID,
		Image:   "data:image/png;base64,broken",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeUpstream, apperr.As(err).Code)
	assert.Empty(t, repo.images, "nothing persisted when the host rejects")
}

func TestUploadImage_UnknownTopicSkipsUpload(t *testing.T) {
	uploader := &stubUploader{}
	service, _ := newTestService(uploader)

	_, err := service.UploadImage(context.Background(), UploadImageInput{
		TopicID: "missing",
		Image:   "data:image/png;base64,aGVsbG8=",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeNotFound, apperr.As(err).Code)
	assert.Zero(t, uploader.uploads, "no upstream call for an unknown topic")
}

func TestAddVideo(t *testing.T) {
	service, repo := newTestService(&stubUploader{})
	ctx := context.Background()

	topic, err := service.CreateVideoTopic(ctx, "Documentaries", "")
	require.NoError(t, err)

	t.Run("valid_youtube_url", func(t *testing.T) {
		video, err := service.AddVideo(ctx, AddVideoInput{
			TopicID:  topic.ID,
			Title:    "Annual Report",
			VideoURL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, video.ID)
	})

	t.Run("rejects_non_youtube_url", func(t *testing.T) {
		_, err := service.AddVideo(ctx, AddVideoInput{
			TopicID:  topic.ID,
			Title:    "Elsewhere",
			VideoURL: "https://vimeo.com/123456",
		})
		require.Error(t, err)
		assert.Equal(t, apperr.CodeValidation, apperr.As(err).Code)
	})

	t.Run("cascade_on_video_topic_delete", func(t *testing.T) {
		require.NoError(t, service.DeleteVideoTopic(ctx, topic.ID))
		assert.Empty(t, repo.videos)
	})
}
