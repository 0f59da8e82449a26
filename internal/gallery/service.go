// Copyright (c) 2026 Alor Foundation. All rights reserved.

package gallery

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alorfdn/alor/internal/platform/validate"
	"github.com/alorfdn/alor/internal/upload/imgbb"
	"github.com/alorfdn/alor/pkg/uuidv7"
)

// Service implements the gallery use cases.
type Service struct {
	repo     Repository
	uploader imgbb.Uploader
	logger   *slog.Logger
}

// NewService constructs a gallery [Service].
func NewService(repo Repository, uploader imgbb.Uploader, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		uploader: uploader,
		logger:   logger,
	}
}

// # Topics

/*
CreateTopic validates and persists a new image topic.

Parameters:
  - context: context.Context
  - name: string
  - description: string

Returns:
  - *Topic: Created entity
  - error: Validation or persistence failures
*/
func (service *Service) CreateTopic(context context.Context, name, description string) (*Topic, error) {
	validator := &validate.Validator{}
	validator.Required(FieldName, name).MaxLen(FieldName, name, 100)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	topic := &Topic{
		ID:          uuidv7.New(),
		Name:        name,
		Description: description,
	}

	if err := service.repo.CreateTopic(context, topic); err != nil {
		return nil, fmt.Errorf("gallery_service_create_topic_failed: %w", err)
	}

	service.logger.Info("gallery_topic_created", slog.String("topic_id", topic.ID))
	return topic, nil
}

// ListTopics returns one page of image topics, newest first.
func (service *Service) ListTopics(context context.Context, limit, offset int) ([]*Topic, int, error) {
	return service.repo.ListTopics(context, limit, offset)
}

/*
UpdateTopic applies a partial update to a topic. Nil fields are unchanged.

Parameters:
  - context: context.Context
  - id: string
  - input: UpdateTopicInput

Returns:
  - *Topic: Updated entity
  - error: Validation, NotFound, or persistence failures
*/
func (service *Service) UpdateTopic(context context.Context, id string, input UpdateTopicInput) (*Topic, error) {
	validator := &validate.Validator{}
	if input.Name != nil {
		validator.Required(FieldName, *input.Name).MaxLen(FieldName, *input.Name, 100)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	return service.repo.UpdateTopic(context, id, input)
}

/*
DeleteTopic removes a topic and every image grouped under it.

Description: The image sweep and the topic delete are two sequential
statements. A crash in between orphans nothing visible: images are removed
first, and a re-run of the delete completes the cascade.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: NotFound or persistence failures
*/
func (service *Service) DeleteTopic(context context.Context, id string) error {
	if _, err := service.repo.GetTopic(context, id); err != nil {
		return err
	}

	removed, err := service.repo.DeleteImagesByTopic(context, id)
	if err != nil {
		return fmt.Errorf("gallery_service_cascade_images_failed: %w", err)
	}

	if err := service.repo.DeleteTopic(context, id); err != nil {
		return err
	}

	service.logger.Warn("gallery_topic_deleted",
		slog.String("topic_id", id),
		slog.Int64("images_removed", removed),
	)
	return nil
}

// # Images

// UploadImageInput holds an admin image upload.
type UploadImageInput struct {
	TopicID    string
	Title      string
	Image      string // base64 data URL
	UploadedBy string
}

/*
UploadImage uploads a base64 image to the external host and records the
hosted URLs under a topic.

Description: The upload is atomic with respect to persistence: a rejected
or failed upload aborts the operation and nothing is stored.

Parameters:
  - context: context.Context
  - input: UploadImageInput

Returns:
  - *Image: Created entity with hosted URLs
  - error: Validation, NotFound, upstream, or persistence failures
*/
func (service *Service) UploadImage(context context.Context, input UploadImageInput) (*Image, error) {
	validator := &validate.Validator{}
	validator.Required(FieldTopicID, input.TopicID).
		Required(FieldImage, input.Image).
		MaxLen(FieldTitle, input.Title, 200)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	// The topic must exist before we spend an upstream upload on it.
	if _, err := service.repo.GetTopic(context, input.TopicID); err != nil {
		return nil, err
	}

	hosted, err := service.uploader.Upload(context, input.Image)
	if err != nil {
		return nil, err
	}

	image := &Image{
		ID:           uuidv7.New(),
		TopicID:      input.TopicID,
		Title:        input.Title,
		ImageURL:     hosted.URL,
		ThumbnailURL: hosted.ThumbnailURL,
		DeleteURL:    hosted.DeleteURL,
		UploadedBy:   input.UploadedBy,
	}

	if err := service.repo.CreateImage(context, image); err != nil {
		return nil, fmt.Errorf("gallery_service_create_image_failed: %w", err)
	}

	service.logger.Info("gallery_image_uploaded",
		slog.String("image_id", image.ID),
		slog.String("topic_id", image.TopicID),
	)
	return image, nil
}

// ListImages returns a page of images, optionally filtered by topic.
func (service *Service) ListImages(context context.Context, topicID string, limit, offset int) ([]*Image, int, error) {
	return service.repo.ListImages(context, topicID, limit, offset)
}

// DeleteImage removes a single image record. The hosted copy is left to
// ImgBB's own retention.
func (service *Service) DeleteImage(context context.Context, id string) error {
	if err := service.repo.DeleteImage(context, id); err != nil {
		return err
	}
	service.logger.Warn("gallery_image_deleted", slog.String("image_id", id))
	return nil
}

// # Video Topics

/*
CreateVideoTopic validates and persists a new video topic.

Parameters:
  - context: context.Context
  - name: string
  - description: string

Returns:
  - *VideoTopic: Created entity
  - error: Validation or persistence failures
*/
func (service *Service) CreateVideoTopic(context context.Context, name, description string) (*VideoTopic, error) {
	validator := &validate.Validator{}
	validator.Required(FieldName, name).MaxLen(FieldName, name, 100)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	topic := &VideoTopic{
		ID:          uuidv7.New(),
		Name:        name,
		Description: description,
	}

	if err := service.repo.CreateVideoTopic(context, topic); err != nil {
		return nil, fmt.Errorf("gallery_service_create_video_topic_failed: %w", err)
	}

	return topic, nil
}

// ListVideoTopics returns one page of video topics, newest first.
func (service *Service) ListVideoTopics(context context.Context, limit, offset int) ([]*VideoTopic, int, error) {
	return service.repo.ListVideoTopics(context, limit, offset)
}

/*
DeleteVideoTopic removes a video topic and every video grouped under it.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: NotFound or persistence failures
*/
func (service *Service) DeleteVideoTopic(context context.Context, id string) error {
	if _, err := service.repo.GetVideoTopic(context, id); err != nil {
		return err
	}

	removed, err := service.repo.DeleteVideosByTopic(context, id)
	if err != nil {
		return fmt.Errorf("gallery_service_cascade_videos_failed: %w", err)
	}

	if err := service.repo.DeleteVideoTopic(context, id); err != nil {
		return err
	}

	service.logger.Warn("gallery_video_topic_deleted",
		slog.String("topic_id", id),
		slog.Int64("videos_removed", removed),
	)
	return nil
}

// # Videos

// AddVideoInput holds an admin video registration.
type AddVideoInput struct {
	TopicID    string
	Title      string
	VideoURL   string
	UploadedBy string
}

/*
AddVideo validates and persists a YouTube link under a video topic.

Parameters:
  - context: context.Context
  - input: AddVideoInput

Returns:
  - *Video: Created entity
  - error: Validation, NotFound, or persistence failures
*/
func (service *Service) AddVideo(context context.Context, input AddVideoInput) (*Video, error) {
	validator := &validate.Validator{}
	validator.Required(FieldTopicID, input.TopicID).
		Required(FieldTitle, input.Title).
		MaxLen(FieldTitle, input.Title, 200).
		Required(FieldVideoURL, input.VideoURL).
		YouTubeURL(FieldVideoURL, input.VideoURL)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if _, err := service.repo.GetVideoTopic(context, input.TopicID); err != nil {
		return nil, err
	}

	video := &Video{
		ID:         uuidv7.New(),
		TopicID:    input.TopicID,
		Title:      input.Title,
		VideoURL:   input.VideoURL,
		UploadedBy: input.UploadedBy,
	}

	if err := service.repo.CreateVideo(context, video); err != nil {
		return nil, fmt.Errorf("gallery_service_create_video_failed: %w", err)
	}

	return video, nil
}

// ListVideos returns a page of videos, optionally filtered by topic.
func (service *Service) ListVideos(context context.Context, topicID string, limit, offset int) ([]*Video, int, error) {
	return service.repo.ListVideos(context, topicID, limit, offset)
}

// DeleteVideo removes a single video record.
func (service *Service) DeleteVideo(context context.Context, id string) error {
	return service.repo.DeleteVideo(context, id)
}
