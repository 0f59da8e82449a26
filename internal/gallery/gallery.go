// Copyright (c) 2026 Alor Foundation. All rights reserved.

/*
Package gallery implements the photo and video gallery.

Photos are grouped under topics and hosted externally on ImgBB; only the
hosted URLs are stored. Videos are YouTube links grouped under their own
video topics. Deleting a topic cascades to its grouped items.
*/
package gallery

import (
	"context"
	"time"
)

// # Domain Entities

// Topic groups gallery images.
type Topic struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Image is one externally hosted gallery photo.
type Image struct {
	ID           string    `json:"id"`
	TopicID      string    `json:"topicId"`
	Title        string    `json:"title,omitempty"`
	ImageURL     string    `json:"imageUrl"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	DeleteURL    string    `json:"-"` // Kept server-side for future host cleanup.
	UploadedBy   string    `json:"uploadedBy,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// VideoTopic groups gallery videos.
type VideoTopic struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Video is one YouTube link in the gallery.
type Video struct {
	ID         string    `json:"id"`
	TopicID    string    `json:"topicId"`
	Title      string    `json:"title"`
	VideoURL   string    `json:"videoUrl"`
	UploadedBy string    `json:"uploadedBy,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Field names for validation in the gallery domain.
const (
	FieldName     = "name"
	FieldTitle    = "title"
	FieldTopicID  = "topicId"
	FieldImage    = "image"
	FieldVideoURL = "videoUrl"
)

// UpdateTopicInput carries the optional fields of a topic update.
// Nil fields are left unchanged.
type UpdateTopicInput struct {
	Name        *string
	Description *string
}

// # Data Access

// Repository defines the data access contract for the gallery.
type Repository interface {
	// Topics
	CreateTopic(context context.Context, topic *Topic) error
	ListTopics(context context.Context, limit, offset int) ([]*Topic, int, error)
	GetTopic(context context.Context, id string) (*Topic, error)
	UpdateTopic(context context.Context, id string, input UpdateTopicInput) (*Topic, error)
	DeleteTopic(context context.Context, id string) error

	// Images
	CreateImage(context context.Context, image *Image) error
	ListImages(context context.Context, topicID string, limit, offset int) ([]*Image, int, error)
	DeleteImage(context context.Context, id string) error
	DeleteImagesByTopic(context context.Context, topicID string) (int64, error)

	// Video topics
	CreateVideoTopic(context context.Context, topic *VideoTopic) error
	ListVideoTopics(context context.Context, limit, offset int) ([]*VideoTopic, int, error)
	GetVideoTopic(context context.Context, id string) (*VideoTopic, error)
	DeleteVideoTopic(context context.Context, id string) error

	// Videos
	CreateVideo(context context.Context, video *Video) error
	ListVideos(context context.Context, topicID string, limit, offset int) ([]*Video, int, error)
	DeleteVideo(context context.Context, id string) error
	DeleteVideosByTopic(context context.Context, topicID string) (int64, error)
}
