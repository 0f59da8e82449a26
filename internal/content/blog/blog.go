// Copyright (c) 2026 Alor Foundation. All rights reserved.

/*
Package blog implements the foundation's news and story publishing.

Posts carry sanitized rich-text bodies, optional YouTube embeds and image
URL lists, a draft/published status, and a public view counter. Slugs are
derived from titles for stable public links.
*/
package blog

import (
	"context"
	"time"
)

// Publication statuses.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Blog represents one published or drafted post.
type Blog struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	VideoURL    string    `json:"videoUrl,omitempty"`
	Images      []string  `json:"images"`
	AuthorID    string    `json:"author,omitempty"`
	Status      string    `json:"status"`
	Views       int       `json:"views"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Field names for validation in the blog domain.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldVideoURL    = "videoUrl"
	FieldStatus      = "status"
)

// UpdateInput carries the optional fields of a blog update.
// Nil fields are left unchanged; the slug never changes after creation.
type UpdateInput struct {
	Title       *string
	Description *string
	VideoURL    *string
	Images      *[]string
	Status      *string
}

// Filter narrows a blog listing.
type Filter struct {
	Status string // empty means all statuses
}

// Repository defines the data access contract for blogs.
type Repository interface {
	Create(context context.Context, blog *Blog) error
	List(context context.Context, filter Filter, limit, offset int) ([]*Blog, int, error)
	GetByID(context context.Context, id string) (*Blog, error)
	GetBySlug(context context.Context, slug string) (*Blog, error)
	IncrementViews(context context.Context, id string) (int, error)
	Update(context context.Context, id string, input UpdateInput) (*Blog, error)
	ToggleStatus(context context.Context, id string) (*Blog, error)
	Delete(context context.Context, id string) error
}
