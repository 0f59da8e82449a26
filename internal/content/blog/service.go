// Copyright (c) 2026 Alor Foundation. All rights reserved.

package blog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/microcosm-cc/bluemonday"

	"github.com/alorfdn/alor/internal/platform/validate"
	"github.com/alorfdn/alor/pkg/slug"
	"github.com/alorfdn/alor/pkg/uuidv7"
)

// sanitizer strips unsafe markup from blog bodies while keeping the
// formatting tags the editor produces.
var sanitizer = bluemonday.UGCPolicy()

// Service implements the blog use cases.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a blog [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// CreateInput carries the fields of a new blog post.
type CreateInput struct {
	Title       string
	Description string
	VideoURL    string
	Images      []string
	Status      string
}

/*
Create validates, sanitizes, and persists a new blog post.

The slug is derived from the title. If another post already claims it,
a short random suffix is appended so public links stay unique.

Parameters:
  - context: context.Context
  - authorID: string - The authenticated author
  - input: CreateInput

Returns:
  - *Blog: Created entity
  - error: Validation or persistence failures
*/
func (service *Service) Create(context context.Context, authorID string, input CreateInput) (*Blog, error) {
	if input.Status == "" {
		input.Status = StatusPublished
	}

	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).MaxLen(FieldTitle, input.Title, 200)
	validator.Required(FieldDescription, input.Description)
	validator.OneOf(FieldStatus, input.Status, StatusDraft, StatusPublished)
	if input.VideoURL != "" {
		validator.YouTubeURL(FieldVideoURL, input.VideoURL)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	post := &Blog{
		ID:          uuidv7.New(),
		Title:       input.Title,
		Slug:        service.uniqueSlug(context, input.Title),
		Description: sanitizer.Sanitize(input.Description),
		VideoURL:    input.VideoURL,
		Images:      input.Images,
		AuthorID:    authorID,
		Status:      input.Status,
	}
	if post.Images == nil {
		post.Images = []string{}
	}

	if err := service.repo.Create(context, post); err != nil {
		return nil, fmt.Errorf("blog_service_create_failed: %w", err)
	}

	service.logger.Info("blog_created",
		slog.String("blog_id", post.ID),
		slog.String("slug", post.Slug),
		slog.String("status", post.Status))
	return post, nil
}

// uniqueSlug derives a slug from the title, suffixing it when taken.
func (service *Service) uniqueSlug(context context.Context, title string) string {
	base := slug.From(title)
	if base == "" {
		base = "post"
	}

	if _, err := service.repo.GetBySlug(context, base); err != nil {
		return base
	}
	return base + "-" + uuidv7.New()[:8]
}

/*
List returns blog posts newest first, optionally narrowed by status.

Parameters:
  - context: context.Context
  - filter: Filter
  - limit: int
  - offset: int

Returns:
  - []*Blog: One page of posts
  - int: Total matching posts
  - error: Persistence failures
*/
func (service *Service) List(context context.Context, filter Filter, limit, offset int) ([]*Blog, int, error) {
	if filter.Status != "" {
		validator := &validate.Validator{}
		validator.OneOf(FieldStatus, filter.Status, StatusDraft, StatusPublished)
		if err := validator.Err(); err != nil {
			return nil, 0, err
		}
	}

	return service.repo.List(context, filter, limit, offset)
}

// Get returns one post by id and counts the read as a view.
func (service *Service) Get(context context.Context, id string) (*Blog, error) {
	post, err := service.repo.GetByID(context, id)
	if err != nil {
		return nil, err
	}

	views, err := service.repo.IncrementViews(context, id)
	if err != nil {
		// A failed counter must not hide the post itself.
		service.logger.Warn("blog_view_count_failed",
			slog.String("blog_id", id),
			slog.String("error", err.Error()))
		return post, nil
	}

	post.Views = views
	return post, nil
}

// GetBySlug returns one post by its public slug and counts the read as a view.
func (service *Service) GetBySlug(context context.Context, slugValue string) (*Blog, error) {
	post, err := service.repo.GetBySlug(context, slugValue)
	if err != nil {
		return nil, err
	}

	views, err := service.repo.IncrementViews(context, post.ID)
	if err != nil {
		service.logger.Warn("blog_view_count_failed",
			slog.String("blog_id", post.ID),
			slog.String("error", err.Error()))
		return post, nil
	}

	post.Views = views
	return post, nil
}

/*
Update applies a partial update to a post. Nil fields are unchanged.

Parameters:
  - context: context.Context
  - id: string
  - input: UpdateInput

Returns:
  - *Blog: Updated entity
  - error: Validation, not-found, or persistence failures
*/
func (service *Service) Update(context context.Context, id string, input UpdateInput) (*Blog, error) {
	validator := &validate.Validator{}
	if input.Title != nil {
		validator.Required(FieldTitle, *input.Title).MaxLen(FieldTitle, *input.Title, 200)
	}
	if input.Description != nil {
		validator.Required(FieldDescription, *input.Description)
	}
	if input.VideoURL != nil && *input.VideoURL != "" {
		validator.YouTubeURL(FieldVideoURL, *input.VideoURL)
	}
	if input.Status != nil {
		validator.OneOf(FieldStatus, *input.Status, StatusDraft, StatusPublished)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if input.Description != nil {
		clean := sanitizer.Sanitize(*input.Description)
		input.Description = &clean
	}

	post, err := service.repo.Update(context, id, input)
	if err != nil {
		return nil, err
	}

	service.logger.Info("blog_updated", slog.String("blog_id", id))
	return post, nil
}

/*
ToggleStatus flips a post between published and draft.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Blog: Updated entity
  - string: Human-readable confirmation naming the new status
  - error: Not-found or persistence failures
*/
func (service *Service) ToggleStatus(context context.Context, id string) (*Blog, string, error) {
	post, err := service.repo.ToggleStatus(context, id)
	if err != nil {
		return nil, "", err
	}

	service.logger.Info("blog_status_toggled",
		slog.String("blog_id", id),
		slog.String("status", post.Status))
	return post, fmt.Sprintf("Blog status changed to %s", post.Status), nil
}

// Delete removes a post permanently.
func (service *Service) Delete(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Info("blog_deleted", slog.String("blog_id", id))
	return nil
}
