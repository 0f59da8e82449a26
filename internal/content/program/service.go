// Copyright (c) 2026 Alor Foundation. All rights reserved.

package program

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/alorfdn/alor/internal/platform/validate"
	"github.com/alorfdn/alor/internal/upload/imgbb"
	"github.com/alorfdn/alor/pkg/uuidv7"
)

// sanitizer strips unsafe markup from program descriptions.
var sanitizer = bluemonday.UGCPolicy()

// Service implements the program use cases.
type Service struct {
	repo     Repository
	uploader imgbb.Uploader
	logger   *slog.Logger
}

// NewService constructs a program [Service].
func NewService(repo Repository, uploader imgbb.Uploader, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		uploader: uploader,
		logger:   logger,
	}
}

// CreateInput carries the fields of a new program.
type CreateInput struct {
	Title             string
	Description       string
	Photo             string
	YoutubeLink       string
	Objectives        []string
	Beneficiaries     []string
	ExpenseCategories []string
	Areas             []string
	Duration          string
	Amount            string
	GalleryImages     []string
	SortOrder         int
}

/*
Create validates and persists a new program.

The cover photo must upload successfully when it is an inline data URL.
Gallery images are best-effort: an entry that fails to upload is logged and
skipped without failing the whole create, and already-hosted URLs pass
through unchanged.

Parameters:
  - context: context.Context
  - input: CreateInput

Returns:
  - *Program: Created entity
  - error: Validation, cover upload, or persistence failures
*/
func (service *Service) Create(context context.Context, input CreateInput) (*Program, error) {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).MaxLen(FieldTitle, input.Title, 200)
	validator.Required(FieldDescription, input.Description)
	validator.Required(FieldPhoto, input.Photo)
	if input.YoutubeLink != "" {
		validator.YouTubeURL(FieldYoutubeLink, input.YoutubeLink)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	photo, err := service.hostedPhoto(context, input.Photo)
	if err != nil {
		return nil, err
	}

	entity := &Program{
		ID:                uuidv7.New(),
		Title:             input.Title,
		Description:       sanitizer.Sanitize(input.Description),
		Photo:             photo,
		YoutubeLink:       input.YoutubeLink,
		Objectives:        emptyIfNil(input.Objectives),
		Beneficiaries:     emptyIfNil(input.Beneficiaries),
		ExpenseCategories: emptyIfNil(input.ExpenseCategories),
		Areas:             emptyIfNil(input.Areas),
		Duration:          input.Duration,
		Amount:            input.Amount,
		GalleryImages:     service.hostedGallery(context, input.GalleryImages),
		IsActive:          true,
		SortOrder:         input.SortOrder,
	}

	if err := service.repo.Create(context, entity); err != nil {
		return nil, fmt.Errorf("program_service_create_failed: %w", err)
	}

	service.logger.Info("program_created",
		slog.String("program_id", entity.ID),
		slog.String("title", entity.Title),
		slog.Int("gallery_size", len(entity.GalleryImages)))
	return entity, nil
}

// hostedPhoto uploads inline data URLs to the image host and returns the
// hosted URL. Non-inline values are returned as-is.
func (service *Service) hostedPhoto(context context.Context, photo string) (string, error) {
	if !strings.HasPrefix(photo, "data:image") {
		return photo, nil
	}

	result, err := service.uploader.Upload(context, photo)
	if err != nil {
		return "", err
	}
	return result.URL, nil
}

// hostedGallery resolves a mixed list of inline data URLs and hosted URLs.
// Failed uploads are logged and dropped; they never fail the caller.
func (service *Service) hostedGallery(context context.Context, images []string) []string {
	hosted := []string{}
	for _, image := range images {
		if !strings.HasPrefix(image, "data:image") {
			hosted = append(hosted, image)
			continue
		}

		result, err := service.uploader.Upload(context, image)
		if err != nil {
			service.logger.Warn("program_gallery_upload_skipped",
				slog.String("error", err.Error()))
			continue
		}
		hosted = append(hosted, result.URL)
	}
	return hosted
}

// ListActive returns one page of the public listing: active programs only,
// in manual order, newest first within the same order value.
func (service *Service) ListActive(context context.Context, limit, offset int) ([]*Program, int, error) {
	return service.repo.ListActive(context, limit, offset)
}

// ListAll returns one page of every program, including inactive ones, for
// administration.
func (service *Service) ListAll(context context.Context, limit, offset int) ([]*Program, int, error) {
	return service.repo.ListAll(context, limit, offset)
}

// Get returns one program by id.
func (service *Service) Get(context context.Context, id string) (*Program, error) {
	return service.repo.GetByID(context, id)
}

/*
Update applies a partial update to a program. Nil fields are unchanged.

A Photo holding an inline data URL is uploaded before persisting. A
non-nil GalleryImages list replaces the stored gallery after resolving its
entries best-effort, like Create does.

Parameters:
  - context: context.Context
  - id: string
  - input: UpdateInput

Returns:
  - *Program: Updated entity
  - error: Validation, not-found, cover upload, or persistence failures
*/
func (service *Service) Update(context context.Context, id string, input UpdateInput) (*Program, error) {
	validator := &validate.Validator{}
	if input.Title != nil {
		validator.Required(FieldTitle, *input.Title).MaxLen(FieldTitle, *input.Title, 200)
	}
	if input.Description != nil {
		validator.Required(FieldDescription, *input.Description)
	}
	if input.YoutubeLink != nil && *input.YoutubeLink != "" {
		validator.YouTubeURL(FieldYoutubeLink, *input.YoutubeLink)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if input.Description != nil {
		clean := sanitizer.Sanitize(*input.Description)
		input.Description = &clean
	}

	if input.Photo != nil && *input.Photo != "" {
		photo, err := service.hostedPhoto(context, *input.Photo)
		if err != nil {
			return nil, err
		}
		input.Photo = &photo
	}

	if input.GalleryImages != nil {
		gallery := service.hostedGallery(context, *input.GalleryImages)
		input.GalleryImages = &gallery
	}

	entity, err := service.repo.Update(context, id, input)
	if err != nil {
		return nil, err
	}

	service.logger.Info("program_updated", slog.String("program_id", id))
	return entity, nil
}

// Delete removes a program permanently.
func (service *Service) Delete(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Info("program_deleted", slog.String("program_id", id))
	return nil
}

// emptyIfNil normalizes nil slices so API responses always carry arrays.
func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
