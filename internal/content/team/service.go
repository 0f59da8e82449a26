// Copyright (c) 2026 Alor Foundation. All rights reserved.

package team

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/alorfdn/alor/internal/platform/validate"
	"github.com/alorfdn/alor/internal/upload/imgbb"
	"github.com/alorfdn/alor/pkg/uuidv7"
)

// Service implements the team use cases.
type Service struct {
	repo     Repository
	uploader imgbb.Uploader
	logger   *slog.Logger
}

// NewService constructs a team [Service].
func NewService(repo Repository, uploader imgbb.Uploader, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		uploader: uploader,
		logger:   logger,
	}
}

// CreateInput carries the fields of a new team member.
type CreateInput struct {
	Name        string
	Designation string
	Photo       string
	Email       string
	Phone       string
	Bio         string
	SortOrder   int
}

/*
Create validates and persists a new team member.

When Photo is an inline data URL, it is uploaded to the external image
host first and the hosted URL is stored. Already-hosted URLs pass through
unchanged.

Parameters:
  - context: context.Context
  - input: CreateInput

Returns:
  - *Member: Created entity
  - error: Validation, upload, or persistence failures
*/
func (service *Service) Create(context context.Context, input CreateInput) (*Member, error) {
	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).MaxLen(FieldName, input.Name, 100)
	validator.Required(FieldDesignation, input.Designation).MaxLen(FieldDesignation, input.Designation, 100)
	validator.Required(FieldPhoto, input.Photo)
	if input.Email != "" {
		validator.Email(FieldEmail, input.Email)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	photo, err := service.hostedPhoto(context, input.Photo)
	if err != nil {
		return nil, err
	}

	member := &Member{
		ID:          uuidv7.New(),
		Name:        input.Name,
		Designation: input.Designation,
		Photo:       photo,
		Email:       input.Email,
		Phone:       input.Phone,
		Bio:         input.Bio,
		SortOrder:   input.SortOrder,
		IsActive:    true,
	}

	if err := service.repo.Create(context, member); err != nil {
		return nil, fmt.Errorf("team_service_create_failed: %w", err)
	}

	service.logger.Info("team_member_created",
		slog.String("member_id", member.ID),
		slog.String("name", member.Name))
	return member, nil
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

// ListActive returns one page of the public roster: active members only,
// in manual order, newest first within the same order value.
func (service *Service) ListActive(context context.Context, limit, offset int) ([]*Member, int, error) {
	return service.repo.ListActive(context, limit, offset)
}

// ListAll returns one page of every member, including inactive ones, for
// administration.
func (service *Service) ListAll(context context.Context, limit, offset int) ([]*Member, int, error) {
	return service.repo.ListAll(context, limit, offset)
}

// Get returns one member by id.
func (service *Service) Get(context context.Context, id string) (*Member, error) {
	return service.repo.GetByID(context, id)
}

/*
Update applies a partial update to a member. Nil fields are unchanged.

A Photo field holding an inline data URL is uploaded before persisting.

Parameters:
  - context: context.Context
  - id: string
  - input: UpdateInput

Returns:
  - *Member: Updated entity
  - error: Validation, not-found, upload, or persistence failures
*/
func (service *Service) Update(context context.Context, id string, input UpdateInput) (*Member, error) {
	validator := &validate.Validator{}
	if input.Name != nil {
		validator.Required(FieldName, *input.Name).MaxLen(FieldName, *input.Name, 100)
	}
	if input.Designation != nil {
		validator.Required(FieldDesignation, *input.Designation).MaxLen(FieldDesignation, *input.Designation, 100)
	}
	if input.Email != nil && *input.Email != "" {
		validator.Email(FieldEmail, *input.Email)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if input.Photo != nil && *input.Photo != "" {
		photo, err := service.hostedPhoto(context, *input.Photo)
		if err != nil {
			return nil, err
		}
		input.Photo = &photo
	}

	member, err := service.repo.Update(context, id, input)
	if err != nil {
		return nil, err
	}

	service.logger.Info("team_member_updated", slog.String("member_id", id))
	return member, nil
}

// Delete removes a member permanently.
func (service *Service) Delete(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Info("team_member_deleted", slog.String("member_id", id))
	return nil
}
