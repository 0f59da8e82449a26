// Copyright (c) 2026 Alor Foundation. All rights reserved.

/*
Package team manages the foundation's public team roster.

Members carry a designation, a hosted portrait photo, optional contact
details, and a manual sort order. Inactive members stay in storage but are
hidden from the public listing.
*/
package team

import (
	"context"
	"time"
)

// Member represents one person on the team page.
type Member struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Designation string    `json:"designation"`
	Photo       string    `json:"photo"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Bio         string    `json:"bio,omitempty"`
	SortOrder   int       `json:"order"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Field names for validation in the team domain.
const (
	FieldName        = "name"
	FieldDesignation = "designation"
	FieldPhoto       = "photo"
	FieldEmail       = "email"
)

// UpdateInput carries the optional fields of a member update.
// Nil fields are left unchanged.
type UpdateInput struct {
	Name        *string
	Designation *string
	Photo       *string
	Email       *string
	Phone       *string
	Bio         *string
	SortOrder   *int
	IsActive    *bool
}

// Repository defines the data access contract for team members.
// Listings return one page plus the overall match count.
type Repository interface {
	Create(context context.Context, member *Member) error
	ListActive(context context.Context, limit, offset int) ([]*Member, int, error)
	ListAll(context context.Context, limit, offset int) ([]*Member, int, error)
	GetByID(context context.Context, id string) (*Member, error)
	Update(context context.Context, id string, input UpdateInput) (*Member, error)
	Delete(context context.Context, id string) error
}
