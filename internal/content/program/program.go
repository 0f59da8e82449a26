// Copyright (c) 2026 Alor Foundation. All rights reserved.

/*
Package program manages the foundation's charitable programs.

A program bundles a rich-text description, a hosted cover photo, an
optional YouTube link, free-form list attributes (objectives,
beneficiaries, expense categories, coverage areas), and a gallery of
hosted image URLs. Inactive programs stay in storage but are hidden from
the public listing.
*/
package program

import (
	"context"
	"time"
)

// Program represents one charitable program.
type Program struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	Photo             string    `json:"photo"`
	YoutubeLink       string    `json:"youtubeLink,omitempty"`
	Objectives        []string  `json:"objectives"`
	Beneficiaries     []string  `json:"beneficiaries"`
	ExpenseCategories []string  `json:"expenseCategories"`
	Areas             []string  `json:"areas"`
	Duration          string    `json:"duration,omitempty"`
	Amount            string    `json:"amount,omitempty"`
	GalleryImages     []string  `json:"galleryImages"`
	IsActive          bool      `json:"isActive"`
	SortOrder         int       `json:"order"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// Field names for validation in the program domain.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldPhoto       = "photo"
	FieldYoutubeLink = "youtubeLink"
)

// UpdateInput carries the optional fields of a program update.
// Nil fields are left unchanged; a non-nil GalleryImages replaces the
// stored gallery entirely.
type UpdateInput struct {
	Title             *string
	Description       *string
	Photo             *string
	YoutubeLink       *string
	Objectives        *[]string
	Beneficiaries     *[]string
	ExpenseCategories *[]string
	Areas             *[]string
	Duration          *string
	Amount            *string
	GalleryImages     *[]string
	IsActive          *bool
	SortOrder         *int
}

// Repository defines the data access contract for programs.
// Listings return one page plus the overall match count.
type Repository interface {
	Create(context context.Context, program *Program) error
	ListActive(context context.Context, limit, offset int) ([]*Program, int, error)
	ListAll(context context.Context, limit, offset int) ([]*Program, int, error)
	GetByID(context context.Context, id string) (*Program, error)
	Update(context context.Context, id string, input UpdateInput) (*Program, error)
	Delete(context context.Context, id string) error
}
