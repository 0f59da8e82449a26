// Copyright (c) 2026 Alor Foundation. All rights reserved.

/*
Package message implements the public contact-form inbox.

Visitors submit messages without authentication; administrators triage them
from the dashboard (read flags, single and bulk deletion).
*/
package message

import (
	"context"
	"time"
)

// Message represents one contact-form submission.
type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Body      string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// Field names for validation in the contact domain.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldSubject = "subject"
	FieldMessage = "message"
)

// Repository defines the data access contract for contact messages.
type Repository interface {

	/*
		Create persists a new contact message.

		Parameters:
		  - context: context.Context
		  - message: *Message

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, message *Message) error

	/*
		List returns a page of messages, newest first.

		Parameters:
		  - context: context.Context
		  - limit: int
		  - offset: int

		Returns:
		  - []*Message: Page of messages
		  - int: Total message count
		  - error: Retrieval failures
	*/
	List(context context.Context, limit, offset int) ([]*Message, int, error)

	/*
		MarkRead flags a message as read.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Message: Updated entity
		  - error: NotFound or persistence failures
	*/
	MarkRead(context context.Context, id string) (*Message, error)

	/*
		Delete removes a single message.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: NotFound or persistence failures
	*/
	Delete(context context.Context, id string) error

	/*
		DeleteWhere bulk-removes messages matching the read-state selector.

		Parameters:
		  - context: context.Context
		  - selector: Selector

		Returns:
		  - int64: Number of removed rows
		  - error: Persistence failures
	*/
	DeleteWhere(context context.Context, selector Selector) (int64, error)
}

// Selector picks a subset of the inbox for bulk deletion.
type Selector int

const (
	// SelectAll matches every message.
	SelectAll Selector = iota
	// SelectRead matches messages already flagged as read.
	SelectRead
	// SelectUnread matches messages not yet read.
	SelectUnread
)
