// Copyright (c) 2026 Alor Foundation. All rights reserved.

package message

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alorfdn/alor/internal/platform/mailer"
	"github.com/alorfdn/alor/internal/platform/validate"
	"github.com/alorfdn/alor/pkg/uuidv7"
)

// Service implements the contact inbox use cases.
type Service struct {
	repo        Repository
	mail        mailer.Sender
	notifyEmail string
	logger      *slog.Logger
}

// NewService constructs a contact [Service].
//
// notifyEmail is the address that receives a copy of each submission;
// when empty, notifications are skipped.
func NewService(repo Repository, mail mailer.Sender, notifyEmail string, logger *slog.Logger) *Service {
	return &Service{
		repo:        repo,
		mail:        mail,
		notifyEmail: notifyEmail,
		logger:      logger,
	}
}

// CreateInput holds a visitor's contact-form submission.
type CreateInput struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

/*
Create validates and persists a contact message, then notifies the
foundation inbox.

Description: The notification email is best-effort; a delivery failure is
logged and never surfaced to the visitor.

Parameters:
  - context: context.Context
  - input: CreateInput

Returns:
  - *Message: Created entity
  - error: Validation or persistence failures
*/
func (service *Service) Create(context context.Context, input CreateInput) (*Message, error) {
	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).
		MaxLen(FieldName, input.Name, 100).
		Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Required(FieldSubject, input.Subject).
		MaxLen(FieldSubject, input.Subject, 200).
		Required(FieldMessage, input.Body).
		MaxLen(FieldMessage, input.Body, 5000)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	msg := &Message{
		ID:      uuidv7.New(),
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Body:    input.Body,
	}

	if err := service.repo.Create(context, msg); err != nil {
		return nil, fmt.Errorf("message_service_create_failed: %w", err)
	}

	service.notify(msg)

	return msg, nil
}

// notify forwards the submission to the foundation inbox, best-effort.
func (service *Service) notify(msg *Message) {
	if service.notifyEmail == "" || !service.mail.Enabled() {
		return
	}

	err := service.mail.Send(mailer.Email{
		To:      []string{service.notifyEmail},
		Subject: "New contact message: " + msg.Subject,
		Body:    fmt.Sprintf("From: %s <%s>\n\n%s", msg.Name, msg.Email, msg.Body),
	})
	if err != nil {
		service.logger.Error("contact_notification_failed",
			slog.String("message_id", msg.ID),
			slog.Any("error", err),
		)
	}
}

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
func (service *Service) List(context context.Context, limit, offset int) ([]*Message, int, error) {
	return service.repo.List(context, limit, offset)
}

/*
MarkRead flags a message as read.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Message: Updated entity
  - error: NotFound or persistence failures
*/
func (service *Service) MarkRead(context context.Context, id string) (*Message, error) {
	return service.repo.MarkRead(context, id)
}

/*
Delete removes a single message.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: NotFound or persistence failures
*/
func (service *Service) Delete(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}
	service.logger.Warn("message_deleted", slog.String("message_id", id))
	return nil
}

/*
DeleteWhere bulk-removes messages matching the selector.

Parameters:
  - context: context.Context
  - selector: Selector

Returns:
  - int64: Number of removed messages
  - error: Persistence failures
*/
func (service *Service) DeleteWhere(context context.Context, selector Selector) (int64, error) {
	removed, err := service.repo.DeleteWhere(context, selector)
	if err != nil {
		return 0, err
	}
	service.logger.Warn("messages_bulk_deleted", slog.Int64("removed", removed))
	return removed, nil
}
