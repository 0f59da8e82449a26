// Copyright (c) 2026 Alor Foundation. All rights reserved.

package message

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alorfdn/alor/internal/platform/apperr"
	"github.com/alorfdn/alor/internal/platform/mailer"
)

// memoryRepository is an in-memory contact Repository for service tests.
type memoryRepository struct {
	messages []*Message
}

func (m *memoryRepository) Create(_ context.Context, message *Message) error {
	message.CreatedAt = time.Now()
	m.messages = append(m.messages, message)
	return nil
}

func (m *memoryRepository) List(_ context.Context, limit, offset int) ([]*Message, int, error) {
	return m.messages, len(m.messages), nil
}

func (m *memoryRepository) MarkRead(_ context.Context, id string) (*Message, error) {
	for _, msg := range m.messages {
		if msg.ID == id {
			msg.IsRead = true
			return msg, nil
		}
	}
	return nil, apperr.NotFound("Message")
}

func (m *memoryRepository) Delete(_ context.Context, id string) error {
	for i, msg := range m.messages {
		if msg.ID == id {
			m.messages = append(m.messages[:i], m.messages[i+1:]...)
			return nil
		}
	}
	return apperr.NotFound("Message")
}

func (m *memoryRepository) DeleteWhere(_ context.Context, selector Selector) (int64, error) {
	var kept []*Message
	var removed int64
	for _, msg := range m.messages {
		match := selector == SelectAll ||
			(selector == SelectRead && msg.IsRead) ||
			(selector == SelectUnread && !msg.IsRead)
		if match {
			removed++
			continue
		}
		kept = append(kept, msg)
	}
	m.messages = kept
	return removed, nil
}

// failingMailer always errors on Send.
type failingMailer struct{}

func (failingMailer) Enabled() bool { return true }

func (failingMailer) Send(mailer.Email) error {
	return errors.New("smtp: connection refused")
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCreate_MailerFailureDoesNotFailCreate(t *testing.T) {
	repo := &memoryRepository{}
	service := NewService(repo, failingMailer{}, "admin@alorfoundation.org", discardLogger())

	created, err := service.Create(context.Background(), CreateInput{
		Name:    "Visitor",
		Email:   "visitor@example.org",
		Subject: "Volunteering",
		Body:    "I would like to help.",
	})
	require.NoError(t, err, "notification failure must not surface to the visitor")

	assert.False(t, created.IsRead)
	assert.Len(t, repo.messages, 1)
}

func TestCreate_Validation(t *testing.T) {
	repo := &memoryRepository{}
	service := NewService(repo, failingMailer{}, "", discardLogger())

	tests := []struct {
		name  string
		input CreateInput
	}{
		{"missing_name", CreateInput{Email: "v@example.org", Subject: "Hi", Body: "Hello"}},
		{"bad_email", CreateInput{Name: "V", Email: "not-an-email", Subject: "Hi", Body: "Hello"}},
		{"missing_body", CreateInput{Name: "V", Email: "v@example.org", Subject: "Hi"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Create(context.Background(), tt.input)
			require.Error(t, err)
			assert.Equal(t, apperr.CodeValidation, apperr.As(err).Code)
		})
	}

	assert.Empty(t, repo.messages)
}

func TestDeleteWhere(t *testing.T) {
	repo := &memoryRepository{}
	service := NewService(repo, failingMailer{}, "", discardLogger())
	ctx := context.Background()

	for i, subject := range []string{"one", "two", "three"} {
		created, err := service.Create(ctx, CreateInput{
			Name:    "Visitor",
			Email:   "visitor@example.org",
			Subject: subject,
			Body:    "Hello",
		})
		require.NoError(t, err)

		if i == 0 {
			_, err = service.MarkRead(ctx, created.ID)
			require.NoError(t, err)
		}
	}

	removed, err := service.DeleteWhere(ctx, SelectRead)
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	removed, err = service.DeleteWhere(ctx, SelectUnread)
	require.NoError(t, err)
	assert.EqualValues(t, 2, removed)

	removed, err = service.DeleteWhere(ctx, SelectAll)
	require.NoError(t, err)
	assert.EqualValues(t, 0, removed)
}
