// Copyright (c) 2026 Alor Foundation. All rights reserved.

package message

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alorfdn/alor/internal/platform/middleware"
	requestutil "github.com/alorfdn/alor/internal/platform/request"
	"github.com/alorfdn/alor/internal/platform/respond"
	"github.com/alorfdn/alor/internal/platform/validate"
	"github.com/alorfdn/alor/pkg/pagination"
)

// Handler implements the contact inbox HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the contact routes.
//
// # Endpoints
//   - POST   /          : Public form submission.
//   - GET    /          : Admin inbox listing.
//   - PATCH  /{id}/read : Admin read flag.
//   - DELETE /read, /unread, /, /{id} : Admin deletion.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public submission endpoint.
	router.Post("/", handler.create)

	// Admin triage endpoints.
	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireAdmin)

		admin.Get("/", handler.list)
		admin.Patch("/{id}/read", handler.markRead)

		// Bulk routes are registered before /{id} so chi matches them first.
		admin.Delete("/read", handler.deleteRead)
		admin.Delete("/unread", handler.deleteUnread)
		admin.Delete("/", handler.deleteAll)
		admin.Delete("/{id}", handler.delete)
	})

	return router
}

type createRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

/*
create accepts a public contact-form submission.

POST /api/messages

Response:
  - 201: Created message
  - 400: Validation failure
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	created, err := handler.service.Create(request.Context(), CreateInput{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Body:    input.Message,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, "Message sent successfully", created)
}

/*
list returns the inbox, newest first.

GET /api/messages
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	messages, total, err := handler.service.List(request.Context(), params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, messages, pagination.NewMeta(params.Page, params.Limit, len(messages), total))
}

/*
markRead flags a message as read.

PATCH /api/messages/{id}/read
*/
func (handler *Handler) markRead(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	updated, err := handler.service.MarkRead(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OKMessage(writer, "Message marked as read", updated)
}

/*
delete removes a single message.

DELETE /api/messages/{id}
*/
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OKMessage(writer, "Message deleted successfully", nil)
}

func (handler *Handler) deleteAll(writer http.ResponseWriter, request *http.Request) {
	handler.bulkDelete(writer, request, SelectAll)
}

func (handler *Handler) deleteRead(writer http.ResponseWriter, request *http.Request) {
	handler.bulkDelete(writer, request, SelectRead)
}

func (handler *Handler) deleteUnread(writer http.ResponseWriter, request *http.Request) {
	handler.bulkDelete(writer, request, SelectUnread)
}

func (handler *Handler) bulkDelete(writer http.ResponseWriter, request *http.Request, selector Selector) {
	removed, err := handler.service.DeleteWhere(request.Context(), selector)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OKMessage(writer, fmt.Sprintf("%d messages deleted", removed), nil)
}
