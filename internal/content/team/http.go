// Copyright (c) 2026 Alor Foundation. All rights reserved.

package team

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alorfdn/alor/internal/platform/middleware"
	requestutil "github.com/alorfdn/alor/internal/platform/request"
	"github.com/alorfdn/alor/internal/platform/respond"
	"github.com/alorfdn/alor/internal/platform/validate"
	"github.com/alorfdn/alor/pkg/pagination"
)

// Handler implements the team HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the team routes.
//
// The public listing hides inactive members; admins get the full roster.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public reads
	router.Get("/", handler.listActive)
	router.Get("/{id}", handler.get)

	// Admin writes
	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireAdmin)

		admin.Get("/all", handler.listAll)
		admin.Post("/", handler.create)
		admin.Put("/{id}", handler.update)
		admin.Delete("/{id}", handler.delete)
	})

	return router
}

// # Request Payloads

type createRequest struct {
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Photo       string `json:"photo"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Bio         string `json:"bio"`
	SortOrder   int    `json:"order"`
}

type updateRequest struct {
	Name        *string `json:"name"`
	Designation *string `json:"designation"`
	Photo       *string `json:"photo"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Bio         *string `json:"bio"`
	SortOrder   *int    `json:"order"`
	IsActive    *bool   `json:"isActive"`
}

// # Endpoints

func (handler *Handler) listActive(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	members, total, err := handler.service.ListActive(request.Context(), params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, members, pagination.NewMeta(params.Page, params.Limit, len(members), total))
}

func (handler *Handler) listAll(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	members, total, err := handler.service.ListAll(request.Context(), params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, members, pagination.NewMeta(params.Page, params.Limit, len(members), total))
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	member, err := handler.service.Get(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, member)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	member, err := handler.service.Create(request.Context(), CreateInput{
		Name:        input.Name,
		Designation: input.Designation,
		Photo:       input.Photo,
		Email:       input.Email,
		Phone:       input.Phone,
		Bio:         input.Bio,
		SortOrder:   input.SortOrder,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, "Team member added successfully", member)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var input updateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	member, err := handler.service.Update(request.Context(), id, UpdateInput{
		Name:        input.Name,
		Designation: input.Designation,
		Photo:       input.Photo,
		Email:       input.Email,
		Phone:       input.Phone,
		Bio:         input.Bio,
		SortOrder:   input.SortOrder,
		IsActive:    input.IsActive,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OKMessage(writer, "Team member updated successfully", member)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OKMessage(writer, "Team member deleted successfully", nil)
}
