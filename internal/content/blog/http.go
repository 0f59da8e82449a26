// Copyright (c) 2026 Alor Foundation. All rights reserved.

package blog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alorfdn/alor/internal/platform/middleware"
	requestutil "github.com/alorfdn/alor/internal/platform/request"
	"github.com/alorfdn/alor/internal/platform/respond"
	"github.com/alorfdn/alor/internal/platform/validate"
	"github.com/alorfdn/alor/pkg/pagination"
)

// Handler implements the blog HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the blog routes.
//
// Reads are public; every write is admin-only.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public reads
	router.Get("/", handler.list)
	router.Get("/by-slug/{slug}", handler.getBySlug)
	router.Get("/{id}", handler.get)

	// Admin writes
	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireAdmin)

		admin.Post("/", handler.create)
		admin.Put("/{id}", handler.update)
		admin.Patch("/{id}/status", handler.toggleStatus)
		admin.Delete("/{id}", handler.delete)
	})

	return router
}

// # Request Payloads

type createRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	VideoURL    string   `json:"videoUrl"`
	Images      []string `json:"images"`
	Status      string   `json:"status"`
}

type updateRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	VideoURL    *string   `json:"videoUrl"`
	Images      *[]string `json:"images"`
	Status      *string   `json:"status"`
}

// # Endpoints

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	claims := requestutil.Claims(request)
	authorID := ""
	if claims != nil {
		authorID = claims.UserID
	}

	post, err := handler.service.Create(request.Context(), authorID, CreateInput{
		Title:       input.Title,
		Description: input.Description,
		VideoURL:    input.VideoURL,
		Images:      input.Images,
		Status:      input.Status,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, "Blog created successfully", post)
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	filter := Filter{Status: request.URL.Query().Get("status")}

	posts, total, err := handler.service.List(request.Context(), filter, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, posts, pagination.NewMeta(params.Page, params.Limit, len(posts), total))
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	post, err := handler.service.Get(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, post)
}

func (handler *Handler) getBySlug(writer http.ResponseWriter, request *http.Request) {
	post, err := handler.service.GetBySlug(request.Context(), requestutil.ID(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, post)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var input updateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	post, err := handler.service.Update(request.Context(), id, UpdateInput{
		Title:       input.Title,
		Description: input.Description,
		VideoURL:    input.VideoURL,
		Images:      input.Images,
		Status:      input.Status,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OKMessage(writer, "Blog updated successfully", post)
}

func (handler *Handler) toggleStatus(writer http.ResponseWriter, request *http.Request) {
	post, message, err := handler.service.ToggleStatus(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OKMessage(writer, message, post)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OKMessage(writer, "Blog deleted successfully", nil)
}
