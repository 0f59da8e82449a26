// Copyright (c) 2026 Alor Foundation. All rights reserved.

package program

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alorfdn/alor/internal/platform/middleware"
	requestutil "github.com/alorfdn/alor/internal/platform/request"
	"github.com/alorfdn/alor/internal/platform/respond"
	"github.com/alorfdn/alor/internal/platform/validate"
	"github.com/alorfdn/alor/pkg/pagination"
)

// Handler implements the program HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the program routes.
//
// The public listing hides inactive programs; admins get the full list.
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
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Photo             string   `json:"photo"`
	YoutubeLink       string   `json:"youtubeLink"`
	Objectives        []string `json:"objectives"`
	Beneficiaries     []string `json:"beneficiaries"`
	ExpenseCategories []string `json:"expenseCategories"`
	Areas             []string `json:"areas"`
	Duration          string   `json:"duration"`
	Amount            string   `json:"amount"`
	GalleryImages     []string `json:"galleryImages"`
	SortOrder         int      `json:"order"`
}

type updateRequest struct {
	Title             *string   `json:"title"`
	Description       *string   `json:"description"`
	Photo             *string   `json:"photo"`
	YoutubeLink       *string   `json:"youtubeLink"`
	Objectives        *[]string `json:"objectives"`
	Beneficiaries     *[]string `json:"beneficiaries"`
	ExpenseCategories *[]string `json:"expenseCategories"`
	Areas             *[]string `json:"areas"`
	Duration          *string   `json:"duration"`
	Amount            *string   `json:"amount"`
	GalleryImages     *[]string `json:"galleryImages"`
	IsActive          *bool     `json:"isActive"`
	SortOrder         *int      `json:"order"`
}

// # Endpoints

func (handler *Handler) listActive(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	programs, total, err := handler.service.ListActive(request.Context(), params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, programs, pagination.NewMeta(params.Page, params.Limit, len(programs), total))
}

func (handler *Handler) listAll(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	programs, total, err := handler.service.ListAll(request.Context(), params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, programs, pagination.NewMeta(params.Page, params.Limit, len(programs), total))
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	entity, err := handler.service.Get(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entity)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	entity, err := handler.service.Create(request.Context(), CreateInput{
		Title:             input.Title,
		Description:       input.Description,
		Photo:             input.Photo,
		YoutubeLink:       input.YoutubeLink,
		Objectives:        input.Objectives,
		Beneficiaries:     input.Beneficiaries,
		ExpenseCategories: input.ExpenseCategories,
		Areas:             input.Areas,
		Duration:          input.Duration,
		Amount:            input.Amount,
		GalleryImages:     input.GalleryImages,
		SortOrder:         input.SortOrder,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, "Program created successfully", entity)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var input updateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	entity, err := handler.service.Update(request.Context(), id, UpdateInput{
		Title:             input.Title,
		Description:       input.Description,
		Photo:             input.Photo,
		YoutubeLink:       input.YoutubeLink,
		Objectives:        input.Objectives,
		Beneficiaries:     input.Beneficiaries,
		ExpenseCategories: input.ExpenseCategories,
		Areas:             input.Areas,
		Duration:          input.Duration,
		Amount:            input.Amount,
		GalleryImages:     input.GalleryImages,
		IsActive:          input.IsActive,
		SortOrder:         input.SortOrder,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OKMessage(writer, "Program updated successfully", entity)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OKMessage(writer, "Program deleted successfully", nil)
}
