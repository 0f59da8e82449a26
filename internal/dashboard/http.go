// Copyright (c) 2026 Alor Foundation. All rights reserved.

package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alorfdn/alor/internal/platform/middleware"
	"github.com/alorfdn/alor/internal/platform/respond"
)

// Handler implements the dashboard HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the dashboard routes. All of them
// are admin-only.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAdmin)

	router.Get("/stats", handler.stats)

	return router
}

func (handler *Handler) stats(writer http.ResponseWriter, request *http.Request) {
	stats, err := handler.service.Stats(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, stats)
}
