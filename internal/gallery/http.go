// Copyright (c) 2026 Alor Foundation. All rights reserved.

package gallery

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alorfdn/alor/internal/platform/middleware"
	requestutil "github.com/alorfdn/alor/internal/platform/request"
	"github.com/alorfdn/alor/internal/platform/respond"
	"github.com/alorfdn/alor/internal/platform/validate"
	"github.com/alorfdn/alor/pkg/pagination"
)

// Handler implements the gallery HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the gallery routes.
//
// Reads are public; every write is admin-only.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public reads
	router.Get("/topics", handler.listTopics)
	router.Get("/images", handler.listImages)
	router.Get("/images/{topicId}", handler.listImagesByTopic)
	router.Get("/video-topics", handler.listVideoTopics)
	router.Get("/videos", handler.listVideos)
	router.Get("/videos/{topicId}", handler.listVideosByTopic)

	// Admin writes
	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireAdmin)

		admin.Post("/topics", handler.createTopic)
		admin.Put("/topics/{id}", handler.updateTopic)
		admin.Delete("/topics/{id}", handler.deleteTopic)

		admin.Post("/upload", handler.uploadImage)
		admin.Delete("/images/{id}", handler.deleteImage)

		admin.Post("/video-topics", handler.createVideoTopic)
		admin.Delete("/video-topics/{id}", handler.deleteVideoTopic)

		admin.Post("/upload-video", handler.addVideo)
		admin.Delete("/videos/{id}", handler.deleteVideo)
	})

	return router
}

// # Request Payloads

type topicRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type updateTopicRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type uploadImageRequest struct {
	TopicID string `json:"topicId"`
	Title   string `json:"title"`
	Image   string `json:"image"`
}

type addVideoRequest struct {
	TopicID  string `json:"topicId"`
	Title    string `json:"title"`
	VideoURL string `json:"videoUrl"`
}

// # Topic Endpoints

func (handler *Handler) createTopic(writer http.ResponseWriter, request *http.Request) {
	var input topicRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	topic, err := handler.service.CreateTopic(request.Context(), input.Name, input.Description)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, "Topic created successfully", topic)
}

func (handler *Handler) listTopics(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	topics, total, err := handler.service.ListTopics(request.Context(), params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, topics, pagination.NewMeta(params.Page, params.Limit, len(topics), total))
}

func (handler *Handler) updateTopic(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var input updateTopicRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	topic, err := handler.service.UpdateTopic(request.Context(), id, UpdateTopicInput{
		Name:        input.Name,
		Description: input.Description,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OKMessage(writer, "Topic updated successfully", topic)
}

func (handler *Handler) deleteTopic(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.DeleteTopic(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OKMessage(writer, "Topic and all images deleted successfully", nil)
}

// # Image Endpoints

/*
uploadImage accepts a base64 image, uploads it to the external host, and
records the hosted URLs.

POST /api/gallery/upload

Response:
  - 201: Created image with hosted URLs
  - 404: Topic not found
  - 500: UPSTREAM_ERROR with the host's message
*/
func (handler *Handler) uploadImage(writer http.ResponseWriter, request *http.Request) {
	var input uploadImageRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	claims := requestutil.Claims(request)
	uploadedBy := ""
	if claims != nil {
		uploadedBy = claims.UserID
	}

	image, err := handler.service.UploadImage(request.Context(), UploadImageInput{
		TopicID:    input.TopicID,
		Title:      input.Title,
		Image:      input.Image,
		UploadedBy: uploadedBy,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, "Image uploaded successfully", image)
}

func (handler *Handler) listImages(writer http.ResponseWriter, request *http.Request) {
	handler.respondImages(writer, request, "")
}

func (handler *Handler) listImagesByTopic(writer http.ResponseWriter, request *http.Request) {
	handler.respondImages(writer, request, requestutil.ID(request, "topicId"))
}

func (handler *Handler) respondImages(writer http.ResponseWriter, request *http.Request, topicID string) {
	params := pagination.FromRequest(request)

	images, total, err := handler.service.ListImages(request.Context(), topicID, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, images, pagination.NewMeta(params.Page, params.Limit, len(images), total))
}

func (handler *Handler) deleteImage(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.DeleteImage(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OKMessage(writer, "Image deleted successfully", nil)
}

// # Video Topic Endpoints

func (handler *Handler) createVideoTopic(writer http.ResponseWriter, request *http.Request) {
	var input topicRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	topic, err := handler.service.CreateVideoTopic(request.Context(), input.Name, input.Description)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, "Video topic created successfully", topic)
}

func (handler *Handler) listVideoTopics(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	topics, total, err := handler.service.ListVideoTopics(request.Context(), params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, topics, pagination.NewMeta(params.Page, params.Limit, len(topics), total))
}

func (handler *Handler) deleteVideoTopic(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.DeleteVideoTopic(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OKMessage(writer, "Video topic and all videos deleted successfully", nil)
}

// # Video Endpoints

func (handler *Handler) addVideo(writer http.ResponseWriter, request *http.Request) {
	var input addVideoRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	claims := requestutil.Claims(request)
	uploadedBy := ""
	if claims != nil {
		uploadedBy = claims.UserID
	}

	video, err := handler.service.AddVideo(request.Context(), AddVideoInput{
		TopicID:    input.TopicID,
		Title:      input.Title,
		VideoURL:   input.VideoURL,
		UploadedBy: uploadedBy,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, "Video added successfully", video)
}

func (handler *Handler) listVideos(writer http.ResponseWriter, request *http.Request) {
	handler.respondVideos(writer, request, "")
}

func (handler *Handler) listVideosByTopic(writer http.ResponseWriter, request *http.Request) {
	handler.respondVideos(writer, request, requestutil.ID(request, "topicId"))
}

func (handler *Handler) respondVideos(writer http.ResponseWriter, request *http.Request, topicID string) {
	params := pagination.FromRequest(request)

	videos, total, err := handler.service.ListVideos(request.Context(), topicID, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, videos, pagination.NewMeta(params.Page, params.Limit, len(videos), total))
}

func (handler *Handler) deleteVideo(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.DeleteVideo(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OKMessage(writer, "Video deleted successfully", nil)
}
