package adaptor

import (
	"net/http"

	"tourism-booking/internal/dto/request"
	"tourism-booking/internal/usecase"
	"tourism-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ContentHandler struct {
	service usecase.ContentService
	log     *zap.Logger
}

func NewContentHandler(service usecase.ContentService, log *zap.Logger) *ContentHandler {
	return &ContentHandler{
		service: service,
		log:     log.With(zap.String("handler", "content")),
	}
}

// GetContent handles GET /api/content
func (h *ContentHandler) GetContent(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.GetSettings(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get content")
		return
	}
	utils.ResponseSuccess(w, "success", settings)
}

// UpdateContent handles PUT /api/admin/content (admin only)
func (h *ContentHandler) UpdateContent(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateContentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	settings, err := h.service.UpdateSettings(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update content")
		return
	}
	utils.ResponseSuccess(w, "Content updated", settings)
}

// ==================== SIGHTS ====================

// ListSights handles GET /api/sights
func (h *ContentHandler) ListSights(w http.ResponseWriter, r *http.Request) {
	sights, err := h.service.ListSights(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list sights")
		return
	}
	utils.ResponseSuccess(w, "success", sights)
}

func (h *ContentHandler) CreateSight(w http.ResponseWriter, r *http.Request) {
	var req request.SightRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sight, err := h.service.CreateSight(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create sight")
		return
	}
	utils.ResponseCreated(w, "Sight created", sight)
}

func (h *ContentHandler) UpdateSight(w http.ResponseWriter, r *http.Request) {
	var req request.SightRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sight, err := h.service.UpdateSight(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update sight")
		return
	}
	utils.ResponseSuccess(w, "Sight updated", sight)
}

func (h *ContentHandler) DeleteSight(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteSight(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(h.log, w, err, "delete sight")
		return
	}
	utils.ResponseSuccess(w, "Sight deleted", nil)
}

// ==================== BLOG ====================

// ListPosts handles GET /api/blogs
func (h *ContentHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.service.ListPosts(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list blog posts")
		return
	}
	utils.ResponseSuccess(w, "success", posts)
}

// GetPost handles GET /api/blogs/{id}
func (h *ContentHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.service.GetPost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "get blog post")
		return
	}
	utils.ResponseSuccess(w, "success", post)
}

func (h *ContentHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req request.BlogPostRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	post, err := h.service.CreatePost(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create blog post")
		return
	}
	utils.ResponseCreated(w, "Blog post created", post)
}

func (h *ContentHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	var req request.BlogPostRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	post, err := h.service.UpdatePost(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update blog post")
		return
	}
	utils.ResponseSuccess(w, "Blog post updated", post)
}

func (h *ContentHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeletePost(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(h.log, w, err, "delete blog post")
		return
	}
	utils.ResponseSuccess(w, "Blog post deleted", nil)
}
