package adaptor

import (
	"net/http"

	"tourism-booking/internal/dto/request"
	"tourism-booking/internal/usecase"
	"tourism-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FeedbackHandler struct {
	service usecase.FeedbackService
	log     *zap.Logger
}

func NewFeedbackHandler(service usecase.FeedbackService, log *zap.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		service: service,
		log:     log.With(zap.String("handler", "feedback")),
	}
}

// List handles GET /api/feedback
func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list feedback")
		return
	}

	utils.ResponseSuccess(w, "success", entries)
}

// Submit handles POST /api/feedback
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req request.CreateFeedbackRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	fb, err := h.service.Submit(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "submit feedback")
		return
	}

	utils.ResponseCreated(w, "Thank you for your feedback", fb)
}

// Respond handles PUT /api/admin/feedback/{id}/response (admin only)
func (h *FeedbackHandler) Respond(w http.ResponseWriter, r *http.Request) {
	var req request.RespondFeedbackRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.service.Respond(r.Context(), chi.URLParam(r, "id"), &req); err != nil {
		handleServiceError(h.log, w, err, "respond to feedback")
		return
	}

	utils.ResponseSuccess(w, "Response saved", nil)
}
