package adaptor

import (
	"net/http"

	"tourism-booking/internal/dto/request"
	"tourism-booking/internal/usecase"
	"tourism-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CustomRequestHandler struct {
	service usecase.CustomRequestService
	log     *zap.Logger
}

func NewCustomRequestHandler(service usecase.CustomRequestService, log *zap.Logger) *CustomRequestHandler {
	return &CustomRequestHandler{
		service: service,
		log:     log.With(zap.String("handler", "custom_request")),
	}
}

// Submit handles POST /api/custom-requests (protected)
func (h *CustomRequestHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req request.CreateCustomRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	cr, err := h.service.Submit(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "submit custom request")
		return
	}

	utils.ResponseCreated(w, "Custom tour request submitted", cr)
}

// ListMine handles GET /api/user/custom-requests (protected)
func (h *CustomRequestHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	items, err := h.service.ListMine(r.Context(), userID)
	if err != nil {
		handleServiceError(h.log, w, err, "list own custom requests")
		return
	}

	utils.ResponseSuccess(w, "success", items)
}

// List handles GET /api/admin/custom-requests (admin only)
func (h *CustomRequestHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list custom requests")
		return
	}

	utils.ResponseSuccess(w, "success", items)
}

// UpdateStatus handles PUT /api/admin/custom-requests/{id}/status (admin only)
func (h *CustomRequestHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), &req); err != nil {
		handleServiceError(h.log, w, err, "update custom request status")
		return
	}

	utils.ResponseSuccess(w, "Custom request status updated", nil)
}
