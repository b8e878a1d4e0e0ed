package adaptor

import (
	"net/http"

	"tourism-booking/internal/dto/request"
	"tourism-booking/internal/usecase"
	"tourism-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SubmissionHandler struct {
	service usecase.SubmissionService
	log     *zap.Logger
}

func NewSubmissionHandler(service usecase.SubmissionService, log *zap.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		service: service,
		log:     log.With(zap.String("handler", "submission")),
	}
}

// Submit handles POST /api/seller/submissions. Identity is optional: without
// a backend the proposal is kept locally under the contact email.
func (h *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	var req request.CreateSubmissionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sub, err := h.service.Submit(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "submit tour proposal")
		return
	}

	utils.ResponseCreated(w, "Tour proposal submitted", sub)
}

// ListMine handles GET /api/seller/submissions (protected)
func (h *SubmissionHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	list, err := h.service.ListMine(r.Context(), userID)
	if err != nil {
		handleServiceError(h.log, w, err, "list own submissions")
		return
	}

	utils.ResponseSuccess(w, list.Message, list)
}

// List handles GET /api/admin/submissions (admin only)
func (h *SubmissionHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list submissions")
		return
	}

	utils.ResponseSuccess(w, "success", items)
}

// UpdateStatus handles PUT /api/admin/submissions/{id}/status (admin only)
func (h *SubmissionHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateSubmissionStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), &req); err != nil {
		handleServiceError(h.log, w, err, "update submission status")
		return
	}

	utils.ResponseSuccess(w, "Submission status updated", nil)
}

// Approve handles POST /api/admin/submissions/{id}/approve (admin only)
func (h *SubmissionHandler) Approve(w http.ResponseWriter, r *http.Request) {
	tour, err := h.service.Approve(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "approve submission")
		return
	}

	utils.ResponseCreated(w, "Submission approved and published", tour)
}
