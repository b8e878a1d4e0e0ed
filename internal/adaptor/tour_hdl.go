package adaptor

import (
	"net/http"
	"strconv"

	"tourism-booking/internal/catalog"
	"tourism-booking/internal/dto/request"
	"tourism-booking/internal/usecase"
	"tourism-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TourHandler struct {
	service  usecase.TourService
	bookings usecase.BookingService
	log      *zap.Logger
}

func NewTourHandler(service usecase.TourService, bookings usecase.BookingService, log *zap.Logger) *TourHandler {
	return &TourHandler{
		service:  service,
		bookings: bookings,
		log:      log.With(zap.String("handler", "tour")),
	}
}

// ListTours handles GET /api/tours
func (h *TourHandler) ListTours(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	criteria := catalog.Criteria{
		Search:     query.Get("search"),
		Season:     query.Get("season"),
		TourType:   query.Get("type"),
		Difficulty: query.Get("difficulty"),
		MinPrice:   catalog.ParseBound(query.Get("min_price")),
		MaxPrice:   catalog.ParseBound(query.Get("max_price")),
		Sort:       catalog.ParseSort(query.Get("sort")),
	}

	tours, err := h.service.ListTours(r.Context(), criteria)
	if err != nil {
		handleServiceError(h.log, w, err, "list tours")
		return
	}

	utils.ResponseSuccess(w, "success", tours)
}

// GetTour handles GET /api/tours/{id}
func (h *TourHandler) GetTour(w http.ResponseWriter, r *http.Request) {
	id, ok := tourID(w, r)
	if !ok {
		return
	}

	tour, err := h.service.GetTour(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, err, "get tour")
		return
	}

	utils.ResponseSuccess(w, "success", tour)
}

// Quote handles POST /api/tours/{id}/quote
func (h *TourHandler) Quote(w http.ResponseWriter, r *http.Request) {
	id, ok := tourID(w, r)
	if !ok {
		return
	}

	var req request.QuoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	quote, err := h.bookings.Quote(r.Context(), id, req.Participants)
	if err != nil {
		handleServiceError(h.log, w, err, "quote tour")
		return
	}

	utils.ResponseSuccess(w, "success", quote)
}

// CreateTour handles POST /api/admin/tours (admin only)
func (h *TourHandler) CreateTour(w http.ResponseWriter, r *http.Request) {
	var req request.TourRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	tour, err := h.service.CreateTour(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create tour")
		return
	}

	utils.ResponseCreated(w, "Tour created", tour)
}

// UpdateTour handles PUT /api/admin/tours/{id} (admin only)
func (h *TourHandler) UpdateTour(w http.ResponseWriter, r *http.Request) {
	id, ok := tourID(w, r)
	if !ok {
		return
	}

	var req request.UpdateTourRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	tour, err := h.service.UpdateTour(r.Context(), id, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update tour")
		return
	}

	utils.ResponseSuccess(w, "Tour updated", tour)
}

// DeleteTour handles DELETE /api/admin/tours/{id} (admin only)
func (h *TourHandler) DeleteTour(w http.ResponseWriter, r *http.Request) {
	id, ok := tourID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteTour(r.Context(), id); err != nil {
		handleServiceError(h.log, w, err, "delete tour")
		return
	}

	utils.ResponseSuccess(w, "Tour deleted", nil)
}

func tourID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		utils.ResponseBadRequest(w, "Invalid tour ID", nil)
		return 0, false
	}
	return id, true
}
