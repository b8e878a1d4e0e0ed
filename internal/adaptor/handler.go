package adaptor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"tourism-booking/internal/subscription"
	"tourism-booking/internal/usecase"
	"tourism-booking/pkg/database"
	"tourism-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth          *AuthHandler
	User          *UserHandler
	Tour          *TourHandler
	Booking       *BookingHandler
	CustomRequest *CustomRequestHandler
	Submission    *SubmissionHandler
	Feedback      *FeedbackHandler
	Content       *ContentHandler
	Stream        *StreamHandler
}

func NewHandler(service *usecase.Service, hub Subscriber, log *zap.Logger) *Handler {
	return &Handler{
		Auth:          NewAuthHandler(service.Auth, log),
		User:          NewUserHandler(service.User, log),
		Tour:          NewTourHandler(service.Tour, service.Booking, log),
		Booking:       NewBookingHandler(service.Booking, log),
		CustomRequest: NewCustomRequestHandler(service.CustomRequest, log),
		Submission:    NewSubmissionHandler(service.Submission, log),
		Feedback:      NewFeedbackHandler(service.Feedback, log),
		Content:       NewContentHandler(service.Content, log),
		Stream:        NewStreamHandler(hub, log),
	}
}

// Subscriber is the part of the subscription hub the stream handler needs
type Subscriber interface {
	Subscribe(ctx context.Context, view string, c subscription.Collection, f subscription.Filter) (<-chan subscription.Event, func(), error)
}

// decodeJSON reads the request body into dst, answering 400 on failure
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}
	return true
}

// requireUser answers 401 when no identity is attached
func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return "", false
	}
	return userID, true
}

// handleServiceError maps service errors onto HTTP status codes
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	var verr *utils.ValidationError
	switch {
	case errors.As(err, &verr):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, "Validation failed", verr.Fields)

	case errors.Is(err, database.ErrNotConfigured):
		log.Warn(operation + " failed - backend not configured")
		utils.ResponseUnavailable(w, "Backend is not configured. Please try again later.")

	case strings.Contains(errMsg, "unauthorized"):
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, errMsg)

	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "invalid"):
		log.Warn("Invalid input for "+operation, zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
