package adaptor

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"tourism-booking/internal/subscription"
	"tourism-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// StreamHandler serves live collection snapshots as server-sent events
type StreamHandler struct {
	hub Subscriber
	log *zap.Logger
}

func NewStreamHandler(hub Subscriber, log *zap.Logger) *StreamHandler {
	return &StreamHandler{
		hub: hub,
		log: log.With(zap.String("handler", "stream")),
	}
}

type snapshot struct {
	Collection subscription.Collection `json:"collection"`
	Items      any                     `json:"items,omitempty"`
	Error      string                  `json:"error,omitempty"`
	At         time.Time               `json:"at"`
}

// Stream handles GET /api/stream/{collection}?view=<id> (protected).
// Admins see every record; everyone else only their own. Feedback is
// admin-only.
func (h *StreamHandler) Stream(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	collection := subscription.Collection(chi.URLParam(r, "collection"))
	admin := utils.IsAdmin(r.Context())

	if collection == subscription.Feedback && !admin {
		utils.ResponseForbidden(w, "Admin access required")
		return
	}

	filter := subscription.Filter{OwnerID: userID}
	if admin {
		filter = subscription.Filter{}
	}

	view := r.URL.Query().Get("view")
	if view == "" {
		view = "default"
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.ResponseInternalError(w, "Streaming unsupported")
		return
	}

	events, cancel, err := h.hub.Subscribe(r.Context(), userID+"/"+view, collection, filter)
	if errors.Is(err, subscription.ErrUnknownCollection) {
		utils.ResponseNotFound(w, fmt.Sprintf("collection %q not found", collection))
		return
	}
	if err != nil {
		handleServiceError(h.log, w, err, "subscribe")
		return
	}
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	h.log.Debug("Stream opened", zap.String("collection", string(collection)), zap.String("user_id", userID))
	for {
		select {
		case <-r.Context().Done():
			return
		case ev, open := <-events:
			if !open {
				return
			}
			if err := writeEvent(w, ev); err != nil {
				h.log.Warn("Stream write failed", zap.Error(err))
				return
			}
			flusher.Flush()
		}
	}
}

func writeEvent(w http.ResponseWriter, ev subscription.Event) error {
	name := "snapshot"
	payload := snapshot{Collection: ev.Collection, Items: ev.Data, At: ev.At}
	if ev.Err != nil {
		name = "error"
		payload.Items = nil
		payload.Error = fmt.Sprintf("Unable to load %s.", ev.Collection)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", name, data)
	return err
}
