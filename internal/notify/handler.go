package notify

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"
)

// Sender delivers one email
type Sender interface {
	Send(msg Message) error
}

// Handler consumes encoded events and mails them
type Handler struct {
	sender     Sender
	adminEmail string
	log        *zap.Logger
}

func NewHandler(sender Sender, adminEmail string, log *zap.Logger) *Handler {
	return &Handler{
		sender:     sender,
		adminEmail: adminEmail,
		log:        log.With(zap.String("component", "notify_handler")),
	}
}

// Handle never fails on a bad message so one poison event cannot stall the
// consumer. Send failures are logged per recipient.
func (h *Handler) Handle(_ context.Context, payload []byte) error {
	var ev Event
	if err := json.Unmarshal(payload, &ev); err != nil {
		h.log.Warn("Dropping undecodable notification", zap.Error(err))
		return nil
	}

	msgs := Compose(ev, h.adminEmail)
	if len(msgs) == 0 {
		h.log.Warn("Notification has nothing to send", zap.String("kind", string(ev.Kind)))
		return nil
	}

	var errs []error
	for _, msg := range msgs {
		if err := h.sender.Send(msg); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		h.log.Error("Failed to send notification emails",
			zap.String("kind", string(ev.Kind)),
			zap.String("key", ev.Key()),
			zap.Error(err))
	}
	return nil
}
