package notify

import (
	"context"
	"sync"
	"time"

	"tourism-booking/internal/data/entity"

	"go.uber.org/zap"
)

const publishTimeout = 5 * time.Second

// Publisher is satisfied by kafka.Producer
type Publisher interface {
	Publish(ctx context.Context, topic, key string, payload any) error
}

// LogPublisher stands in when no broker is configured
type LogPublisher struct {
	log *zap.Logger
}

func NewLogPublisher(log *zap.Logger) *LogPublisher {
	return &LogPublisher{log: log.With(zap.String("component", "notify"))}
}

func (p *LogPublisher) Publish(_ context.Context, topic, key string, _ any) error {
	p.log.Info("Notification not sent, no broker configured",
		zap.String("topic", topic),
		zap.String("key", key))
	return nil
}

// Notifier publishes events without blocking the caller. Failures are
// logged and never reach the request that triggered them.
type Notifier struct {
	pub   Publisher
	topic string
	log   *zap.Logger
	now   func() time.Time
	wg    sync.WaitGroup
}

func NewNotifier(pub Publisher, topic string, log *zap.Logger) *Notifier {
	return &Notifier{
		pub:   pub,
		topic: topic,
		log:   log.With(zap.String("component", "notify")),
		now:   time.Now,
	}
}

func (n *Notifier) BookingCreated(b entity.Booking) {
	n.fire(Event{Kind: KindBookingCreated, Booking: &b, OccurredAt: n.now()})
}

func (n *Notifier) CustomRequestCreated(r entity.CustomTourRequest) {
	n.fire(Event{Kind: KindCustomRequestCreated, CustomRequest: &r, OccurredAt: n.now()})
}

// Wait blocks until in-flight publishes finish
func (n *Notifier) Wait() {
	n.wg.Wait()
}

func (n *Notifier) fire(ev Event) {
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()

		if err := n.pub.Publish(ctx, n.topic, ev.Key(), ev); err != nil {
			n.log.Warn("Failed to publish notification",
				zap.String("kind", string(ev.Kind)),
				zap.String("key", ev.Key()),
				zap.Error(err))
		}
	}()
}
