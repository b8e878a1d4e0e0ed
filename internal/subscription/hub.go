// Package subscription pushes fresh snapshots of a collection to live
// listeners whenever that collection changes.
package subscription

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

type Collection string

const (
	Bookings       Collection = "bookings"
	CustomRequests Collection = "custom-requests"
	Submissions    Collection = "seller-submissions"
	Feedback       Collection = "feedback"
)

var ErrUnknownCollection = errors.New("invalid collection")

// Filter narrows a snapshot. An empty OwnerID means every record.
type Filter struct {
	OwnerID string
}

// Event is one snapshot. A failed fetch is delivered with Err set and no Data.
type Event struct {
	Collection Collection
	Data       any
	Err        error
	At         time.Time
}

// Fetcher loads the current snapshot of a collection
type Fetcher func(ctx context.Context, f Filter) (any, error)

type subKey struct {
	view       string
	collection Collection
}

type subscriber struct {
	key     subKey
	filter  Filter
	ch      chan Event
	refresh chan struct{}
	cancel  context.CancelFunc
}

type Hub struct {
	mu       sync.Mutex
	fetchers map[Collection]Fetcher
	subs     map[subKey]*subscriber
	log      *zap.Logger
	now      func() time.Time
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		fetchers: make(map[Collection]Fetcher),
		subs:     make(map[subKey]*subscriber),
		log:      log.With(zap.String("component", "subscription")),
		now:      time.Now,
	}
}

// Register sets the fetcher used for c. Call before serving.
func (h *Hub) Register(c Collection, fetch Fetcher) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.fetchers[c] = fetch
}

// Subscribe starts a live view of collection c for the given view id. A
// previous subscription with the same view and collection is cancelled
// first. The channel receives an initial snapshot and then one per change,
// and is closed after cancel is called or ctx ends. cancel is idempotent.
func (h *Hub) Subscribe(ctx context.Context, view string, c Collection, f Filter) (<-chan Event, func(), error) {
	h.mu.Lock()
	fetch, ok := h.fetchers[c]
	if !ok {
		h.mu.Unlock()
		return nil, nil, ErrUnknownCollection
	}

	sctx, cancel := context.WithCancel(ctx)
	s := &subscriber{
		key:     subKey{view: view, collection: c},
		filter:  f,
		ch:      make(chan Event, 1),
		refresh: make(chan struct{}, 1),
		cancel:  cancel,
	}
	if prev, exists := h.subs[s.key]; exists {
		prev.cancel()
		h.log.Debug("Replacing subscription", zap.String("view", view), zap.String("collection", string(c)))
	}
	h.subs[s.key] = s
	h.mu.Unlock()

	go h.run(sctx, s, fetch)

	return s.ch, func() { h.drop(s) }, nil
}

// Notify schedules a refresh for every subscriber of c. Pending refreshes
// coalesce.
func (h *Hub) Notify(c Collection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for k, s := range h.subs {
		if k.collection != c {
			continue
		}
		select {
		case s.refresh <- struct{}{}:
		default:
		}
	}
}

// Active reports the number of live subscriptions
func (h *Hub) Active() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

func (h *Hub) drop(s *subscriber) {
	s.cancel()
	h.mu.Lock()
	if h.subs[s.key] == s {
		delete(h.subs, s.key)
	}
	h.mu.Unlock()
}

// run is the only goroutine that sends on or closes s.ch
func (h *Hub) run(ctx context.Context, s *subscriber, fetch Fetcher) {
	defer close(s.ch)
	defer h.drop(s)

	h.deliver(ctx, s, fetch)
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.refresh:
			h.deliver(ctx, s, fetch)
		}
	}
}

// deliver keeps only the newest snapshot buffered for slow readers
func (h *Hub) deliver(ctx context.Context, s *subscriber, fetch Fetcher) {
	data, err := fetch(ctx, s.filter)
	if ctx.Err() != nil {
		return
	}
	if err != nil {
		h.log.Warn("Snapshot fetch failed",
			zap.String("collection", string(s.key.collection)),
			zap.String("view", s.key.view),
			zap.Error(err))
		data = nil
	}
	ev := Event{Collection: s.key.collection, Data: data, Err: err, At: h.now()}

	select {
	case s.ch <- ev:
		return
	default:
	}
	select {
	case <-s.ch:
	default:
	}
	select {
	case s.ch <- ev:
	default:
	}
}
