// Package localstore keeps a per-owner copy of the profile, bookings and
// seller submissions. It backs read paths when the system of record is
// unavailable and is never authoritative.
package localstore

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"tourism-booking/internal/data/entity"
	"tourism-booking/pkg/utils"

	"go.uber.org/zap"
)

const (
	ProfileKey     = "tourism_profile"
	BookingsKey    = "tourism_bookings"
	SubmissionsKey = "tourism_seller_submissions"
)

// KV is a byte-oriented key/value backend. Get returns nil, nil for a
// missing key.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

type LocalBooking struct {
	entity.Booking
	SubmittedAt time.Time `json:"submittedAt"`
}

type LocalSubmission struct {
	entity.SellerSubmission
	SubmittedAt time.Time `json:"submittedAt"`
}

type localProfile struct {
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  entity.Role `json:"role"`
}

type Store struct {
	kv  KV
	log *zap.Logger
	now func() time.Time
}

// New builds a Store on kv. now stamps entries and local ids; nil means
// time.Now.
func New(kv KV, log *zap.Logger, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		kv:  kv,
		log: log.With(zap.String("component", "localstore")),
		now: now,
	}
}

func key(prefix, owner string) string {
	return prefix + ":" + owner
}

// LoadProfile returns nil unless name, email and role are all present
func (s *Store) LoadProfile(ctx context.Context, owner string) (*entity.User, error) {
	var p localProfile
	ok, err := s.read(ctx, key(ProfileKey, owner), &p)
	if err != nil || !ok {
		return nil, err
	}
	if p.Name == "" || p.Email == "" || p.Role == "" {
		return nil, nil
	}
	return &entity.User{
		ID:    utils.UserIDFromEmail(p.Email),
		Name:  p.Name,
		Email: p.Email,
		Role:  p.Role,
	}, nil
}

func (s *Store) SaveProfile(ctx context.Context, owner string, profile entity.User) error {
	return s.write(ctx, key(ProfileKey, owner), localProfile{
		Name:  profile.Name,
		Email: profile.Email,
		Role:  profile.Role,
	})
}

// LoadBookings returns the owner's bookings, newest first
func (s *Store) LoadBookings(ctx context.Context, owner string) ([]LocalBooking, error) {
	var items []LocalBooking
	ok, err := s.read(ctx, key(BookingsKey, owner), &items)
	if err != nil {
		return nil, err
	}
	if !ok || items == nil {
		return []LocalBooking{}, nil
	}
	return items, nil
}

// AppendBooking prepends booking, defaulting its status to pending
func (s *Store) AppendBooking(ctx context.Context, owner string, booking entity.Booking) error {
	existing, err := s.LoadBookings(ctx, owner)
	if err != nil {
		return err
	}
	if booking.Status == "" {
		booking.Status = entity.StatusPending
	}
	entry := LocalBooking{Booking: booking, SubmittedAt: s.now()}
	return s.write(ctx, key(BookingsKey, owner), slices.Insert(existing, 0, entry))
}

// LoadSubmissions returns the owner's submissions, newest first
func (s *Store) LoadSubmissions(ctx context.Context, owner string) ([]LocalSubmission, error) {
	var items []LocalSubmission
	ok, err := s.read(ctx, key(SubmissionsKey, owner), &items)
	if err != nil {
		return nil, err
	}
	if !ok || items == nil {
		return []LocalSubmission{}, nil
	}
	return items, nil
}

// AppendSubmission prepends a pending copy of sub. The id is the current
// Unix millisecond timestamp when sub has none.
func (s *Store) AppendSubmission(ctx context.Context, owner string, sub entity.SellerSubmission) (LocalSubmission, error) {
	existing, err := s.LoadSubmissions(ctx, owner)
	if err != nil {
		return LocalSubmission{}, err
	}
	now := s.now()
	if sub.ID == "" {
		sub.ID = utils.TimestampIDString(now)
	}
	sub.Status = entity.StatusPending
	entry := LocalSubmission{SellerSubmission: sub, SubmittedAt: now}
	if err := s.write(ctx, key(SubmissionsKey, owner), slices.Insert(existing, 0, entry)); err != nil {
		return LocalSubmission{}, err
	}
	return entry, nil
}

// read decodes the stored value into out and reports whether it did.
// Missing and malformed values both report false; only backend failures
// are errors.
func (s *Store) read(ctx context.Context, k string, out any) (bool, error) {
	raw, err := s.kv.Get(ctx, k)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", k, err)
	}
	if len(raw) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		s.log.Warn("Discarding malformed local value", zap.String("key", k), zap.Error(err))
		return false, nil
	}
	return true, nil
}

func (s *Store) write(ctx context.Context, k string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", k, err)
	}
	if err := s.kv.Set(ctx, k, raw); err != nil {
		return fmt.Errorf("write %s: %w", k, err)
	}
	return nil
}
