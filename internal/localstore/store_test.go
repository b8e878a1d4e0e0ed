package localstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tourism-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) (*Store, *FileKV) {
	t.Helper()
	kv, err := NewFileKV(t.TempDir())
	require.NoError(t, err)
	s := New(kv, zap.NewNop(), nil)
	return s, kv
}

func TestStore_ProfileRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	p, err := s.LoadProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, p)

	require.NoError(t, s.SaveProfile(ctx, "u1", entity.User{Name: "Aida", Email: "Aida@Example.com", Role: entity.RoleBuyer}))

	p, err = s.LoadProfile(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Aida", p.Name)
	assert.Equal(t, entity.RoleBuyer, p.Role)
	assert.Equal(t, "aida@example.com", p.ID)

	other, err := s.LoadProfile(ctx, "u2")
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestStore_IncompleteProfileIsAbsent(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveProfile(ctx, "u1", entity.User{Name: "Aida", Email: "aida@example.com"}))
	p, err := s.LoadProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestStore_BookingsNewestFirst(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { clock = clock.Add(time.Minute); return clock }

	require.NoError(t, s.AppendBooking(ctx, "u1", entity.Booking{TourTitle: "first"}))
	require.NoError(t, s.AppendBooking(ctx, "u1", entity.Booking{TourTitle: "second", Status: entity.StatusApproved}))

	items, err := s.LoadBookings(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "second", items[0].TourTitle)
	assert.Equal(t, entity.StatusApproved, items[0].Status)
	assert.Equal(t, "first", items[1].TourTitle)
	assert.Equal(t, entity.StatusPending, items[1].Status)
	assert.True(t, items[0].SubmittedAt.After(items[1].SubmittedAt))
}

func TestStore_SubmissionsGetTimestampID(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	now := time.UnixMilli(1717000000123)
	s.now = func() time.Time { return now }

	entry, err := s.AppendSubmission(ctx, "seller", entity.SellerSubmission{Title: "Yurt camp", Status: entity.StatusApproved})
	require.NoError(t, err)
	assert.Equal(t, "1717000000123", entry.ID)
	assert.Equal(t, entity.StatusPending, entry.Status)

	items, err := s.LoadSubmissions(ctx, "seller")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Yurt camp", items[0].Title)
	assert.Equal(t, now.UTC(), items[0].SubmittedAt.UTC())
}

func TestStore_MalformedValuesReadAsEmpty(t *testing.T) {
	s, kv := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, key(BookingsKey, "u1"), []byte("{not json")))
	require.NoError(t, kv.Set(ctx, key(SubmissionsKey, "u1"), []byte(`{"an":"object"}`)))
	require.NoError(t, kv.Set(ctx, key(ProfileKey, "u1"), []byte(`[1,2,3]`)))

	bookings, err := s.LoadBookings(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, bookings)
	assert.NotNil(t, bookings)

	subs, err := s.LoadSubmissions(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, subs)

	p, err := s.LoadProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, p)

	require.NoError(t, s.AppendBooking(ctx, "u1", entity.Booking{TourTitle: "fresh"}))
	bookings, err = s.LoadBookings(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "fresh", bookings[0].TourTitle)
}

type failingKV struct{}

func (failingKV) Get(context.Context, string) ([]byte, error) { return nil, errors.New("backend down") }
func (failingKV) Set(context.Context, string, []byte) error   { return errors.New("backend down") }

func TestStore_BackendErrorsPropagate(t *testing.T) {
	s := New(failingKV{}, zap.NewNop(), nil)
	ctx := context.Background()

	_, err := s.LoadBookings(ctx, "u1")
	assert.ErrorContains(t, err, "backend down")
	assert.Error(t, s.AppendBooking(ctx, "u1", entity.Booking{}))
	assert.Error(t, s.SaveProfile(ctx, "u1", entity.User{}))
}

func TestFileKV_SanitizesKeys(t *testing.T) {
	dir := t.TempDir()
	kv, err := NewFileKV(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "tourism_profile:../../etc/passwd", []byte("x")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "tourism_profile_.._.._etc_passwd.json", entries[0].Name())
	assert.FileExists(t, filepath.Join(dir, entries[0].Name()))

	raw, err := kv.Get(ctx, "tourism_profile:../../etc/passwd")
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), raw)

	missing, err := kv.Get(ctx, "nothing")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
