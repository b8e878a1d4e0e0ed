package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"tourism-booking/internal/data/entity"
	"tourism-booking/internal/data/repository"
	"tourism-booking/internal/localstore"
	"tourism-booking/internal/subscription"
	"tourism-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockTourRepo struct{ mock.Mock }

func (m *MockTourRepo) FindAll(ctx context.Context) ([]entity.Tour, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Tour), args.Error(1)
}

func (m *MockTourRepo) FindByID(ctx context.Context, id int64) (*entity.Tour, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Tour), args.Error(1)
}

func (m *MockTourRepo) Create(ctx context.Context, tour *entity.Tour) error {
	return m.Called(ctx, tour).Error(0)
}

func (m *MockTourRepo) Update(ctx context.Context, tour *entity.Tour) error {
	return m.Called(ctx, tour).Error(0)
}

func (m *MockTourRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockBookingRepo struct{ mock.Mock }

func (m *MockBookingRepo) Create(ctx context.Context, b *entity.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBookingRepo) FindAll(ctx context.Context) ([]entity.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Booking), args.Error(1)
}

func (m *MockBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Booking), args.Error(1)
}

func (m *MockBookingRepo) FindByUserID(ctx context.Context, userID string) ([]entity.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Booking), args.Error(1)
}

func (m *MockBookingRepo) FindByEmail(ctx context.Context, email string) ([]entity.Booking, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Booking), args.Error(1)
}

func (m *MockBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.Status) error {
	return m.Called(ctx, id, status).Error(0)
}

type MockUserRepo struct{ mock.Mock }

func (m *MockUserRepo) Upsert(ctx context.Context, user *entity.User) (*entity.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockUserRepo) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepo) UpdateRole(ctx context.Context, id string, role entity.Role) error {
	return m.Called(ctx, id, role).Error(0)
}

type MockSessionRepo struct{ mock.Mock }

func (m *MockSessionRepo) Create(ctx context.Context, s *entity.Session) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Session), args.Error(1)
}

func (m *MockSessionRepo) Revoke(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockSessionRepo) RevokeAllUserSessions(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockSessionRepo) CleanExpiredSessions(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockSubmissionRepo struct{ mock.Mock }

func (m *MockSubmissionRepo) Create(ctx context.Context, sub *entity.SellerSubmission) error {
	return m.Called(ctx, sub).Error(0)
}

func (m *MockSubmissionRepo) FindAll(ctx context.Context) ([]entity.SellerSubmission, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.SellerSubmission), args.Error(1)
}

func (m *MockSubmissionRepo) FindByID(ctx context.Context, id string) (*entity.SellerSubmission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SellerSubmission), args.Error(1)
}

func (m *MockSubmissionRepo) FindByOwnerID(ctx context.Context, ownerID string) ([]entity.SellerSubmission, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.SellerSubmission), args.Error(1)
}

func (m *MockSubmissionRepo) FindByContactEmail(ctx context.Context, email string) ([]entity.SellerSubmission, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.SellerSubmission), args.Error(1)
}

func (m *MockSubmissionRepo) UpdateStatus(ctx context.Context, id string, status entity.Status) error {
	return m.Called(ctx, id, status).Error(0)
}

type MockCustomRequestRepo struct{ mock.Mock }

func (m *MockCustomRequestRepo) Create(ctx context.Context, req *entity.CustomTourRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockCustomRequestRepo) FindAll(ctx context.Context) ([]entity.CustomTourRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.CustomTourRequest), args.Error(1)
}

func (m *MockCustomRequestRepo) FindByUserID(ctx context.Context, userID string) ([]entity.CustomTourRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.CustomTourRequest), args.Error(1)
}

func (m *MockCustomRequestRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.Status) error {
	return m.Called(ctx, id, status).Error(0)
}

type MockCache struct{ mock.Mock }

func (m *MockCache) GetTours(ctx context.Context) ([]entity.Tour, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Tour), args.Error(1)
}

func (m *MockCache) SetTours(ctx context.Context, tours []entity.Tour) error {
	return m.Called(ctx, tours).Error(0)
}

func (m *MockCache) InvalidateTours(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// recorder collects hub notices and creation events
type recorder struct {
	mu       sync.Mutex
	changes  []subscription.Collection
	bookings []entity.Booking
	requests []entity.CustomTourRequest
}

func (r *recorder) Notify(c subscription.Collection) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changes = append(r.changes, c)
}

func (r *recorder) BookingCreated(b entity.Booking) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings = append(r.bookings, b)
}

func (r *recorder) CustomRequestCreated(c entity.CustomTourRequest) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, c)
}

var testNow = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

type fixture struct {
	repo     *repository.Repository
	tours    *MockTourRepo
	bookings *MockBookingRepo
	users    *MockUserRepo
	sessions *MockSessionRepo
	subs     *MockSubmissionRepo
	requests *MockCustomRequestRepo
	cache    *MockCache
	local    *localstore.Store
	rec      *recorder
	infra    Infra
	config   *utils.Config
	log      *zap.Logger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	kv, err := localstore.NewFileKV(t.TempDir())
	require.NoError(t, err)

	f := &fixture{
		tours:    &MockTourRepo{},
		bookings: &MockBookingRepo{},
		users:    &MockUserRepo{},
		sessions: &MockSessionRepo{},
		subs:     &MockSubmissionRepo{},
		requests: &MockCustomRequestRepo{},
		cache:    &MockCache{},
		local:    localstore.New(kv, zap.NewNop(), func() time.Time { return testNow }),
		rec:      &recorder{},
		config: &utils.Config{
			Database: utils.DatabaseConfig{Host: "db", Name: "tourism"},
			Admin:    utils.AdminConfig{Username: "admin", Password: "s3cret", Email: "ops@example.com"},
			Session:  utils.SessionConfig{ExpiryHours: 2},
		},
		log: zap.NewNop(),
	}
	f.repo = &repository.Repository{
		Tour:          f.tours,
		Booking:       f.bookings,
		User:          f.users,
		Session:       f.sessions,
		Submission:    f.subs,
		CustomRequest: f.requests,
	}
	f.infra = Infra{
		Cache:   f.cache,
		Local:   f.local,
		Changes: f.rec,
		Events:  f.rec,
		Now:     func() time.Time { return testNow },
	}
	return f
}

func (f *fixture) unconfigured() {
	f.config.Database = utils.DatabaseConfig{}
}

func sampleTours() []entity.Tour {
	return []entity.Tour{
		{ID: 1, Title: "Song-Kul Trek", Price: "$650", Season: "Summer", TourType: "Trekking", Duration: "5 days"},
		{ID: 2, Title: "Karakol Ski Week", Price: "$980", Season: "Winter", TourType: "Adventure", Duration: "6 days"},
	}
}

type MockContentRepo struct{ mock.Mock }

func (m *MockContentRepo) Get(ctx context.Context) (*entity.ContentSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ContentSettings), args.Error(1)
}

func (m *MockContentRepo) Upsert(ctx context.Context, in entity.ContentSettings) (*entity.ContentSettings, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ContentSettings), args.Error(1)
}

type MockFeedbackRepo struct{ mock.Mock }

func (m *MockFeedbackRepo) Create(ctx context.Context, fb *entity.Feedback) error {
	return m.Called(ctx, fb).Error(0)
}

func (m *MockFeedbackRepo) FindAll(ctx context.Context) ([]entity.Feedback, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Feedback), args.Error(1)
}

func (m *MockFeedbackRepo) UpdateResponse(ctx context.Context, id uuid.UUID, response string) error {
	return m.Called(ctx, id, response).Error(0)
}
