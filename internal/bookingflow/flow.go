// Package bookingflow drives a single booking through details, payment and
// confirmation, and owns the price arithmetic of that booking.
package bookingflow

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"tourism-booking/internal/catalog"
	"tourism-booking/internal/data/entity"
	"tourism-booking/pkg/database"
	"tourism-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Step string

const (
	StepDetails Step = "details"
	StepPayment Step = "payment"
	StepDone    Step = "done"
)

var (
	// ErrBackendNotConfigured is the same sentinel the database layer returns
	ErrBackendNotConfigured = database.ErrNotConfigured
	ErrSignInRequired       = errors.New("unauthorized: please sign in to submit a booking request")
	ErrInvalidTransition    = errors.New("invalid booking step transition")
)

const defaultSubmitMessage = "Unable to submit your booking request."

// Details is the first form of the flow
type Details struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone"`
	Participants int    `json:"participants" validate:"gte=1"`
	StartDate    string `json:"startDate" validate:"required"`
	EndDate      string `json:"endDate" validate:"required"`
	Notes        string `json:"notes"`
}

// Payment is the simulated card form. It is validated and then dropped.
type Payment struct {
	CardName   string `json:"cardName" validate:"required"`
	CardNumber string `json:"cardNumber" validate:"min=12"`
	Expiry     string `json:"expiry" validate:"min=4"`
	CVC        string `json:"cvc" validate:"min=3"`
}

func (Payment) String() string { return "Payment{redacted}" }

// Submitter persists the booking in the system of record
type Submitter interface {
	Create(ctx context.Context, booking *entity.Booking) error
}

// Mirror is the local fallback copy written after a successful submit
type Mirror interface {
	AppendBooking(ctx context.Context, owner string, booking entity.Booking) error
	LoadProfile(ctx context.Context, owner string) (*entity.User, error)
	SaveProfile(ctx context.Context, owner string, profile entity.User) error
}

// Deps carries everything a Flow needs besides the tour. Mirror may be nil.
type Deps struct {
	Configured bool
	UserID     string
	Submitter  Submitter
	Mirror     Mirror
	Log        *zap.Logger
	Now        func() time.Time
}

// Flow is owned by one caller and is not safe for concurrent use
type Flow struct {
	tour    entity.Tour
	deps    Deps
	log     *zap.Logger
	step    Step
	details Details
	booking *entity.Booking
	errMsg  string
}

func New(tour entity.Tour, deps Deps) *Flow {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Flow{
		tour:    tour,
		deps:    deps,
		log:     log.With(zap.String("component", "bookingflow"), zap.Int64("tour_id", tour.ID)),
		step:    StepDetails,
		details: Details{Participants: 1},
	}
}

func (f *Flow) Step() Step { return f.step }

func (f *Flow) Details() Details { return f.details }

// ErrorMessage is the user-facing message of the last failed action
func (f *Flow) ErrorMessage() string { return f.errMsg }

// Booking returns the submitted booking once the flow is done
func (f *Flow) Booking() *entity.Booking { return f.booking }

// UnitPrice is the numeric per-person price of the tour
func (f *Flow) UnitPrice() float64 {
	return catalog.ExtractNumber(f.tour.Price)
}

// Participants never reports fewer than one
func (f *Flow) Participants() int {
	return max(1, f.details.Participants)
}

func (f *Flow) Total() float64 {
	return Total(f.UnitPrice(), f.details.Participants)
}

// SetParticipants updates the live total. Frozen once the flow is done.
func (f *Flow) SetParticipants(n int) error {
	if f.step == StepDone {
		return ErrInvalidTransition
	}
	f.details.Participants = n
	return nil
}

// SubmitDetails validates the form and the preconditions for booking, then
// moves to the payment step.
func (f *Flow) SubmitDetails(d Details) error {
	if f.step != StepDetails {
		return ErrInvalidTransition
	}
	f.errMsg = ""

	if err := utils.Validate(d); err != nil {
		f.errMsg = "Please correct the highlighted fields."
		return err
	}
	f.details = d

	if !f.deps.Configured {
		f.errMsg = "Backend is not configured. Please update your configuration."
		return ErrBackendNotConfigured
	}
	if f.deps.UserID == "" {
		f.errMsg = "Please sign in to submit a booking request."
		return ErrSignInRequired
	}

	f.step = StepPayment
	return nil
}

// Back returns from payment to details and keeps what was entered
func (f *Flow) Back() error {
	if f.step != StepPayment {
		return ErrInvalidTransition
	}
	f.errMsg = ""
	f.step = StepDetails
	return nil
}

// SubmitPayment validates the card form and submits the booking. A failed
// submit leaves the flow in the payment step so the caller can retry.
func (f *Flow) SubmitPayment(ctx context.Context, p Payment) (*entity.Booking, error) {
	if f.step != StepPayment {
		return nil, ErrInvalidTransition
	}
	f.errMsg = ""

	if err := utils.Validate(p); err != nil {
		f.errMsg = "Please correct the highlighted fields."
		return nil, err
	}

	booking := f.snapshot()
	if err := f.deps.Submitter.Create(ctx, booking); err != nil {
		f.errMsg = err.Error()
		if f.errMsg == "" {
			f.errMsg = defaultSubmitMessage
		}
		f.log.Warn("Booking submit failed", zap.Error(err))
		return nil, fmt.Errorf("submit booking: %w", err)
	}

	f.mirror(ctx, *booking)

	f.booking = booking
	f.step = StepDone
	f.log.Info("Booking submitted",
		zap.String("booking_id", booking.ID.String()),
		zap.Int("participants", booking.Participants),
		zap.Float64("total", booking.TotalAmount),
	)
	return booking, nil
}

func (f *Flow) snapshot() *entity.Booking {
	now := f.deps.Now()
	total := f.Total()
	return &entity.Booking{
		ID:             uuid.New(),
		TourID:         f.tour.ID,
		TourTitle:      f.tour.Title,
		Name:           f.details.Name,
		Email:          f.details.Email,
		Phone:          f.details.Phone,
		Participants:   f.Participants(),
		StartDate:      f.details.StartDate,
		EndDate:        f.details.EndDate,
		Notes:          f.details.Notes,
		PricePerPerson: f.tour.Price,
		TotalPrice:     FormatTotal(total, f.tour.Price),
		TotalAmount:    total,
		UserID:         f.deps.UserID,
		Status:         entity.StatusPending,
		Timestamps:     entity.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
}

// mirror copies the booking into the local store and seeds a buyer profile
// when there is none. Failures never undo the remote write.
func (f *Flow) mirror(ctx context.Context, booking entity.Booking) {
	m := f.deps.Mirror
	if m == nil {
		return
	}
	owner := f.deps.UserID

	if err := m.AppendBooking(ctx, owner, booking); err != nil {
		f.log.Warn("Failed to mirror booking locally", zap.Error(err))
	}

	existing, err := m.LoadProfile(ctx, owner)
	if err != nil {
		f.log.Warn("Failed to load local profile", zap.Error(err))
		return
	}
	if existing != nil || booking.Name == "" || booking.Email == "" {
		return
	}
	profile := entity.User{Name: booking.Name, Email: booking.Email, Role: entity.RoleBuyer}
	if err := m.SaveProfile(ctx, owner, profile); err != nil {
		f.log.Warn("Failed to save local profile", zap.Error(err))
	}
}

// Total is unit price times participants, with participants floored at one
func Total(unit float64, participants int) float64 {
	return unit * float64(max(1, participants))
}

// FormatTotal renders the display total, falling back to the raw tour price
// when the numeric total is zero.
func FormatTotal(total float64, rawPrice string) string {
	if total == 0 {
		return rawPrice
	}
	return "$" + strconv.FormatFloat(total, 'f', -1, 64)
}
