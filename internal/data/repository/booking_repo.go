package repository

import (
	"context"
	"errors"
	"fmt"

	"tourism-booking/internal/data/entity"
	"tourism-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindAll(ctx context.Context) ([]entity.Booking, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID string) ([]entity.Booking, error)
	FindByEmail(ctx context.Context, email string) ([]entity.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.Status) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, tour_id, tour_title, name, email, phone, participants,
	start_date, end_date, notes, price_per_person, total_price, total_amount,
	user_id, status, created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var b entity.Booking
	err := row.Scan(
		&b.ID,
		&b.TourID,
		&b.TourTitle,
		&b.Name,
		&b.Email,
		&b.Phone,
		&b.Participants,
		&b.StartDate,
		&b.EndDate,
		&b.Notes,
		&b.PricePerPerson,
		&b.TotalPrice,
		&b.TotalAmount,
		&b.UserID,
		&b.Status,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Create stores a booking request. An id is assigned when booking has none.
func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	if booking.UserID == "" {
		return ErrSignInRequired
	}
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	if booking.Status == "" {
		booking.Status = entity.StatusPending
	}

	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.TourID,
		booking.TourTitle,
		booking.Name,
		booking.Email,
		booking.Phone,
		booking.Participants,
		booking.StartDate,
		booking.EndDate,
		booking.Notes,
		booking.PricePerPerson,
		booking.TotalPrice,
		booking.TotalAmount,
		booking.UserID,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.Int64("tour_id", booking.TourID),
			zap.String("user_id", booking.UserID),
		)
		return fmt.Errorf("create booking for tour %d: %w", booking.TourID, err)
	}

	return nil
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC`
	return r.list(ctx, "find all bookings", query)
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID string) ([]entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, "find bookings by user ID", query, userID)
}

// FindByEmail matches the contact email case-insensitively
func (r *bookingRepository) FindByEmail(ctx context.Context, email string) ([]entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE LOWER(email) = LOWER($1) ORDER BY created_at DESC`
	return r.list(ctx, "find bookings by email", query, email)
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	b, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id, err)
	}

	return b, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.Status) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking status %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", id)
	}

	return nil
}

func (r *bookingRepository) list(ctx context.Context, op, query string, args ...any) ([]entity.Booking, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query bookings", zap.String("op", op), zap.Error(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	bookings := []entity.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, *b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return bookings, nil
}
