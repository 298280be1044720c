package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/workershub/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	// Create inserts a Pending booking after re-checking, under a row lock, that the
	// worker exists and is Available.
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

var bookingColumns = []string{
	"b.id", "b.worker_id", "b.full_name", "b.phone_number", "b.email", "b.address", "b.notes",
	"b.status", "b.created_at", "b.updated_at", "b.preferred_start_date", "b.contract_duration",
	"w.name", "w.profession", "w.nationality",
}

var bookingOrdering = map[string]string{
	"created_at": "b.created_at",
	"updated_at": "b.updated_at",
}

func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var status domain.WorkerStatus
	if err := tx.QueryRow(ctx, `SELECT status FROM workers WHERE id = $1 FOR UPDATE`, booking.WorkerID).
		Scan(&status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("lock worker %d: %w", booking.WorkerID, err)
	}
	if status != domain.WorkerStatusAvailable {
		return domain.ErrWorkerUnavailable
	}

	booking.Status = domain.BookingStatusPending
	if err := tx.QueryRow(ctx, `INSERT INTO booking_requests
		(worker_id, full_name, phone_number, email, address, notes, status, preferred_start_date, contract_duration)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`,
		booking.WorkerID, booking.FullName, booking.PhoneNumber, booking.Email, booking.Address,
		booking.Notes, string(booking.Status), booking.PreferredStartDate, booking.ContractDuration,
	).Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt); err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	if err := tx.QueryRow(ctx, `SELECT name, profession, nationality FROM workers WHERE id = $1`, booking.WorkerID).
		Scan(&booking.WorkerName, &booking.WorkerProfession, &booking.WorkerNationality); err != nil {
		return fmt.Errorf("load booking worker: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *PGBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query, args := newSelect(bookingColumns...).
		From("booking_requests b").
		Join("JOIN workers w ON w.id = b.worker_id").
		Where("b.id = ?", id).
		Build()

	b, err := scanBooking(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get booking %d: %w", id, err)
	}
	return b, nil
}

func (r *PGBookingRepository) List(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, error) {
	query, args := bookingListQuery(filter).Build()

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

func bookingListQuery(filter domain.BookingFilter) *selectQuery {
	q := newSelect(bookingColumns...).
		From("booking_requests b").
		Join("JOIN workers w ON w.id = b.worker_id")

	if filter.Status != "" {
		q.Where("b.status = ?", string(filter.Status))
	}
	if filter.WorkerProfession != "" {
		q.Where("w.profession = ?", string(filter.WorkerProfession))
	}
	if filter.WorkerNationality != "" {
		q.Where("w.nationality = ?", string(filter.WorkerNationality))
	}

	q.OrderBy(orderClause(filter.Ordering, bookingOrdering, "b.created_at DESC", "b.id DESC")...)
	q.Limit(filter.Limit).Offset(filter.Offset)
	return q
}

// UpdateStatus moves a booking to status. Pending bookings accept any status; final ones
// only accept their current value.
func (r *PGBookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var current domain.BookingStatus
	if err := tx.QueryRow(ctx, `SELECT status FROM booking_requests WHERE id = $1 FOR UPDATE`, id).Scan(&current); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("lock booking %d: %w", id, err)
	}
	if current.Terminal() && current != status {
		return nil, domain.ErrBookingClosed
	}

	// clock_timestamp keeps updated_at ahead of created_at even within one transaction
	if _, err := tx.Exec(ctx, `UPDATE booking_requests SET status = $1, updated_at = clock_timestamp() WHERE id = $2`,
		string(status), id); err != nil {
		return nil, fmt.Errorf("update booking %d: %w", id, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit booking %d: %w", id, err)
	}

	return r.GetByID(ctx, id)
}

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	if err := row.Scan(
		&b.ID, &b.WorkerID, &b.FullName, &b.PhoneNumber, &b.Email, &b.Address, &b.Notes,
		&b.Status, &b.CreatedAt, &b.UpdatedAt, &b.PreferredStartDate, &b.ContractDuration,
		&b.WorkerName, &b.WorkerProfession, &b.WorkerNationality,
	); err != nil {
		return nil, err
	}
	return &b, nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
