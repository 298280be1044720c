package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/Domenick1991/workershub/internal/database"
	"github.com/Domenick1991/workershub/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a disposable database named by WORKERSHUB_TEST_DSN; skipped otherwise.
func setupPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("WORKERSHUB_TEST_DSN")
	if dsn == "" {
		t.Skip("WORKERSHUB_TEST_DSN not set")
	}

	ctx := context.Background()
	pool, err := database.Connect(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = database.Migrate(pool)
	require.NoError(t, err)

	_, err = pool.Exec(ctx, `TRUNCATE booking_requests, workers RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
	return pool
}

func TestIntegration_BookingLifecycle(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()

	workers := NewWorkerRepository(pool)
	bookings := NewBookingRepository(pool)
	stats := NewStatsRepository(pool)

	maria := &domain.Worker{
		Name:           "Maria Santos",
		PassportNumber: "A1234567",
		Nationality:    domain.NationalityFilipino,
		Profession:     domain.ProfessionHousemaid,
		Age:            28,
		Status:         domain.WorkerStatusAvailable,
	}
	require.NoError(t, workers.Create(ctx, maria))
	assert.NotZero(t, maria.ID)

	duplicate := *maria
	duplicate.ID = 0
	err := workers.Create(ctx, &duplicate)
	assert.True(t, errors.Is(err, domain.ErrConflict))

	booking := &domain.Booking{WorkerID: maria.ID, FullName: "Ahmed", PhoneNumber: "+966501234567"}
	require.NoError(t, bookings.Create(ctx, booking))
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, "Maria Santos", booking.WorkerName)

	time.Sleep(5 * time.Millisecond)
	approved, err := bookings.UpdateStatus(ctx, booking.ID, domain.BookingStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusApproved, approved.Status)
	assert.True(t, approved.UpdatedAt.After(approved.CreatedAt))

	_, err = bookings.UpdateStatus(ctx, booking.ID, domain.BookingStatusRejected)
	assert.ErrorIs(t, err, domain.ErrBookingClosed)

	_, err = workers.UpdateStatus(ctx, maria.ID, domain.WorkerStatusBooked)
	require.NoError(t, err)

	err = bookings.Create(ctx, &domain.Booking{WorkerID: maria.ID, FullName: "Ahmed", PhoneNumber: "+966501234567"})
	assert.ErrorIs(t, err, domain.ErrWorkerUnavailable)

	counts, err := stats.CountWorkers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts.Total)
	assert.Equal(t, int64(1), counts.ByStatus["Booked"])

	bookingCounts, err := stats.CountBookings(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), bookingCounts.Total)

	require.NoError(t, workers.Delete(ctx, maria.ID))
	_, err = bookings.GetByID(ctx, booking.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestIntegration_WorkerFilters(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()
	workers := NewWorkerRepository(pool)

	for i, age := range []int{22, 30, 45} {
		status := domain.WorkerStatusAvailable
		if i == 2 {
			status = domain.WorkerStatusOnLeave
		}
		w := &domain.Worker{
			Name:           fmt.Sprintf("Worker %d", i),
			PassportNumber: fmt.Sprintf("P000000%d", i),
			Nationality:    domain.NationalityKenyan,
			Profession:     domain.ProfessionCook,
			Age:            age,
			Skills:         "Indian cuisine",
		}
		require.NoError(t, workers.Create(ctx, w))
		if status != domain.WorkerStatusAvailable {
			_, err := workers.UpdateStatus(ctx, w.ID, status)
			require.NoError(t, err)
		}
	}

	minAge := 30
	list, err := workers.List(ctx, domain.WorkerFilter{MinAge: &minAge})
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, w := range list {
		assert.GreaterOrEqual(t, w.Age, 30)
	}

	list, err = workers.List(ctx, domain.WorkerFilter{Status: domain.WorkerStatusAvailable, Search: "CUISINE"})
	require.NoError(t, err)
	assert.Len(t, list, 2)
	// newest first
	assert.Equal(t, "Worker 1", list[0].Name)
}

func TestIntegration_ConcurrentBookingWaitsForWorkerRow(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()

	workers := NewWorkerRepository(pool)
	bookings := NewBookingRepository(pool)

	worker := &domain.Worker{
		Name:           "Grace Wanjiru",
		PassportNumber: "K7654321",
		Nationality:    domain.NationalityKenyan,
		Profession:     domain.ProfessionNanny,
		Age:            31,
		Status:         domain.WorkerStatusAvailable,
	}
	require.NoError(t, workers.Create(ctx, worker))

	tx, err := pool.Begin(ctx)
	require.NoError(t, err)
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `SELECT id FROM workers WHERE id = $1 FOR UPDATE`, worker.ID)
	require.NoError(t, err)
	_, err = tx.Exec(ctx, `UPDATE workers SET status = $1 WHERE id = $2`, string(domain.WorkerStatusBooked), worker.ID)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		done <- bookings.Create(ctx, &domain.Booking{WorkerID: worker.ID, FullName: "Ahmed", PhoneNumber: "+966501234567"})
	}()

	select {
	case err := <-done:
		t.Fatalf("booking created while worker row was locked: %v", err)
	case <-time.After(200 * time.Millisecond):
	}

	require.NoError(t, tx.Commit(ctx))

	select {
	case err := <-done:
		assert.ErrorIs(t, err, domain.ErrWorkerUnavailable)
	case <-time.After(5 * time.Second):
		t.Fatal("booking did not finish after the worker row was released")
	}

	list, err := bookings.List(ctx, domain.BookingFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)
}
