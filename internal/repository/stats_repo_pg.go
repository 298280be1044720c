package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// WorkerCounts holds raw grouped worker counts. Groups with no rows are absent.
type WorkerCounts struct {
	Total         int64
	ByStatus      map[string]int64
	ByProfession  map[string]int64
	ByNationality map[string]int64
}

// BookingCounts holds raw grouped booking counts. Statuses with no rows are absent.
type BookingCounts struct {
	Total    int64
	ByStatus map[string]int64
}

type StatsRepository interface {
	CountWorkers(ctx context.Context) (*WorkerCounts, error)
	CountBookings(ctx context.Context) (*BookingCounts, error)
}

type PGStatsRepository struct {
	db *pgxpool.Pool
}

func NewStatsRepository(db *pgxpool.Pool) StatsRepository {
	return &PGStatsRepository{db: db}
}

// CountWorkers reads every grouping in one statement.
func (r *PGStatsRepository) CountWorkers(ctx context.Context) (*WorkerCounts, error) {
	rows, err := r.db.Query(ctx, `SELECT GROUPING(status), GROUPING(profession), GROUPING(nationality),
			status, profession, nationality, count(*)
		FROM workers
		GROUP BY GROUPING SETS ((status), (profession), (nationality), ())`)
	if err != nil {
		return nil, fmt.Errorf("count workers: %w", err)
	}
	defer rows.Close()

	counts := &WorkerCounts{
		ByStatus:      make(map[string]int64),
		ByProfession:  make(map[string]int64),
		ByNationality: make(map[string]int64),
	}
	for rows.Next() {
		var (
			gStatus, gProfession, gNationality int32
			status, profession, nationality    *string
			n                                  int64
		)
		if err := rows.Scan(&gStatus, &gProfession, &gNationality, &status, &profession, &nationality, &n); err != nil {
			return nil, fmt.Errorf("scan worker counts: %w", err)
		}
		switch {
		case gStatus == 0:
			counts.ByStatus[deref(status)] = n
		case gProfession == 0:
			counts.ByProfession[deref(profession)] = n
		case gNationality == 0:
			counts.ByNationality[deref(nationality)] = n
		default:
			counts.Total = n
		}
	}
	return counts, rows.Err()
}

func (r *PGStatsRepository) CountBookings(ctx context.Context) (*BookingCounts, error) {
	rows, err := r.db.Query(ctx, `SELECT GROUPING(status), status, count(*)
		FROM booking_requests
		GROUP BY GROUPING SETS ((status), ())`)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}
	defer rows.Close()

	counts := &BookingCounts{ByStatus: make(map[string]int64)}
	for rows.Next() {
		var (
			grouped int32
			status  *string
			n       int64
		)
		if err := rows.Scan(&grouped, &status, &n); err != nil {
			return nil, fmt.Errorf("scan booking counts: %w", err)
		}
		if grouped == 0 {
			counts.ByStatus[deref(status)] = n
		} else {
			counts.Total = n
		}
	}
	return counts, rows.Err()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

var _ StatsRepository = (*PGStatsRepository)(nil)
