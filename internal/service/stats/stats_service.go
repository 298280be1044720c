package stats

import (
	"context"

	"github.com/Domenick1991/workershub/internal/domain"
	"github.com/Domenick1991/workershub/internal/repository"
)

type StatsUseCase interface {
	WorkerStats(ctx context.Context) (*domain.WorkerStats, error)
	BookingStats(ctx context.Context) (*domain.BookingStats, error)
	Choices() domain.FilterChoices
}

type StatsService struct {
	stats repository.StatsRepository
}

func NewStatsService(stats repository.StatsRepository) *StatsService {
	return &StatsService{stats: stats}
}

// WorkerStats reports every profession and nationality, including those with no workers.
func (s *StatsService) WorkerStats(ctx context.Context) (*domain.WorkerStats, error) {
	counts, err := s.stats.CountWorkers(ctx)
	if err != nil {
		return nil, err
	}

	result := &domain.WorkerStats{
		TotalWorkers:     counts.Total,
		AvailableWorkers: counts.ByStatus[string(domain.WorkerStatusAvailable)],
		BookedWorkers:    counts.ByStatus[string(domain.WorkerStatusBooked)],
		OnLeaveWorkers:   counts.ByStatus[string(domain.WorkerStatusOnLeave)],
		ProfessionStats:  zeroFilled(domain.Professions(), counts.ByProfession),
		NationalityStats: zeroFilled(domain.Nationalities(), counts.ByNationality),
	}
	return result, nil
}

func (s *StatsService) BookingStats(ctx context.Context) (*domain.BookingStats, error) {
	counts, err := s.stats.CountBookings(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.BookingStats{
		TotalRequests:    counts.Total,
		PendingRequests:  counts.ByStatus[string(domain.BookingStatusPending)],
		ApprovedRequests: counts.ByStatus[string(domain.BookingStatusApproved)],
		RejectedRequests: counts.ByStatus[string(domain.BookingStatusRejected)],
	}, nil
}

func (s *StatsService) Choices() domain.FilterChoices {
	return domain.AllChoices()
}

func zeroFilled[T ~string](keys []T, counts map[string]int64) map[string]int64 {
	out := make(map[string]int64, len(keys))
	for _, k := range keys {
		out[string(k)] = counts[string(k)]
	}
	return out
}

var _ StatsUseCase = (*StatsService)(nil)
