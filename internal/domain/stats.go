package domain

type WorkerStats struct {
	TotalWorkers     int64            `json:"total_workers"`
	AvailableWorkers int64            `json:"available_workers"`
	BookedWorkers    int64            `json:"booked_workers"`
	OnLeaveWorkers   int64            `json:"on_leave_workers"`
	ProfessionStats  map[string]int64 `json:"profession_stats"`
	NationalityStats map[string]int64 `json:"nationality_stats"`
}

type BookingStats struct {
	TotalRequests    int64 `json:"total_requests"`
	PendingRequests  int64 `json:"pending_requests"`
	ApprovedRequests int64 `json:"approved_requests"`
	RejectedRequests int64 `json:"rejected_requests"`
}
