package kafka

import (
	"strconv"
	"time"

	"github.com/Domenick1991/workershub/internal/domain"
)

const (
	EventBookingCreated       = "booking_created"
	EventBookingStatusChanged = "booking_status_changed"
)

type BookingEvent struct {
	Type        string    `json:"type"`
	BookingID   int64     `json:"booking_id"`
	WorkerID    int64     `json:"worker_id"`
	WorkerName  string    `json:"worker_name"`
	FullName    string    `json:"full_name"`
	PhoneNumber string    `json:"phone_number"`
	Email       string    `json:"email,omitempty"`
	Status      string    `json:"status"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func NewBookingEvent(eventType string, b *domain.Booking) BookingEvent {
	return BookingEvent{
		Type:        eventType,
		BookingID:   b.ID,
		WorkerID:    b.WorkerID,
		WorkerName:  b.WorkerName,
		FullName:    b.FullName,
		PhoneNumber: b.PhoneNumber,
		Email:       b.Email,
		Status:      string(b.Status),
		OccurredAt:  time.Now().UTC(),
	}
}

// Key partitions events by booking id.
func (e BookingEvent) Key() string {
	return strconv.FormatInt(e.BookingID, 10)
}
