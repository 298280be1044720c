package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Domenick1991/workershub/internal/domain"
	"github.com/Domenick1991/workershub/internal/kafka"
	"github.com/Domenick1991/workershub/internal/logger"
	kafkaGo "github.com/segmentio/kafka-go"
)

// Sender delivers a notification about a booking event.
type Sender interface {
	Send(ctx context.Context, event kafka.BookingEvent) error
}

// WorkerStatusUpdater is the slice of the worker store the notifier needs.
type WorkerStatusUpdater interface {
	UpdateStatus(ctx context.Context, id int64, status domain.WorkerStatus) (*domain.Worker, error)
}

// LogSender writes notifications to the structured log.
type LogSender struct{}

func NewLogSender() *LogSender {
	return &LogSender{}
}

func (s *LogSender) Send(ctx context.Context, event kafka.BookingEvent) error {
	logger.InfoLog(ctx, "notify %s <%s> (%s): booking %d for %s is %s",
		event.FullName, event.Email, event.PhoneNumber, event.BookingID, event.WorkerName, event.Status)
	return nil
}

type Handler struct {
	sender               Sender
	workers              WorkerStatusUpdater
	markBookedOnApproval bool
}

func NewHandler(sender Sender, workers WorkerStatusUpdater, markBookedOnApproval bool) *Handler {
	return &Handler{sender: sender, workers: workers, markBookedOnApproval: markBookedOnApproval}
}

// HandleMessage processes one booking event. Undecodable messages are logged and skipped.
func (h *Handler) HandleMessage(ctx context.Context, msg kafkaGo.Message) error {
	var event kafka.BookingEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		logger.WarnLog(ctx, "skip undecodable event at offset %d: %v", msg.Offset, err)
		return nil
	}
	return h.Handle(ctx, event)
}

func (h *Handler) Handle(ctx context.Context, event kafka.BookingEvent) error {
	ctx = logger.WithLogger(ctx, map[string]interface{}{
		"event":      event.Type,
		"booking_id": event.BookingID,
		"worker_id":  event.WorkerID,
	})

	if h.markBookedOnApproval && h.workers != nil &&
		event.Type == kafka.EventBookingStatusChanged && event.Status == string(domain.BookingStatusApproved) {
		if _, err := h.workers.UpdateStatus(ctx, event.WorkerID, domain.WorkerStatusBooked); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				logger.WarnLog(ctx, "approved booking references deleted worker")
			} else {
				return fmt.Errorf("mark worker %d booked: %w", event.WorkerID, err)
			}
		} else {
			logger.InfoLog(ctx, "worker marked booked")
		}
	}

	return h.sender.Send(ctx, event)
}
