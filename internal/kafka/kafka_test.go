package kafka

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Domenick1991/workershub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBookingEvent(t *testing.T) {
	b := &domain.Booking{
		ID:          9,
		WorkerID:    3,
		WorkerName:  "Maria Santos",
		FullName:    "Ahmed",
		PhoneNumber: "+966501234567",
		Status:      domain.BookingStatusApproved,
	}

	event := NewBookingEvent(EventBookingStatusChanged, b)

	assert.Equal(t, "9", event.Key())
	assert.Equal(t, "Approved", event.Status)
	assert.WithinDuration(t, time.Now(), event.OccurredAt, time.Minute)

	data, err := json.Marshal(event)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"email"`)
	assert.Contains(t, string(data), `"type":"booking_status_changed"`)
}

func TestProducer_PublishRejectsUnencodablePayload(t *testing.T) {
	p := NewProducer([]string{"127.0.0.1:1"})
	defer p.Close()

	err := p.Publish(context.Background(), "booking_events", "1", make(chan int))
	assert.ErrorContains(t, err, "failed to marshal payload")
}

func TestCloseNil(t *testing.T) {
	var p *Producer
	var c *Consumer
	assert.NoError(t, p.Close())
	assert.NoError(t, c.Close())
}
