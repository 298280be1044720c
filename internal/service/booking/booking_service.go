package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Domenick1991/workershub/internal/domain"
	"github.com/Domenick1991/workershub/internal/kafka"
	"github.com/Domenick1991/workershub/internal/logger"
	"github.com/Domenick1991/workershub/internal/repository"
	"github.com/go-playground/validator/v10"
)

const (
	maxNameLength             = 100
	maxContractDurationLength = 100
	dateLayout                = "2006-01-02"
)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	ListBookings(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, error)
	GetBooking(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error)
}

// Locker serialises booking creation per worker across processes.
type Locker interface {
	AcquireWorkerLock(ctx context.Context, workerID int64, ttl time.Duration) (string, error)
	ReleaseWorkerLock(ctx context.Context, workerID int64, token string) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings    repository.BookingRepository
	locker      Locker
	producer    Producer
	eventsTopic string
	lockTTL     time.Duration
	validate    *validator.Validate
}

type CreateBookingInput struct {
	WorkerID           int64  `json:"worker"`
	FullName           string `json:"full_name"`
	PhoneNumber        string `json:"phone_number"`
	Email              string `json:"email"`
	Address            string `json:"address"`
	Notes              string `json:"notes"`
	PreferredStartDate string `json:"preferred_start_date"`
	ContractDuration   string `json:"contract_duration"`
}

type BookingServiceOption func(*BookingService)

func WithLocker(locker Locker, ttl time.Duration) BookingServiceOption {
	return func(s *BookingService) {
		s.locker = locker
		s.lockTTL = ttl
	}
}

func WithProducer(producer Producer, topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.eventsTopic = topic
	}
}

func NewBookingService(bookings repository.BookingRepository, opts ...BookingServiceOption) *BookingService {
	service := &BookingService{
		bookings: bookings,
		lockTTL:  10 * time.Second,
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	booking, err := s.buildBooking(input)
	if err != nil {
		return nil, err
	}

	if s.locker != nil {
		// The worker row lock still serialises creation when Redis is down.
		token, err := s.locker.AcquireWorkerLock(ctx, booking.WorkerID, s.lockTTL)
		switch {
		case err != nil:
			logger.WarnLog(ctx, "booking lock for worker %d unavailable, continuing without it: %v", booking.WorkerID, err)
		case token == "":
			return nil, domain.NewValidationError("worker", "This worker is being booked by another request. Please try again.")
		default:
			defer func() {
				if err := s.locker.ReleaseWorkerLock(context.WithoutCancel(ctx), booking.WorkerID, token); err != nil {
					logger.WarnLog(ctx, "release lock for worker %d: %v", booking.WorkerID, err)
				}
			}()
		}
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return nil, domain.NewValidationError("worker", fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", booking.WorkerID))
		case errors.Is(err, domain.ErrWorkerUnavailable):
			return nil, domain.NewValidationError("worker", "This worker is not available for booking.")
		default:
			return nil, err
		}
	}

	s.publish(ctx, kafka.EventBookingCreated, booking)
	return booking, nil
}

// buildBooking validates input and collects every field error at once.
func (s *BookingService) buildBooking(input CreateBookingInput) (*domain.Booking, error) {
	verr := &domain.ValidationError{}

	if input.WorkerID <= 0 {
		verr.Add("worker", "This field is required.")
	}

	fullName := strings.TrimSpace(input.FullName)
	switch {
	case fullName == "":
		verr.Add("full_name", "This field is required.")
	case utf8.RuneCountInString(fullName) > maxNameLength:
		verr.Add("full_name", fmt.Sprintf("Ensure this field has no more than %d characters.", maxNameLength))
	}

	phone := domain.NormalizePhone(input.PhoneNumber)
	switch {
	case phone == "":
		verr.Add("phone_number", "This field is required.")
	case !domain.ValidPhone(phone):
		verr.Add("phone_number", "Enter a valid phone number.")
	}

	email := strings.TrimSpace(input.Email)
	if email != "" && s.validate.Var(email, "email") != nil {
		verr.Add("email", "Enter a valid email address.")
	}

	var startDate *time.Time
	if raw := strings.TrimSpace(input.PreferredStartDate); raw != "" {
		d, err := time.Parse(dateLayout, raw)
		if err != nil {
			verr.Add("preferred_start_date", "Date has wrong format. Use YYYY-MM-DD.")
		} else {
			startDate = &d
		}
	}

	if utf8.RuneCountInString(input.ContractDuration) > maxContractDurationLength {
		verr.Add("contract_duration", fmt.Sprintf("Ensure this field has no more than %d characters.", maxContractDurationLength))
	}

	if !verr.Empty() {
		return nil, verr
	}

	return &domain.Booking{
		WorkerID:           input.WorkerID,
		FullName:           fullName,
		PhoneNumber:        phone,
		Email:              email,
		Address:            strings.TrimSpace(input.Address),
		Notes:              input.Notes,
		PreferredStartDate: startDate,
		ContractDuration:   strings.TrimSpace(input.ContractDuration),
	}, nil
}

func (s *BookingService) ListBookings(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, error) {
	return s.bookings.List(ctx, filter)
}

func (s *BookingService) GetBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

func (s *BookingService) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error) {
	if status == "" {
		return nil, domain.NewValidationError("status", "Status field is required")
	}
	if !status.Valid() {
		return nil, domain.NewValidationError("status", fmt.Sprintf("\"%s\" is not a valid choice.", status))
	}

	updated, err := s.bookings.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, domain.ErrBookingClosed) {
			return nil, domain.NewValidationError("status", "This booking has already been decided and cannot be changed.")
		}
		return nil, err
	}

	s.publish(ctx, kafka.EventBookingStatusChanged, updated)
	return updated, nil
}

// publish logs failures and never returns them.
func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) {
	if s.producer == nil || s.eventsTopic == "" {
		return
	}
	event := kafka.NewBookingEvent(eventType, booking)
	if err := s.producer.Publish(ctx, s.eventsTopic, event.Key(), event); err != nil {
		logger.ErrorLog(ctx, err, "publish %s for booking %d", eventType, booking.ID)
	}
}

var _ BookingUseCase = (*BookingService)(nil)
