package domain

import (
	"regexp"
	"strings"
	"time"
)

type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "Pending"
	BookingStatusApproved BookingStatus = "Approved"
	BookingStatusRejected BookingStatus = "Rejected"
)

var bookingStatuses = []BookingStatus{BookingStatusPending, BookingStatusApproved, BookingStatusRejected}

func BookingStatuses() []BookingStatus { return append([]BookingStatus(nil), bookingStatuses...) }

func (s BookingStatus) Valid() bool { return contains(bookingStatuses, s) }

// Terminal statuses never change once reached.
func (s BookingStatus) Terminal() bool {
	return s == BookingStatusApproved || s == BookingStatusRejected
}

var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{7,14}$`)

// NormalizePhone strips the separators people commonly type into phone numbers.
func NormalizePhone(s string) string {
	return strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "").Replace(strings.TrimSpace(s))
}

// ValidPhone reports whether s is an international phone number, separators allowed.
func ValidPhone(s string) bool {
	return phonePattern.MatchString(NormalizePhone(s))
}

type Booking struct {
	ID                 int64
	WorkerID           int64
	FullName           string
	PhoneNumber        string
	Email              string
	Address            string
	Notes              string
	Status             BookingStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time
	PreferredStartDate *time.Time
	ContractDuration   string

	// Denormalised from the referenced worker for display.
	WorkerName        string
	WorkerProfession  Profession
	WorkerNationality Nationality
}

type BookingFilter struct {
	Status            BookingStatus
	WorkerProfession  Profession
	WorkerNationality Nationality
	Ordering          string
	Limit             int
	Offset            int
}
