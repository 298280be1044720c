package domain

import (
	"regexp"
	"time"
)

type WorkerStatus string

const (
	WorkerStatusAvailable WorkerStatus = "Available"
	WorkerStatusBooked    WorkerStatus = "Booked"
	WorkerStatusOnLeave   WorkerStatus = "On Leave"
)

var workerStatuses = []WorkerStatus{WorkerStatusAvailable, WorkerStatusBooked, WorkerStatusOnLeave}

func WorkerStatuses() []WorkerStatus { return append([]WorkerStatus(nil), workerStatuses...) }

func (s WorkerStatus) Valid() bool { return contains(workerStatuses, s) }

const (
	MinWorkerAge = 18
	MaxWorkerAge = 65
)

var passportPattern = regexp.MustCompile(`^[A-Z0-9]{6,9}$`)

// ValidPassport reports whether s looks like a machine-readable passport number.
func ValidPassport(s string) bool {
	return passportPattern.MatchString(s)
}

type Worker struct {
	ID                int64
	Name              string
	PassportNumber    string
	Nationality       Nationality
	Religion          *Religion
	Profession        Profession
	MaritalStatus     *MaritalStatus
	Age               int
	Status            WorkerStatus
	Image             *string
	CreatedAt         time.Time
	ExperienceYears   int
	LanguagesSpoken   string
	Skills            string
	SalaryExpectation *float64
}

// WorkerFilter is the predicate set applied by the worker store. Zero values mean "absent".
type WorkerFilter struct {
	Profession    Profession
	Nationality   Nationality
	Status        WorkerStatus
	Religion      Religion
	MaritalStatus MaritalStatus
	Search        string
	MinAge        *int
	MaxAge        *int
	MinExperience *int
	Ordering      string
	Limit         int
	Offset        int
}
