package workers

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Domenick1991/workershub/internal/domain"
	"github.com/Domenick1991/workershub/internal/repository"
)

const maxNameLength = 100

type WorkerUseCase interface {
	ListWorkers(ctx context.Context, filter domain.WorkerFilter) ([]domain.Worker, error)
	GetWorker(ctx context.Context, id int64) (*domain.Worker, error)
	CreateWorker(ctx context.Context, input CreateWorkerInput) (*domain.Worker, error)
	UpdateStatus(ctx context.Context, id int64, status domain.WorkerStatus) (*domain.Worker, error)
	DeleteWorker(ctx context.Context, id int64) error
}

type WorkerService struct {
	workers repository.WorkerRepository
}

type CreateWorkerInput struct {
	Name              string   `json:"name"`
	PassportNumber    string   `json:"passport_number"`
	Nationality       string   `json:"nationality"`
	Religion          string   `json:"religion"`
	Profession        string   `json:"profession"`
	MaritalStatus     string   `json:"marital_status"`
	Age               int      `json:"age"`
	Status            string   `json:"status"`
	Image             string   `json:"image"`
	ExperienceYears   int      `json:"experience_years"`
	LanguagesSpoken   string   `json:"languages_spoken"`
	Skills            string   `json:"skills"`
	SalaryExpectation *float64 `json:"salary_expectation"`
}

func NewWorkerService(workers repository.WorkerRepository) *WorkerService {
	return &WorkerService{workers: workers}
}

func (s *WorkerService) ListWorkers(ctx context.Context, filter domain.WorkerFilter) ([]domain.Worker, error) {
	return s.workers.List(ctx, filter)
}

func (s *WorkerService) GetWorker(ctx context.Context, id int64) (*domain.Worker, error) {
	return s.workers.GetByID(ctx, id)
}

func (s *WorkerService) CreateWorker(ctx context.Context, input CreateWorkerInput) (*domain.Worker, error) {
	worker, err := buildWorker(input)
	if err != nil {
		return nil, err
	}
	if err := s.workers.Create(ctx, worker); err != nil {
		return nil, err
	}
	return worker, nil
}

func (s *WorkerService) UpdateStatus(ctx context.Context, id int64, status domain.WorkerStatus) (*domain.Worker, error) {
	if status == "" {
		return nil, domain.NewValidationError("status", "This field is required.")
	}
	if !status.Valid() {
		return nil, domain.NewValidationError("status", invalidChoice(string(status)))
	}
	return s.workers.UpdateStatus(ctx, id, status)
}

func (s *WorkerService) DeleteWorker(ctx context.Context, id int64) error {
	return s.workers.Delete(ctx, id)
}

func buildWorker(input CreateWorkerInput) (*domain.Worker, error) {
	verr := &domain.ValidationError{}

	name := strings.TrimSpace(input.Name)
	switch {
	case name == "":
		verr.Add("name", "This field is required.")
	case utf8.RuneCountInString(name) > maxNameLength:
		verr.Add("name", fmt.Sprintf("Ensure this field has no more than %d characters.", maxNameLength))
	}

	passport := strings.ToUpper(strings.TrimSpace(input.PassportNumber))
	switch {
	case passport == "":
		verr.Add("passport_number", "This field is required.")
	case !domain.ValidPassport(passport):
		verr.Add("passport_number", "Passport number must be 6 to 9 letters or digits.")
	}

	nationality := domain.Nationality(input.Nationality)
	requireChoice(verr, "nationality", input.Nationality, nationality.Valid())

	profession := domain.Profession(input.Profession)
	requireChoice(verr, "profession", input.Profession, profession.Valid())

	status := domain.WorkerStatusAvailable
	if input.Status != "" {
		status = domain.WorkerStatus(input.Status)
		if !status.Valid() {
			verr.Add("status", invalidChoice(input.Status))
		}
	}

	var religion *domain.Religion
	if input.Religion != "" {
		r := domain.Religion(input.Religion)
		if !r.Valid() {
			verr.Add("religion", invalidChoice(input.Religion))
		}
		religion = &r
	}

	var marital *domain.MaritalStatus
	if input.MaritalStatus != "" {
		m := domain.MaritalStatus(input.MaritalStatus)
		if !m.Valid() {
			verr.Add("marital_status", invalidChoice(input.MaritalStatus))
		}
		marital = &m
	}

	if input.Age < domain.MinWorkerAge || input.Age > domain.MaxWorkerAge {
		verr.Add("age", fmt.Sprintf("Age must be between %d and %d.", domain.MinWorkerAge, domain.MaxWorkerAge))
	}
	if input.ExperienceYears < 0 {
		verr.Add("experience_years", "Ensure this value is greater than or equal to 0.")
	}
	if input.SalaryExpectation != nil && *input.SalaryExpectation < 0 {
		verr.Add("salary_expectation", "Ensure this value is greater than or equal to 0.")
	}

	if !verr.Empty() {
		return nil, verr
	}

	var image *string
	if img := strings.TrimSpace(input.Image); img != "" {
		image = &img
	}

	return &domain.Worker{
		Name:              name,
		PassportNumber:    passport,
		Nationality:       nationality,
		Religion:          religion,
		Profession:        profession,
		MaritalStatus:     marital,
		Age:               input.Age,
		Status:            status,
		Image:             image,
		ExperienceYears:   input.ExperienceYears,
		LanguagesSpoken:   strings.TrimSpace(input.LanguagesSpoken),
		Skills:            strings.TrimSpace(input.Skills),
		SalaryExpectation: input.SalaryExpectation,
	}, nil
}

func requireChoice(verr *domain.ValidationError, field, raw string, valid bool) {
	switch {
	case raw == "":
		verr.Add(field, "This field is required.")
	case !valid:
		verr.Add(field, invalidChoice(raw))
	}
}

func invalidChoice(v string) string {
	return fmt.Sprintf("\"%s\" is not a valid choice.", v)
}

var _ WorkerUseCase = (*WorkerService)(nil)
