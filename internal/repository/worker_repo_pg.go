package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/workershub/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

type WorkerRepository interface {
	List(ctx context.Context, filter domain.WorkerFilter) ([]domain.Worker, error)
	GetByID(ctx context.Context, id int64) (*domain.Worker, error)
	Create(ctx context.Context, worker *domain.Worker) error
	UpdateStatus(ctx context.Context, id int64, status domain.WorkerStatus) (*domain.Worker, error)
	Delete(ctx context.Context, id int64) error
}

type PGWorkerRepository struct {
	db *pgxpool.Pool
}

func NewWorkerRepository(db *pgxpool.Pool) WorkerRepository {
	return &PGWorkerRepository{db: db}
}

var workerColumns = []string{
	"w.id", "w.name", "w.passport_number", "w.nationality", "w.religion", "w.profession",
	"w.marital_status", "w.age", "w.status", "w.image", "w.created_at", "w.experience_years",
	"w.languages_spoken", "w.skills", "w.salary_expectation",
}

var workerOrdering = map[string]string{
	"name":               "w.name",
	"age":                "w.age",
	"created_at":         "w.created_at",
	"experience_years":   "w.experience_years",
	"salary_expectation": "w.salary_expectation",
}

var workerSearchColumns = []string{"w.name", "w.profession", "w.nationality", "w.skills", "w.languages_spoken"}

func (r *PGWorkerRepository) List(ctx context.Context, filter domain.WorkerFilter) ([]domain.Worker, error) {
	query, args := workerListQuery(filter).Build()

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list workers: %w", err)
	}
	defer rows.Close()

	workers := make([]domain.Worker, 0)
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, fmt.Errorf("scan worker: %w", err)
		}
		workers = append(workers, *w)
	}
	return workers, rows.Err()
}

func workerListQuery(filter domain.WorkerFilter) *selectQuery {
	q := newSelect(workerColumns...).From("workers w")

	if filter.Profession != "" {
		q.Where("w.profession = ?", string(filter.Profession))
	}
	if filter.Nationality != "" {
		q.Where("w.nationality = ?", string(filter.Nationality))
	}
	if filter.Status != "" {
		q.Where("w.status = ?", string(filter.Status))
	}
	if filter.Religion != "" {
		q.Where("w.religion = ?", string(filter.Religion))
	}
	if filter.MaritalStatus != "" {
		q.Where("w.marital_status = ?", string(filter.MaritalStatus))
	}
	if filter.Search != "" {
		q.WhereAnyILike(filter.Search, workerSearchColumns...)
	}
	if filter.MinAge != nil {
		q.Where("w.age >= ?", *filter.MinAge)
	}
	if filter.MaxAge != nil {
		q.Where("w.age <= ?", *filter.MaxAge)
	}
	if filter.MinExperience != nil {
		q.Where("w.experience_years >= ?", *filter.MinExperience)
	}

	q.OrderBy(orderClause(filter.Ordering, workerOrdering, "w.created_at DESC", "w.id DESC")...)
	q.Limit(filter.Limit).Offset(filter.Offset)
	return q
}

func (r *PGWorkerRepository) GetByID(ctx context.Context, id int64) (*domain.Worker, error) {
	query, args := newSelect(workerColumns...).From("workers w").Where("w.id = ?", id).Build()

	w, err := scanWorker(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get worker %d: %w", id, err)
	}
	return w, nil
}

func (r *PGWorkerRepository) Create(ctx context.Context, w *domain.Worker) error {
	if w.Status == "" {
		w.Status = domain.WorkerStatusAvailable
	}

	err := r.db.QueryRow(ctx, `INSERT INTO workers
		(name, passport_number, nationality, religion, profession, marital_status, age, status, image,
		 experience_years, languages_spoken, skills, salary_expectation)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at`,
		w.Name, w.PassportNumber, string(w.Nationality), nullableString(w.Religion), string(w.Profession),
		nullableString(w.MaritalStatus), w.Age, string(w.Status), w.Image,
		w.ExperienceYears, w.LanguagesSpoken, w.Skills, w.SalaryExpectation,
	).Scan(&w.ID, &w.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.NewConflictError("passport_number", "worker with this passport number already exists.")
		}
		return fmt.Errorf("insert worker: %w", err)
	}
	return nil
}

func (r *PGWorkerRepository) UpdateStatus(ctx context.Context, id int64, status domain.WorkerStatus) (*domain.Worker, error) {
	if _, err := r.db.Exec(ctx, `UPDATE workers SET status = $1 WHERE id = $2`, string(status), id); err != nil {
		return nil, fmt.Errorf("update worker %d status: %w", id, err)
	}
	return r.GetByID(ctx, id)
}

func (r *PGWorkerRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM workers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete worker %d: %w", id, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanWorker(row pgx.Row) (*domain.Worker, error) {
	var (
		w                      domain.Worker
		religion, maritalState *string
	)
	if err := row.Scan(
		&w.ID, &w.Name, &w.PassportNumber, &w.Nationality, &religion, &w.Profession,
		&maritalState, &w.Age, &w.Status, &w.Image, &w.CreatedAt, &w.ExperienceYears,
		&w.LanguagesSpoken, &w.Skills, &w.SalaryExpectation,
	); err != nil {
		return nil, err
	}
	if religion != nil {
		v := domain.Religion(*religion)
		w.Religion = &v
	}
	if maritalState != nil {
		v := domain.MaritalStatus(*maritalState)
		w.MaritalStatus = &v
	}
	return &w, nil
}

func nullableString[T ~string](v *T) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}

var _ WorkerRepository = (*PGWorkerRepository)(nil)
