package postgres

import (
	"context"
	"errors"
	"go-jobboard-backend/internal/domain"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (id, employer_id, title, description, location, salary, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	now := time.Now()
	job.ID = uuid.NewString()
	job.CreatedAt = now
	job.UpdatedAt = now

	_, err := r.db.Exec(ctx, query,
		job.ID, job.EmployerID, job.Title, job.Description, job.Location, job.Salary,
		job.CreatedAt, job.UpdatedAt,
	)
	return err
}

// GetByID retrieves a job with the employer's company name joined in
func (r *jobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	query := `
		SELECT j.id, j.employer_id, j.title, j.description, j.location, j.salary, j.created_at, j.updated_at,
		       e.company_name
		FROM jobs j
		LEFT JOIN employers e ON j.employer_id = e.id
		WHERE j.id = $1`

	var job domain.Job
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.EmployerID, &job.Title, &job.Description, &job.Location, &job.Salary,
		&job.CreatedAt, &job.UpdatedAt, &job.CompanyName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.Job, int64, error) {
	query := `
		SELECT j.id, j.employer_id, j.title, j.description, j.location, j.salary, j.created_at, j.updated_at,
		       e.company_name
		FROM jobs j
		LEFT JOIN employers e ON j.employer_id = e.id
		ORDER BY j.created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(
			&job.ID, &job.EmployerID, &job.Title, &job.Description, &job.Location, &job.Salary,
			&job.CreatedAt, &job.UpdatedAt, &job.CompanyName,
		); err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, job)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&total); err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

// FetchByEmployerID retrieves jobs posted by a specific employer
func (r *jobRepo) FetchByEmployerID(ctx context.Context, employerID string, limit, offset int) ([]domain.Job, int64, error) {
	query := `
		SELECT j.id, j.employer_id, j.title, j.description, j.location, j.salary, j.created_at, j.updated_at,
		       e.company_name
		FROM jobs j
		LEFT JOIN employers e ON j.employer_id = e.id
		WHERE j.employer_id = $1
		ORDER BY j.created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, employerID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(
			&job.ID, &job.EmployerID, &job.Title, &job.Description, &job.Location, &job.Salary,
			&job.CreatedAt, &job.UpdatedAt, &job.CompanyName,
		); err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, job)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE employer_id = $1`, employerID).Scan(&total); err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `UPDATE jobs SET
		title = $2,
		description = $3,
		location = $4,
		salary = $5,
		updated_at = $6
	WHERE id = $1`

	job.UpdatedAt = time.Now()
	result, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Description, job.Location, job.Salary, job.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
