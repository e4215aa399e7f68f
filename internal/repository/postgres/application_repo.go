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

type applicationRepo struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// applicationSelect joins job, candidate and resume data so responses carry
// resolved cross-references
const applicationSelect = `
	SELECT
		a.id, a.job_id, a.candidate_id, a.resume_id, a.status, a.applied_at, a.created_at, a.updated_at,
		j.title AS job_title,
		j.location AS job_location,
		j.salary AS job_salary,
		c.name AS candidate_name,
		c.email AS candidate_email,
		r.file_url AS resume_file_url
	FROM applications a
	LEFT JOIN jobs j ON a.job_id = j.id
	LEFT JOIN candidates c ON a.candidate_id = c.id
	LEFT JOIN resumes r ON a.resume_id = r.id`

func scanApplication(row pgx.Row) (*domain.Application, error) {
	var app domain.Application
	err := row.Scan(
		&app.ID, &app.JobID, &app.CandidateID, &app.ResumeID, &app.Status,
		&app.AppliedAt, &app.CreatedAt, &app.UpdatedAt,
		&app.JobTitle, &app.JobLocation, &app.JobSalary,
		&app.CandidateName, &app.CandidateEmail, &app.ResumeFileURL,
	)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepo) queryApplications(ctx context.Context, query string, args ...interface{}) ([]domain.Application, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		applications = append(applications, *app)
	}
	return applications, rows.Err()
}

// Create inserts a new application. The unique index on
// (candidate_id, job_id) is the authoritative duplicate guard; a violation
// surfaces as domain.ErrDuplicate.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `INSERT INTO applications (id, job_id, candidate_id, resume_id, status, applied_at, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	now := time.Now()
	app.ID = uuid.NewString()
	app.CreatedAt = now
	app.UpdatedAt = now
	if app.Status == "" {
		app.Status = domain.ApplicationStatusApplied
	}
	if app.AppliedAt.IsZero() {
		app.AppliedAt = now
	}

	_, err := r.db.Exec(ctx, query,
		app.ID, app.JobID, app.CandidateID, app.ResumeID, app.Status,
		app.AppliedAt, app.CreatedAt, app.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	return err
}

// GetByID retrieves an application with resolved cross-references
func (r *applicationRepo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	app, err := scanApplication(r.db.QueryRow(ctx, applicationSelect+` WHERE a.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return app, nil
}

func (r *applicationRepo) Fetch(ctx context.Context) ([]domain.Application, error) {
	return r.queryApplications(ctx, applicationSelect+` ORDER BY a.applied_at DESC`)
}

func (r *applicationRepo) GetByJobID(ctx context.Context, jobID string) ([]domain.Application, error) {
	return r.queryApplications(ctx, applicationSelect+` WHERE a.job_id = $1 ORDER BY a.applied_at DESC`, jobID)
}

func (r *applicationRepo) GetByCandidateID(ctx context.Context, candidateID string) ([]domain.Application, error) {
	return r.queryApplications(ctx, applicationSelect+` WHERE a.candidate_id = $1 ORDER BY a.applied_at DESC`, candidateID)
}

func (r *applicationRepo) GetByStatus(ctx context.Context, status string) ([]domain.Application, error) {
	return r.queryApplications(ctx, applicationSelect+` WHERE a.status = $1 ORDER BY a.applied_at DESC`, status)
}

// FindByCandidateAndJob looks up the application for a (candidate, job)
// pair, returning domain.ErrNotFound when none exists
func (r *applicationRepo) FindByCandidateAndJob(ctx context.Context, candidateID, jobID string) (*domain.Application, error) {
	app, err := scanApplication(r.db.QueryRow(ctx,
		applicationSelect+` WHERE a.candidate_id = $1 AND a.job_id = $2`, candidateID, jobID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return app, nil
}

// UpdateStatus updates only the status of an application and refreshes
// updated_at; applied_at is never touched
func (r *applicationRepo) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE applications SET status = $2, updated_at = $3 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
