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

type resumeRepo struct {
	db *pgxpool.Pool
}

func NewResumeRepository(db *pgxpool.Pool) domain.ResumeRepository {
	return &resumeRepo{db: db}
}

func (r *resumeRepo) Create(ctx context.Context, resume *domain.Resume) error {
	query := `INSERT INTO resumes (id, candidate_id, file_url, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5)`

	now := time.Now()
	resume.ID = uuid.NewString()
	resume.CreatedAt = now
	resume.UpdatedAt = now

	_, err := r.db.Exec(ctx, query,
		resume.ID, resume.CandidateID, resume.FileURL, resume.CreatedAt, resume.UpdatedAt,
	)
	return err
}

func (r *resumeRepo) GetByID(ctx context.Context, id string) (*domain.Resume, error) {
	query := `SELECT id, candidate_id, file_url, created_at, updated_at FROM resumes WHERE id = $1`

	var resume domain.Resume
	err := r.db.QueryRow(ctx, query, id).Scan(
		&resume.ID, &resume.CandidateID, &resume.FileURL, &resume.CreatedAt, &resume.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &resume, nil
}

func (r *resumeRepo) FetchByCandidateID(ctx context.Context, candidateID string) ([]domain.Resume, error) {
	query := `SELECT id, candidate_id, file_url, created_at, updated_at
	          FROM resumes WHERE candidate_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resumes []domain.Resume
	for rows.Next() {
		var resume domain.Resume
		if err := rows.Scan(&resume.ID, &resume.CandidateID, &resume.FileURL, &resume.CreatedAt, &resume.UpdatedAt); err != nil {
			return nil, err
		}
		resumes = append(resumes, resume)
	}
	return resumes, nil
}

func (r *resumeRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
