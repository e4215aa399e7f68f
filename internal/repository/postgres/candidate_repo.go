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

type candidateRepo struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepo{db: db}
}

func (r *candidateRepo) Create(ctx context.Context, candidate *domain.Candidate) error {
	query := `INSERT INTO candidates (id, name, email, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5)`

	now := time.Now()
	candidate.ID = uuid.NewString()
	candidate.CreatedAt = now
	candidate.UpdatedAt = now

	_, err := r.db.Exec(ctx, query,
		candidate.ID, candidate.Name, candidate.Email, candidate.CreatedAt, candidate.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *candidateRepo) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	query := `SELECT id, name, email, created_at, updated_at FROM candidates WHERE id = $1`

	var candidate domain.Candidate
	err := r.db.QueryRow(ctx, query, id).Scan(
		&candidate.ID, &candidate.Name, &candidate.Email, &candidate.CreatedAt, &candidate.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &candidate, nil
}

func (r *candidateRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.Candidate, int64, error) {
	query := `SELECT id, name, email, created_at, updated_at
	          FROM candidates ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var candidates []domain.Candidate
	for rows.Next() {
		var candidate domain.Candidate
		if err := rows.Scan(&candidate.ID, &candidate.Name, &candidate.Email, &candidate.CreatedAt, &candidate.UpdatedAt); err != nil {
			return nil, 0, err
		}
		candidates = append(candidates, candidate)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM candidates`).Scan(&total); err != nil {
		return nil, 0, err
	}

	return candidates, total, nil
}

func (r *candidateRepo) Update(ctx context.Context, candidate *domain.Candidate) error {
	query := `UPDATE candidates SET name = $2, email = $3, updated_at = $4 WHERE id = $1`

	candidate.UpdatedAt = time.Now()
	result, err := r.db.Exec(ctx, query, candidate.ID, candidate.Name, candidate.Email, candidate.UpdatedAt)
	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *candidateRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
