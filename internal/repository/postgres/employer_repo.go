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

type employerRepo struct {
	db *pgxpool.Pool
}

func NewEmployerRepository(db *pgxpool.Pool) domain.EmployerRepository {
	return &employerRepo{db: db}
}

func (r *employerRepo) Create(ctx context.Context, employer *domain.Employer) error {
	query := `INSERT INTO employers (id, company_name, email, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5)`

	now := time.Now()
	employer.ID = uuid.NewString()
	employer.CreatedAt = now
	employer.UpdatedAt = now

	_, err := r.db.Exec(ctx, query,
		employer.ID, employer.CompanyName, employer.Email, employer.CreatedAt, employer.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *employerRepo) GetByID(ctx context.Context, id string) (*domain.Employer, error) {
	query := `SELECT id, company_name, email, created_at, updated_at FROM employers WHERE id = $1`

	var employer domain.Employer
	err := r.db.QueryRow(ctx, query, id).Scan(
		&employer.ID, &employer.CompanyName, &employer.Email, &employer.CreatedAt, &employer.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &employer, nil
}

func (r *employerRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.Employer, int64, error) {
	query := `SELECT id, company_name, email, created_at, updated_at
	          FROM employers ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var employers []domain.Employer
	for rows.Next() {
		var employer domain.Employer
		if err := rows.Scan(&employer.ID, &employer.CompanyName, &employer.Email, &employer.CreatedAt, &employer.UpdatedAt); err != nil {
			return nil, 0, err
		}
		employers = append(employers, employer)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM employers`).Scan(&total); err != nil {
		return nil, 0, err
	}

	return employers, total, nil
}

func (r *employerRepo) Update(ctx context.Context, employer *domain.Employer) error {
	query := `UPDATE employers SET company_name = $2, email = $3, updated_at = $4 WHERE id = $1`

	employer.UpdatedAt = time.Now()
	result, err := r.db.Exec(ctx, query, employer.ID, employer.CompanyName, employer.Email, employer.UpdatedAt)
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

func (r *employerRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM employers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
