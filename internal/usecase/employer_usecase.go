package usecase

import (
	"context"
	"errors"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"
	"strings"

	"github.com/go-playground/validator/v10"
)

type employerUsecase struct {
	repo     domain.EmployerRepository
	validate *validator.Validate
}

func NewEmployerUsecase(repo domain.EmployerRepository, validate *validator.Validate) domain.EmployerUsecase {
	return &employerUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *employerUsecase) CreateEmployer(ctx context.Context, employer *domain.Employer) error {
	// Emails are stored lowercase so the unique index is case-insensitive
	employer.Email = strings.ToLower(strings.TrimSpace(employer.Email))
	employer.CompanyName = strings.TrimSpace(employer.CompanyName)

	if err := u.validate.Struct(employer); err != nil {
		return apperror.Validation(validation.FormatValidationErrors(err))
	}

	if err := u.repo.Create(ctx, employer); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return apperror.Conflict("Email is already registered")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (u *employerUsecase) GetEmployer(ctx context.Context, id string) (*domain.Employer, error) {
	employer, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Employer not found")
		}
		return nil, apperror.Internal(err)
	}
	return employer, nil
}

func (u *employerUsecase) ListEmployers(ctx context.Context, page, pageSize int) ([]domain.Employer, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	return u.repo.Fetch(ctx, pageSize, offset)
}

func (u *employerUsecase) UpdateEmployer(ctx context.Context, employer *domain.Employer) error {
	employer.Email = strings.ToLower(strings.TrimSpace(employer.Email))
	employer.CompanyName = strings.TrimSpace(employer.CompanyName)

	if err := u.validate.Struct(employer); err != nil {
		return apperror.Validation(validation.FormatValidationErrors(err))
	}

	if err := u.repo.Update(ctx, employer); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return apperror.NotFound("Employer not found")
		case errors.Is(err, domain.ErrDuplicate):
			return apperror.Conflict("Email is already registered")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (u *employerUsecase) DeleteEmployer(ctx context.Context, id string) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Employer not found")
		}
		return apperror.Internal(err)
	}
	return nil
}
