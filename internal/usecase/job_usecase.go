package usecase

import (
	"context"
	"errors"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type jobUsecase struct {
	jobRepo      domain.JobRepository
	employerRepo domain.EmployerRepository
	validate     *validator.Validate
}

func NewJobUsecase(jobRepo domain.JobRepository, employerRepo domain.EmployerRepository, validate *validator.Validate) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:      jobRepo,
		employerRepo: employerRepo,
		validate:     validate,
	}
}

func (u *jobUsecase) CreateJob(ctx context.Context, job *domain.Job) error {
	if err := u.validate.Struct(job); err != nil {
		return apperror.Validation(validation.FormatValidationErrors(err))
	}

	// The posting employer must exist; the store does not cascade, so the
	// check happens here
	if _, err := u.employerRepo.GetByID(ctx, job.EmployerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFoundField("Employer not found", "employer_id")
		}
		return apperror.Internal(err)
	}

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *jobUsecase) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func (u *jobUsecase) ListJobs(ctx context.Context, page, pageSize int) ([]domain.Job, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	return u.jobRepo.Fetch(ctx, pageSize, offset)
}

// ListJobsByEmployer returns jobs posted by a specific employer
func (u *jobUsecase) ListJobsByEmployer(ctx context.Context, employerID string, page, pageSize int) ([]domain.Job, int64, error) {
	if _, err := u.employerRepo.GetByID(ctx, employerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, 0, apperror.NotFound("Employer not found")
		}
		return nil, 0, apperror.Internal(err)
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	return u.jobRepo.FetchByEmployerID(ctx, employerID, pageSize, offset)
}

func (u *jobUsecase) UpdateJob(ctx context.Context, job *domain.Job) error {
	if err := u.validate.Struct(job); err != nil {
		return apperror.Validation(validation.FormatValidationErrors(err))
	}

	if err := u.jobRepo.Update(ctx, job); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (u *jobUsecase) DeleteJob(ctx context.Context, id string) error {
	if err := u.jobRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal(err)
	}
	return nil
}
