package usecase

import (
	"context"
	"errors"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type resumeUsecase struct {
	resumeRepo    domain.ResumeRepository
	candidateRepo domain.CandidateRepository
	validate      *validator.Validate
}

func NewResumeUsecase(resumeRepo domain.ResumeRepository, candidateRepo domain.CandidateRepository, validate *validator.Validate) domain.ResumeUsecase {
	return &resumeUsecase{
		resumeRepo:    resumeRepo,
		candidateRepo: candidateRepo,
		validate:      validate,
	}
}

func (u *resumeUsecase) CreateResume(ctx context.Context, resume *domain.Resume) error {
	if err := u.validate.Struct(resume); err != nil {
		return apperror.Validation(validation.FormatValidationErrors(err))
	}

	// The owning candidate must exist
	if _, err := u.candidateRepo.GetByID(ctx, resume.CandidateID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFoundField("Candidate not found", "candidate_id")
		}
		return apperror.Internal(err)
	}

	if err := u.resumeRepo.Create(ctx, resume); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *resumeUsecase) GetResume(ctx context.Context, id string) (*domain.Resume, error) {
	resume, err := u.resumeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Resume not found")
		}
		return nil, apperror.Internal(err)
	}
	return resume, nil
}

func (u *resumeUsecase) ListResumesByCandidate(ctx context.Context, candidateID string) ([]domain.Resume, error) {
	if _, err := u.candidateRepo.GetByID(ctx, candidateID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Candidate not found")
		}
		return nil, apperror.Internal(err)
	}
	return u.resumeRepo.FetchByCandidateID(ctx, candidateID)
}

func (u *resumeUsecase) DeleteResume(ctx context.Context, id string) error {
	if err := u.resumeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Resume not found")
		}
		return apperror.Internal(err)
	}
	return nil
}
