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

type candidateUsecase struct {
	repo     domain.CandidateRepository
	validate *validator.Validate
}

func NewCandidateUsecase(repo domain.CandidateRepository, validate *validator.Validate) domain.CandidateUsecase {
	return &candidateUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *candidateUsecase) CreateCandidate(ctx context.Context, candidate *domain.Candidate) error {
	candidate.Email = strings.ToLower(strings.TrimSpace(candidate.Email))
	candidate.Name = strings.TrimSpace(candidate.Name)

	if err := u.validate.Struct(candidate); err != nil {
		return apperror.Validation(validation.FormatValidationErrors(err))
	}

	if err := u.repo.Create(ctx, candidate); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return apperror.Conflict("Email is already registered")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (u *candidateUsecase) GetCandidate(ctx context.Context, id string) (*domain.Candidate, error) {
	candidate, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Candidate not found")
		}
		return nil, apperror.Internal(err)
	}
	return candidate, nil
}

func (u *candidateUsecase) ListCandidates(ctx context.Context, page, pageSize int) ([]domain.Candidate, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	return u.repo.Fetch(ctx, pageSize, offset)
}

func (u *candidateUsecase) UpdateCandidate(ctx context.Context, candidate *domain.Candidate) error {
	candidate.Email = strings.ToLower(strings.TrimSpace(candidate.Email))
	candidate.Name = strings.TrimSpace(candidate.Name)

	if err := u.validate.Struct(candidate); err != nil {
		return apperror.Validation(validation.FormatValidationErrors(err))
	}

	if err := u.repo.Update(ctx, candidate); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return apperror.NotFound("Candidate not found")
		case errors.Is(err, domain.ErrDuplicate):
			return apperror.Conflict("Email is already registered")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (u *candidateUsecase) DeleteCandidate(ctx context.Context, id string) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Candidate not found")
		}
		return apperror.Internal(err)
	}
	return nil
}
