package usecase

import (
	"context"
	"errors"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/google/uuid"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
	candidateRepo   domain.CandidateRepository
	resumeRepo      domain.ResumeRepository
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(
	appRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	candidateRepo domain.CandidateRepository,
	resumeRepo domain.ResumeRepository,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: appRepo,
		jobRepo:         jobRepo,
		candidateRepo:   candidateRepo,
		resumeRepo:      resumeRepo,
	}
}

// SubmitApplication creates an application for a candidate. Referential
// checks run in a fixed order (job, candidate, resume, resume ownership,
// duplicate) so the reported failure is deterministic.
func (uc *applicationUsecase) SubmitApplication(ctx context.Context, jobID, candidateID, resumeID string) (*domain.Application, error) {
	// 1. All three references are required
	if jobID == "" {
		return nil, apperror.MissingField("job_id")
	}
	if candidateID == "" {
		return nil, apperror.MissingField("candidate_id")
	}
	if resumeID == "" {
		return nil, apperror.MissingField("resume_id")
	}
	if _, err := uuid.Parse(jobID); err != nil {
		return nil, apperror.InvalidFormat("job_id", "Invalid job ID")
	}
	if _, err := uuid.Parse(candidateID); err != nil {
		return nil, apperror.InvalidFormat("candidate_id", "Invalid candidate ID")
	}
	if _, err := uuid.Parse(resumeID); err != nil {
		return nil, apperror.InvalidFormat("resume_id", "Invalid resume ID")
	}

	// 2. Validate every referenced record exists
	if _, err := uc.jobRepo.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFoundField("Job not found", "job_id")
		}
		return nil, apperror.Internal(err)
	}
	if _, err := uc.candidateRepo.GetByID(ctx, candidateID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFoundField("Candidate not found", "candidate_id")
		}
		return nil, apperror.Internal(err)
	}
	resume, err := uc.resumeRepo.GetByID(ctx, resumeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFoundField("Resume not found", "resume_id")
		}
		return nil, apperror.Internal(err)
	}

	// 3. A resume can only back an application by the candidate who owns it
	if resume.CandidateID != candidateID {
		return nil, apperror.InvalidReference("resume_id", "Resume does not belong to the applying candidate")
	}

	// 4. Duplicate check: at most one application per (candidate, job)
	existing, err := uc.applicationRepo.FindByCandidateAndJob(ctx, candidateID, jobID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		return nil, apperror.DuplicateApplication(existing.ID)
	}

	// 5. Persist with status "applied"
	app := &domain.Application{
		JobID:       jobID,
		CandidateID: candidateID,
		ResumeID:    resumeID,
		Status:      domain.ApplicationStatusApplied,
	}
	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			// Lost a race against a concurrent submission for the same pair;
			// surface the surviving record like the pre-check would have
			if existing, findErr := uc.applicationRepo.FindByCandidateAndJob(ctx, candidateID, jobID); findErr == nil {
				return nil, apperror.DuplicateApplication(existing.ID)
			}
			return nil, apperror.Conflict("Candidate has already applied to this job")
		}
		return nil, apperror.Internal(err)
	}

	// 6. Re-read for resolved cross-references
	created, err := uc.applicationRepo.GetByID(ctx, app.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return created, nil
}

func (uc *applicationUsecase) GetApplication(ctx context.Context, id string) (*domain.Application, error) {
	app, err := uc.applicationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}
	return app, nil
}

// ListApplications returns all applications, optionally filtered by status,
// newest first
func (uc *applicationUsecase) ListApplications(ctx context.Context, status string) ([]domain.Application, error) {
	if status == "" {
		return uc.applicationRepo.Fetch(ctx)
	}
	if !domain.IsValidApplicationStatus(status) {
		return nil, apperror.InvalidEnum("status", domain.ApplicationStatuses)
	}
	return uc.applicationRepo.GetByStatus(ctx, status)
}

func (uc *applicationUsecase) ListByJob(ctx context.Context, jobID string) ([]domain.Application, error) {
	if _, err := uc.jobRepo.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	return uc.applicationRepo.GetByJobID(ctx, jobID)
}

func (uc *applicationUsecase) ListByCandidate(ctx context.Context, candidateID string) ([]domain.Application, error) {
	if _, err := uc.candidateRepo.GetByID(ctx, candidateID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Candidate not found")
		}
		return nil, apperror.Internal(err)
	}
	return uc.applicationRepo.GetByCandidateID(ctx, candidateID)
}

// UpdateApplicationStatus overwrites only the status field. Any transition
// between the three statuses is permitted; applied_at is never modified.
func (uc *applicationUsecase) UpdateApplicationStatus(ctx context.Context, id, status string) (*domain.Application, error) {
	if !domain.IsValidApplicationStatus(status) {
		return nil, apperror.InvalidEnum("status", domain.ApplicationStatuses)
	}

	if err := uc.applicationRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}

	updated, err := uc.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return updated, nil
}
