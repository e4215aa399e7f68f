package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Fixed IDs reused across the lifecycle tests
const (
	testJobID       = "11111111-1111-4111-8111-111111111111"
	testCandidateID = "22222222-2222-4222-8222-222222222222"
	testResumeID    = "33333333-3333-4333-8333-333333333333"
	testAppID       = "44444444-4444-4444-8444-444444444444"
)

type applicationMocks struct {
	appRepo       *MockApplicationRepo
	jobRepo       *MockJobRepo
	candidateRepo *MockCandidateRepo
	resumeRepo    *MockResumeRepo
	uc            domain.ApplicationUsecase
}

func newApplicationMocks() *applicationMocks {
	m := &applicationMocks{
		appRepo:       new(MockApplicationRepo),
		jobRepo:       new(MockJobRepo),
		candidateRepo: new(MockCandidateRepo),
		resumeRepo:    new(MockResumeRepo),
	}
	m.uc = usecase.NewApplicationUsecase(m.appRepo, m.jobRepo, m.candidateRepo, m.resumeRepo)
	return m
}

func (m *applicationMocks) givenJobExists() {
	m.jobRepo.On("GetByID", mock.Anything, testJobID).Return(&domain.Job{ID: testJobID}, nil)
}

func (m *applicationMocks) givenCandidateExists() {
	m.candidateRepo.On("GetByID", mock.Anything, testCandidateID).Return(&domain.Candidate{ID: testCandidateID}, nil)
}

func (m *applicationMocks) givenResumeOwnedBy(candidateID string) {
	m.resumeRepo.On("GetByID", mock.Anything, testResumeID).Return(&domain.Resume{
		ID:          testResumeID,
		CandidateID: candidateID,
	}, nil)
}

func TestSubmitApplication(t *testing.T) {
	t.Run("Should submit successfully with status applied", func(t *testing.T) {
		m := newApplicationMocks()
		m.givenJobExists()
		m.givenCandidateExists()
		m.givenResumeOwnedBy(testCandidateID)

		m.appRepo.On("FindByCandidateAndJob", mock.Anything, testCandidateID, testJobID).Return(nil, domain.ErrNotFound)
		m.appRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Application")).Return(nil).Run(func(args mock.Arguments) {
			app := args.Get(1).(*domain.Application)
			assert.Equal(t, domain.ApplicationStatusApplied, app.Status)
			app.ID = testAppID
		})
		m.appRepo.On("GetByID", mock.Anything, testAppID).Return(&domain.Application{
			ID:          testAppID,
			JobID:       testJobID,
			CandidateID: testCandidateID,
			ResumeID:    testResumeID,
			Status:      domain.ApplicationStatusApplied,
			AppliedAt:   time.Now(),
		}, nil)

		app, err := m.uc.SubmitApplication(context.Background(), testJobID, testCandidateID, testResumeID)
		assert.NoError(t, err)
		assert.Equal(t, testAppID, app.ID)
		assert.Equal(t, domain.ApplicationStatusApplied, app.Status)
		m.appRepo.AssertExpectations(t)
	})

	t.Run("Should reject missing references before touching the store", func(t *testing.T) {
		m := newApplicationMocks()

		cases := []struct {
			jobID, candidateID, resumeID string
			wantField                    string
		}{
			{"", testCandidateID, testResumeID, "job_id"},
			{testJobID, "", testResumeID, "candidate_id"},
			{testJobID, testCandidateID, "", "resume_id"},
		}

		for _, tc := range cases {
			_, err := m.uc.SubmitApplication(context.Background(), tc.jobID, tc.candidateID, tc.resumeID)
			assert.Error(t, err)

			appErr, ok := err.(*apperror.AppError)
			assert.True(t, ok)
			assert.Equal(t, 400, appErr.Code)
			assert.Equal(t, tc.wantField, appErr.Field)
			assert.Contains(t, appErr.Message, "required")
		}

		m.jobRepo.AssertNotCalled(t, "GetByID")
		m.appRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should reject malformed reference IDs", func(t *testing.T) {
		m := newApplicationMocks()

		_, err := m.uc.SubmitApplication(context.Background(), "not-a-uuid", testCandidateID, testResumeID)
		assert.Error(t, err)

		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 400, appErr.Code)
		assert.Equal(t, "job_id", appErr.Field)
		m.jobRepo.AssertNotCalled(t, "GetByID")
	})

	t.Run("Should report missing job before checking candidate", func(t *testing.T) {
		m := newApplicationMocks()
		m.jobRepo.On("GetByID", mock.Anything, testJobID).Return(nil, domain.ErrNotFound)

		_, err := m.uc.SubmitApplication(context.Background(), testJobID, testCandidateID, testResumeID)
		assert.Error(t, err)

		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 404, appErr.Code)
		assert.Equal(t, "job_id", appErr.Field)
		m.candidateRepo.AssertNotCalled(t, "GetByID")
		m.resumeRepo.AssertNotCalled(t, "GetByID")
	})

	t.Run("Should report missing candidate before checking resume", func(t *testing.T) {
		m := newApplicationMocks()
		m.givenJobExists()
		m.candidateRepo.On("GetByID", mock.Anything, testCandidateID).Return(nil, domain.ErrNotFound)

		_, err := m.uc.SubmitApplication(context.Background(), testJobID, testCandidateID, testResumeID)
		assert.Error(t, err)

		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 404, appErr.Code)
		assert.Equal(t, "candidate_id", appErr.Field)
		m.resumeRepo.AssertNotCalled(t, "GetByID")
	})

	t.Run("Should report missing resume", func(t *testing.T) {
		m := newApplicationMocks()
		m.givenJobExists()
		m.givenCandidateExists()
		m.resumeRepo.On("GetByID", mock.Anything, testResumeID).Return(nil, domain.ErrNotFound)

		_, err := m.uc.SubmitApplication(context.Background(), testJobID, testCandidateID, testResumeID)
		assert.Error(t, err)

		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 404, appErr.Code)
		assert.Equal(t, "resume_id", appErr.Field)
		m.appRepo.AssertNotCalled(t, "FindByCandidateAndJob")
	})

	t.Run("Should reject resume owned by another candidate", func(t *testing.T) {
		m := newApplicationMocks()
		m.givenJobExists()
		m.givenCandidateExists()
		m.givenResumeOwnedBy("55555555-5555-4555-8555-555555555555")

		_, err := m.uc.SubmitApplication(context.Background(), testJobID, testCandidateID, testResumeID)
		assert.Error(t, err)

		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 400, appErr.Code)
		assert.Equal(t, "resume_id", appErr.Field)
		assert.Contains(t, appErr.Message, "does not belong")
		m.appRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should reject duplicate application and surface existing ID", func(t *testing.T) {
		m := newApplicationMocks()
		m.givenJobExists()
		m.givenCandidateExists()
		m.givenResumeOwnedBy(testCandidateID)

		m.appRepo.On("FindByCandidateAndJob", mock.Anything, testCandidateID, testJobID).Return(&domain.Application{
			ID: testAppID,
		}, nil)

		_, err := m.uc.SubmitApplication(context.Background(), testJobID, testCandidateID, testResumeID)
		assert.Error(t, err)

		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 409, appErr.Code)
		assert.Equal(t, testAppID, appErr.Details["existing_application_id"])
		m.appRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should translate a lost insert race into a duplicate conflict", func(t *testing.T) {
		m := newApplicationMocks()
		m.givenJobExists()
		m.givenCandidateExists()
		m.givenResumeOwnedBy(testCandidateID)

		// Pre-check sees nothing, a concurrent submission wins the insert,
		// and the re-fetch returns the surviving row
		m.appRepo.On("FindByCandidateAndJob", mock.Anything, testCandidateID, testJobID).Return(nil, domain.ErrNotFound).Once()
		m.appRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Application")).Return(domain.ErrDuplicate).Once()
		m.appRepo.On("FindByCandidateAndJob", mock.Anything, testCandidateID, testJobID).Return(&domain.Application{
			ID: testAppID,
		}, nil).Once()

		_, err := m.uc.SubmitApplication(context.Background(), testJobID, testCandidateID, testResumeID)
		assert.Error(t, err)

		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 409, appErr.Code)
		assert.Equal(t, testAppID, appErr.Details["existing_application_id"])
		m.appRepo.AssertExpectations(t)
	})
}

func TestListApplications(t *testing.T) {
	t.Run("Should fetch all when no status filter given", func(t *testing.T) {
		m := newApplicationMocks()
		m.appRepo.On("Fetch", mock.Anything).Return([]domain.Application{}, nil)

		_, err := m.uc.ListApplications(context.Background(), "")
		assert.NoError(t, err)
		m.appRepo.AssertNotCalled(t, "GetByStatus")
	})

	t.Run("Should filter by valid status", func(t *testing.T) {
		m := newApplicationMocks()
		m.appRepo.On("GetByStatus", mock.Anything, "shortlisted").Return([]domain.Application{}, nil)

		_, err := m.uc.ListApplications(context.Background(), "shortlisted")
		assert.NoError(t, err)
		m.appRepo.AssertExpectations(t)
	})

	t.Run("Should reject unknown status with allowed values", func(t *testing.T) {
		m := newApplicationMocks()

		_, err := m.uc.ListApplications(context.Background(), "pending")
		assert.Error(t, err)

		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 400, appErr.Code)
		assert.Equal(t, "status", appErr.Field)
		assert.Equal(t, domain.ApplicationStatuses, appErr.Details["allowed_values"])
		m.appRepo.AssertNotCalled(t, "GetByStatus")
		m.appRepo.AssertNotCalled(t, "Fetch")
	})
}

func TestListByCandidate(t *testing.T) {
	t.Run("Should return 404 for unknown candidate", func(t *testing.T) {
		m := newApplicationMocks()
		m.candidateRepo.On("GetByID", mock.Anything, testCandidateID).Return(nil, domain.ErrNotFound)

		_, err := m.uc.ListByCandidate(context.Background(), testCandidateID)
		assert.Error(t, err)

		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 404, appErr.Code)
		m.appRepo.AssertNotCalled(t, "GetByCandidateID")
	})

	t.Run("Should list applications for existing candidate", func(t *testing.T) {
		m := newApplicationMocks()
		m.givenCandidateExists()
		m.appRepo.On("GetByCandidateID", mock.Anything, testCandidateID).Return([]domain.Application{{ID: testAppID}}, nil)

		apps, err := m.uc.ListByCandidate(context.Background(), testCandidateID)
		assert.NoError(t, err)
		assert.Len(t, apps, 1)
	})
}

func TestListByJob(t *testing.T) {
	t.Run("Should return 404 for unknown job", func(t *testing.T) {
		m := newApplicationMocks()
		m.jobRepo.On("GetByID", mock.Anything, testJobID).Return(nil, domain.ErrNotFound)

		_, err := m.uc.ListByJob(context.Background(), testJobID)
		assert.Error(t, err)

		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 404, appErr.Code)
		m.appRepo.AssertNotCalled(t, "GetByJobID")
	})
}

func TestUpdateApplicationStatus(t *testing.T) {
	t.Run("Should reject invalid status without touching the store", func(t *testing.T) {
		m := newApplicationMocks()

		_, err := m.uc.UpdateApplicationStatus(context.Background(), testAppID, "hired")
		assert.Error(t, err)

		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 400, appErr.Code)
		assert.Equal(t, "status", appErr.Field)
		assert.Contains(t, appErr.Message, "applied, shortlisted, rejected")
		m.appRepo.AssertNotCalled(t, "UpdateStatus")
	})

	t.Run("Should return 404 for unknown application", func(t *testing.T) {
		m := newApplicationMocks()
		m.appRepo.On("UpdateStatus", mock.Anything, testAppID, "rejected").Return(domain.ErrNotFound)

		_, err := m.uc.UpdateApplicationStatus(context.Background(), testAppID, "rejected")
		assert.Error(t, err)

		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 404, appErr.Code)
	})

	t.Run("Should allow any transition between valid statuses", func(t *testing.T) {
		appliedAt := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

		// rejected back to applied is permitted; the lifecycle is not
		// forward-only
		m := newApplicationMocks()
		m.appRepo.On("UpdateStatus", mock.Anything, testAppID, "applied").Return(nil)
		m.appRepo.On("GetByID", mock.Anything, testAppID).Return(&domain.Application{
			ID:        testAppID,
			Status:    domain.ApplicationStatusApplied,
			AppliedAt: appliedAt,
		}, nil)

		app, err := m.uc.UpdateApplicationStatus(context.Background(), testAppID, "applied")
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusApplied, app.Status)
		// AppliedAt survives status changes untouched
		assert.Equal(t, appliedAt, app.AppliedAt)
		m.appRepo.AssertExpectations(t)
	})
}
