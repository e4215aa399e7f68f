package usecase_test

import (
	"context"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories
type MockEmployerRepo struct {
	mock.Mock
}

func (m *MockEmployerRepo) Create(ctx context.Context, employer *domain.Employer) error {
	return m.Called(ctx, employer).Error(0)
}
func (m *MockEmployerRepo) GetByID(ctx context.Context, id string) (*domain.Employer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employer), args.Error(1)
}
func (m *MockEmployerRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.Employer, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Employer), args.Get(1).(int64), args.Error(2)
}
func (m *MockEmployerRepo) Update(ctx context.Context, employer *domain.Employer) error {
	return m.Called(ctx, employer).Error(0)
}
func (m *MockEmployerRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) Create(ctx context.Context, candidate *domain.Candidate) error {
	return m.Called(ctx, candidate).Error(0)
}
func (m *MockCandidateRepo) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}
func (m *MockCandidateRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.Candidate, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Candidate), args.Get(1).(int64), args.Error(2)
}
func (m *MockCandidateRepo) Update(ctx context.Context, candidate *domain.Candidate) error {
	return m.Called(ctx, candidate).Error(0)
}
func (m *MockCandidateRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.Job, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Job), args.Get(1).(int64), args.Error(2)
}
func (m *MockJobRepo) FetchByEmployerID(ctx context.Context, employerID string, limit, offset int) ([]domain.Job, int64, error) {
	args := m.Called(ctx, employerID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Job), args.Get(1).(int64), args.Error(2)
}
func (m *MockJobRepo) Update(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockResumeRepo struct {
	mock.Mock
}

func (m *MockResumeRepo) Create(ctx context.Context, resume *domain.Resume) error {
	return m.Called(ctx, resume).Error(0)
}
func (m *MockResumeRepo) GetByID(ctx context.Context, id string) (*domain.Resume, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resume), args.Error(1)
}
func (m *MockResumeRepo) FetchByCandidateID(ctx context.Context, candidateID string) ([]domain.Resume, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Resume), args.Error(1)
}
func (m *MockResumeRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) Fetch(ctx context.Context) ([]domain.Application, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) GetByJobID(ctx context.Context, jobID string) ([]domain.Application, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) GetByCandidateID(ctx context.Context, candidateID string) ([]domain.Application, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) GetByStatus(ctx context.Context, status string) ([]domain.Application, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) FindByCandidateAndJob(ctx context.Context, candidateID, jobID string) (*domain.Application, error) {
	args := m.Called(ctx, candidateID, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

func TestCreateEmployerValidation(t *testing.T) {
	mockRepo := new(MockEmployerRepo)
	validate := validator.New()
	uc := usecase.NewEmployerUsecase(mockRepo, validate)

	t.Run("Should fail when company name is missing", func(t *testing.T) {
		err := uc.CreateEmployer(context.Background(), &domain.Employer{
			Email: "hr@acme.com",
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Validation failed")
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should fail when email is malformed", func(t *testing.T) {
		err := uc.CreateEmployer(context.Background(), &domain.Employer{
			CompanyName: "Acme Corp",
			Email:       "not-an-email",
		})
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should normalize email before persisting", func(t *testing.T) {
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Employer")).Return(nil).Once().Run(func(args mock.Arguments) {
			e := args.Get(1).(*domain.Employer)
			assert.Equal(t, "hr@acme.com", e.Email)
		})

		err := uc.CreateEmployer(context.Background(), &domain.Employer{
			CompanyName: "Acme Corp",
			Email:       "  HR@Acme.COM ",
		})
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should return conflict when email already registered", func(t *testing.T) {
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Employer")).Return(domain.ErrDuplicate).Once()

		err := uc.CreateEmployer(context.Background(), &domain.Employer{
			CompanyName: "Acme Corp",
			Email:       "hr@acme.com",
		})
		assert.Error(t, err)

		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 409, appErr.Code)
		assert.Contains(t, appErr.Message, "already registered")
	})
}

func TestCreateCandidateValidation(t *testing.T) {
	mockRepo := new(MockCandidateRepo)
	validate := validator.New()
	uc := usecase.NewCandidateUsecase(mockRepo, validate)

	t.Run("Should fail when name is too short", func(t *testing.T) {
		err := uc.CreateCandidate(context.Background(), &domain.Candidate{
			Name:  "J",
			Email: "jane@example.com",
		})
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should create candidate with normalized email", func(t *testing.T) {
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Candidate")).Return(nil).Once().Run(func(args mock.Arguments) {
			c := args.Get(1).(*domain.Candidate)
			assert.Equal(t, "jane@example.com", c.Email)
		})

		err := uc.CreateCandidate(context.Background(), &domain.Candidate{
			Name:  "Jane Doe",
			Email: "Jane@Example.com",
		})
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestCreateJob(t *testing.T) {
	employerID := "7b4f9c2e-1a3d-4e5f-8a6b-0c1d2e3f4a5b"

	validJob := func() *domain.Job {
		return &domain.Job{
			EmployerID:  employerID,
			Title:       "Backend Engineer",
			Description: "Build and operate our job board APIs.",
			Location:    "Jakarta",
			Salary:      75000,
		}
	}

	t.Run("Should fail when employer does not exist", func(t *testing.T) {
		mockJobRepo := new(MockJobRepo)
		mockEmployerRepo := new(MockEmployerRepo)
		uc := usecase.NewJobUsecase(mockJobRepo, mockEmployerRepo, validator.New())

		mockEmployerRepo.On("GetByID", mock.Anything, employerID).Return(nil, domain.ErrNotFound)

		err := uc.CreateJob(context.Background(), validJob())
		assert.Error(t, err)

		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 404, appErr.Code)
		assert.Equal(t, "employer_id", appErr.Field)
		mockJobRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should fail when salary is negative", func(t *testing.T) {
		mockJobRepo := new(MockJobRepo)
		mockEmployerRepo := new(MockEmployerRepo)
		uc := usecase.NewJobUsecase(mockJobRepo, mockEmployerRepo, validator.New())

		job := validJob()
		job.Salary = -100

		err := uc.CreateJob(context.Background(), job)
		assert.Error(t, err)
		mockEmployerRepo.AssertNotCalled(t, "GetByID")
		mockJobRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should create job for existing employer", func(t *testing.T) {
		mockJobRepo := new(MockJobRepo)
		mockEmployerRepo := new(MockEmployerRepo)
		uc := usecase.NewJobUsecase(mockJobRepo, mockEmployerRepo, validator.New())

		mockEmployerRepo.On("GetByID", mock.Anything, employerID).Return(&domain.Employer{ID: employerID}, nil)
		mockJobRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Job")).Return(nil)

		err := uc.CreateJob(context.Background(), validJob())
		assert.NoError(t, err)
		mockJobRepo.AssertExpectations(t)
	})
}

func TestCreateResume(t *testing.T) {
	candidateID := "3c2b1a09-8f7e-4d6c-b5a4-9e8d7c6b5a40"

	t.Run("Should fail when candidate does not exist", func(t *testing.T) {
		mockResumeRepo := new(MockResumeRepo)
		mockCandidateRepo := new(MockCandidateRepo)
		uc := usecase.NewResumeUsecase(mockResumeRepo, mockCandidateRepo, validator.New())

		mockCandidateRepo.On("GetByID", mock.Anything, candidateID).Return(nil, domain.ErrNotFound)

		err := uc.CreateResume(context.Background(), &domain.Resume{
			CandidateID: candidateID,
			FileURL:     "https://files.example.com/resume.pdf",
		})
		assert.Error(t, err)

		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 404, appErr.Code)
		assert.Equal(t, "candidate_id", appErr.Field)
		mockResumeRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should fail when file URL is not a URL", func(t *testing.T) {
		mockResumeRepo := new(MockResumeRepo)
		mockCandidateRepo := new(MockCandidateRepo)
		uc := usecase.NewResumeUsecase(mockResumeRepo, mockCandidateRepo, validator.New())

		err := uc.CreateResume(context.Background(), &domain.Resume{
			CandidateID: candidateID,
			FileURL:     "resume.pdf",
		})
		assert.Error(t, err)
		mockResumeRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should create resume for existing candidate", func(t *testing.T) {
		mockResumeRepo := new(MockResumeRepo)
		mockCandidateRepo := new(MockCandidateRepo)
		uc := usecase.NewResumeUsecase(mockResumeRepo, mockCandidateRepo, validator.New())

		mockCandidateRepo.On("GetByID", mock.Anything, candidateID).Return(&domain.Candidate{ID: candidateID}, nil)
		mockResumeRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Resume")).Return(nil)

		err := uc.CreateResume(context.Background(), &domain.Resume{
			CandidateID: candidateID,
			FileURL:     "https://files.example.com/resume.pdf",
		})
		assert.NoError(t, err)
		mockResumeRepo.AssertExpectations(t)
	})
}

func TestListResumesByCandidate(t *testing.T) {
	candidateID := "3c2b1a09-8f7e-4d6c-b5a4-9e8d7c6b5a40"

	t.Run("Should return 404 for unknown candidate", func(t *testing.T) {
		mockResumeRepo := new(MockResumeRepo)
		mockCandidateRepo := new(MockCandidateRepo)
		uc := usecase.NewResumeUsecase(mockResumeRepo, mockCandidateRepo, validator.New())

		mockCandidateRepo.On("GetByID", mock.Anything, candidateID).Return(nil, domain.ErrNotFound)

		_, err := uc.ListResumesByCandidate(context.Background(), candidateID)
		assert.Error(t, err)

		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 404, appErr.Code)
		mockResumeRepo.AssertNotCalled(t, "FetchByCandidateID")
	})
}
