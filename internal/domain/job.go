package domain

import (
	"context"
	"time"
)

type Job struct {
	ID          string    `json:"id"`
	EmployerID  string    `json:"employer_id" validate:"required,uuid"`
	Title       string    `json:"title" validate:"required,min=3,max=100"`
	Description string    `json:"description" validate:"required,min=10,max=2000"`
	Location    string    `json:"location" validate:"required,min=2,max=100"`
	Salary      float64   `json:"salary" validate:"gte=0,lte=10000000"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Joined data for list responses
	CompanyName *string `json:"company_name,omitempty"`
}

// JobView extends Job with the derived salary band, recomputed per response
// rather than persisted
type JobView struct {
	Job
	SalaryBand string `json:"salary_band"`
}

func NewJobView(job Job) JobView {
	return JobView{
		Job:        job,
		SalaryBand: SalaryBand(job.Salary),
	}
}

func NewJobViews(jobs []Job) []JobView {
	views := make([]JobView, 0, len(jobs))
	for _, job := range jobs {
		views = append(views, NewJobView(job))
	}
	return views
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id string) (*Job, error)
	Fetch(ctx context.Context, limit, offset int) ([]Job, int64, error)
	FetchByEmployerID(ctx context.Context, employerID string, limit, offset int) ([]Job, int64, error)
	Update(ctx context.Context, job *Job) error
	Delete(ctx context.Context, id string) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, job *Job) error
	GetJob(ctx context.Context, id string) (*Job, error)
	ListJobs(ctx context.Context, page, pageSize int) ([]Job, int64, error)
	ListJobsByEmployer(ctx context.Context, employerID string, page, pageSize int) ([]Job, int64, error)
	UpdateJob(ctx context.Context, job *Job) error
	DeleteJob(ctx context.Context, id string) error
}
