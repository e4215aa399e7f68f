package domain

import (
	"context"
	"time"
)

// Application status constants
const (
	ApplicationStatusApplied     = "applied"
	ApplicationStatusShortlisted = "shortlisted"
	ApplicationStatusRejected    = "rejected"
)

// ApplicationStatuses lists every valid status value. Transitions between
// any two statuses are allowed; the lifecycle is deliberately not a
// forward-only state machine.
var ApplicationStatuses = []string{
	ApplicationStatusApplied,
	ApplicationStatusShortlisted,
	ApplicationStatusRejected,
}

func IsValidApplicationStatus(status string) bool {
	for _, s := range ApplicationStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Application represents a candidate's application to a job. AppliedAt is
// set once at creation and never mutated by status updates.
type Application struct {
	ID          string    `json:"id"`
	JobID       string    `json:"job_id"`
	CandidateID string    `json:"candidate_id"`
	ResumeID    string    `json:"resume_id"`
	Status      string    `json:"status"`
	AppliedAt   time.Time `json:"applied_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Joined data for resolved responses
	JobTitle       *string  `json:"job_title,omitempty"`
	JobLocation    *string  `json:"job_location,omitempty"`
	JobSalary      *float64 `json:"job_salary,omitempty"`
	CandidateName  *string  `json:"candidate_name,omitempty"`
	CandidateEmail *string  `json:"candidate_email,omitempty"`
	ResumeFileURL  *string  `json:"resume_file_url,omitempty"`
}

// ApplicationView extends Application with display-only derived fields
type ApplicationView struct {
	Application
	StatusColor string  `json:"status_color"`
	AgeDays     int     `json:"age_days"`
	SalaryBand  *string `json:"salary_band,omitempty"`
}

func NewApplicationView(app Application, now time.Time) ApplicationView {
	view := ApplicationView{
		Application: app,
		StatusColor: StatusColor(app.Status),
		AgeDays:     AgeInDays(app.AppliedAt, now),
	}
	if app.JobSalary != nil {
		band := SalaryBand(*app.JobSalary)
		view.SalaryBand = &band
	}
	return view
}

func NewApplicationViews(apps []Application, now time.Time) []ApplicationView {
	views := make([]ApplicationView, 0, len(apps))
	for _, app := range apps {
		views = append(views, NewApplicationView(app, now))
	}
	return views
}

// ApplicationRepository defines data access methods for applications
type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id string) (*Application, error)
	Fetch(ctx context.Context) ([]Application, error)
	GetByJobID(ctx context.Context, jobID string) ([]Application, error)
	GetByCandidateID(ctx context.Context, candidateID string) ([]Application, error)
	GetByStatus(ctx context.Context, status string) ([]Application, error)
	FindByCandidateAndJob(ctx context.Context, candidateID, jobID string) (*Application, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

// ApplicationUsecase defines business logic for the application lifecycle
type ApplicationUsecase interface {
	SubmitApplication(ctx context.Context, jobID, candidateID, resumeID string) (*Application, error)
	GetApplication(ctx context.Context, id string) (*Application, error)
	ListApplications(ctx context.Context, status string) ([]Application, error)
	ListByJob(ctx context.Context, jobID string) ([]Application, error)
	ListByCandidate(ctx context.Context, candidateID string) ([]Application, error)
	UpdateApplicationStatus(ctx context.Context, id, status string) (*Application, error)
}
