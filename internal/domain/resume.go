package domain

import (
	"context"
	"time"
)

type Resume struct {
	ID          string    `json:"id"`
	CandidateID string    `json:"candidate_id" validate:"required,uuid"`
	FileURL     string    `json:"file_url" validate:"required,url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ResumeView extends Resume with the derived file extension
type ResumeView struct {
	Resume
	FileExtension string `json:"file_extension"`
}

func NewResumeView(resume Resume) ResumeView {
	return ResumeView{
		Resume:        resume,
		FileExtension: FileExtension(resume.FileURL),
	}
}

func NewResumeViews(resumes []Resume) []ResumeView {
	views := make([]ResumeView, 0, len(resumes))
	for _, resume := range resumes {
		views = append(views, NewResumeView(resume))
	}
	return views
}

type ResumeRepository interface {
	Create(ctx context.Context, resume *Resume) error
	GetByID(ctx context.Context, id string) (*Resume, error)
	FetchByCandidateID(ctx context.Context, candidateID string) ([]Resume, error)
	Delete(ctx context.Context, id string) error
}

type ResumeUsecase interface {
	CreateResume(ctx context.Context, resume *Resume) error
	GetResume(ctx context.Context, id string) (*Resume, error)
	ListResumesByCandidate(ctx context.Context, candidateID string) ([]Resume, error)
	DeleteResume(ctx context.Context, id string) error
}
