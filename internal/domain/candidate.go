package domain

import (
	"context"
	"time"
)

type Candidate struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"required,min=2,max=100"`
	Email     string    `json:"email" validate:"required,email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CandidateRepository interface {
	Create(ctx context.Context, candidate *Candidate) error
	GetByID(ctx context.Context, id string) (*Candidate, error)
	Fetch(ctx context.Context, limit, offset int) ([]Candidate, int64, error)
	Update(ctx context.Context, candidate *Candidate) error
	Delete(ctx context.Context, id string) error
}

type CandidateUsecase interface {
	CreateCandidate(ctx context.Context, candidate *Candidate) error
	GetCandidate(ctx context.Context, id string) (*Candidate, error)
	ListCandidates(ctx context.Context, page, pageSize int) ([]Candidate, int64, error)
	UpdateCandidate(ctx context.Context, candidate *Candidate) error
	DeleteCandidate(ctx context.Context, id string) error
}
