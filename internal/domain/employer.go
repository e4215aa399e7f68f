package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var (
	ErrNotFound  = errors.New("resource not found")
	ErrDuplicate = errors.New("resource already exists")
)

type Employer struct {
	ID          string    `json:"id"`
	CompanyName string    `json:"company_name" validate:"required,min=2,max=100"`
	Email       string    `json:"email" validate:"required,email"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type EmployerRepository interface {
	Create(ctx context.Context, employer *Employer) error
	GetByID(ctx context.Context, id string) (*Employer, error)
	Fetch(ctx context.Context, limit, offset int) ([]Employer, int64, error)
	Update(ctx context.Context, employer *Employer) error
	Delete(ctx context.Context, id string) error
}

type EmployerUsecase interface {
	CreateEmployer(ctx context.Context, employer *Employer) error
	GetEmployer(ctx context.Context, id string) (*Employer, error)
	ListEmployers(ctx context.Context, page, pageSize int) ([]Employer, int64, error)
	UpdateEmployer(ctx context.Context, employer *Employer) error
	DeleteEmployer(ctx context.Context, id string) error
}
