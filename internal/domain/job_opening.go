package domain

import (
	"context"
	"time"
)

// JobOpening is an aggregate root owning its responsibilities.
type JobOpening struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Description string    `json:"description"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Responsibilities []Responsibility `json:"responsibilities"`
}

func NewJobOpening(id int64, title, summary, description string, available bool) *JobOpening {
	now := time.Now()
	return &JobOpening{
		ID:          id,
		Title:       title,
		Summary:     summary,
		Description: description,
		Available:   available,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (j *JobOpening) Rules() []Rule {
	return []Rule{
		notBlank("Title", j.Title),
		lengthBetween("Title", j.Title, 1, 30),
		notBlank("Summary", j.Summary),
		lengthBetween("Summary", j.Summary, 10, 100),
	}
}

type JobOpeningRepository interface {
	Insert(ctx context.Context, jobOpening *JobOpening) error
	Update(ctx context.Context, jobOpening *JobOpening) error
	Delete(ctx context.Context, id int64) error
	SelectByID(ctx context.Context, id int64) (*JobOpening, error)
	SelectAll(ctx context.Context) ([]JobOpening, error)
	SelectAllAvailable(ctx context.Context) ([]JobOpening, error)
}

type JobOpeningUsecase interface {
	List(ctx context.Context) ([]JobOpening, error)
	ListAvailable(ctx context.Context) ([]JobOpening, error)
	GetByID(ctx context.Context, id int64) (*JobOpening, error)
	Create(ctx context.Context, jobOpening *JobOpening) (int64, error)
	Update(ctx context.Context, jobOpening *JobOpening) (int64, error)
	Delete(ctx context.Context, id int64) error
}
