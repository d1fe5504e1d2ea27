package domain

import (
	"context"
	"time"
)

type Responsibility struct {
	ID           int64     `json:"id"`
	JobOpeningID int64     `json:"job_opening_id"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (r *Responsibility) Rules() []Rule {
	return []Rule{
		notBlank("Description", r.Description),
		lengthBetween("Description", r.Description, 1, 150),
	}
}

type ResponsibilityRepository interface {
	Insert(ctx context.Context, responsibility *Responsibility) error
	Update(ctx context.Context, responsibility *Responsibility) error
	Delete(ctx context.Context, id int64) error
	SelectByID(ctx context.Context, id int64) (*Responsibility, error)
	SelectAllByJobOpening(ctx context.Context, jobOpeningID int64) ([]Responsibility, error)
}

type ResponsibilityUsecase interface {
	ListByJobOpening(ctx context.Context, jobOpeningID int64) ([]Responsibility, error)
	Create(ctx context.Context, responsibility *Responsibility) (int64, error)
	Update(ctx context.Context, responsibility *Responsibility) (int64, error)
	Delete(ctx context.Context, id int64) error
}
