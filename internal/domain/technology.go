package domain

import (
	"context"
	"time"
)

// Technology is a plain lookup row referenced by companies, candidates
// and interview weights.
type Technology struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *Technology) Rules() []Rule {
	return []Rule{
		notBlank("Name", t.Name),
		lengthBetween("Name", t.Name, 1, 30),
	}
}

type TechnologyRepository interface {
	Insert(ctx context.Context, technology *Technology) error
	Update(ctx context.Context, technology *Technology) error
	Delete(ctx context.Context, id int64) error
	SelectByID(ctx context.Context, id int64) (*Technology, error)
	SelectAll(ctx context.Context) ([]Technology, error)
}

type TechnologyUsecase interface {
	List(ctx context.Context) ([]Technology, error)
	GetByID(ctx context.Context, id int64) (*Technology, error)
	Create(ctx context.Context, technology *Technology) (int64, error)
	Update(ctx context.Context, technology *Technology) (int64, error)
	Delete(ctx context.Context, id int64) error
}
