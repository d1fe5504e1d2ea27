package domain

import (
	"context"
	"time"
)

// Gender is a plain lookup row.
type Gender struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (g *Gender) Rules() []Rule {
	return []Rule{
		notBlank("Name", g.Name),
		lengthBetween("Name", g.Name, 1, 20),
	}
}

type GenderRepository interface {
	Insert(ctx context.Context, gender *Gender) error
	Update(ctx context.Context, gender *Gender) error
	Delete(ctx context.Context, id int64) error
	SelectByID(ctx context.Context, id int64) (*Gender, error)
	SelectAll(ctx context.Context) ([]Gender, error)
}

type GenderUsecase interface {
	List(ctx context.Context) ([]Gender, error)
	GetByID(ctx context.Context, id int64) (*Gender, error)
	Create(ctx context.Context, gender *Gender) (int64, error)
	Update(ctx context.Context, gender *Gender) (int64, error)
	Delete(ctx context.Context, id int64) error
}
