package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-hr-backend/pkg/validation"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Company is an aggregate root: its addresses and technology links are
// persisted through it.
type Company struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CNPJ      string    `json:"cnpj"`
	OpenDate  time.Time `json:"open_date"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Addresses    []Address           `json:"addresses"`
	Technologies []CompanyTechnology `json:"technologies"`
}

func NewCompany(id int64, name, cnpj string, openDate time.Time, email string) *Company {
	now := time.Now()
	return &Company{
		ID:        id,
		Name:      name,
		CNPJ:      cnpj,
		OpenDate:  openDate,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (c *Company) Rules() []Rule {
	return []Rule{
		notBlank("Name", c.Name),
		lengthBetween("Name", c.Name, 1, 50),
		notBlank("CNPJ", c.CNPJ),
		{
			Ok:      func() bool { return validation.ValidCNPJ(c.CNPJ) },
			Message: fmt.Sprintf(MsgInvalidDocument, "CNPJ"),
		},
	}
}

type CompanyRepository interface {
	Insert(ctx context.Context, company *Company) error
	Update(ctx context.Context, company *Company) error
	Delete(ctx context.Context, id int64) error
	SelectByID(ctx context.Context, id int64) (*Company, error)
	SelectAll(ctx context.Context) ([]Company, error)
}

type CompanyUsecase interface {
	List(ctx context.Context) ([]Company, error)
	GetByID(ctx context.Context, id int64) (*Company, error)
	Create(ctx context.Context, company *Company) (int64, error)
	Update(ctx context.Context, company *Company) (int64, error)
	Delete(ctx context.Context, id int64) error
}
