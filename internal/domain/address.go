package domain

import (
	"context"
	"fmt"
	"time"

	"go-hr-backend/pkg/validation"
)

// Address belongs to exactly one owner: a company or a candidate. The
// unused owner key is stored as NULL by the repository.
type Address struct {
	ID           int64     `json:"id"`
	CompanyID    int64     `json:"company_id"`
	CandidateID  int64     `json:"candidate_id"`
	Name         string    `json:"name"`
	ZipCode      string    `json:"zip_code"`
	Street       string    `json:"street"`
	Number       string    `json:"number"`
	Complement   string    `json:"complement"`
	Neighborhood string    `json:"neighborhood"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (a *Address) Rules() []Rule {
	return []Rule{
		{
			Ok:      func() bool { return (a.CompanyID != 0) != (a.CandidateID != 0) },
			Message: MsgAddressOwner,
		},
		notBlank("Name", a.Name),
		lengthBetween("Name", a.Name, 5, 50),
		notBlank("ZipCode", a.ZipCode),
		exactLength("ZipCode", a.ZipCode, 9),
		notBlank("Street", a.Street),
		lengthBetween("Street", a.Street, 5, 100),
		notBlank("Number", a.Number),
		lengthBetween("Number", a.Number, 1, 5),
		notBlank("Neighborhood", a.Neighborhood),
		lengthBetween("Neighborhood", a.Neighborhood, 1, 100),
		notBlank("City", a.City),
		lengthBetween("City", a.City, 1, 100),
		notBlank("State", a.State),
		exactLength("State", a.State, 2),
		{
			Ok:      func() bool { return validation.ValidStateCode(a.State) },
			Message: fmt.Sprintf(MsgInvalidState, "State"),
		},
	}
}

type AddressRepository interface {
	Insert(ctx context.Context, address *Address) error
	Update(ctx context.Context, address *Address) error
	Delete(ctx context.Context, id int64) error
	SelectByID(ctx context.Context, id int64) (*Address, error)
	SelectAllByCompany(ctx context.Context, companyID int64) ([]Address, error)
	SelectAllByCandidate(ctx context.Context, candidateID int64) ([]Address, error)
	DeleteAllByCompany(ctx context.Context, companyID int64) error
	DeleteAllByCandidate(ctx context.Context, candidateID int64) error
}

type AddressUsecase interface {
	GetByID(ctx context.Context, id int64) (*Address, error)
	ListByCompany(ctx context.Context, companyID int64) ([]Address, error)
	ListByCandidate(ctx context.Context, candidateID int64) ([]Address, error)
	Create(ctx context.Context, address *Address) (int64, error)
	Update(ctx context.Context, address *Address) (int64, error)
	Delete(ctx context.Context, id int64) error
	DeleteAllByCompany(ctx context.Context, companyID int64) error
	DeleteAllByCandidate(ctx context.Context, candidateID int64) error
}
