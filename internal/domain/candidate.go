package domain

import (
	"context"
	"fmt"
	"time"

	"go-hr-backend/pkg/validation"
)

type Candidate struct {
	ID          int64     `json:"id"`
	CompanyID   int64     `json:"company_id"`
	GenderID    int64     `json:"gender_id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	CPF         string    `json:"cpf"`
	RG          string    `json:"rg"`
	DateOfBirth time.Time `json:"date_of_birth"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Addresses    []Address             `json:"addresses"`
	Technologies []CandidateTechnology `json:"technologies"`
}

func NewCandidate(id, companyID, genderID int64, firstName, lastName, cpf, rg string, dateOfBirth time.Time) *Candidate {
	now := time.Now()
	return &Candidate{
		ID:          id,
		CompanyID:   companyID,
		GenderID:    genderID,
		FirstName:   firstName,
		LastName:    lastName,
		CPF:         cpf,
		RG:          rg,
		DateOfBirth: dateOfBirth,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (c *Candidate) Rules() []Rule {
	return []Rule{
		linked("CompanyID", "Company", c.CompanyID),
		linked("GenderID", "Gender", c.GenderID),
		notBlank("FirstName", c.FirstName),
		lengthBetween("FirstName", c.FirstName, 5, 100),
		notBlank("LastName", c.LastName),
		lengthBetween("LastName", c.LastName, 5, 100),
		notBlank("CPF", c.CPF),
		{
			Ok:      func() bool { return validation.ValidCPF(c.CPF) },
			Message: fmt.Sprintf(MsgInvalidDocument, "CPF"),
		},
		{
			Ok:      func() bool { return validation.AtLeast18(c.DateOfBirth) },
			Message: fmt.Sprintf(MsgUnderage, "DateOfBirth", "Candidate"),
		},
	}
}

type CandidateRepository interface {
	Insert(ctx context.Context, candidate *Candidate) error
	Update(ctx context.Context, candidate *Candidate) error
	Delete(ctx context.Context, id int64) error
	SelectByID(ctx context.Context, id int64) (*Candidate, error)
	SelectAll(ctx context.Context) ([]Candidate, error)
}

type CandidateUsecase interface {
	List(ctx context.Context) ([]Candidate, error)
	GetByID(ctx context.Context, id int64) (*Candidate, error)
	Create(ctx context.Context, candidate *Candidate) (int64, error)
	Update(ctx context.Context, candidate *Candidate) (int64, error)
	Delete(ctx context.Context, id int64) error
}
