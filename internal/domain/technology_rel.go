package domain

import (
	"context"
	"time"
)

// CompanyTechnology links a company to a technology. TechnologyName is
// denormalized from the technologies table on reads.
type CompanyTechnology struct {
	ID             int64     `json:"id"`
	CompanyID      int64     `json:"company_id"`
	TechnologyID   int64     `json:"technology_id"`
	TechnologyName string    `json:"technology_name,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (r *CompanyTechnology) Rules() []Rule {
	return []Rule{
		linked("CompanyID", "Company", r.CompanyID),
		linked("TechnologyID", "Technology", r.TechnologyID),
	}
}

// CandidateTechnology links a candidate to a technology.
type CandidateTechnology struct {
	ID             int64     `json:"id"`
	CandidateID    int64     `json:"candidate_id"`
	TechnologyID   int64     `json:"technology_id"`
	TechnologyName string    `json:"technology_name,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (r *CandidateTechnology) Rules() []Rule {
	return []Rule{
		linked("CandidateID", "Candidate", r.CandidateID),
		linked("TechnologyID", "Technology", r.TechnologyID),
	}
}

type CompanyTechnologyRepository interface {
	Insert(ctx context.Context, rel *CompanyTechnology) error
	Delete(ctx context.Context, id int64) error
	SelectAllByCompany(ctx context.Context, companyID int64) ([]CompanyTechnology, error)
}

type CandidateTechnologyRepository interface {
	Insert(ctx context.Context, rel *CandidateTechnology) error
	Delete(ctx context.Context, id int64) error
	SelectAllByCandidate(ctx context.Context, candidateID int64) ([]CandidateTechnology, error)
}

type CompanyTechnologyUsecase interface {
	ListByCompany(ctx context.Context, companyID int64) ([]CompanyTechnology, error)
	Create(ctx context.Context, rel *CompanyTechnology) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type CandidateTechnologyUsecase interface {
	ListByCandidate(ctx context.Context, candidateID int64) ([]CandidateTechnology, error)
	Create(ctx context.Context, rel *CandidateTechnology) (int64, error)
	Delete(ctx context.Context, id int64) error
}
