package domain

import (
	"context"
	"time"
)

// Interview records that a candidate interviewed for a job opening.
type Interview struct {
	ID           int64     `json:"id"`
	CandidateID  int64     `json:"candidate_id"`
	JobOpeningID int64     `json:"job_opening_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (i *Interview) Rules() []Rule {
	return []Rule{
		linked("CandidateID", "Candidate", i.CandidateID),
		linked("JobOpeningID", "JobOpening", i.JobOpeningID),
	}
}

type InterviewRepository interface {
	Insert(ctx context.Context, interview *Interview) error
	Delete(ctx context.Context, id int64) error
}

type InterviewUsecase interface {
	Create(ctx context.Context, interview *Interview) (int64, error)
	Delete(ctx context.Context, id int64) error
}
