package domain

import (
	"context"
	"time"
)

// JobInterviewWeight is the scoring coefficient a technology contributes
// to a job opening's candidate score.
type JobInterviewWeight struct {
	ID           int64     `json:"id"`
	TechnologyID int64     `json:"technology_id"`
	JobOpeningID int64     `json:"job_opening_id"`
	Weight       int       `json:"weight"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (w *JobInterviewWeight) Rules() []Rule {
	return []Rule{
		linked("TechnologyID", "Technology", w.TechnologyID),
		linked("JobOpeningID", "JobOpening", w.JobOpeningID),
	}
}

type JobInterviewWeightRepository interface {
	Insert(ctx context.Context, weight *JobInterviewWeight) error
	Delete(ctx context.Context, id int64) error
}

type JobInterviewWeightUsecase interface {
	Create(ctx context.Context, weight *JobInterviewWeight) (int64, error)
	Delete(ctx context.Context, id int64) error
}
