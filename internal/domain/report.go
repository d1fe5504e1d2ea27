package domain

import "context"

// CandidateScore is a read-only report row: the summed interview weight
// of every technology a candidate shares with an available job opening.
// It is derived by a join/aggregate query and never persisted.
type CandidateScore struct {
	CandidateID int64  `json:"candidate_id"`
	FullName    string `json:"full_name"`
	JobTitle    string `json:"job_title"`
	TotalScore  int64  `json:"total_score"`
}

type ReportRepository interface {
	SelectCandidateScores(ctx context.Context) ([]CandidateScore, error)
}

type ReportUsecase interface {
	CandidateScores(ctx context.Context) ([]CandidateScore, error)
}
