package postgres

import (
	"context"

	"go-hr-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type reportRepo struct {
	db *pgxpool.Pool
}

func NewReportRepository(db *pgxpool.Pool) domain.ReportRepository {
	return &reportRepo{db: db}
}

// SelectCandidateScores sums, per candidate and available job opening,
// the interview weight of every technology the candidate knows that the
// opening weighs. Best matches come first.
func (r *reportRepo) SelectCandidateScores(ctx context.Context) ([]domain.CandidateScore, error) {
	query := `
		SELECT
			c.id,
			c.first_name || ' ' || c.last_name AS full_name,
			jo.title,
			SUM(jiw.weight) AS total_score
		FROM candidates c
		JOIN candidate_technologies ct ON ct.candidate_id = c.id
		JOIN technologies t ON t.id = ct.technology_id
		JOIN job_interview_weights jiw ON jiw.technology_id = t.id
		JOIN job_openings jo ON jo.id = jiw.job_opening_id
		WHERE jo.available = true
		GROUP BY c.id, full_name, jo.title
		ORDER BY total_score DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scores []domain.CandidateScore
	for rows.Next() {
		var score domain.CandidateScore
		if err := rows.Scan(&score.CandidateID, &score.FullName, &score.JobTitle, &score.TotalScore); err != nil {
			return nil, err
		}
		scores = append(scores, score)
	}
	return scores, rows.Err()
}
