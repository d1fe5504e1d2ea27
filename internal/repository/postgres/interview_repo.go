package postgres

import (
	"context"

	"go-hr-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type interviewRepo struct {
	db *pgxpool.Pool
}

func NewInterviewRepository(db *pgxpool.Pool) domain.InterviewRepository {
	return &interviewRepo{db: db}
}

func (r *interviewRepo) Insert(ctx context.Context, interview *domain.Interview) error {
	query := `INSERT INTO interviews (candidate_id, job_opening_id, created_at, updated_at)
              VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRow(ctx, query,
		interview.CandidateID, interview.JobOpeningID,
		interview.CreatedAt, interview.UpdatedAt,
	).Scan(&interview.ID)
}

func (r *interviewRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM interviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
