package postgres

import (
	"context"

	"go-hr-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type jobInterviewWeightRepo struct {
	db *pgxpool.Pool
}

func NewJobInterviewWeightRepository(db *pgxpool.Pool) domain.JobInterviewWeightRepository {
	return &jobInterviewWeightRepo{db: db}
}

func (r *jobInterviewWeightRepo) Insert(ctx context.Context, weight *domain.JobInterviewWeight) error {
	query := `INSERT INTO job_interview_weights (technology_id, job_opening_id, weight, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRow(ctx, query,
		weight.TechnologyID, weight.JobOpeningID, weight.Weight,
		weight.CreatedAt, weight.UpdatedAt,
	).Scan(&weight.ID)
}

func (r *jobInterviewWeightRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM job_interview_weights WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
