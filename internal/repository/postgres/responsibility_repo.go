package postgres

import (
	"context"
	"errors"

	"go-hr-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type responsibilityRepo struct {
	db *pgxpool.Pool
}

func NewResponsibilityRepository(db *pgxpool.Pool) domain.ResponsibilityRepository {
	return &responsibilityRepo{db: db}
}

func (r *responsibilityRepo) Insert(ctx context.Context, responsibility *domain.Responsibility) error {
	query := `INSERT INTO responsibilities (job_opening_id, description, created_at, updated_at)
              VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRow(ctx, query,
		responsibility.JobOpeningID, responsibility.Description,
		responsibility.CreatedAt, responsibility.UpdatedAt,
	).Scan(&responsibility.ID)
}

func (r *responsibilityRepo) Update(ctx context.Context, responsibility *domain.Responsibility) error {
	query := `UPDATE responsibilities SET job_opening_id = $1, description = $2, updated_at = $3 WHERE id = $4`
	result, err := r.db.Exec(ctx, query,
		responsibility.JobOpeningID, responsibility.Description,
		responsibility.UpdatedAt, responsibility.ID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *responsibilityRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM responsibilities WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *responsibilityRepo) SelectByID(ctx context.Context, id int64) (*domain.Responsibility, error) {
	query := `SELECT id, job_opening_id, description, created_at, updated_at FROM responsibilities WHERE id = $1`
	var responsibility domain.Responsibility
	err := r.db.QueryRow(ctx, query, id).Scan(
		&responsibility.ID, &responsibility.JobOpeningID, &responsibility.Description,
		&responsibility.CreatedAt, &responsibility.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &responsibility, nil
}

func (r *responsibilityRepo) SelectAllByJobOpening(ctx context.Context, jobOpeningID int64) ([]domain.Responsibility, error) {
	query := `SELECT id, job_opening_id, description, created_at, updated_at FROM responsibilities WHERE job_opening_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, jobOpeningID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var responsibilities []domain.Responsibility
	for rows.Next() {
		var responsibility domain.Responsibility
		if err := rows.Scan(&responsibility.ID, &responsibility.JobOpeningID, &responsibility.Description, &responsibility.CreatedAt, &responsibility.UpdatedAt); err != nil {
			return nil, err
		}
		responsibilities = append(responsibilities, responsibility)
	}
	return responsibilities, rows.Err()
}
