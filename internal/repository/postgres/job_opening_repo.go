package postgres

import (
	"context"
	"errors"

	"go-hr-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobOpeningRepo struct {
	db *pgxpool.Pool
}

func NewJobOpeningRepository(db *pgxpool.Pool) domain.JobOpeningRepository {
	return &jobOpeningRepo{db: db}
}

func (r *jobOpeningRepo) Insert(ctx context.Context, jobOpening *domain.JobOpening) error {
	query := `INSERT INTO job_openings (title, summary, description, available, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := r.db.QueryRow(ctx, query,
		jobOpening.Title, jobOpening.Summary, jobOpening.Description, jobOpening.Available,
		jobOpening.CreatedAt, jobOpening.UpdatedAt,
	).Scan(&jobOpening.ID)
	return err
}

func (r *jobOpeningRepo) Update(ctx context.Context, jobOpening *domain.JobOpening) error {
	query := `UPDATE job_openings SET title = $1, summary = $2, description = $3, available = $4, updated_at = $5 WHERE id = $6`
	result, err := r.db.Exec(ctx, query,
		jobOpening.Title, jobOpening.Summary, jobOpening.Description, jobOpening.Available,
		jobOpening.UpdatedAt, jobOpening.ID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobOpeningRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM job_openings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobOpeningRepo) SelectByID(ctx context.Context, id int64) (*domain.JobOpening, error) {
	query := `SELECT id, title, summary, description, available, created_at, updated_at FROM job_openings WHERE id = $1`
	var jobOpening domain.JobOpening
	err := r.db.QueryRow(ctx, query, id).Scan(
		&jobOpening.ID, &jobOpening.Title, &jobOpening.Summary, &jobOpening.Description,
		&jobOpening.Available, &jobOpening.CreatedAt, &jobOpening.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &jobOpening, nil
}

func (r *jobOpeningRepo) SelectAll(ctx context.Context) ([]domain.JobOpening, error) {
	query := `SELECT id, title, summary, description, available, created_at, updated_at FROM job_openings ORDER BY id`
	return r.selectAll(ctx, query)
}

func (r *jobOpeningRepo) SelectAllAvailable(ctx context.Context) ([]domain.JobOpening, error) {
	query := `SELECT id, title, summary, description, available, created_at, updated_at FROM job_openings WHERE available = true ORDER BY id`
	return r.selectAll(ctx, query)
}

func (r *jobOpeningRepo) selectAll(ctx context.Context, query string) ([]domain.JobOpening, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobOpenings []domain.JobOpening
	for rows.Next() {
		var jobOpening domain.JobOpening
		if err := rows.Scan(&jobOpening.ID, &jobOpening.Title, &jobOpening.Summary, &jobOpening.Description, &jobOpening.Available, &jobOpening.CreatedAt, &jobOpening.UpdatedAt); err != nil {
			return nil, err
		}
		jobOpenings = append(jobOpenings, jobOpening)
	}
	return jobOpenings, rows.Err()
}
