package postgres

import (
	"context"
	"errors"

	"go-hr-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type technologyRepo struct {
	db *pgxpool.Pool
}

func NewTechnologyRepository(db *pgxpool.Pool) domain.TechnologyRepository {
	return &technologyRepo{db: db}
}

func (r *technologyRepo) Insert(ctx context.Context, technology *domain.Technology) error {
	query := `INSERT INTO technologies (name, created_at, updated_at) VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRow(ctx, query, technology.Name, technology.CreatedAt, technology.UpdatedAt).Scan(&technology.ID)
}

func (r *technologyRepo) Update(ctx context.Context, technology *domain.Technology) error {
	result, err := r.db.Exec(ctx, `UPDATE technologies SET name = $1, updated_at = $2 WHERE id = $3`,
		technology.Name, technology.UpdatedAt, technology.ID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *technologyRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM technologies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *technologyRepo) SelectByID(ctx context.Context, id int64) (*domain.Technology, error) {
	var technology domain.Technology
	err := r.db.QueryRow(ctx, `SELECT id, name, created_at, updated_at FROM technologies WHERE id = $1`, id).
		Scan(&technology.ID, &technology.Name, &technology.CreatedAt, &technology.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &technology, nil
}

func (r *technologyRepo) SelectAll(ctx context.Context) ([]domain.Technology, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, created_at, updated_at FROM technologies ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var technologies []domain.Technology
	for rows.Next() {
		var technology domain.Technology
		if err := rows.Scan(&technology.ID, &technology.Name, &technology.CreatedAt, &technology.UpdatedAt); err != nil {
			return nil, err
		}
		technologies = append(technologies, technology)
	}
	return technologies, rows.Err()
}
