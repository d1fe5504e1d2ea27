package postgres

import (
	"context"
	"errors"

	"go-hr-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type genderRepo struct {
	db *pgxpool.Pool
}

func NewGenderRepository(db *pgxpool.Pool) domain.GenderRepository {
	return &genderRepo{db: db}
}

func (r *genderRepo) Insert(ctx context.Context, gender *domain.Gender) error {
	query := `INSERT INTO genders (name, created_at, updated_at) VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRow(ctx, query, gender.Name, gender.CreatedAt, gender.UpdatedAt).Scan(&gender.ID)
}

func (r *genderRepo) Update(ctx context.Context, gender *domain.Gender) error {
	result, err := r.db.Exec(ctx, `UPDATE genders SET name = $1, updated_at = $2 WHERE id = $3`,
		gender.Name, gender.UpdatedAt, gender.ID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *genderRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM genders WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *genderRepo) SelectByID(ctx context.Context, id int64) (*domain.Gender, error) {
	var gender domain.Gender
	err := r.db.QueryRow(ctx, `SELECT id, name, created_at, updated_at FROM genders WHERE id = $1`, id).
		Scan(&gender.ID, &gender.Name, &gender.CreatedAt, &gender.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &gender, nil
}

func (r *genderRepo) SelectAll(ctx context.Context) ([]domain.Gender, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, created_at, updated_at FROM genders ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var genders []domain.Gender
	for rows.Next() {
		var gender domain.Gender
		if err := rows.Scan(&gender.ID, &gender.Name, &gender.CreatedAt, &gender.UpdatedAt); err != nil {
			return nil, err
		}
		genders = append(genders, gender)
	}
	return genders, rows.Err()
}
