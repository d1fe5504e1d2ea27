package postgres

import (
	"context"
	"errors"

	"go-hr-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type candidateRepo struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepo{db: db}
}

func (r *candidateRepo) Insert(ctx context.Context, candidate *domain.Candidate) error {
	query := `INSERT INTO candidates (company_id, gender_id, first_name, last_name, cpf, rg, date_of_birth, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	err := r.db.QueryRow(ctx, query,
		candidate.CompanyID, candidate.GenderID, candidate.FirstName, candidate.LastName,
		candidate.CPF, candidate.RG, candidate.DateOfBirth,
		candidate.CreatedAt, candidate.UpdatedAt,
	).Scan(&candidate.ID)
	return err
}

func (r *candidateRepo) Update(ctx context.Context, candidate *domain.Candidate) error {
	query := `UPDATE candidates SET company_id = $1, gender_id = $2, first_name = $3, last_name = $4, cpf = $5, rg = $6, date_of_birth = $7, updated_at = $8 WHERE id = $9`
	result, err := r.db.Exec(ctx, query,
		candidate.CompanyID, candidate.GenderID, candidate.FirstName, candidate.LastName,
		candidate.CPF, candidate.RG, candidate.DateOfBirth,
		candidate.UpdatedAt, candidate.ID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *candidateRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *candidateRepo) SelectByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	query := `SELECT id, company_id, gender_id, first_name, last_name, cpf, rg, date_of_birth, created_at, updated_at FROM candidates WHERE id = $1`
	var candidate domain.Candidate
	err := r.db.QueryRow(ctx, query, id).Scan(
		&candidate.ID, &candidate.CompanyID, &candidate.GenderID,
		&candidate.FirstName, &candidate.LastName, &candidate.CPF, &candidate.RG,
		&candidate.DateOfBirth, &candidate.CreatedAt, &candidate.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &candidate, nil
}

func (r *candidateRepo) SelectAll(ctx context.Context) ([]domain.Candidate, error) {
	query := `SELECT id, company_id, gender_id, first_name, last_name, cpf, rg, date_of_birth, created_at, updated_at FROM candidates ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candidates []domain.Candidate
	for rows.Next() {
		var candidate domain.Candidate
		if err := rows.Scan(&candidate.ID, &candidate.CompanyID, &candidate.GenderID, &candidate.FirstName, &candidate.LastName, &candidate.CPF, &candidate.RG, &candidate.DateOfBirth, &candidate.CreatedAt, &candidate.UpdatedAt); err != nil {
			return nil, err
		}
		candidates = append(candidates, candidate)
	}
	return candidates, rows.Err()
}
