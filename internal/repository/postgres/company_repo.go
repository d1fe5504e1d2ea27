package postgres

import (
	"context"
	"errors"

	"go-hr-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type companyRepo struct {
	db *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) domain.CompanyRepository {
	return &companyRepo{db: db}
}

func (r *companyRepo) Insert(ctx context.Context, company *domain.Company) error {
	query := `INSERT INTO companies (name, cnpj, open_date, email, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := r.db.QueryRow(ctx, query,
		company.Name, company.CNPJ, company.OpenDate, company.Email,
		company.CreatedAt, company.UpdatedAt,
	).Scan(&company.ID)
	return err
}

func (r *companyRepo) Update(ctx context.Context, company *domain.Company) error {
	query := `UPDATE companies SET name = $1, cnpj = $2, open_date = $3, email = $4, updated_at = $5 WHERE id = $6`
	result, err := r.db.Exec(ctx, query,
		company.Name, company.CNPJ, company.OpenDate, company.Email,
		company.UpdatedAt, company.ID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *companyRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *companyRepo) SelectByID(ctx context.Context, id int64) (*domain.Company, error) {
	query := `SELECT id, name, cnpj, open_date, email, created_at, updated_at FROM companies WHERE id = $1`
	var company domain.Company
	err := r.db.QueryRow(ctx, query, id).Scan(
		&company.ID, &company.Name, &company.CNPJ, &company.OpenDate, &company.Email,
		&company.CreatedAt, &company.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *companyRepo) SelectAll(ctx context.Context) ([]domain.Company, error) {
	query := `SELECT id, name, cnpj, open_date, email, created_at, updated_at FROM companies ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []domain.Company
	for rows.Next() {
		var company domain.Company
		if err := rows.Scan(&company.ID, &company.Name, &company.CNPJ, &company.OpenDate, &company.Email, &company.CreatedAt, &company.UpdatedAt); err != nil {
			return nil, err
		}
		companies = append(companies, company)
	}
	return companies, rows.Err()
}
