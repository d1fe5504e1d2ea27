package postgres

import (
	"context"

	"go-hr-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type companyTechnologyRepo struct {
	db *pgxpool.Pool
}

func NewCompanyTechnologyRepository(db *pgxpool.Pool) domain.CompanyTechnologyRepository {
	return &companyTechnologyRepo{db: db}
}

func (r *companyTechnologyRepo) Insert(ctx context.Context, rel *domain.CompanyTechnology) error {
	query := `INSERT INTO company_technologies (company_id, technology_id, created_at, updated_at)
              VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRow(ctx, query, rel.CompanyID, rel.TechnologyID, rel.CreatedAt, rel.UpdatedAt).Scan(&rel.ID)
}

func (r *companyTechnologyRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM company_technologies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *companyTechnologyRepo) SelectAllByCompany(ctx context.Context, companyID int64) ([]domain.CompanyTechnology, error) {
	query := `SELECT ct.id, ct.company_id, ct.technology_id, t.name, ct.created_at, ct.updated_at
              FROM company_technologies ct
              JOIN technologies t ON ct.technology_id = t.id
              WHERE ct.company_id = $1 ORDER BY ct.id`
	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rels []domain.CompanyTechnology
	for rows.Next() {
		var rel domain.CompanyTechnology
		if err := rows.Scan(&rel.ID, &rel.CompanyID, &rel.TechnologyID, &rel.TechnologyName, &rel.CreatedAt, &rel.UpdatedAt); err != nil {
			return nil, err
		}
		rels = append(rels, rel)
	}
	return rels, rows.Err()
}

type candidateTechnologyRepo struct {
	db *pgxpool.Pool
}

func NewCandidateTechnologyRepository(db *pgxpool.Pool) domain.CandidateTechnologyRepository {
	return &candidateTechnologyRepo{db: db}
}

func (r *candidateTechnologyRepo) Insert(ctx context.Context, rel *domain.CandidateTechnology) error {
	query := `INSERT INTO candidate_technologies (candidate_id, technology_id, created_at, updated_at)
              VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRow(ctx, query, rel.CandidateID, rel.TechnologyID, rel.CreatedAt, rel.UpdatedAt).Scan(&rel.ID)
}

func (r *candidateTechnologyRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM candidate_technologies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *candidateTechnologyRepo) SelectAllByCandidate(ctx context.Context, candidateID int64) ([]domain.CandidateTechnology, error) {
	query := `SELECT ct.id, ct.candidate_id, ct.technology_id, t.name, ct.created_at, ct.updated_at
              FROM candidate_technologies ct
              JOIN technologies t ON ct.technology_id = t.id
              WHERE ct.candidate_id = $1 ORDER BY ct.id`
	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rels []domain.CandidateTechnology
	for rows.Next() {
		var rel domain.CandidateTechnology
		if err := rows.Scan(&rel.ID, &rel.CandidateID, &rel.TechnologyID, &rel.TechnologyName, &rel.CreatedAt, &rel.UpdatedAt); err != nil {
			return nil, err
		}
		rels = append(rels, rel)
	}
	return rels, rows.Err()
}
