package postgres

import (
	"context"
	"errors"

	"go-hr-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type addressRepo struct {
	db *pgxpool.Pool
}

func NewAddressRepository(db *pgxpool.Pool) domain.AddressRepository {
	return &addressRepo{db: db}
}

// ownerKey turns a zero FK into NULL so the row carries only the owner
// it actually belongs to.
func ownerKey(id int64) any {
	if id == 0 {
		return nil
	}
	return id
}

func (r *addressRepo) Insert(ctx context.Context, address *domain.Address) error {
	query := `INSERT INTO addresses (company_id, candidate_id, name, zip_code, street, number, complement, neighborhood, city, state, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	err := r.db.QueryRow(ctx, query,
		ownerKey(address.CompanyID), ownerKey(address.CandidateID),
		address.Name, address.ZipCode, address.Street, address.Number, address.Complement,
		address.Neighborhood, address.City, address.State,
		address.CreatedAt, address.UpdatedAt,
	).Scan(&address.ID)
	return err
}

func (r *addressRepo) Update(ctx context.Context, address *domain.Address) error {
	query := `UPDATE addresses SET company_id = $1, candidate_id = $2, name = $3, zip_code = $4, street = $5, number = $6, complement = $7, neighborhood = $8, city = $9, state = $10, updated_at = $11 WHERE id = $12`
	result, err := r.db.Exec(ctx, query,
		ownerKey(address.CompanyID), ownerKey(address.CandidateID),
		address.Name, address.ZipCode, address.Street, address.Number, address.Complement,
		address.Neighborhood, address.City, address.State,
		address.UpdatedAt, address.ID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *addressRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM addresses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *addressRepo) SelectByID(ctx context.Context, id int64) (*domain.Address, error) {
	query := `SELECT id, COALESCE(company_id, 0), COALESCE(candidate_id, 0), name, zip_code, street, number, complement, neighborhood, city, state, created_at, updated_at FROM addresses WHERE id = $1`
	var address domain.Address
	err := r.db.QueryRow(ctx, query, id).Scan(
		&address.ID, &address.CompanyID, &address.CandidateID,
		&address.Name, &address.ZipCode, &address.Street, &address.Number, &address.Complement,
		&address.Neighborhood, &address.City, &address.State,
		&address.CreatedAt, &address.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &address, nil
}

func (r *addressRepo) SelectAllByCompany(ctx context.Context, companyID int64) ([]domain.Address, error) {
	query := `SELECT id, COALESCE(company_id, 0), COALESCE(candidate_id, 0), name, zip_code, street, number, complement, neighborhood, city, state, created_at, updated_at FROM addresses WHERE company_id = $1 ORDER BY id`
	return r.selectAll(ctx, query, companyID)
}

func (r *addressRepo) SelectAllByCandidate(ctx context.Context, candidateID int64) ([]domain.Address, error) {
	query := `SELECT id, COALESCE(company_id, 0), COALESCE(candidate_id, 0), name, zip_code, street, number, complement, neighborhood, city, state, created_at, updated_at FROM addresses WHERE candidate_id = $1 ORDER BY id`
	return r.selectAll(ctx, query, candidateID)
}

func (r *addressRepo) selectAll(ctx context.Context, query string, ownerID int64) ([]domain.Address, error) {
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var addresses []domain.Address
	for rows.Next() {
		var address domain.Address
		if err := rows.Scan(&address.ID, &address.CompanyID, &address.CandidateID, &address.Name, &address.ZipCode, &address.Street, &address.Number, &address.Complement, &address.Neighborhood, &address.City, &address.State, &address.CreatedAt, &address.UpdatedAt); err != nil {
			return nil, err
		}
		addresses = append(addresses, address)
	}
	return addresses, rows.Err()
}

func (r *addressRepo) DeleteAllByCompany(ctx context.Context, companyID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM addresses WHERE company_id = $1`, companyID)
	return err
}

func (r *addressRepo) DeleteAllByCandidate(ctx context.Context, candidateID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM addresses WHERE candidate_id = $1`, candidateID)
	return err
}
