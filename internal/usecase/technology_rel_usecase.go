package usecase

import (
	"context"
	"errors"
	"time"

	"go-hr-backend/internal/domain"
	"go-hr-backend/pkg/apperror"
)

type companyTechnologyUsecase struct {
	relRepo domain.CompanyTechnologyRepository
}

func NewCompanyTechnologyUsecase(relRepo domain.CompanyTechnologyRepository) domain.CompanyTechnologyUsecase {
	return &companyTechnologyUsecase{relRepo: relRepo}
}

func (u *companyTechnologyUsecase) ListByCompany(ctx context.Context, companyID int64) ([]domain.CompanyTechnology, error) {
	return u.relRepo.SelectAllByCompany(ctx, companyID)
}

func (u *companyTechnologyUsecase) Create(ctx context.Context, rel *domain.CompanyTechnology) (int64, error) {
	if err := validate(rel.Rules()); err != nil {
		return 0, err
	}

	now := time.Now()
	rel.CreatedAt = now
	rel.UpdatedAt = now

	if err := u.relRepo.Insert(ctx, rel); err != nil {
		return 0, apperror.Persistence(err, domain.MsgSaveError)
	}
	return rel.ID, nil
}

func (u *companyTechnologyUsecase) Delete(ctx context.Context, id int64) error {
	if err := u.relRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound(domain.MsgRecordNotFound)
		}
		return apperror.Persistence(err, domain.MsgDeleteError)
	}
	return nil
}

type candidateTechnologyUsecase struct {
	relRepo domain.CandidateTechnologyRepository
}

func NewCandidateTechnologyUsecase(relRepo domain.CandidateTechnologyRepository) domain.CandidateTechnologyUsecase {
	return &candidateTechnologyUsecase{relRepo: relRepo}
}

func (u *candidateTechnologyUsecase) ListByCandidate(ctx context.Context, candidateID int64) ([]domain.CandidateTechnology, error) {
	return u.relRepo.SelectAllByCandidate(ctx, candidateID)
}

func (u *candidateTechnologyUsecase) Create(ctx context.Context, rel *domain.CandidateTechnology) (int64, error) {
	if err := validate(rel.Rules()); err != nil {
		return 0, err
	}

	now := time.Now()
	rel.CreatedAt = now
	rel.UpdatedAt = now

	if err := u.relRepo.Insert(ctx, rel); err != nil {
		return 0, apperror.Persistence(err, domain.MsgSaveError)
	}
	return rel.ID, nil
}

func (u *candidateTechnologyUsecase) Delete(ctx context.Context, id int64) error {
	if err := u.relRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound(domain.MsgRecordNotFound)
		}
		return apperror.Persistence(err, domain.MsgDeleteError)
	}
	return nil
}
