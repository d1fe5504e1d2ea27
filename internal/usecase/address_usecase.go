package usecase

import (
	"context"
	"errors"
	"time"

	"go-hr-backend/internal/domain"
	"go-hr-backend/pkg/apperror"
)

type addressUsecase struct {
	addressRepo domain.AddressRepository
}

func NewAddressUsecase(addressRepo domain.AddressRepository) domain.AddressUsecase {
	return &addressUsecase{addressRepo: addressRepo}
}

func (u *addressUsecase) GetByID(ctx context.Context, id int64) (*domain.Address, error) {
	address, err := u.addressRepo.SelectByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound(domain.MsgRecordNotFound)
		}
		return nil, unexpected(err)
	}
	return address, nil
}

func (u *addressUsecase) ListByCompany(ctx context.Context, companyID int64) ([]domain.Address, error) {
	return u.addressRepo.SelectAllByCompany(ctx, companyID)
}

func (u *addressUsecase) ListByCandidate(ctx context.Context, candidateID int64) ([]domain.Address, error) {
	return u.addressRepo.SelectAllByCandidate(ctx, candidateID)
}

func (u *addressUsecase) Create(ctx context.Context, address *domain.Address) (int64, error) {
	if err := validate(address.Rules()); err != nil {
		return 0, err
	}

	now := time.Now()
	address.CreatedAt = now
	address.UpdatedAt = now

	if err := u.addressRepo.Insert(ctx, address); err != nil {
		return 0, apperror.Persistence(err, domain.MsgSaveError)
	}
	return address.ID, nil
}

func (u *addressUsecase) Update(ctx context.Context, address *domain.Address) (int64, error) {
	if err := validate(address.Rules()); err != nil {
		return 0, err
	}

	address.UpdatedAt = time.Now()

	if err := u.addressRepo.Update(ctx, address); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, apperror.Persistence(nil, domain.MsgUpdateError)
		}
		return 0, unexpected(err)
	}
	return address.ID, nil
}

func (u *addressUsecase) Delete(ctx context.Context, id int64) error {
	// Existence pre-check: a missing row surfaces as not_found before
	// the delete is attempted.
	if _, err := u.addressRepo.SelectByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound(domain.MsgRecordNotFound)
		}
		return unexpected(err)
	}

	if err := u.addressRepo.Delete(ctx, id); err != nil {
		return apperror.Persistence(err, domain.MsgDeleteError)
	}
	return nil
}

func (u *addressUsecase) DeleteAllByCompany(ctx context.Context, companyID int64) error {
	if err := u.addressRepo.DeleteAllByCompany(ctx, companyID); err != nil {
		return apperror.Persistence(err, domain.MsgDeleteError)
	}
	return nil
}

func (u *addressUsecase) DeleteAllByCandidate(ctx context.Context, candidateID int64) error {
	if err := u.addressRepo.DeleteAllByCandidate(ctx, candidateID); err != nil {
		return apperror.Persistence(err, domain.MsgDeleteError)
	}
	return nil
}
