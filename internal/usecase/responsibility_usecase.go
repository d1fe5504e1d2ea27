package usecase

import (
	"context"
	"errors"
	"time"

	"go-hr-backend/internal/domain"
	"go-hr-backend/pkg/apperror"
)

type responsibilityUsecase struct {
	responsibilityRepo domain.ResponsibilityRepository
}

func NewResponsibilityUsecase(responsibilityRepo domain.ResponsibilityRepository) domain.ResponsibilityUsecase {
	return &responsibilityUsecase{responsibilityRepo: responsibilityRepo}
}

func (u *responsibilityUsecase) ListByJobOpening(ctx context.Context, jobOpeningID int64) ([]domain.Responsibility, error) {
	return u.responsibilityRepo.SelectAllByJobOpening(ctx, jobOpeningID)
}

func (u *responsibilityUsecase) Create(ctx context.Context, responsibility *domain.Responsibility) (int64, error) {
	if err := validate(responsibility.Rules()); err != nil {
		return 0, err
	}

	now := time.Now()
	responsibility.CreatedAt = now
	responsibility.UpdatedAt = now

	if err := u.responsibilityRepo.Insert(ctx, responsibility); err != nil {
		return 0, apperror.Persistence(err, domain.MsgSaveError)
	}
	return responsibility.ID, nil
}

func (u *responsibilityUsecase) Update(ctx context.Context, responsibility *domain.Responsibility) (int64, error) {
	if err := validate(responsibility.Rules()); err != nil {
		return 0, err
	}

	responsibility.UpdatedAt = time.Now()

	if err := u.responsibilityRepo.Update(ctx, responsibility); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, apperror.Persistence(nil, domain.MsgUpdateError)
		}
		return 0, unexpected(err)
	}
	return responsibility.ID, nil
}

func (u *responsibilityUsecase) Delete(ctx context.Context, id int64) error {
	if _, err := u.responsibilityRepo.SelectByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound(domain.MsgRecordNotFound)
		}
		return unexpected(err)
	}

	if err := u.responsibilityRepo.Delete(ctx, id); err != nil {
		return apperror.Persistence(err, domain.MsgDeleteError)
	}
	return nil
}
