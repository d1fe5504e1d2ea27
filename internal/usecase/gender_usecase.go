package usecase

import (
	"context"
	"errors"
	"time"

	"go-hr-backend/internal/domain"
	"go-hr-backend/pkg/apperror"
)

type genderUsecase struct {
	genderRepo domain.GenderRepository
}

func NewGenderUsecase(genderRepo domain.GenderRepository) domain.GenderUsecase {
	return &genderUsecase{genderRepo: genderRepo}
}

func (u *genderUsecase) List(ctx context.Context) ([]domain.Gender, error) {
	return u.genderRepo.SelectAll(ctx)
}

func (u *genderUsecase) GetByID(ctx context.Context, id int64) (*domain.Gender, error) {
	gender, err := u.genderRepo.SelectByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound(domain.MsgRecordNotFound)
		}
		return nil, unexpected(err)
	}
	return gender, nil
}

func (u *genderUsecase) Create(ctx context.Context, gender *domain.Gender) (int64, error) {
	if err := validate(gender.Rules()); err != nil {
		return 0, err
	}

	now := time.Now()
	gender.CreatedAt = now
	gender.UpdatedAt = now

	if err := u.genderRepo.Insert(ctx, gender); err != nil {
		return 0, apperror.Persistence(err, domain.MsgSaveError)
	}
	return gender.ID, nil
}

func (u *genderUsecase) Update(ctx context.Context, gender *domain.Gender) (int64, error) {
	if err := validate(gender.Rules()); err != nil {
		return 0, err
	}

	gender.UpdatedAt = time.Now()

	if err := u.genderRepo.Update(ctx, gender); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, apperror.Persistence(nil, domain.MsgUpdateError)
		}
		return 0, unexpected(err)
	}
	return gender.ID, nil
}

func (u *genderUsecase) Delete(ctx context.Context, id int64) error {
	if _, err := u.genderRepo.SelectByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound(domain.MsgRecordNotFound)
		}
		return unexpected(err)
	}

	if err := u.genderRepo.Delete(ctx, id); err != nil {
		return apperror.Persistence(err, domain.MsgDeleteError)
	}
	return nil
}
