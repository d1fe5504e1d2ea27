package usecase

import (
	"context"
	"errors"
	"time"

	"go-hr-backend/internal/domain"
	"go-hr-backend/pkg/apperror"
)

type technologyUsecase struct {
	technologyRepo domain.TechnologyRepository
}

func NewTechnologyUsecase(technologyRepo domain.TechnologyRepository) domain.TechnologyUsecase {
	return &technologyUsecase{technologyRepo: technologyRepo}
}

func (u *technologyUsecase) List(ctx context.Context) ([]domain.Technology, error) {
	return u.technologyRepo.SelectAll(ctx)
}

func (u *technologyUsecase) GetByID(ctx context.Context, id int64) (*domain.Technology, error) {
	technology, err := u.technologyRepo.SelectByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound(domain.MsgRecordNotFound)
		}
		return nil, unexpected(err)
	}
	return technology, nil
}

func (u *technologyUsecase) Create(ctx context.Context, technology *domain.Technology) (int64, error) {
	if err := validate(technology.Rules()); err != nil {
		return 0, err
	}

	now := time.Now()
	technology.CreatedAt = now
	technology.UpdatedAt = now

	if err := u.technologyRepo.Insert(ctx, technology); err != nil {
		return 0, apperror.Persistence(err, domain.MsgSaveError)
	}
	return technology.ID, nil
}

func (u *technologyUsecase) Update(ctx context.Context, technology *domain.Technology) (int64, error) {
	if err := validate(technology.Rules()); err != nil {
		return 0, err
	}

	technology.UpdatedAt = time.Now()

	if err := u.technologyRepo.Update(ctx, technology); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, apperror.Persistence(nil, domain.MsgUpdateError)
		}
		return 0, unexpected(err)
	}
	return technology.ID, nil
}

func (u *technologyUsecase) Delete(ctx context.Context, id int64) error {
	if _, err := u.technologyRepo.SelectByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound(domain.MsgRecordNotFound)
		}
		return unexpected(err)
	}

	if err := u.technologyRepo.Delete(ctx, id); err != nil {
		return apperror.Persistence(err, domain.MsgDeleteError)
	}
	return nil
}
