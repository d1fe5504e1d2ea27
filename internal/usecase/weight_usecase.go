package usecase

import (
	"context"
	"errors"
	"time"

	"go-hr-backend/internal/domain"
	"go-hr-backend/pkg/apperror"
)

type jobInterviewWeightUsecase struct {
	weightRepo domain.JobInterviewWeightRepository
}

func NewJobInterviewWeightUsecase(weightRepo domain.JobInterviewWeightRepository) domain.JobInterviewWeightUsecase {
	return &jobInterviewWeightUsecase{weightRepo: weightRepo}
}

func (u *jobInterviewWeightUsecase) Create(ctx context.Context, weight *domain.JobInterviewWeight) (int64, error) {
	if err := validate(weight.Rules()); err != nil {
		return 0, err
	}

	now := time.Now()
	weight.CreatedAt = now
	weight.UpdatedAt = now

	if err := u.weightRepo.Insert(ctx, weight); err != nil {
		return 0, apperror.Persistence(err, domain.MsgSaveError)
	}
	return weight.ID, nil
}

func (u *jobInterviewWeightUsecase) Delete(ctx context.Context, id int64) error {
	if err := u.weightRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound(domain.MsgRecordNotFound)
		}
		return apperror.Persistence(err, domain.MsgDeleteError)
	}
	return nil
}
