package usecase

import (
	"context"
	"errors"
	"time"

	"go-hr-backend/internal/domain"
	"go-hr-backend/pkg/apperror"
)

type interviewUsecase struct {
	interviewRepo domain.InterviewRepository
}

func NewInterviewUsecase(interviewRepo domain.InterviewRepository) domain.InterviewUsecase {
	return &interviewUsecase{interviewRepo: interviewRepo}
}

func (u *interviewUsecase) Create(ctx context.Context, interview *domain.Interview) (int64, error) {
	if err := validate(interview.Rules()); err != nil {
		return 0, err
	}

	now := time.Now()
	interview.CreatedAt = now
	interview.UpdatedAt = now

	if err := u.interviewRepo.Insert(ctx, interview); err != nil {
		return 0, apperror.Persistence(err, domain.MsgSaveError)
	}
	return interview.ID, nil
}

func (u *interviewUsecase) Delete(ctx context.Context, id int64) error {
	if err := u.interviewRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound(domain.MsgRecordNotFound)
		}
		return apperror.Persistence(err, domain.MsgDeleteError)
	}
	return nil
}
