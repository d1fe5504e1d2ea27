package usecase

import (
	"context"
	"errors"
	"time"

	"go-hr-backend/internal/domain"
	"go-hr-backend/pkg/apperror"
)

type jobOpeningUsecase struct {
	jobOpeningRepo domain.JobOpeningRepository
	respUC         domain.ResponsibilityUsecase
}

func NewJobOpeningUsecase(jobOpeningRepo domain.JobOpeningRepository, respUC domain.ResponsibilityUsecase) domain.JobOpeningUsecase {
	return &jobOpeningUsecase{
		jobOpeningRepo: jobOpeningRepo,
		respUC:         respUC,
	}
}

func (u *jobOpeningUsecase) List(ctx context.Context) ([]domain.JobOpening, error) {
	return u.jobOpeningRepo.SelectAll(ctx)
}

func (u *jobOpeningUsecase) ListAvailable(ctx context.Context) ([]domain.JobOpening, error) {
	return u.jobOpeningRepo.SelectAllAvailable(ctx)
}

func (u *jobOpeningUsecase) GetByID(ctx context.Context, id int64) (*domain.JobOpening, error) {
	jobOpening, err := u.jobOpeningRepo.SelectByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound(domain.MsgRecordNotFound)
		}
		return nil, unexpected(err)
	}

	responsibilities, err := u.respUC.ListByJobOpening(ctx, id)
	if err != nil {
		return nil, unexpected(err)
	}
	jobOpening.Responsibilities = responsibilities

	return jobOpening, nil
}

func (u *jobOpeningUsecase) Create(ctx context.Context, jobOpening *domain.JobOpening) (int64, error) {
	if err := validate(jobOpening.Rules()); err != nil {
		return 0, err
	}

	now := time.Now()
	jobOpening.CreatedAt = now
	jobOpening.UpdatedAt = now

	if err := u.jobOpeningRepo.Insert(ctx, jobOpening); err != nil {
		return 0, apperror.Persistence(err, domain.MsgSaveError)
	}

	notif := domain.NewNotification()
	for i := range jobOpening.Responsibilities {
		jobOpening.Responsibilities[i].JobOpeningID = jobOpening.ID
		if _, err := u.respUC.Create(ctx, &jobOpening.Responsibilities[i]); err != nil {
			collect(notif, err)
		}
	}

	if notif.IsNotification() {
		return jobOpening.ID, apperror.Persistence(nil, notif.GetNotification()...)
	}
	return jobOpening.ID, nil
}

func (u *jobOpeningUsecase) Update(ctx context.Context, jobOpening *domain.JobOpening) (int64, error) {
	if err := validate(jobOpening.Rules()); err != nil {
		return 0, err
	}

	jobOpening.UpdatedAt = time.Now()

	if err := u.jobOpeningRepo.Update(ctx, jobOpening); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, apperror.Persistence(nil, domain.MsgUpdateError)
		}
		return 0, unexpected(err)
	}

	notif := domain.NewNotification()
	for i := range jobOpening.Responsibilities {
		responsibility := &jobOpening.Responsibilities[i]
		responsibility.JobOpeningID = jobOpening.ID

		var err error
		if responsibility.ID == 0 {
			_, err = u.respUC.Create(ctx, responsibility)
		} else {
			_, err = u.respUC.Update(ctx, responsibility)
		}
		if err != nil {
			collect(notif, err)
		}
	}

	if notif.IsNotification() {
		return jobOpening.ID, apperror.Persistence(nil, notif.GetNotification()...)
	}
	return jobOpening.ID, nil
}

// Delete removes the opening and then its responsibilities one by one.
// The responsibility list is re-read first so rows added since the
// caller last fetched the aggregate are not left orphaned.
func (u *jobOpeningUsecase) Delete(ctx context.Context, id int64) error {
	if _, err := u.jobOpeningRepo.SelectByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound(domain.MsgRecordNotFound)
		}
		return unexpected(err)
	}

	responsibilities, err := u.respUC.ListByJobOpening(ctx, id)
	if err != nil {
		return unexpected(err)
	}

	if err := u.jobOpeningRepo.Delete(ctx, id); err != nil {
		return apperror.Persistence(err, domain.MsgDeleteError)
	}

	notif := domain.NewNotification()
	for i := range responsibilities {
		if err := u.respUC.Delete(ctx, responsibilities[i].ID); err != nil {
			collect(notif, err)
		}
	}

	if notif.IsNotification() {
		return apperror.Persistence(nil, notif.GetNotification()...)
	}
	return nil
}
