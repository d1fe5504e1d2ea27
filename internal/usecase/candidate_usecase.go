package usecase

import (
	"context"
	"errors"
	"time"

	"go-hr-backend/internal/domain"
	"go-hr-backend/pkg/apperror"
)

type candidateUsecase struct {
	candidateRepo   domain.CandidateRepository
	addressUC       domain.AddressUsecase
	candidateTechUC domain.CandidateTechnologyUsecase
}

func NewCandidateUsecase(candidateRepo domain.CandidateRepository, addressUC domain.AddressUsecase, candidateTechUC domain.CandidateTechnologyUsecase) domain.CandidateUsecase {
	return &candidateUsecase{
		candidateRepo:   candidateRepo,
		addressUC:       addressUC,
		candidateTechUC: candidateTechUC,
	}
}

func (u *candidateUsecase) List(ctx context.Context) ([]domain.Candidate, error) {
	return u.candidateRepo.SelectAll(ctx)
}

func (u *candidateUsecase) GetByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	candidate, err := u.candidateRepo.SelectByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound(domain.MsgRecordNotFound)
		}
		return nil, unexpected(err)
	}

	addresses, err := u.addressUC.ListByCandidate(ctx, id)
	if err != nil {
		return nil, unexpected(err)
	}
	candidate.Addresses = addresses

	technologies, err := u.candidateTechUC.ListByCandidate(ctx, id)
	if err != nil {
		return nil, unexpected(err)
	}
	candidate.Technologies = technologies

	return candidate, nil
}

func (u *candidateUsecase) Create(ctx context.Context, candidate *domain.Candidate) (int64, error) {
	if err := validate(candidate.Rules()); err != nil {
		return 0, err
	}

	now := time.Now()
	candidate.CreatedAt = now
	candidate.UpdatedAt = now

	if err := u.candidateRepo.Insert(ctx, candidate); err != nil {
		return 0, apperror.Persistence(err, domain.MsgSaveError)
	}

	notif := domain.NewNotification()
	for i := range candidate.Addresses {
		candidate.Addresses[i].CandidateID = candidate.ID
		if _, err := u.addressUC.Create(ctx, &candidate.Addresses[i]); err != nil {
			collect(notif, err)
		}
	}
	for i := range candidate.Technologies {
		candidate.Technologies[i].CandidateID = candidate.ID
		if _, err := u.candidateTechUC.Create(ctx, &candidate.Technologies[i]); err != nil {
			collect(notif, err)
		}
	}

	if notif.IsNotification() {
		return candidate.ID, apperror.Persistence(nil, notif.GetNotification()...)
	}
	return candidate.ID, nil
}

func (u *candidateUsecase) Update(ctx context.Context, candidate *domain.Candidate) (int64, error) {
	if err := validate(candidate.Rules()); err != nil {
		return 0, err
	}

	candidate.UpdatedAt = time.Now()

	if err := u.candidateRepo.Update(ctx, candidate); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, apperror.Persistence(nil, domain.MsgUpdateError)
		}
		return 0, unexpected(err)
	}

	notif := domain.NewNotification()
	for i := range candidate.Addresses {
		address := &candidate.Addresses[i]
		address.CandidateID = candidate.ID

		var err error
		if address.ID == 0 {
			_, err = u.addressUC.Create(ctx, address)
		} else {
			_, err = u.addressUC.Update(ctx, address)
		}
		if err != nil {
			collect(notif, err)
		}
	}
	for i := range candidate.Technologies {
		rel := &candidate.Technologies[i]
		if rel.ID != 0 {
			continue
		}
		rel.CandidateID = candidate.ID
		if _, err := u.candidateTechUC.Create(ctx, rel); err != nil {
			collect(notif, err)
		}
	}

	if notif.IsNotification() {
		return candidate.ID, apperror.Persistence(nil, notif.GetNotification()...)
	}
	return candidate.ID, nil
}

func (u *candidateUsecase) Delete(ctx context.Context, id int64) error {
	if _, err := u.candidateRepo.SelectByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound(domain.MsgRecordNotFound)
		}
		return unexpected(err)
	}

	if err := u.candidateRepo.Delete(ctx, id); err != nil {
		return apperror.Persistence(err, domain.MsgDeleteError)
	}

	return u.addressUC.DeleteAllByCandidate(ctx, id)
}
