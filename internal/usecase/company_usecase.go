package usecase

import (
	"context"
	"errors"
	"time"

	"go-hr-backend/internal/domain"
	"go-hr-backend/pkg/apperror"
)

type companyUsecase struct {
	companyRepo   domain.CompanyRepository
	addressUC     domain.AddressUsecase
	companyTechUC domain.CompanyTechnologyUsecase
}

func NewCompanyUsecase(companyRepo domain.CompanyRepository, addressUC domain.AddressUsecase, companyTechUC domain.CompanyTechnologyUsecase) domain.CompanyUsecase {
	return &companyUsecase{
		companyRepo:   companyRepo,
		addressUC:     addressUC,
		companyTechUC: companyTechUC,
	}
}

func (u *companyUsecase) List(ctx context.Context) ([]domain.Company, error) {
	return u.companyRepo.SelectAll(ctx)
}

// GetByID hydrates the full aggregate: the company row plus its
// addresses and technology links, fetched sequentially.
func (u *companyUsecase) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	company, err := u.companyRepo.SelectByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound(domain.MsgRecordNotFound)
		}
		return nil, unexpected(err)
	}

	addresses, err := u.addressUC.ListByCompany(ctx, id)
	if err != nil {
		return nil, unexpected(err)
	}
	company.Addresses = addresses

	technologies, err := u.companyTechUC.ListByCompany(ctx, id)
	if err != nil {
		return nil, unexpected(err)
	}
	company.Technologies = technologies

	return company, nil
}

func (u *companyUsecase) Create(ctx context.Context, company *domain.Company) (int64, error) {
	if err := validate(company.Rules()); err != nil {
		return 0, err
	}

	now := time.Now()
	company.CreatedAt = now
	company.UpdatedAt = now

	if err := u.companyRepo.Insert(ctx, company); err != nil {
		return 0, apperror.Persistence(err, domain.MsgSaveError)
	}

	// Children are persisted one at a time after the parent has its
	// identity. Each child call is an independent storage operation; a
	// failure is collected and the remaining children are still tried,
	// so a partial cascade leaves the earlier children persisted.
	notif := domain.NewNotification()
	for i := range company.Addresses {
		company.Addresses[i].CompanyID = company.ID
		if _, err := u.addressUC.Create(ctx, &company.Addresses[i]); err != nil {
			collect(notif, err)
		}
	}
	for i := range company.Technologies {
		company.Technologies[i].CompanyID = company.ID
		if _, err := u.companyTechUC.Create(ctx, &company.Technologies[i]); err != nil {
			collect(notif, err)
		}
	}

	if notif.IsNotification() {
		return company.ID, apperror.Persistence(nil, notif.GetNotification()...)
	}
	return company.ID, nil
}

func (u *companyUsecase) Update(ctx context.Context, company *domain.Company) (int64, error) {
	if err := validate(company.Rules()); err != nil {
		return 0, err
	}

	company.UpdatedAt = time.Now()

	if err := u.companyRepo.Update(ctx, company); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, apperror.Persistence(nil, domain.MsgUpdateError)
		}
		return 0, unexpected(err)
	}

	// Children with no identity yet are inserted, the rest are updated.
	notif := domain.NewNotification()
	for i := range company.Addresses {
		address := &company.Addresses[i]
		address.CompanyID = company.ID

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
	for i := range company.Technologies {
		rel := &company.Technologies[i]
		if rel.ID != 0 {
			continue // link rows are immutable once created
		}
		rel.CompanyID = company.ID
		if _, err := u.companyTechUC.Create(ctx, rel); err != nil {
			collect(notif, err)
		}
	}

	if notif.IsNotification() {
		return company.ID, apperror.Persistence(nil, notif.GetNotification()...)
	}
	return company.ID, nil
}

func (u *companyUsecase) Delete(ctx context.Context, id int64) error {
	if _, err := u.companyRepo.SelectByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound(domain.MsgRecordNotFound)
		}
		return unexpected(err)
	}

	if err := u.companyRepo.Delete(ctx, id); err != nil {
		return apperror.Persistence(err, domain.MsgDeleteError)
	}

	return u.addressUC.DeleteAllByCompany(ctx, id)
}
