package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-hr-backend/internal/domain"
	"go-hr-backend/internal/usecase"
	"go-hr-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockCompanyRepo struct {
	mock.Mock
}

func (m *MockCompanyRepo) Insert(ctx context.Context, company *domain.Company) error {
	return m.Called(ctx, company).Error(0)
}
func (m *MockCompanyRepo) Update(ctx context.Context, company *domain.Company) error {
	return m.Called(ctx, company).Error(0)
}
func (m *MockCompanyRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockCompanyRepo) SelectByID(ctx context.Context, id int64) (*domain.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}
func (m *MockCompanyRepo) SelectAll(ctx context.Context) ([]domain.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

type MockAddressUC struct {
	mock.Mock
}

func (m *MockAddressUC) GetByID(ctx context.Context, id int64) (*domain.Address, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Address), args.Error(1)
}
func (m *MockAddressUC) ListByCompany(ctx context.Context, companyID int64) ([]domain.Address, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Address), args.Error(1)
}
func (m *MockAddressUC) ListByCandidate(ctx context.Context, candidateID int64) ([]domain.Address, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Address), args.Error(1)
}
func (m *MockAddressUC) Create(ctx context.Context, address *domain.Address) (int64, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockAddressUC) Update(ctx context.Context, address *domain.Address) (int64, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockAddressUC) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockAddressUC) DeleteAllByCompany(ctx context.Context, companyID int64) error {
	return m.Called(ctx, companyID).Error(0)
}
func (m *MockAddressUC) DeleteAllByCandidate(ctx context.Context, candidateID int64) error {
	return m.Called(ctx, candidateID).Error(0)
}

type MockCompanyTechUC struct {
	mock.Mock
}

func (m *MockCompanyTechUC) ListByCompany(ctx context.Context, companyID int64) ([]domain.CompanyTechnology, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CompanyTechnology), args.Error(1)
}
func (m *MockCompanyTechUC) Create(ctx context.Context, rel *domain.CompanyTechnology) (int64, error) {
	args := m.Called(ctx, rel)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockCompanyTechUC) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockCandidateTechRepo struct {
	mock.Mock
}

func (m *MockCandidateTechRepo) Insert(ctx context.Context, rel *domain.CandidateTechnology) error {
	return m.Called(ctx, rel).Error(0)
}
func (m *MockCandidateTechRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockCandidateTechRepo) SelectAllByCandidate(ctx context.Context, candidateID int64) ([]domain.CandidateTechnology, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CandidateTechnology), args.Error(1)
}

type MockJobOpeningRepo struct {
	mock.Mock
}

func (m *MockJobOpeningRepo) Insert(ctx context.Context, jobOpening *domain.JobOpening) error {
	return m.Called(ctx, jobOpening).Error(0)
}
func (m *MockJobOpeningRepo) Update(ctx context.Context, jobOpening *domain.JobOpening) error {
	return m.Called(ctx, jobOpening).Error(0)
}
func (m *MockJobOpeningRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockJobOpeningRepo) SelectByID(ctx context.Context, id int64) (*domain.JobOpening, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobOpening), args.Error(1)
}
func (m *MockJobOpeningRepo) SelectAll(ctx context.Context) ([]domain.JobOpening, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobOpening), args.Error(1)
}
func (m *MockJobOpeningRepo) SelectAllAvailable(ctx context.Context) ([]domain.JobOpening, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobOpening), args.Error(1)
}

type MockResponsibilityUC struct {
	mock.Mock
}

func (m *MockResponsibilityUC) ListByJobOpening(ctx context.Context, jobOpeningID int64) ([]domain.Responsibility, error) {
	args := m.Called(ctx, jobOpeningID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Responsibility), args.Error(1)
}
func (m *MockResponsibilityUC) Create(ctx context.Context, responsibility *domain.Responsibility) (int64, error) {
	args := m.Called(ctx, responsibility)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockResponsibilityUC) Update(ctx context.Context, responsibility *domain.Responsibility) (int64, error) {
	args := m.Called(ctx, responsibility)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockResponsibilityUC) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockInterviewRepo struct {
	mock.Mock
}

func (m *MockInterviewRepo) Insert(ctx context.Context, interview *domain.Interview) error {
	return m.Called(ctx, interview).Error(0)
}
func (m *MockInterviewRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockReportRepo struct {
	mock.Mock
}

func (m *MockReportRepo) SelectCandidateScores(ctx context.Context) ([]domain.CandidateScore, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CandidateScore), args.Error(1)
}

func kindOf(t *testing.T, err error) apperror.Kind {
	t.Helper()
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *apperror.AppError, got %T: %v", err, err)
	}
	return appErr.Kind
}

func validCompany() *domain.Company {
	return domain.NewCompany(0, "Acme Ltda", "11.222.333/0001-81", time.Now(), "contact@acme.com.br")
}

func validAddress() domain.Address {
	return domain.Address{
		Name:         "Headquarters",
		ZipCode:      "01310-100",
		Street:       "Avenida Paulista",
		Number:       "1000",
		Neighborhood: "Bela Vista",
		City:         "Sao Paulo",
		State:        "SP",
	}
}

func TestCompanyCreateValidationShortCircuit(t *testing.T) {
	companyRepo := new(MockCompanyRepo)
	addressUC := new(MockAddressUC)
	techUC := new(MockCompanyTechUC)
	uc := usecase.NewCompanyUsecase(companyRepo, addressUC, techUC)

	company := validCompany()
	company.CNPJ = "not-a-cnpj"

	id, err := uc.Create(context.Background(), company)

	assert.Zero(t, id)
	assert.Equal(t, apperror.KindValidation, kindOf(t, err))
	companyRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCompanyCreateCascadesAddresses(t *testing.T) {
	companyRepo := new(MockCompanyRepo)
	addressUC := new(MockAddressUC)
	techUC := new(MockCompanyTechUC)
	uc := usecase.NewCompanyUsecase(companyRepo, addressUC, techUC)

	company := validCompany()
	company.Addresses = []domain.Address{validAddress(), validAddress()}

	companyRepo.On("Insert", mock.Anything, company).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Company).ID = 42
	}).Return(nil)
	addressUC.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.Address) bool {
		return a.CompanyID == 42
	})).Return(int64(1), nil).Twice()

	id, err := uc.Create(context.Background(), company)

	assert.NoError(t, err)
	assert.Equal(t, int64(42), id)
	addressUC.AssertNumberOfCalls(t, "Create", 2)
}

func TestCompanyCreatePartialCascadeFailure(t *testing.T) {
	companyRepo := new(MockCompanyRepo)
	addressUC := new(MockAddressUC)
	techUC := new(MockCompanyTechUC)
	uc := usecase.NewCompanyUsecase(companyRepo, addressUC, techUC)

	company := validCompany()
	company.Addresses = []domain.Address{validAddress(), validAddress(), validAddress()}

	companyRepo.On("Insert", mock.Anything, company).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Company).ID = 7
	}).Return(nil)
	addressUC.On("Create", mock.Anything, mock.Anything).Return(int64(1), nil).Once()
	addressUC.On("Create", mock.Anything, mock.Anything).
		Return(int64(0), apperror.Persistence(nil, domain.MsgSaveError)).Once()
	addressUC.On("Create", mock.Anything, mock.Anything).Return(int64(3), nil).Once()

	id, err := uc.Create(context.Background(), company)

	// The parent survives and the third child is still attempted.
	assert.Equal(t, int64(7), id)
	assert.Equal(t, apperror.KindPersistence, kindOf(t, err))
	assert.Contains(t, err.Error(), domain.MsgSaveError)
	addressUC.AssertNumberOfCalls(t, "Create", 3)
}

func TestCompanyUpdatePartitionsChildren(t *testing.T) {
	companyRepo := new(MockCompanyRepo)
	addressUC := new(MockAddressUC)
	techUC := new(MockCompanyTechUC)
	uc := usecase.NewCompanyUsecase(companyRepo, addressUC, techUC)

	company := validCompany()
	company.ID = 9
	existing := validAddress()
	existing.ID = 5
	company.Addresses = []domain.Address{validAddress(), existing}

	companyRepo.On("Update", mock.Anything, company).Return(nil)
	addressUC.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.Address) bool {
		return a.ID == 0 && a.CompanyID == 9
	})).Return(int64(6), nil).Once()
	addressUC.On("Update", mock.Anything, mock.MatchedBy(func(a *domain.Address) bool {
		return a.ID == 5 && a.CompanyID == 9
	})).Return(int64(5), nil).Once()

	id, err := uc.Update(context.Background(), company)

	assert.NoError(t, err)
	assert.Equal(t, int64(9), id)
	addressUC.AssertExpectations(t)
}

func TestCompanyDelete(t *testing.T) {
	t.Run("Should report not_found for a missing company", func(t *testing.T) {
		companyRepo := new(MockCompanyRepo)
		addressUC := new(MockAddressUC)
		techUC := new(MockCompanyTechUC)
		uc := usecase.NewCompanyUsecase(companyRepo, addressUC, techUC)

		companyRepo.On("SelectByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

		err := uc.Delete(context.Background(), 99)

		assert.Equal(t, apperror.KindNotFound, kindOf(t, err))
		companyRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Should cascade the bulk address delete", func(t *testing.T) {
		companyRepo := new(MockCompanyRepo)
		addressUC := new(MockAddressUC)
		techUC := new(MockCompanyTechUC)
		uc := usecase.NewCompanyUsecase(companyRepo, addressUC, techUC)

		companyRepo.On("SelectByID", mock.Anything, int64(4)).Return(validCompany(), nil)
		companyRepo.On("Delete", mock.Anything, int64(4)).Return(nil)
		addressUC.On("DeleteAllByCompany", mock.Anything, int64(4)).Return(nil)

		err := uc.Delete(context.Background(), 4)

		assert.NoError(t, err)
		addressUC.AssertExpectations(t)
	})
}

func TestCandidateTechnologyCreateRejectsZeroFK(t *testing.T) {
	relRepo := new(MockCandidateTechRepo)
	uc := usecase.NewCandidateTechnologyUsecase(relRepo)

	id, err := uc.Create(context.Background(), &domain.CandidateTechnology{TechnologyID: 3})

	assert.Zero(t, id)
	assert.Equal(t, apperror.KindValidation, kindOf(t, err))
	relRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestJobOpeningDeleteCascadesResponsibilities(t *testing.T) {
	jobOpeningRepo := new(MockJobOpeningRepo)
	respUC := new(MockResponsibilityUC)
	uc := usecase.NewJobOpeningUsecase(jobOpeningRepo, respUC)

	opening := domain.NewJobOpening(3, "Go Developer", "Backend services in Go", "", true)
	jobOpeningRepo.On("SelectByID", mock.Anything, int64(3)).Return(opening, nil)
	respUC.On("ListByJobOpening", mock.Anything, int64(3)).Return([]domain.Responsibility{
		{ID: 7, JobOpeningID: 3},
		{ID: 8, JobOpeningID: 3},
	}, nil)
	jobOpeningRepo.On("Delete", mock.Anything, int64(3)).Return(nil)
	respUC.On("Delete", mock.Anything, int64(7)).Return(nil).Once()
	respUC.On("Delete", mock.Anything, int64(8)).Return(nil).Once()

	err := uc.Delete(context.Background(), 3)

	assert.NoError(t, err)
	respUC.AssertExpectations(t)
}

func TestInterviewDeleteWithoutPreCheck(t *testing.T) {
	interviewRepo := new(MockInterviewRepo)
	uc := usecase.NewInterviewUsecase(interviewRepo)

	interviewRepo.On("Delete", mock.Anything, int64(11)).Return(domain.ErrNotFound)

	err := uc.Delete(context.Background(), 11)

	assert.Equal(t, apperror.KindNotFound, kindOf(t, err))
	interviewRepo.AssertNumberOfCalls(t, "Delete", 1)
}

func TestReportCandidateScores(t *testing.T) {
	reportRepo := new(MockReportRepo)
	uc := usecase.NewReportUsecase(reportRepo)

	scores := []domain.CandidateScore{
		{CandidateID: 1, FullName: "Mariana Silva", JobTitle: "Go Developer", TotalScore: 17},
		{CandidateID: 2, FullName: "Joao Souza", JobTitle: "Go Developer", TotalScore: 9},
	}
	reportRepo.On("SelectCandidateScores", mock.Anything).Return(scores, nil)

	got, err := uc.CandidateScores(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, scores, got)
}
