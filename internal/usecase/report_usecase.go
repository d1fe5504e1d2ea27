package usecase

import (
	"context"

	"go-hr-backend/internal/domain"
)

type reportUsecase struct {
	reportRepo domain.ReportRepository
}

func NewReportUsecase(reportRepo domain.ReportRepository) domain.ReportUsecase {
	return &reportUsecase{reportRepo: reportRepo}
}

func (u *reportUsecase) CandidateScores(ctx context.Context) ([]domain.CandidateScore, error) {
	scores, err := u.reportRepo.SelectCandidateScores(ctx)
	if err != nil {
		return nil, unexpected(err)
	}
	return scores, nil
}
