package v1

import (
	"net/http"

	"go-hr-backend/internal/delivery/http/response"
	"go-hr-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportUC domain.ReportUsecase
}

func NewReportHandler(api *gin.RouterGroup, reportUC domain.ReportUsecase) {
	handler := &ReportHandler{reportUC: reportUC}

	reports := api.Group("/reports")
	{
		reports.GET("/candidate-scores", handler.CandidateScores)
	}
}

// CandidateScores godoc
// @Summary      Candidate/job-opening scores
// @Description  Sums interview weights of shared technologies per candidate and available opening, best first
// @Tags         reports
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Router       /reports/candidate-scores [get]
func (h *ReportHandler) CandidateScores(c *gin.Context) {
	scores, err := h.reportUC.CandidateScores(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, scores)
}
