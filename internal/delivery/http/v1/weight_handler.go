package v1

import (
	"net/http"

	"go-hr-backend/internal/delivery/http/response"
	"go-hr-backend/internal/domain"
	"go-hr-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobInterviewWeightHandler struct {
	weightUC domain.JobInterviewWeightUsecase
}

func NewJobInterviewWeightHandler(api *gin.RouterGroup, weightUC domain.JobInterviewWeightUsecase) {
	handler := &JobInterviewWeightHandler{weightUC: weightUC}

	weights := api.Group("/job-interview-weights")
	{
		weights.POST("", handler.Create)
		weights.DELETE("/:id", handler.Delete)
	}
}

type JobInterviewWeightRequest struct {
	TechnologyID int64 `json:"technology_id" binding:"required"`
	JobOpeningID int64 `json:"job_opening_id" binding:"required"`
	Weight       int   `json:"weight"`
}

// CreateJobInterviewWeight godoc
// @Summary      Set a technology's scoring weight for a job opening
// @Tags         job-interview-weights
// @Accept       json
// @Produce      json
// @Param        weight  body      JobInterviewWeightRequest  true  "Weight JSON"
// @Success      201  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /job-interview-weights [post]
func (h *JobInterviewWeightHandler) Create(c *gin.Context) {
	var req JobInterviewWeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.ValidationFailed(err.Error()))
		return
	}

	weight := domain.JobInterviewWeight{
		TechnologyID: req.TechnologyID,
		JobOpeningID: req.JobOpeningID,
		Weight:       req.Weight,
	}
	id, err := h.weightUC.Create(c.Request.Context(), &weight)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"id": id})
}

// DeleteJobInterviewWeight godoc
// @Summary      Delete a scoring weight
// @Tags         job-interview-weights
// @Param        id   path  int  true  "Weight ID"
// @Success      204
// @Failure      404  {object}  response.Envelope
// @Router       /job-interview-weights/{id} [delete]
func (h *JobInterviewWeightHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.weightUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.NoContent(c)
}
