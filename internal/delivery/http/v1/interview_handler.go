package v1

import (
	"net/http"

	"go-hr-backend/internal/delivery/http/response"
	"go-hr-backend/internal/domain"
	"go-hr-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type InterviewHandler struct {
	interviewUC domain.InterviewUsecase
}

func NewInterviewHandler(api *gin.RouterGroup, interviewUC domain.InterviewUsecase) {
	handler := &InterviewHandler{interviewUC: interviewUC}

	interviews := api.Group("/interviews")
	{
		interviews.POST("", handler.Create)
		interviews.DELETE("/:id", handler.Delete)
	}
}

type InterviewRequest struct {
	CandidateID  int64 `json:"candidate_id" binding:"required"`
	JobOpeningID int64 `json:"job_opening_id" binding:"required"`
}

// CreateInterview godoc
// @Summary      Record an interview
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        interview  body      InterviewRequest  true  "Interview JSON"
// @Success      201  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /interviews [post]
func (h *InterviewHandler) Create(c *gin.Context) {
	var req InterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.ValidationFailed(err.Error()))
		return
	}

	interview := domain.Interview{
		CandidateID:  req.CandidateID,
		JobOpeningID: req.JobOpeningID,
	}
	id, err := h.interviewUC.Create(c.Request.Context(), &interview)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"id": id})
}

// DeleteInterview godoc
// @Summary      Delete an interview record
// @Tags         interviews
// @Param        id   path  int  true  "Interview ID"
// @Success      204
// @Failure      404  {object}  response.Envelope
// @Router       /interviews/{id} [delete]
func (h *InterviewHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.interviewUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.NoContent(c)
}
