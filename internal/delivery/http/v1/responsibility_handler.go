package v1

import (
	"net/http"

	"go-hr-backend/internal/delivery/http/response"
	"go-hr-backend/internal/domain"
	"go-hr-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ResponsibilityHandler struct {
	respUC domain.ResponsibilityUsecase
}

func NewResponsibilityHandler(api *gin.RouterGroup, respUC domain.ResponsibilityUsecase) {
	handler := &ResponsibilityHandler{respUC: respUC}

	responsibilities := api.Group("/responsibilities")
	{
		responsibilities.GET("/job-opening/:jobOpeningId", handler.ListByJobOpening)
		responsibilities.POST("", handler.Create)
		responsibilities.PUT("/:id", handler.Update)
		responsibilities.DELETE("/:id", handler.Delete)
	}
}

type ResponsibilityRequest struct {
	ID           int64  `json:"id"`
	JobOpeningID int64  `json:"job_opening_id" binding:"required"`
	Description  string `json:"description" binding:"required"`
}

func (h *ResponsibilityHandler) ListByJobOpening(c *gin.Context) {
	jobOpeningID, ok := parseID(c, "jobOpeningId")
	if !ok {
		return
	}

	responsibilities, err := h.respUC.ListByJobOpening(c.Request.Context(), jobOpeningID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, responsibilities)
}

// CreateResponsibility godoc
// @Summary      Create a responsibility for a job opening
// @Tags         responsibilities
// @Accept       json
// @Produce      json
// @Param        responsibility  body      ResponsibilityRequest  true  "Responsibility JSON"
// @Success      201  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /responsibilities [post]
func (h *ResponsibilityHandler) Create(c *gin.Context) {
	var req ResponsibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.ValidationFailed(err.Error()))
		return
	}

	responsibility := domain.Responsibility{
		JobOpeningID: req.JobOpeningID,
		Description:  req.Description,
	}
	id, err := h.respUC.Create(c.Request.Context(), &responsibility)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"id": id})
}

func (h *ResponsibilityHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req ResponsibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.ValidationFailed(err.Error()))
		return
	}
	if req.ID != 0 && req.ID != id {
		c.Error(apperror.ValidationFailed(domain.MsgIDMismatch))
		return
	}

	responsibility := domain.Responsibility{
		ID:           id,
		JobOpeningID: req.JobOpeningID,
		Description:  req.Description,
	}
	if _, err := h.respUC.Update(c.Request.Context(), &responsibility); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id})
}

func (h *ResponsibilityHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.respUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.NoContent(c)
}
