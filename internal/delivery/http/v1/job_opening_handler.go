package v1

import (
	"net/http"

	"go-hr-backend/internal/delivery/http/response"
	"go-hr-backend/internal/domain"
	"go-hr-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobOpeningHandler struct {
	jobOpeningUC domain.JobOpeningUsecase
}

func NewJobOpeningHandler(api *gin.RouterGroup, jobOpeningUC domain.JobOpeningUsecase) {
	handler := &JobOpeningHandler{jobOpeningUC: jobOpeningUC}

	jobOpenings := api.Group("/job-openings")
	{
		jobOpenings.GET("/all", handler.List)
		jobOpenings.GET("/available", handler.ListAvailable)
		jobOpenings.GET("/:id", handler.GetByID)
		jobOpenings.POST("", handler.Create)
		jobOpenings.PUT("/:id", handler.Update)
		jobOpenings.DELETE("/:id", handler.Delete)
	}
}

type ResponsibilityItemRequest struct {
	ID          int64  `json:"id"`
	Description string `json:"description" binding:"required"`
}

type JobOpeningRequest struct {
	ID               int64                       `json:"id"`
	Title            string                      `json:"title" binding:"required"`
	Summary          string                      `json:"summary" binding:"required"`
	Description      string                      `json:"description"`
	Available        bool                        `json:"available"`
	Responsibilities []ResponsibilityItemRequest `json:"responsibilities" binding:"omitempty,dive"`
}

func (r *JobOpeningRequest) toDomain() domain.JobOpening {
	jobOpening := domain.JobOpening{
		ID:          r.ID,
		Title:       r.Title,
		Summary:     r.Summary,
		Description: r.Description,
		Available:   r.Available,
	}
	for _, resp := range r.Responsibilities {
		jobOpening.Responsibilities = append(jobOpening.Responsibilities, domain.Responsibility{
			ID:          resp.ID,
			Description: resp.Description,
		})
	}
	return jobOpening
}

// ListJobOpenings godoc
// @Summary      List job openings
// @Tags         job-openings
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Router       /job-openings/all [get]
func (h *JobOpeningHandler) List(c *gin.Context) {
	jobOpenings, err := h.jobOpeningUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, jobOpenings)
}

// ListAvailableJobOpenings godoc
// @Summary      List job openings still open for applications
// @Tags         job-openings
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Router       /job-openings/available [get]
func (h *JobOpeningHandler) ListAvailable(c *gin.Context) {
	jobOpenings, err := h.jobOpeningUC.ListAvailable(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, jobOpenings)
}

// GetJobOpening godoc
// @Summary      Get a job opening with its responsibilities
// @Tags         job-openings
// @Produce      json
// @Param        id   path      int  true  "Job opening ID"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /job-openings/{id} [get]
func (h *JobOpeningHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	jobOpening, err := h.jobOpeningUC.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, jobOpening)
}

// CreateJobOpening godoc
// @Summary      Create a job opening
// @Description  Creates a job opening and cascades its responsibilities
// @Tags         job-openings
// @Accept       json
// @Produce      json
// @Param        jobOpening  body      JobOpeningRequest  true  "Job opening JSON"
// @Success      201  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /job-openings [post]
func (h *JobOpeningHandler) Create(c *gin.Context) {
	var req JobOpeningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.ValidationFailed(err.Error()))
		return
	}

	jobOpening := req.toDomain()
	jobOpening.ID = 0

	id, err := h.jobOpeningUC.Create(c.Request.Context(), &jobOpening)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"id": id})
}

// UpdateJobOpening godoc
// @Summary      Update a job opening
// @Tags         job-openings
// @Accept       json
// @Produce      json
// @Param        id          path      int                true  "Job opening ID"
// @Param        jobOpening  body      JobOpeningRequest  true  "Job opening JSON"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /job-openings/{id} [put]
func (h *JobOpeningHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req JobOpeningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.ValidationFailed(err.Error()))
		return
	}
	if req.ID != 0 && req.ID != id {
		c.Error(apperror.ValidationFailed(domain.MsgIDMismatch))
		return
	}

	if _, err := h.jobOpeningUC.GetByID(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	jobOpening := req.toDomain()
	jobOpening.ID = id

	if _, err := h.jobOpeningUC.Update(c.Request.Context(), &jobOpening); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id})
}

// DeleteJobOpening godoc
// @Summary      Delete a job opening and its responsibilities
// @Tags         job-openings
// @Param        id   path  int  true  "Job opening ID"
// @Success      204
// @Failure      404  {object}  response.Envelope
// @Router       /job-openings/{id} [delete]
func (h *JobOpeningHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.jobOpeningUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.NoContent(c)
}
