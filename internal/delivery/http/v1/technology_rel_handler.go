package v1

import (
	"net/http"

	"go-hr-backend/internal/delivery/http/response"
	"go-hr-backend/internal/domain"
	"go-hr-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CompanyTechnologyHandler struct {
	relUC domain.CompanyTechnologyUsecase
}

func NewCompanyTechnologyHandler(api *gin.RouterGroup, relUC domain.CompanyTechnologyUsecase) {
	handler := &CompanyTechnologyHandler{relUC: relUC}

	rels := api.Group("/company-technologies")
	{
		rels.GET("/company/:companyId", handler.ListByCompany)
		rels.POST("", handler.Create)
		rels.DELETE("/:id", handler.Delete)
	}
}

type CompanyTechnologyRequest struct {
	CompanyID    int64 `json:"company_id" binding:"required"`
	TechnologyID int64 `json:"technology_id" binding:"required"`
}

func (h *CompanyTechnologyHandler) ListByCompany(c *gin.Context) {
	companyID, ok := parseID(c, "companyId")
	if !ok {
		return
	}

	rels, err := h.relUC.ListByCompany(c.Request.Context(), companyID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, rels)
}

// CreateCompanyTechnology godoc
// @Summary      Link a technology to a company
// @Tags         company-technologies
// @Accept       json
// @Produce      json
// @Param        link  body      CompanyTechnologyRequest  true  "Link JSON"
// @Success      201  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /company-technologies [post]
func (h *CompanyTechnologyHandler) Create(c *gin.Context) {
	var req CompanyTechnologyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.ValidationFailed(err.Error()))
		return
	}

	rel := domain.CompanyTechnology{
		CompanyID:    req.CompanyID,
		TechnologyID: req.TechnologyID,
	}
	id, err := h.relUC.Create(c.Request.Context(), &rel)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"id": id})
}

func (h *CompanyTechnologyHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.relUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.NoContent(c)
}

type CandidateTechnologyHandler struct {
	relUC domain.CandidateTechnologyUsecase
}

func NewCandidateTechnologyHandler(api *gin.RouterGroup, relUC domain.CandidateTechnologyUsecase) {
	handler := &CandidateTechnologyHandler{relUC: relUC}

	rels := api.Group("/candidate-technologies")
	{
		rels.GET("/candidate/:candidateId", handler.ListByCandidate)
		rels.POST("", handler.Create)
		rels.DELETE("/:id", handler.Delete)
	}
}

type CandidateTechnologyRequest struct {
	CandidateID  int64 `json:"candidate_id" binding:"required"`
	TechnologyID int64 `json:"technology_id" binding:"required"`
}

func (h *CandidateTechnologyHandler) ListByCandidate(c *gin.Context) {
	candidateID, ok := parseID(c, "candidateId")
	if !ok {
		return
	}

	rels, err := h.relUC.ListByCandidate(c.Request.Context(), candidateID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, rels)
}

// CreateCandidateTechnology godoc
// @Summary      Link a technology to a candidate
// @Tags         candidate-technologies
// @Accept       json
// @Produce      json
// @Param        link  body      CandidateTechnologyRequest  true  "Link JSON"
// @Success      201  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /candidate-technologies [post]
func (h *CandidateTechnologyHandler) Create(c *gin.Context) {
	var req CandidateTechnologyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.ValidationFailed(err.Error()))
		return
	}

	rel := domain.CandidateTechnology{
		CandidateID:  req.CandidateID,
		TechnologyID: req.TechnologyID,
	}
	id, err := h.relUC.Create(c.Request.Context(), &rel)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"id": id})
}

func (h *CandidateTechnologyHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.relUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.NoContent(c)
}
