package v1

import (
	"net/http"
	"time"

	"go-hr-backend/internal/delivery/http/response"
	"go-hr-backend/internal/domain"
	"go-hr-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

func NewCandidateHandler(api *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	candidates := api.Group("/candidates")
	{
		candidates.GET("/all", handler.List)
		candidates.GET("/:id", handler.GetByID)
		candidates.POST("", handler.Create)
		candidates.PUT("/:id", handler.Update)
		candidates.DELETE("/:id", handler.Delete)
	}
}

type CandidateRequest struct {
	ID           int64                   `json:"id"`
	CompanyID    int64                   `json:"company_id" binding:"required"`
	GenderID     int64                   `json:"gender_id" binding:"required"`
	FirstName    string                  `json:"first_name" binding:"required"`
	LastName     string                  `json:"last_name" binding:"required"`
	CPF          string                  `json:"cpf" binding:"required,cpf"`
	RG           string                  `json:"rg"`
	DateOfBirth  time.Time               `json:"date_of_birth" binding:"required,adult"`
	Addresses    []AddressRequest        `json:"addresses" binding:"omitempty,dive"`
	Technologies []TechnologyLinkRequest `json:"technologies" binding:"omitempty,dive"`
}

func (r *CandidateRequest) toDomain() domain.Candidate {
	candidate := domain.Candidate{
		ID:          r.ID,
		CompanyID:   r.CompanyID,
		GenderID:    r.GenderID,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		CPF:         r.CPF,
		RG:          r.RG,
		DateOfBirth: r.DateOfBirth,
	}
	for _, a := range r.Addresses {
		candidate.Addresses = append(candidate.Addresses, a.toDomain())
	}
	for _, t := range r.Technologies {
		candidate.Technologies = append(candidate.Technologies, domain.CandidateTechnology{
			ID:           t.ID,
			TechnologyID: t.TechnologyID,
		})
	}
	return candidate
}

// ListCandidates godoc
// @Summary      List candidates
// @Tags         candidates
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Router       /candidates/all [get]
func (h *CandidateHandler) List(c *gin.Context) {
	candidates, err := h.candidateUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, candidates)
}

// GetCandidate godoc
// @Summary      Get a candidate with addresses and technologies
// @Tags         candidates
// @Produce      json
// @Param        id   path      int  true  "Candidate ID"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /candidates/{id} [get]
func (h *CandidateHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	candidate, err := h.candidateUC.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, candidate)
}

// CreateCandidate godoc
// @Summary      Create a candidate
// @Description  Creates a candidate (18+, valid CPF) and cascades children
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        candidate  body      CandidateRequest  true  "Candidate JSON"
// @Success      201  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /candidates [post]
func (h *CandidateHandler) Create(c *gin.Context) {
	var req CandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.ValidationFailed(err.Error()))
		return
	}

	candidate := req.toDomain()
	candidate.ID = 0

	id, err := h.candidateUC.Create(c.Request.Context(), &candidate)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"id": id})
}

// UpdateCandidate godoc
// @Summary      Update a candidate
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id         path      int               true  "Candidate ID"
// @Param        candidate  body      CandidateRequest  true  "Candidate JSON"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /candidates/{id} [put]
func (h *CandidateHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req CandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.ValidationFailed(err.Error()))
		return
	}
	if req.ID != 0 && req.ID != id {
		c.Error(apperror.ValidationFailed(domain.MsgIDMismatch))
		return
	}

	if _, err := h.candidateUC.GetByID(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	candidate := req.toDomain()
	candidate.ID = id

	if _, err := h.candidateUC.Update(c.Request.Context(), &candidate); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id})
}

// DeleteCandidate godoc
// @Summary      Delete a candidate and their addresses
// @Tags         candidates
// @Param        id   path  int  true  "Candidate ID"
// @Success      204
// @Failure      404  {object}  response.Envelope
// @Router       /candidates/{id} [delete]
func (h *CandidateHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.candidateUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.NoContent(c)
}
