package v1

import (
	"net/http"
	"time"

	"go-hr-backend/internal/delivery/http/response"
	"go-hr-backend/internal/domain"
	"go-hr-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyUC domain.CompanyUsecase
}

func NewCompanyHandler(api *gin.RouterGroup, companyUC domain.CompanyUsecase) {
	handler := &CompanyHandler{companyUC: companyUC}

	companies := api.Group("/companies")
	{
		companies.GET("/all", handler.List)
		companies.GET("/:id", handler.GetByID)
		companies.POST("", handler.Create)
		companies.PUT("/:id", handler.Update)
		companies.DELETE("/:id", handler.Delete)
	}
}

// TechnologyLinkRequest carries a technology link nested in a company
// or candidate payload.
type TechnologyLinkRequest struct {
	ID           int64 `json:"id"`
	TechnologyID int64 `json:"technology_id" binding:"required"`
}

type CompanyRequest struct {
	ID           int64                   `json:"id"`
	Name         string                  `json:"name" binding:"required"`
	CNPJ         string                  `json:"cnpj" binding:"required,cnpj"`
	OpenDate     time.Time               `json:"open_date" binding:"required"`
	Email        string                  `json:"email" binding:"omitempty,email"`
	Addresses    []AddressRequest        `json:"addresses" binding:"omitempty,dive"`
	Technologies []TechnologyLinkRequest `json:"technologies" binding:"omitempty,dive"`
}

func (r *CompanyRequest) toDomain() domain.Company {
	company := domain.Company{
		ID:       r.ID,
		Name:     r.Name,
		CNPJ:     r.CNPJ,
		OpenDate: r.OpenDate,
		Email:    r.Email,
	}
	for _, a := range r.Addresses {
		company.Addresses = append(company.Addresses, a.toDomain())
	}
	for _, t := range r.Technologies {
		company.Technologies = append(company.Technologies, domain.CompanyTechnology{
			ID:           t.ID,
			TechnologyID: t.TechnologyID,
		})
	}
	return company
}

// ListCompanies godoc
// @Summary      List companies
// @Tags         companies
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Router       /companies/all [get]
func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.companyUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, companies)
}

// GetCompany godoc
// @Summary      Get a company with its addresses and technologies
// @Tags         companies
// @Produce      json
// @Param        id   path      int  true  "Company ID"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /companies/{id} [get]
func (h *CompanyHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	company, err := h.companyUC.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, company)
}

// CreateCompany godoc
// @Summary      Create a company
// @Description  Creates a company and cascades its addresses and technology links
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        company  body      CompanyRequest  true  "Company JSON"
// @Success      201  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /companies [post]
func (h *CompanyHandler) Create(c *gin.Context) {
	var req CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.ValidationFailed(err.Error()))
		return
	}

	company := req.toDomain()
	company.ID = 0

	id, err := h.companyUC.Create(c.Request.Context(), &company)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"id": id})
}

// UpdateCompany godoc
// @Summary      Update a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        id       path      int             true  "Company ID"
// @Param        company  body      CompanyRequest  true  "Company JSON"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /companies/{id} [put]
func (h *CompanyHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.ValidationFailed(err.Error()))
		return
	}
	if req.ID != 0 && req.ID != id {
		c.Error(apperror.ValidationFailed(domain.MsgIDMismatch))
		return
	}

	if _, err := h.companyUC.GetByID(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	company := req.toDomain()
	company.ID = id

	if _, err := h.companyUC.Update(c.Request.Context(), &company); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id})
}

// DeleteCompany godoc
// @Summary      Delete a company and its addresses
// @Tags         companies
// @Param        id   path  int  true  "Company ID"
// @Success      204
// @Failure      404  {object}  response.Envelope
// @Router       /companies/{id} [delete]
func (h *CompanyHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.companyUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.NoContent(c)
}
