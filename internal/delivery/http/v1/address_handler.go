package v1

import (
	"net/http"
	"strconv"

	"go-hr-backend/internal/delivery/http/response"
	"go-hr-backend/internal/domain"
	"go-hr-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AddressHandler struct {
	addressUC domain.AddressUsecase
}

func NewAddressHandler(api *gin.RouterGroup, addressUC domain.AddressUsecase) {
	handler := &AddressHandler{addressUC: addressUC}

	addresses := api.Group("/addresses")
	{
		addresses.GET("/:id", handler.GetByID)
		addresses.GET("/company/:companyId", handler.ListByCompany)
		addresses.GET("/candidate/:candidateId", handler.ListByCandidate)
		addresses.POST("", handler.Create)
		addresses.PUT("/:id", handler.Update)
		addresses.DELETE("/:id", handler.Delete)
	}
}

// AddressRequest is shared by the standalone address endpoints and the
// nested payloads of company and candidate aggregates.
type AddressRequest struct {
	ID           int64  `json:"id"`
	CompanyID    int64  `json:"company_id"`
	CandidateID  int64  `json:"candidate_id"`
	Name         string `json:"name" binding:"required"`
	ZipCode      string `json:"zip_code" binding:"required"`
	Street       string `json:"street" binding:"required"`
	Number       string `json:"number" binding:"required"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood" binding:"required"`
	City         string `json:"city" binding:"required"`
	State        string `json:"state" binding:"required,br_state"`
}

func (r *AddressRequest) toDomain() domain.Address {
	return domain.Address{
		ID:           r.ID,
		CompanyID:    r.CompanyID,
		CandidateID:  r.CandidateID,
		Name:         r.Name,
		ZipCode:      r.ZipCode,
		Street:       r.Street,
		Number:       r.Number,
		Complement:   r.Complement,
		Neighborhood: r.Neighborhood,
		City:         r.City,
		State:        r.State,
	}
}

// parseID extracts a positive integer path parameter. A malformed value
// is reported through the error middleware.
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.Error(apperror.ValidationFailed("The path parameter " + name + " must be a positive integer."))
		return 0, false
	}
	return id, true
}

// GetAddress godoc
// @Summary      Get an address
// @Tags         addresses
// @Produce      json
// @Param        id   path      int  true  "Address ID"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /addresses/{id} [get]
func (h *AddressHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	address, err := h.addressUC.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, address)
}

func (h *AddressHandler) ListByCompany(c *gin.Context) {
	companyID, ok := parseID(c, "companyId")
	if !ok {
		return
	}

	addresses, err := h.addressUC.ListByCompany(c.Request.Context(), companyID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, addresses)
}

func (h *AddressHandler) ListByCandidate(c *gin.Context) {
	candidateID, ok := parseID(c, "candidateId")
	if !ok {
		return
	}

	addresses, err := h.addressUC.ListByCandidate(c.Request.Context(), candidateID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, addresses)
}

// CreateAddress godoc
// @Summary      Create an address
// @Description  Creates an address owned by exactly one company or candidate
// @Tags         addresses
// @Accept       json
// @Produce      json
// @Param        address  body      AddressRequest  true  "Address JSON"
// @Success      201  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /addresses [post]
func (h *AddressHandler) Create(c *gin.Context) {
	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.ValidationFailed(err.Error()))
		return
	}

	address := req.toDomain()
	address.ID = 0

	id, err := h.addressUC.Create(c.Request.Context(), &address)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"id": id})
}

// UpdateAddress godoc
// @Summary      Update an address
// @Tags         addresses
// @Accept       json
// @Produce      json
// @Param        id       path      int             true  "Address ID"
// @Param        address  body      AddressRequest  true  "Address JSON"
// @Success      200  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /addresses/{id} [put]
func (h *AddressHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.ValidationFailed(err.Error()))
		return
	}
	if req.ID != 0 && req.ID != id {
		c.Error(apperror.ValidationFailed(domain.MsgIDMismatch))
		return
	}

	if _, err := h.addressUC.GetByID(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	address := req.toDomain()
	address.ID = id

	if _, err := h.addressUC.Update(c.Request.Context(), &address); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id})
}

// DeleteAddress godoc
// @Summary      Delete an address
// @Tags         addresses
// @Param        id   path  int  true  "Address ID"
// @Success      204
// @Failure      404  {object}  response.Envelope
// @Router       /addresses/{id} [delete]
func (h *AddressHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.addressUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.NoContent(c)
}
