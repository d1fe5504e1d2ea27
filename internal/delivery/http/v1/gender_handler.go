package v1

import (
	"net/http"

	"go-hr-backend/internal/delivery/http/response"
	"go-hr-backend/internal/domain"
	"go-hr-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type GenderHandler struct {
	genderUC domain.GenderUsecase
}

func NewGenderHandler(api *gin.RouterGroup, genderUC domain.GenderUsecase) {
	handler := &GenderHandler{genderUC: genderUC}

	genders := api.Group("/genders")
	{
		genders.GET("/all", handler.List)
		genders.GET("/:id", handler.GetByID)
		genders.POST("", handler.Create)
		genders.PUT("/:id", handler.Update)
		genders.DELETE("/:id", handler.Delete)
	}
}

type GenderRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name" binding:"required"`
}

func (h *GenderHandler) List(c *gin.Context) {
	genders, err := h.genderUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, genders)
}

func (h *GenderHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	gender, err := h.genderUC.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, gender)
}

// CreateGender godoc
// @Summary      Create a gender
// @Tags         genders
// @Accept       json
// @Produce      json
// @Param        gender  body      GenderRequest  true  "Gender JSON"
// @Success      201  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /genders [post]
func (h *GenderHandler) Create(c *gin.Context) {
	var req GenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.ValidationFailed(err.Error()))
		return
	}

	gender := domain.Gender{Name: req.Name}
	id, err := h.genderUC.Create(c.Request.Context(), &gender)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"id": id})
}

func (h *GenderHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req GenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.ValidationFailed(err.Error()))
		return
	}
	if req.ID != 0 && req.ID != id {
		c.Error(apperror.ValidationFailed(domain.MsgIDMismatch))
		return
	}

	if _, err := h.genderUC.GetByID(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	gender := domain.Gender{ID: id, Name: req.Name}
	if _, err := h.genderUC.Update(c.Request.Context(), &gender); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id})
}

func (h *GenderHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.genderUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.NoContent(c)
}
