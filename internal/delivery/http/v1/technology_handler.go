package v1

import (
	"net/http"

	"go-hr-backend/internal/delivery/http/response"
	"go-hr-backend/internal/domain"
	"go-hr-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type TechnologyHandler struct {
	technologyUC domain.TechnologyUsecase
}

func NewTechnologyHandler(api *gin.RouterGroup, technologyUC domain.TechnologyUsecase) {
	handler := &TechnologyHandler{technologyUC: technologyUC}

	technologies := api.Group("/technologies")
	{
		technologies.GET("/all", handler.List)
		technologies.GET("/:id", handler.GetByID)
		technologies.POST("", handler.Create)
		technologies.PUT("/:id", handler.Update)
		technologies.DELETE("/:id", handler.Delete)
	}
}

type TechnologyRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name" binding:"required"`
}

func (h *TechnologyHandler) List(c *gin.Context) {
	technologies, err := h.technologyUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, technologies)
}

func (h *TechnologyHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	technology, err := h.technologyUC.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, technology)
}

// CreateTechnology godoc
// @Summary      Create a technology
// @Tags         technologies
// @Accept       json
// @Produce      json
// @Param        technology  body      TechnologyRequest  true  "Technology JSON"
// @Success      201  {object}  response.Envelope
// @Failure      400  {object}  response.Envelope
// @Router       /technologies [post]
func (h *TechnologyHandler) Create(c *gin.Context) {
	var req TechnologyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.ValidationFailed(err.Error()))
		return
	}

	technology := domain.Technology{Name: req.Name}
	id, err := h.technologyUC.Create(c.Request.Context(), &technology)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"id": id})
}

func (h *TechnologyHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req TechnologyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.ValidationFailed(err.Error()))
		return
	}
	if req.ID != 0 && req.ID != id {
		c.Error(apperror.ValidationFailed(domain.MsgIDMismatch))
		return
	}

	if _, err := h.technologyUC.GetByID(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	technology := domain.Technology{ID: id, Name: req.Name}
	if _, err := h.technologyUC.Update(c.Request.Context(), &technology); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id})
}

func (h *TechnologyHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.technologyUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.NoContent(c)
}
