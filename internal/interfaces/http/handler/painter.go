package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	partnerapp "github.com/figurine/backend/internal/application/partner"
)

// PainterHandler handles painter API endpoints
type PainterHandler struct {
	BaseHandler
	painterService *partnerapp.PainterService
}

// NewPainterHandler creates a new PainterHandler
func NewPainterHandler(painterService *partnerapp.PainterService) *PainterHandler {
	return &PainterHandler{painterService: painterService}
}

// RegisterRoutes registers painter routes
func (h *PainterHandler) RegisterRoutes(rg *gin.RouterGroup) {
	painters := rg.Group("/painters")
	{
		painters.POST("", h.Create)
		painters.GET("", h.List)
		painters.GET("/:id", h.GetByID)
		painters.PUT("/:id", h.Update)
		painters.DELETE("/:id", h.Delete)
	}
}

// Create handles POST /painters
func (h *PainterHandler) Create(c *gin.Context) {
	var req partnerapp.CreatePainterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.painterService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, resp)
}

// List handles GET /painters
func (h *PainterHandler) List(c *gin.Context) {
	activeOnly := c.Query("active_only") == "true"

	resp, err := h.painterService.List(c.Request.Context(), activeOnly)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetByID handles GET /painters/:id
func (h *PainterHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid painter id")
		return
	}

	resp, err := h.painterService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update handles PUT /painters/:id
func (h *PainterHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid painter id")
		return
	}

	var req partnerapp.UpdatePainterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.painterService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete handles DELETE /painters/:id
func (h *PainterHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid painter id")
		return
	}

	if err := h.painterService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
