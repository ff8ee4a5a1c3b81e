package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	inventoryapp "github.com/figurine/backend/internal/application/inventory"
)

// InventoryHandler handles resin and paint stock API endpoints
type InventoryHandler struct {
	BaseHandler
	inventoryService *inventoryapp.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(inventoryService *inventoryapp.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// RegisterRoutes registers inventory routes
func (h *InventoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	resins := rg.Group("/inventory/resins")
	{
		resins.POST("", h.CreateResin)
		resins.GET("", h.ListResin)
		resins.GET("/:id", h.GetResin)
		resins.PUT("/:id", h.UpdateResin)
		resins.DELETE("/:id", h.DeleteResin)
	}

	paints := rg.Group("/inventory/paints")
	{
		paints.POST("", h.CreatePaintBottle)
		paints.GET("", h.ListPaintBottles)
		paints.GET("/:id", h.GetPaintBottle)
		paints.POST("/:id/use", h.UsePaint)
		paints.DELETE("/:id", h.DeletePaintBottle)
	}
}

// CreateResin handles POST /inventory/resins
func (h *InventoryHandler) CreateResin(c *gin.Context) {
	var req inventoryapp.CreateResinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.inventoryService.CreateResin(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListResin handles GET /inventory/resins
func (h *InventoryHandler) ListResin(c *gin.Context) {
	resp, err := h.inventoryService.ListResin(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetResin handles GET /inventory/resins/:id
func (h *InventoryHandler) GetResin(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid resin id")
		return
	}

	resp, err := h.inventoryService.GetResin(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// UpdateResin handles PUT /inventory/resins/:id
func (h *InventoryHandler) UpdateResin(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid resin id")
		return
	}

	var req inventoryapp.UpdateResinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.inventoryService.UpdateResin(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// DeleteResin handles DELETE /inventory/resins/:id
func (h *InventoryHandler) DeleteResin(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid resin id")
		return
	}

	if err := h.inventoryService.DeleteResin(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// CreatePaintBottle handles POST /inventory/paints
func (h *InventoryHandler) CreatePaintBottle(c *gin.Context) {
	var req inventoryapp.CreatePaintBottleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.inventoryService.CreatePaintBottle(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListPaintBottles handles GET /inventory/paints
func (h *InventoryHandler) ListPaintBottles(c *gin.Context) {
	resp, err := h.inventoryService.ListPaintBottles(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetPaintBottle handles GET /inventory/paints/:id
func (h *InventoryHandler) GetPaintBottle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid paint bottle id")
		return
	}

	resp, err := h.inventoryService.GetPaintBottle(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// UsePaint handles POST /inventory/paints/:id/use
func (h *InventoryHandler) UsePaint(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid paint bottle id")
		return
	}

	var req inventoryapp.UsePaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.inventoryService.UsePaint(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// DeletePaintBottle handles DELETE /inventory/paints/:id
func (h *InventoryHandler) DeletePaintBottle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid paint bottle id")
		return
	}

	if err := h.inventoryService.DeletePaintBottle(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
