package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	integrationapp "github.com/figurine/backend/internal/application/integration"
)

// SyncHandler handles storefront synchronization API endpoints
type SyncHandler struct {
	BaseHandler
	syncService *integrationapp.SyncService
}

// NewSyncHandler creates a new SyncHandler
func NewSyncHandler(syncService *integrationapp.SyncService) *SyncHandler {
	return &SyncHandler{syncService: syncService}
}

// RegisterRoutes registers sync routes
func (h *SyncHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sync := rg.Group("/sync")
	{
		sync.POST("/customers", h.SyncCustomers)
		sync.POST("/products", h.SyncProducts)
		sync.POST("/orders", h.SyncOrders)
	}
	rg.POST("/orders/:id/push-status", h.PushOrderStatus)
}

// SyncCustomers handles POST /sync/customers
func (h *SyncHandler) SyncCustomers(c *gin.Context) {
	result, err := h.syncService.SyncCustomers(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}

// SyncProducts handles POST /sync/products
func (h *SyncHandler) SyncProducts(c *gin.Context) {
	result, err := h.syncService.SyncProducts(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}

// SyncOrders handles POST /sync/orders
func (h *SyncHandler) SyncOrders(c *gin.Context) {
	result, err := h.syncService.SyncOrders(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}

// PushOrderStatus handles POST /orders/:id/push-status
func (h *SyncHandler) PushOrderStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid order id")
		return
	}

	result, err := h.syncService.PushOrderStatus(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}
