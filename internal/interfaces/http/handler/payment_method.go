package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	billingapp "github.com/figurine/backend/internal/application/billing"
)

// PaymentMethodHandler handles payment method API endpoints
type PaymentMethodHandler struct {
	BaseHandler
	methodService *billingapp.PaymentMethodService
}

// NewPaymentMethodHandler creates a new PaymentMethodHandler
func NewPaymentMethodHandler(methodService *billingapp.PaymentMethodService) *PaymentMethodHandler {
	return &PaymentMethodHandler{methodService: methodService}
}

// RegisterRoutes registers payment method routes
func (h *PaymentMethodHandler) RegisterRoutes(rg *gin.RouterGroup) {
	methods := rg.Group("/payment-methods")
	{
		methods.POST("", h.Create)
		methods.GET("", h.List)
		methods.GET("/:id", h.GetByID)
		methods.PUT("/:id", h.Update)
		methods.DELETE("/:id", h.Delete)
	}
}

// Create handles POST /payment-methods
func (h *PaymentMethodHandler) Create(c *gin.Context) {
	var req billingapp.CreatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.methodService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, resp)
}

// List handles GET /payment-methods
func (h *PaymentMethodHandler) List(c *gin.Context) {
	activeOnly := c.Query("active_only") == "true"

	resp, err := h.methodService.List(c.Request.Context(), activeOnly)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetByID handles GET /payment-methods/:id
func (h *PaymentMethodHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid payment method id")
		return
	}

	resp, err := h.methodService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update handles PUT /payment-methods/:id
func (h *PaymentMethodHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid payment method id")
		return
	}

	var req billingapp.UpdatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.methodService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete handles DELETE /payment-methods/:id
func (h *PaymentMethodHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid payment method id")
		return
	}

	if err := h.methodService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
