package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/anyulbade/payment-fee-estimator/internal/dto"
	"github.com/anyulbade/payment-fee-estimator/internal/service"
)

type PaymentMethodHandler struct {
	svc *service.PaymentMethodService
}

func NewPaymentMethodHandler(svc *service.PaymentMethodService) *PaymentMethodHandler {
	return &PaymentMethodHandler{svc: svc}
}

func (h *PaymentMethodHandler) List(c *gin.Context) {
	p := dto.ParsePagination(c)

	pms, totalItems, err := h.svc.List(c.Request.Context(), p)
	if err != nil {
		_ = c.Error(err)
		return
	}

	data := make([]dto.PaymentMethodResponse, len(pms))
	for i := range pms {
		data[i] = service.ToResponse(&pms[i])
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       data,
		"pagination": dto.NewPagination(p, totalItems),
	})
}

func (h *PaymentMethodHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment method id"})
		return
	}

	pm, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, service.ToResponse(pm))
}

func (h *PaymentMethodHandler) Create(c *gin.Context) {
	var req dto.CreatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
			Error: "validation failed: " + err.Error(),
		})
		return
	}

	pm, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, service.ToResponse(pm))
}
