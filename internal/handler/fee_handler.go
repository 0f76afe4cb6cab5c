package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/anyulbade/payment-fee-estimator/internal/dto"
	"github.com/anyulbade/payment-fee-estimator/internal/service"
)

type FeeHandler struct {
	svc *service.FeeService
}

func NewFeeHandler(svc *service.FeeService) *FeeHandler {
	return &FeeHandler{svc: svc}
}

func (h *FeeHandler) Estimate(c *gin.Context) {
	var req dto.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
			Error: "validation failed: " + err.Error(),
		})
		return
	}

	resp, err := h.svc.Estimate(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *FeeHandler) EstimateBatch(c *gin.Context) {
	var req dto.BatchEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
			Error: "validation failed: " + err.Error(),
		})
		return
	}

	results, validationErrors, err := h.svc.EstimateBatch(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if len(validationErrors) > 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
			Error:  "batch validation failed",
			Errors: validationErrors,
		})
		return
	}

	c.JSON(http.StatusOK, dto.BatchEstimateResponse{
		Count:   len(results),
		Results: results,
	})
}

// EstimateStored serves GET /payment-methods/:id/fees?amount=&currency=.
func (h *FeeHandler) EstimateStored(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment method id"})
		return
	}

	amount, err := strconv.ParseInt(c.Query("amount"), 10, 64)
	if err != nil || amount < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be a non-negative integer in minor units"})
		return
	}

	currency := c.Query("currency")
	if len(currency) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "currency must be a three-letter code"})
		return
	}

	resp, err := h.svc.Estimate(c.Request.Context(), &dto.EstimateRequest{
		PaymentMethodID:    id,
		Amount:             &amount,
		CollectiveCurrency: currency,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
