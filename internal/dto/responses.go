package dto

import (
	"time"

	"github.com/anyulbade/payment-fee-estimator/internal/fees"
)

type EstimateResponse struct {
	fees.FeeEstimate
	Category           string `json:"category"`
	Amount             int64  `json:"amount"`
	CollectiveCurrency string `json:"collective_currency"`
	PaymentMethodID    string `json:"payment_method_id,omitempty"`
}

type BatchEstimateResponse struct {
	Count   int                `json:"count"`
	Results []EstimateResponse `json:"results"`
}

type PaymentMethodResponse struct {
	ID                    string    `json:"id"`
	Name                  string    `json:"name"`
	Type                  string    `json:"type,omitempty"`
	Service               string    `json:"service,omitempty"`
	ProviderType          string    `json:"provider_type,omitempty"`
	Currency              string    `json:"currency,omitempty"`
	Country               string    `json:"country,omitempty"`
	SourcePaymentMethodID string    `json:"source_payment_method_id,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
}

type ValidationError struct {
	Index   int    `json:"index"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ErrorListResponse struct {
	Error  string            `json:"error"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}
