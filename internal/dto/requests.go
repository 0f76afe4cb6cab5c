package dto

import "github.com/anyulbade/payment-fee-estimator/internal/fees"

// EstimateRequest carries either an inline descriptor or the id of a stored
// payment method. With neither, the default estimate is returned.
type EstimateRequest struct {
	PaymentMethod      *fees.PaymentMethod `json:"payment_method"`
	PaymentMethodID    string              `json:"payment_method_id" binding:"omitempty,uuid"`
	Amount             *int64              `json:"amount" binding:"required,min=0"`
	CollectiveCurrency string              `json:"collective_currency" binding:"required,len=3"`
}

type BatchEstimateRequest struct {
	Items []EstimateRequest `json:"items" binding:"required,min=1,max=500,dive"`
}

type CreatePaymentMethodRequest struct {
	Name                  string `json:"name" binding:"required,max=100"`
	Type                  string `json:"type" binding:"max=30"`
	Service               string `json:"service" binding:"max=30"`
	ProviderType          string `json:"provider_type" binding:"max=30"`
	Currency              string `json:"currency" binding:"omitempty,len=3,uppercase"`
	Country               string `json:"country" binding:"omitempty,len=2,uppercase"`
	SourcePaymentMethodID string `json:"source_payment_method_id" binding:"omitempty,uuid"`
}
