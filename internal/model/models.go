package model

import (
	"time"
)

type PaymentMethod struct {
	ID                    string    `json:"id"`
	Name                  string    `json:"name"`
	Type                  string    `json:"type,omitempty"`
	Service               string    `json:"service,omitempty"`
	ProviderType          string    `json:"provider_type,omitempty"`
	Currency              *string   `json:"currency,omitempty"`
	Country               *string   `json:"country,omitempty"`
	SourcePaymentMethodID *string   `json:"source_payment_method_id,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
}
