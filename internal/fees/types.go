// Package fees estimates payment processing fees for a payment method.
//
// Estimates are advisory: they never fail, and anything the package cannot
// classify degrades to a zero fee flagged as inexact.
package fees

// Type is the current payment method type as assigned upstream.
type Type string

const (
	TypeAlipay       Type = "ALIPAY"
	TypeBankTransfer Type = "BANK_TRANSFER"
	TypeCollective   Type = "COLLECTIVE"
	TypeCreditCard   Type = "CREDITCARD"
	TypeCrypto       Type = "CRYPTO"
	TypeGiftCard     Type = "GIFTCARD"
	TypeHost         Type = "HOST"
	TypeManual       Type = "MANUAL"
	TypePayment      Type = "PAYMENT"
	TypePrepaid      Type = "PREPAID"
	TypeSubscription Type = "SUBSCRIPTION"
	TypeVirtualCard  Type = "VIRTUALCARD"
)

// Service is the processor backing a payment method.
type Service string

const (
	ServiceOpenCollective Service = "OPENCOLLECTIVE"
	ServicePayPal         Service = "PAYPAL"
	ServicePrepaid        Service = "PREPAID"
	ServiceStripe         Service = "STRIPE"
	ServiceTheGivingBlock Service = "THEGIVINGBLOCK"
)

// LegacyType is the deprecated provider type naming. Older stored methods
// only carry this field.
type LegacyType string

const (
	LegacyAccountBalance LegacyType = "ACCOUNT_BALANCE"
	LegacyAddedFunds     LegacyType = "ADDED_FUNDS"
	LegacyAlipay         LegacyType = "ALIPAY"
	LegacyBankTransfer   LegacyType = "BANK_TRANSFER"
	LegacyCreditCard     LegacyType = "CREDIT_CARD"
	LegacyCrypto         LegacyType = "CRYPTO"
	LegacyGiftCard       LegacyType = "GIFT_CARD"
	LegacyPayPal         LegacyType = "PAYPAL"
	LegacyPrepaidBudget  LegacyType = "PREPAID_BUDGET"
)

type Balance struct {
	Currency string `json:"currency,omitempty"`
}

type Data struct {
	Country string `json:"country,omitempty"`
}

// PaymentMethod is a read-only descriptor. Empty strings and nil pointers
// mean the field is absent.
type PaymentMethod struct {
	Type                Type           `json:"type,omitempty"`
	Service             Service        `json:"service,omitempty"`
	LegacyProviderType  LegacyType     `json:"providerType,omitempty"`
	Balance             *Balance       `json:"balance,omitempty"`
	Data                *Data          `json:"data,omitempty"`
	SourcePaymentMethod *PaymentMethod `json:"sourcePaymentMethod,omitempty"`
}

// Source returns the method that actually funds the payment: the nested
// source when there is one, the method itself otherwise.
func (pm *PaymentMethod) Source() *PaymentMethod {
	if pm.SourcePaymentMethod != nil {
		return pm.SourcePaymentMethod
	}
	return pm
}

func (pm *PaymentMethod) Currency() (string, bool) {
	if pm.Balance == nil || pm.Balance.Currency == "" {
		return "", false
	}
	return pm.Balance.Currency, true
}

func (pm *PaymentMethod) Country() (string, bool) {
	if pm.Data == nil || pm.Data.Country == "" {
		return "", false
	}
	return pm.Data.Country, true
}

// FeeEstimate is the fee expected for one payment. Fee is in the same minor
// unit as the amount it was computed for.
type FeeEstimate struct {
	Fee        float64 `json:"fee"`
	FeePercent float64 `json:"feePercent"`
	IsExact    bool    `json:"isExact"`
	Name       string  `json:"name,omitempty"`
	AboutURL   string  `json:"aboutURL,omitempty"`
}
