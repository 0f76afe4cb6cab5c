package fees

import (
	"github.com/shopspring/decimal"
)

const (
	StripeName     = "Stripe"
	StripeAboutURL = "https://stripe.com/pricing"
	PayPalName     = "PayPal"
	PayPalAboutURL = "https://www.paypal.com/webapps/mpp/paypal-fees"
)

// Schedule holds the rates applied per category. Fixed fees are in minor
// units.
type Schedule struct {
	CardRate    decimal.Decimal
	CardEURate  decimal.Decimal
	CardFixed   decimal.Decimal
	PayPalRate  decimal.Decimal
	PayPalFixed decimal.Decimal
}

var DefaultSchedule = Schedule{
	CardRate:    decimal.RequireFromString("0.029"),
	CardEURate:  decimal.RequireFromString("0.014"),
	CardFixed:   decimal.NewFromInt(30),
	PayPalRate:  decimal.RequireFromString("0.039"),
	PayPalFixed: decimal.NewFromInt(30),
}

var hundred = decimal.NewFromInt(100)

type Estimator struct {
	countries CountryRegistry
	schedule  Schedule
}

func NewEstimator(countries CountryRegistry, schedule Schedule) *Estimator {
	if countries == nil {
		countries = StaticCountries
	}
	return &Estimator{countries: countries, schedule: schedule}
}

var defaultEstimator = NewEstimator(StaticCountries, DefaultSchedule)

// Estimate runs the default estimator.
func Estimate(pm *PaymentMethod, amount int64, collectiveCurrency string) FeeEstimate {
	return defaultEstimator.Estimate(pm, amount, collectiveCurrency)
}

// Estimate returns the expected fee for paying amount (minor units) with pm
// to an account operating in collectiveCurrency. The currency is only used
// to decide whether the estimate is exact; amounts are never converted.
//
// A nil method or a negative amount yields a zero, inexact estimate.
func (e *Estimator) Estimate(pm *PaymentMethod, amount int64, collectiveCurrency string) FeeEstimate {
	if pm == nil || amount < 0 {
		return FeeEstimate{}
	}

	src := pm.Source()
	currency, hasCurrency := src.Currency()
	if !hasCurrency {
		currency, hasCurrency = pm.Currency()
	}

	switch Categorize(pm) {
	case CategoryCard:
		rate := e.schedule.CardRate
		if hasCurrency && currency == "EUR" {
			rate = e.schedule.CardEURate
		} else if !hasCurrency {
			if country, ok := src.Country(); ok && e.countries.IsEUMember(country) {
				rate = e.schedule.CardEURate
			}
		}
		est := e.compute(amount, rate, e.schedule.CardFixed)
		est.Name = StripeName
		est.AboutURL = StripeAboutURL
		// Without the card currency there may be a conversion we cannot price.
		est.IsExact = hasCurrency && currency == collectiveCurrency
		return est
	case CategoryFeeless:
		return FeeEstimate{IsExact: true}
	case CategoryPayPal:
		// PayPal pricing depends on the receiving account's country.
		est := e.compute(amount, e.schedule.PayPalRate, e.schedule.PayPalFixed)
		est.Name = PayPalName
		est.AboutURL = PayPalAboutURL
		return est
	default:
		return FeeEstimate{}
	}
}

func (e *Estimator) compute(amount int64, rate, fixed decimal.Decimal) FeeEstimate {
	amt := decimal.NewFromInt(amount)
	fee := amt.Mul(rate).Add(fixed)

	var pct decimal.Decimal
	if !amt.IsZero() {
		pct = fee.Div(amt).Mul(hundred)
	}

	return FeeEstimate{
		Fee:        fee.InexactFloat64(),
		FeePercent: pct.InexactFloat64(),
	}
}
