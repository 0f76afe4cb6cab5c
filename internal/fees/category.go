package fees

// Category is the fee class a payment method falls into once the legacy and
// current naming schemes are merged.
type Category int

const (
	CategoryOther Category = iota
	CategoryCard
	CategoryFeeless
	CategoryPayPal
)

func (c Category) String() string {
	switch c {
	case CategoryCard:
		return "card"
	case CategoryFeeless:
		return "feeless"
	case CategoryPayPal:
		return "paypal"
	default:
		return "other"
	}
}

var feelessLegacyTypes = map[LegacyType]bool{
	LegacyPrepaidBudget:  true,
	LegacyAccountBalance: true,
}

var feelessTypes = map[Type]bool{
	TypePrepaid:    true,
	TypeCollective: true,
}

// Categorize classifies the funding source of pm. The checks run in priority
// order so a method matching several rules gets the first one.
func Categorize(pm *PaymentMethod) Category {
	if pm == nil {
		return CategoryOther
	}

	src := pm.Source()
	switch {
	case src.LegacyProviderType == LegacyCreditCard || src.Type == TypeCreditCard:
		return CategoryCard
	case feelessLegacyTypes[src.LegacyProviderType] || feelessTypes[src.Type]:
		return CategoryFeeless
	case src.LegacyProviderType == LegacyPayPal || src.Service == ServicePayPal:
		return CategoryPayPal
	default:
		return CategoryOther
	}
}
