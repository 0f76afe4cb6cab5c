package fees

// CountryRegistry answers membership questions about two-letter country codes.
type CountryRegistry interface {
	IsEUMember(countryCode string) bool
}

// euMembers lists the member states of the European Union by ISO 3166-1
// alpha-2 code.
var euMembers = map[string]bool{
	"AT": true, "BE": true, "BG": true, "HR": true, "CY": true, "CZ": true,
	"DK": true, "EE": true, "FI": true, "FR": true, "DE": true, "GR": true,
	"HU": true, "IE": true, "IT": true, "LV": true, "LT": true, "LU": true,
	"MT": true, "NL": true, "PL": true, "PT": true, "RO": true, "SK": true,
	"SI": true, "ES": true, "SE": true,
}

type staticRegistry struct{}

// StaticCountries is the built-in registry backed by a fixed EU member list.
// Codes are matched exactly, so lowercase codes are not members.
var StaticCountries CountryRegistry = staticRegistry{}

func (staticRegistry) IsEUMember(countryCode string) bool {
	return euMembers[countryCode]
}
