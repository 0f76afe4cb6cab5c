package seeddata

import _ "embed"

//go:embed payment_methods.json
var PaymentMethodsJSON []byte
