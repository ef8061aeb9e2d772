package domain

// PaymentMethod is a closed set of known methods. Unknown values are kept
// verbatim and displayed as entered.
type PaymentMethod string

const (
	BankTransfer PaymentMethod = "bank-transfer"
	Cash         PaymentMethod = "cash"
	CreditCard   PaymentMethod = "credit-card"
	EWallet      PaymentMethod = "e-wallet"
)

var paymentMethodLabels = map[PaymentMethod]string{
	BankTransfer: "Bank Transfer",
	Cash:         "Cash",
	CreditCard:   "Credit Card",
	EWallet:      "E-Wallet",
}

// Known reports whether m is one of the closed set of methods.
func (m PaymentMethod) Known() bool {
	_, ok := paymentMethodLabels[m]
	return ok
}

// Label returns the display name, or the raw value for unknown methods.
func (m PaymentMethod) Label() string {
	if label, ok := paymentMethodLabels[m]; ok {
		return label
	}
	return string(m)
}
