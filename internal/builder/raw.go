package builder

import "invoicegen/m/domain"

// RawFields is the flat field set supplied by the form, the API or a CLI
// config file. Every field is optional; Build fills the defaults.
type RawFields struct {
	CompanyName    string `json:"companyName,omitempty"`
	CompanyAddress string `json:"companyAddress,omitempty"`
	CompanyPhone   string `json:"companyPhone,omitempty"`
	CompanyEmail   string `json:"companyEmail,omitempty"`
	CompanyWebsite string `json:"companyWebsite,omitempty"`

	Number        string `json:"number,omitempty"`
	InvoiceNumber string `json:"invoiceNumber,omitempty"`
	PONumber      string `json:"poNumber,omitempty"`
	ReceiptNumber string `json:"receiptNumber,omitempty"`

	Date         string `json:"date,omitempty"`
	DueDate      string `json:"dueDate,omitempty"`
	DeliveryDate string `json:"deliveryDate,omitempty"`
	PORef        string `json:"poRef,omitempty"`
	InvoiceRef   string `json:"invoiceRef,omitempty"`

	ClientName    string `json:"clientName,omitempty"`
	ClientAddress string `json:"clientAddress,omitempty"`
	ClientPhone   string `json:"clientPhone,omitempty"`
	ClientEmail   string `json:"clientEmail,omitempty"`

	VendorName    string `json:"vendorName,omitempty"`
	VendorAddress string `json:"vendorAddress,omitempty"`
	VendorPhone   string `json:"vendorPhone,omitempty"`
	VendorEmail   string `json:"vendorEmail,omitempty"`

	CustomerName    string `json:"customerName,omitempty"`
	CustomerAddress string `json:"customerAddress,omitempty"`
	CustomerPhone   string `json:"customerPhone,omitempty"`
	CustomerEmail   string `json:"customerEmail,omitempty"`

	ShippingAddress string `json:"shippingAddress,omitempty"`

	PaymentMethod string `json:"paymentMethod,omitempty"`
	BankName      string `json:"bankName,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
	AccountName   string `json:"accountName,omitempty"`
	PaymentTerms  string `json:"paymentTerms,omitempty"`

	Items      []domain.LineItem `json:"items,omitempty"`
	Tax        *domain.Number    `json:"tax,omitempty"`
	TaxPercent *domain.Number    `json:"taxPercent,omitempty"`

	Description string `json:"description,omitempty"`
	Notes       string `json:"notes,omitempty"`

	// Total is accepted so existing config files decode, but it is never
	// trusted: totals are always recomputed from the items.
	Total *domain.Number `json:"total,omitempty"`
}

func (r RawFields) taxPercent() float64 {
	switch {
	case r.TaxPercent != nil:
		return r.TaxPercent.Value()
	case r.Tax != nil:
		return r.Tax.Value()
	}
	return 0
}

func (r RawFields) client() domain.Party {
	return domain.Party{Name: r.ClientName, Address: r.ClientAddress, Phone: r.ClientPhone, Email: r.ClientEmail}
}

func (r RawFields) vendor() domain.Party {
	return domain.Party{Name: r.VendorName, Address: r.VendorAddress, Phone: r.VendorPhone, Email: r.VendorEmail}
}

func (r RawFields) customer() domain.Party {
	return domain.Party{Name: r.CustomerName, Address: r.CustomerAddress, Phone: r.CustomerPhone, Email: r.CustomerEmail}
}

// withFallback fills every empty field of p from fallback.
func withFallback(p, fallback domain.Party) domain.Party {
	if p.Name == "" {
		p.Name = fallback.Name
	}
	if p.Address == "" {
		p.Address = fallback.Address
	}
	if p.Phone == "" {
		p.Phone = fallback.Phone
	}
	if p.Email == "" {
		p.Email = fallback.Email
	}
	return p
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
