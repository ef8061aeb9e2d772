// Package render turns built documents into user-facing output: a plain-text
// report, a structured preview and the HTML, PDF and JSON renditions of it.
// Rendering never mutates its input and embeds no timestamps.
package render

import (
	"fmt"
	"math"

	"invoicegen/m/domain"
	"invoicegen/m/internal/format"
	"invoicegen/m/internal/totals"
)

// Field is a labelled value in a preview section.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Row is one line of the preview item table.
type Row struct {
	No          int    `json:"no"`
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
	Total       string `json:"total"`
}

// Signature is a signing block in the preview footer.
type Signature struct {
	Caption []string `json:"caption"`
}

// Amount is the receipt's payment amount block.
type Amount struct {
	Value string `json:"value"`
	Words string `json:"words"`
}

// Preview is the structured, display-ready form of a document. All money
// values are already formatted as Rupiah.
type Preview struct {
	Title  string `json:"title"`
	Number string `json:"number"`

	Company domain.Company `json:"company"`

	CounterpartyHeading string       `json:"counterpartyHeading"`
	Counterparty        domain.Party `json:"counterparty"`

	DetailsHeading string  `json:"detailsHeading"`
	Details        []Field `json:"details"`

	Items      []Row  `json:"items"`
	Subtotal   string `json:"subtotal"`
	TaxLabel   string `json:"taxLabel"`
	TaxAmount  string `json:"taxAmount"`
	GrandTotal string `json:"grandTotal"`

	Amount *Amount `json:"amount,omitempty"`

	PaymentHeading string  `json:"paymentHeading"`
	Payment        []Field `json:"payment"`

	Description string `json:"description,omitempty"`
	Notes       string `json:"notes,omitempty"`

	Signatures []Signature `json:"signatures"`
}

// NewPreview builds the structured preview of doc.
func NewPreview(doc domain.Document) (Preview, error) {
	p := Preview{
		Title:               doc.Type.Label(),
		Number:              doc.Number,
		Company:             doc.Company,
		CounterpartyHeading: counterpartyHeading(doc.Type),
		Counterparty:        doc.Counterparty,
		Items:               make([]Row, 0, len(doc.Items)),
		Subtotal:            format.Currency(doc.Totals.Subtotal),
		TaxLabel:            fmt.Sprintf("Pajak (%s%%)", format.Percent(doc.TaxPercent)),
		TaxAmount:           format.Currency(doc.Totals.TaxAmount),
		GrandTotal:          format.Currency(doc.Totals.GrandTotal),
		Payment:             paymentFields(doc),
		Notes:               doc.Notes,
		Signatures:          signatures(doc),
	}
	if p.Number == "" {
		p.Number = doc.Type.Prefix() + "-000"
	}

	for i, item := range doc.Items {
		description := item.Description
		if description == "" {
			description = "-"
		}
		p.Items = append(p.Items, Row{
			No:          i + 1,
			Description: description,
			Quantity:    format.Quantity(item.Quantity.Value()),
			UnitPrice:   format.Currency(item.UnitPrice.Value()),
			Total:       format.Currency(totals.LineTotal(item)),
		})
	}

	numberOrDash := dash(doc.Number)
	switch doc.Type {
	case domain.PurchaseOrder:
		p.DetailsHeading = "Detail PO"
		p.Details = appendFields(nil,
			Field{"Nomor PO", numberOrDash},
			Field{"Tanggal", format.Date(doc.Date)},
			Field{"Tanggal Pengiriman", optionalDate(doc.DeliveryDate)},
			Field{"Alamat Pengiriman", doc.ShippingAddress},
		)
		p.PaymentHeading = "Informasi Pembayaran"
	case domain.Invoice:
		p.DetailsHeading = "Detail Invoice"
		p.Details = appendFields(nil,
			Field{"Nomor Invoice", numberOrDash},
			Field{"Tanggal", format.Date(doc.Date)},
			Field{"Jatuh Tempo", format.Date(doc.DueDate)},
			Field{"Ref. PO", doc.PORef},
			Field{"Syarat Pembayaran", doc.PaymentTerms},
		)
		p.PaymentHeading = "Informasi Pembayaran"
	case domain.Receipt:
		p.DetailsHeading = "Detail Pembayaran"
		p.Details = appendFields(nil,
			Field{"Nomor", numberOrDash},
			Field{"Tanggal", format.Date(doc.Date)},
			Field{"Ref. Invoice", doc.InvoiceRef},
			Field{"Ref. PO", doc.PORef},
		)
		p.PaymentHeading = "Metode Pembayaran"
		p.Description = dash(doc.Description)

		amount, err := receiptAmount(doc)
		if err != nil {
			return Preview{}, err
		}
		p.Amount = amount
	}

	return p, nil
}

// receiptAmount spells out the grand total, rounded to whole Rupiah like the
// currency format.
func receiptAmount(doc domain.Document) (*Amount, error) {
	whole := math.Round(doc.Totals.GrandTotal)
	words, err := format.Words(whole)
	if err != nil {
		return nil, fmt.Errorf("receipt %s amount: %w", doc.Number, err)
	}
	return &Amount{Value: format.Currency(whole), Words: words}, nil
}

func counterpartyHeading(t domain.DocumentType) string {
	switch t {
	case domain.PurchaseOrder:
		return "Kepada"
	case domain.Receipt:
		return "Diterima Dari"
	}
	return "Tagihan Kepada"
}

func paymentFields(doc domain.Document) []Field {
	return appendFields([]Field{{"Metode", dash(doc.Payment.Method.Label())}},
		Field{"Bank", doc.Payment.BankName},
		Field{"No. Rekening", doc.Payment.AccountNumber},
		Field{"Atas Nama", doc.Payment.AccountName},
	)
}

func signatures(doc domain.Document) []Signature {
	company := doc.Company.Name
	switch doc.Type {
	case domain.PurchaseOrder:
		return []Signature{{Caption: []string{"Penerima"}}, {Caption: []string{"Hormat Kami,", company}}}
	case domain.Receipt:
		return []Signature{{Caption: []string{"Pembayar"}}, {Caption: []string{"Penerima,", company}}}
	}
	return []Signature{{Caption: []string{"Pelanggan"}}, {Caption: []string{"Hormat Kami,", company}}}
}

// appendFields appends the fields with a non-empty value.
func appendFields(dst []Field, fields ...Field) []Field {
	for _, f := range fields {
		if f.Value != "" {
			dst = append(dst, f)
		}
	}
	return dst
}

func optionalDate(s string) string {
	if s == "" {
		return ""
	}
	return format.Date(s)
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
