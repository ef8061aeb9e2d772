// Package seed holds the bundled sample documents.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"invoicegen/m/domain"
	"invoicegen/m/internal/builder"
)

// Sample is a named, ready-to-build set of document fields.
type Sample struct {
	Name   string              `json:"name"`
	Type   domain.DocumentType `json:"type"`
	Fields builder.RawFields   `json:"fields"`
}

func tax(p float64) *domain.Number {
	n := domain.Number(p)
	return &n
}

// Samples returns the sample purchase orders offered by the form. Dates are
// left empty so they default to the day of use.
func Samples() []Sample {
	return []Sample{
		{
			Name: "nurhaini",
			Type: domain.PurchaseOrder,
			Fields: builder.RawFields{
				PONumber:      "PO-2026-001",
				VendorName:    "Nurhaini",
				PaymentMethod: string(domain.BankTransfer),
				BankName:      "BCA",
				AccountNumber: "7350044544",
				AccountName:   "Nurhaini",
				Items: []domain.LineItem{
					{Description: "Layanan Konsultasi AI", Quantity: 1, UnitPrice: 5000000},
					{Description: "Implementasi Sistem", Quantity: 1, UnitPrice: 10000000},
				},
				TaxPercent: tax(11),
				Notes:      "Terima kasih atas kerjasama yang baik.",
			},
		},
		{
			Name: "niluh",
			Type: domain.PurchaseOrder,
			Fields: builder.RawFields{
				PONumber:      "PO-2026-002",
				VendorName:    "dr Niluh Suwasanti, Sp.PK",
				PaymentMethod: string(domain.BankTransfer),
				Items: []domain.LineItem{
					{Description: "Layanan Konsultasi Medis AI", Quantity: 1, UnitPrice: 7500000},
					{Description: "Pelatihan Sistem", Quantity: 1, UnitPrice: 5000000},
				},
				TaxPercent: tax(11),
				Notes:      "Mohon konfirmasi detail rekening bank untuk pembayaran.",
			},
		},
	}
}

// Lookup returns the sample with the given name.
func Lookup(name string) (Sample, bool) {
	for _, s := range Samples() {
		if s.Name == name {
			return s, true
		}
	}
	return Sample{}, false
}

// CLIFields are used by the command line generator when no config file is
// given.
func CLIFields() builder.RawFields {
	return builder.RawFields{
		CompanyName:    "Sample Company Inc.",
		CompanyAddress: "123 Business St, City, State 12345",
		CompanyPhone:   "555-0123",
		CompanyEmail:   "info@samplecompany.com",
		ClientName:     "Sample Client",
		ClientAddress:  "456 Client Ave, City, State 67890",
		ClientEmail:    "client@example.com",
		Items: []domain.LineItem{
			{Description: "Consulting Services", Quantity: 10, UnitPrice: 150},
			{Description: "Software License", Quantity: 1, UnitPrice: 500},
		},
		Tax:   tax(8.5),
		Notes: "Thank you for your business!",
	}
}

// SessionFields is the invoice shown by the assistant session demo. Notes
// are left empty so the demo has something to suggest.
func SessionFields() builder.RawFields {
	return builder.RawFields{
		CompanyName:    "Micromeet AI Solutions",
		CompanyAddress: "100 AI Boulevard, Tech City, TC 12345",
		CompanyPhone:   "555-AI-GEN",
		CompanyEmail:   "invoices@micromeet-ai.com",
		ClientName:     "Demo Client Corp",
		ClientEmail:    "billing@democlient.com",
		Items: []domain.LineItem{
			{Description: "AI-Powered Invoice Generation Service", Quantity: 1, UnitPrice: 299},
			{Description: "Assistant Integration Package", Quantity: 1, UnitPrice: 499},
		},
		Tax: tax(8.5),
	}
}

// Saver is the subset of the document store used for seeding.
type Saver interface {
	Empty(ctx context.Context) (bool, error)
	Save(ctx context.Context, doc domain.Document) (domain.SavedDocument, error)
}

// LoadSamples builds and saves every sample when the store is empty. It
// returns the number of documents saved.
func LoadSamples(ctx context.Context, s Saver, b *builder.Builder) (int, error) {
	empty, err := s.Empty(ctx)
	if err != nil {
		return 0, err
	}
	if !empty {
		slog.Debug("store not empty, skipping samples")
		return 0, nil
	}

	n := 0
	for _, sample := range Samples() {
		doc, err := b.Build(string(sample.Type), sample.Fields)
		if err != nil {
			return n, fmt.Errorf("build sample %s: %w", sample.Name, err)
		}
		if _, err := s.Save(ctx, doc); err != nil {
			return n, fmt.Errorf("save sample %s: %w", sample.Name, err)
		}
		n++
	}
	slog.Info("seeded sample documents", "count", n)
	return n, nil
}
