// Package builder assembles typed documents from raw field input.
package builder

import (
	"fmt"
	"math/rand"
	"slices"
	"time"

	"invoicegen/m/domain"
	"invoicegen/m/internal/format"
	"invoicegen/m/internal/totals"
)

const (
	invoiceDueDays    = 30
	poDeliveryDays    = 14
	defaultTerms      = "Net 30"
	numberSuffixRange = 10000
)

// Builder fills document defaults. It is safe for concurrent use as long as
// the injected clock and random source are.
type Builder struct {
	company domain.Company
	now     func() time.Time
	randN   func(n int) int
}

// Option configures a Builder.
type Option func(*Builder)

// WithClock replaces the wall clock used for default dates and numbers.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) { b.now = now }
}

// WithRand replaces the random source for the numeric suffix of generated
// document numbers. randN must return a value in [0, n).
func WithRand(randN func(n int) int) Option {
	return func(b *Builder) { b.randN = randN }
}

// New returns a Builder issuing documents for company.
func New(company domain.Company, opts ...Option) *Builder {
	b := &Builder{
		company: company,
		now:     time.Now,
		randN:   rand.Intn,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build turns raw input into a Document of the given variant.
func (b *Builder) Build(variant string, raw RawFields) (domain.Document, error) {
	typ, err := domain.ParseDocumentType(variant)
	if err != nil {
		return domain.Document{}, err
	}

	now := b.now()
	doc := domain.Document{
		Type:       typ,
		Date:       firstNonEmpty(raw.Date, now.Format(format.DateLayout)),
		Company:    b.companyFor(raw),
		Items:      slices.Clone(raw.Items),
		TaxPercent: totals.TaxRate(raw.taxPercent()),
		Notes:      raw.Notes,
		Payment: domain.Payment{
			Method:        domain.PaymentMethod(raw.PaymentMethod),
			BankName:      raw.BankName,
			AccountNumber: raw.AccountNumber,
			AccountName:   raw.AccountName,
		},
	}
	if doc.Items == nil {
		doc.Items = []domain.LineItem{}
	}

	switch typ {
	case domain.Invoice:
		doc.Number = firstNonEmpty(raw.InvoiceNumber, raw.Number)
		doc.DueDate = firstNonEmpty(raw.DueDate, b.addDays(doc.Date, now, invoiceDueDays))
		doc.PORef = raw.PORef
		doc.Counterparty = withFallback(raw.client(), raw.customer())
		doc.PaymentTerms = firstNonEmpty(raw.PaymentTerms, defaultTerms)
		if doc.Payment.Method == "" {
			doc.Payment.Method = domain.BankTransfer
		}
	case domain.PurchaseOrder:
		doc.Number = firstNonEmpty(raw.PONumber, raw.Number)
		doc.DeliveryDate = firstNonEmpty(raw.DeliveryDate, b.addDays(doc.Date, now, poDeliveryDays))
		doc.Counterparty = withFallback(raw.vendor(), raw.client())
		doc.ShippingAddress = firstNonEmpty(raw.ShippingAddress, doc.Company.Address)
		if doc.Payment.Method == "" {
			doc.Payment.Method = domain.BankTransfer
		}
	case domain.Receipt:
		doc.Number = firstNonEmpty(raw.ReceiptNumber, raw.Number)
		doc.InvoiceRef = raw.InvoiceRef
		doc.PORef = raw.PORef
		doc.Counterparty = withFallback(raw.customer(), raw.client())
		doc.Description = raw.Description
		if doc.Payment.Method == "" {
			doc.Payment.Method = domain.Cash
		}
	}

	if doc.Number == "" {
		doc.Number = b.number(typ, now)
	}
	doc.Totals = totals.Compute(doc.Items, doc.TaxPercent)
	return doc, nil
}

// number generates PREFIX-YYYYMM-NNNN, or PREFIX-YYYYMMDD-NNNN for receipts.
func (b *Builder) number(typ domain.DocumentType, now time.Time) string {
	stamp := now.Format("200601")
	if typ == domain.Receipt {
		stamp = now.Format("20060102")
	}
	return fmt.Sprintf("%s-%s-%04d", typ.Prefix(), stamp, b.randN(numberSuffixRange))
}

// addDays offsets the issue date. Unparseable issue dates fall back to now.
func (b *Builder) addDays(issued string, now time.Time, days int) string {
	base, err := time.Parse(format.DateLayout, issued)
	if err != nil {
		base = now
	}
	return base.AddDate(0, 0, days).Format(format.DateLayout)
}

func (b *Builder) companyFor(raw RawFields) domain.Company {
	c := b.company
	c.Name = firstNonEmpty(raw.CompanyName, c.Name)
	c.Address = firstNonEmpty(raw.CompanyAddress, c.Address)
	c.Phone = firstNonEmpty(raw.CompanyPhone, c.Phone)
	c.Email = firstNonEmpty(raw.CompanyEmail, c.Email)
	c.Website = firstNonEmpty(raw.CompanyWebsite, c.Website)
	return c
}
