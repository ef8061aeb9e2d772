// Package totals computes line, subtotal, tax and grand totals for documents.
// Every function is pure and safe to call on each edit of a form.
package totals

import (
	"math"

	"github.com/shopspring/decimal"

	"invoicegen/m/domain"
)

var hundred = decimal.NewFromInt(100)

// Compute returns subtotal, tax and grand total for items at taxPercent.
// Missing, non-numeric or negative quantities, prices and tax rates count as 0.
func Compute(items []domain.LineItem, taxPercent float64) domain.Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(lineTotal(item))
	}

	tax := subtotal.Mul(decimal.NewFromFloat(TaxRate(taxPercent))).Div(hundred)
	grand := subtotal.Add(tax)

	return domain.Totals{
		Subtotal:   subtotal.InexactFloat64(),
		TaxAmount:  tax.InexactFloat64(),
		GrandTotal: grand.InexactFloat64(),
	}
}

// LineTotal returns quantity x unit price for a single item.
func LineTotal(item domain.LineItem) float64 {
	return lineTotal(item).InexactFloat64()
}

// TaxRate normalises a tax percentage, mapping negative and non-finite rates to 0.
func TaxRate(taxPercent float64) float64 {
	if math.IsNaN(taxPercent) || math.IsInf(taxPercent, 0) || taxPercent < 0 {
		return 0
	}
	return taxPercent
}

// Row is a per-item breakdown for live totals.
type Row struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
}

// Rows returns the per-item breakdown in insertion order.
func Rows(items []domain.LineItem) []Row {
	rows := make([]Row, 0, len(items))
	for _, item := range items {
		rows = append(rows, Row{
			Description: item.Description,
			Quantity:    item.Quantity.Value(),
			UnitPrice:   item.UnitPrice.Value(),
			Total:       LineTotal(item),
		})
	}
	return rows
}

func lineTotal(item domain.LineItem) decimal.Decimal {
	qty := decimal.NewFromFloat(item.Quantity.Value())
	price := decimal.NewFromFloat(item.UnitPrice.Value())
	return qty.Mul(price)
}
