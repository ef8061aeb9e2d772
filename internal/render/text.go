package render

import (
	"strings"

	"invoicegen/m/domain"
	"invoicegen/m/internal/format"
	"invoicegen/m/internal/totals"
)

const textWidth = 60

var (
	doubleRule = strings.Repeat("=", textWidth)
	singleRule = strings.Repeat("-", textWidth)
)

// Text renders doc as a fixed-width plain-text report. Money is printed with
// two fraction digits.
func Text(doc domain.Document) string {
	var lines []string
	add := func(l ...string) { lines = append(lines, l...) }
	addIf := func(cond bool, l string) {
		if cond {
			lines = append(lines, l)
		}
	}

	add(doubleRule, textTitle(doc.Type), doubleRule, "")

	add(doc.Company.Name)
	addIf(doc.Company.Address != "", doc.Company.Address)
	addIf(doc.Company.Phone != "", "Phone: "+doc.Company.Phone)
	addIf(doc.Company.Email != "", "Email: "+doc.Company.Email)
	add("")

	add(numberLabel(doc.Type) + ": " + doc.Number)
	add("Date: " + doc.Date)
	addIf(doc.DueDate != "", "Due Date: "+doc.DueDate)
	addIf(doc.DeliveryDate != "", "Delivery Date: "+doc.DeliveryDate)
	addIf(doc.PORef != "", "PO Ref: "+doc.PORef)
	addIf(doc.InvoiceRef != "", "Invoice Ref: "+doc.InvoiceRef)
	add("")

	party := doc.Counterparty
	add(textCounterpartyLabel(doc.Type) + ":")
	add("  " + party.Name)
	addIf(party.Address != "", "  "+party.Address)
	addIf(party.Phone != "", "  "+party.Phone)
	addIf(party.Email != "", "  "+party.Email)
	add("")

	add(singleRule, "Items:", singleRule)
	for _, item := range doc.Items {
		add(item.Description)
		add("  Qty: " + format.Quantity(item.Quantity.Value()) +
			" x $" + format.Fixed(item.UnitPrice.Value()) +
			" = $" + format.Fixed(totals.LineTotal(item)))
	}
	add(singleRule)

	add("Subtotal: $" + format.Fixed(doc.Totals.Subtotal))
	addIf(doc.TaxPercent > 0, "Tax ("+format.Percent(doc.TaxPercent)+"%): $"+format.Fixed(doc.Totals.TaxAmount))
	add("Total: $" + format.Fixed(doc.Totals.GrandTotal))
	add("")

	addIf(doc.Payment.Method != "", "Payment Method: "+doc.Payment.Method.Label())
	addIf(doc.PaymentTerms != "", "Payment Terms: "+doc.PaymentTerms)
	if doc.Notes != "" {
		add("", "Notes:", doc.Notes)
	}

	add("", doubleRule)
	return strings.Join(lines, "\n")
}

func textTitle(t domain.DocumentType) string {
	switch t {
	case domain.PurchaseOrder:
		return "PURCHASE ORDER"
	case domain.Receipt:
		return "RECEIPT"
	}
	return "INVOICE"
}

func numberLabel(t domain.DocumentType) string {
	switch t {
	case domain.PurchaseOrder:
		return "PO #"
	case domain.Receipt:
		return "Receipt #"
	}
	return "Invoice #"
}

func textCounterpartyLabel(t domain.DocumentType) string {
	switch t {
	case domain.PurchaseOrder:
		return "Vendor"
	case domain.Receipt:
		return "Customer"
	}
	return "Bill To"
}
