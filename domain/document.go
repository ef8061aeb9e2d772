package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidDocumentType is returned when a variant tag is not one of po, invoice or receipt.
	ErrInvalidDocumentType = errors.New("invalid document type")
	// ErrInvalidAmount is returned when an amount cannot be spelled out in words.
	ErrInvalidAmount = errors.New("invalid amount")
)

// DocumentType tags the document variant.
type DocumentType string

const (
	PurchaseOrder DocumentType = "po"
	Invoice       DocumentType = "invoice"
	Receipt       DocumentType = "receipt"
)

// DocumentTypes lists every variant in display order.
var DocumentTypes = []DocumentType{PurchaseOrder, Invoice, Receipt}

// ParseDocumentType maps a user supplied tag onto a DocumentType.
func ParseDocumentType(tag string) (DocumentType, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "po", "purchase-order", "purchase_order":
		return PurchaseOrder, nil
	case "invoice", "inv":
		return Invoice, nil
	case "receipt", "rcp":
		return Receipt, nil
	}
	return "", fmt.Errorf("%w: %q (valid types: invoice, po, receipt)", ErrInvalidDocumentType, tag)
}

// Prefix is the leading segment of generated document numbers.
func (t DocumentType) Prefix() string {
	switch t {
	case PurchaseOrder:
		return "PO"
	case Invoice:
		return "INV"
	case Receipt:
		return "RCP"
	}
	return strings.ToUpper(string(t))
}

// Label is the heading used in previews and document listings.
func (t DocumentType) Label() string {
	switch t {
	case PurchaseOrder:
		return "Purchase Order"
	case Invoice:
		return "Invoice"
	case Receipt:
		return "Bukti Bayar"
	}
	return string(t)
}

// Party is a counterparty or the issuing company. All fields are optional.
type Party struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// Company is the issuer printed on every document.
type Company struct {
	Party
	Website string `json:"website,omitempty"`
}

// Payment describes how the document is (to be) settled.
type Payment struct {
	Method        PaymentMethod `json:"method"`
	BankName      string        `json:"bankName"`
	AccountNumber string        `json:"accountNumber"`
	AccountName   string        `json:"accountName"`
}

// LineItem is one billable row. Its total is always derived.
type LineItem struct {
	Description string `json:"description"`
	Quantity    Number `json:"quantity"`
	UnitPrice   Number `json:"unitPrice"`
}

// Totals are recomputed from the items and tax percentage every time a
// document is built.
type Totals struct {
	Subtotal   float64 `json:"subtotal"`
	TaxAmount  float64 `json:"taxAmount"`
	GrandTotal float64 `json:"grandTotal"`
}

// Document is a built purchase order, invoice or receipt.
type Document struct {
	Type            DocumentType `json:"type"`
	Number          string       `json:"number"`
	Date            string       `json:"date"`
	DueDate         string       `json:"dueDate,omitempty"`
	DeliveryDate    string       `json:"deliveryDate,omitempty"`
	PORef           string       `json:"poRef,omitempty"`
	InvoiceRef      string       `json:"invoiceRef,omitempty"`
	Company         Company      `json:"company"`
	Counterparty    Party        `json:"counterparty"`
	ShippingAddress string       `json:"shippingAddress,omitempty"`
	Payment         Payment      `json:"payment"`
	PaymentTerms    string       `json:"paymentTerms,omitempty"`
	Items           []LineItem   `json:"items"`
	TaxPercent      float64      `json:"taxPercent"`
	Description     string       `json:"description,omitempty"`
	Notes           string       `json:"notes,omitempty"`
	Totals          Totals       `json:"totals"`
}
