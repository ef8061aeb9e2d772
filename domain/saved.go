package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// SavedDocument is a document as held by the local store. ID and SavedAt are
// assigned once when the document is first saved.
type SavedDocument struct {
	ID      snowflake.ID `json:"id"`
	SavedAt time.Time    `json:"savedAt"`
	Document
}

// CounterpartyName is the name shown in document listings.
func (d SavedDocument) CounterpartyName() string {
	if d.Counterparty.Name == "" {
		return "-"
	}
	return d.Counterparty.Name
}

// Stats holds the dashboard counters.
type Stats struct {
	PurchaseOrders int `json:"purchaseOrders"`
	Invoices       int `json:"invoices"`
	Receipts       int `json:"receipts"`
}
