// Package suggest produces advisory hints about a document. The bundled
// Rules provider is canned and makes no remote calls; Provider lets a real
// model-backed implementation take its place.
package suggest

import (
	"context"
	"fmt"
	"strings"

	"invoicegen/m/domain"
	"invoicegen/m/internal/format"
)

// Kind classifies a suggestion. None of them block generation.
type Kind string

const (
	KindMissingField Kind = "missing_field"
	KindWarning      Kind = "warning"
	KindAdvisory     Kind = "advisory"
)

// Suggestion is a single hint about a document field.
type Suggestion struct {
	Kind    Kind   `json:"type"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (s Suggestion) String() string {
	return fmt.Sprintf("[%s] %s", s.Field, s.Message)
}

// Provider inspects a document and returns suggestions for it.
type Provider interface {
	Suggest(ctx context.Context, doc domain.Document) ([]Suggestion, error)
}

// Rules is the built-in rule-based Provider.
type Rules struct{}

var _ Provider = Rules{}

// Suggest checks doc for missing notes, missing items, a zero tax rate and a
// missing counterparty email, in that order.
func (Rules) Suggest(ctx context.Context, doc domain.Document) ([]Suggestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := []Suggestion{}
	if strings.TrimSpace(doc.Notes) == "" {
		out = append(out, Suggestion{
			Kind:    KindMissingField,
			Field:   "notes",
			Message: "Consider adding a thank you note or payment instructions",
		})
	}
	if len(doc.Items) == 0 {
		out = append(out, Suggestion{
			Kind:    KindAdvisory,
			Field:   "items",
			Message: fmt.Sprintf("%s has no items. Add at least one item.", noun(doc.Type)),
		})
	}
	if doc.TaxPercent == 0 {
		out = append(out, Suggestion{
			Kind:    KindWarning,
			Field:   "tax",
			Message: "Tax rate is 0%. Verify if this is correct for your jurisdiction.",
		})
	}
	if strings.TrimSpace(doc.Counterparty.Email) == "" {
		out = append(out, Suggestion{
			Kind:    KindMissingField,
			Field:   "email",
			Message: "Add client email for better communication",
		})
	}
	return out, nil
}

// Describe summarises doc in one sentence, e.g.
// "Invoice for Acme with 2 items totaling $2170.00".
func Describe(doc domain.Document) string {
	name := doc.Counterparty.Name
	if name == "" {
		name = "Customer"
	}
	items := "1 item"
	if n := len(doc.Items); n != 1 {
		items = fmt.Sprintf("%d items", n)
	}
	return fmt.Sprintf("%s for %s with %s totaling $%s",
		noun(doc.Type), name, items, format.Fixed(doc.Totals.GrandTotal))
}

func noun(t domain.DocumentType) string {
	switch t {
	case domain.PurchaseOrder:
		return "Purchase order"
	case domain.Receipt:
		return "Receipt"
	}
	return "Invoice"
}
