package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"invoicegen/m/domain"
	"invoicegen/m/internal/totals"
)

func sampleInvoice() domain.Document {
	items := []domain.LineItem{
		{Description: "Consulting Services", Quantity: 10, UnitPrice: 150},
		{Description: "Software License", Quantity: 1, UnitPrice: 500},
	}
	return domain.Document{
		Type:    domain.Invoice,
		Number:  "INV-202603-0042",
		Date:    "2026-03-05",
		DueDate: "2026-04-04",
		Company: domain.Company{Party: domain.Party{
			Name:    "Sample Company Inc.",
			Address: "123 Business St, City, State 12345",
			Phone:   "555-0123",
			Email:   "info@samplecompany.com",
		}},
		Counterparty: domain.Party{
			Name:    "Sample Client",
			Address: "456 Client Ave, City, State 67890",
			Email:   "client@example.com",
		},
		Payment:      domain.Payment{Method: domain.BankTransfer},
		PaymentTerms: "Net 30",
		Items:        items,
		TaxPercent:   8.5,
		Notes:        "Thank you for your business!",
		Totals:       totals.Compute(items, 8.5),
	}
}

func TestText(t *testing.T) {
	out := Text(sampleInvoice())

	want := []string{
		strings.Repeat("=", 60),
		"INVOICE",
		"Sample Company Inc.",
		"Phone: 555-0123",
		"Invoice #: INV-202603-0042",
		"Date: 2026-03-05",
		"Due Date: 2026-04-04",
		"Bill To:",
		"  Sample Client",
		"  client@example.com",
		"Consulting Services",
		"  Qty: 10 x $150.00 = $1500.00",
		"  Qty: 1 x $500.00 = $500.00",
		"Subtotal: $2000.00",
		"Tax (8.5%): $170.00",
		"Total: $2170.00",
		"Payment Method: Bank Transfer",
		"Payment Terms: Net 30",
		"Notes:",
		"Thank you for your business!",
	}
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("text report missing %q\n%s", w, out)
		}
	}
}

func TestTextOmitsZeroTax(t *testing.T) {
	doc := sampleInvoice()
	doc.TaxPercent = 0
	doc.Totals = totals.Compute(doc.Items, 0)

	out := Text(doc)
	if strings.Contains(out, "Tax (") {
		t.Errorf("tax line rendered for zero tax:\n%s", out)
	}
	if !strings.Contains(out, "Total: $2000.00") {
		t.Errorf("total missing:\n%s", out)
	}
}

func TestTextLabelsPerType(t *testing.T) {
	tests := []struct {
		typ   domain.DocumentType
		title string
		num   string
		party string
	}{
		{domain.Invoice, "INVOICE", "Invoice #:", "Bill To:"},
		{domain.PurchaseOrder, "PURCHASE ORDER", "PO #:", "Vendor:"},
		{domain.Receipt, "RECEIPT", "Receipt #:", "Customer:"},
	}
	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			doc := sampleInvoice()
			doc.Type = tt.typ
			out := Text(doc)
			for _, w := range []string{tt.title, tt.num, tt.party} {
				if !strings.Contains(out, w) {
					t.Errorf("missing %q", w)
				}
			}
		})
	}
}

func TestTextIdempotent(t *testing.T) {
	doc := sampleInvoice()
	first := Text(doc)
	second := Text(doc)
	if first != second {
		t.Fatal("two renders of the same document differ")
	}
	if doc.Items[0].Description != "Consulting Services" || len(doc.Items) != 2 {
		t.Fatal("render mutated the document")
	}
}

func TestNewPreviewInvoice(t *testing.T) {
	p, err := NewPreview(sampleInvoice())
	if err != nil {
		t.Fatalf("NewPreview: %v", err)
	}
	if p.Title != "Invoice" || p.Number != "INV-202603-0042" {
		t.Errorf("header = %q %q", p.Title, p.Number)
	}
	if p.CounterpartyHeading != "Tagihan Kepada" || p.DetailsHeading != "Detail Invoice" {
		t.Errorf("headings = %q, %q", p.CounterpartyHeading, p.DetailsHeading)
	}
	if len(p.Items) != 2 || p.Items[0].Total != "Rp 1.500" || p.Items[1].No != 2 {
		t.Errorf("items = %+v", p.Items)
	}
	if p.Subtotal != "Rp 2.000" || p.TaxAmount != "Rp 170" || p.GrandTotal != "Rp 2.170" {
		t.Errorf("totals = %q %q %q", p.Subtotal, p.TaxAmount, p.GrandTotal)
	}
	if p.TaxLabel != "Pajak (8.5%)" {
		t.Errorf("tax label = %q", p.TaxLabel)
	}
	if p.Amount != nil {
		t.Error("invoice preview carries a receipt amount")
	}
	wantDetails := map[string]string{
		"Nomor Invoice":     "INV-202603-0042",
		"Tanggal":           "5 Maret 2026",
		"Jatuh Tempo":       "4 April 2026",
		"Syarat Pembayaran": "Net 30",
	}
	for _, f := range p.Details {
		if want, ok := wantDetails[f.Label]; ok && f.Value != want {
			t.Errorf("%s = %q, want %q", f.Label, f.Value, want)
		}
		delete(wantDetails, f.Label)
	}
	if len(wantDetails) != 0 {
		t.Errorf("missing details: %v", wantDetails)
	}
	if got := p.Signatures[1].Caption; len(got) != 2 || got[1] != "Sample Company Inc." {
		t.Errorf("signature = %v", got)
	}
}

func TestNewPreviewPurchaseOrder(t *testing.T) {
	doc := sampleInvoice()
	doc.Type = domain.PurchaseOrder
	doc.Number = ""
	doc.DueDate = ""
	doc.DeliveryDate = "2026-03-19"
	doc.ShippingAddress = "Singapore"

	p, err := NewPreview(doc)
	if err != nil {
		t.Fatalf("NewPreview: %v", err)
	}
	if p.Title != "Purchase Order" || p.Number != "PO-000" {
		t.Errorf("header = %q %q", p.Title, p.Number)
	}
	if p.CounterpartyHeading != "Kepada" {
		t.Errorf("counterparty heading = %q", p.CounterpartyHeading)
	}
	if p.Details[0] != (Field{Label: "Nomor PO", Value: "-"}) {
		t.Errorf("first detail = %+v", p.Details[0])
	}
	var delivery bool
	for _, f := range p.Details {
		if f.Label == "Tanggal Pengiriman" && f.Value == "19 Maret 2026" {
			delivery = true
		}
	}
	if !delivery {
		t.Errorf("delivery date missing from %+v", p.Details)
	}
	if p.Signatures[0].Caption[0] != "Penerima" {
		t.Errorf("signatures = %+v", p.Signatures)
	}
}

func TestNewPreviewReceipt(t *testing.T) {
	items := []domain.LineItem{{Description: "Pelunasan", Quantity: 1, UnitPrice: 1500000}}
	doc := domain.Document{
		Type:         domain.Receipt,
		Number:       "RCP-20260305-0042",
		Date:         "2026-03-05",
		Counterparty: domain.Party{Name: "Budi"},
		Payment:      domain.Payment{Method: domain.Cash},
		Items:        items,
		Totals:       totals.Compute(items, 0),
	}

	p, err := NewPreview(doc)
	if err != nil {
		t.Fatalf("NewPreview: %v", err)
	}
	if p.Title != "Bukti Bayar" || p.CounterpartyHeading != "Diterima Dari" {
		t.Errorf("labels = %q %q", p.Title, p.CounterpartyHeading)
	}
	if p.Amount == nil {
		t.Fatal("receipt preview has no amount")
	}
	if p.Amount.Value != "Rp 1.500.000" {
		t.Errorf("amount = %q", p.Amount.Value)
	}
	if p.Amount.Words != "Satu Juta Lima Ratus Ribu Rupiah" {
		t.Errorf("words = %q", p.Amount.Words)
	}
	if p.Description != "-" {
		t.Errorf("description = %q", p.Description)
	}
	if p.Payment[0].Value != "Cash" {
		t.Errorf("payment = %+v", p.Payment)
	}
}

func TestNewPreviewReceiptAmountTooLarge(t *testing.T) {
	doc := domain.Document{
		Type:   domain.Receipt,
		Totals: domain.Totals{GrandTotal: 2e18},
	}
	_, err := NewPreview(doc)
	if !errors.Is(err, domain.ErrInvalidAmount) {
		t.Fatalf("err = %v, want ErrInvalidAmount", err)
	}
}

func TestHTMLEscapes(t *testing.T) {
	doc := sampleInvoice()
	doc.Counterparty.Name = `<script>alert("x")</script>`

	var buf bytes.Buffer
	if err := HTML(&buf, doc); err != nil {
		t.Fatalf("HTML: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "<script>alert") {
		t.Error("counterparty name was not escaped")
	}
	for _, w := range []string{"&lt;script&gt;", "Tagihan Kepada", "Rp 2.170", "Hormat Kami,"} {
		if !strings.Contains(out, w) {
			t.Errorf("html missing %q", w)
		}
	}
}

func TestPDF(t *testing.T) {
	var buf bytes.Buffer
	if err := PDF(&buf, sampleInvoice()); err != nil {
		t.Fatalf("PDF: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("output does not start with a PDF header: %q", buf.Bytes()[:min(buf.Len(), 16)])
	}

	var again bytes.Buffer
	if err := PDF(&again, sampleInvoice()); err != nil {
		t.Fatalf("PDF: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), again.Bytes()) {
		t.Error("PDF output is not deterministic")
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, sampleInvoice()); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var got domain.Document
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Totals.GrandTotal != 2170 || got.Type != domain.Invoice {
		t.Errorf("decoded = %+v", got)
	}
}

func TestParseOutput(t *testing.T) {
	tests := []struct {
		in   string
		want Output
		err  bool
	}{
		{"", OutputText, false},
		{"TXT", OutputText, false},
		{"html", OutputHTML, false},
		{" pdf ", OutputPDF, false},
		{"preview", OutputPreview, false},
		{"docx", "", true},
	}
	for _, tt := range tests {
		got, err := ParseOutput(tt.in)
		if (err != nil) != tt.err {
			t.Errorf("ParseOutput(%q) err = %v", tt.in, err)
			continue
		}
		if tt.err && !errors.Is(err, ErrUnknownOutput) {
			t.Errorf("ParseOutput(%q) err = %v, want ErrUnknownOutput", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseOutput(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteContentTypes(t *testing.T) {
	for _, out := range []Output{OutputText, OutputJSON, OutputHTML, OutputPDF, OutputPreview} {
		var buf bytes.Buffer
		if err := Write(&buf, sampleInvoice(), out); err != nil {
			t.Errorf("Write(%s): %v", out, err)
		}
		if buf.Len() == 0 {
			t.Errorf("Write(%s) produced nothing", out)
		}
		if out.ContentType() == "" || out.Extension() == "" {
			t.Errorf("%s has no content type or extension", out)
		}
	}
}
