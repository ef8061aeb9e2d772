package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"invoicegen/m/domain"
)

const (
	pdfMargin    = 15.0
	pdfLineH     = 6.0
	pdfPageWidth = 210.0
)

var (
	pdfAccent    = [3]int{37, 99, 235}
	fixedPDFDate = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// PDF writes the preview of doc as a single A4 PDF document.
func PDF(w io.Writer, doc domain.Document) error {
	p, err := NewPreview(doc)
	if err != nil {
		return err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	// Fix the creation date so identical documents produce identical files.
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(fixedPDFDate)
	pdf.SetModificationDate(fixedPDFDate)
	pdf.SetTitle(p.Title+" "+p.Number, true)
	pdf.SetCreator("invoicegen", true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	contentW := pdfPageWidth - 2*pdfMargin
	half := contentW / 2

	// Header
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(half, 8, tr(p.Company.Name), "", 0, "L", false, 0, "")
	pdf.SetTextColor(pdfAccent[0], pdfAccent[1], pdfAccent[2])
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(half, 8, tr(p.Title), "", 1, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(half, pdfLineH, tr(p.Company.Address), "", 0, "L", false, 0, "")
	pdf.CellFormat(half, pdfLineH, tr(p.Number), "", 1, "R", false, 0, "")
	pdf.SetDrawColor(pdfAccent[0], pdfAccent[1], pdfAccent[2])
	pdf.SetLineWidth(0.8)
	pdf.Line(pdfMargin, pdf.GetY()+2, pdfMargin+contentW, pdf.GetY()+2)
	pdf.SetLineWidth(0.2)
	pdf.SetDrawColor(0, 0, 0)
	pdf.Ln(6)

	// Counterparty and details side by side
	left := []string{dash(p.Counterparty.Name)}
	if p.Counterparty.Address != "" {
		left = append(left, p.Counterparty.Address)
	}
	if p.Counterparty.Phone != "" {
		left = append(left, "Tel: "+p.Counterparty.Phone)
	}
	if p.Counterparty.Email != "" {
		left = append(left, "Email: "+p.Counterparty.Email)
	}
	right := make([]string, 0, len(p.Details))
	for _, f := range p.Details {
		right = append(right, f.Label+": "+f.Value)
	}
	pdfHeading(pdf, tr, half, p.CounterpartyHeading, 0)
	pdfHeading(pdf, tr, half, p.DetailsHeading, 1)
	for i := 0; i < max(len(left), len(right)); i++ {
		pdf.CellFormat(half, pdfLineH, tr(at(left, i)), "", 0, "L", false, 0, "")
		pdf.CellFormat(half, pdfLineH, tr(at(right, i)), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	if p.Amount != nil {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(contentW, pdfLineH, "Jumlah Pembayaran", "", 1, "C", false, 0, "")
		pdf.SetTextColor(pdfAccent[0], pdfAccent[1], pdfAccent[2])
		pdf.SetFont("Helvetica", "B", 22)
		pdf.CellFormat(contentW, 12, tr(p.Amount.Value), "", 1, "C", false, 0, "")
		pdf.SetTextColor(100, 116, 139)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(contentW, pdfLineH, tr("("+p.Amount.Words+")"), "", "C", false)
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(4)
	}

	if len(p.Items) > 0 || p.Amount == nil {
		widths := []float64{12, contentW - 12 - 20 - 35 - 35, 20, 35, 35}
		headers := []string{"No", "Deskripsi", "Qty", "Harga", "Total"}
		aligns := []string{"C", "L", "R", "R", "R"}

		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(pdfAccent[0], pdfAccent[1], pdfAccent[2])
		pdf.SetTextColor(255, 255, 255)
		for i, h := range headers {
			pdf.CellFormat(widths[i], 8, h, "1", 0, aligns[i], true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "", 10)
		for _, row := range p.Items {
			cells := []string{fmt.Sprint(row.No), row.Description, row.Quantity, row.UnitPrice, row.Total}
			for i, c := range cells {
				pdf.CellFormat(widths[i], 7, tr(c), "1", 0, aligns[i], false, 0, "")
			}
			pdf.Ln(-1)
		}

		labelW := contentW - widths[4]
		pdfTotal(pdf, tr, labelW, widths[4], "Subtotal:", p.Subtotal, "")
		pdfTotal(pdf, tr, labelW, widths[4], p.TaxLabel+":", p.TaxAmount, "")
		pdfTotal(pdf, tr, labelW, widths[4], "Grand Total:", p.GrandTotal, "B")
		pdf.Ln(4)
	}

	pdfHeading(pdf, tr, contentW, p.PaymentHeading, 1)
	for _, f := range p.Payment {
		pdf.CellFormat(contentW, pdfLineH, tr(f.Label+": "+f.Value), "", 1, "L", false, 0, "")
	}
	if p.Description != "" {
		pdf.Ln(2)
		pdfHeading(pdf, tr, contentW, "Keterangan", 1)
		pdf.MultiCell(contentW, pdfLineH, tr(p.Description), "", "L", false)
	}
	if p.Notes != "" {
		pdf.Ln(2)
		pdfHeading(pdf, tr, contentW, "Catatan", 1)
		pdf.MultiCell(contentW, pdfLineH, tr(p.Notes), "", "L", false)
	}

	// Signatures
	pdf.Ln(20)
	sigW := 60.0
	gap := contentW - 2*sigW
	y := pdf.GetY()
	pdf.Line(pdfMargin, y, pdfMargin+sigW, y)
	pdf.Line(pdfMargin+sigW+gap, y, pdfMargin+contentW, y)
	pdf.Ln(2)
	if len(p.Signatures) == 2 {
		pdf.SetX(pdfMargin)
		pdf.MultiCell(sigW, pdfLineH, tr(strings.Join(p.Signatures[0].Caption, "\n")), "", "C", false)
		pdf.SetXY(pdfMargin+sigW+gap, y+2)
		pdf.MultiCell(sigW, pdfLineH, tr(strings.Join(p.Signatures[1].Caption, "\n")), "", "C", false)
	}

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(100, 116, 139)
	pdf.CellFormat(contentW, 5, tr(p.Company.Name), "", 1, "C", false, 0, "")
	if p.Company.Website != "" {
		pdf.CellFormat(contentW, 5, tr(p.Company.Website), "", 1, "C", false, 0, p.Company.Website)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

func pdfHeading(pdf *gofpdf.Fpdf, tr func(string) string, width float64, text string, ln int) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(100, 116, 139)
	pdf.CellFormat(width, pdfLineH, tr(strings.ToUpper(text)), "", ln, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)
}

func pdfTotal(pdf *gofpdf.Fpdf, tr func(string) string, labelW, valueW float64, label, value, style string) {
	pdf.SetFont("Helvetica", style, 10)
	pdf.CellFormat(labelW, 7, tr(label), "", 0, "R", false, 0, "")
	pdf.CellFormat(valueW, 7, tr(value), "1", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
}

func at(lines []string, i int) string {
	if i < len(lines) {
		return lines[i]
	}
	return ""
}
