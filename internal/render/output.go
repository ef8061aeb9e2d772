package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"invoicegen/m/domain"
)

// ErrUnknownOutput is returned for an unsupported output format name.
var ErrUnknownOutput = errors.New("unknown output format")

// Output names a rendition of a document.
type Output string

const (
	OutputText    Output = "text"
	OutputJSON    Output = "json"
	OutputHTML    Output = "html"
	OutputPDF     Output = "pdf"
	OutputPreview Output = "preview"
)

// ParseOutput resolves a format name; empty means text.
func ParseOutput(s string) (Output, error) {
	switch o := Output(strings.ToLower(strings.TrimSpace(s))); o {
	case "", "txt":
		return OutputText, nil
	case OutputText, OutputJSON, OutputHTML, OutputPDF, OutputPreview:
		return o, nil
	}
	return "", fmt.Errorf("%w: %q (valid formats: text, json, html, pdf, preview)", ErrUnknownOutput, s)
}

// ContentType is the HTTP media type of the rendition.
func (o Output) ContentType() string {
	switch o {
	case OutputJSON, OutputPreview:
		return "application/json"
	case OutputHTML:
		return "text/html; charset=utf-8"
	case OutputPDF:
		return "application/pdf"
	}
	return "text/plain; charset=utf-8"
}

// Extension is the file extension used when the rendition is saved.
func (o Output) Extension() string {
	switch o {
	case OutputJSON, OutputPreview:
		return ".json"
	case OutputHTML:
		return ".html"
	case OutputPDF:
		return ".pdf"
	}
	return ".txt"
}

// Write renders doc to w in the requested format.
func Write(w io.Writer, doc domain.Document, out Output) error {
	switch out {
	case OutputText:
		_, err := io.WriteString(w, Text(doc)+"\n")
		return err
	case OutputJSON:
		return JSON(w, doc)
	case OutputHTML:
		return HTML(w, doc)
	case OutputPDF:
		return PDF(w, doc)
	case OutputPreview:
		p, err := NewPreview(doc)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	}
	return fmt.Errorf("%w: %q", ErrUnknownOutput, string(out))
}
