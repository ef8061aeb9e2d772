package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"invoicegen/m/domain"
)

//go:embed templates/preview.html.tmpl
var templateFS embed.FS

var previewTemplate = template.Must(template.ParseFS(templateFS, "templates/preview.html.tmpl"))

// HTML writes the preview of doc as a standalone HTML page. All document text
// is escaped.
func HTML(w io.Writer, doc domain.Document) error {
	p, err := NewPreview(doc)
	if err != nil {
		return err
	}
	if err := previewTemplate.Execute(w, p); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}
