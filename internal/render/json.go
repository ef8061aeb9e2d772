package render

import (
	"encoding/json"
	"fmt"
	"io"

	"invoicegen/m/domain"
)

// JSON writes doc, totals included, as indented JSON.
func JSON(w io.Writer, doc domain.Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("render json: %w", err)
	}
	return nil
}
