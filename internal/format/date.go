package format

import (
	"fmt"
	"time"
)

// DateLayout is the ISO layout documents carry their dates in.
const DateLayout = "2006-01-02"

var months = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// Date renders an ISO date as a long Indonesian date ("2 Januari 2026").
// Empty input renders as "-" and unparseable input is returned unchanged.
func Date(s string) string {
	if s == "" {
		return "-"
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return s
	}
	return fmt.Sprintf("%d %s %d", t.Day(), months[t.Month()-1], t.Year())
}
