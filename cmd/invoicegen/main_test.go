package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"invoicegen/m/domain"
)

func runApp(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")
	var out, errOut bytes.Buffer
	err = newApp(&out, &errOut).Run(append([]string{"invoicegen"}, args...))
	return out.String(), errOut.String(), err
}

func TestGenerateSampleText(t *testing.T) {
	stdout, stderr, err := runApp(t, "generate", "invoice")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	for _, want := range []string{"INVOICE", "Sample Company Inc.", "Subtotal: $2000.00", "Tax (8.5%): $170.00", "Total: $2170.00"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q", want)
		}
	}
	if stderr != "" {
		t.Errorf("unexpected advisories for complete sample: %q", stderr)
	}
}

func TestGenerateConfigToFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "receipt.yaml")
	config := "customerName: Budi\nitems:\n  - description: Pelunasan\n    quantity: 1\n    unitPrice: \"1500000\"\n"
	if err := os.WriteFile(cfgPath, []byte(config), 0o644); err != nil {
		t.Fatal(err)
	}
	outPath := filepath.Join(dir, "nested", "out", "receipt.json")

	stdout, stderr, err := runApp(t, "generate", "receipt", "-c", cfgPath, "-o", outPath, "-f", "json")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(stdout, "Document generated successfully: "+outPath) {
		t.Errorf("stdout = %q", stdout)
	}
	for _, field := range []string{"[notes]", "[tax]", "[email]"} {
		if !strings.Contains(stderr, field) {
			t.Errorf("stderr missing advisory %s: %q", field, stderr)
		}
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var doc domain.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if doc.Type != domain.Receipt || doc.Counterparty.Name != "Budi" || doc.Totals.GrandTotal != 1500000 {
		t.Errorf("doc = %+v", doc)
	}
	if !strings.HasPrefix(doc.Number, "RCP-") {
		t.Errorf("number = %q", doc.Number)
	}
}

func TestGenerateFlagPositions(t *testing.T) {
	tests := []struct {
		name string
		args func(out string) []string
	}{
		{"flags before type", func(out string) []string {
			return []string{"generate", "-f", "json", "-o", out, "invoice"}
		}},
		{"flags after type", func(out string) []string {
			return []string{"generate", "invoice", "-f", "json", "-o", out}
		}},
		{"flags on both sides", func(out string) []string {
			return []string{"generate", "--format", "json", "invoice", "--output", out}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outPath := filepath.Join(t.TempDir(), "invoice.json")
			stdout, _, err := runApp(t, tt.args(outPath)...)
			if err != nil {
				t.Fatalf("generate: %v", err)
			}
			if !strings.Contains(stdout, "Document generated successfully: "+outPath) {
				t.Errorf("stdout = %q", stdout)
			}
			data, err := os.ReadFile(outPath)
			if err != nil {
				t.Fatalf("read output: %v", err)
			}
			var doc domain.Document
			if err := json.Unmarshal(data, &doc); err != nil {
				t.Fatalf("decode output: %v", err)
			}
			if doc.Type != domain.Invoice {
				t.Errorf("type = %q, want %q", doc.Type, domain.Invoice)
			}
		})
	}
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing type", []string{"generate"}, "missing document type"},
		{"unknown type", []string{"generate", "quote"}, "invalid document type"},
		{"missing config", []string{"generate", "invoice", "-c", filepath.Join(t.TempDir(), "nope.json")}, "error reading config file"},
		{"unknown format", []string{"generate", "invoice", "-f", "docx"}, "unknown output format"},
		{"stray argument", []string{"generate", "invoice", "-f", "json", "extra"}, "unexpected arguments: extra"},
		{"unknown trailing flag", []string{"generate", "invoice", "--colour"}, "invalid arguments"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runApp(t, tt.args...)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to mention %q", err, tt.want)
			}
			if code := exitCode(err); code != 1 {
				t.Errorf("exit code = %d, want 1", code)
			}
		})
	}
}

func TestGenerateSave(t *testing.T) {
	t.Setenv("DATABASE_DSN", "file:"+filepath.Join(t.TempDir(), "docs.db"))
	if _, _, err := runApp(t, "generate", "po", "--save", "-f", "html"); err != nil {
		t.Fatalf("generate --save: %v", err)
	}
}

func TestTeleport(t *testing.T) {
	stdout, _, err := runApp(t, "teleport", "session_01GRRgxs6yUhxrMTTo2fhmfi")
	if err != nil {
		t.Fatalf("teleport: %v", err)
	}
	for _, want := range []string{
		"Session ID: session_01GRRgxs6yUhxrMTTo2fhmfi",
		"Status: Active",
		"[notes] Consider adding a thank you note",
		`Description: "Invoice for Demo Client Corp with 2 items totaling $865.83"`,
		"Bill To:",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q\n%s", want, stdout)
		}
	}
}

func TestTeleportGeneratesSessionID(t *testing.T) {
	stdout, _, err := runApp(t, "teleport")
	if err != nil {
		t.Fatalf("teleport: %v", err)
	}
	if !strings.Contains(stdout, "Session ID: session_") {
		t.Errorf("stdout = %q", stdout)
	}
}
