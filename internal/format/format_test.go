package format

import (
	"errors"
	"math"
	"testing"

	"invoicegen/m/domain"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		amount   float64
		expected string
	}{
		{0, "Rp 0"},
		{999, "Rp 999"},
		{1000, "Rp 1.000"},
		{1000000, "Rp 1.000.000"},
		{16650000, "Rp 16.650.000"},
		{1234.4, "Rp 1.234"},
		{1234.5, "Rp 1.235"},
		{-2500, "Rp -2.500"},
		{math.NaN(), "Rp 0"},
		{1e19, "Rp 10.000.000.000.000.000.000"},
		{1e20, "Rp 100.000.000.000.000.000.000"},
		{-1e19, "Rp -10.000.000.000.000.000.000"},
	}

	for _, tt := range tests {
		if got := Currency(tt.amount); got != tt.expected {
			t.Errorf("Currency(%v) = %q, expected %q", tt.amount, got, tt.expected)
		}
	}
}

func TestFixed(t *testing.T) {
	tests := []struct {
		amount   float64
		expected string
	}{
		{0, "0.00"},
		{100, "100.00"},
		{2170, "2170.00"},
		{157.5, "157.50"},
		{1000000, "1000000.00"},
		{math.Inf(1), "0.00"},
	}

	for _, tt := range tests {
		if got := Fixed(tt.amount); got != tt.expected {
			t.Errorf("Fixed(%v) = %q, expected %q", tt.amount, got, tt.expected)
		}
	}
}

func TestPercentAndQuantity(t *testing.T) {
	if got := Percent(8.5); got != "8.5" {
		t.Errorf("Percent(8.5) = %q", got)
	}
	if got := Percent(11); got != "11" {
		t.Errorf("Percent(11) = %q", got)
	}
	if got := Quantity(10); got != "10" {
		t.Errorf("Quantity(10) = %q", got)
	}
	if got := Quantity(2.25); got != "2.25" {
		t.Errorf("Quantity(2.25) = %q", got)
	}
}

func TestWords(t *testing.T) {
	tests := []struct {
		amount   float64
		expected string
	}{
		{0, "Nol Rupiah"},
		{1, "Satu Rupiah"},
		{10, "Sepuluh Rupiah"},
		{11, "Sebelas Rupiah"},
		{12, "Dua Belas Rupiah"},
		{19, "Sembilan Belas Rupiah"},
		{20, "Dua Puluh Rupiah"},
		{45, "Empat Puluh Lima Rupiah"},
		{100, "Seratus Rupiah"},
		{111, "Seratus Sebelas Rupiah"},
		{250, "Dua Ratus Lima Puluh Rupiah"},
		{1000, "Seribu Rupiah"},
		{1001, "Seribu Satu Rupiah"},
		{2500, "Dua Ribu Lima Ratus Rupiah"},
		{100000, "Seratus Ribu Rupiah"},
		{1500000, "Satu Juta Lima Ratus Ribu Rupiah"},
		{16650000, "Enam Belas Juta Enam Ratus Lima Puluh Ribu Rupiah"},
		{2000000000, "Dua Miliar Rupiah"},
		{3000000000000, "Tiga Triliun Rupiah"},
		{1000000000000000, "Seribu Triliun Rupiah"},
	}

	for _, tt := range tests {
		got, err := Words(tt.amount)
		if err != nil {
			t.Errorf("Words(%v) returned error: %v", tt.amount, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("Words(%v) = %q, expected %q", tt.amount, got, tt.expected)
		}
	}
}

func TestWordsInvalidAmount(t *testing.T) {
	for _, amount := range []float64{-1, 1.5, 0.01, math.NaN(), math.Inf(1), 1e18} {
		_, err := Words(amount)
		if !errors.Is(err, domain.ErrInvalidAmount) {
			t.Errorf("Words(%v) error = %v, expected ErrInvalidAmount", amount, err)
		}
	}
}

func TestDate(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", "-"},
		{"2026-01-02", "2 Januari 2026"},
		{"2025-08-17", "17 Agustus 2025"},
		{"2026-12-31", "31 Desember 2026"},
		{"next tuesday", "next tuesday"},
	}

	for _, tt := range tests {
		if got := Date(tt.input); got != tt.expected {
			t.Errorf("Date(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}
