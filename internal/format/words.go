package format

import (
	"fmt"
	"math"
	"strings"

	"invoicegen/m/domain"
)

const currencyName = "Rupiah"

// maxWordsAmount bounds Words to amounts that survive the float64 round trip.
const maxWordsAmount = 1e18

var ones = [...]string{"", "Satu", "Dua", "Tiga", "Empat", "Lima", "Enam", "Tujuh", "Delapan", "Sembilan", "Sepuluh", "Sebelas"}

var scales = []struct {
	size uint64
	name string
}{
	{1_000_000_000_000, "Triliun"},
	{1_000_000_000, "Miliar"},
	{1_000_000, "Juta"},
	{1_000, "Ribu"},
}

// Words spells out a whole, non-negative Rupiah amount in Indonesian,
// e.g. 1500000 -> "Satu Juta Lima Ratus Ribu Rupiah".
func Words(amount float64) (string, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "", fmt.Errorf("%w: %v is not a finite number", domain.ErrInvalidAmount, amount)
	}
	if amount < 0 {
		return "", fmt.Errorf("%w: %v is negative", domain.ErrInvalidAmount, amount)
	}
	if amount != math.Trunc(amount) {
		return "", fmt.Errorf("%w: %v has a fractional part", domain.ErrInvalidAmount, amount)
	}
	if amount >= maxWordsAmount {
		return "", fmt.Errorf("%w: %v is out of range", domain.ErrInvalidAmount, amount)
	}

	n := uint64(amount)
	if n == 0 {
		return "Nol " + currencyName, nil
	}
	return spell(n) + " " + currencyName, nil
}

// spell returns the cardinal phrase for n without the currency name.
// Every branch recurses on a strictly smaller value.
func spell(n uint64) string {
	switch {
	case n < 12:
		return ones[n]
	case n < 20:
		return ones[n-10] + " Belas"
	case n < 100:
		return join(ones[n/10]+" Puluh", spell(n%10))
	case n < 200:
		return join("Seratus", spell(n-100))
	case n < 1000:
		return join(ones[n/100]+" Ratus", spell(n%100))
	case n < 2000:
		return join("Seribu", spell(n-1000))
	}

	for _, scale := range scales {
		if n >= scale.size {
			return join(spell(n/scale.size)+" "+scale.name, spell(n%scale.size))
		}
	}
	// unreachable: n >= 2000 always matches the Ribu scale
	return ""
}

func join(head, tail string) string {
	if tail == "" {
		return head
	}
	return strings.Join([]string{head, tail}, " ")
}
