package format

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencyPrefix is printed before every Rupiah amount.
const CurrencyPrefix = "Rp "

var idPrinter = message.NewPrinter(language.Indonesian)

// Currency renders amount as whole Rupiah with id-ID digit grouping,
// e.g. 1000000 -> "Rp 1.000.000". Halves round away from zero.
func Currency(amount float64) string {
	whole := toDecimal(amount).Round(0)
	if n := whole.BigInt(); n.IsInt64() {
		return CurrencyPrefix + idPrinter.Sprintf("%d", n.Int64())
	}
	return CurrencyPrefix + groupThousands(whole.String())
}

// groupThousands inserts "." every three digits of an integer string,
// keeping a leading minus sign in front.
func groupThousands(digits string) string {
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	var b strings.Builder
	b.WriteString(sign)
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Fixed renders amount with exactly two fraction digits and no grouping.
// It is the money format of the plain-text report.
func Fixed(amount float64) string {
	return toDecimal(amount).StringFixed(2)
}

// Percent renders a tax percentage in its shortest form: 11, 8.5, 7.25.
func Percent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

// Quantity renders an item quantity in its shortest form.
func Quantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

func toDecimal(amount float64) decimal.Decimal {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(amount)
}
