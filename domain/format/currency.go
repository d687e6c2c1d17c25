package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"tabstat/domain/core"

	"github.com/shopspring/decimal"
)

// CurrencyMarker prefixes every formatted amount
const CurrencyMarker = "R$"

// separatorSwap exchanges the roles of comma and period in a single pass
var separatorSwap = strings.NewReplacer(",", ".", ".", ",")

// Currency formats a nullable amount. A nil value passes through.
func Currency(value *float64) *string {
	if value == nil {
		return nil
	}
	formatted := FormatCurrency(*value)
	return &formatted
}

// FormatCurrency renders value as "R$ 1.234,50".
//
// The amount is rounded to two places half away from zero on the shortest
// decimal representation of the float, formatted with standard grouping
// ("1,234.50") and then the comma and period roles are swapped.
func FormatCurrency(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Sprintf("%s %v", CurrencyMarker, value)
	}

	fixed := decimal.NewFromFloat(value).StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	intPart, fracPart, _ := strings.Cut(fixed, ".")
	standard := sign + groupThousands(intPart) + "." + fracPart

	return CurrencyMarker + " " + separatorSwap.Replace(standard)
}

// CurrencyString formats a raw spreadsheet cell. Empty cells yield nil and
// cells already carrying the currency marker are returned unchanged.
func CurrencyString(raw string) (*string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if strings.HasPrefix(raw, CurrencyMarker) {
		return &raw, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", core.ErrNotNumeric, raw)
	}
	return Currency(&value), nil
}

// groupThousands inserts a comma every three digits from the right
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
