package services

import (
	"fmt"
	"strings"
	"time"
)

// FormatUSD formats an amount as US dollars in Brazilian notation,
// e.g. US$ 1.234,56. The result always has exactly 2 decimal places.
func FormatUSD(amount float64) string {
	return formatMoney("US$", amount)
}

// FormatBRL formats an amount as Brazilian reais, e.g. R$ 1.234,56.
func FormatBRL(amount float64) string {
	return formatMoney("R$", amount)
}

// FormatDecimalBR formats a number with 2 decimals, "." thousands grouping
// and "," as decimal separator.
func FormatDecimalBR(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(raw, ".", 2)

	result := applyThousandsGrouping(parts[0]) + "," + parts[1]
	if negative && result != "0,00" {
		result = "-" + result
	}
	return result
}

func formatMoney(symbol string, amount float64) string {
	formatted := FormatDecimalBR(amount)
	if strings.HasPrefix(formatted, "-") {
		return "-" + symbol + " " + formatted[1:]
	}
	return symbol + " " + formatted
}

// applyThousandsGrouping inserts "." between every group of 3 digits,
// counting from the right.
func applyThousandsGrouping(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// DatePlaceholder is rendered wherever a date is missing or unparsable.
const DatePlaceholder = "—"

// FormatDateBR renders an ISO date (2006-01-02, optionally with a time part)
// as dd/mm/yyyy. Empty or invalid input yields DatePlaceholder.
func FormatDateBR(iso string) string {
	iso = strings.TrimSpace(iso)
	if iso == "" {
		return DatePlaceholder
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339, time.RFC3339Nano} {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return DatePlaceholder
}
