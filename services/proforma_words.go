package services

import (
	"math"
	"strings"
)

// AmountToWords converts a USD amount to English words for the proforma
// invoice. Example: 1234.56 → "One Thousand Two Hundred and Thirty Four
// US Dollars and Fifty Six Cents Only".
// Amounts that are not finite, or whose cents do not fit in an int64, have no
// spelling and yield "".
func AmountToWords(amount float64) string {
	if amount < 0 {
		if w := AmountToWords(-amount); w != "" {
			return "Negative " + w
		}
		return ""
	}
	if math.IsNaN(amount) || amount >= maxWordsAmount {
		return ""
	}

	totalCents := int64(math.Round(amount * 100))
	dollars := totalCents / 100
	cents := totalCents % 100

	var b strings.Builder
	if dollars == 0 {
		b.WriteString("Zero")
	} else {
		b.WriteString(convertToWords(dollars))
	}
	if dollars == 1 {
		b.WriteString(" US Dollar")
	} else {
		b.WriteString(" US Dollars")
	}

	if cents > 0 {
		b.WriteString(" and " + convertUnder100(cents))
		if cents == 1 {
			b.WriteString(" Cent")
		} else {
			b.WriteString(" Cents")
		}
	}

	b.WriteString(" Only")
	return b.String()
}

func convertToWords(n int64) string {
	if n == 0 {
		return ""
	}

	var parts []string

	for _, scale := range []struct {
		value int64
		name  string
	}{
		{1_000_000_000_000, "Trillion"},
		{1_000_000_000, "Billion"},
		{1_000_000, "Million"},
		{1_000, "Thousand"},
	} {
		if n >= scale.value {
			// Above a thousand trillion the count is spelled with scales itself.
			count := n / scale.value
			prefix := convertUnder1000(count)
			if count >= 1000 {
				prefix = convertToWords(count)
			}
			parts = append(parts, prefix+" "+scale.name)
			n %= scale.value
		}
	}

	if n >= 100 {
		parts = append(parts, ones[n/100]+" Hundred")
		n %= 100
	}

	if n > 0 {
		if len(parts) > 0 {
			parts = append(parts, "and "+convertUnder100(n))
		} else {
			parts = append(parts, convertUnder100(n))
		}
	}

	return strings.Join(parts, " ")
}

func convertUnder1000(n int64) string {
	if n < 100 {
		return convertUnder100(n)
	}
	result := ones[n/100] + " Hundred"
	if n%100 != 0 {
		result += " " + convertUnder100(n%100)
	}
	return result
}

func convertUnder100(n int64) string {
	if n < 20 {
		return ones[n]
	}
	result := tens[n/10]
	if n%10 != 0 {
		result += " " + ones[n%10]
	}
	return result
}

// maxWordsAmount keeps amount*100 inside int64.
const maxWordsAmount = 9e16

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}
