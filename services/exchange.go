package services

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Accepted decimal shapes: "5.25" and "1234" with a point, or "5,25" and
// "1.234,50" with a comma and optional point grouping.
var (
	pointDecimalPattern = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
	commaDecimalPattern = regexp.MustCompile(`^-?(\d+|\d{1,3}(\.\d{3})+),\d+$`)
)

// ParseDecimal parses a user-entered decimal that may use "," or "." as the
// decimal separator, with optional "." thousands grouping when "," is present
// (e.g. "5,25", "5.25", "1.234,50"). Exponents, hex floats, NaN and Inf are
// rejected.
func ParseDecimal(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty value")
	}
	raw := s
	switch {
	case pointDecimalPattern.MatchString(s):
	case commaDecimalPattern.MatchString(s):
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	default:
		return 0, fmt.Errorf("invalid number %q", raw)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid number %q", raw)
	}
	return v, nil
}

// ParseExchangeRate parses the manually entered BRL-per-USD rate. An empty
// string means no rate was given (ok is false, err is nil). The rate itself is
// not range-checked.
func ParseExchangeRate(s string) (rate float64, ok bool, err error) {
	if strings.TrimSpace(s) == "" {
		return 0, false, nil
	}
	rate, err = ParseDecimal(s)
	if err != nil {
		return 0, false, fmt.Errorf("exchange rate: %w", err)
	}
	return rate, true, nil
}

// ConvertToBRL converts a USD amount with a fixed rate.
func ConvertToBRL(amountUSD, rate float64) float64 {
	return amountUSD * rate
}
