package services

import (
	"regexp"
	"strings"
)

// Document types accepted for a client.
const (
	DocumentCNPJ = "CNPJ"
	DocumentCPF  = "CPF"
)

// DocumentTypes lists the accepted document types, default first.
var DocumentTypes = []string{DocumentCNPJ, DocumentCPF}

// Validation regex patterns
var (
	nonDigitPattern = regexp.MustCompile(`\D`)
	phonePattern    = regexp.MustCompile(`^[1-9][0-9](9[0-9]{8}|[2-8][0-9]{7})$`)
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// OnlyDigits strips everything but ASCII digits.
func OnlyDigits(s string) string {
	return nonDigitPattern.ReplaceAllString(s, "")
}

// ValidateCPF validates a CPF (11 digits, two mod-11 check digits). Masked
// and unmasked input are both accepted.
func ValidateCPF(cpf string) bool {
	if strings.TrimSpace(cpf) == "" {
		return true
	}
	d := OnlyDigits(cpf)
	if len(d) != 11 || allSameDigit(d) {
		return false
	}
	return cpfCheckDigit(d[:9], 10) == d[9] && cpfCheckDigit(d[:10], 11) == d[10]
}

func cpfCheckDigit(digits string, weight int) byte {
	sum := 0
	for i := 0; i < len(digits); i++ {
		sum += int(digits[i]-'0') * (weight - i)
	}
	r := (sum * 10) % 11
	if r == 10 {
		r = 0
	}
	return byte('0' + r)
}

var (
	cnpjWeights1 = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights2 = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// ValidateCNPJ validates a CNPJ (14 digits, two mod-11 check digits).
func ValidateCNPJ(cnpj string) bool {
	if strings.TrimSpace(cnpj) == "" {
		return true
	}
	d := OnlyDigits(cnpj)
	if len(d) != 14 || allSameDigit(d) {
		return false
	}
	return cnpjCheckDigit(d[:12], cnpjWeights1) == d[12] && cnpjCheckDigit(d[:13], cnpjWeights2) == d[13]
}

func cnpjCheckDigit(digits string, weights []int) byte {
	sum := 0
	for i := 0; i < len(digits); i++ {
		sum += int(digits[i]-'0') * weights[i]
	}
	r := sum % 11
	if r < 2 {
		return '0'
	}
	return byte('0' + 11 - r)
}

func allSameDigit(d string) bool {
	return strings.Count(d, d[:1]) == len(d)
}

// ValidateDocument validates doc against its declared type.
func ValidateDocument(doc, docType string) bool {
	if docType == DocumentCPF {
		return ValidateCPF(doc)
	}
	return ValidateCNPJ(doc)
}

// ValidatePhone validates a Brazilian phone number: 2-digit area code followed
// by an 8-digit landline or a 9-digit mobile starting with 9.
func ValidatePhone(phone string) bool {
	if strings.TrimSpace(phone) == "" {
		return true
	}
	return phonePattern.MatchString(OnlyDigits(phone))
}

// ValidateEmail validates an email address format.
func ValidateEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return true
	}
	return emailPattern.MatchString(email)
}

// FormatDocument masks the digits of value progressively as typed, as
// 000.000.000-00 for CPF and 00.000.000/0000-00 otherwise. Extra digits are
// dropped.
func FormatDocument(value, docType string) string {
	if docType == DocumentCPF {
		return applyMask(OnlyDigits(value), []int{3, 3, 3, 2}, []string{".", ".", "-"})
	}
	return applyMask(OnlyDigits(value), []int{2, 3, 3, 4, 2}, []string{".", ".", "/", "-"})
}

// FormatPhone masks a phone number as (00) 0000-0000 or (00) 00000-0000.
func FormatPhone(value string) string {
	d := OnlyDigits(value)
	if len(d) > 11 {
		d = d[:11]
	}
	switch {
	case len(d) <= 2:
		return d
	case len(d) <= 6:
		return "(" + d[:2] + ") " + d[2:]
	case len(d) <= 10:
		return "(" + d[:2] + ") " + d[2:6] + "-" + d[6:]
	default:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	}
}

// applyMask splits digits into groups and joins them with seps; a separator
// only appears once the next group has started.
func applyMask(digits string, groups []int, seps []string) string {
	var b strings.Builder
	pos := 0
	for i, n := range groups {
		if pos >= len(digits) {
			break
		}
		if i > 0 {
			b.WriteString(seps[i-1])
		}
		end := min(pos+n, len(digits))
		b.WriteString(digits[pos:end])
		pos = end
	}
	return b.String()
}

// ValidateClientFormat validates format-specific client fields and returns a
// map of field -> error message for any format violations.
func ValidateClientFormat(fields map[string]string) map[string]string {
	errors := make(map[string]string)

	docType := fields["tipoDocumento"]
	if v := fields["documento"]; v != "" && !ValidateDocument(v, docType) {
		if docType == DocumentCPF {
			errors["documento"] = "CPF inválido (esperado: 000.000.000-00)"
		} else {
			errors["documento"] = "CNPJ inválido (esperado: 00.000.000/0000-00)"
		}
	}
	if v := fields["telefone"]; v != "" && !ValidatePhone(v) {
		errors["telefone"] = "Telefone inválido (esperado: (00) 00000-0000)"
	}
	if v := fields["email"]; v != "" && !ValidateEmail(v) {
		errors["email"] = "E-mail inválido"
	}

	return errors
}
