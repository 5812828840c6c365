package services

import (
	"strconv"
	"strings"
)

// MaxProformaTotal is the largest invoice total, in USD, that is accepted.
const MaxProformaTotal = 1e12

// ProformaForm is the raw proforma invoice form as submitted.
type ProformaForm struct {
	Client      string
	Operator    string
	Email       string
	Phone       string
	FlightDate  string
	InvoiceDate string
	DollarRate  string
	Description string
	Quantity    string
	UnitPrice   string
}

// ProformaInvoice is a parsed single-line proforma invoice.
type ProformaInvoice struct {
	Number       string
	Client       string
	Operator     string
	Email        string
	Phone        string
	FlightDate   string
	InvoiceDate  string
	ExchangeRate float64 // BRL per USD; meaningful only when HasRate
	HasRate      bool
	Description  string
	Quantity     int
	UnitPrice    float64
}

// Total returns quantity × unit price in USD.
func (p ProformaInvoice) Total() float64 {
	return p.UnitPrice * float64(p.Quantity)
}

// TotalBRL returns the total converted at the entered rate.
func (p ProformaInvoice) TotalBRL() (float64, bool) {
	if !p.HasRate {
		return 0, false
	}
	return ConvertToBRL(p.Total(), p.ExchangeRate), true
}

// ParseProformaForm converts the form strings into typed values. Empty
// quantity and unit price count as zero; anything unparsable is reported per
// field instead of being coerced.
func ParseProformaForm(f ProformaForm) (ProformaInvoice, error) {
	errs := ValidationErrors{}
	inv := ProformaInvoice{
		Client:      strings.TrimSpace(f.Client),
		Operator:    strings.TrimSpace(f.Operator),
		Email:       strings.TrimSpace(f.Email),
		Phone:       strings.TrimSpace(f.Phone),
		FlightDate:  strings.TrimSpace(f.FlightDate),
		InvoiceDate: strings.TrimSpace(f.InvoiceDate),
		Description: strings.TrimSpace(f.Description),
	}

	if q := strings.TrimSpace(f.Quantity); q != "" {
		n, err := strconv.Atoi(q)
		switch {
		case err != nil:
			errs.Add("quantidade", "Quantidade deve ser um número inteiro")
		case n < 0:
			errs.Add("quantidade", "Quantidade não pode ser negativa")
		default:
			inv.Quantity = n
		}
	}

	if p := strings.TrimSpace(f.UnitPrice); p != "" {
		v, err := ParseDecimal(p)
		switch {
		case err != nil:
			errs.Add("valorUnitario", "Valor unitário inválido")
		case v < 0:
			errs.Add("valorUnitario", "Valor unitário não pode ser negativo")
		default:
			inv.UnitPrice = v
		}
	}

	if _, bad := errs["quantidade"]; !bad {
		if _, bad := errs["valorUnitario"]; !bad && inv.Total() > MaxProformaTotal {
			errs.Add("valorUnitario", "Valor total acima do limite de US$ 1 trilhão")
		}
	}

	rate, ok, err := ParseExchangeRate(f.DollarRate)
	if err != nil {
		errs.Add("dolarDia", "Cotação do dólar inválida")
	} else {
		inv.ExchangeRate, inv.HasRate = rate, ok
	}

	if inv.Email != "" && !ValidateEmail(inv.Email) {
		errs.Add("email", "Email inválido")
	}

	if err := errs.OrNil(); err != nil {
		return ProformaInvoice{}, err
	}
	return inv, nil
}
