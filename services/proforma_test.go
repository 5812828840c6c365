package services

import "testing"

func TestParseProformaForm(t *testing.T) {
	inv, err := ParseProformaForm(ProformaForm{
		Client:      "  Táxi Aéreo Ltda ",
		Operator:    "João",
		Email:       "ops@taxi.com.br",
		FlightDate:  "2025-03-07",
		InvoiceDate: "2025-03-08",
		DollarRate:  "5,00",
		Description: "Handling",
		Quantity:    "3",
		UnitPrice:   "1.234,56",
	})
	if err != nil {
		t.Fatalf("ParseProformaForm: %v", err)
	}
	if inv.Client != "Táxi Aéreo Ltda" || inv.Quantity != 3 || !floatClose(inv.UnitPrice, 1234.56) {
		t.Errorf("unexpected invoice: %+v", inv)
	}
	if !floatClose(inv.Total(), 3703.68) {
		t.Errorf("Total() = %v, want 3703.68", inv.Total())
	}
	brl, ok := inv.TotalBRL()
	if !ok || !floatClose(brl, 18518.4) {
		t.Errorf("TotalBRL() = %v, %v", brl, ok)
	}
}

func TestParseProformaForm_EmptyNumbersAreZero(t *testing.T) {
	inv, err := ParseProformaForm(ProformaForm{})
	if err != nil {
		t.Fatalf("ParseProformaForm: %v", err)
	}
	if inv.Quantity != 0 || inv.UnitPrice != 0 || inv.Total() != 0 {
		t.Errorf("expected zero amounts, got %+v", inv)
	}
	if _, ok := inv.TotalBRL(); ok {
		t.Error("TotalBRL should be unavailable without a rate")
	}
}

func TestParseProformaForm_Errors(t *testing.T) {
	tests := []struct {
		name  string
		form  ProformaForm
		field string
	}{
		{"fractional quantity", ProformaForm{Quantity: "1.5"}, "quantidade"},
		{"negative quantity", ProformaForm{Quantity: "-1"}, "quantidade"},
		{"text quantity", ProformaForm{Quantity: "dois"}, "quantidade"},
		{"bad price", ProformaForm{UnitPrice: "abc"}, "valorUnitario"},
		{"negative price", ProformaForm{UnitPrice: "-5"}, "valorUnitario"},
		{"nan price", ProformaForm{Quantity: "1", UnitPrice: "NaN"}, "valorUnitario"},
		{"infinite price", ProformaForm{Quantity: "1", UnitPrice: "Inf"}, "valorUnitario"},
		{"exponent price", ProformaForm{Quantity: "1", UnitPrice: "1e3"}, "valorUnitario"},
		{"total above limit", ProformaForm{Quantity: "2000000000000", UnitPrice: "1"}, "valorUnitario"},
		{"huge quantity", ProformaForm{Quantity: "9223372036854775807", UnitPrice: "1.000,00"}, "valorUnitario"},
		{"bad rate", ProformaForm{DollarRate: "cinco"}, "dolarDia"},
		{"nan rate", ProformaForm{DollarRate: "NaN"}, "dolarDia"},
		{"bad email", ProformaForm{Email: "ops@"}, "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseProformaForm(tt.form)
			verrs, ok := AsValidationErrors(err)
			if !ok {
				t.Fatalf("expected ValidationErrors, got %v", err)
			}
			if _, ok := verrs[tt.field]; !ok || len(verrs) != 1 {
				t.Errorf("errors = %v, want only %q", verrs, tt.field)
			}
		})
	}
}

func TestProformaInvoice_Details(t *testing.T) {
	inv := ProformaInvoice{Client: "Ana", FlightDate: "2025-03-07"}
	got := inv.Details()

	want := []ProformaDetail{
		{"Cliente", "Ana"},
		{"Operador", "-"},
		{"Email", "-"},
		{"Telefone", "-"},
		{"Data do Voo", "07/03/2025"},
		{"Dólar do Dia", "-"},
		{"Data", "-"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d details, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("detail %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	inv.ExchangeRate, inv.HasRate = 5.25, true
	if rate := inv.Details()[5].Value; rate != "R$ 5,25" {
		t.Errorf("rate detail = %q, want R$ 5,25", rate)
	}
}

func TestOrPlaceholder(t *testing.T) {
	if got := OrPlaceholder(""); got != ProformaPlaceholder {
		t.Errorf("OrPlaceholder(\"\") = %q", got)
	}
	if got := OrPlaceholder("x"); got != "x" {
		t.Errorf("OrPlaceholder(x) = %q", got)
	}
}

func TestParseProformaForm_TotalAtLimit(t *testing.T) {
	inv, err := ParseProformaForm(ProformaForm{Quantity: "1000000000000", UnitPrice: "1"})
	if err != nil {
		t.Fatalf("ParseProformaForm: %v", err)
	}
	if got := AmountToWords(inv.Total()); got != "One Trillion US Dollars Only" {
		t.Errorf("AmountToWords = %q", got)
	}
}
