package templates

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"

	"aviationops/services"
	"aviationops/testhelpers"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	if err := c.Render(context.Background(), &b); err != nil {
		t.Fatalf("render: %v", err)
	}
	return b.String()
}

func TestPage_Shell(t *testing.T) {
	sidebar := SidebarData{Items: []NavItem{
		{Label: "Cotação", Href: "/cotacao", Active: true},
		{Label: "Clientes", Href: "/clientes", Count: 3},
	}}
	html := render(t, Page("Cotação", HeaderData{CompanyName: "Aero & Co"}, sidebar, Receipt("x", false)))

	testhelpers.AssertHTMLContains(t, html,
		"<title>Cotação | Aero &amp; Co</title>",
		`id="main-content"`,
		`id="toast-container"`,
		`class="nav-item active"`,
		`<span class="badge">3</span>`,
		`<pre id="receipt"`,
	)
}

func TestReceipt_Copy(t *testing.T) {
	html := render(t, Receipt("COTAÇÃO <1>", true))
	testhelpers.AssertHTMLContains(t, html, `data-copy="true"`, "COTAÇÃO &lt;1&gt;")
	testhelpers.AssertHTMLNotContains(t, render(t, Receipt("x", false)), "data-copy")
}

func TestCategoryTabs(t *testing.T) {
	tabs := CategoryTabs("/precos", []string{"Combustível", "Estacionamento"}, "Estacionamento")
	if len(tabs) != 2 {
		t.Fatalf("got %d tabs, want 2", len(tabs))
	}
	if tabs[0].Active || !tabs[1].Active {
		t.Errorf("active flags = %v, %v", tabs[0].Active, tabs[1].Active)
	}
	if !strings.HasPrefix(tabs[0].Href, "/precos?categoria=") {
		t.Errorf("href = %q", tabs[0].Href)
	}
}

func TestQuoteContent(t *testing.T) {
	fuel := services.PricingItem{ID: "fuel-1", Category: services.CategoryFuel, Service: "Jet A-1", Unit: "galão", Price: 7.5}
	park := services.PricingItem{ID: "park-1", Category: services.CategoryParking, Service: "Pernoite", Unit: "dia", Price: 100}
	selected := []services.SelectedItem{{Item: fuel, Quantity: 2}, {Item: park, Quantity: 1}}

	t.Run("with parking and exchange rate", func(t *testing.T) {
		html := render(t, QuoteContent(QuoteData{
			ActiveCategory: services.CategoryFuel,
			Items:          []QuoteItemView{{Item: fuel, Selected: true, Quantity: 2}},
			Selected:       selected,
			Client:         services.ClientInfo{Name: "João"},
			Totals:         services.CalcQuoteTotals(selected),
			ExchangeRate:   "5,00",
			HasBRL:         true,
			TotalBRL:       100,
		}))
		testhelpers.AssertHTMLContains(t, html,
			`hx-post="/cotacao/toggle/fuel-1?categoria=Combust%C3%ADvel"`,
			`hx-vals="{&#34;delta&#34;:&#34;-1&#34;}"`,
			"+ Taxa de Serviço (15%)",
			"Total em Reais",
			`value="João"`,
			`hx-post="/cotacao/receipt/copy"`,
		)
	})

	t.Run("empty selection hides actions", func(t *testing.T) {
		html := render(t, QuoteContent(QuoteData{Items: []QuoteItemView{{Item: fuel}}}))
		testhelpers.AssertHTMLContains(t, html, "Nenhum serviço selecionado.")
		testhelpers.AssertHTMLNotContains(t, html, "/cotacao/receipt/copy", "Estacionamento (base)", "Total em Reais")
	})
}

func TestQuotePrint(t *testing.T) {
	item := services.PricingItem{ID: "park-1", Category: services.CategoryParking, Service: "Pernoite", Unit: "dia", Price: 100}
	data := services.BuildQuotePrintData("Aviation Ops",
		services.ClientInfo{Name: "Maria", Date: "2026-03-05"},
		[]services.SelectedItem{{Item: item, Quantity: 1}}, "COT-123456")

	html := render(t, QuotePrint(data))
	testhelpers.AssertHTMLContains(t, html,
		"Cotação Nº COT-123456",
		"05/03/2026",
		"<dd>Maria</dd>",
		"Estacionamento (total)",
		"window.print()",
	)
	testhelpers.AssertHTMLNotContains(t, html, "<dt>Empresa</dt>")
}

func TestSavedQuotesContent(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		html := render(t, SavedQuotesContent(SavedQuotesData{}))
		testhelpers.AssertHTMLContains(t, html, "Nenhuma cotação salva.")
		testhelpers.AssertHTMLNotContains(t, html, "/cotacao/saved/export/excel")
	})

	t.Run("rows", func(t *testing.T) {
		html := render(t, SavedQuotesContent(SavedQuotesData{Quotes: []services.SavedQuote{{
			ID:          "q1",
			QuoteNumber: "COT-000001",
			ClientInfo:  services.ClientInfo{Name: "Ana", Date: "2026-01-02"},
			Total:       1234.5,
		}}}))
		testhelpers.AssertHTMLContains(t, html,
			`hx-delete="/cotacao/saved/q1"`,
			`hx-post="/cotacao/saved/q1/load"`,
			"COT-000001",
			"02/01/2026",
			"US$ 1.234,50",
		)
	})
}

func TestProformaContent_Errors(t *testing.T) {
	html := render(t, ProformaContent(ProformaData{
		Form:   services.ProformaForm{Quantity: "abc"},
		Errors: map[string]string{"quantidade": "Quantidade deve ser um número inteiro"},
	}))
	testhelpers.AssertHTMLContains(t, html,
		`value="abc"`,
		`data-field="quantidade"`,
		`formaction="/proforma/export/pdf"`,
	)
}

func TestProformaPrint(t *testing.T) {
	inv := services.ProformaInvoice{
		Number: "PI-20260105-001", Quantity: 2, UnitPrice: 50,
		ExchangeRate: 5, HasRate: true,
	}
	html := render(t, ProformaPrint("Aviation Ops", inv))
	testhelpers.AssertHTMLContains(t, html,
		"Nº PI-20260105-001",
		"<dd>-</dd>",
		"TOTAL (BRL)",
		"Amount in Words: "+services.AmountToWords(100),
	)
}

func TestFlightsContent(t *testing.T) {
	flights := []services.Flight{{
		ID: "1700000000000", Registration: "PR-ABC", AircraftType: "E55P - Embraer Phenom 300",
		FlightDate: "2026-05-10", Origin: "SBSP", Destination: "SBRJ",
	}}
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("list and stats", func(t *testing.T) {
		html := render(t, FlightsContent(FlightsData{Flights: flights, Stats: services.ComputeFlightStats(flights, now)}))
		testhelpers.AssertHTMLContains(t, html,
			"SBSP → SBRJ",
			"10/05/2026",
			`hx-get="/voos/1700000000000/edit"`,
			`hx-post="/voos"`,
			"Rota mais frequente: SBSP → SBRJ (1)",
		)
	})

	t.Run("editing posts to the flight", func(t *testing.T) {
		html := render(t, FlightsContent(FlightsData{Flights: flights, EditingID: "1700000000000"}))
		testhelpers.AssertHTMLContains(t, html, `hx-post="/voos/1700000000000"`, "Cancelar")
	})

	t.Run("empty", func(t *testing.T) {
		html := render(t, FlightsContent(FlightsData{}))
		testhelpers.AssertHTMLContains(t, html, "Nenhum voo confirmado.")
		testhelpers.AssertHTMLNotContains(t, html, "/voos/export/excel")
	})
}

func TestAircraftTypeList(t *testing.T) {
	html := render(t, AircraftTypeList(services.SearchAircraftTypes("phenom", 5)))
	testhelpers.AssertHTMLContains(t, html, `<datalist id="aircraft-types">`, `value="E55P - Embraer Phenom 300"`)
}

func TestClientsContent(t *testing.T) {
	clients := []services.Client{{
		ID: "CLI-00001", Operator: "Táxi Aéreo", DocumentType: services.DocumentCNPJ,
		Document: "11.222.333/0001-81", Email: "ops@example.com",
		RegisteredAt: time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC),
	}}

	t.Run("list", func(t *testing.T) {
		html := render(t, ClientsContent(ClientsData{Clients: clients, Total: 1}))
		testhelpers.AssertHTMLContains(t, html,
			"Cadastro de Clientes (1)",
			"CNPJ 11.222.333/0001-81",
			"03/02/2026",
			`hx-delete="/clientes/CLI-00001"`,
			`<option value="CNPJ" selected="selected">`,
		)
	})

	t.Run("cpf form", func(t *testing.T) {
		html := render(t, ClientsContent(ClientsData{Form: services.ClientForm{DocumentType: services.DocumentCPF}}))
		testhelpers.AssertHTMLContains(t, html, `placeholder="000.000.000-00"`, `<option value="CPF" selected="selected">`)
	})

	t.Run("search with no match", func(t *testing.T) {
		html := render(t, ClientsContent(ClientsData{Search: "zzz", Total: 1}))
		testhelpers.AssertHTMLContains(t, html, "Nenhum cliente encontrado")
	})
}

func TestClientImportResults(t *testing.T) {
	result := &services.ImportResult{
		TotalRows: 2, ErrorRows: 1,
		Errors: []services.ImportError{{Row: 3, Field: "E-mail", Message: "E-mail é obrigatório"}},
	}
	html := render(t, ClientImportResults(result, `[{"row":3}]`))
	testhelpers.AssertHTMLContains(t, html,
		"2 linhas lidas, 0 importadas, 1 com erro.",
		"<td>3</td>",
		`action="/clientes/import/errors"`,
		`value="[{&#34;row&#34;:3}]"`,
	)
}
