package templates

import (
	"fmt"
	"net/url"

	"github.com/a-h/templ"

	"aviationops/services"
)

// QuoteItemView is one catalog row on the quote page.
type QuoteItemView struct {
	Item     services.PricingItem
	Selected bool
	Quantity int
}

// QuoteData is the state of one quote session.
type QuoteData struct {
	Tabs           []CategoryTab
	ActiveCategory string
	Items          []QuoteItemView
	Selected       []services.SelectedItem
	Client         services.ClientInfo
	Totals         services.Calculations
	ExchangeRate   string // as entered
	HasBRL         bool
	TotalBRL       float64
	Errors         map[string]string
}

func quoteActionURL(path, category string) string {
	if category == "" {
		return path
	}
	return path + "?categoria=" + url.QueryEscape(category)
}

// QuoteContent renders the client form, the catalog with selection controls
// and the running summary.
func QuoteContent(data QuoteData) templ.Component {
	return component(func(h *htmlWriter) {
		h.open("section", "class", "quote", "id", "quote")
		h.open("div", "class", "page-header")
		h.el("h1", "Cotação de Serviços")
		h.el("a", "Cotações salvas", "href", "/cotacao/saved", "class", "btn btn-secondary")
		h.close("div")

		quoteClientForm(h, data)

		h.open("div", "class", "quote-grid")
		h.open("div", "class", "quote-catalog")
		categoryTabs(h, data.Tabs)
		h.open("ul", "class", "item-list")
		for _, v := range data.Items {
			quoteItemRow(h, v, data.ActiveCategory)
		}
		h.close("ul")
		h.close("div")

		quoteSummary(h, data)
		h.close("div")

		h.raw(`<div id="receipt-panel"></div>`)
		h.close("section")
	})
}

func quoteClientForm(h *htmlWriter, data QuoteData) {
	h.open("form", "class", "client-form",
		"hx-post", quoteActionURL("/cotacao/client", data.ActiveCategory),
		"hx-trigger", "change", "hx-target", "#main-content")
	h.el("h2", "Dados do Cliente")
	input(h, "Cliente", "name", "text", data.Client.Name, data.Errors)
	input(h, "Empresa", "company", "text", data.Client.Company, data.Errors)
	input(h, "Aeronave", "aircraft", "text", data.Client.Aircraft, data.Errors)
	input(h, "Matrícula", "registration", "text", data.Client.Registration, data.Errors)
	input(h, "Data", "date", "date", data.Client.Date, data.Errors)
	input(h, "Dólar do dia (R$)", "dolarDia", "text", data.ExchangeRate, data.Errors, "inputmode", "decimal", "placeholder", "5,00")
	h.close("form")
}

func quoteItemRow(h *htmlWriter, v QuoteItemView, category string) {
	cls := "item"
	if v.Selected {
		cls += " selected"
	}
	h.open("li", "class", cls, "id", "item-"+v.Item.ID)

	h.open("button", "type", "button", "class", "toggle",
		"hx-post", quoteActionURL("/cotacao/toggle/"+v.Item.ID, category),
		"hx-target", "#main-content")
	if v.Selected {
		h.raw("✓")
	} else {
		h.raw("+")
	}
	h.close("button")

	h.open("div", "class", "item-info")
	h.el("strong", v.Item.Service)
	h.el("span", v.Item.Unit+" · "+services.FormatUSD(v.Item.Price), "class", "muted")
	if v.Item.Notes != "" {
		h.el("small", v.Item.Notes, "class", "notes")
	}
	h.close("div")

	if v.Selected {
		qtyURL := quoteActionURL("/cotacao/quantity/"+v.Item.ID, category)
		h.open("div", "class", "qty")
		h.el("button", "−", "type", "button", "hx-post", qtyURL, "hx-vals", `{"delta":"-1"}`, "hx-target", "#main-content")
		h.open("span", "class", "qty-value")
		h.int(v.Quantity)
		h.close("span")
		h.el("button", "+", "type", "button", "hx-post", qtyURL, "hx-vals", `{"delta":"1"}`, "hx-target", "#main-content")
		h.close("div")
	}
	h.close("li")
}

func summaryLine(h *htmlWriter, label, value, cls string) {
	h.open("div", "class", "summary-line "+cls)
	h.el("span", label)
	h.el("span", value)
	h.close("div")
}

func quoteSummary(h *htmlWriter, data QuoteData) {
	c := data.Totals
	h.open("aside", "class", "quote-summary", "id", "quote-summary")
	h.el("h2", fmt.Sprintf("Resumo (%d itens)", len(data.Selected)))

	if len(data.Selected) == 0 {
		h.el("p", "Nenhum serviço selecionado.", "class", "empty")
	}
	h.open("ul", "class", "selected-list")
	for _, si := range data.Selected {
		h.open("li")
		h.el("span", fmt.Sprintf("%dx %s", si.Quantity, si.Item.Service))
		h.el("span", services.FormatUSD(services.LineTotal(si.Item.Price, si.Quantity)), "class", "num")
		h.close("li")
	}
	h.close("ul")

	if c.OtherSubtotal > 0 {
		summaryLine(h, "Outros Serviços", services.FormatUSD(c.OtherSubtotal), "")
	}
	if c.ParkingSubtotal > 0 {
		summaryLine(h, "Estacionamento (base)", services.FormatUSD(c.ParkingSubtotal), "")
		summaryLine(h, "+ Taxa de Serviço (15%)", services.FormatUSD(c.ServiceFee), "fee")
		summaryLine(h, "+ Impostos Federais (16,62%)", services.FormatUSD(c.FederalTax), "fee")
		summaryLine(h, "Estacionamento (total)", services.FormatUSD(c.ParkingWithTaxes), "")
	}
	summaryLine(h, "VALOR TOTAL", services.FormatUSD(c.Total), "total")
	if data.HasBRL {
		summaryLine(h, "Total em Reais", services.FormatBRL(data.TotalBRL), "brl")
	}

	if len(data.Selected) > 0 {
		h.open("div", "class", "actions")
		h.el("button", "Copiar cotação", "type", "button", "class", "btn",
			"hx-post", "/cotacao/receipt/copy", "hx-target", "#receipt-panel")
		h.el("button", "Ver texto", "type", "button", "class", "btn btn-secondary",
			"hx-get", "/cotacao/receipt", "hx-target", "#receipt-panel")
		h.el("a", "Imprimir", "href", "/cotacao/print", "target", "_blank", "class", "btn btn-secondary", "hx-boost", "false")
		h.el("a", "PDF", "href", "/cotacao/export/pdf", "class", "btn btn-secondary", "hx-boost", "false")
		h.el("button", "Salvar", "type", "button", "class", "btn",
			"hx-post", quoteActionURL("/cotacao/save", data.ActiveCategory), "hx-target", "#main-content")
		h.el("button", "Limpar", "type", "button", "class", "btn btn-danger",
			"hx-post", quoteActionURL("/cotacao/clear", data.ActiveCategory), "hx-target", "#main-content",
			"hx-confirm", "Limpar a cotação atual?")
		h.close("div")
	}
	h.close("aside")
}

func QuotePage(data QuoteData, header HeaderData, sidebar SidebarData) templ.Component {
	return Page("Cotação", header, sidebar, QuoteContent(data))
}

// Receipt renders the plain-text quote. With copy set, the page script
// copies it to the browser clipboard once swapped in.
func Receipt(text string, toClipboard bool) templ.Component {
	return component(func(h *htmlWriter) {
		h.open("div", "class", "receipt-panel")
		if toClipboard {
			h.el("pre", text, "id", "receipt", "class", "receipt", "data-copy", "true")
		} else {
			h.el("pre", text, "id", "receipt", "class", "receipt")
		}
		h.close("div")
	})
}

// QuotePrint renders a standalone printable quote document.
func QuotePrint(data services.QuotePrintData) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw("<!DOCTYPE html>")
		h.open("html", "lang", "pt-BR")
		h.open("head")
		h.raw(`<meta charset="utf-8">`)
		h.el("title", "Cotação "+data.QuoteNumber)
		h.raw(`<link rel="stylesheet" href="/static/css/print.css">`)
		h.close("head")
		h.open("body", "class", "print", "onload", "window.print()")

		h.open("header")
		h.el("h1", data.CompanyName)
		h.el("h2", "COTAÇÃO DE SERVIÇOS AEROPORTUÁRIOS")
		h.el("p", "Cotação Nº "+data.QuoteNumber+" · Data: "+data.DateFormatted, "class", "muted")
		h.close("header")

		h.open("dl", "class", "client")
		for _, f := range []struct{ label, value string }{
			{"Cliente", data.Client.Name},
			{"Empresa", data.Client.Company},
			{"Aeronave", data.Client.Aircraft},
			{"Matrícula", data.Client.Registration},
		} {
			if f.value == "" {
				continue
			}
			h.el("dt", f.label)
			h.el("dd", f.value)
		}
		h.close("dl")

		h.open("table", "class", "table")
		h.raw(`<thead><tr><th>Serviço</th><th>Unidade</th><th class="num">Qtd</th><th class="num">Valor Unit.</th><th class="num">Total</th></tr></thead>`)
		h.open("tbody")
		for _, g := range data.Groups {
			h.open("tr", "class", "category")
			h.el("td", g.Category, "colspan", "5")
			h.close("tr")
			for _, l := range g.Lines {
				h.open("tr")
				h.open("td")
				h.text(l.Service)
				if l.Notes != "" {
					h.el("small", l.Notes, "class", "notes")
				}
				h.close("td")
				h.el("td", l.Unit)
				h.open("td", "class", "num")
				h.int(l.Quantity)
				h.close("td")
				h.el("td", services.FormatUSD(l.UnitPrice), "class", "num")
				h.el("td", services.FormatUSD(l.LineTotal), "class", "num")
				h.close("tr")
			}
		}
		h.close("tbody")
		h.close("table")

		c := data.Totals
		h.open("div", "class", "summary")
		if c.OtherSubtotal > 0 {
			summaryLine(h, "Outros Serviços", services.FormatUSD(c.OtherSubtotal), "")
		}
		if c.ParkingSubtotal > 0 {
			summaryLine(h, "Estacionamento (base)", services.FormatUSD(c.ParkingSubtotal), "")
			summaryLine(h, "+ Taxa de Serviço (15%)", services.FormatUSD(c.ServiceFee), "fee")
			summaryLine(h, "+ Impostos Federais (16,62%)", services.FormatUSD(c.FederalTax), "fee")
			summaryLine(h, "Estacionamento (total)", services.FormatUSD(c.ParkingWithTaxes), "")
		}
		summaryLine(h, "VALOR TOTAL", services.FormatUSD(c.Total), "total")
		if data.HasBRL {
			summaryLine(h, fmt.Sprintf("Total em Reais (US$ 1,00 = %s)", services.FormatBRL(data.ExchangeRate)),
				services.FormatBRL(data.TotalBRL), "brl")
		}
		h.close("div")

		h.open("footer", "class", "notes")
		h.el("p", "Valores em USD (Dólar Americano). Cotação válida por 7 dias.")
		h.el("p", "Taxas de estacionamento incluem 15% de Taxa de Serviço e 16,62% de Impostos Federais.")
		h.el("p", "Sujeito à disponibilidade.")
		h.close("footer")

		h.close("body")
		h.close("html")
	})
}

// SavedQuotesData lists the persisted quotes.
type SavedQuotesData struct {
	Quotes []services.SavedQuote
}

// SavedQuotesContent renders the saved quote table.
func SavedQuotesContent(data SavedQuotesData) templ.Component {
	return component(func(h *htmlWriter) {
		h.open("section", "class", "saved-quotes")
		h.open("div", "class", "page-header")
		h.el("h1", "Cotações Salvas")
		h.el("a", "Nova cotação", "href", "/cotacao", "class", "btn btn-secondary")
		if len(data.Quotes) > 0 {
			h.el("a", "Exportar Excel", "href", "/cotacao/saved/export/excel", "class", "btn", "hx-boost", "false")
		}
		h.close("div")

		if len(data.Quotes) == 0 {
			h.el("p", "Nenhuma cotação salva.", "class", "empty")
			h.close("section")
			return
		}

		h.open("table", "class", "table")
		h.raw(`<thead><tr><th>Nº</th><th>Data</th><th>Cliente</th><th>Empresa</th><th class="num">Itens</th><th class="num">Total</th><th></th></tr></thead>`)
		h.open("tbody")
		for _, q := range data.Quotes {
			h.open("tr", "id", "quote-"+q.ID)
			h.el("td", q.QuoteNumber)
			h.el("td", services.FormatDateBR(q.ClientInfo.Date))
			h.el("td", q.ClientInfo.Name)
			h.el("td", q.ClientInfo.Company)
			h.open("td", "class", "num")
			h.int(len(q.SelectedItems))
			h.close("td")
			h.el("td", services.FormatUSD(q.Total), "class", "num")
			h.open("td", "class", "row-actions")
			h.el("button", "Carregar", "type", "button", "class", "btn btn-small",
				"hx-post", "/cotacao/saved/"+q.ID+"/load")
			h.el("button", "Excluir", "type", "button", "class", "btn btn-small btn-danger",
				"hx-delete", "/cotacao/saved/"+q.ID, "hx-target", "closest tr", "hx-swap", "outerHTML",
				"hx-confirm", "Excluir a cotação "+q.QuoteNumber+"?")
			h.close("td")
			h.close("tr")
		}
		h.close("tbody")
		h.close("table")
		h.close("section")
	})
}

func SavedQuotesPage(data SavedQuotesData, header HeaderData, sidebar SidebarData) templ.Component {
	return Page("Cotações Salvas", header, sidebar, SavedQuotesContent(data))
}
