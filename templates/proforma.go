package templates

import (
	"github.com/a-h/templ"

	"aviationops/services"
)

// ProformaData is the proforma form with any validation errors.
type ProformaData struct {
	Form    services.ProformaForm
	Errors  map[string]string
	Preview *services.ProformaInvoice // nil until the form parses
}

// ProformaContent renders the proforma invoice form. Print and PDF submit the
// same form to different endpoints.
func ProformaContent(data ProformaData) templ.Component {
	return component(func(h *htmlWriter) {
		f := data.Form
		h.open("section", "class", "proforma")
		h.open("div", "class", "page-header")
		h.el("h1", "Proforma Invoice")
		h.close("div")

		h.open("form", "id", "proforma-form", "method", "post", "action", "/proforma/print",
			"target", "_blank", "hx-boost", "false",
			"hx-post", "/proforma/preview", "hx-trigger", "input changed delay:300ms",
			"hx-target", "#proforma-preview")

		h.open("fieldset")
		h.el("legend", "Dados do Cliente")
		input(h, "Cliente", "cliente", "text", f.Client, data.Errors)
		input(h, "Operador", "operador", "text", f.Operator, data.Errors)
		input(h, "Email", "email", "email", f.Email, data.Errors)
		input(h, "Telefone", "telefone", "tel", f.Phone, data.Errors)
		h.close("fieldset")

		h.open("fieldset")
		h.el("legend", "Voo")
		input(h, "Data do Voo", "dataVoo", "date", f.FlightDate, data.Errors)
		input(h, "Data", "data", "date", f.InvoiceDate, data.Errors)
		input(h, "Dólar do Dia (R$)", "dolarDia", "text", f.DollarRate, data.Errors, "inputmode", "decimal")
		h.close("fieldset")

		h.open("fieldset")
		h.el("legend", "Serviço")
		h.open("label", "class", "form-field")
		h.el("span", "Descrição")
		h.el("textarea", f.Description, "name", "descricao", "rows", "3")
		h.close("label")
		input(h, "Quantidade", "quantidade", "number", f.Quantity, data.Errors, "min", "0", "step", "1")
		input(h, "Valor Unitário (US$)", "valorUnitario", "text", f.UnitPrice, data.Errors, "inputmode", "decimal")
		h.close("fieldset")

		h.open("div", "id", "proforma-preview")
		if data.Preview != nil {
			h.render(ProformaPreview(*data.Preview))
		}
		h.close("div")

		h.open("div", "class", "actions")
		h.el("button", "Imprimir", "type", "submit", "class", "btn")
		h.el("button", "Gerar PDF", "type", "submit", "class", "btn btn-secondary",
			"formaction", "/proforma/export/pdf", "formtarget", "_self")
		h.close("div")
		h.close("form")
		h.close("section")
	})
}

func ProformaPage(data ProformaData, header HeaderData, sidebar SidebarData) templ.Component {
	return Page("Proforma Invoice", header, sidebar, ProformaContent(data))
}

// ProformaPreview shows the computed totals for the current form.
func ProformaPreview(inv services.ProformaInvoice) templ.Component {
	return component(func(h *htmlWriter) {
		h.open("div", "class", "proforma-totals")
		summaryLine(h, "TOTAL (USD)", services.FormatUSD(inv.Total()), "total")
		if brl, ok := inv.TotalBRL(); ok {
			summaryLine(h, "TOTAL (BRL)", services.FormatBRL(brl), "brl")
		}
		h.el("p", services.AmountToWords(inv.Total()), "class", "amount-words")
		h.close("div")
	})
}

// ProformaPreviewInvalid lists the field errors in place of the totals.
func ProformaPreviewInvalid(errs map[string]string) templ.Component {
	return component(func(h *htmlWriter) {
		h.open("ul", "class", "proforma-errors")
		for _, field := range []string{"quantidade", "valorUnitario", "dolarDia", "email"} {
			if msg, ok := errs[field]; ok {
				h.el("li", msg, "data-field", field)
			}
		}
		h.close("ul")
	})
}

// ProformaPrint renders a standalone printable proforma invoice.
func ProformaPrint(companyName string, inv services.ProformaInvoice) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw("<!DOCTYPE html>")
		h.open("html", "lang", "pt-BR")
		h.open("head")
		h.raw(`<meta charset="utf-8">`)
		h.el("title", "Proforma Invoice "+inv.Number)
		h.raw(`<link rel="stylesheet" href="/static/css/print.css">`)
		h.close("head")
		h.open("body", "class", "print", "onload", "window.print()")

		h.open("header")
		h.el("h1", companyName)
		h.el("h2", "PROFORMA INVOICE")
		h.el("p", "Nº "+inv.Number, "class", "muted")
		h.close("header")

		h.open("dl", "class", "client")
		for _, d := range inv.Details() {
			h.el("dt", d.Label)
			h.el("dd", d.Value)
		}
		h.close("dl")

		h.open("table", "class", "table")
		h.raw(`<thead><tr><th>Descrição</th><th class="num">Qtd</th><th class="num">Valor Unit.</th><th class="num">Total</th></tr></thead>`)
		h.open("tbody")
		h.open("tr")
		h.el("td", services.OrPlaceholder(inv.Description))
		h.open("td", "class", "num")
		h.int(inv.Quantity)
		h.close("td")
		h.el("td", services.FormatUSD(inv.UnitPrice), "class", "num")
		h.el("td", services.FormatUSD(inv.Total()), "class", "num")
		h.close("tr")
		h.close("tbody")
		h.close("table")

		h.open("div", "class", "summary")
		summaryLine(h, "TOTAL (USD)", services.FormatUSD(inv.Total()), "total")
		if brl, ok := inv.TotalBRL(); ok {
			summaryLine(h, "TOTAL (BRL)", services.FormatBRL(brl), "brl")
		}
		h.close("div")
		h.el("p", "Amount in Words: "+services.AmountToWords(inv.Total()), "class", "amount-words")

		h.open("div", "class", "signatures")
		h.el("div", "Operador", "class", "signature")
		h.el("div", "Assinatura Autorizada", "class", "signature")
		h.close("div")

		h.close("body")
		h.close("html")
	})
}
