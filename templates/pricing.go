package templates

import (
	"net/url"

	"github.com/a-h/templ"

	"aviationops/services"
)

// CategoryTab is one category selector on the pricing and quote pages.
type CategoryTab struct {
	Name   string
	Href   string
	Active bool
}

// PricingData is the pricing table for the active category.
type PricingData struct {
	Tabs           []CategoryTab
	ActiveCategory string
	Items          []services.PricingItem
}

// CategoryTabs builds the tab strip linking basePath?categoria=<name>.
func CategoryTabs(basePath string, categories []string, active string) []CategoryTab {
	tabs := make([]CategoryTab, 0, len(categories))
	for _, c := range categories {
		tabs = append(tabs, CategoryTab{
			Name:   c,
			Href:   basePath + "?categoria=" + url.QueryEscape(c),
			Active: c == active,
		})
	}
	return tabs
}

func categoryTabs(h *htmlWriter, tabs []CategoryTab) {
	h.open("div", "class", "tabs", "role", "tablist")
	for _, t := range tabs {
		cls := "tab"
		if t.Active {
			cls += " active"
		}
		h.el("a", t.Name, "href", t.Href, "class", cls,
			"hx-get", t.Href, "hx-target", "#main-content", "hx-push-url", "true")
	}
	h.close("div")
}

// PricingContent renders the price table for one category.
func PricingContent(data PricingData) templ.Component {
	return component(func(h *htmlWriter) {
		h.open("section", "class", "pricing")
		h.open("div", "class", "page-header")
		h.el("h1", "Tabela de Preços")
		h.el("a", "Exportar Excel", "href", "/precos/export/excel", "class", "btn", "hx-boost", "false")
		h.close("div")

		categoryTabs(h, data.Tabs)

		h.open("table", "class", "table")
		h.raw("<thead><tr><th>Serviço</th><th>Unidade</th><th class=\"num\">Preço</th><th>Observações</th></tr></thead>")
		h.open("tbody")
		for _, it := range data.Items {
			h.open("tr", "data-item", it.ID)
			h.el("td", it.Service)
			h.el("td", it.Unit)
			h.el("td", services.FormatUSD(it.Price), "class", "num")
			h.el("td", it.Notes)
			h.close("tr")
		}
		h.close("tbody")
		h.close("table")

		if data.ActiveCategory == services.CategoryParking {
			h.el("p", "Estacionamento: acréscimo de 15% de Taxa de Serviço e 16,62% de Impostos Federais.", "class", "note")
		}
		h.close("section")
	})
}

func PricingPage(data PricingData, header HeaderData, sidebar SidebarData) templ.Component {
	return Page("Tabela de Preços", header, sidebar, PricingContent(data))
}
