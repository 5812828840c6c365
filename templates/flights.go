package templates

import (
	"fmt"

	"github.com/a-h/templ"

	"aviationops/services"
)

// FlightsData is the flights portal: the list, its statistics and the
// add/edit form.
type FlightsData struct {
	Flights   []services.Flight
	Stats     services.FlightStats
	Form      services.FlightForm
	EditingID string // set while editing an existing flight
	Errors    map[string]string
}

// FlightsContent renders the portal.
func FlightsContent(data FlightsData) templ.Component {
	return component(func(h *htmlWriter) {
		h.open("section", "class", "flights", "id", "flights")
		h.open("div", "class", "page-header")
		h.el("h1", "Portal de Voos")
		if len(data.Flights) > 0 {
			h.el("a", "Exportar Excel", "href", "/voos/export/excel", "class", "btn btn-secondary", "hx-boost", "false")
		}
		h.close("div")

		flightStats(h, data.Stats)
		flightForm(h, data)
		flightTable(h, data.Flights)
		h.close("section")
	})
}

func statCard(h *htmlWriter, label string, value int) {
	h.open("div", "class", "stat-card")
	h.open("span", "class", "stat-value")
	h.int(value)
	h.close("span")
	h.el("span", label, "class", "stat-label")
	h.close("div")
}

func flightStats(h *htmlWriter, s services.FlightStats) {
	h.open("div", "class", "stats")
	statCard(h, "Total de voos", s.Total)
	statCard(h, "Próximos", s.Upcoming)
	statCard(h, "Realizados", s.Past)
	statCard(h, "Neste mês", s.ThisMonth)
	h.close("div")

	if s.TopRoute != "" {
		h.el("p", fmt.Sprintf("Rota mais frequente: %s (%d)", s.TopRoute, s.TopRouteCount), "class", "muted")
	}
	if len(s.ByOrigin) > 0 {
		h.open("ul", "class", "origin-counts")
		for _, o := range s.ByOrigin {
			h.el("li", fmt.Sprintf("%s: %d", o.Origin, o.Count))
		}
		h.close("ul")
	}
}

func flightForm(h *htmlWriter, data FlightsData) {
	action, title, submit := "/voos", "Novo Voo", "Adicionar"
	if data.EditingID != "" {
		action, title, submit = "/voos/"+data.EditingID, "Editar Voo", "Salvar"
	}
	f := data.Form

	h.open("form", "id", "flight-form", "class", "card", "hx-post", action, "hx-target", "#main-content")
	h.el("h2", title)
	input(h, "Prefixo", "prefixo", "text", f.Registration, data.Errors, "placeholder", "PR-ABC")

	h.open("label", "class", "form-field")
	h.el("span", "Tipo de Aeronave")
	h.open("input", "type", "text", "name", "tipoAeronave", "value", f.AircraftType, "list", "aircraft-types",
		"hx-get", "/voos/aircraft-types", "hx-trigger", "input changed delay:200ms",
		"hx-target", "#aircraft-types", "hx-swap", "outerHTML",
		"autocomplete", "off")
	h.raw(`<datalist id="aircraft-types"></datalist>`)
	fieldError(h, data.Errors, "tipoAeronave")
	h.close("label")

	input(h, "Data do Voo", "dataVoo", "date", f.FlightDate, data.Errors)
	input(h, "Origem", "origem", "text", f.Origin, data.Errors, "placeholder", "SBGR")
	input(h, "Destino", "destino", "text", f.Destination, data.Errors, "placeholder", "SBRJ")

	h.open("div", "class", "actions")
	h.el("button", submit, "type", "submit", "class", "btn")
	if data.EditingID != "" {
		h.el("a", "Cancelar", "href", "/voos", "class", "btn btn-secondary")
	}
	h.close("div")
	h.close("form")
}

func flightTable(h *htmlWriter, flights []services.Flight) {
	if len(flights) == 0 {
		h.el("p", "Nenhum voo confirmado.", "class", "empty")
		return
	}
	h.open("table", "class", "table")
	h.raw(`<thead><tr><th>Prefixo</th><th>Aeronave</th><th>Data</th><th>Rota</th><th></th></tr></thead>`)
	h.open("tbody")
	for _, f := range flights {
		h.open("tr", "id", "flight-"+f.ID)
		h.el("td", f.Registration)
		h.el("td", f.AircraftType)
		h.el("td", services.FormatDateBR(f.FlightDate))
		h.el("td", f.Route())
		h.open("td", "class", "row-actions")
		h.el("button", "Editar", "type", "button", "class", "btn btn-small",
			"hx-get", "/voos/"+f.ID+"/edit", "hx-target", "#main-content")
		h.el("button", "Excluir", "type", "button", "class", "btn btn-small btn-danger",
			"hx-delete", "/voos/"+f.ID, "hx-target", "#main-content",
			"hx-confirm", "Excluir o voo "+f.Registration+"?")
		h.close("td")
		h.close("tr")
	}
	h.close("tbody")
	h.close("table")
}

func FlightsPage(data FlightsData, header HeaderData, sidebar SidebarData) templ.Component {
	return Page("Portal de Voos", header, sidebar, FlightsContent(data))
}

// AircraftTypeList renders the autocomplete datalist for the aircraft type
// input.
func AircraftTypeList(types []services.AircraftType) templ.Component {
	return component(func(h *htmlWriter) {
		h.open("datalist", "id", "aircraft-types")
		for _, t := range types {
			h.open("option", "value", t.Label())
			h.close("option")
		}
		h.close("datalist")
	})
}
