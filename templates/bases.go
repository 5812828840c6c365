package templates

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"aviationops/services"
)

// BasesData is the base directory: network-wide stats, the active filter
// and the matching bases grouped by region.
type BasesData struct {
	Stats   services.BaseStats
	Filter  services.BaseFilter
	States  []string
	Regions []string
	Groups  []services.RegionGroup
	Matches int
}

// ExportHref links the Excel export with the active filter applied.
func (d BasesData) ExportHref() string {
	v := url.Values{}
	for key, val := range map[string]string{
		"q": d.Filter.Query, "status": d.Filter.Status, "estado": d.Filter.State, "regiao": d.Filter.Region,
	} {
		if val != "" && val != "all" {
			v.Set(key, val)
		}
	}
	if len(v) == 0 {
		return "/bases/export/excel"
	}
	return "/bases/export/excel?" + v.Encode()
}

// BasesContent renders the directory.
func BasesContent(data BasesData) templ.Component {
	return component(func(h *htmlWriter) {
		h.open("section", "class", "bases", "id", "bases")
		h.open("div", "class", "page-header")
		h.el("h1", "Central de Bases")
		if data.Matches > 0 {
			h.el("a", "Exportar Excel", "href", data.ExportHref(), "class", "btn btn-secondary", "hx-boost", "false")
		}
		h.close("div")

		h.open("div", "class", "stats")
		statCard(h, "Total de Bases", data.Stats.Total)
		statCard(h, "Operacionais", data.Stats.Operational)
		statCard(h, "Restritos", data.Stats.Restricted)
		statCard(h, "Fechados", data.Stats.Closed)
		h.close("div")

		baseFilterForm(h, data)

		if data.Matches == 1 {
			h.el("p", "1 base encontrada", "class", "muted result-count")
		} else {
			h.el("p", fmt.Sprintf("%d bases encontradas", data.Matches), "class", "muted result-count")
		}

		if data.Matches == 0 {
			h.open("div", "class", "empty-state")
			h.el("h3", "Nenhuma base encontrada")
			h.el("p", "Tente ajustar os filtros de busca", "class", "muted")
			h.close("div")
		}
		for _, g := range data.Groups {
			h.open("section", "class", "region-group", "data-region", g.Region)
			h.open("h2")
			h.text("Região " + g.Region + " ")
			noun := "bases"
			if len(g.Bases) == 1 {
				noun = "base"
			}
			h.el("span", fmt.Sprintf("(%d %s)", len(g.Bases), noun), "class", "muted")
			h.close("h2")
			h.open("div", "class", "base-grid")
			for _, b := range g.Bases {
				baseCard(h, b)
			}
			h.close("div")
			h.close("section")
		}
		h.close("section")
	})
}

func baseFilterForm(h *htmlWriter, data BasesData) {
	h.open("form", "class", "search filters", "hx-get", "/bases",
		"hx-trigger", "input changed delay:300ms from:input, change from:select, submit",
		"hx-target", "#main-content", "hx-push-url", "true")
	h.open("input", "type", "search", "name", "q", "value", data.Filter.Query,
		"placeholder", "Buscar por nome, código ICAO ou cidade...")

	statuses := []selectOption{{"all", "Todos os status"}}
	for _, s := range services.BaseStatuses {
		statuses = append(statuses, selectOption{string(s), s.Label()})
	}
	filterSelect(h, "status", statuses, data.Filter.Status)

	states := []selectOption{{"all", "Todos os estados"}}
	for _, s := range data.States {
		states = append(states, selectOption{s, s})
	}
	filterSelect(h, "estado", states, data.Filter.State)

	regions := []selectOption{{"all", "Todas as regiões"}}
	for _, r := range data.Regions {
		regions = append(regions, selectOption{r, r})
	}
	filterSelect(h, "regiao", regions, data.Filter.Region)
	h.close("form")
}

type selectOption struct {
	value, label string
}

// filterSelect marks the option whose value is current, or the first one when
// current is empty.
func filterSelect(h *htmlWriter, name string, options []selectOption, current string) {
	h.open("select", "name", name)
	for i, o := range options {
		if o.value == current || (current == "" && i == 0) {
			h.open("option", "value", o.value, "selected", "selected")
		} else {
			h.open("option", "value", o.value)
		}
		h.text(o.label)
		h.close("option")
	}
	h.close("select")
}

func statusBadge(h *htmlWriter, s services.BaseStatus) {
	h.el("span", s.Label(), "class", "status-badge status-"+string(s))
}

func baseCard(h *htmlWriter, b services.Base) {
	h.open("article", "class", "base-card", "data-base", b.ID)

	h.open("header", "class", "base-card-header")
	h.open("div")
	h.el("span", b.ICAO, "class", "icao")
	statusBadge(h, b.Status)
	h.el("h3", b.Name)
	h.el("p", b.City+", "+b.State, "class", "muted")
	h.close("div")
	hours := b.AirportHours
	h.el("span", services.FormatHours(&hours), "class", "base-hours")
	h.close("header")

	if b.Notes != "" && b.Status != services.BaseOperational {
		h.el("p", b.Notes, "class", "base-alert")
	}

	h.open("div", "class", "base-section")
	h.el("h4", "Gerente Responsável")
	h.el("p", b.Manager.Name, "class", "strong")
	h.el("a", b.Manager.Phone, "href", "tel:"+b.Manager.Phone)
	if b.Manager.Email != "" {
		h.raw(" ")
		h.el("a", b.Manager.Email, "href", "mailto:"+b.Manager.Email)
	}
	h.close("div")

	h.open("div", "class", "base-authorities")
	authority(h, "Polícia Federal", b.FederalPolice)
	authority(h, "Receita Federal", b.FederalRevenue)
	h.close("div")

	h.open("div", "class", "base-section")
	h.el("h4", "Capacidade da Base")
	h.open("div", "class", "stats capacity")
	capacityCard(h, formatMeasure(b.Capacity.MaxAircraftLength)+"m", "Comprimento máx.")
	capacityCard(h, formatMeasure(b.Capacity.MaxAircraftWingspan)+"m", "Envergadura máx.")
	capacityCard(h, formatMeasure(b.Capacity.MaxAircraftWeight)+"t", "Peso máx.")
	capacityCard(h, strconv.Itoa(b.Capacity.ParkingSpots), "Posições")
	h.close("div")
	h.close("div")

	h.open("details", "class", "base-details")
	h.el("summary", "Mais detalhes")

	h.el("h4", "Serviços Disponíveis")
	h.open("div", "class", "chips")
	for _, s := range b.AvailableServices() {
		label := s.Name
		if s.Notes != "" {
			label += " *"
		}
		h.el("span", label, "class", "chip chip-on", "title", s.Notes)
	}
	for _, s := range b.UnavailableServices() {
		h.el("span", s.Name, "class", "chip chip-off", "title", s.Notes)
	}
	h.close("div")

	h.el("h4", "Equipamentos")
	h.open("div", "class", "chips")
	for _, eq := range b.Equipment {
		h.el("span", eq, "class", "chip")
	}
	h.close("div")

	hangar := "Sem hangar disponível"
	if n := b.Capacity.HangarCapacity; n > 0 {
		hangar = fmt.Sprintf("%d aeronaves", n)
	}
	h.open("p", "class", "hangar")
	h.el("span", "Capacidade do hangar", "class", "muted")
	h.raw(" ")
	h.el("strong", hangar)
	h.close("p")
	h.close("details")

	h.close("article")
}

func authority(h *htmlWriter, title string, a services.Authority) {
	h.open("div", "class", "base-section authority")
	h.el("h4", title)
	if !a.Present {
		h.el("span", "Não disponível", "class", "muted")
		h.close("div")
		return
	}
	h.el("span", "Presente", "class", "present")
	if a.Contact != nil {
		h.el("a", a.Contact.Phone, "href", "tel:"+a.Contact.Phone, "title", a.Contact.Name)
	}
	h.el("span", services.FormatHours(a.Hours), "class", "muted")
	h.close("div")
}

func capacityCard(h *htmlWriter, value, label string) {
	h.open("div", "class", "stat-card")
	h.el("span", value, "class", "stat-value")
	h.el("span", label, "class", "stat-label")
	h.close("div")
}

// formatMeasure drops the decimals of whole measures: 50 → "50", 12.5 → "12,5".
func formatMeasure(v float64) string {
	return strings.Replace(strconv.FormatFloat(v, 'f', -1, 64), ".", ",", 1)
}

func BasesPage(data BasesData, header HeaderData, sidebar SidebarData) templ.Component {
	return Page("Central de Bases", header, sidebar, BasesContent(data))
}
