package handlers

import (
	"net/http"
	"strings"

	"aviationops/templates"
)

// BuildSidebarData constructs the navigation for the current request, with
// live counts for the current quote, saved quotes, flights and clients.
func BuildSidebarData(r *http.Request, env *Env) templates.SidebarData {
	data := templates.SidebarData{ActivePath: r.URL.Path}

	selected := 0
	if sess := GetQuoteSession(r); sess != nil {
		sess.mu.Lock()
		selected = sess.Selection.Len()
		sess.mu.Unlock()
	}

	var savedCount, flightCount, clientCount int
	if env.Quotes != nil {
		savedCount = len(env.Quotes.List())
	}
	if env.Flights != nil {
		flightCount = len(env.Flights.List())
	}
	if env.Clients != nil {
		clientCount = env.Clients.Len()
	}

	data.Items = []templates.NavItem{
		{Label: "Central de Bases", Href: "/bases"},
		{Label: "Cotação", Href: "/cotacao", Count: selected},
		{Label: "Cotações Salvas", Href: "/cotacao/saved", Count: savedCount},
		{Label: "Tabela de Preços", Href: "/precos"},
		{Label: "Proforma Invoice", Href: "/proforma"},
		{Label: "Portal de Voos", Href: "/voos", Count: flightCount},
		{Label: "Clientes", Href: "/clientes", Count: clientCount},
	}

	// The longest matching prefix wins so /cotacao/saved does not also
	// light up /cotacao.
	best := -1
	for i, it := range data.Items {
		if pathHasPrefix(r.URL.Path, it.Href) && (best < 0 || len(it.Href) > len(data.Items[best].Href)) {
			best = i
		}
	}
	if best >= 0 {
		data.Items[best].Active = true
	}
	return data
}

func pathHasPrefix(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}
