package templates

import (
	"github.com/a-h/templ"
)

// HeaderData is shown at the top of every full page.
type HeaderData struct {
	CompanyName string
}

// NavItem is one sidebar entry. Count is shown as a badge when positive.
type NavItem struct {
	Label  string
	Href   string
	Count  int
	Active bool
}

// SidebarData holds the navigation for the current request.
type SidebarData struct {
	ActivePath string
	Items      []NavItem
}

// Page wraps content in the application shell: head, header, sidebar and the
// toast container driven by HX-Trigger showToast events.
func Page(title string, header HeaderData, sidebar SidebarData, content templ.Component) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw("<!DOCTYPE html>")
		h.open("html", "lang", "pt-BR")
		h.open("head")
		h.raw(`<meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.el("title", title+" | "+header.CompanyName)
		h.raw(`<link rel="stylesheet" href="/static/css/app.css">`)
		h.raw(`<script src="https://unpkg.com/htmx.org@2.0.4"></script>`)
		h.raw(`<script src="/static/js/toast.js" defer></script>`)
		h.close("head")
		h.open("body", "hx-boost", "true", "hx-target", "#main-content")

		h.open("header", "class", "app-header")
		h.el("a", header.CompanyName, "href", "/", "class", "brand")
		h.close("header")

		h.open("div", "class", "app-shell")
		h.open("nav", "class", "sidebar")
		h.open("ul")
		for _, it := range sidebar.Items {
			cls := "nav-item"
			if it.Active {
				cls += " active"
			}
			h.open("li", "class", cls)
			h.open("a", "href", it.Href)
			h.text(it.Label)
			if it.Count > 0 {
				h.open("span", "class", "badge")
				h.int(it.Count)
				h.close("span")
			}
			h.close("a")
			h.close("li")
		}
		h.close("ul")
		h.close("nav")

		h.open("main", "id", "main-content")
		h.render(content)
		h.close("main")
		h.close("div")

		h.raw(`<div id="toast-container" aria-live="polite"></div>`)
		h.close("body")
		h.close("html")
	})
}
