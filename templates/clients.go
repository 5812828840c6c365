package templates

import (
	"fmt"

	"github.com/a-h/templ"

	"aviationops/services"
)

// ClientsData is the client registry page.
type ClientsData struct {
	Clients []services.Client
	Search  string
	Total   int // registered clients, before filtering
	Form    services.ClientForm
	Errors  map[string]string
}

// ClientsContent renders the registration form, the import panel and the
// searchable client list.
func ClientsContent(data ClientsData) templ.Component {
	return component(func(h *htmlWriter) {
		h.open("section", "class", "clients", "id", "clients")
		h.open("div", "class", "page-header")
		h.el("h1", fmt.Sprintf("Cadastro de Clientes (%d)", data.Total))
		h.el("a", "Modelo de importação", "href", "/clientes/template", "class", "btn btn-secondary", "hx-boost", "false")
		if data.Total > 0 {
			h.el("a", "Exportar Excel", "href", "/clientes/export/excel", "class", "btn btn-secondary", "hx-boost", "false")
		}
		h.close("div")

		clientForm(h, data)
		clientImportForm(h)

		h.open("form", "class", "search", "hx-get", "/clientes", "hx-trigger", "input changed delay:300ms, submit",
			"hx-target", "#main-content")
		h.open("input", "type", "search", "name", "q", "value", data.Search,
			"placeholder", "Buscar por operador, código ou documento")
		h.close("form")

		clientTable(h, data)
		h.close("section")
	})
}

func clientForm(h *htmlWriter, data ClientsData) {
	f := data.Form
	docType := f.DocumentType
	if docType == "" {
		docType = services.DocumentCNPJ
	}

	h.open("form", "id", "client-form", "class", "card", "hx-post", "/clientes", "hx-target", "#main-content")
	h.el("h2", "Novo Cliente")
	input(h, "Operador", "operador", "text", f.Operator, data.Errors)

	h.open("label", "class", "form-field")
	h.el("span", "Tipo de Documento")
	h.open("select", "name", "tipoDocumento")
	for _, t := range services.DocumentTypes {
		if t == docType {
			h.open("option", "value", t, "selected", "selected")
		} else {
			h.open("option", "value", t)
		}
		h.text(t)
		h.close("option")
	}
	h.close("select")
	h.close("label")

	placeholder := "00.000.000/0000-00"
	if docType == services.DocumentCPF {
		placeholder = "000.000.000-00"
	}
	input(h, docType, "documento", "text", f.Document, data.Errors, "placeholder", placeholder, "data-mask", docType)
	input(h, "Contato Operacional", "contatoOperacional", "text", f.OperationalContact, data.Errors)
	input(h, "E-mail", "email", "email", f.Email, data.Errors)
	input(h, "Telefone", "telefone", "tel", f.Phone, data.Errors, "placeholder", "(00) 00000-0000", "data-mask", "phone")

	h.open("div", "class", "actions")
	h.el("button", "Cadastrar", "type", "submit", "class", "btn")
	h.close("div")
	h.close("form")
}

func clientImportForm(h *htmlWriter) {
	h.open("form", "id", "client-import", "class", "card", "hx-post", "/clientes/import",
		"hx-encoding", "multipart/form-data", "hx-target", "#import-results")
	h.el("h2", "Importar Clientes")
	h.raw(`<input type="file" name="file" accept=".csv,.xlsx" required>`)
	h.el("button", "Importar", "type", "submit", "class", "btn")
	h.close("form")
	h.raw(`<div id="import-results"></div>`)
}

func clientTable(h *htmlWriter, data ClientsData) {
	if len(data.Clients) == 0 {
		if data.Search != "" {
			h.el("p", "Nenhum cliente encontrado para \""+data.Search+"\".", "class", "empty")
		} else {
			h.el("p", "Nenhum cliente cadastrado.", "class", "empty")
		}
		return
	}
	h.open("table", "class", "table")
	h.raw(`<thead><tr><th>Código</th><th>Operador</th><th>Documento</th><th>Contato</th><th>E-mail</th><th>Telefone</th><th>Cadastro</th><th></th></tr></thead>`)
	h.open("tbody")
	for _, c := range data.Clients {
		h.open("tr", "id", "client-"+c.ID)
		h.el("td", c.ID)
		h.el("td", c.Operator)
		h.el("td", c.DocumentType+" "+c.Document)
		h.el("td", c.OperationalContact)
		h.el("td", c.Email)
		h.el("td", c.Phone)
		h.el("td", c.RegisteredAt.Format("02/01/2006"))
		h.open("td", "class", "row-actions")
		h.el("button", "Excluir", "type", "button", "class", "btn btn-small btn-danger",
			"hx-delete", "/clientes/"+c.ID, "hx-target", "#main-content",
			"hx-confirm", "Excluir o cliente "+c.Operator+"?")
		h.close("td")
		h.close("tr")
	}
	h.close("tbody")
	h.close("table")
}

func ClientsPage(data ClientsData, header HeaderData, sidebar SidebarData) templ.Component {
	return Page("Clientes", header, sidebar, ClientsContent(data))
}

// ClientImportResults summarises an import. errorsJSON carries the row errors
// to the error report download.
func ClientImportResults(result *services.ImportResult, errorsJSON string) templ.Component {
	return component(func(h *htmlWriter) {
		h.open("div", "class", "import-results")
		h.el("p", fmt.Sprintf("%d linhas lidas, %d importadas, %d com erro.",
			result.TotalRows, len(result.Imported), result.ErrorRows))

		if len(result.Errors) > 0 {
			h.open("table", "class", "table import-errors")
			h.raw(`<thead><tr><th>Linha</th><th>Campo</th><th>Erro</th></tr></thead>`)
			h.open("tbody")
			for _, e := range result.Errors {
				h.open("tr")
				h.open("td")
				h.int(e.Row)
				h.close("td")
				h.el("td", e.Field)
				h.el("td", e.Message)
				h.close("tr")
			}
			h.close("tbody")
			h.close("table")

			h.open("form", "method", "post", "action", "/clientes/import/errors", "hx-boost", "false")
			h.open("input", "type", "hidden", "name", "errors_json", "value", errorsJSON)
			h.el("button", "Baixar relatório de erros", "type", "submit", "class", "btn btn-secondary")
			h.close("form")
		}

		if len(result.Imported) > 0 {
			h.el("a", "Atualizar lista", "href", "/clientes", "class", "btn")
		}
		h.close("div")
	})
}
