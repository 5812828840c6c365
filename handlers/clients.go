package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"aviationops/services"
	"aviationops/templates"
)

func clientFormFromRequest(e *core.RequestEvent) services.ClientForm {
	return services.ClientForm{
		Operator:           e.Request.FormValue("operador"),
		Document:           e.Request.FormValue("documento"),
		DocumentType:       e.Request.FormValue("tipoDocumento"),
		OperationalContact: e.Request.FormValue("contatoOperacional"),
		Email:              e.Request.FormValue("email"),
		Phone:              e.Request.FormValue("telefone"),
	}
}

func clientsData(env *Env, search string) templates.ClientsData {
	search = strings.TrimSpace(search)
	return templates.ClientsData{
		Clients: env.Clients.Search(search),
		Search:  search,
		Total:   env.Clients.Len(),
	}
}

func renderClients(e *core.RequestEvent, data templates.ClientsData) error {
	if e.Request.Header.Get("HX-Request") == "true" {
		return templates.ClientsContent(data).Render(e.Request.Context(), e.Response)
	}
	return templates.ClientsPage(data, GetHeaderData(e.Request), GetSidebarData(e.Request)).
		Render(e.Request.Context(), e.Response)
}

// HandleClients renders the client registry, filtered by ?q=.
// Route: GET /clientes
func HandleClients(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return renderClients(e, clientsData(env, e.Request.URL.Query().Get("q")))
	}
}

// HandleClientSave registers a client.
// Route: POST /clientes
func HandleClientSave(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Dados inválidos")
		}
		form := clientFormFromRequest(e)

		c, err := env.Clients.Add(e.Request.Context(), form)
		if verrs, ok := services.AsValidationErrors(err); ok {
			data := clientsData(env, "")
			data.Form = form
			data.Errors = verrs
			SetToast(e, ToastWarning, "Verifique os campos destacados")
			return renderClients(e, data)
		}
		if err != nil {
			return storageError(e, "client_save", err)
		}

		SetToast(e, ToastSuccess, fmt.Sprintf("Cliente %s cadastrado (%s)", c.Operator, c.ID))
		return renderClients(e, clientsData(env, ""))
	}
}

// HandleClientDelete removes a client.
// Route: DELETE /clientes/{id}
func HandleClientDelete(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		err := env.Clients.Delete(e.Request.Context(), e.Request.PathValue("id"))
		if errors.Is(err, services.ErrNotFound) {
			return ErrorToast(e, http.StatusNotFound, "Cliente não encontrado")
		}
		if err != nil {
			return storageError(e, "client_delete", err)
		}
		SetToast(e, ToastSuccess, "Cliente excluído")
		return renderClients(e, clientsData(env, e.Request.URL.Query().Get("q")))
	}
}

// HandleClientsExportExcel downloads the client list.
// Route: GET /clientes/export/excel
func HandleClientsExportExcel(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		xlsx, err := services.GenerateListExcel(services.ClientsExportData(env.CompanyName, env.Clients.List()))
		if err != nil {
			log.Printf("clients_export: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Erro ao gerar a planilha. Tente novamente.")
		}
		return sendXLSX(e, fmt.Sprintf("Clientes_%s.xlsx", env.now().Format("2006-01-02")), xlsx)
	}
}
