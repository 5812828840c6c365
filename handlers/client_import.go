package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"aviationops/services"
	"aviationops/templates"
)

// HandleClientImport registers the valid rows of an uploaded .csv or .xlsx
// file and reports the rest.
// Route: POST /clientes/import
func HandleClientImport(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		// Parse multipart form (max 10MB)
		if err := e.Request.ParseMultipartForm(10 << 20); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Arquivo muito grande ou formulário inválido")
		}

		file, header, err := e.Request.FormFile("file")
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Selecione um arquivo para importar")
		}
		defer file.Close()

		result, err := services.ImportClients(e.Request.Context(), env.Clients, file, header.Filename)
		if errors.Is(err, services.ErrInvalidImportFile) {
			log.Printf("client_import: %v", err)
			return ErrorToast(e, http.StatusBadRequest, "Não foi possível ler o arquivo. Use o modelo .xlsx ou um .csv com cabeçalho.")
		}
		if err != nil {
			return storageError(e, "client_import", err)
		}

		// Serialize row errors for the report download
		var errorsJSON string
		if len(result.Errors) > 0 {
			b, err := json.Marshal(result.Errors)
			if err != nil {
				log.Printf("client_import: marshal errors: %v", err)
			} else {
				errorsJSON = string(b)
			}
		}

		if n := len(result.Imported); n > 0 {
			SetToast(e, ToastSuccess, fmt.Sprintf("%d clientes importados", n))
		} else {
			SetToast(e, ToastWarning, "Nenhum cliente importado")
		}
		return templates.ClientImportResults(result, errorsJSON).Render(e.Request.Context(), e.Response)
	}
}

// HandleClientErrorReport downloads the import errors as an Excel file.
// Route: POST /clientes/import/errors
func HandleClientErrorReport(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Dados inválidos")
		}

		var importErrors []services.ImportError
		if err := json.Unmarshal([]byte(e.Request.FormValue("errors_json")), &importErrors); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Relatório de erros inválido")
		}

		xlsx, err := services.GenerateErrorReport(importErrors)
		if err != nil {
			log.Printf("client_error_report: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Erro ao gerar a planilha. Tente novamente.")
		}
		return sendXLSX(e, fmt.Sprintf("Clientes_Erros_%s.xlsx", env.now().Format("2006-01-02")), xlsx)
	}
}

// HandleClientTemplateDownload downloads the blank import template.
// Route: GET /clientes/template
func HandleClientTemplateDownload(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		xlsx, err := services.GenerateClientTemplate()
		if err != nil {
			log.Printf("client_template: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Erro ao gerar o modelo. Tente novamente.")
		}
		return sendXLSX(e, "Modelo_Importacao_Clientes.xlsx", xlsx)
	}
}
