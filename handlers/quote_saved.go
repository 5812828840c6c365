package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"aviationops/services"
	"aviationops/templates"
)

// HandleSavedQuotes lists the saved quotes.
// Route: GET /cotacao/saved
func HandleSavedQuotes(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.SavedQuotesData{Quotes: env.Quotes.List()}
		if e.Request.Header.Get("HX-Request") == "true" {
			return templates.SavedQuotesContent(data).Render(e.Request.Context(), e.Response)
		}
		return templates.SavedQuotesPage(data, GetHeaderData(e.Request), GetSidebarData(e.Request)).
			Render(e.Request.Context(), e.Response)
	}
}

// HandleSavedQuoteDelete removes a saved quote. The row is swapped out by
// the empty response.
// Route: DELETE /cotacao/saved/{id}
func HandleSavedQuoteDelete(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		err := env.Quotes.Delete(e.Request.Context(), e.Request.PathValue("id"))
		if errors.Is(err, services.ErrNotFound) {
			return ErrorToast(e, http.StatusNotFound, "Cotação não encontrada")
		}
		if err != nil {
			return storageError(e, "saved_quote_delete", err)
		}
		SetToast(e, ToastSuccess, "Cotação excluída")
		return e.String(http.StatusOK, "")
	}
}

// HandleSavedQuoteLoad copies a saved quote into the session so it can be
// reviewed, printed or saved again.
// Route: POST /cotacao/saved/{id}/load
func HandleSavedQuoteLoad(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q, ok := env.Quotes.Get(e.Request.PathValue("id"))
		if !ok {
			return ErrorToast(e, http.StatusNotFound, "Cotação não encontrada")
		}
		sess, err := requireSession(e)
		if sess == nil {
			return err
		}

		sess.mu.Lock()
		sess.Selection.Clear()
		for _, si := range q.SelectedItems {
			sess.Selection.Toggle(si.Item)
			sess.Selection.UpdateQuantity(si.Item.ID, si.Quantity-1)
		}
		sess.Client = q.ClientInfo
		sess.Number = q.QuoteNumber
		sess.mu.Unlock()

		SetToast(e, ToastInfo, "Cotação "+q.QuoteNumber+" carregada")
		e.Response.Header().Set("HX-Redirect", "/cotacao")
		return e.String(http.StatusOK, "")
	}
}

// HandleSavedQuotesExportExcel downloads every saved quote.
// Route: GET /cotacao/saved/export/excel
func HandleSavedQuotesExportExcel(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		xlsx, err := services.GenerateSavedQuotesExcel(env.Quotes.List())
		if err != nil {
			log.Printf("saved_quotes_export: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Erro ao gerar a planilha. Tente novamente.")
		}
		return sendXLSX(e, fmt.Sprintf("Cotacoes_Salvas_%s.xlsx", env.now().Format("2006-01-02")), xlsx)
	}
}
