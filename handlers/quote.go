package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"aviationops/services"
	"aviationops/templates"
)

// buildQuoteData snapshots the session for rendering. The caller holds
// sess.mu.
func buildQuoteData(env *Env, sess *QuoteSession, category string) templates.QuoteData {
	selected := sess.Selection.Items()
	totals := services.CalcQuoteTotals(selected)

	var views []templates.QuoteItemView
	for _, it := range env.Catalog.ByCategory(category) {
		views = append(views, templates.QuoteItemView{
			Item:     it,
			Selected: sess.Selection.IsSelected(it.ID),
			Quantity: sess.Selection.Quantity(it.ID),
		})
	}

	data := templates.QuoteData{
		Tabs:           templates.CategoryTabs("/cotacao", env.Catalog.Categories(), category),
		ActiveCategory: category,
		Items:          views,
		Selected:       selected,
		Client:         sess.Client,
		Totals:         totals,
		ExchangeRate:   sess.ExchangeRate,
	}

	rate, ok, err := services.ParseExchangeRate(sess.ExchangeRate)
	if err != nil {
		data.Errors = map[string]string{"dolarDia": "Cotação do dólar inválida"}
	} else if ok {
		data.HasBRL = true
		data.TotalBRL = services.ConvertToBRL(totals.Total, rate)
	}
	return data
}

// renderQuote renders the quote page, or just its content for HTMX requests.
// The caller holds sess.mu.
func renderQuote(e *core.RequestEvent, env *Env, sess *QuoteSession) error {
	data := buildQuoteData(env, sess, activeCategory(e, env.Catalog))
	if e.Request.Header.Get("HX-Request") == "true" {
		return templates.QuoteContent(data).Render(e.Request.Context(), e.Response)
	}
	return templates.QuotePage(data, GetHeaderData(e.Request), GetSidebarData(e.Request)).
		Render(e.Request.Context(), e.Response)
}

// requireSession returns the request's quote session or writes an error.
func requireSession(e *core.RequestEvent) (*QuoteSession, error) {
	sess := GetQuoteSession(e.Request)
	if sess == nil {
		return nil, ErrorToast(e, http.StatusBadRequest, "Sessão de cotação não encontrada")
	}
	return sess, nil
}

// HandleQuote renders the quote builder.
// Route: GET /cotacao
func HandleQuote(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess, err := requireSession(e)
		if sess == nil {
			return err
		}
		sess.mu.Lock()
		defer sess.mu.Unlock()
		return renderQuote(e, env, sess)
	}
}

// HandleQuoteToggle adds or removes a catalog item from the selection.
// Route: POST /cotacao/toggle/{itemId}
func HandleQuoteToggle(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		item, ok := env.Catalog.Find(e.Request.PathValue("itemId"))
		if !ok {
			return ErrorToast(e, http.StatusNotFound, "Serviço não encontrado")
		}
		sess, err := requireSession(e)
		if sess == nil {
			return err
		}

		sess.mu.Lock()
		defer sess.mu.Unlock()
		sess.Selection.Toggle(item)
		return renderQuote(e, env, sess)
	}
}

// maxQuantityDelta bounds one quantity step posted by the builder.
const maxQuantityDelta = 1000

// HandleQuoteQuantity changes a selected item's quantity by the posted delta.
// Route: POST /cotacao/quantity/{itemId}
func HandleQuoteQuantity(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Dados inválidos")
		}
		delta, err := strconv.Atoi(strings.TrimSpace(e.Request.FormValue("delta")))
		if err != nil || delta < -maxQuantityDelta || delta > maxQuantityDelta {
			return ErrorToast(e, http.StatusBadRequest, "Quantidade inválida")
		}
		sess, err := requireSession(e)
		if sess == nil {
			return err
		}

		sess.mu.Lock()
		defer sess.mu.Unlock()
		sess.Selection.UpdateQuantity(e.Request.PathValue("itemId"), delta)
		return renderQuote(e, env, sess)
	}
}

// HandleQuoteClient stores the client fields and exchange rate as typed.
// Route: POST /cotacao/client
func HandleQuoteClient(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Dados inválidos")
		}
		sess, err := requireSession(e)
		if sess == nil {
			return err
		}

		sess.mu.Lock()
		defer sess.mu.Unlock()
		sess.Client = services.ClientInfo{
			Name:         strings.TrimSpace(e.Request.FormValue("name")),
			Company:      strings.TrimSpace(e.Request.FormValue("company")),
			Aircraft:     strings.TrimSpace(e.Request.FormValue("aircraft")),
			Registration: strings.ToUpper(strings.TrimSpace(e.Request.FormValue("registration"))),
			Date:         strings.TrimSpace(e.Request.FormValue("date")),
		}
		sess.ExchangeRate = strings.TrimSpace(e.Request.FormValue("dolarDia"))
		return renderQuote(e, env, sess)
	}
}

// HandleQuoteClear empties the selection and client data.
// Route: POST /cotacao/clear
func HandleQuoteClear(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess, err := requireSession(e)
		if sess == nil {
			return err
		}

		sess.mu.Lock()
		defer sess.mu.Unlock()
		sess.reset(env.now())
		SetToast(e, ToastInfo, "Cotação limpa")
		return renderQuote(e, env, sess)
	}
}

// HandleQuoteSave persists the current quote and starts a new one.
// Route: POST /cotacao/save
func HandleQuoteSave(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess, err := requireSession(e)
		if sess == nil {
			return err
		}

		sess.mu.Lock()
		defer sess.mu.Unlock()

		saved, err := env.Quotes.Save(e.Request.Context(), sess.Client, sess.Selection.Items())
		if verrs, ok := services.AsValidationErrors(err); ok {
			SetToast(e, ToastWarning, firstMessage(verrs, "name", "items"))
			e.Response.Header().Set("HX-Reswap", "none")
			return e.String(http.StatusUnprocessableEntity, verrs.Error())
		}
		if err != nil {
			return storageError(e, "quote_save", err)
		}

		sess.reset(env.now())
		SetToast(e, ToastSuccess, "Cotação "+saved.QuoteNumber+" salva")
		return renderQuote(e, env, sess)
	}
}

// firstMessage returns the message of the first field in order that has one.
func firstMessage(verrs services.ValidationErrors, order ...string) string {
	for _, f := range order {
		if msg, ok := verrs[f]; ok {
			return msg
		}
	}
	return verrs.Error()
}
