package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"aviationops/services"
	"aviationops/templates"
)

func proformaFormFromRequest(e *core.RequestEvent) services.ProformaForm {
	v := func(name string) string { return strings.TrimSpace(e.Request.FormValue(name)) }
	return services.ProformaForm{
		Client:      v("cliente"),
		Operator:    v("operador"),
		Email:       v("email"),
		Phone:       v("telefone"),
		FlightDate:  v("dataVoo"),
		InvoiceDate: v("data"),
		DollarRate:  v("dolarDia"),
		Description: v("descricao"),
		Quantity:    v("quantidade"),
		UnitPrice:   v("valorUnitario"),
	}
}

func renderProforma(e *core.RequestEvent, data templates.ProformaData) error {
	if e.Request.Header.Get("HX-Request") == "true" {
		return templates.ProformaContent(data).Render(e.Request.Context(), e.Response)
	}
	return templates.ProformaPage(data, GetHeaderData(e.Request), GetSidebarData(e.Request)).
		Render(e.Request.Context(), e.Response)
}

// HandleProforma renders an empty proforma form dated today.
// Route: GET /proforma
func HandleProforma(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.ProformaData{Form: services.ProformaForm{
			InvoiceDate: env.now().Format(time.DateOnly),
			DollarRate:  env.DefaultExchangeRate,
			Quantity:    "1",
		}}
		return renderProforma(e, data)
	}
}

// HandleProformaPreview recomputes the totals as the form is edited.
// Route: POST /proforma/preview
func HandleProformaPreview(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Dados inválidos")
		}
		inv, err := services.ParseProformaForm(proformaFormFromRequest(e))
		if verrs, ok := services.AsValidationErrors(err); ok {
			return templates.ProformaPreviewInvalid(verrs).Render(e.Request.Context(), e.Response)
		}
		return templates.ProformaPreview(inv).Render(e.Request.Context(), e.Response)
	}
}

// parseProformaRequest parses the posted form and assigns the next invoice
// number. On a validation error the form is re-rendered with the messages
// and ok is false.
func parseProformaRequest(e *core.RequestEvent, env *Env, op string) (inv services.ProformaInvoice, ok bool, err error) {
	if err := e.Request.ParseForm(); err != nil {
		return inv, false, ErrorToast(e, http.StatusBadRequest, "Dados inválidos")
	}
	form := proformaFormFromRequest(e)

	inv, err = services.ParseProformaForm(form)
	if verrs, isValidation := services.AsValidationErrors(err); isValidation {
		return inv, false, renderProforma(e, templates.ProformaData{Form: form, Errors: verrs})
	}

	env.proformaMu.Lock()
	defer env.proformaMu.Unlock()
	inv.Number, err = services.NextProformaNumber(e.Request.Context(), env.KV, env.now())
	if err != nil {
		return inv, false, storageError(e, op, err)
	}
	return inv, true, nil
}

// HandleProformaPrint renders the printable proforma invoice.
// Route: POST /proforma/print
func HandleProformaPrint(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		inv, ok, err := parseProformaRequest(e, env, "proforma_print")
		if !ok {
			return err
		}
		return templates.ProformaPrint(env.CompanyName, inv).Render(e.Request.Context(), e.Response)
	}
}

// HandleProformaExportPDF downloads the proforma invoice as a PDF.
// Route: POST /proforma/export/pdf
func HandleProformaExportPDF(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		inv, ok, err := parseProformaRequest(e, env, "proforma_export_pdf")
		if !ok {
			return err
		}
		pdf, err := services.GenerateProformaPDF(env.CompanyName, inv)
		if err != nil {
			log.Printf("proforma_export_pdf: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Erro ao gerar o PDF. Tente novamente.")
		}
		return sendPDF(e, fmt.Sprintf("Proforma_%s.pdf", inv.Number), pdf)
	}
}
