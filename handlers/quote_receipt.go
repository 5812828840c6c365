package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"aviationops/services"
	"aviationops/templates"
)

// quotePrintData builds the print data for the session, with the BRL total
// when a valid rate is set. The caller holds sess.mu.
func quotePrintData(env *Env, sess *QuoteSession) services.QuotePrintData {
	data := services.BuildQuotePrintData(env.CompanyName, sess.Client, sess.Selection.Items(), sess.Number)
	if rate, ok, err := services.ParseExchangeRate(sess.ExchangeRate); err == nil && ok {
		data = data.WithExchangeRate(rate)
	}
	return data
}

// HandleQuoteReceipt renders the plain-text receipt.
// Route: GET /cotacao/receipt
func HandleQuoteReceipt(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess, err := requireSession(e)
		if sess == nil {
			return err
		}

		sess.mu.Lock()
		items := sess.Selection.Items()
		text := services.RenderReceipt(sess.Client, items, services.CalcQuoteTotals(items), sess.Number)
		sess.mu.Unlock()

		return templates.Receipt(text, false).Render(e.Request.Context(), e.Response)
	}
}

// HandleQuoteReceiptCopy copies the receipt. The server-side clipboard gets
// it when one is configured; the returned fragment asks the browser to copy
// it as well.
// Route: POST /cotacao/receipt/copy
func HandleQuoteReceiptCopy(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess, err := requireSession(e)
		if sess == nil {
			return err
		}

		sess.mu.Lock()
		items := sess.Selection.Items()
		info, number := sess.Client, sess.Number
		sess.mu.Unlock()

		if len(items) == 0 {
			return ErrorToast(e, http.StatusBadRequest, "Selecione ao menos um serviço")
		}

		var text string
		if env.Clipboard == nil {
			text = services.RenderReceipt(info, items, services.CalcQuoteTotals(items), number)
			SetToast(e, ToastSuccess, "Cotação copiada")
		} else if text, err = services.CopyReceipt(env.Clipboard, info, items, number); err != nil {
			// The browser still copies the returned receipt.
			log.Printf("quote_receipt_copy: %v", err)
			SetToast(e, ToastWarning, "Não foi possível copiar para a área de transferência do servidor")
		} else {
			SetToast(e, ToastSuccess, "Cotação copiada")
		}
		return templates.Receipt(text, true).Render(e.Request.Context(), e.Response)
	}
}

// HandleQuotePrint renders the printable quote document.
// Route: GET /cotacao/print
func HandleQuotePrint(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess, err := requireSession(e)
		if sess == nil {
			return err
		}

		sess.mu.Lock()
		data := quotePrintData(env, sess)
		sess.mu.Unlock()

		return templates.QuotePrint(data).Render(e.Request.Context(), e.Response)
	}
}

// HandleQuoteExportPDF downloads the quote as a PDF.
// Route: GET /cotacao/export/pdf
func HandleQuoteExportPDF(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess, err := requireSession(e)
		if sess == nil {
			return err
		}

		sess.mu.Lock()
		data := quotePrintData(env, sess)
		sess.mu.Unlock()

		pdf, err := services.GenerateQuotePDF(data)
		if err != nil {
			log.Printf("quote_export_pdf: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Erro ao gerar o PDF. Tente novamente.")
		}
		return sendPDF(e, fmt.Sprintf("Cotacao_%s.pdf", data.QuoteNumber), pdf)
	}
}
