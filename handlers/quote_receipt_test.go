package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"aviationops/services"
	"aviationops/testhelpers"
)

func TestHandleQuoteReceipt(t *testing.T) {
	env, _ := newTestEnv(t)
	req, sess := withSession(env, httptest.NewRequest(http.MethodGet, "/cotacao/receipt", nil))
	selectItem(t, env, sess, "1")
	sess.Client.Name = "Ana"
	rec := httptest.NewRecorder()

	if err := HandleQuoteReceipt(env)(newTestRequestEvent(nil, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body, `id="receipt"`, "JET-A1", "Ana", sess.Number)
	testhelpers.AssertHTMLNotContains(t, body, "data-copy")
}

func TestHandleQuoteReceiptCopy(t *testing.T) {
	env, _ := newTestEnv(t)
	cb := &services.MemoryClipboard{}
	env.Clipboard = cb
	req, sess := withSession(env, httptest.NewRequest(http.MethodPost, "/cotacao/receipt/copy", nil))
	selectItem(t, env, sess, "1")
	rec := httptest.NewRecorder()

	if err := HandleQuoteReceiptCopy(env)(newTestRequestEvent(nil, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(), `data-copy="true"`)
	if !strings.Contains(cb.Text(), "JET-A1") {
		t.Errorf("clipboard = %q, want the receipt", cb.Text())
	}
}

type unavailableClipboard struct{}

func (unavailableClipboard) WriteText(string) error { return services.ErrClipboardUnsupported }

func TestHandleQuoteReceiptCopy_ClipboardFailure(t *testing.T) {
	env, _ := newTestEnv(t)
	env.Clipboard = unavailableClipboard{}
	req, sess := withSession(env, httptest.NewRequest(http.MethodPost, "/cotacao/receipt/copy", nil))
	selectItem(t, env, sess, "1")
	rec := httptest.NewRecorder()

	if err := HandleQuoteReceiptCopy(env)(newTestRequestEvent(nil, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(), `data-copy="true"`, "JET-A1")
	trigger := rec.Header().Get("HX-Trigger")
	if !strings.Contains(trigger, `"type":"warning"`) {
		t.Errorf("HX-Trigger = %q, want a warning toast", trigger)
	}
	if strings.Contains(trigger, asciiJSONString("Cotação copiada")) {
		t.Errorf("HX-Trigger = %q, should not report success", trigger)
	}
}

func TestHandleQuoteReceiptCopy_Empty(t *testing.T) {
	env, _ := newTestEnv(t)
	cb := &services.MemoryClipboard{}
	env.Clipboard = cb
	req, _ := withSession(env, httptest.NewRequest(http.MethodPost, "/cotacao/receipt/copy", nil))
	rec := httptest.NewRecorder()

	HandleQuoteReceiptCopy(env)(newTestRequestEvent(nil, req, rec))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if cb.Text() != "" {
		t.Error("clipboard should be untouched")
	}
}

func TestHandleQuotePrint(t *testing.T) {
	env, _ := newTestEnv(t)
	req, sess := withSession(env, httptest.NewRequest(http.MethodGet, "/cotacao/print", nil))
	selectItem(t, env, sess, "4")
	rec := httptest.NewRecorder()

	if err := HandleQuotePrint(env)(newTestRequestEvent(nil, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"<!DOCTYPE html>",
		env.CompanyName,
		"+ Taxa de Serviço (15%)",
		"window.print()",
	)
}

func TestHandleQuoteExportPDF(t *testing.T) {
	env, _ := newTestEnv(t)
	req, sess := withSession(env, httptest.NewRequest(http.MethodGet, "/cotacao/export/pdf", nil))
	selectItem(t, env, sess, "1")
	rec := httptest.NewRecorder()

	if err := HandleQuoteExportPDF(env)(newTestRequestEvent(nil, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "Cotacao_"+sess.Number+".pdf") {
		t.Errorf("Content-Disposition = %q", cd)
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF") {
		t.Error("expected a PDF body")
	}
}
