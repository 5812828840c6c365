package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"aviationops/services"
	"aviationops/testhelpers"
)

const importCSV = `Operador *,Tipo de Documento,Documento *,Contato Operacional,E-mail *,Telefone
Táxi Aéreo,CNPJ,11222333000181,Maria,ops@taxi.com,11987654321
,CNPJ,123,,bad,
`

func uploadRequest(t *testing.T, filename string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	part.Write(content)
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/clientes/import", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestHandleClientImport(t *testing.T) {
	env, _ := newTestEnv(t)
	rec := httptest.NewRecorder()
	req := uploadRequest(t, "clientes.csv", []byte(importCSV))

	if err := HandleClientImport(env)(newTestRequestEvent(nil, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if env.Clients.Len() != 1 {
		t.Errorf("expected 1 imported client, got %d", env.Clients.Len())
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"2 linhas lidas, 1 importadas, 1 com erro.",
		`name="errors_json"`,
	)
}

func TestHandleClientImport_BadFile(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  string
	}{
		{"unsupported extension", "clientes.txt", "whatever"},
		{"broken xlsx", "clientes.xlsx", "not a zip"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, _ := newTestEnv(t)
			rec := httptest.NewRecorder()
			req := uploadRequest(t, tt.filename, []byte(tt.content))

			HandleClientImport(env)(newTestRequestEvent(nil, req, rec))

			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", rec.Code)
			}
			if env.Clients.Len() != 0 {
				t.Error("nothing should be imported")
			}
		})
	}
}

func TestHandleClientImport_MissingFile(t *testing.T) {
	env, _ := newTestEnv(t)
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	w.WriteField("other", "x")
	w.Close()
	req := httptest.NewRequest(http.MethodPost, "/clientes/import", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()

	HandleClientImport(env)(newTestRequestEvent(nil, req, rec))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandleClientErrorReport(t *testing.T) {
	env, _ := newTestEnv(t)
	payload, _ := json.Marshal([]services.ImportError{
		{Row: 3, Field: "E-mail", Message: "E-mail é obrigatório"},
	})
	req := formRequest(http.MethodPost, "/clientes/import/errors", url.Values{"errors_json": {string(payload)}})
	rec := httptest.NewRecorder()

	if err := HandleClientErrorReport(env)(newTestRequestEvent(nil, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	assertXLSXDownload(t, rec, "Clientes_Erros_2026-03-15.xlsx")
}

func TestHandleClientErrorReport_InvalidJSON(t *testing.T) {
	env, _ := newTestEnv(t)
	req := formRequest(http.MethodPost, "/clientes/import/errors", url.Values{"errors_json": {"{"}})
	rec := httptest.NewRecorder()

	HandleClientErrorReport(env)(newTestRequestEvent(nil, req, rec))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandleClientTemplateDownload(t *testing.T) {
	env, _ := newTestEnv(t)
	req := httptest.NewRequest(http.MethodGet, "/clientes/template", nil)
	rec := httptest.NewRecorder()

	if err := HandleClientTemplateDownload(env)(newTestRequestEvent(nil, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	assertXLSXDownload(t, rec, "Modelo_Importacao_Clientes.xlsx")
}
