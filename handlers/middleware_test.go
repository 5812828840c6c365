package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"aviationops/templates"
)

func TestGetQuoteSession_FromContext(t *testing.T) {
	expected := &QuoteSession{ID: "sess-1"}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), QuoteSessionKey, expected)
	req = req.WithContext(ctx)

	got := GetQuoteSession(req)
	if got == nil {
		t.Fatal("expected quote session, got nil")
	}
	if got.ID != "sess-1" {
		t.Errorf("expected ID %q, got %q", "sess-1", got.ID)
	}
}

func TestGetQuoteSession_NotInContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := GetQuoteSession(req); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestGetHeaderData_FromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), HeaderDataKey, templates.HeaderData{CompanyName: "ACME"})
	req = req.WithContext(ctx)

	if got := GetHeaderData(req); got.CompanyName != "ACME" {
		t.Errorf("expected company ACME, got %q", got.CompanyName)
	}
}

func TestGetHeaderData_NotInContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := GetHeaderData(req); got.CompanyName != "" {
		t.Errorf("expected empty header data, got %+v", got)
	}
}

func TestGetSidebarData_NotInContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	got := GetSidebarData(req)
	if got.ActivePath != "" || len(got.Items) != 0 {
		t.Errorf("expected zero sidebar data, got %+v", got)
	}
}

func TestQuoteSessionMiddleware_NewSessionSetsCookie(t *testing.T) {
	env, _ := newTestEnv(t)
	req := httptest.NewRequest(http.MethodGet, "/cotacao", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(nil, req, rec)

	if err := QuoteSessionMiddleware(env)(e); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}

	sess := GetQuoteSession(e.Request)
	if sess == nil {
		t.Fatal("expected session in context")
	}

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == quoteSessionCookie {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("expected quote_session cookie")
	}
	if cookie.Value != sess.ID {
		t.Errorf("cookie value %q, want session ID %q", cookie.Value, sess.ID)
	}
	if !cookie.HttpOnly {
		t.Error("expected HttpOnly cookie")
	}

	if got := GetHeaderData(e.Request).CompanyName; got != env.CompanyName {
		t.Errorf("header company = %q, want %q", got, env.CompanyName)
	}
	if got := GetSidebarData(e.Request).ActivePath; got != "/cotacao" {
		t.Errorf("sidebar active path = %q, want /cotacao", got)
	}
}

func TestQuoteSessionMiddleware_ReusesExistingSession(t *testing.T) {
	env, _ := newTestEnv(t)
	existing, _ := env.Sessions.Get("")

	req := httptest.NewRequest(http.MethodGet, "/cotacao", nil)
	req.AddCookie(&http.Cookie{Name: quoteSessionCookie, Value: existing.ID})
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(nil, req, rec)

	if err := QuoteSessionMiddleware(env)(e); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if got := GetQuoteSession(e.Request); got != existing {
		t.Error("expected the existing session to be reused")
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("expected no cookie for an existing session")
	}
}
