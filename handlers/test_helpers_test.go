package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"aviationops/services"
)

var testNow = time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

// newTestEnv returns an Env over an in-memory store with the default
// catalog and a fixed clock.
func newTestEnv(t *testing.T) (*Env, *services.MemoryStore) {
	t.Helper()
	ctx := context.Background()
	kv := services.NewMemoryStore()

	quotes, err := services.NewQuoteStore(ctx, kv)
	if err != nil {
		t.Fatalf("NewQuoteStore: %v", err)
	}
	flights, err := services.NewFlightRegistry(ctx, kv)
	if err != nil {
		t.Fatalf("NewFlightRegistry: %v", err)
	}
	clients, err := services.NewClientRegistry(ctx, kv)
	if err != nil {
		t.Fatalf("NewClientRegistry: %v", err)
	}

	sessions := NewQuoteSessions("5,25")
	sessions.now = func() time.Time { return testNow }

	env := &Env{
		KV:                  kv,
		Catalog:             services.DefaultCatalog(),
		Bases:               services.DefaultBaseDirectory(),
		Quotes:              quotes,
		Flights:             flights,
		Clients:             clients,
		Sessions:            sessions,
		CompanyName:         "Aeroporto Executivo",
		DefaultExchangeRate: "5,25",
		Now:                 func() time.Time { return testNow },
	}
	return env, kv
}

// withSession attaches a fresh quote session to req and returns both.
func withSession(env *Env, req *http.Request) (*http.Request, *QuoteSession) {
	sess, _ := env.Sessions.Get("")
	ctx := context.WithValue(req.Context(), QuoteSessionKey, sess)
	return req.WithContext(ctx), sess
}

// htmx marks req as an HTMX request so handlers render fragments.
func htmx(req *http.Request) *http.Request {
	req.Header.Set("HX-Request", "true")
	return req
}
