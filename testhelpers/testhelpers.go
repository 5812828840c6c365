// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"context"
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"

	"aviationops/collections"
	"aviationops/services"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// NewTestStore returns a KVStore over the kv_store collection of a fresh
// test app, along with the app.
func NewTestStore(t *testing.T) (*pocketbase.PocketBase, services.KVStore) {
	t.Helper()
	app := NewTestApp(t)
	return app, services.NewPocketBaseStore(app)
}

// CreateTestFlight records a valid flight with the given registration and
// flight date and returns it.
func CreateTestFlight(t *testing.T, reg *services.FlightRegistry, registration, flightDate string) services.Flight {
	t.Helper()

	f, err := reg.Add(context.Background(), services.FlightForm{
		Registration: registration,
		AircraftType: "E55P - Embraer Phenom 300",
		FlightDate:   flightDate,
		Origin:       "SBSP",
		Destination:  "SBRJ",
	})
	if err != nil {
		t.Fatalf("failed to add test flight: %v", err)
	}
	return f
}

// CreateTestClient registers a valid CNPJ client with the given operator name
// and returns it.
func CreateTestClient(t *testing.T, reg *services.ClientRegistry, operator string) services.Client {
	t.Helper()

	c, err := reg.Add(context.Background(), services.ClientForm{
		Operator:     operator,
		DocumentType: services.DocumentCNPJ,
		Document:     "11.222.333/0001-81",
		Email:        "ops@example.com",
		Phone:        "(11) 98765-4321",
	})
	if err != nil {
		t.Fatalf("failed to add test client: %v", err)
	}
	return c
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHTMLNotContains checks that body contains none of the fragments.
func AssertHTMLNotContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if strings.Contains(body, frag) {
			t.Errorf("expected HTML not to contain %q\nbody (first 500 chars): %s", frag, truncate(body, 500))
		}
	}
}

// AssertHXRedirect checks that the response has an HX-Redirect header with the expected URL.
func AssertHXRedirect(t *testing.T, headerVal, expectedURL string) {
	t.Helper()

	if headerVal != expectedURL {
		t.Errorf("expected HX-Redirect %q, got %q", expectedURL, headerVal)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
