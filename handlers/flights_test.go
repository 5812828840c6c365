package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"aviationops/services"
	"aviationops/testhelpers"
)

func flightValues() url.Values {
	return url.Values{
		"prefixo":      {"pr-xyz"},
		"tipoAeronave": {"C25A - Cessna Citation CJ2"},
		"dataVoo":      {"2026-03-18"},
		"origem":       {"sbgr"},
		"destino":      {"SBBR"},
	}
}

func TestHandleFlights(t *testing.T) {
	env, _ := newTestEnv(t)

	t.Run("empty", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := htmx(httptest.NewRequest(http.MethodGet, "/voos", nil))
		if err := HandleFlights(env)(newTestRequestEvent(nil, req, rec)); err != nil {
			t.Fatalf("handler returned error: %v", err)
		}
		testhelpers.AssertHTMLContains(t, rec.Body.String(), "Portal de Voos", "Nenhum voo confirmado.")
	})

	t.Run("with flights", func(t *testing.T) {
		testhelpers.CreateTestFlight(t, env.Flights, "PR-AAA", "2026-03-20")
		testhelpers.CreateTestFlight(t, env.Flights, "PR-BBB", "2026-03-01")

		rec := httptest.NewRecorder()
		req := htmx(httptest.NewRequest(http.MethodGet, "/voos", nil))
		HandleFlights(env)(newTestRequestEvent(nil, req, rec))

		body := rec.Body.String()
		testhelpers.AssertHTMLContains(t, body,
			"PR-AAA", "PR-BBB", "20/03/2026",
			"Rota mais frequente: SBSP → SBRJ (2)",
			"SBSP: 2",
		)
		testhelpers.AssertHTMLNotContains(t, body, "Nenhum voo confirmado.")
	})
}

func TestHandleFlightSave(t *testing.T) {
	env, _ := newTestEnv(t)
	req := htmx(formRequest(http.MethodPost, "/voos", flightValues()))
	rec := httptest.NewRecorder()

	if err := HandleFlightSave(env)(newTestRequestEvent(nil, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	flights := env.Flights.List()
	if len(flights) != 1 {
		t.Fatalf("expected 1 flight, got %d", len(flights))
	}
	f := flights[0]
	if f.Registration != "PR-XYZ" || f.Origin != "SBGR" {
		t.Errorf("expected upper-cased fields, got %+v", f)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "PR-XYZ", "SBGR → SBBR")
}

func TestHandleFlightSave_Validation(t *testing.T) {
	env, _ := newTestEnv(t)
	v := flightValues()
	v.Set("destino", "")
	v.Set("dataVoo", "18/03/2026")
	req := htmx(formRequest(http.MethodPost, "/voos", v))
	rec := httptest.NewRecorder()

	if err := HandleFlightSave(env)(newTestRequestEvent(nil, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 re-render, got %d", rec.Code)
	}
	if len(env.Flights.List()) != 0 {
		t.Error("nothing should be saved")
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Destino é obrigatório",
		"Data do voo inválida",
		`value="pr-xyz"`,
	)
	if !strings.Contains(rec.Header().Get("HX-Trigger"), "warning") {
		t.Error("expected a warning toast")
	}
}

func TestHandleFlightEdit(t *testing.T) {
	env, _ := newTestEnv(t)
	f := testhelpers.CreateTestFlight(t, env.Flights, "PR-AAA", "2026-03-20")

	req := htmx(httptest.NewRequest(http.MethodGet, "/voos/"+f.ID+"/edit", nil))
	req.SetPathValue("id", f.ID)
	rec := httptest.NewRecorder()

	if err := HandleFlightEdit(env)(newTestRequestEvent(nil, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		`hx-post="/voos/`+f.ID+`"`,
		`value="PR-AAA"`,
		"Cancelar",
	)
}

func TestHandleFlightEdit_NotFound(t *testing.T) {
	env, _ := newTestEnv(t)
	req := httptest.NewRequest(http.MethodGet, "/voos/nope/edit", nil)
	req.SetPathValue("id", "nope")
	rec := httptest.NewRecorder()

	HandleFlightEdit(env)(newTestRequestEvent(nil, req, rec))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandleFlightUpdate(t *testing.T) {
	env, _ := newTestEnv(t)
	f := testhelpers.CreateTestFlight(t, env.Flights, "PR-AAA", "2026-03-20")

	req := htmx(formRequest(http.MethodPost, "/voos/"+f.ID, flightValues()))
	req.SetPathValue("id", f.ID)
	rec := httptest.NewRecorder()

	if err := HandleFlightUpdate(env)(newTestRequestEvent(nil, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	got, ok := env.Flights.Get(f.ID)
	if !ok {
		t.Fatal("flight disappeared")
	}
	if got.Registration != "PR-XYZ" || got.Destination != "SBBR" {
		t.Errorf("flight not updated: %+v", got)
	}
	if !got.CreatedAt.Equal(f.CreatedAt) {
		t.Error("creation time should be kept")
	}
}

func TestHandleFlightUpdate_NotFound(t *testing.T) {
	env, _ := newTestEnv(t)
	req := formRequest(http.MethodPost, "/voos/nope", flightValues())
	req.SetPathValue("id", "nope")
	rec := httptest.NewRecorder()

	HandleFlightUpdate(env)(newTestRequestEvent(nil, req, rec))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandleFlightDelete(t *testing.T) {
	env, _ := newTestEnv(t)
	f := testhelpers.CreateTestFlight(t, env.Flights, "PR-AAA", "2026-03-20")

	req := htmx(httptest.NewRequest(http.MethodDelete, "/voos/"+f.ID, nil))
	req.SetPathValue("id", f.ID)
	rec := httptest.NewRecorder()

	if err := HandleFlightDelete(env)(newTestRequestEvent(nil, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if len(env.Flights.List()) != 0 {
		t.Error("expected flight to be deleted")
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Nenhum voo confirmado.")

	rec = httptest.NewRecorder()
	HandleFlightDelete(env)(newTestRequestEvent(nil, req, rec))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 on second delete, got %d", rec.Code)
	}
}

func TestHandleFlightDelete_QuotaExceeded(t *testing.T) {
	env, kv := newTestEnv(t)
	f := testhelpers.CreateTestFlight(t, env.Flights, "PR-AAA", "2026-03-20")
	kv.Quota = 1

	req := httptest.NewRequest(http.MethodDelete, "/voos/"+f.ID, nil)
	req.SetPathValue("id", f.ID)
	rec := httptest.NewRecorder()

	HandleFlightDelete(env)(newTestRequestEvent(nil, req, rec))

	if rec.Code != http.StatusInsufficientStorage {
		t.Errorf("expected 507, got %d", rec.Code)
	}
	if _, ok := env.Flights.Get(f.ID); !ok {
		t.Error("flight should survive a failed write")
	}
}

func TestHandleFlightsExportExcel(t *testing.T) {
	env, _ := newTestEnv(t)
	testhelpers.CreateTestFlight(t, env.Flights, "PR-AAA", "2026-03-20")

	req := httptest.NewRequest(http.MethodGet, "/voos/export/excel", nil)
	rec := httptest.NewRecorder()
	if err := HandleFlightsExportExcel(env)(newTestRequestEvent(nil, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	assertXLSXDownload(t, rec, "Voos_2026-03-15.xlsx")
}

func TestHandleAircraftTypes(t *testing.T) {
	env, _ := newTestEnv(t)

	tests := []struct {
		name  string
		query string
	}{
		{"q param", "?q=phenom"},
		{"input name", "?tipoAeronave=phenom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/voos/aircraft-types"+tt.query, nil)
			rec := httptest.NewRecorder()
			if err := HandleAircraftTypes(env)(newTestRequestEvent(nil, req, rec)); err != nil {
				t.Fatalf("handler returned error: %v", err)
			}

			body := rec.Body.String()
			testhelpers.AssertHTMLContains(t, body, `id="aircraft-types"`)
			for _, want := range services.SearchAircraftTypes("phenom", aircraftSuggestionLimit) {
				testhelpers.AssertHTMLContains(t, body, `value="`+want.Label()+`"`)
			}
			if n := strings.Count(body, "<option"); n > aircraftSuggestionLimit {
				t.Errorf("got %d options, limit is %d", n, aircraftSuggestionLimit)
			}
		})
	}
}

