package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"aviationops/services"
	"aviationops/templates"
)

const aircraftSuggestionLimit = 8

func flightFormFromRequest(e *core.RequestEvent) services.FlightForm {
	return services.FlightForm{
		Registration: e.Request.FormValue("prefixo"),
		AircraftType: e.Request.FormValue("tipoAeronave"),
		FlightDate:   e.Request.FormValue("dataVoo"),
		Origin:       e.Request.FormValue("origem"),
		Destination:  e.Request.FormValue("destino"),
	}
}

func flightsData(env *Env) templates.FlightsData {
	flights := env.Flights.List()
	return templates.FlightsData{
		Flights: flights,
		Stats:   services.ComputeFlightStats(flights, env.now()),
	}
}

func renderFlights(e *core.RequestEvent, data templates.FlightsData) error {
	if e.Request.Header.Get("HX-Request") == "true" {
		return templates.FlightsContent(data).Render(e.Request.Context(), e.Response)
	}
	return templates.FlightsPage(data, GetHeaderData(e.Request), GetSidebarData(e.Request)).
		Render(e.Request.Context(), e.Response)
}

// renderFlightErrors re-renders the form with its messages, keeping what
// was typed.
func renderFlightErrors(e *core.RequestEvent, data templates.FlightsData, verrs services.ValidationErrors) error {
	data.Errors = verrs
	SetToast(e, ToastWarning, "Preencha todos os campos obrigatórios")
	return renderFlights(e, data)
}

// HandleFlights renders the flights portal.
// Route: GET /voos
func HandleFlights(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return renderFlights(e, flightsData(env))
	}
}

// HandleFlightSave records a new flight.
// Route: POST /voos
func HandleFlightSave(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Dados inválidos")
		}
		form := flightFormFromRequest(e)

		f, err := env.Flights.Add(e.Request.Context(), form)
		if verrs, ok := services.AsValidationErrors(err); ok {
			data := flightsData(env)
			data.Form = form
			return renderFlightErrors(e, data, verrs)
		}
		if err != nil {
			return storageError(e, "flight_save", err)
		}

		SetToast(e, ToastSuccess, "Voo "+f.Registration+" adicionado")
		return renderFlights(e, flightsData(env))
	}
}

// HandleFlightEdit loads a flight into the form.
// Route: GET /voos/{id}/edit
func HandleFlightEdit(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		f, ok := env.Flights.Get(id)
		if !ok {
			return ErrorToast(e, http.StatusNotFound, "Voo não encontrado")
		}

		data := flightsData(env)
		data.EditingID = id
		data.Form = services.FlightForm{
			Registration: f.Registration,
			AircraftType: f.AircraftType,
			FlightDate:   f.FlightDate,
			Origin:       f.Origin,
			Destination:  f.Destination,
		}
		return renderFlights(e, data)
	}
}

// HandleFlightUpdate saves an edited flight.
// Route: POST /voos/{id}
func HandleFlightUpdate(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Dados inválidos")
		}
		id := e.Request.PathValue("id")
		form := flightFormFromRequest(e)

		f, err := env.Flights.Update(e.Request.Context(), id, form)
		if verrs, ok := services.AsValidationErrors(err); ok {
			data := flightsData(env)
			data.Form = form
			data.EditingID = id
			return renderFlightErrors(e, data, verrs)
		}
		if errors.Is(err, services.ErrNotFound) {
			return ErrorToast(e, http.StatusNotFound, "Voo não encontrado")
		}
		if err != nil {
			return storageError(e, "flight_update", err)
		}

		SetToast(e, ToastSuccess, "Voo "+f.Registration+" atualizado")
		return renderFlights(e, flightsData(env))
	}
}

// HandleFlightDelete removes a flight.
// Route: DELETE /voos/{id}
func HandleFlightDelete(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		err := env.Flights.Delete(e.Request.Context(), e.Request.PathValue("id"))
		if errors.Is(err, services.ErrNotFound) {
			return ErrorToast(e, http.StatusNotFound, "Voo não encontrado")
		}
		if err != nil {
			return storageError(e, "flight_delete", err)
		}
		SetToast(e, ToastSuccess, "Voo excluído")
		return renderFlights(e, flightsData(env))
	}
}

// HandleFlightsExportExcel downloads the flight list.
// Route: GET /voos/export/excel
func HandleFlightsExportExcel(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		xlsx, err := services.GenerateListExcel(services.FlightsExportData(env.CompanyName, env.Flights.List()))
		if err != nil {
			log.Printf("flights_export: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Erro ao gerar a planilha. Tente novamente.")
		}
		return sendXLSX(e, fmt.Sprintf("Voos_%s.xlsx", env.now().Format("2006-01-02")), xlsx)
	}
}

// HandleAircraftTypes returns the autocomplete options for the aircraft type
// input. The term comes from ?q= or the input's own name.
// Route: GET /voos/aircraft-types
func HandleAircraftTypes(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q := e.Request.URL.Query()
		term := q.Get("q")
		if strings.TrimSpace(term) == "" {
			term = q.Get("tipoAeronave")
		}
		types := services.SearchAircraftTypes(term, aircraftSuggestionLimit)
		return templates.AircraftTypeList(types).Render(e.Request.Context(), e.Response)
	}
}
