package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"aviationops/services"
	"aviationops/templates"
)

// baseFilterFromRequest reads ?q=, ?status=, ?estado= and ?regiao=.
func baseFilterFromRequest(e *core.RequestEvent) services.BaseFilter {
	q := e.Request.URL.Query()
	return services.BaseFilter{
		Query:  strings.TrimSpace(q.Get("q")),
		Status: q.Get("status"),
		State:  q.Get("estado"),
		Region: q.Get("regiao"),
	}
}

// HandleBases renders the base directory with its filters applied.
// Route: GET /bases
func HandleBases(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		filter := baseFilterFromRequest(e)
		matches := env.Bases.Filter(filter)
		data := templates.BasesData{
			Stats:   services.ComputeBaseStats(env.Bases.All()),
			Filter:  filter,
			States:  env.Bases.States(),
			Regions: services.RegionNames(),
			Groups:  services.GroupBasesByRegion(matches),
			Matches: len(matches),
		}

		if e.Request.Header.Get("HX-Request") == "true" {
			return templates.BasesContent(data).Render(e.Request.Context(), e.Response)
		}
		return templates.BasesPage(data, GetHeaderData(e.Request), GetSidebarData(e.Request)).
			Render(e.Request.Context(), e.Response)
	}
}

// HandleBasesExportExcel downloads the bases matching the current filter.
// Route: GET /bases/export/excel
func HandleBasesExportExcel(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		matches := env.Bases.Filter(baseFilterFromRequest(e))
		xlsx, err := services.GenerateListExcel(services.BasesExportData(env.CompanyName, matches))
		if err != nil {
			log.Printf("bases_export: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Erro ao gerar a planilha. Tente novamente.")
		}
		return sendXLSX(e, fmt.Sprintf("Bases_%s.xlsx", env.now().Format("2006-01-02")), xlsx)
	}
}
