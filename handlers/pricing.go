package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"aviationops/services"
	"aviationops/templates"
)

// activeCategory returns the ?categoria= value when it names a catalog
// category, and the first category otherwise.
func activeCategory(e *core.RequestEvent, catalog *services.Catalog) string {
	cats := catalog.Categories()
	want := e.Request.URL.Query().Get("categoria")
	for _, c := range cats {
		if c == want {
			return c
		}
	}
	if len(cats) > 0 {
		return cats[0]
	}
	return ""
}

// HandlePricing renders the price table for one category.
// Route: GET /precos
func HandlePricing(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		category := activeCategory(e, env.Catalog)
		data := templates.PricingData{
			Tabs:           templates.CategoryTabs("/precos", env.Catalog.Categories(), category),
			ActiveCategory: category,
			Items:          env.Catalog.ByCategory(category),
		}

		if e.Request.Header.Get("HX-Request") == "true" {
			return templates.PricingContent(data).Render(e.Request.Context(), e.Response)
		}
		return templates.PricingPage(data, GetHeaderData(e.Request), GetSidebarData(e.Request)).
			Render(e.Request.Context(), e.Response)
	}
}

// HandlePricingExportExcel downloads the full price table.
// Route: GET /precos/export/excel
func HandlePricingExportExcel(env *Env) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		now := env.now()
		xlsx, err := services.GeneratePricingExcel(env.CompanyName, env.Catalog, now)
		if err != nil {
			log.Printf("pricing_export: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Erro ao gerar a planilha. Tente novamente.")
		}
		return sendXLSX(e, fmt.Sprintf("Tabela_de_Precos_%s.xlsx", now.Format("2006-01-02")), xlsx)
	}
}

// sendXLSX writes an Excel workbook as a download.
func sendXLSX(e *core.RequestEvent, filename string, data []byte) error {
	e.Response.Header().Set("Content-Type",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	e.Response.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s"`, filename))
	e.Response.Write(data)
	return nil
}

// sendPDF writes a PDF as a download.
func sendPDF(e *core.RequestEvent, filename string, data []byte) error {
	e.Response.Header().Set("Content-Type", "application/pdf")
	e.Response.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s"`, filename))
	e.Response.Write(data)
	return nil
}
