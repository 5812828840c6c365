package services

import (
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func TestGeneratePricingExcel(t *testing.T) {
	catalog := DefaultCatalog()
	data, err := GeneratePricingExcel("Aero Base", catalog, time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("GeneratePricingExcel: %v", err)
	}

	f, err := excelize.OpenReader(bytesReader(data))
	if err != nil {
		t.Fatalf("not a valid xlsx: %v", err)
	}
	defer f.Close()

	sheet := "Tabela de Preços"
	if sheets := f.GetSheetList(); len(sheets) != 1 || sheets[0] != sheet {
		t.Fatalf("sheets = %v", sheets)
	}
	if v, _ := f.GetCellValue(sheet, "A1"); v != "Aero Base - Tabela de Preços" {
		t.Errorf("A1 = %q", v)
	}
	if v, _ := f.GetCellValue(sheet, "A2"); v != "Gerado em: 07/03/2025" {
		t.Errorf("A2 = %q", v)
	}
	if v, _ := f.GetCellValue(sheet, "A5"); v != CategoryFuel {
		t.Errorf("first category row = %q", v)
	}
	if v, _ := f.GetCellValue(sheet, "B6"); v != "JET-A1" {
		t.Errorf("first item = %q", v)
	}

	// One row per item plus one per category, a blank line and the note.
	rows, _ := f.GetRows(sheet)
	wantRows := 4 + catalog.Len() + len(catalog.Categories()) + 2
	if len(rows) != wantRows {
		t.Errorf("got %d rows, want %d", len(rows), wantRows)
	}
}

func TestGenerateSavedQuotesExcel(t *testing.T) {
	quotes := []SavedQuote{
		{
			QuoteNumber:   "COT-000002",
			ClientInfo:    ClientInfo{Name: "Bruno", Date: "2025-03-08"},
			SelectedItems: []SelectedItem{selected(parkingSm, 10)},
			Total:         592.29,
		},
		{
			QuoteNumber:   "COT-000001",
			ClientInfo:    ClientInfo{Name: "=cmd", Company: "Jet"},
			SelectedItems: []SelectedItem{selected(jetA1, 100), selected(parkingSm, 1)},
			Total:         650 + 59.229,
		},
	}

	data, err := GenerateSavedQuotesExcel(quotes)
	if err != nil {
		t.Fatalf("GenerateSavedQuotesExcel: %v", err)
	}

	f, err := excelize.OpenReader(bytesReader(data))
	if err != nil {
		t.Fatalf("not a valid xlsx: %v", err)
	}
	defer f.Close()

	if v, _ := f.GetCellValue("Cotações", "A2"); v != "COT-000002" {
		t.Errorf("A2 = %q", v)
	}
	if v, _ := f.GetCellValue("Cotações", "B2"); v != "08/03/2025" {
		t.Errorf("B2 = %q", v)
	}
	if v, _ := f.GetCellValue("Cotações", "C3"); v != "'=cmd" {
		t.Errorf("C3 = %q, want sanitized", v)
	}
	if v, _ := f.GetCellValue("Cotações", "H5"); v != "Total Geral:" {
		t.Errorf("H5 = %q", v)
	}

	detail, _ := f.GetRows("Itens")
	if len(detail) != 4 {
		t.Fatalf("detail rows = %d, want header + 3", len(detail))
	}
	if detail[2][0] != "COT-000001" || detail[2][2] != "JET-A1" {
		t.Errorf("detail row = %v", detail[2])
	}
}

func TestGenerateSavedQuotesExcel_Empty(t *testing.T) {
	data, err := GenerateSavedQuotesExcel(nil)
	if err != nil {
		t.Fatalf("GenerateSavedQuotesExcel: %v", err)
	}
	f, err := excelize.OpenReader(bytesReader(data))
	if err != nil {
		t.Fatalf("not a valid xlsx: %v", err)
	}
	defer f.Close()
	if v, _ := f.GetCellValue("Cotações", "H3"); v != "Total Geral:" {
		t.Errorf("H3 = %q", v)
	}
}

func TestSanitizeExcelCell(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", ""},
		{"JET-A1", "JET-A1"},
		{"=SUM(A1)", "'=SUM(A1)"},
		{"+55", "'+55"},
		{"-1", "'-1"},
		{"@x", "'@x"},
	}
	for _, tt := range tests {
		if got := sanitizeExcelCell(tt.input); got != tt.want {
			t.Errorf("sanitizeExcelCell(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
