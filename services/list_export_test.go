package services

import (
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func TestGenerateListExcel_Clients(t *testing.T) {
	clients := []Client{
		{ID: "CLI-00001", Operator: "Táxi Aéreo", DocumentType: DocumentCNPJ, Document: "11.222.333/0001-81",
			Email: "ops@taxi.com", RegisteredAt: time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC)},
	}

	data, err := GenerateListExcel(ClientsExportData("Aero Base", clients))
	if err != nil {
		t.Fatalf("GenerateListExcel: %v", err)
	}
	f, err := excelize.OpenReader(bytesReader(data))
	if err != nil {
		t.Fatalf("not a valid xlsx: %v", err)
	}
	defer f.Close()

	checks := map[string]string{
		"A1": "Aero Base - Clientes Cadastrados",
		"A2": "Total: 1 clientes",
		"A4": "ID",
		"B5": "Táxi Aéreo",
		"D5": "11.222.333/0001-81",
		"H5": "07/03/2025",
	}
	for cell, want := range checks {
		if got, _ := f.GetCellValue("Clientes", cell); got != want {
			t.Errorf("%s = %q, want %q", cell, got, want)
		}
	}
}

func TestGenerateListExcel_Flights(t *testing.T) {
	flights := []Flight{{Registration: "PR-ABC", AircraftType: "E55P", FlightDate: "2025-03-10", Origin: "SBSP", Destination: "SBRJ"}}

	data, err := GenerateListExcel(FlightsExportData("Aero Base", flights))
	if err != nil {
		t.Fatalf("GenerateListExcel: %v", err)
	}
	f, err := excelize.OpenReader(bytesReader(data))
	if err != nil {
		t.Fatalf("not a valid xlsx: %v", err)
	}
	defer f.Close()

	if got, _ := f.GetCellValue("Voos", "C5"); got != "10/03/2025" {
		t.Errorf("C5 = %q", got)
	}
	if got, _ := f.GetCellValue("Voos", "A2"); got != "Total: 1 voos" {
		t.Errorf("A2 = %q", got)
	}
}

func TestGenerateListExcel_NoColumns(t *testing.T) {
	if _, err := GenerateListExcel(ListExportData{Title: "x"}); err == nil {
		t.Error("expected an error without columns")
	}
}
