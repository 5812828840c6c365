package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestMapHeadersToFields(t *testing.T) {
	fields := ClientTemplateFields()
	headers := []string{"Operador *", "documento", " E-MAIL * ", "Observações"}

	mapped, unrecognized := mapHeadersToFields(headers, fields)
	want := []string{"operador", "documento", "email", ""}
	for i, w := range want {
		if mapped[i] != w {
			t.Errorf("column %d mapped to %q, want %q", i, mapped[i], w)
		}
	}
	if len(unrecognized) != 1 || unrecognized[0] != "Observações" {
		t.Errorf("unrecognized = %v", unrecognized)
	}
}

const importCSV = `Operador *,Tipo de Documento,Documento *,Contato Operacional,E-mail *,Telefone
Táxi Aéreo,CNPJ,11222333000181,Maria,ops@taxi.com,11987654321
,CNPJ,123,,bad,
Ana Pilot,cpf,529.982.247-25,,ana@pilot.com,
`

func TestParseClientFile_CSV(t *testing.T) {
	result, err := ParseClientFile(strings.NewReader(importCSV), "clientes.CSV")
	if err != nil {
		t.Fatalf("ParseClientFile: %v", err)
	}
	if result.TotalRows != 3 || result.ValidRows != 2 || result.ErrorRows != 1 {
		t.Errorf("rows total %d valid %d error %d", result.TotalRows, result.ValidRows, result.ErrorRows)
	}

	// Row 3 fails on operator, document and email, reported in column order.
	want := []ImportError{
		{Row: 3, Field: "Operador", Message: "Operador é obrigatório"},
		{Row: 3, Field: "Documento", Message: "CNPJ inválido (esperado: 00.000.000/0000-00)"},
		{Row: 3, Field: "E-mail", Message: "E-mail inválido"},
	}
	if len(result.Errors) != len(want) {
		t.Fatalf("errors = %+v", result.Errors)
	}
	for i, w := range want {
		if result.Errors[i] != w {
			t.Errorf("error %d = %+v, want %+v", i, result.Errors[i], w)
		}
	}
}

func TestParseClientFile_XLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	f.SetSheetRow(sheet, "A1", &[]string{"Operador", "Documento", "E-mail"})
	f.SetSheetRow(sheet, "A2", &[]string{"Jet Rio", "11.222.333/0001-81", "ops@jet.com"})
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	f.Close()

	result, err := ParseClientFile(&buf, "clientes.xlsx")
	if err != nil {
		t.Fatalf("ParseClientFile: %v", err)
	}
	if result.ValidRows != 1 || result.ErrorRows != 0 {
		t.Errorf("valid %d error %d: %+v", result.ValidRows, result.ErrorRows, result.Errors)
	}
}

func TestParseClientFile_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		fileName string
	}{
		{"unsupported extension", importCSV, "clientes.txt"},
		{"header only", "Operador,Documento\n", "clientes.csv"},
		{"not an xlsx", "plain text", "clientes.xlsx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseClientFile(strings.NewReader(tt.content), tt.fileName)
			if !errors.Is(err, ErrInvalidImportFile) {
				t.Errorf("err = %v, want ErrInvalidImportFile", err)
			}
		})
	}
}

func TestImportClients(t *testing.T) {
	ctx := context.Background()
	reg := newTestClientRegistry(t, NewMemoryStore())

	result, err := ImportClients(ctx, reg, strings.NewReader(importCSV), "clientes.csv")
	if err != nil {
		t.Fatalf("ImportClients: %v", err)
	}
	if len(result.Imported) != 2 || reg.Len() != 2 {
		t.Fatalf("imported %d, registry has %d", len(result.Imported), reg.Len())
	}
	ana := result.Imported[1]
	if ana.DocumentType != DocumentCPF || ana.Document != "529.982.247-25" || ana.ID != "CLI-00002" {
		t.Errorf("imported client = %+v", ana)
	}
}

func TestImportClients_NoValidRows(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryStore()
	reg := newTestClientRegistry(t, kv)

	csv := "Operador,Documento,E-mail\n,,\n"
	result, err := ImportClients(ctx, reg, strings.NewReader(csv), "c.csv")
	if err != nil {
		t.Fatalf("ImportClients: %v", err)
	}
	if result.ErrorRows != 1 || len(result.Imported) != 0 {
		t.Errorf("result = %+v", result)
	}
	if _, ok, _ := kv.Get(ctx, ClientsKey); ok {
		t.Error("nothing valid, but the list was written")
	}
}

func TestGenerateErrorReport(t *testing.T) {
	data, err := GenerateErrorReport([]ImportError{
		{Row: 3, Field: "E-mail", Message: "E-mail inválido"},
	})
	if err != nil {
		t.Fatalf("GenerateErrorReport: %v", err)
	}

	f, err := excelize.OpenReader(bytesReader(data))
	if err != nil {
		t.Fatalf("not a valid xlsx: %v", err)
	}
	defer f.Close()

	rows, _ := f.GetRows("Erros")
	if len(rows) != 2 || rows[0][0] != "Linha" || rows[1][0] != "3" || rows[1][2] != "E-mail inválido" {
		t.Errorf("rows = %v", rows)
	}
}

func TestGenerateClientTemplate(t *testing.T) {
	data, err := GenerateClientTemplate()
	if err != nil {
		t.Fatalf("GenerateClientTemplate: %v", err)
	}

	f, err := excelize.OpenReader(bytesReader(data))
	if err != nil {
		t.Fatalf("not a valid xlsx: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "Clientes" || sheets[1] != "Instruções" {
		t.Fatalf("sheets = %v", sheets)
	}
	if visible, _ := f.GetSheetVisible("Instruções"); visible {
		t.Error("instructions sheet should be hidden")
	}

	rows, _ := f.GetRows("Clientes")
	want := []string{"Operador *", "Tipo de Documento", "Documento *", "Contato Operacional", "E-mail *", "Telefone"}
	if len(rows) == 0 || len(rows[0]) != len(want) {
		t.Fatalf("header row = %v", rows)
	}
	for i, w := range want {
		if rows[0][i] != w {
			t.Errorf("header %d = %q, want %q", i, rows[0][i], w)
		}
	}

	dvs, err := f.GetDataValidations("Clientes")
	if err != nil || len(dvs) != 1 || !strings.HasPrefix(dvs[0].Sqref, "B2") {
		t.Errorf("data validations = %+v, %v", dvs, err)
	}
}

func TestGenerateClientTemplate_RoundTripsThroughImport(t *testing.T) {
	data, err := GenerateClientTemplate()
	if err != nil {
		t.Fatalf("GenerateClientTemplate: %v", err)
	}
	f, _ := excelize.OpenReader(bytesReader(data))
	f.SetSheetRow("Clientes", "A2", &[]string{"Táxi Aéreo", "CNPJ", "11222333000181", "", "ops@taxi.com", ""})
	var buf bytes.Buffer
	f.Write(&buf)
	f.Close()

	result, err := ParseClientFile(&buf, "template.xlsx")
	if err != nil {
		t.Fatalf("ParseClientFile: %v", err)
	}
	if result.ValidRows != 1 {
		t.Errorf("valid rows = %d, errors %+v", result.ValidRows, result.Errors)
	}
}
