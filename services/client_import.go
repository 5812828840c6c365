package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrInvalidImportFile wraps every reason an upload could not be read.
var ErrInvalidImportFile = errors.New("invalid import file")

// ImportError represents a single field-level error on one row.
type ImportError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ImportResult is returned after parsing and validating an uploaded file.
type ImportResult struct {
	TotalRows int           `json:"total_rows"`
	ValidRows int           `json:"valid_rows"`
	ErrorRows int           `json:"error_rows"`
	Errors    []ImportError `json:"errors"`
	Imported  []Client      `json:"imported"`
	FileName  string        `json:"-"`

	valid []ClientForm
}

// parseCSV reads a CSV file and returns headers + data rows.
func parseCSV(file io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(allRows) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}

	return allRows[0], allRows[1:], nil
}

// parseExcel reads an xlsx file and returns headers + data rows from the first sheet.
func parseExcel(file io.Reader) ([]string, [][]string, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}

	return rows[0], rows[1:], nil
}

// mapHeadersToFields maps uploaded column headers to TemplateField keys.
// Returns ordered list of field keys (one per column) and any unrecognized columns.
func mapHeadersToFields(headers []string, fields []TemplateField) ([]string, []string) {
	labelToKey := make(map[string]string, len(fields)*2)
	for _, f := range fields {
		labelToKey[strings.ToLower(f.Label)] = f.Key
		labelToKey[strings.ToLower(f.Key)] = f.Key
	}

	mapped := make([]string, len(headers))
	var unrecognized []string

	for i, h := range headers {
		norm := strings.ToLower(strings.TrimSpace(h))
		// Strip trailing " *" that our template adds for required fields
		norm = strings.TrimSpace(strings.TrimSuffix(norm, " *"))

		if key, ok := labelToKey[norm]; ok {
			mapped[i] = key
		} else {
			unrecognized = append(unrecognized, h)
		}
	}
	return mapped, unrecognized
}

func clientFormFromRow(data map[string]string) ClientForm {
	return ClientForm{
		Operator:           data["operador"],
		Document:           data["documento"],
		DocumentType:       data["tipoDocumento"],
		OperationalContact: data["contatoOperacional"],
		Email:              data["email"],
		Phone:              data["telefone"],
	}
}

// ParseClientFile parses and validates an uploaded .csv or .xlsx client file.
// Every row is validated; rows with errors are reported and left out.
func ParseClientFile(file io.Reader, fileName string) (*ImportResult, error) {
	var headers []string
	var dataRows [][]string
	var err error

	lowerName := strings.ToLower(fileName)
	switch {
	case strings.HasSuffix(lowerName, ".csv"):
		headers, dataRows, err = parseCSV(file)
	case strings.HasSuffix(lowerName, ".xlsx"):
		headers, dataRows, err = parseExcel(file)
	default:
		return nil, fmt.Errorf("%w: unsupported format, must be .csv or .xlsx", ErrInvalidImportFile)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImportFile, err)
	}

	fields := ClientTemplateFields()
	columnKeys, _ := mapHeadersToFields(headers, fields)

	result := &ImportResult{
		TotalRows: len(dataRows),
		FileName:  fileName,
	}

	for rowIdx, row := range dataRows {
		rowNum := rowIdx + 2 // 1-indexed, +1 for header row
		rowData := make(map[string]string)
		for colIdx, key := range columnKeys {
			if key == "" || colIdx >= len(row) {
				continue
			}
			rowData[key] = strings.TrimSpace(row[colIdx])
		}

		form := clientFormFromRow(rowData)
		rowErrors := rowValidationErrors(rowNum, ValidateClient(form), fields)
		if len(rowErrors) > 0 {
			result.Errors = append(result.Errors, rowErrors...)
			result.ErrorRows++
			continue
		}
		result.valid = append(result.valid, form)
	}
	result.ValidRows = len(result.valid)

	return result, nil
}

// rowValidationErrors flattens err into per-field row errors, in column order.
func rowValidationErrors(rowNum int, err error, fields []TemplateField) []ImportError {
	verrs, ok := AsValidationErrors(err)
	if !ok {
		return nil
	}
	var out []ImportError
	for _, f := range fields {
		if msg, ok := verrs[f.Key]; ok {
			out = append(out, ImportError{Row: rowNum, Field: f.Label, Message: msg})
		}
	}
	return out
}

// ImportClients parses the file and registers every valid row in one write.
func ImportClients(ctx context.Context, reg *ClientRegistry, file io.Reader, fileName string) (*ImportResult, error) {
	result, err := ParseClientFile(file, fileName)
	if err != nil {
		return nil, err
	}
	if len(result.valid) == 0 {
		return result, nil
	}
	added, err := reg.AddAll(ctx, result.valid)
	if err != nil {
		return nil, fmt.Errorf("import clients: %w", err)
	}
	result.Imported = added
	return result, nil
}

// GenerateErrorReport creates a downloadable .xlsx file from import errors.
func GenerateErrorReport(errors []ImportError) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Erros"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DC2626"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    thinBorders(),
	})

	f.SetCellValue(sheet, "A1", "Linha")
	f.SetCellValue(sheet, "B1", "Campo")
	f.SetCellValue(sheet, "C1", "Erro")
	f.SetCellStyle(sheet, "A1", "C1", headerStyle)
	f.SetColWidth(sheet, "A", "A", 8)
	f.SetColWidth(sheet, "B", "B", 22)
	f.SetColWidth(sheet, "C", "C", 55)

	for i, e := range errors {
		row := fmt.Sprintf("%d", i+2)
		f.SetCellValue(sheet, "A"+row, e.Row)
		f.SetCellValue(sheet, "B"+row, e.Field)
		f.SetCellValue(sheet, "C"+row, e.Message)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write error report: %w", err)
	}
	return buf.Bytes(), nil
}
