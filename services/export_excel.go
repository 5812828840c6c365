package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// excelStyles are the cell styles shared by the pricing and saved-quote workbooks.
type excelStyles struct {
	title, subtitle, header, category, data, money, summaryLabel, summaryValue int
}

func newExcelStyles(f *excelize.File) (excelStyles, error) {
	var s excelStyles
	var err error

	// Title style: bold, 16pt.
	if s.title, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	}); err != nil {
		return s, fmt.Errorf("create title style: %w", err)
	}

	if s.subtitle, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	}); err != nil {
		return s, fmt.Errorf("create subtitle style: %w", err)
	}

	// Column header style: bold, white text, charcoal background, centered.
	if s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	}); err != nil {
		return s, fmt.Errorf("create header style: %w", err)
	}

	// Category row style: bold on light gray.
	if s.category, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 10},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"#EBEBEB"}, Pattern: 1},
		Border: thinBorders(),
	}); err != nil {
		return s, fmt.Errorf("create category style: %w", err)
	}

	if s.data, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 10},
		Border:    thinBorders(),
		Alignment: &excelize.Alignment{Vertical: "center", WrapText: true},
	}); err != nil {
		return s, fmt.Errorf("create data style: %w", err)
	}

	// Money cells keep a numeric value with a US$ display format.
	usd := `"US$ "#,##0.00`
	if s.money, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Size: 10},
		Border:       thinBorders(),
		CustomNumFmt: &usd,
	}); err != nil {
		return s, fmt.Errorf("create money style: %w", err)
	}

	if s.summaryLabel, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	}); err != nil {
		return s, fmt.Errorf("create summary label style: %w", err)
	}

	if s.summaryValue, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true, Size: 11},
		CustomNumFmt: &usd,
	}); err != nil {
		return s, fmt.Errorf("create summary value style: %w", err)
	}

	return s, nil
}

// GeneratePricingExcel exports the catalog grouped by category, one row per
// item, and returns the file contents.
func GeneratePricingExcel(companyName string, catalog *Catalog, generated time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Tabela de Preços"
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	st, err := newExcelStyles(f)
	if err != nil {
		return nil, err
	}

	columns := []string{"A", "B", "C", "D", "E"}
	lastCol := columns[len(columns)-1]
	widths := []float64{8, 45, 18, 16, 50}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// Rows 1-2: title and generation date.
	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", sanitizeExcelCell(companyName)+" - Tabela de Preços")
	f.SetCellStyle(sheetName, "A1", lastCol+"1", st.title)
	if err := f.MergeCell(sheetName, "A2", lastCol+"2"); err != nil {
		return nil, fmt.Errorf("merge date: %w", err)
	}
	f.SetCellValue(sheetName, "A2", "Gerado em: "+generated.Format("02/01/2006"))
	f.SetCellStyle(sheetName, "A2", lastCol+"2", st.subtitle)

	// Row 4: column headers.
	for i, h := range []string{"ID", "Serviço", "Unidade", "Preço (USD)", "Observações"} {
		f.SetCellValue(sheetName, columns[i]+"4", h)
	}
	f.SetCellStyle(sheetName, "A4", lastCol+"4", st.header)

	row := 5
	for _, category := range catalog.Categories() {
		items := catalog.ByCategory(category)
		rowStr := fmt.Sprintf("%d", row)
		if err := f.MergeCell(sheetName, "A"+rowStr, lastCol+rowStr); err != nil {
			return nil, fmt.Errorf("merge category: %w", err)
		}
		f.SetCellValue(sheetName, "A"+rowStr, category)
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, st.category)
		row++

		for _, it := range items {
			rowStr := fmt.Sprintf("%d", row)
			f.SetCellValue(sheetName, "A"+rowStr, it.ID)
			f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(it.Service))
			f.SetCellValue(sheetName, "C"+rowStr, sanitizeExcelCell(it.Unit))
			f.SetCellValue(sheetName, "D"+rowStr, it.Price)
			f.SetCellValue(sheetName, "E"+rowStr, sanitizeExcelCell(it.Notes))
			f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, st.data)
			f.SetCellStyle(sheetName, "D"+rowStr, "D"+rowStr, st.money)
			row++
		}
	}

	// Fee note below the table.
	row++
	noteRow := fmt.Sprintf("%d", row)
	if err := f.MergeCell(sheetName, "A"+noteRow, lastCol+noteRow); err != nil {
		return nil, fmt.Errorf("merge note: %w", err)
	}
	f.SetCellValue(sheetName, "A"+noteRow,
		"Estacionamento: acréscimo de 15% de Taxa de Serviço e 16,62% de Impostos Federais sobre o valor base.")
	f.SetCellStyle(sheetName, "A"+noteRow, lastCol+noteRow, st.subtitle)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// GenerateSavedQuotesExcel exports the saved quotes: a summary sheet with one
// row per quote and a detail sheet with one row per quoted service.
func GenerateSavedQuotesExcel(quotes []SavedQuote) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	summary := "Cotações"
	if err := f.SetSheetName(f.GetSheetName(0), summary); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}
	detail := "Itens"
	if _, err := f.NewSheet(detail); err != nil {
		return nil, fmt.Errorf("create detail sheet: %w", err)
	}

	st, err := newExcelStyles(f)
	if err != nil {
		return nil, err
	}

	summaryCols := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I"}
	summaryHeaders := []string{"Cotação Nº", "Data", "Cliente", "Empresa", "Aeronave", "Matrícula", "Itens", "Estacionamento c/ Taxas", "Total (USD)"}
	summaryWidths := []float64{14, 12, 28, 28, 18, 14, 8, 22, 16}
	for i, c := range summaryCols {
		f.SetColWidth(summary, c, c, summaryWidths[i])
		f.SetCellValue(summary, c+"1", summaryHeaders[i])
	}
	f.SetCellStyle(summary, "A1", "I1", st.header)

	detailCols := []string{"A", "B", "C", "D", "E", "F", "G"}
	detailHeaders := []string{"Cotação Nº", "Categoria", "Serviço", "Unidade", "Qtd", "Valor Unit. (USD)", "Total (USD)"}
	detailWidths := []float64{14, 22, 45, 16, 8, 18, 16}
	for i, c := range detailCols {
		f.SetColWidth(detail, c, c, detailWidths[i])
		f.SetCellValue(detail, c+"1", detailHeaders[i])
	}
	f.SetCellStyle(detail, "A1", "G1", st.header)

	var grandTotal float64
	detailRow := 2
	for i, q := range quotes {
		rowStr := fmt.Sprintf("%d", i+2)
		calc := q.Totals()
		f.SetCellValue(summary, "A"+rowStr, q.QuoteNumber)
		f.SetCellValue(summary, "B"+rowStr, FormatDateBR(q.ClientInfo.Date))
		f.SetCellValue(summary, "C"+rowStr, sanitizeExcelCell(q.ClientInfo.Name))
		f.SetCellValue(summary, "D"+rowStr, sanitizeExcelCell(q.ClientInfo.Company))
		f.SetCellValue(summary, "E"+rowStr, sanitizeExcelCell(q.ClientInfo.Aircraft))
		f.SetCellValue(summary, "F"+rowStr, sanitizeExcelCell(q.ClientInfo.Registration))
		f.SetCellValue(summary, "G"+rowStr, len(q.SelectedItems))
		f.SetCellValue(summary, "H"+rowStr, calc.ParkingWithTaxes)
		f.SetCellValue(summary, "I"+rowStr, q.Total)
		f.SetCellStyle(summary, "A"+rowStr, "G"+rowStr, st.data)
		f.SetCellStyle(summary, "H"+rowStr, "I"+rowStr, st.money)
		grandTotal += q.Total

		for _, si := range q.SelectedItems {
			d := fmt.Sprintf("%d", detailRow)
			f.SetCellValue(detail, "A"+d, q.QuoteNumber)
			f.SetCellValue(detail, "B"+d, si.Item.Category)
			f.SetCellValue(detail, "C"+d, sanitizeExcelCell(si.Item.Service))
			f.SetCellValue(detail, "D"+d, sanitizeExcelCell(si.Item.Unit))
			f.SetCellValue(detail, "E"+d, si.Quantity)
			f.SetCellValue(detail, "F"+d, si.Item.Price)
			f.SetCellValue(detail, "G"+d, LineTotal(si.Item.Price, si.Quantity))
			f.SetCellStyle(detail, "A"+d, "E"+d, st.data)
			f.SetCellStyle(detail, "F"+d, "G"+d, st.money)
			detailRow++
		}
	}

	// Grand total one row below the last quote.
	totalRow := fmt.Sprintf("%d", len(quotes)+3)
	f.SetCellValue(summary, "H"+totalRow, "Total Geral:")
	f.SetCellStyle(summary, "H"+totalRow, "H"+totalRow, st.summaryLabel)
	f.SetCellValue(summary, "I"+totalRow, grandTotal)
	f.SetCellStyle(summary, "I"+totalRow, "I"+totalRow, st.summaryValue)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
