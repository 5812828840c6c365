package services

import (
	"fmt"
	"strconv"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	pdfMutedColor   = &props.Color{Red: 80, Green: 80, Blue: 80}
	pdfFooterColor  = &props.Color{Red: 140, Green: 140, Blue: 140}
	pdfHeaderBg     = &props.Color{Red: 33, Green: 37, Blue: 41}
	pdfCategoryBg   = &props.Color{Red: 235, Green: 235, Blue: 235}
	pdfSummaryBg    = &props.Color{Red: 240, Green: 240, Blue: 240}
	pdfWhite        = &props.Color{Red: 255, Green: 255, Blue: 255}
	pdfPageNumColor = &props.Color{Red: 120, Green: 120, Blue: 120}
)

// newPortraitMaroto returns an A4 portrait document with page numbers.
func newPortraitMaroto() core.Maroto {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Página {current} de {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   pdfPageNumColor,
		}).
		Build()
	return maroto.New(cfg)
}

// GenerateQuotePDF renders a quote using maroto/v2 and returns the raw PDF bytes.
func GenerateQuotePDF(data QuotePrintData) ([]byte, error) {
	m := newPortraitMaroto()

	addQuoteHeader(m, data)
	addQuoteClient(m, data.Client)
	addQuoteTableHeader(m)
	for _, g := range data.Groups {
		addQuoteCategoryRow(m, g.Category)
		for _, l := range g.Lines {
			addQuoteLineRow(m, l)
		}
	}
	addQuoteSummary(m, data)
	addQuoteFooter(m)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

// addQuoteHeader adds the company name, title, quote number and date.
func addQuoteHeader(m core.Maroto, data QuotePrintData) {
	m.AddRows(
		row.New(10).Add(
			col.New(12).Add(
				text.New(data.CompanyName, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
		row.New(8).Add(
			col.New(12).Add(
				text.New("COTAÇÃO DE SERVIÇOS AEROPORTUÁRIOS", props.Text{
					Size:  11,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
		row.New(8).Add(
			col.New(6).Add(
				text.New("Cotação Nº "+data.QuoteNumber, props.Text{
					Size:  9,
					Align: align.Left,
					Color: pdfMutedColor,
				}),
			),
			col.New(6).Add(
				text.New("Data: "+data.DateFormatted, props.Text{
					Size:  9,
					Align: align.Right,
					Color: pdfMutedColor,
				}),
			),
		),
	)
	m.AddRows(row.New(4))
}

// addQuoteClient lists the non-empty client fields.
func addQuoteClient(m core.Maroto, info ClientInfo) {
	fields := []struct{ label, value string }{
		{"Cliente", info.Name},
		{"Empresa", info.Company},
		{"Aeronave", info.Aircraft},
		{"Matrícula", info.Registration},
	}

	labelText := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Left}
	valueText := props.Text{Size: 8, Align: align.Left}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		m.AddRows(
			row.New(5).Add(
				col.New(2).Add(text.New(f.label+":", labelText)),
				col.New(10).Add(text.New(f.value, valueText)),
			),
		)
	}
	m.AddRows(row.New(4))
}

// addQuoteTableHeader adds the column header row for the service table.
func addQuoteTableHeader(m core.Maroto) {
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: pdfWhite,
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left
	headerCell := &props.Cell{BackgroundColor: pdfHeaderBg}

	m.AddRows(
		row.New(8).Add(
			col.New(5).Add(text.New("Serviço", headerTextLeft)).WithStyle(headerCell),
			col.New(2).Add(text.New("Unidade", headerText)).WithStyle(headerCell),
			col.New(1).Add(text.New("Qtd", headerText)).WithStyle(headerCell),
			col.New(2).Add(text.New("Valor Unit.", headerText)).WithStyle(headerCell),
			col.New(2).Add(text.New("Total", headerText)).WithStyle(headerCell),
		),
	)
}

func addQuoteCategoryRow(m core.Maroto, category string) {
	cell := &props.Cell{BackgroundColor: pdfCategoryBg}
	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(
				text.New(category, props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Left}),
			).WithStyle(cell),
		),
	)
}

// addQuoteLineRow adds one service line, with its notes underneath when present.
func addQuoteLineRow(m core.Maroto, l QuotePrintLine) {
	baseText := props.Text{Size: 7, Align: align.Center}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	m.AddRows(
		row.New(6).Add(
			col.New(5).Add(text.New(l.Service, leftText)),
			col.New(2).Add(text.New(l.Unit, baseText)),
			col.New(1).Add(text.New(strconv.Itoa(l.Quantity), baseText)),
			col.New(2).Add(text.New(FormatUSD(l.UnitPrice), rightText)),
			col.New(2).Add(text.New(FormatUSD(l.LineTotal), rightText)),
		),
	)
	if l.Notes != "" {
		m.AddRows(
			row.New(5).Add(
				col.New(12).Add(text.New(l.Notes, props.Text{
					Size:  6,
					Style: fontstyle.Italic,
					Align: align.Left,
					Color: pdfMutedColor,
				})),
			),
		)
	}
}

type pdfSummaryLine struct {
	label string
	value float64
}

// addQuoteSummary adds the financial summary block: the non-parking subtotal,
// the parking fee and tax breakdown when parking is present, and the grand
// total.
func addQuoteSummary(m core.Maroto, data QuotePrintData) {
	m.AddRows(row.New(6))

	c := data.Totals
	var lines []pdfSummaryLine
	if c.OtherSubtotal > 0 {
		lines = append(lines, pdfSummaryLine{"Outros Serviços", c.OtherSubtotal})
	}
	if c.ParkingSubtotal > 0 {
		lines = append(lines,
			pdfSummaryLine{"Estacionamento (base)", c.ParkingSubtotal},
			pdfSummaryLine{"+ Taxa de Serviço (15%)", c.ServiceFee},
			pdfSummaryLine{"+ Impostos Federais (16,62%)", c.FederalTax},
			pdfSummaryLine{"Estacionamento (total)", c.ParkingWithTaxes},
		)
	}

	summaryCell := &props.Cell{BackgroundColor: pdfSummaryBg}
	labelStyle := props.Text{Size: 9, Align: align.Right}
	valueStyle := props.Text{Size: 9, Align: align.Right}
	for _, l := range lines {
		m.AddRows(
			row.New(7).Add(
				col.New(8).Add(text.New(l.label, labelStyle)).WithStyle(summaryCell),
				col.New(4).Add(text.New(FormatUSD(l.value), valueStyle)).WithStyle(summaryCell),
			),
		)
	}

	boldLabel := props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}
	m.AddRows(
		row.New(9).Add(
			col.New(8).Add(text.New("VALOR TOTAL", boldLabel)).WithStyle(summaryCell),
			col.New(4).Add(text.New(FormatUSD(c.Total), boldLabel)).WithStyle(summaryCell),
		),
	)

	if data.HasBRL {
		rateLabel := fmt.Sprintf("Total em Reais (US$ 1,00 = %s)", FormatBRL(data.ExchangeRate))
		m.AddRows(
			row.New(7).Add(
				col.New(8).Add(text.New(rateLabel, labelStyle)).WithStyle(summaryCell),
				col.New(4).Add(text.New(FormatBRL(data.TotalBRL), valueStyle)).WithStyle(summaryCell),
			),
		)
	}
}

// addQuoteFooter adds the standard validity and pricing notes.
func addQuoteFooter(m core.Maroto) {
	m.AddRows(row.New(6))
	footer := props.Text{Size: 7, Align: align.Left, Color: pdfFooterColor}
	for _, note := range []string{
		"Valores em USD (Dólar Americano).",
		"Cotação válida por 7 dias.",
		"Taxas de estacionamento incluem 15% de Taxa de Serviço e 16,62% de Impostos Federais.",
		"Sujeito à disponibilidade.",
	} {
		m.AddRows(row.New(4).Add(col.New(12).Add(text.New(note, footer))))
	}
}
