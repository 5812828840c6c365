package services

import (
	"fmt"
	"strconv"

	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// ProformaPlaceholder is shown for empty proforma fields.
const ProformaPlaceholder = "-"

// OrPlaceholder returns s, or ProformaPlaceholder when s is empty.
func OrPlaceholder(s string) string {
	if s == "" {
		return ProformaPlaceholder
	}
	return s
}

// ProformaDetail is one labelled header line of a proforma invoice.
type ProformaDetail struct {
	Label string
	Value string
}

// Details returns the header lines in display order, empty values replaced
// by the placeholder.
func (p ProformaInvoice) Details() []ProformaDetail {
	rate := ProformaPlaceholder
	if p.HasRate {
		rate = FormatBRL(p.ExchangeRate)
	}
	return []ProformaDetail{
		{"Cliente", OrPlaceholder(p.Client)},
		{"Operador", OrPlaceholder(p.Operator)},
		{"Email", OrPlaceholder(p.Email)},
		{"Telefone", OrPlaceholder(p.Phone)},
		{"Data do Voo", dateOrPlaceholder(p.FlightDate)},
		{"Dólar do Dia", rate},
		{"Data", dateOrPlaceholder(p.InvoiceDate)},
	}
}

func dateOrPlaceholder(iso string) string {
	if iso == "" {
		return ProformaPlaceholder
	}
	return FormatDateBR(iso)
}

// GenerateProformaPDF renders a proforma invoice using maroto/v2 and returns
// the raw PDF bytes.
func GenerateProformaPDF(companyName string, inv ProformaInvoice) ([]byte, error) {
	m := newPortraitMaroto()

	addProformaHeader(m, companyName, inv)
	addProformaDetails(m, inv)
	addProformaLine(m, inv)
	addProformaTotals(m, inv)
	addProformaAmountInWords(m, inv)
	addProformaSignatures(m)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate proforma PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

// addProformaHeader adds company name, "PROFORMA INVOICE" title, and number.
func addProformaHeader(m core.Maroto, companyName string, inv ProformaInvoice) {
	m.AddRows(
		row.New(10).Add(
			col.New(6).Add(
				text.New(companyName, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(6).Add(
				text.New("PROFORMA INVOICE", props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: pdfHeaderBg,
				}),
			),
		),
	)
	if inv.Number != "" {
		m.AddRows(
			row.New(7).Add(
				col.New(12).Add(
					text.New("Nº: "+inv.Number, props.Text{
						Size:  10,
						Style: fontstyle.Bold,
						Align: align.Right,
					}),
				),
			),
		)
	}
	m.AddRows(row.New(3))
}

func addProformaDetails(m core.Maroto, inv ProformaInvoice) {
	labelStyle := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: pdfMutedColor,
	}
	valueStyle := props.Text{Size: 8, Align: align.Left}

	for _, d := range inv.Details() {
		m.AddRows(
			row.New(5).Add(
				col.New(3).Add(text.New(d.Label+":", labelStyle)),
				col.New(9).Add(text.New(d.Value, valueStyle)),
			),
		)
	}
	m.AddRows(row.New(4))
}

// addProformaLine adds the single-line item table.
func addProformaLine(m core.Maroto, inv ProformaInvoice) {
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
			col.New(6).Add(text.New("Descrição", headerTextLeft)).WithStyle(headerCell),
			col.New(2).Add(text.New("Qtd", headerText)).WithStyle(headerCell),
			col.New(2).Add(text.New("Valor Unit. USD", headerText)).WithStyle(headerCell),
			col.New(2).Add(text.New("Total USD", headerText)).WithStyle(headerCell),
		),
	)

	qty, unit := ProformaPlaceholder, ProformaPlaceholder
	if inv.Quantity > 0 {
		qty = strconv.Itoa(inv.Quantity)
	}
	if inv.UnitPrice > 0 {
		unit = FormatUSD(inv.UnitPrice)
	}
	bodyText := props.Text{Size: 8, Align: align.Center}
	bodyLeft := props.Text{Size: 8, Align: align.Left}
	bodyRight := props.Text{Size: 8, Align: align.Right}
	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(text.New(OrPlaceholder(inv.Description), bodyLeft)),
			col.New(2).Add(text.New(qty, bodyText)),
			col.New(2).Add(text.New(unit, bodyRight)),
			col.New(2).Add(text.New(FormatUSD(inv.Total()), bodyRight)),
		),
	)
	m.AddRows(row.New(3))
}

// addProformaTotals adds the USD total and, with a rate, the BRL total.
func addProformaTotals(m core.Maroto, inv ProformaInvoice) {
	grandCell := &props.Cell{BackgroundColor: pdfHeaderBg}
	grandStyle := props.Text{
		Size:  10,
		Style: fontstyle.Bold,
		Align: align.Right,
		Color: pdfWhite,
	}
	m.AddRows(
		row.New(8).Add(
			col.New(9).Add(text.New("Total USD", grandStyle)).WithStyle(grandCell),
			col.New(3).Add(text.New(FormatUSD(inv.Total()), grandStyle)).WithStyle(grandCell),
		),
	)

	if brl, ok := inv.TotalBRL(); ok {
		summaryCell := &props.Cell{BackgroundColor: pdfSummaryBg}
		labelStyle := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right}
		valueStyle := props.Text{Size: 8, Align: align.Right}
		m.AddRows(
			row.New(7).Add(
				col.New(9).Add(text.New("Total BRL", labelStyle)).WithStyle(summaryCell),
				col.New(3).Add(text.New(FormatBRL(brl), valueStyle)).WithStyle(summaryCell),
			),
		)
	}
	m.AddRows(row.New(3))
}

// addProformaAmountInWords adds the amount in words row.
func addProformaAmountInWords(m core.Maroto, inv ProformaInvoice) {
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New("Amount in Words: "+AmountToWords(inv.Total()), props.Text{
					Size:  8,
					Style: fontstyle.BoldItalic,
					Align: align.Left,
				}),
			),
		),
	)
}

// addProformaSignatures adds the signature section at the bottom.
func addProformaSignatures(m core.Maroto) {
	m.AddRows(row.New(14))

	lineStyle := props.Text{Size: 8, Align: align.Center, Color: pdfMutedColor}
	labelStyle := props.Text{Size: 7, Style: fontstyle.Bold, Align: align.Center, Color: pdfMutedColor}

	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(text.New("____________________________", lineStyle)),
			col.New(6).Add(text.New("____________________________", lineStyle)),
		),
		row.New(7).Add(
			col.New(6).Add(text.New("Operador", labelStyle)),
			col.New(6).Add(text.New("Assinatura Autorizada", labelStyle)),
		),
	)
}
