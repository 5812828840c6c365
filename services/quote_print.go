package services

// QuotePrintLine is one line item prepared for the print fragment and PDF.
type QuotePrintLine struct {
	Service   string
	Unit      string
	Notes     string
	Quantity  int
	UnitPrice float64
	LineTotal float64
}

// QuotePrintGroup is a category heading with its lines.
type QuotePrintGroup struct {
	Category string
	Lines    []QuotePrintLine
}

// QuotePrintData holds everything the print/PDF collaborators need.
type QuotePrintData struct {
	CompanyName   string
	QuoteNumber   string
	Client        ClientInfo
	DateFormatted string
	Groups        []QuotePrintGroup
	Totals        Calculations

	// Set only when an exchange rate was entered.
	HasBRL       bool
	ExchangeRate float64
	TotalBRL     float64
}

// BuildQuotePrintData assembles the print data for a quote.
func BuildQuotePrintData(companyName string, info ClientInfo, items []SelectedItem, quoteNumber string) QuotePrintData {
	data := QuotePrintData{
		CompanyName:   companyName,
		QuoteNumber:   quoteNumber,
		Client:        info,
		DateFormatted: FormatDateBR(info.Date),
		Totals:        CalcQuoteTotals(items),
	}

	for _, g := range GroupByCategory(items) {
		pg := QuotePrintGroup{Category: g.Category}
		for _, si := range g.Items {
			pg.Lines = append(pg.Lines, QuotePrintLine{
				Service:   si.Item.Service,
				Unit:      si.Item.Unit,
				Notes:     si.Item.Notes,
				Quantity:  si.Quantity,
				UnitPrice: si.Item.Price,
				LineTotal: LineTotal(si.Item.Price, si.Quantity),
			})
		}
		data.Groups = append(data.Groups, pg)
	}
	return data
}

// WithExchangeRate returns a copy carrying the BRL-converted total.
func (d QuotePrintData) WithExchangeRate(rate float64) QuotePrintData {
	d.HasBRL = true
	d.ExchangeRate = rate
	d.TotalBRL = ConvertToBRL(d.Totals.Total, rate)
	return d
}
