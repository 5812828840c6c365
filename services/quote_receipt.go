package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ClientInfo is the free-text client header attached to a quote.
// Date is an ISO date (2006-01-02) as entered in the form.
type ClientInfo struct {
	Name         string `json:"name"`
	Company      string `json:"company"`
	Aircraft     string `json:"aircraft"`
	Registration string `json:"registration"`
	Date         string `json:"date"`
}

const (
	receiptDoubleRule = "═══════════════════════════════════════"
	receiptHeavyRule  = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"
	receiptLightRule  = "─────────────────────────────────────"
)

// GenerateQuoteNumber derives a quote number from the last six digits
// of the millisecond timestamp, e.g. COT-482913.
func GenerateQuoteNumber(now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ms) > 6 {
		ms = ms[len(ms)-6:]
	}
	return "COT-" + ms
}

// CategoryGroup is a run of selected items sharing one category.
type CategoryGroup struct {
	Category string
	Items    []SelectedItem
}

// GroupByCategory groups items by category in first-seen order, keeping
// selection order inside each group.
func GroupByCategory(items []SelectedItem) []CategoryGroup {
	var groups []CategoryGroup
	index := make(map[string]int)
	for _, si := range items {
		i, ok := index[si.Item.Category]
		if !ok {
			i = len(groups)
			index[si.Item.Category] = i
			groups = append(groups, CategoryGroup{Category: si.Item.Category})
		}
		groups[i].Items = append(groups[i].Items, si)
	}
	return groups
}

// RenderReceipt renders the plain-text quote that is copied to the clipboard.
// When quoteNumber is empty one is generated from the current time; every
// other part of the output depends only on the arguments.
func RenderReceipt(info ClientInfo, items []SelectedItem, calc Calculations, quoteNumber string) string {
	if quoteNumber == "" {
		quoteNumber = GenerateQuoteNumber(time.Now())
	}

	var b strings.Builder

	b.WriteString(receiptDoubleRule + "\n")
	b.WriteString("        COTAÇÃO DE SERVIÇOS AEROPORTUÁRIOS\n")
	b.WriteString(receiptDoubleRule + "\n\n")
	fmt.Fprintf(&b, "📅 Data: %s\n", FormatDateBR(info.Date))
	fmt.Fprintf(&b, "📋 Cotação Nº: %s\n\n", quoteNumber)

	writeReceiptSection(&b, "DADOS DO CLIENTE")
	if info.Name != "" {
		fmt.Fprintf(&b, "👤 Cliente: %s\n", info.Name)
	}
	if info.Company != "" {
		fmt.Fprintf(&b, "🏢 Empresa: %s\n", info.Company)
	}
	if info.Aircraft != "" {
		fmt.Fprintf(&b, "✈️ Aeronave: %s\n", info.Aircraft)
	}
	if info.Registration != "" {
		fmt.Fprintf(&b, "🔖 Matrícula: %s\n", info.Registration)
	}

	b.WriteString("\n")
	writeReceiptSection(&b, "SERVIÇOS COTADOS")
	for _, g := range GroupByCategory(items) {
		fmt.Fprintf(&b, "\n📂 %s\n", strings.ToUpper(g.Category))
		b.WriteString(receiptLightRule + "\n")
		for _, si := range g.Items {
			fmt.Fprintf(&b, "• %s\n", si.Item.Service)
			fmt.Fprintf(&b, "  %dx %s @ %s = %s\n",
				si.Quantity, si.Item.Unit, FormatUSD(si.Item.Price), FormatUSD(LineTotal(si.Item.Price, si.Quantity)))
			if si.Item.Notes != "" {
				fmt.Fprintf(&b, "  📝 %s\n", si.Item.Notes)
			}
		}
	}

	b.WriteString("\n")
	writeReceiptSection(&b, "RESUMO FINANCEIRO")
	b.WriteString("\n")
	if calc.OtherSubtotal > 0 {
		fmt.Fprintf(&b, "Outros Serviços: %s\n", FormatUSD(calc.OtherSubtotal))
	}
	if calc.ParkingSubtotal > 0 {
		fmt.Fprintf(&b, "Estacionamento (base): %s\n", FormatUSD(calc.ParkingSubtotal))
		fmt.Fprintf(&b, "  + Taxa de Serviço (15%%): %s\n", FormatUSD(calc.ServiceFee))
		fmt.Fprintf(&b, "  + Impostos Federais (16,62%%): %s\n", FormatUSD(calc.FederalTax))
		fmt.Fprintf(&b, "Estacionamento (total): %s\n", FormatUSD(calc.ParkingWithTaxes))
	}

	b.WriteString("\n" + receiptDoubleRule + "\n")
	fmt.Fprintf(&b, "💰 VALOR TOTAL: %s\n", FormatUSD(calc.Total))
	b.WriteString(receiptDoubleRule + "\n\n")

	b.WriteString("⚠️ OBSERVAÇÕES:\n")
	b.WriteString("• Valores em USD (Dólar Americano)\n")
	b.WriteString("• Cotação válida por 7 dias\n")
	b.WriteString("• Taxas de estacionamento incluem:\n")
	b.WriteString("  - 15% Taxa de Serviço\n")
	b.WriteString("  - 16,62% Impostos Federais\n")
	b.WriteString("• Sujeito à disponibilidade\n\n")
	b.WriteString("📞 Para confirmar, entre em contato conosco.\n")
	b.WriteString(receiptDoubleRule + "\n")

	return b.String()
}

func writeReceiptSection(b *strings.Builder, title string) {
	b.WriteString(receiptHeavyRule + "\n")
	b.WriteString(title + "\n")
	b.WriteString(receiptHeavyRule + "\n")
}
