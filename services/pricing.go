// Package services provides the quotation engine and the pricing, export and
// registry logic behind the back-office pages.
package services

// Surcharges applied to the parking subtotal only.
const (
	ServiceFeeRate = 0.15   // 15%
	FederalTaxRate = 0.1662 // 16.62%
)

// Calculations holds the derived totals for a selection. Nothing is rounded;
// rounding happens only when amounts are formatted for display.
type Calculations struct {
	Subtotal         float64
	ParkingSubtotal  float64
	OtherSubtotal    float64
	ServiceFee       float64 // ParkingSubtotal * ServiceFeeRate
	FederalTax       float64 // ParkingSubtotal * FederalTaxRate
	ParkingWithTaxes float64 // ParkingSubtotal + ServiceFee + FederalTax
	Total            float64 // OtherSubtotal + ParkingWithTaxes
}

// IsParking reports whether an item falls in the surcharged parking category.
// Any other category, known or not, counts as "other".
func IsParking(item PricingItem) bool {
	return item.Category == CategoryParking
}

// LineTotal returns price × quantity for one selected line.
func LineTotal(price float64, quantity int) float64 {
	return price * float64(quantity)
}

// CalcQuoteTotals computes the quote totals in a single pass over the
// selected items. An empty selection yields all-zero totals.
func CalcQuoteTotals(items []SelectedItem) Calculations {
	var calc Calculations
	for _, si := range items {
		line := LineTotal(si.Item.Price, si.Quantity)
		calc.Subtotal += line
		if IsParking(si.Item) {
			calc.ParkingSubtotal += line
		} else {
			calc.OtherSubtotal += line
		}
	}

	calc.ServiceFee = calc.ParkingSubtotal * ServiceFeeRate
	calc.FederalTax = calc.ParkingSubtotal * FederalTaxRate
	calc.ParkingWithTaxes = calc.ParkingSubtotal + calc.ServiceFee + calc.FederalTax
	calc.Total = calc.OtherSubtotal + calc.ParkingWithTaxes
	return calc
}
