package services

import (
	"bytes"
	"math"
)

// bytesReader wraps a byte slice in a bytes.Reader for use with excelize.OpenReader.
func bytesReader(b []byte) *bytes.Reader {
	return bytes.NewReader(b)
}

// floatClose compares two floats within a tolerance.
func floatClose(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// testItem looks an item up in the bundled catalog and panics when missing.
func testItem(id string) PricingItem {
	it, ok := DefaultCatalog().Find(id)
	if !ok {
		panic("catalog item not found: " + id)
	}
	return it
}

// selected builds a selection line.
func selected(item PricingItem, qty int) SelectedItem {
	return SelectedItem{Item: item, Quantity: qty}
}
