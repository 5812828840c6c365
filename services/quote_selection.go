package services

import "math"

// SelectedItem is a catalog item chosen for a quote with its quantity (≥1).
type SelectedItem struct {
	Item     PricingItem `json:"item"`
	Quantity int         `json:"quantity"`
}

// Selection is the live, ordered set of items a user has toggled on.
// Order is the order in which items were added.
type Selection struct {
	items []SelectedItem
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{}
}

func (s *Selection) indexOf(itemID string) int {
	for i, si := range s.items {
		if si.Item.ID == itemID {
			return i
		}
	}
	return -1
}

// Toggle removes the item if it is selected, otherwise appends it with
// quantity 1. The quantity of a removed item is discarded, so re-adding it
// starts again at 1. It reports whether the item is selected afterwards.
func (s *Selection) Toggle(item PricingItem) bool {
	if i := s.indexOf(item.ID); i >= 0 {
		s.items = append(s.items[:i:i], s.items[i+1:]...)
		return false
	}
	s.items = append(s.items, SelectedItem{Item: item, Quantity: 1})
	return true
}

// UpdateQuantity adds delta to the item's quantity, never going below 1 and
// saturating at math.MaxInt. Unknown IDs are ignored.
func (s *Selection) UpdateQuantity(itemID string, delta int) {
	i := s.indexOf(itemID)
	if i < 0 {
		return
	}
	q := s.items[i].Quantity
	if delta > 0 && q > math.MaxInt-delta {
		s.items[i].Quantity = math.MaxInt
		return
	}
	s.items[i].Quantity = max(1, q+delta)
}

// IsSelected reports whether the item is currently in the selection.
func (s *Selection) IsSelected(itemID string) bool {
	return s.indexOf(itemID) >= 0
}

// Quantity returns the current quantity of an item, or 0 when not selected.
func (s *Selection) Quantity(itemID string) int {
	if i := s.indexOf(itemID); i >= 0 {
		return s.items[i].Quantity
	}
	return 0
}

// Items returns an independent copy of the selected items in selection order.
func (s *Selection) Items() []SelectedItem {
	return copySelectedItems(s.items)
}

// Len returns the number of selected items.
func (s *Selection) Len() int { return len(s.items) }

// Clear empties the selection.
func (s *Selection) Clear() { s.items = nil }

// Totals computes the current totals.
func (s *Selection) Totals() Calculations {
	return CalcQuoteTotals(s.items)
}

// copySelectedItems returns a deep copy. PricingItem holds only value fields,
// so copying the slice is enough to detach it from the source.
func copySelectedItems(items []SelectedItem) []SelectedItem {
	if items == nil {
		return nil
	}
	out := make([]SelectedItem, len(items))
	copy(out, items)
	return out
}
