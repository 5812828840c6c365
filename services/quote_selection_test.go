package services

import (
	"math"
	"testing"
)

func TestSelection_ToggleAddsAndRemoves(t *testing.T) {
	s := NewSelection()

	if on := s.Toggle(jetA1); !on {
		t.Fatal("first toggle should select the item")
	}
	if !s.IsSelected("1") || s.Quantity("1") != 1 {
		t.Fatalf("expected item 1 selected with quantity 1, got selected=%v qty=%d", s.IsSelected("1"), s.Quantity("1"))
	}

	if on := s.Toggle(jetA1); on {
		t.Fatal("second toggle should deselect the item")
	}
	if s.IsSelected("1") || s.Len() != 0 {
		t.Fatalf("expected empty selection, got %d items", s.Len())
	}
}

func TestSelection_ToggleResetsQuantity(t *testing.T) {
	s := NewSelection()
	s.Toggle(jetA1)
	s.UpdateQuantity("1", 9)
	if got := s.Quantity("1"); got != 10 {
		t.Fatalf("quantity = %d, want 10", got)
	}

	s.Toggle(jetA1)
	s.Toggle(jetA1)
	if got := s.Quantity("1"); got != 1 {
		t.Errorf("quantity after re-add = %d, want 1", got)
	}
}

func TestSelection_ToggleKeepsOrder(t *testing.T) {
	s := NewSelection()
	a, b, c := testItem("1"), testItem("4"), testItem("9a")
	s.Toggle(a)
	s.Toggle(b)
	s.Toggle(c)
	s.Toggle(b)
	s.Toggle(b)

	items := s.Items()
	want := []string{"1", "9a", "4"}
	if len(items) != len(want) {
		t.Fatalf("got %d items, want %d", len(items), len(want))
	}
	for i, id := range want {
		if items[i].Item.ID != id {
			t.Errorf("items[%d] = %q, want %q", i, items[i].Item.ID, id)
		}
	}
}

func TestSelection_UpdateQuantity(t *testing.T) {
	tests := []struct {
		name   string
		deltas []int
		want   int
	}{
		{"increment", []int{1}, 2},
		{"increment twice", []int{1, 1}, 3},
		{"decrement at floor", []int{-1}, 1},
		{"large negative floors at one", []int{-1000}, 1},
		{"up then down", []int{5, -2}, 4},
		{"down past floor then up", []int{-3, 1}, 2},
		{"huge increment saturates", []int{math.MaxInt}, math.MaxInt},
		{"saturated then down", []int{math.MaxInt, math.MaxInt, -1}, math.MaxInt - 1},
		{"most negative floors at one", []int{math.MinInt}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSelection()
			s.Toggle(jetA1)
			for _, d := range tt.deltas {
				s.UpdateQuantity("1", d)
			}
			if got := s.Quantity("1"); got != tt.want {
				t.Errorf("quantity = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSelection_UpdateQuantityUnknownIgnored(t *testing.T) {
	s := NewSelection()
	s.Toggle(jetA1)
	s.UpdateQuantity("does-not-exist", 5)
	if s.Len() != 1 || s.Quantity("does-not-exist") != 0 {
		t.Errorf("unknown id changed the selection: %+v", s.Items())
	}
}

func TestSelection_ItemsIsACopy(t *testing.T) {
	s := NewSelection()
	s.Toggle(jetA1)

	items := s.Items()
	items[0].Quantity = 50
	if got := s.Quantity("1"); got != 1 {
		t.Errorf("mutating Items() changed the selection: quantity = %d", got)
	}
}

func TestSelection_TotalsAndClear(t *testing.T) {
	s := NewSelection()
	s.Toggle(parkingSm)
	s.UpdateQuantity("4", 9)
	if got := s.Totals().Total; !floatClose(got, 592.29) {
		t.Errorf("Total = %v, want 592.29", got)
	}

	s.Clear()
	if s.Len() != 0 || s.Totals() != (Calculations{}) {
		t.Errorf("Clear left %d items, totals %+v", s.Len(), s.Totals())
	}
}
