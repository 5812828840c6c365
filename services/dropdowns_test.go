package services

import (
	"testing"
)

func TestAircraftTypeOptions(t *testing.T) {
	if len(AircraftTypeOptions) == 0 {
		t.Fatal("AircraftTypeOptions should not be empty")
	}

	seen := make(map[string]bool)
	for _, a := range AircraftTypeOptions {
		if a.Designator == "" || a.Name == "" {
			t.Errorf("incomplete aircraft type %+v", a)
		}
		if seen[a.Designator] {
			t.Errorf("duplicate designator %q", a.Designator)
		}
		seen[a.Designator] = true
	}
}

func TestSearchAircraftTypes(t *testing.T) {
	tests := []struct {
		name  string
		term  string
		limit int
		want  []string
	}{
		{"empty term", "", 10, nil},
		{"designator", "e55p", 10, []string{"E55P"}},
		{"name substring", "phenom", 10, []string{"E50P", "E55P"}},
		{"limit", "cessna", 2, []string{"C25A", "C25B"}},
		{"no match", "zeppelin", 10, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SearchAircraftTypes(tt.term, tt.limit)
			if len(got) != len(tt.want) {
				t.Fatalf("SearchAircraftTypes(%q) returned %d results, want %d: %v", tt.term, len(got), len(tt.want), got)
			}
			for i, a := range got {
				if a.Designator != tt.want[i] {
					t.Errorf("result %d = %q, want %q", i, a.Designator, tt.want[i])
				}
			}
		})
	}
}

func TestAircraftTypeLabel(t *testing.T) {
	a := AircraftType{"E55P", "Embraer Phenom 300"}
	if got := a.Label(); got != "E55P - Embraer Phenom 300" {
		t.Errorf("Label() = %q", got)
	}
}
