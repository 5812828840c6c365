package services

import (
	"sort"
	"strings"
)

// BaseStatus is the operating status of a base.
type BaseStatus string

const (
	BaseOperational BaseStatus = "operational"
	BaseRestricted  BaseStatus = "restricted"
	BaseClosed      BaseStatus = "closed"
)

// BaseStatuses lists the statuses in display order.
var BaseStatuses = []BaseStatus{BaseOperational, BaseRestricted, BaseClosed}

// Label returns the Portuguese status name.
func (s BaseStatus) Label() string {
	switch s {
	case BaseOperational:
		return "Operacional"
	case BaseRestricted:
		return "Restrito"
	case BaseClosed:
		return "Fechado"
	}
	return string(s)
}

// Region groups Brazilian states.
type Region struct {
	Name   string
	States []string
}

// Regions lists the five regions in display order.
var Regions = []Region{
	{Name: "Sul", States: []string{"RS", "SC", "PR"}},
	{Name: "Sudeste", States: []string{"SP", "RJ", "MG", "ES"}},
	{Name: "Centro-Oeste", States: []string{"DF", "GO", "MT", "MS"}},
	{Name: "Nordeste", States: []string{"BA", "PE", "CE", "MA", "PI", "RN", "PB", "SE", "AL"}},
	{Name: "Norte", States: []string{"AM", "PA", "AC", "RO", "RR", "AP", "TO"}},
}

// RegionNames returns the region names in display order.
func RegionNames() []string {
	names := make([]string, len(Regions))
	for i, r := range Regions {
		names[i] = r.Name
	}
	return names
}

type Contact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

// OperatingHours is an opening window as "HH:MM" times.
type OperatingHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
	Is24h bool   `json:"is24h,omitempty"`
}

// FormatHours renders h as "06:00 - 23:00", "24 horas", or "—" when nil.
func FormatHours(h *OperatingHours) string {
	switch {
	case h == nil:
		return "—"
	case h.Is24h:
		return "24 horas"
	}
	return h.Open + " - " + h.Close
}

// Authority is a federal agency (police or revenue) posted at a base.
type Authority struct {
	Present bool            `json:"present"`
	Contact *Contact        `json:"contact,omitempty"`
	Hours   *OperatingHours `json:"hours,omitempty"`
}

type BaseService struct {
	Name      string `json:"name"`
	Available bool   `json:"available"`
	Notes     string `json:"notes,omitempty"`
}

// BaseCapacity limits are in meters and tons.
type BaseCapacity struct {
	MaxAircraftLength   float64 `json:"maxAircraftLength"`
	MaxAircraftWingspan float64 `json:"maxAircraftWingspan"`
	MaxAircraftWeight   float64 `json:"maxAircraftWeight"`
	ParkingSpots        int     `json:"parkingSpots"`
	HangarCapacity      int     `json:"hangarCapacity"`
}

// Base is one operating base of the network.
type Base struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	ICAO           string         `json:"icaoCode"`
	City           string         `json:"city"`
	State          string         `json:"state"`
	Region         string         `json:"region"`
	Manager        Contact        `json:"manager"`
	FederalPolice  Authority      `json:"federalPolice"`
	FederalRevenue Authority      `json:"federalRevenue"`
	AirportHours   OperatingHours `json:"airportHours"`
	Services       []BaseService  `json:"services"`
	Equipment      []string       `json:"equipment"`
	Capacity       BaseCapacity   `json:"capacity"`
	Notes          string         `json:"notes,omitempty"`
	Status         BaseStatus     `json:"status"`
}

// AvailableServices returns the services on offer, in catalog order.
func (b Base) AvailableServices() []BaseService {
	return b.servicesWhere(true)
}

// UnavailableServices returns the services not on offer.
func (b Base) UnavailableServices() []BaseService {
	return b.servicesWhere(false)
}

func (b Base) servicesWhere(available bool) []BaseService {
	var out []BaseService
	for _, s := range b.Services {
		if s.Available == available {
			out = append(out, s)
		}
	}
	return out
}

// BaseFilter narrows the directory. Empty fields and "all" match everything.
type BaseFilter struct {
	Query  string // substring of name, ICAO code or city, case-insensitive
	Status string
	State  string
	Region string
}

func anyValue(v string) bool {
	return v == "" || v == "all"
}

// Matches reports whether b passes every filter.
func (f BaseFilter) Matches(b Base) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		if !strings.Contains(strings.ToLower(b.Name), q) &&
			!strings.Contains(strings.ToLower(b.ICAO), q) &&
			!strings.Contains(strings.ToLower(b.City), q) {
			return false
		}
	}
	if !anyValue(f.Status) && string(b.Status) != f.Status {
		return false
	}
	if !anyValue(f.State) && b.State != f.State {
		return false
	}
	if !anyValue(f.Region) && b.Region != f.Region {
		return false
	}
	return true
}

// BaseDirectory is the read-only list of bases.
type BaseDirectory struct {
	bases []Base
}

// NewBaseDirectory builds a directory over bases, in the given order.
func NewBaseDirectory(bases []Base) *BaseDirectory {
	return &BaseDirectory{bases: append([]Base(nil), bases...)}
}

// DefaultBaseDirectory returns the built-in base network.
func DefaultBaseDirectory() *BaseDirectory {
	return NewBaseDirectory(baseData)
}

// All returns every base in directory order.
func (d *BaseDirectory) All() []Base {
	return append([]Base(nil), d.bases...)
}

// Get returns the base with the given ID.
func (d *BaseDirectory) Get(id string) (Base, bool) {
	for _, b := range d.bases {
		if b.ID == id {
			return b, true
		}
	}
	return Base{}, false
}

// Filter returns the bases matching f, in directory order.
func (d *BaseDirectory) Filter(f BaseFilter) []Base {
	var out []Base
	for _, b := range d.bases {
		if f.Matches(b) {
			out = append(out, b)
		}
	}
	return out
}

// States returns the distinct states with a base, sorted.
func (d *BaseDirectory) States() []string {
	seen := map[string]bool{}
	var states []string
	for _, b := range d.bases {
		if !seen[b.State] {
			seen[b.State] = true
			states = append(states, b.State)
		}
	}
	sort.Strings(states)
	return states
}

// RegionGroup is the bases of one region.
type RegionGroup struct {
	Region string
	Bases  []Base
}

// GroupBasesByRegion groups bases by region. Groups appear in the order
// their first base appears.
func GroupBasesByRegion(bases []Base) []RegionGroup {
	var groups []RegionGroup
	index := map[string]int{}
	for _, b := range bases {
		i, ok := index[b.Region]
		if !ok {
			i = len(groups)
			index[b.Region] = i
			groups = append(groups, RegionGroup{Region: b.Region})
		}
		groups[i].Bases = append(groups[i].Bases, b)
	}
	return groups
}

// BaseStats counts bases by status.
type BaseStats struct {
	Total       int
	Operational int
	Restricted  int
	Closed      int
}

func ComputeBaseStats(bases []Base) BaseStats {
	s := BaseStats{Total: len(bases)}
	for _, b := range bases {
		switch b.Status {
		case BaseOperational:
			s.Operational++
		case BaseRestricted:
			s.Restricted++
		case BaseClosed:
			s.Closed++
		}
	}
	return s
}
