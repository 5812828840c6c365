package services

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Flight is a confirmed flight. FlightDate is an ISO date (yyyy-mm-dd).
type Flight struct {
	ID           string    `json:"id"`
	Registration string    `json:"prefixo"`
	AircraftType string    `json:"tipoAeronave"`
	FlightDate   string    `json:"dataVoo"`
	Origin       string    `json:"origem"`
	Destination  string    `json:"destino"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Route returns "ORIGIN → DESTINATION".
func (f Flight) Route() string {
	return f.Origin + " → " + f.Destination
}

// FlightForm is the flight form as submitted.
type FlightForm struct {
	Registration string
	AircraftType string
	FlightDate   string
	Origin       string
	Destination  string
}

func (f FlightForm) normalized() FlightForm {
	f.Registration = strings.ToUpper(strings.TrimSpace(f.Registration))
	f.AircraftType = strings.TrimSpace(f.AircraftType)
	f.FlightDate = strings.TrimSpace(f.FlightDate)
	f.Origin = strings.ToUpper(strings.TrimSpace(f.Origin))
	f.Destination = strings.ToUpper(strings.TrimSpace(f.Destination))
	return f
}

// ValidateFlight requires all five fields and an ISO flight date.
func ValidateFlight(f FlightForm) error {
	f = f.normalized()
	errs := ValidationErrors{}
	if f.Registration == "" {
		errs.Add("prefixo", "Prefixo é obrigatório")
	}
	if f.AircraftType == "" {
		errs.Add("tipoAeronave", "Tipo de aeronave é obrigatório")
	}
	if f.FlightDate == "" {
		errs.Add("dataVoo", "Data do voo é obrigatória")
	} else if _, err := time.Parse(time.DateOnly, f.FlightDate); err != nil {
		errs.Add("dataVoo", "Data do voo inválida")
	}
	if f.Origin == "" {
		errs.Add("origem", "Origem é obrigatória")
	}
	if f.Destination == "" {
		errs.Add("destino", "Destino é obrigatório")
	}
	return errs.OrNil()
}

// FlightRegistry keeps confirmed flights newest first and rewrites the whole
// list to the KVStore on every change.
type FlightRegistry struct {
	mu      sync.Mutex
	kv      KVStore
	flights []Flight

	now func() time.Time
}

// NewFlightRegistry loads the flights from kv. If loading fails the registry
// starts empty and the load error is returned alongside it.
func NewFlightRegistry(ctx context.Context, kv KVStore) (*FlightRegistry, error) {
	r := &FlightRegistry{kv: kv, now: time.Now}
	flights, err := loadList[Flight](ctx, kv, FlightsKey)
	r.flights = flights
	return r, err
}

// List returns the flights, newest first.
func (r *FlightRegistry) List() []Flight {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Flight(nil), r.flights...)
}

// Get returns the flight with the given ID.
func (r *FlightRegistry) Get(id string) (Flight, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.flights {
		if f.ID == id {
			return f, true
		}
	}
	return Flight{}, false
}

// Add validates and records a flight at the head of the list. IDs are the
// creation time in Unix milliseconds.
func (r *FlightRegistry) Add(ctx context.Context, form FlightForm) (Flight, error) {
	if err := ValidateFlight(form); err != nil {
		return Flight{}, err
	}
	form = form.normalized()

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	f := Flight{
		ID:           r.newID(now),
		Registration: form.Registration,
		AircraftType: form.AircraftType,
		FlightDate:   form.FlightDate,
		Origin:       form.Origin,
		Destination:  form.Destination,
		CreatedAt:    now,
	}

	updated := make([]Flight, 0, len(r.flights)+1)
	updated = append(updated, f)
	updated = append(updated, r.flights...)

	if err := saveList(ctx, r.kv, FlightsKey, updated); err != nil {
		return Flight{}, err
	}
	r.flights = updated
	return f, nil
}

// newID bumps the millisecond timestamp until it is unused.
func (r *FlightRegistry) newID(now time.Time) string {
	ms := now.UnixMilli()
	for {
		id := strconv.FormatInt(ms, 10)
		taken := false
		for _, f := range r.flights {
			if f.ID == id {
				taken = true
				break
			}
		}
		if !taken {
			return id
		}
		ms++
	}
}

// Update replaces the editable fields of a flight, keeping its position,
// ID and creation time.
func (r *FlightRegistry) Update(ctx context.Context, id string, form FlightForm) (Flight, error) {
	if err := ValidateFlight(form); err != nil {
		return Flight{}, err
	}
	form = form.normalized()

	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, f := range r.flights {
		if f.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Flight{}, ErrNotFound
	}

	updated := append([]Flight(nil), r.flights...)
	f := updated[idx]
	f.Registration = form.Registration
	f.AircraftType = form.AircraftType
	f.FlightDate = form.FlightDate
	f.Origin = form.Origin
	f.Destination = form.Destination
	updated[idx] = f

	if err := saveList(ctx, r.kv, FlightsKey, updated); err != nil {
		return Flight{}, err
	}
	r.flights = updated
	return f, nil
}

// Delete removes a flight. Unknown IDs return ErrNotFound.
func (r *FlightRegistry) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	updated := make([]Flight, 0, len(r.flights))
	for _, f := range r.flights {
		if f.ID != id {
			updated = append(updated, f)
		}
	}
	if len(updated) == len(r.flights) {
		return ErrNotFound
	}

	if err := saveList(ctx, r.kv, FlightsKey, updated); err != nil {
		return err
	}
	r.flights = updated
	return nil
}

// OriginCount is the number of flights departing from one origin.
type OriginCount struct {
	Origin string
	Count  int
}

// FlightStats summarises a flight list relative to a reference day.
type FlightStats struct {
	Total         int
	Upcoming      int // flight date on or after today
	Past          int
	ThisMonth     int
	ByOrigin      []OriginCount // most flights first, then by origin
	AircraftTypes []string      // distinct, sorted
	TopRoute      string        // most frequent route, "" when there are no flights
	TopRouteCount int
}

// ComputeFlightStats aggregates flights in a single pass. Flights with an
// unparsable date count toward the total only.
func ComputeFlightStats(flights []Flight, now time.Time) FlightStats {
	today := now.Format(time.DateOnly)
	month := today[:7]

	stats := FlightStats{Total: len(flights)}
	origins := map[string]int{}
	types := map[string]bool{}
	routes := map[string]int{}

	for _, f := range flights {
		if _, err := time.Parse(time.DateOnly, f.FlightDate); err == nil {
			if f.FlightDate >= today {
				stats.Upcoming++
			} else {
				stats.Past++
			}
			if strings.HasPrefix(f.FlightDate, month) {
				stats.ThisMonth++
			}
		}
		if f.Origin != "" {
			origins[f.Origin]++
		}
		if f.AircraftType != "" {
			types[f.AircraftType] = true
		}
		route := f.Route()
		routes[route]++
		// Ties go to the alphabetically first route so the result is stable.
		if n := routes[route]; n > stats.TopRouteCount || (n == stats.TopRouteCount && route < stats.TopRoute) {
			stats.TopRoute, stats.TopRouteCount = route, n
		}
	}

	for o, n := range origins {
		stats.ByOrigin = append(stats.ByOrigin, OriginCount{Origin: o, Count: n})
	}
	sort.Slice(stats.ByOrigin, func(i, j int) bool {
		if stats.ByOrigin[i].Count != stats.ByOrigin[j].Count {
			return stats.ByOrigin[i].Count > stats.ByOrigin[j].Count
		}
		return stats.ByOrigin[i].Origin < stats.ByOrigin[j].Origin
	})

	for t := range types {
		stats.AircraftTypes = append(stats.AircraftTypes, t)
	}
	sort.Strings(stats.AircraftTypes)

	return stats
}
