package services

import "strings"

// AircraftType is an ICAO type designator with its display name.
type AircraftType struct {
	Designator string
	Name       string
}

// Label returns "DESIG - Name", the value stored on a flight.
func (a AircraftType) Label() string {
	return a.Designator + " - " + a.Name
}

// AircraftTypeOptions lists the aircraft types suggested on the flight form.
var AircraftTypeOptions = []AircraftType{
	{"A320", "Airbus A320"},
	{"A20N", "Airbus A320neo"},
	{"AT76", "ATR 72-600"},
	{"B38M", "Boeing 737 MAX 8"},
	{"B738", "Boeing 737-800"},
	{"BE20", "Beechcraft King Air 200"},
	{"BE9L", "Beechcraft King Air C90"},
	{"C25A", "Cessna Citation CJ2"},
	{"C25B", "Cessna Citation CJ3"},
	{"C560", "Cessna Citation V"},
	{"C56X", "Cessna Citation Excel"},
	{"C68A", "Cessna Citation Latitude"},
	{"C680", "Cessna Citation Sovereign"},
	{"C700", "Cessna Citation Longitude"},
	{"CL30", "Bombardier Challenger 300"},
	{"CL35", "Bombardier Challenger 350"},
	{"CL60", "Bombardier Challenger 604"},
	{"E35L", "Embraer Legacy 600"},
	{"E50P", "Embraer Phenom 100"},
	{"E55P", "Embraer Phenom 300"},
	{"E545", "Embraer Praetor 500"},
	{"E550", "Embraer Praetor 600"},
	{"E195", "Embraer E195"},
	{"F2TH", "Dassault Falcon 2000"},
	{"F900", "Dassault Falcon 900"},
	{"FA7X", "Dassault Falcon 7X"},
	{"G280", "Gulfstream G280"},
	{"GLEX", "Bombardier Global Express"},
	{"GLF4", "Gulfstream IV"},
	{"GLF5", "Gulfstream V"},
	{"GLF6", "Gulfstream G650"},
	{"H25B", "Hawker 800"},
	{"LJ45", "Learjet 45"},
	{"LJ60", "Learjet 60"},
	{"PC12", "Pilatus PC-12"},
	{"PC24", "Pilatus PC-24"},
}

// SearchAircraftTypes returns up to limit types whose designator or name
// contains term, case-insensitively. An empty term matches nothing.
func SearchAircraftTypes(term string, limit int) []AircraftType {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}
	var out []AircraftType
	for _, a := range AircraftTypeOptions {
		if strings.Contains(strings.ToLower(a.Designator), term) ||
			strings.Contains(strings.ToLower(a.Name), term) {
			out = append(out, a)
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out
}
