package collections

import (
	"context"
	"fmt"
	"log"

	"aviationops/services"
)

var seedFlights = []services.FlightForm{
	{Registration: "PR-MJT", AircraftType: "E55P - Embraer Phenom 300", FlightDate: "2025-03-10", Origin: "SBSP", Destination: "SBRJ"},
	{Registration: "PS-CAV", AircraftType: "C25A - Cessna Citation CJ2", FlightDate: "2025-03-12", Origin: "SBBR", Destination: "SBSP"},
	{Registration: "PP-ALV", AircraftType: "PC12 - Pilatus PC-12", FlightDate: "2025-03-15", Origin: "SBPA", Destination: "SBFL"},
	{Registration: "PR-RPS", AircraftType: "E50P - Embraer Phenom 100", FlightDate: "2025-03-18", Origin: "SBSP", Destination: "SBRJ"},
}

var seedClients = []services.ClientForm{
	{
		Operator: "Táxi Aéreo Paulista Ltda", DocumentType: services.DocumentCNPJ, Document: "11222333000181",
		OperationalContact: "Marcos Ferreira", Email: "operacoes@taxiaereopaulista.com.br", Phone: "11987654321",
	},
	{
		Operator: "Ana Beatriz Lima", DocumentType: services.DocumentCPF, Document: "52998224725",
		OperationalContact: "Ana Beatriz Lima", Email: "ana.lima@example.com", Phone: "2133334444",
	},
}

// Seed inserts demo flights and clients into kv when both lists are empty,
// so a second run is a no-op.
func Seed(ctx context.Context, kv services.KVStore) error {
	flights, err := services.NewFlightRegistry(ctx, kv)
	if err != nil {
		return fmt.Errorf("seed: load flights: %w", err)
	}
	clients, err := services.NewClientRegistry(ctx, kv)
	if err != nil {
		return fmt.Errorf("seed: load clients: %w", err)
	}
	if len(flights.List()) > 0 || clients.Len() > 0 {
		log.Println("seed: data already present, skipping")
		return nil
	}

	// Oldest first so the newest flight ends up at the head of the list.
	for i := len(seedFlights) - 1; i >= 0; i-- {
		if _, err := flights.Add(ctx, seedFlights[i]); err != nil {
			return fmt.Errorf("seed: flight %s: %w", seedFlights[i].Registration, err)
		}
	}

	if _, err := clients.AddAll(ctx, seedClients); err != nil {
		return fmt.Errorf("seed: clients: %w", err)
	}

	log.Printf("seed: all seed data inserted successfully (%d flights, %d clients)\n", len(seedFlights), len(seedClients))
	return nil
}
