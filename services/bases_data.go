package services

func standardBaseServices(notes map[string]string, unavailable ...string) []BaseService {
	names := []string{
		"Abastecimento JET-A1", "Abastecimento AVGAS", "GPU", "Reboque",
		"Hangaragem", "Manutenção", "Catering", "Crew Lounge",
	}
	off := map[string]bool{}
	for _, n := range unavailable {
		off[n] = true
	}
	out := make([]BaseService, 0, len(names))
	for _, n := range names {
		out = append(out, BaseService{Name: n, Available: !off[n], Notes: notes[n]})
	}
	return out
}

var baseData = []Base{
	{
		ID: "1", Name: "Base Porto Alegre - Salgado Filho", ICAO: "SBPA",
		City: "Porto Alegre", State: "RS", Region: "Sul",
		Manager: Contact{Name: "Marcos Ferreira", Phone: "(51) 99123-4567", Email: "marcos.ferreira@aviacao.com.br"},
		FederalPolice: Authority{
			Present: true,
			Contact: &Contact{Name: "Delegacia PF Salgado Filho", Phone: "(51) 3358-2000"},
			Hours:   &OperatingHours{Open: "06:00", Close: "23:00"},
		},
		FederalRevenue: Authority{
			Present: true,
			Contact: &Contact{Name: "Receita Federal - POA", Phone: "(51) 3358-2100"},
			Hours:   &OperatingHours{Open: "08:00", Close: "18:00"},
		},
		AirportHours: OperatingHours{Open: "05:30", Close: "23:30"},
		Services: append(standardBaseServices(nil),
			BaseService{Name: "Deicing", Available: true, Notes: "Disponível no inverno"}),
		Equipment: []string{"GPU 28V", "GPU 115V", "Escada", "Rebocador", "Carrinho de bagagem", "Extintor ABC", "Deicing"},
		Capacity:  BaseCapacity{MaxAircraftLength: 50, MaxAircraftWingspan: 45, MaxAircraftWeight: 80, ParkingSpots: 12, HangarCapacity: 6},
		Status:    BaseOperational,
	},
	{
		ID: "2", Name: "Base Florianópolis - Hercílio Luz", ICAO: "SBFL",
		City: "Florianópolis", State: "SC", Region: "Sul",
		Manager: Contact{Name: "Carolina Machado", Phone: "(48) 99876-5432", Email: "carolina.machado@aviacao.com.br"},
		FederalPolice: Authority{
			Present: true,
			Contact: &Contact{Name: "Delegacia PF Florianópolis", Phone: "(48) 3331-6000"},
			Hours:   &OperatingHours{Open: "06:00", Close: "22:00"},
		},
		FederalRevenue: Authority{
			Present: true,
			Contact: &Contact{Name: "Receita Federal - FLN", Phone: "(48) 3331-6100"},
			Hours:   &OperatingHours{Open: "08:00", Close: "17:00"},
		},
		AirportHours: OperatingHours{Open: "06:00", Close: "22:30"},
		Services: standardBaseServices(map[string]string{
			"Manutenção": "Parceiro autorizado",
			"Catering":   "Pedido com 12h antecedência",
		}),
		Equipment: []string{"GPU 28V", "Escada", "Rebocador", "Carrinho de bagagem", "Extintor ABC"},
		Capacity:  BaseCapacity{MaxAircraftLength: 42, MaxAircraftWingspan: 38, MaxAircraftWeight: 65, ParkingSpots: 8, HangarCapacity: 4},
		Status:    BaseOperational,
	},
	{
		ID: "3", Name: "Base Curitiba - Afonso Pena", ICAO: "SBCT",
		City: "Curitiba", State: "PR", Region: "Sul",
		Manager: Contact{Name: "Ricardo Almeida", Phone: "(41) 99234-5678", Email: "ricardo.almeida@aviacao.com.br"},
		FederalPolice: Authority{
			Present: true,
			Contact: &Contact{Name: "Delegacia PF Afonso Pena", Phone: "(41) 3381-1500"},
			Hours:   &OperatingHours{Open: "00:00", Close: "23:59", Is24h: true},
		},
		FederalRevenue: Authority{
			Present: true,
			Contact: &Contact{Name: "Receita Federal - CWB", Phone: "(41) 3381-1600"},
			Hours:   &OperatingHours{Open: "07:00", Close: "19:00"},
		},
		AirportHours: OperatingHours{Open: "00:00", Close: "23:59", Is24h: true},
		Services:     standardBaseServices(nil),
		Equipment:    []string{"GPU 28V", "GPU 115V", "Escada grande", "Escada pequena", "Rebocador", "Carrinho de bagagem", "Extintor ABC", "Ar condicionado de solo"},
		Capacity:     BaseCapacity{MaxAircraftLength: 55, MaxAircraftWingspan: 48, MaxAircraftWeight: 90, ParkingSpots: 15, HangarCapacity: 8},
		Status:       BaseOperational,
	},
	{
		ID: "4", Name: "Base São Paulo - Campo de Marte", ICAO: "SBMT",
		City: "São Paulo", State: "SP", Region: "Sudeste",
		Manager: Contact{Name: "Fernanda Souza", Phone: "(11) 99345-6789", Email: "fernanda.souza@aviacao.com.br"},
		FederalPolice: Authority{Present: false},
		FederalRevenue: Authority{
			Present: true,
			Contact: &Contact{Name: "Receita Federal - Campo de Marte", Phone: "(11) 2221-4000"},
			Hours:   &OperatingHours{Open: "08:00", Close: "18:00"},
		},
		AirportHours: OperatingHours{Open: "06:00", Close: "22:00"},
		Services:     standardBaseServices(nil, "Abastecimento AVGAS"),
		Equipment:    []string{"GPU 28V", "Escada", "Rebocador", "Extintor ABC"},
		Capacity:     BaseCapacity{MaxAircraftLength: 30, MaxAircraftWingspan: 28, MaxAircraftWeight: 40, ParkingSpots: 20, HangarCapacity: 10},
		Status:       BaseOperational,
	},
	{
		ID: "5", Name: "Base Brasília - Presidente Juscelino Kubitschek", ICAO: "SBBR",
		City: "Brasília", State: "DF", Region: "Centro-Oeste",
		Manager: Contact{Name: "Paulo Ribeiro", Phone: "(61) 99456-7890", Email: "paulo.ribeiro@aviacao.com.br"},
		FederalPolice: Authority{
			Present: true,
			Contact: &Contact{Name: "Delegacia PF Aeroporto de Brasília", Phone: "(61) 3364-9000"},
			Hours:   &OperatingHours{Is24h: true},
		},
		FederalRevenue: Authority{
			Present: true,
			Contact: &Contact{Name: "Receita Federal - BSB", Phone: "(61) 3364-9100"},
			Hours:   &OperatingHours{Open: "07:00", Close: "22:00"},
		},
		AirportHours: OperatingHours{Is24h: true},
		Services:     standardBaseServices(nil, "Hangaragem"),
		Equipment:    []string{"GPU 28V", "GPU 115V", "Escada grande", "Rebocador", "Extintor ABC"},
		Capacity:     BaseCapacity{MaxAircraftLength: 60, MaxAircraftWingspan: 52, MaxAircraftWeight: 120, ParkingSpots: 6},
		Notes:        "Pátio em obras: posições reduzidas e pernoite sob consulta",
		Status:       BaseRestricted,
	},
	{
		ID: "6", Name: "Base Manaus - Eduardo Gomes", ICAO: "SBEG",
		City: "Manaus", State: "AM", Region: "Norte",
		Manager: Contact{Name: "Luciana Costa", Phone: "(92) 99567-8901"},
		FederalPolice: Authority{
			Present: true,
			Contact: &Contact{Name: "Delegacia PF Eduardo Gomes", Phone: "(92) 3652-1200"},
			Hours:   &OperatingHours{Open: "06:00", Close: "00:00"},
		},
		FederalRevenue: Authority{Present: false},
		AirportHours:   OperatingHours{Is24h: true},
		Services:       standardBaseServices(nil, "Catering", "Crew Lounge", "Manutenção"),
		Equipment:      []string{"GPU 28V", "Escada", "Extintor ABC"},
		Capacity:       BaseCapacity{MaxAircraftLength: 45, MaxAircraftWingspan: 40, MaxAircraftWeight: 75, ParkingSpots: 5},
		Notes:          "Operação suspensa para reforma do terminal executivo",
		Status:         BaseClosed,
	},
}
