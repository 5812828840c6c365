package services

// PricingItem is one priced service from the reference catalog. Prices are in USD.
type PricingItem struct {
	ID       string  `json:"id"`
	Category string  `json:"category"`
	Service  string  `json:"service"`
	Unit     string  `json:"unit"`
	Price    float64 `json:"price"`
	Notes    string  `json:"notes,omitempty"`
}

// Category names used by the catalog and the pricing pages.
const (
	CategoryFuel      = "Combustível"
	CategoryParking   = "Estacionamento"
	CategoryHangar    = "Hangaragem"
	CategoryEquipment = "Equipamentos"
	CategoryRamp      = "Serviços de Rampa"
	CategoryCrew      = "Crew e Passageiros"
)

// PricingCategories lists the catalog categories in display order.
var PricingCategories = []string{
	CategoryFuel,
	CategoryParking,
	CategoryHangar,
	CategoryEquipment,
	CategoryRamp,
	CategoryCrew,
}

var pricingData = []PricingItem{
	{ID: "1", Category: CategoryFuel, Service: "JET-A1", Unit: "por litro", Price: 6.50},
	{ID: "2", Category: CategoryFuel, Service: "AVGAS 100LL", Unit: "por litro", Price: 8.90},
	{ID: "3", Category: CategoryFuel, Service: "Taxa de abastecimento", Unit: "por operação", Price: 150.00, Notes: "Mínimo 200 litros"},

	{ID: "4", Category: CategoryParking, Service: "Nacional - Aeronave até 5.700kg", Unit: "por hora", Price: 45.00},
	{ID: "5", Category: CategoryParking, Service: "Nacional - Aeronave 5.701kg a 15.000kg", Unit: "por hora", Price: 85.00},
	{ID: "6", Category: CategoryParking, Service: "Nacional - Aeronave acima de 15.000kg", Unit: "por hora", Price: 150.00},
	{ID: "7", Category: CategoryParking, Service: "Nacional - Pernoite (até 5.700kg)", Unit: "por noite", Price: 180.00},
	{ID: "8", Category: CategoryParking, Service: "Nacional - Pernoite (5.701kg a 15.000kg)", Unit: "por noite", Price: 350.00},
	{ID: "9", Category: CategoryParking, Service: "Nacional - Pernoite (acima de 15.000kg)", Unit: "por noite", Price: 600.00},
	{ID: "9a", Category: CategoryParking, Service: "Internacional - Aeronave até 5.700kg", Unit: "por hora", Price: 65.00},
	{ID: "9b", Category: CategoryParking, Service: "Internacional - Aeronave 5.701kg a 15.000kg", Unit: "por hora", Price: 120.00},
	{ID: "9c", Category: CategoryParking, Service: "Internacional - Aeronave acima de 15.000kg", Unit: "por hora", Price: 220.00},
	{ID: "9d", Category: CategoryParking, Service: "Internacional - Pernoite (até 5.700kg)", Unit: "por noite", Price: 280.00},
	{ID: "9e", Category: CategoryParking, Service: "Internacional - Pernoite (5.701kg a 15.000kg)", Unit: "por noite", Price: 520.00},
	{ID: "9f", Category: CategoryParking, Service: "Internacional - Pernoite (acima de 15.000kg)", Unit: "por noite", Price: 900.00},

	{ID: "10", Category: CategoryHangar, Service: "Aeronave até 5.700kg", Unit: "por dia", Price: 450.00},
	{ID: "11", Category: CategoryHangar, Service: "Aeronave 5.701kg a 15.000kg", Unit: "por dia", Price: 850.00},
	{ID: "12", Category: CategoryHangar, Service: "Aeronave acima de 15.000kg", Unit: "por dia", Price: 1500.00},
	{ID: "13", Category: CategoryHangar, Service: "Hangaragem mensal (até 5.700kg)", Unit: "por mês", Price: 8500.00},
	{ID: "14", Category: CategoryHangar, Service: "Hangaragem mensal (5.701kg a 15.000kg)", Unit: "por mês", Price: 15000.00},

	{ID: "15", Category: CategoryEquipment, Service: "GPU 28V DC", Unit: "por hora", Price: 120.00},
	{ID: "16", Category: CategoryEquipment, Service: "GPU 115V AC", Unit: "por hora", Price: 150.00},
	{ID: "17", Category: CategoryEquipment, Service: "Ar condicionado de solo", Unit: "por hora", Price: 200.00},
	{ID: "18", Category: CategoryEquipment, Service: "Escada de embarque", Unit: "por uso", Price: 80.00},
	{ID: "19", Category: CategoryEquipment, Service: "Rebocador", Unit: "por operação", Price: 250.00},

	{ID: "20", Category: CategoryRamp, Service: "Handling completo", Unit: "por operação", Price: 450.00, Notes: "Inclui recepção, despacho e coordenação"},
	{ID: "21", Category: CategoryRamp, Service: "Limpeza interna básica", Unit: "por serviço", Price: 180.00},
	{ID: "22", Category: CategoryRamp, Service: "Limpeza interna completa", Unit: "por serviço", Price: 350.00},
	{ID: "23", Category: CategoryRamp, Service: "Lavagem externa", Unit: "por serviço", Price: 800.00, Notes: "Aeronaves até 15.000kg"},
	{ID: "24", Category: CategoryRamp, Service: "Deicing", Unit: "por aplicação", Price: 2500.00, Notes: "Disponível apenas em POA"},

	{ID: "25", Category: CategoryCrew, Service: "Sala VIP (por pessoa)", Unit: "por hora", Price: 120.00},
	{ID: "26", Category: CategoryCrew, Service: "Crew Lounge", Unit: "por tripulante/dia", Price: 80.00},
	{ID: "27", Category: CategoryCrew, Service: "Catering - Snack box", Unit: "por pessoa", Price: 85.00},
	{ID: "28", Category: CategoryCrew, Service: "Catering - Refeição completa", Unit: "por pessoa", Price: 180.00},
	{ID: "29", Category: CategoryCrew, Service: "Transporte terrestre (sedan)", Unit: "por hora", Price: 150.00},
	{ID: "30", Category: CategoryCrew, Service: "Transporte terrestre (van)", Unit: "por hora", Price: 250.00},
}

// Catalog is a read-only, ordered view over a set of pricing items.
type Catalog struct {
	items []PricingItem
	byID  map[string]int
}

// NewCatalog builds a catalog from the given items. Later duplicates of an
// ID are ignored so lookups stay stable.
func NewCatalog(items []PricingItem) *Catalog {
	c := &Catalog{byID: make(map[string]int, len(items))}
	for _, it := range items {
		if _, dup := c.byID[it.ID]; dup {
			continue
		}
		c.byID[it.ID] = len(c.items)
		c.items = append(c.items, it)
	}
	return c
}

// DefaultCatalog returns the catalog bundled with the application.
func DefaultCatalog() *Catalog {
	return NewCatalog(pricingData)
}

// Items returns a copy of every item in catalog order.
func (c *Catalog) Items() []PricingItem {
	out := make([]PricingItem, len(c.items))
	copy(out, c.items)
	return out
}

// Find returns the item with the given ID.
func (c *Catalog) Find(id string) (PricingItem, bool) {
	i, ok := c.byID[id]
	if !ok {
		return PricingItem{}, false
	}
	return c.items[i], true
}

// ByCategory returns the items of one category in catalog order.
func (c *Catalog) ByCategory(category string) []PricingItem {
	var out []PricingItem
	for _, it := range c.items {
		if it.Category == category {
			out = append(out, it)
		}
	}
	return out
}

// Len returns the number of items.
func (c *Catalog) Len() int { return len(c.items) }

// Categories returns the categories present in the catalog: the known ones
// in display order, then any others in first-seen order.
func (c *Catalog) Categories() []string {
	present := make(map[string]bool)
	for _, it := range c.items {
		present[it.Category] = true
	}
	var out []string
	for _, cat := range PricingCategories {
		if present[cat] {
			out = append(out, cat)
			delete(present, cat)
		}
	}
	for _, it := range c.items {
		if present[it.Category] {
			out = append(out, it.Category)
			delete(present, it.Category)
		}
	}
	return out
}
