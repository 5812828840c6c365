package services

import "fmt"

// ListExportColumn defines a column in a list export spreadsheet.
type ListExportColumn struct {
	Header string
	Field  string  // key into each row
	Width  float64 // column width in Excel units
}

// ListExportData holds a titled table for GenerateListExcel.
type ListExportData struct {
	Title     string
	SheetName string
	Noun      string // pluralised count label, e.g. "clientes"
	Columns   []ListExportColumn
	Rows      []map[string]string
}

// ClientExportColumns are the columns of the client list export.
var ClientExportColumns = []ListExportColumn{
	{Header: "ID", Field: "id", Width: 12},
	{Header: "Operador", Field: "operador", Width: 32},
	{Header: "Tipo", Field: "tipoDocumento", Width: 8},
	{Header: "Documento", Field: "documento", Width: 22},
	{Header: "Contato Operacional", Field: "contatoOperacional", Width: 25},
	{Header: "E-mail", Field: "email", Width: 30},
	{Header: "Telefone", Field: "telefone", Width: 18},
	{Header: "Data de Cadastro", Field: "dataCadastro", Width: 16},
}

// FlightExportColumns are the columns of the confirmed flights export.
var FlightExportColumns = []ListExportColumn{
	{Header: "Prefixo", Field: "prefixo", Width: 12},
	{Header: "Tipo de Aeronave", Field: "tipoAeronave", Width: 32},
	{Header: "Data do Voo", Field: "dataVoo", Width: 14},
	{Header: "Origem", Field: "origem", Width: 12},
	{Header: "Destino", Field: "destino", Width: 12},
}

// ClientsExportData builds the client list export.
func ClientsExportData(companyName string, clients []Client) ListExportData {
	data := ListExportData{
		Title:     fmt.Sprintf("%s - Clientes Cadastrados", companyName),
		SheetName: "Clientes",
		Noun:      "clientes",
		Columns:   ClientExportColumns,
	}
	for _, c := range clients {
		data.Rows = append(data.Rows, map[string]string{
			"id":                 c.ID,
			"operador":           c.Operator,
			"tipoDocumento":      c.DocumentType,
			"documento":          c.Document,
			"contatoOperacional": c.OperationalContact,
			"email":              c.Email,
			"telefone":           c.Phone,
			"dataCadastro":       c.RegisteredAt.Format("02/01/2006"),
		})
	}
	return data
}

// FlightsExportData builds the confirmed flights export.
func FlightsExportData(companyName string, flights []Flight) ListExportData {
	data := ListExportData{
		Title:     fmt.Sprintf("%s - Voos Confirmados", companyName),
		SheetName: "Voos",
		Noun:      "voos",
		Columns:   FlightExportColumns,
	}
	for _, f := range flights {
		data.Rows = append(data.Rows, map[string]string{
			"prefixo":      f.Registration,
			"tipoAeronave": f.AircraftType,
			"dataVoo":      FormatDateBR(f.FlightDate),
			"origem":       f.Origin,
			"destino":      f.Destination,
		})
	}
	return data
}

// BaseExportColumns are the columns of the base directory export.
var BaseExportColumns = []ListExportColumn{
	{Header: "ICAO", Field: "icao", Width: 8},
	{Header: "Base", Field: "nome", Width: 40},
	{Header: "Cidade", Field: "cidade", Width: 18},
	{Header: "UF", Field: "uf", Width: 6},
	{Header: "Região", Field: "regiao", Width: 14},
	{Header: "Status", Field: "status", Width: 13},
	{Header: "Gerente", Field: "gerente", Width: 22},
	{Header: "Telefone", Field: "telefone", Width: 17},
	{Header: "Horário", Field: "horario", Width: 14},
	{Header: "Posições", Field: "posicoes", Width: 10},
	{Header: "Hangar", Field: "hangar", Width: 10},
}

// BasesExportData builds the base directory export from the filtered bases.
func BasesExportData(companyName string, bases []Base) ListExportData {
	data := ListExportData{
		Title:     fmt.Sprintf("%s - Central de Bases", companyName),
		SheetName: "Bases",
		Noun:      "bases",
		Columns:   BaseExportColumns,
	}
	for _, b := range bases {
		hours := b.AirportHours
		data.Rows = append(data.Rows, map[string]string{
			"icao":     b.ICAO,
			"nome":     b.Name,
			"cidade":   b.City,
			"uf":       b.State,
			"regiao":   b.Region,
			"status":   b.Status.Label(),
			"gerente":  b.Manager.Name,
			"telefone": b.Manager.Phone,
			"horario":  FormatHours(&hours),
			"posicoes": fmt.Sprint(b.Capacity.ParkingSpots),
			"hangar":   fmt.Sprint(b.Capacity.HangarCapacity),
		})
	}
	return data
}
