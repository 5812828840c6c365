package services

// TemplateField describes one column in the client import template.
type TemplateField struct {
	Key          string // form field name
	Label        string // header shown in the spreadsheet
	Description  string // shown on the Instruções sheet
	FormatRule   string // e.g. "00.000.000/0000-00"
	ExampleValue string // shown on the Instruções sheet
	Required     bool
}

// ClientTemplateFields returns the ordered columns of a client import file.
func ClientTemplateFields() []TemplateField {
	return []TemplateField{
		{Key: "operador", Label: "Operador", Description: "Nome do operador", ExampleValue: "Táxi Aéreo Exemplo Ltda", Required: true},
		{Key: "tipoDocumento", Label: "Tipo de Documento", Description: "CNPJ ou CPF (padrão CNPJ)", FormatRule: "CNPJ | CPF", ExampleValue: DocumentCNPJ},
		{Key: "documento", Label: "Documento", Description: "CNPJ ou CPF, com ou sem máscara", FormatRule: "00.000.000/0000-00 ou 000.000.000-00", ExampleValue: "11.222.333/0001-81", Required: true},
		{Key: "contatoOperacional", Label: "Contato Operacional", Description: "Nome do contato", ExampleValue: "Maria Souza"},
		{Key: "email", Label: "E-mail", Description: "E-mail do operador", FormatRule: "email@exemplo.com", ExampleValue: "ops@exemplo.com.br", Required: true},
		{Key: "telefone", Label: "Telefone", Description: "DDD + número", FormatRule: "(00) 00000-0000", ExampleValue: "(11) 98765-4321"},
	}
}
