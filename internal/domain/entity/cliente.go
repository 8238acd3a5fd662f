package entity

// Cliente representa um comprador (pessoa física ou jurídica).
type Cliente struct {
	Meta
	Nome     string
	CPFCNPJ  string
	Telefone string
	Email    string
}
