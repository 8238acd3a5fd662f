package entity

// Funcionario representa um funcionário da fazenda.
type Funcionario struct {
	Meta
	Nome            string
	Sobrenome       string
	CPF             string
	Cargo           string
	Salario         float64
	Telefone        string
	Email           string
	DataContratacao string // YYYY-MM-DD
}
