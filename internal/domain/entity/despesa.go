package entity

// Despesa representa um gasto da fazenda.
type Despesa struct {
	Meta
	Tipo         string
	Descricao    string
	Valor        float64
	Data         string // YYYY-MM-DD
	Beneficiario string
}
