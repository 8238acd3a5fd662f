package entity

// Produto representa um item vendido pela fazenda.
type Produto struct {
	Meta
	Nome      string
	Descricao string
	Peso      float64
	Preco     float64
	Estoque   int64
}
