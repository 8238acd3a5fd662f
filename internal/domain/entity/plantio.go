package entity

// Plantio representa uma área plantada de café.
type Plantio struct {
	Meta
	DataPlantio          string // YYYY-MM-DD
	TipoCafe             string
	Hectares             float64
	Localizacao          string
	DataPrevisaoColheita string // YYYY-MM-DD
}
