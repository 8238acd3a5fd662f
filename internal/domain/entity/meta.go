package entity

import "time"

// Meta campos comuns a todos os registros: identificador e carimbos de tempo.
// DataCriacao nunca muda depois da criação; DataModificacao acompanha cada escrita.
type Meta struct {
	ID              int64
	DataCriacao     time.Time
	DataModificacao time.Time
}
