package repository

import "github.com/jhoicas/fazenda-api/internal/domain/entity"

// DespesaRepository define a porta de persistência para Despesa.
type DespesaRepository interface {
	CRUD[entity.Despesa]
}
