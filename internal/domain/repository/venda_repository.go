package repository

import "github.com/jhoicas/fazenda-api/internal/domain/entity"

// VendaRepository define a porta de persistência para Venda.
type VendaRepository interface {
	CRUD[entity.Venda]
}
