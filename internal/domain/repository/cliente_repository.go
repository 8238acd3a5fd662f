package repository

import "github.com/jhoicas/fazenda-api/internal/domain/entity"

// ClienteRepository define a porta de persistência para Cliente.
type ClienteRepository interface {
	CRUD[entity.Cliente]
}
