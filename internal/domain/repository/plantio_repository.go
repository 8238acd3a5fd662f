package repository

import "github.com/jhoicas/fazenda-api/internal/domain/entity"

// PlantioRepository define a porta de persistência para Plantio.
type PlantioRepository interface {
	CRUD[entity.Plantio]
}
