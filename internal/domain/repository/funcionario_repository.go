package repository

import "github.com/jhoicas/fazenda-api/internal/domain/entity"

// FuncionarioRepository define a porta de persistência para Funcionario.
type FuncionarioRepository interface {
	CRUD[entity.Funcionario]
}
