package repository

import "github.com/jhoicas/fazenda-api/internal/domain/entity"

// ProdutoRepository define a porta de persistência para Produto.
type ProdutoRepository interface {
	CRUD[entity.Produto]
}
