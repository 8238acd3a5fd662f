package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/fazenda-api/internal/application/dto"
	"github.com/jhoicas/fazenda-api/internal/domain/entity"
	"github.com/jhoicas/fazenda-api/internal/domain/repository"
)

// ProdutoUseCase casos de uso CRUD de produtos.
type ProdutoUseCase struct {
	repo repository.ProdutoRepository
	ids  IDGenerator
}

// NewProdutoUseCase constrói o caso de uso.
func NewProdutoUseCase(repo repository.ProdutoRepository, ids IDGenerator) *ProdutoUseCase {
	return &ProdutoUseCase{repo: repo, ids: orDefault(ids)}
}

// List lista todos os produtos.
func (uc *ProdutoUseCase) List(ctx context.Context) ([]dto.ProdutoResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProdutoResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProdutoResponse(p))
	}
	return out, nil
}

// GetByID obtém um produto pelo id.
func (uc *ProdutoUseCase) GetByID(ctx context.Context, id int64) (*dto.ProdutoResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil || p == nil {
		return nil, err
	}
	return toProdutoResponse(p), nil
}

// Create cadastra um produto.
func (uc *ProdutoUseCase) Create(ctx context.Context, in dto.CreateProdutoRequest) (*dto.ProdutoResponse, error) {
	p := &entity.Produto{
		Meta:      newMeta(uc.ids, time.Now()),
		Nome:      in.Nome,
		Descricao: in.Descricao,
		Peso:      in.Peso,
		Preco:     in.Preco,
		Estoque:   in.Estoque,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toProdutoResponse(p), nil
}

// Update atualiza um produto (parcial).
func (uc *ProdutoUseCase) Update(ctx context.Context, id int64, in dto.UpdateProdutoRequest) (*dto.ProdutoResponse, error) {
	p, err := uc.repo.Update(ctx, id, func(p *entity.Produto) error {
		setString(&p.Nome, in.Nome)
		setString(&p.Descricao, in.Descricao)
		setFloat(&p.Peso, in.Peso)
		setFloat(&p.Preco, in.Preco)
		setInt(&p.Estoque, in.Estoque)
		return nil
	})
	if err != nil || p == nil {
		return nil, err
	}
	return toProdutoResponse(p), nil
}

// Delete exclui um produto.
func (uc *ProdutoUseCase) Delete(ctx context.Context, id int64) (bool, error) {
	return uc.repo.Delete(ctx, id)
}

func toProdutoResponse(p *entity.Produto) *dto.ProdutoResponse {
	return &dto.ProdutoResponse{
		ID:              p.ID,
		Nome:            p.Nome,
		Descricao:       p.Descricao,
		Peso:            p.Peso,
		Preco:           p.Preco,
		Estoque:         p.Estoque,
		DataCriacao:     p.DataCriacao,
		DataModificacao: p.DataModificacao,
	}
}
