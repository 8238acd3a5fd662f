package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fazenda-api/internal/application/dto"
	"github.com/jhoicas/fazenda-api/internal/domain/entity"
	"github.com/jhoicas/fazenda-api/internal/domain/repository"
)

// VendaUseCase casos de uso de vendas. O valor_total é sempre derivado dos itens.
type VendaUseCase struct {
	repo repository.VendaRepository
	ids  IDGenerator
}

// NewVendaUseCase constrói o caso de uso.
func NewVendaUseCase(repo repository.VendaRepository, ids IDGenerator) *VendaUseCase {
	return &VendaUseCase{repo: repo, ids: orDefault(ids)}
}

// List lista todas as vendas.
func (uc *VendaUseCase) List(ctx context.Context) ([]dto.VendaResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VendaResponse, 0, len(list))
	for _, v := range list {
		out = append(out, *toVendaResponse(v))
	}
	return out, nil
}

// GetByID obtém uma venda pelo id.
func (uc *VendaUseCase) GetByID(ctx context.Context, id int64) (*dto.VendaResponse, error) {
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil || v == nil {
		return nil, err
	}
	return toVendaResponse(v), nil
}

// Create registra a venda e calcula o total. Sem data_venda, usa o instante atual.
func (uc *VendaUseCase) Create(ctx context.Context, in dto.CreateVendaRequest) (*dto.VendaResponse, error) {
	now := time.Now()
	v := &entity.Venda{
		Meta:           newMeta(uc.ids, now),
		DataVenda:      in.DataVenda,
		ClienteID:      in.ClienteID,
		FuncionarioID:  in.FuncionarioID,
		Produtos:       toItens(in.Produtos),
		FormaPagamento: in.FormaPagamento,
		Parcelas:       in.Parcelas,
		Frete:          roundMoney(in.Frete),
		Status:         in.Status,
	}
	if v.DataVenda == "" {
		v.DataVenda = now.UTC().Format(time.RFC3339)
	}
	v.RecalcularTotal()
	if err := uc.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return toVendaResponse(v), nil
}

// Update aplica os campos presentes. Se produtos vier, substitui a lista inteira e o total
// é recalculado.
func (uc *VendaUseCase) Update(ctx context.Context, id int64, in dto.UpdateVendaRequest) (*dto.VendaResponse, error) {
	v, err := uc.repo.Update(ctx, id, func(v *entity.Venda) error {
		setString(&v.DataVenda, in.DataVenda)
		setInt(&v.ClienteID, in.ClienteID)
		setInt(&v.FuncionarioID, in.FuncionarioID)
		if in.Produtos != nil {
			v.Produtos = toItens(in.Produtos)
			v.RecalcularTotal()
		}
		setString(&v.FormaPagamento, in.FormaPagamento)
		setInt(&v.Parcelas, in.Parcelas)
		if in.Frete != nil {
			v.Frete = roundMoney(*in.Frete)
		}
		setString(&v.Status, in.Status)
		return nil
	})
	if err != nil || v == nil {
		return nil, err
	}
	return toVendaResponse(v), nil
}

// Delete exclui uma venda.
func (uc *VendaUseCase) Delete(ctx context.Context, id int64) (bool, error) {
	return uc.repo.Delete(ctx, id)
}

func toItens(in []dto.ItemVendaDTO) []entity.ItemVenda {
	out := make([]entity.ItemVenda, 0, len(in))
	for _, it := range in {
		out = append(out, entity.ItemVenda{
			Produto:       it.Produto,
			ProdutoID:     it.ProdutoID,
			Descricao:     it.Descricao,
			Quantidade:    it.Quantidade,
			PrecoUnitario: it.PrecoUnitario,
			Extras:        it.Extras,
		})
	}
	return out
}

func toVendaResponse(v *entity.Venda) *dto.VendaResponse {
	itens := make([]dto.ItemVendaDTO, 0, len(v.Produtos))
	for _, it := range v.Produtos {
		itens = append(itens, dto.ItemVendaDTO{
			Produto:       it.Produto,
			ProdutoID:     it.ProdutoID,
			Descricao:     it.Descricao,
			Quantidade:    it.Quantidade,
			PrecoUnitario: it.PrecoUnitario,
			Extras:        it.Extras,
		})
	}
	return &dto.VendaResponse{
		ID:              v.ID,
		DataVenda:       v.DataVenda,
		ClienteID:       v.ClienteID,
		FuncionarioID:   v.FuncionarioID,
		Produtos:        itens,
		ValorTotal:      v.ValorTotal,
		FormaPagamento:  v.FormaPagamento,
		Parcelas:        v.Parcelas,
		Frete:           v.Frete,
		Status:          v.Status,
		DataCriacao:     v.DataCriacao,
		DataModificacao: v.DataModificacao,
	}
}

// roundMoney arredonda valores monetários em 2 casas.
func roundMoney(f float64) float64 {
	r, _ := decimal.NewFromFloat(f).Round(2).Float64()
	return r
}
