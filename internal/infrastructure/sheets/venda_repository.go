package sheets

import (
	"encoding/json"
	"fmt"

	"github.com/jhoicas/fazenda-api/internal/domain/entity"
	"github.com/jhoicas/fazenda-api/internal/domain/repository"
	"github.com/jhoicas/fazenda-api/pkg/logger"
)

var _ repository.VendaRepository = (*VendaRepo)(nil)

// VendaSchema aba Vendas, colunas A–L. Os itens vão serializados em JSON na coluna produtos;
// chaves desconhecidas de cada item são mantidas (ver entity.ItemVenda).
var VendaSchema = Schema[entity.Venda]{
	Sheet: "Vendas",
	Columns: []string{colID, "data_venda", "cliente_id", "funcionario_id", "produtos", "valor_total",
		"forma_pagamento", "parcelas", "frete", "status", colDataCriacao, colDataModificacao},
	Encode: func(v *entity.Venda) []any {
		return []any{v.ID, v.DataVenda, v.ClienteID, v.FuncionarioID, encodeItens(v.Produtos), v.ValorTotal,
			v.FormaPagamento, v.Parcelas, v.Frete, v.Status, formatTime(v.DataCriacao), formatTime(v.DataModificacao)}
	},
	Decode: func(r Row) (*entity.Venda, error) {
		d := r.decoder()
		v := &entity.Venda{
			Meta:           d.meta(),
			DataVenda:      d.str("data_venda"),
			ClienteID:      d.int64("cliente_id"),
			FuncionarioID:  d.int64("funcionario_id"),
			ValorTotal:     d.float("valor_total"),
			FormaPagamento: d.str("forma_pagamento"),
			Parcelas:       d.int64("parcelas"),
			Frete:          d.float("frete"),
			Status:         d.str("status"),
			Produtos:       []entity.ItemVenda{},
		}
		if itens, err := decodeItens(d.str("produtos")); err != nil {
			d.fail("produtos", err)
		} else {
			v.Produtos = itens
		}
		return decoded(v, d)
	},
	Meta: func(v *entity.Venda) *entity.Meta { return &v.Meta },
}

func encodeItens(itens []entity.ItemVenda) string {
	if itens == nil {
		itens = []entity.ItemVenda{}
	}
	b, err := json.Marshal(itens)
	if err != nil {
		// só ocorre com Extras contendo JSON inválido, o que UnmarshalJSON nunca produz
		return "[]"
	}
	return string(b)
}

func decodeItens(s string) ([]entity.ItemVenda, error) {
	if s == "" {
		return []entity.ItemVenda{}, nil
	}
	var itens []entity.ItemVenda
	if err := json.Unmarshal([]byte(s), &itens); err != nil {
		return nil, fmt.Errorf("json de itens inválido: %w", err)
	}
	if itens == nil {
		itens = []entity.ItemVenda{}
	}
	return itens, nil
}

// VendaRepo implementação de VendaRepository sobre a planilha.
type VendaRepo struct {
	*Table[entity.Venda]
}

// NewVendaRepository constrói o repositório.
func NewVendaRepository(store RowStore, locker Locker, log *logger.Logger) *VendaRepo {
	return &VendaRepo{Table: NewTable(store, locker, log, VendaSchema)}
}
