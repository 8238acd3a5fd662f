package dto

import (
	"encoding/json"
	"time"
)

// ItemVendaDTO linha de uma venda. Chaves além das conhecidas vão para Extras e voltam
// na resposta.
type ItemVendaDTO struct {
	Produto       string                     `json:"produto" validate:"max=200"`
	ProdutoID     int64                      `json:"produto_id" validate:"gte=0"`
	Descricao     string                     `json:"descricao,omitempty"`
	Quantidade    float64                    `json:"quantidade" validate:"gt=0"`
	PrecoUnitario float64                    `json:"preco_unitario" validate:"gte=0"`
	Extras        map[string]json.RawMessage `json:"-" swaggerignore:"true"`
}

var itemVendaKeys = []string{"produto", "produto_id", "descricao", "quantidade", "preco_unitario"}

func (it *ItemVendaDTO) UnmarshalJSON(b []byte) error {
	type plain ItemVendaDTO
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	for _, k := range itemVendaKeys {
		delete(raw, k)
	}
	p.Extras = nil
	if len(raw) > 0 {
		p.Extras = raw
	}
	*it = ItemVendaDTO(p)
	return nil
}

func (it ItemVendaDTO) MarshalJSON() ([]byte, error) {
	type plain ItemVendaDTO
	b, err := json.Marshal(plain(it))
	if err != nil || len(it.Extras) == 0 {
		return b, err
	}
	var out map[string]json.RawMessage
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	for k, v := range it.Extras {
		if _, known := out[k]; !known {
			out[k] = v
		}
	}
	return json.Marshal(out)
}

// CreateVendaRequest entrada para registrar uma venda. valor_total não é aceito: é calculado
// a partir dos itens.
type CreateVendaRequest struct {
	DataVenda      string         `json:"data_venda" validate:"omitempty,isodatetime"`
	ClienteID      int64          `json:"cliente_id" validate:"required,gt=0"`
	FuncionarioID  int64          `json:"funcionario_id" validate:"gte=0"`
	Produtos       []ItemVendaDTO `json:"produtos" validate:"dive"`
	FormaPagamento string         `json:"forma_pagamento" validate:"max=50"`
	Parcelas       int64          `json:"parcelas" validate:"gte=0"`
	Frete          float64        `json:"frete" validate:"gte=0"`
	Status         string         `json:"status" validate:"max=50"`
}

// UpdateVendaRequest atualização parcial. Produtos, quando presente, substitui a lista inteira.
type UpdateVendaRequest struct {
	DataVenda      *string        `json:"data_venda" validate:"omitempty,isodatetime"`
	ClienteID      *int64         `json:"cliente_id" validate:"omitempty,gt=0"`
	FuncionarioID  *int64         `json:"funcionario_id" validate:"omitempty,gte=0"`
	Produtos       []ItemVendaDTO `json:"produtos" validate:"omitempty,dive"`
	FormaPagamento *string        `json:"forma_pagamento" validate:"omitempty,max=50"`
	Parcelas       *int64         `json:"parcelas" validate:"omitempty,gte=0"`
	Frete          *float64       `json:"frete" validate:"omitempty,gte=0"`
	Status         *string        `json:"status" validate:"omitempty,max=50"`
}

// VendaResponse saída de uma venda.
type VendaResponse struct {
	ID              int64          `json:"id"`
	DataVenda       string         `json:"data_venda"`
	ClienteID       int64          `json:"cliente_id"`
	FuncionarioID   int64          `json:"funcionario_id"`
	Produtos        []ItemVendaDTO `json:"produtos"`
	ValorTotal      float64        `json:"valor_total"`
	FormaPagamento  string         `json:"forma_pagamento"`
	Parcelas        int64          `json:"parcelas"`
	Frete           float64        `json:"frete"`
	Status          string         `json:"status"`
	DataCriacao     time.Time      `json:"data_criacao"`
	DataModificacao time.Time      `json:"data_modificacao"`
}

// RelatorioFinanceiroResponse resumo financeiro de um período. Datas ausentes saem null.
type RelatorioFinanceiroResponse struct {
	TotalVendas        float64 `json:"total_vendas"`
	TotalDespesas      float64 `json:"total_despesas"`
	Lucro              float64 `json:"lucro"`
	DataInicio         *string `json:"data_inicio"`
	DataFim            *string `json:"data_fim"`
	QuantidadeVendas   int     `json:"quantidade_vendas"`
	QuantidadeDespesas int     `json:"quantidade_despesas"`
}
