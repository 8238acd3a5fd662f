package entity

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ItemVenda linha de uma venda. Fica serializado em JSON numa única célula da planilha.
//
// A célula é um objeto livre: além das chaves conhecidas, qualquer outra chave é guardada
// em Extras e regravada como veio. Produto é o nome livre do produto; ProdutoID e Descricao
// só são escritos quando preenchidos.
type ItemVenda struct {
	Produto       string
	ProdutoID     int64
	Descricao     string
	Quantidade    float64
	PrecoUnitario float64
	Extras        map[string]json.RawMessage
}

// MarshalJSON escreve as chaves conhecidas mais Extras. Uma chave de Extras só é sobreposta
// por um campo conhecido preenchido.
func (it ItemVenda) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(it.Extras)+5)
	for k, v := range it.Extras {
		out[k] = v
	}
	if _, kept := out["produto"]; !kept || it.Produto != "" {
		out["produto"] = it.Produto
	}
	if it.ProdutoID != 0 {
		out["produto_id"] = it.ProdutoID
	}
	if it.Descricao != "" {
		out["descricao"] = it.Descricao
	}
	out["quantidade"] = it.Quantidade
	out["preco_unitario"] = it.PrecoUnitario
	return json.Marshal(out)
}

// UnmarshalJSON lê um item gravado por qualquer versão da planilha. Chaves de texto com
// tipo inesperado ficam em Extras; quantidade e preco_unitario aceitam número ou texto numérico.
func (it *ItemVenda) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	var out ItemVenda
	take := func(key string, dst any) {
		if v, ok := raw[key]; ok && json.Unmarshal(v, dst) == nil {
			delete(raw, key)
		}
	}
	take("produto", &out.Produto)
	take("produto_id", &out.ProdutoID)
	take("descricao", &out.Descricao)

	var err error
	if out.Quantidade, err = itemNumber(raw, "quantidade"); err != nil {
		return err
	}
	if out.PrecoUnitario, err = itemNumber(raw, "preco_unitario"); err != nil {
		return err
	}
	if len(raw) > 0 {
		out.Extras = raw
	}
	*it = out
	return nil
}

func itemNumber(raw map[string]json.RawMessage, key string) (float64, error) {
	v, ok := raw[key]
	if !ok {
		return 0, nil
	}
	delete(raw, key)
	if string(v) == "null" {
		return 0, nil
	}
	var f float64
	if json.Unmarshal(v, &f) == nil {
		return f, nil
	}
	var s string
	if json.Unmarshal(v, &s) == nil {
		s = strings.TrimSpace(s)
		if !strings.Contains(s, ".") {
			s = strings.Replace(s, ",", ".", 1)
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f, nil
		}
	}
	return 0, fmt.Errorf("item: %s inválido: %s", key, v)
}

// Venda representa uma venda com seus itens.
// ValorTotal é derivado dos itens (ver CalcularTotal), nunca informado pelo cliente.
type Venda struct {
	Meta
	DataVenda      string // YYYY-MM-DD ou data-hora ISO
	ClienteID      int64
	FuncionarioID  int64
	Produtos       []ItemVenda
	ValorTotal     float64
	FormaPagamento string
	Parcelas       int64
	Frete          float64
	Status         string
}

// CalcularTotal soma quantidade * preco_unitario de todos os itens, com aritmética decimal
// e arredondamento em 2 casas.
func CalcularTotal(itens []ItemVenda) float64 {
	total := decimal.Zero
	for _, it := range itens {
		q := decimal.NewFromFloat(it.Quantidade)
		p := decimal.NewFromFloat(it.PrecoUnitario)
		total = total.Add(q.Mul(p))
	}
	f, _ := total.Round(2).Float64()
	return f
}

// RecalcularTotal atualiza ValorTotal a partir dos itens atuais.
func (v *Venda) RecalcularTotal() {
	v.ValorTotal = CalcularTotal(v.Produtos)
}
