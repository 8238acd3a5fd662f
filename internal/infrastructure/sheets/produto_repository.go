package sheets

import (
	"github.com/jhoicas/fazenda-api/internal/domain/entity"
	"github.com/jhoicas/fazenda-api/internal/domain/repository"
	"github.com/jhoicas/fazenda-api/pkg/logger"
)

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

// ProdutoSchema aba Produtos, colunas A–H.
var ProdutoSchema = Schema[entity.Produto]{
	Sheet:   "Produtos",
	Columns: []string{colID, "nome", "descricao", "peso", "preco", "estoque", colDataCriacao, colDataModificacao},
	Encode: func(p *entity.Produto) []any {
		return []any{p.ID, p.Nome, p.Descricao, p.Peso, p.Preco, p.Estoque, formatTime(p.DataCriacao), formatTime(p.DataModificacao)}
	},
	Decode: func(r Row) (*entity.Produto, error) {
		d := r.decoder()
		p := &entity.Produto{
			Meta:      d.meta(),
			Nome:      d.str("nome"),
			Descricao: d.str("descricao"),
			Peso:      d.float("peso"),
			Preco:     d.float("preco"),
			Estoque:   d.int64("estoque"),
		}
		return decoded(p, d)
	},
	Meta: func(p *entity.Produto) *entity.Meta { return &p.Meta },
}

// ProdutoRepo implementação de ProdutoRepository sobre a planilha.
type ProdutoRepo struct {
	*Table[entity.Produto]
}

// NewProdutoRepository constrói o repositório.
func NewProdutoRepository(store RowStore, locker Locker, log *logger.Logger) *ProdutoRepo {
	return &ProdutoRepo{Table: NewTable(store, locker, log, ProdutoSchema)}
}
