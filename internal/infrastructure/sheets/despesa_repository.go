package sheets

import (
	"github.com/jhoicas/fazenda-api/internal/domain/entity"
	"github.com/jhoicas/fazenda-api/internal/domain/repository"
	"github.com/jhoicas/fazenda-api/pkg/logger"
)

var _ repository.DespesaRepository = (*DespesaRepo)(nil)

// DespesaSchema aba Despesas, colunas A–H.
var DespesaSchema = Schema[entity.Despesa]{
	Sheet:   "Despesas",
	Columns: []string{colID, "tipo", "descricao", "valor", "data", "beneficiario", colDataCriacao, colDataModificacao},
	Encode: func(d *entity.Despesa) []any {
		return []any{d.ID, d.Tipo, d.Descricao, d.Valor, d.Data, d.Beneficiario, formatTime(d.DataCriacao), formatTime(d.DataModificacao)}
	},
	Decode: func(r Row) (*entity.Despesa, error) {
		d := r.decoder()
		out := &entity.Despesa{
			Meta:         d.meta(),
			Tipo:         d.str("tipo"),
			Descricao:    d.str("descricao"),
			Valor:        d.float("valor"),
			Data:         d.str("data"),
			Beneficiario: d.str("beneficiario"),
		}
		return decoded(out, d)
	},
	Meta: func(d *entity.Despesa) *entity.Meta { return &d.Meta },
}

// DespesaRepo implementação de DespesaRepository sobre a planilha.
type DespesaRepo struct {
	*Table[entity.Despesa]
}

// NewDespesaRepository constrói o repositório.
func NewDespesaRepository(store RowStore, locker Locker, log *logger.Logger) *DespesaRepo {
	return &DespesaRepo{Table: NewTable(store, locker, log, DespesaSchema)}
}
