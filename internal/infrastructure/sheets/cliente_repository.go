package sheets

import (
	"github.com/jhoicas/fazenda-api/internal/domain/entity"
	"github.com/jhoicas/fazenda-api/internal/domain/repository"
	"github.com/jhoicas/fazenda-api/pkg/logger"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteSchema aba Clientes, colunas A–G.
var ClienteSchema = Schema[entity.Cliente]{
	Sheet:   "Clientes",
	Columns: []string{colID, "nome", "cpf_cnpj", "telefone", "email", colDataCriacao, colDataModificacao},
	Encode: func(c *entity.Cliente) []any {
		return []any{c.ID, c.Nome, c.CPFCNPJ, c.Telefone, c.Email, formatTime(c.DataCriacao), formatTime(c.DataModificacao)}
	},
	Decode: func(r Row) (*entity.Cliente, error) {
		d := r.decoder()
		c := &entity.Cliente{
			Meta:     d.meta(),
			Nome:     d.str("nome"),
			CPFCNPJ:  d.str("cpf_cnpj"),
			Telefone: d.str("telefone"),
			Email:    d.str("email"),
		}
		return decoded(c, d)
	},
	Meta: func(c *entity.Cliente) *entity.Meta { return &c.Meta },
}

// ClienteRepo implementação de ClienteRepository sobre a planilha.
type ClienteRepo struct {
	*Table[entity.Cliente]
}

// NewClienteRepository constrói o repositório.
func NewClienteRepository(store RowStore, locker Locker, log *logger.Logger) *ClienteRepo {
	return &ClienteRepo{Table: NewTable(store, locker, log, ClienteSchema)}
}
