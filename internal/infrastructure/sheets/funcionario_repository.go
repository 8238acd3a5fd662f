package sheets

import (
	"github.com/jhoicas/fazenda-api/internal/domain/entity"
	"github.com/jhoicas/fazenda-api/internal/domain/repository"
	"github.com/jhoicas/fazenda-api/pkg/logger"
)

var _ repository.FuncionarioRepository = (*FuncionarioRepo)(nil)

// FuncionarioSchema aba Funcionarios, colunas A–K.
var FuncionarioSchema = Schema[entity.Funcionario]{
	Sheet: "Funcionarios",
	Columns: []string{colID, "nome", "sobrenome", "cpf", "cargo", "salario", "telefone", "email",
		"data_contratacao", colDataCriacao, colDataModificacao},
	Encode: func(f *entity.Funcionario) []any {
		return []any{f.ID, f.Nome, f.Sobrenome, f.CPF, f.Cargo, f.Salario, f.Telefone, f.Email,
			f.DataContratacao, formatTime(f.DataCriacao), formatTime(f.DataModificacao)}
	},
	Decode: func(r Row) (*entity.Funcionario, error) {
		d := r.decoder()
		f := &entity.Funcionario{
			Meta:            d.meta(),
			Nome:            d.str("nome"),
			Sobrenome:       d.str("sobrenome"),
			CPF:             d.str("cpf"),
			Cargo:           d.str("cargo"),
			Salario:         d.float("salario"),
			Telefone:        d.str("telefone"),
			Email:           d.str("email"),
			DataContratacao: d.str("data_contratacao"),
		}
		return decoded(f, d)
	},
	Meta: func(f *entity.Funcionario) *entity.Meta { return &f.Meta },
}

// FuncionarioRepo implementação de FuncionarioRepository sobre a planilha.
type FuncionarioRepo struct {
	*Table[entity.Funcionario]
}

// NewFuncionarioRepository constrói o repositório.
func NewFuncionarioRepository(store RowStore, locker Locker, log *logger.Logger) *FuncionarioRepo {
	return &FuncionarioRepo{Table: NewTable(store, locker, log, FuncionarioSchema)}
}
