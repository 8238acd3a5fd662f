package sheets

import (
	"context"
	"strings"

	"github.com/jhoicas/fazenda-api/internal/domain"
	"github.com/jhoicas/fazenda-api/internal/domain/entity"
	"github.com/jhoicas/fazenda-api/internal/domain/repository"
	"github.com/jhoicas/fazenda-api/pkg/logger"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioSchema aba Usuarios, colunas A–G.
var UsuarioSchema = Schema[entity.Usuario]{
	Sheet:   "Usuarios",
	Columns: []string{colID, "nome", "email", "senha_hash", "nivel_acesso", colDataCriacao, colDataModificacao},
	Encode: func(u *entity.Usuario) []any {
		return []any{u.ID, u.Nome, u.Email, u.SenhaHash, u.NivelAcesso, formatTime(u.DataCriacao), formatTime(u.DataModificacao)}
	},
	Decode: func(r Row) (*entity.Usuario, error) {
		d := r.decoder()
		u := &entity.Usuario{
			Meta:        d.meta(),
			Nome:        d.str("nome"),
			Email:       d.str("email"),
			SenhaHash:   d.str("senha_hash"),
			NivelAcesso: d.str("nivel_acesso"),
		}
		return decoded(u, d)
	},
	Meta: func(u *entity.Usuario) *entity.Meta { return &u.Meta },
}

// UsuarioRepo implementação de UsuarioRepository sobre a planilha.
type UsuarioRepo struct {
	*Table[entity.Usuario]
}

// NewUsuarioRepository constrói o repositório de usuários.
func NewUsuarioRepository(store RowStore, locker Locker, log *logger.Logger) *UsuarioRepo {
	return &UsuarioRepo{Table: NewTable(store, locker, log, UsuarioSchema)}
}

// FindByEmail busca por email sem diferenciar maiúsculas.
func (r *UsuarioRepo) FindByEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	email = strings.TrimSpace(email)
	return r.FindOne(ctx, func(u *entity.Usuario) bool {
		return strings.EqualFold(u.Email, email)
	})
}

// CreateWithUniqueEmail grava o usuário se nenhum outro tiver o mesmo email. A checagem e
// a escrita acontecem sob o lock da aba Usuarios.
func (r *UsuarioRepo) CreateWithUniqueEmail(ctx context.Context, u *entity.Usuario) error {
	email := strings.TrimSpace(u.Email)
	return r.CreateUnless(ctx, u, func(other *entity.Usuario) error {
		if strings.EqualFold(other.Email, email) {
			return domain.ErrEmailAlreadyExists
		}
		return nil
	})
}
