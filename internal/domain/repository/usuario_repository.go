package repository

import (
	"context"

	"github.com/jhoicas/fazenda-api/internal/domain/entity"
)

// UsuarioRepository define a porta de persistência para Usuario (DIP).
type UsuarioRepository interface {
	CRUD[entity.Usuario]
	FindByEmail(ctx context.Context, email string) (*entity.Usuario, error)
	// CreateWithUniqueEmail cria o usuário atomicamente em relação a outros registros;
	// ErrEmailAlreadyExists se o email já estiver em uso.
	CreateWithUniqueEmail(ctx context.Context, u *entity.Usuario) error
}
