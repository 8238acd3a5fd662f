package usecase

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/fazenda-api/internal/application/dto"
	"github.com/jhoicas/fazenda-api/internal/domain"
	"github.com/jhoicas/fazenda-api/internal/domain/entity"
	"github.com/jhoicas/fazenda-api/internal/domain/repository"
)

// UsuarioUseCase aplica regras de negócio para usuários. A criação fica no registro (auth).
type UsuarioUseCase struct {
	repo repository.UsuarioRepository
	cost int
}

// NewUsuarioUseCase constrói o caso de uso com o porto de persistência.
func NewUsuarioUseCase(repo repository.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo, cost: bcrypt.DefaultCost}
}

// WithBcryptCost ajusta o custo do hash (testes usam bcrypt.MinCost).
func (uc *UsuarioUseCase) WithBcryptCost(cost int) *UsuarioUseCase {
	uc.cost = cost
	return uc
}

// List lista os usuários sem expor o hash da senha.
func (uc *UsuarioUseCase) List(ctx context.Context) ([]dto.UsuarioResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UsuarioResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *ToUsuarioResponse(u))
	}
	return out, nil
}

// GetByID obtém um usuário por id.
func (uc *UsuarioUseCase) GetByID(ctx context.Context, id int64) (*dto.UsuarioResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil || u == nil {
		return nil, err
	}
	return ToUsuarioResponse(u), nil
}

// Update atualiza parcialmente. Uma senha nova é re-hasheada; email já usado por outro
// usuário → ErrEmailAlreadyExists.
func (uc *UsuarioUseCase) Update(ctx context.Context, id int64, in dto.UpdateUsuarioRequest) (*dto.UsuarioResponse, error) {
	var hash []byte
	if in.Senha != nil {
		var err error
		if hash, err = bcrypt.GenerateFromPassword([]byte(*in.Senha), uc.cost); err != nil {
			return nil, err
		}
	}
	u, err := uc.repo.Update(ctx, id, func(u *entity.Usuario) error {
		if in.Email != nil {
			other, err := uc.repo.FindByEmail(ctx, *in.Email)
			if err != nil {
				return err
			}
			if other != nil && other.ID != u.ID {
				return domain.ErrEmailAlreadyExists
			}
			u.Email = *in.Email
		}
		setString(&u.Nome, in.Nome)
		setString(&u.NivelAcesso, in.NivelAcesso)
		if hash != nil {
			u.SenhaHash = string(hash)
		}
		return nil
	})
	if err != nil || u == nil {
		return nil, err
	}
	return ToUsuarioResponse(u), nil
}

// Delete exclui um usuário.
func (uc *UsuarioUseCase) Delete(ctx context.Context, id int64) (bool, error) {
	return uc.repo.Delete(ctx, id)
}

// ToUsuarioResponse converte a entidade para a saída pública (sem senha_hash).
func ToUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:              u.ID,
		Nome:            u.Nome,
		Email:           u.Email,
		NivelAcesso:     u.NivelAcesso,
		DataCriacao:     u.DataCriacao,
		DataModificacao: u.DataModificacao,
	}
}
