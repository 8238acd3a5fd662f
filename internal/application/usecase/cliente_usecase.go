package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/fazenda-api/internal/application/dto"
	"github.com/jhoicas/fazenda-api/internal/domain/entity"
	"github.com/jhoicas/fazenda-api/internal/domain/repository"
)

// ClienteUseCase casos de uso CRUD de clientes.
type ClienteUseCase struct {
	repo repository.ClienteRepository
	ids  IDGenerator
}

// NewClienteUseCase constrói o caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository, ids IDGenerator) *ClienteUseCase {
	return &ClienteUseCase{repo: repo, ids: orDefault(ids)}
}

func (uc *ClienteUseCase) List(ctx context.Context) ([]dto.ClienteResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toClienteResponse(c))
	}
	return out, nil
}

func (uc *ClienteUseCase) GetByID(ctx context.Context, id int64) (*dto.ClienteResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil || c == nil {
		return nil, err
	}
	return toClienteResponse(c), nil
}

func (uc *ClienteUseCase) Create(ctx context.Context, in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	c := &entity.Cliente{
		Meta:     newMeta(uc.ids, time.Now()),
		Nome:     in.Nome,
		CPFCNPJ:  in.CPFCNPJ,
		Telefone: in.Telefone,
		Email:    in.Email,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toClienteResponse(c), nil
}

func (uc *ClienteUseCase) Update(ctx context.Context, id int64, in dto.UpdateClienteRequest) (*dto.ClienteResponse, error) {
	c, err := uc.repo.Update(ctx, id, func(c *entity.Cliente) error {
		setString(&c.Nome, in.Nome)
		setString(&c.CPFCNPJ, in.CPFCNPJ)
		setString(&c.Telefone, in.Telefone)
		setString(&c.Email, in.Email)
		return nil
	})
	if err != nil || c == nil {
		return nil, err
	}
	return toClienteResponse(c), nil
}

func (uc *ClienteUseCase) Delete(ctx context.Context, id int64) (bool, error) {
	return uc.repo.Delete(ctx, id)
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:              c.ID,
		Nome:            c.Nome,
		CPFCNPJ:         c.CPFCNPJ,
		Telefone:        c.Telefone,
		Email:           c.Email,
		DataCriacao:     c.DataCriacao,
		DataModificacao: c.DataModificacao,
	}
}
