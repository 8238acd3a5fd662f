package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/fazenda-api/internal/application/dto"
	"github.com/jhoicas/fazenda-api/internal/domain/entity"
	"github.com/jhoicas/fazenda-api/internal/domain/repository"
)

// FuncionarioUseCase casos de uso CRUD de funcionários.
type FuncionarioUseCase struct {
	repo repository.FuncionarioRepository
	ids  IDGenerator
}

// NewFuncionarioUseCase constrói o caso de uso. ids nil usa ClockIDs.
func NewFuncionarioUseCase(repo repository.FuncionarioRepository, ids IDGenerator) *FuncionarioUseCase {
	return &FuncionarioUseCase{repo: repo, ids: orDefault(ids)}
}

// List lista todos os funcionários.
func (uc *FuncionarioUseCase) List(ctx context.Context) ([]dto.FuncionarioResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FuncionarioResponse, 0, len(list))
	for _, f := range list {
		out = append(out, *toFuncionarioResponse(f))
	}
	return out, nil
}

// GetByID obtém um funcionário pelo id; (nil, nil) se não existir.
func (uc *FuncionarioUseCase) GetByID(ctx context.Context, id int64) (*dto.FuncionarioResponse, error) {
	f, err := uc.repo.GetByID(ctx, id)
	if err != nil || f == nil {
		return nil, err
	}
	return toFuncionarioResponse(f), nil
}

// Create cadastra um funcionário.
func (uc *FuncionarioUseCase) Create(ctx context.Context, in dto.CreateFuncionarioRequest) (*dto.FuncionarioResponse, error) {
	f := &entity.Funcionario{
		Meta:            newMeta(uc.ids, time.Now()),
		Nome:            in.Nome,
		Sobrenome:       in.Sobrenome,
		CPF:             in.CPF,
		Cargo:           in.Cargo,
		Salario:         in.Salario,
		Telefone:        in.Telefone,
		Email:           in.Email,
		DataContratacao: in.DataContratacao,
	}
	if err := uc.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return toFuncionarioResponse(f), nil
}

// Update aplica somente os campos presentes.
func (uc *FuncionarioUseCase) Update(ctx context.Context, id int64, in dto.UpdateFuncionarioRequest) (*dto.FuncionarioResponse, error) {
	f, err := uc.repo.Update(ctx, id, func(f *entity.Funcionario) error {
		setString(&f.Nome, in.Nome)
		setString(&f.Sobrenome, in.Sobrenome)
		setString(&f.CPF, in.CPF)
		setString(&f.Cargo, in.Cargo)
		setFloat(&f.Salario, in.Salario)
		setString(&f.Telefone, in.Telefone)
		setString(&f.Email, in.Email)
		setString(&f.DataContratacao, in.DataContratacao)
		return nil
	})
	if err != nil || f == nil {
		return nil, err
	}
	return toFuncionarioResponse(f), nil
}

// Delete exclui um funcionário; false se não existir.
func (uc *FuncionarioUseCase) Delete(ctx context.Context, id int64) (bool, error) {
	return uc.repo.Delete(ctx, id)
}

func toFuncionarioResponse(f *entity.Funcionario) *dto.FuncionarioResponse {
	return &dto.FuncionarioResponse{
		ID:              f.ID,
		Nome:            f.Nome,
		Sobrenome:       f.Sobrenome,
		CPF:             f.CPF,
		Cargo:           f.Cargo,
		Salario:         f.Salario,
		Telefone:        f.Telefone,
		Email:           f.Email,
		DataContratacao: f.DataContratacao,
		DataCriacao:     f.DataCriacao,
		DataModificacao: f.DataModificacao,
	}
}
