package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/fazenda-api/internal/application/dto"
	"github.com/jhoicas/fazenda-api/internal/domain/entity"
	"github.com/jhoicas/fazenda-api/internal/domain/repository"
)

// DespesaUseCase casos de uso CRUD de despesas.
type DespesaUseCase struct {
	repo repository.DespesaRepository
	ids  IDGenerator
}

// NewDespesaUseCase constrói o caso de uso.
func NewDespesaUseCase(repo repository.DespesaRepository, ids IDGenerator) *DespesaUseCase {
	return &DespesaUseCase{repo: repo, ids: orDefault(ids)}
}

func (uc *DespesaUseCase) List(ctx context.Context) ([]dto.DespesaResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DespesaResponse, 0, len(list))
	for _, d := range list {
		out = append(out, *toDespesaResponse(d))
	}
	return out, nil
}

func (uc *DespesaUseCase) GetByID(ctx context.Context, id int64) (*dto.DespesaResponse, error) {
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil || d == nil {
		return nil, err
	}
	return toDespesaResponse(d), nil
}

// Create registra uma despesa. Sem data, assume o dia corrente (UTC).
func (uc *DespesaUseCase) Create(ctx context.Context, in dto.CreateDespesaRequest) (*dto.DespesaResponse, error) {
	now := time.Now()
	d := &entity.Despesa{
		Meta:         newMeta(uc.ids, now),
		Tipo:         in.Tipo,
		Descricao:    in.Descricao,
		Valor:        roundMoney(in.Valor),
		Data:         in.Data,
		Beneficiario: in.Beneficiario,
	}
	if d.Data == "" {
		d.Data = now.UTC().Format(time.DateOnly)
	}
	if err := uc.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return toDespesaResponse(d), nil
}

func (uc *DespesaUseCase) Update(ctx context.Context, id int64, in dto.UpdateDespesaRequest) (*dto.DespesaResponse, error) {
	d, err := uc.repo.Update(ctx, id, func(d *entity.Despesa) error {
		setString(&d.Tipo, in.Tipo)
		setString(&d.Descricao, in.Descricao)
		if in.Valor != nil {
			d.Valor = roundMoney(*in.Valor)
		}
		setString(&d.Data, in.Data)
		setString(&d.Beneficiario, in.Beneficiario)
		return nil
	})
	if err != nil || d == nil {
		return nil, err
	}
	return toDespesaResponse(d), nil
}

func (uc *DespesaUseCase) Delete(ctx context.Context, id int64) (bool, error) {
	return uc.repo.Delete(ctx, id)
}

func toDespesaResponse(d *entity.Despesa) *dto.DespesaResponse {
	return &dto.DespesaResponse{
		ID:              d.ID,
		Tipo:            d.Tipo,
		Descricao:       d.Descricao,
		Valor:           d.Valor,
		Data:            d.Data,
		Beneficiario:    d.Beneficiario,
		DataCriacao:     d.DataCriacao,
		DataModificacao: d.DataModificacao,
	}
}
