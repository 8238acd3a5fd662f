package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/fazenda-api/internal/application/dto"
	"github.com/jhoicas/fazenda-api/internal/domain/entity"
	"github.com/jhoicas/fazenda-api/internal/domain/repository"
)

// PlantioUseCase casos de uso CRUD de plantios.
type PlantioUseCase struct {
	repo repository.PlantioRepository
	ids  IDGenerator
}

// NewPlantioUseCase constrói o caso de uso.
func NewPlantioUseCase(repo repository.PlantioRepository, ids IDGenerator) *PlantioUseCase {
	return &PlantioUseCase{repo: repo, ids: orDefault(ids)}
}

func (uc *PlantioUseCase) List(ctx context.Context) ([]dto.PlantioResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PlantioResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toPlantioResponse(p))
	}
	return out, nil
}

func (uc *PlantioUseCase) GetByID(ctx context.Context, id int64) (*dto.PlantioResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil || p == nil {
		return nil, err
	}
	return toPlantioResponse(p), nil
}

func (uc *PlantioUseCase) Create(ctx context.Context, in dto.CreatePlantioRequest) (*dto.PlantioResponse, error) {
	p := &entity.Plantio{
		Meta:                 newMeta(uc.ids, time.Now()),
		DataPlantio:          in.DataPlantio,
		TipoCafe:             in.TipoCafe,
		Hectares:             in.Hectares,
		Localizacao:          in.Localizacao,
		DataPrevisaoColheita: in.DataPrevisaoColheita,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toPlantioResponse(p), nil
}

func (uc *PlantioUseCase) Update(ctx context.Context, id int64, in dto.UpdatePlantioRequest) (*dto.PlantioResponse, error) {
	p, err := uc.repo.Update(ctx, id, func(p *entity.Plantio) error {
		setString(&p.DataPlantio, in.DataPlantio)
		setString(&p.TipoCafe, in.TipoCafe)
		setFloat(&p.Hectares, in.Hectares)
		setString(&p.Localizacao, in.Localizacao)
		setString(&p.DataPrevisaoColheita, in.DataPrevisaoColheita)
		return nil
	})
	if err != nil || p == nil {
		return nil, err
	}
	return toPlantioResponse(p), nil
}

func (uc *PlantioUseCase) Delete(ctx context.Context, id int64) (bool, error) {
	return uc.repo.Delete(ctx, id)
}

func toPlantioResponse(p *entity.Plantio) *dto.PlantioResponse {
	return &dto.PlantioResponse{
		ID:                   p.ID,
		DataPlantio:          p.DataPlantio,
		TipoCafe:             p.TipoCafe,
		Hectares:             p.Hectares,
		Localizacao:          p.Localizacao,
		DataPrevisaoColheita: p.DataPrevisaoColheita,
		DataCriacao:          p.DataCriacao,
		DataModificacao:      p.DataModificacao,
	}
}
