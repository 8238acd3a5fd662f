package sheets

import (
	"github.com/jhoicas/fazenda-api/internal/domain/entity"
	"github.com/jhoicas/fazenda-api/internal/domain/repository"
	"github.com/jhoicas/fazenda-api/pkg/logger"
)

var _ repository.PlantioRepository = (*PlantioRepo)(nil)

// PlantioSchema aba Plantios, colunas A–H.
var PlantioSchema = Schema[entity.Plantio]{
	Sheet: "Plantios",
	Columns: []string{colID, "data_plantio", "tipo_cafe", "hectares", "localizacao", "data_previsao_colheita",
		colDataCriacao, colDataModificacao},
	Encode: func(p *entity.Plantio) []any {
		return []any{p.ID, p.DataPlantio, p.TipoCafe, p.Hectares, p.Localizacao, p.DataPrevisaoColheita,
			formatTime(p.DataCriacao), formatTime(p.DataModificacao)}
	},
	Decode: func(r Row) (*entity.Plantio, error) {
		d := r.decoder()
		p := &entity.Plantio{
			Meta:                 d.meta(),
			DataPlantio:          d.str("data_plantio"),
			TipoCafe:             d.str("tipo_cafe"),
			Hectares:             d.float("hectares"),
			Localizacao:          d.str("localizacao"),
			DataPrevisaoColheita: d.str("data_previsao_colheita"),
		}
		return decoded(p, d)
	},
	Meta: func(p *entity.Plantio) *entity.Meta { return &p.Meta },
}

// PlantioRepo implementação de PlantioRepository sobre a planilha.
type PlantioRepo struct {
	*Table[entity.Plantio]
}

// NewPlantioRepository constrói o repositório.
func NewPlantioRepository(store RowStore, locker Locker, log *logger.Logger) *PlantioRepo {
	return &PlantioRepo{Table: NewTable(store, locker, log, PlantioSchema)}
}
