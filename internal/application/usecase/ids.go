package usecase

import (
	"sync"
	"time"

	"github.com/jhoicas/fazenda-api/internal/domain/entity"
)

// IDGenerator atribui ids a registros novos.
type IDGenerator interface {
	NewID() int64
}

// ClockIDs gera ids a partir do relógio: milissegundos Unix × 1000 mais uma sequência.
// Estritamente crescente dentro do processo e abaixo de 2^53, de modo que o id sobrevive
// a clientes JSON que usam float64. Colisões entre processos são barradas pelo Create do
// repositório (ErrDuplicate).
type ClockIDs struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

// NewClockIDs constrói o gerador padrão.
func NewClockIDs() *ClockIDs {
	return &ClockIDs{now: time.Now}
}

// NewID devolve o próximo id.
func (g *ClockIDs) NewID() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := g.now().UnixMilli() * 1000
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

func newMeta(ids IDGenerator, now time.Time) entity.Meta {
	now = now.UTC()
	return entity.Meta{ID: ids.NewID(), DataCriacao: now, DataModificacao: now}
}

func orDefault(ids IDGenerator) IDGenerator {
	if ids == nil {
		return NewClockIDs()
	}
	return ids
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int64, v *int64) {
	if v != nil {
		*dst = *v
	}
}
