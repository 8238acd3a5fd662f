package sheets

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/jhoicas/fazenda-api/internal/domain"
	"github.com/jhoicas/fazenda-api/internal/domain/entity"
	"github.com/jhoicas/fazenda-api/internal/infrastructure/lock"
	"github.com/jhoicas/fazenda-api/pkg/logger"
	"github.com/jhoicas/fazenda-api/pkg/metrics"
)

// Schema descreve como um tipo de registro ocupa sua aba.
// Columns é ao mesmo tempo o cabeçalho esperado e a ordem de escrita de Encode;
// Decode lê pelos nomes do cabeçalho. Os testes de ida e volta de cada schema garantem
// que as duas ordens concordam. Decode devolve registro nil só quando o id não pode ser lido;
// células inválidas chegam como CellErrors junto de um registro com valores zero.
type Schema[T any] struct {
	Sheet   string
	Columns []string
	Encode  func(*T) []any
	Decode  func(Row) (*T, error)
	Meta    func(*T) *entity.Meta
}

// Table é o repositório genérico de um tipo de registro sobre a planilha.
//
// Não há cache: toda operação relê a aba inteira. Escritas rodam sob o lock do tipo, de
// modo que o índice de linha obtido pela varredura continua válido até a escrita.
type Table[T any] struct {
	store  RowStore
	locker Locker
	schema Schema[T]
	log    *logger.Logger
	now    func() time.Time
}

type entry[T any] struct {
	index int // posição entre as linhas de dados (cabeçalho excluído)
	rec   *T
	raw   Row
	bad   map[string]bool // colunas lidas como valor zero
}

// NewTable constrói o repositório. locker nil serializa apenas dentro do processo.
func NewTable[T any](store RowStore, locker Locker, log *logger.Logger, schema Schema[T]) *Table[T] {
	if locker == nil {
		locker = lock.NewLocalLocker()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Table[T]{
		store:  store,
		locker: locker,
		schema: schema,
		log:    log.Component("sheets." + schema.Sheet),
		now:    time.Now,
	}
}

// Sheet devolve o nome da aba.
func (t *Table[T]) Sheet() string { return t.schema.Sheet }

// List devolve todos os registros legíveis, em ordem de linha. Aba vazia → slice vazio.
func (t *Table[T]) List(ctx context.Context) (_ []*T, err error) {
	defer t.observe("list", time.Now(), &err)
	entries, _, err := t.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*T, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.rec)
	}
	return out, nil
}

// GetByID devolve o primeiro registro com o id informado, ou nil.
func (t *Table[T]) GetByID(ctx context.Context, id int64) (_ *T, err error) {
	defer t.observe("get", time.Now(), &err)
	entries, _, err := t.load(ctx)
	if err != nil {
		return nil, err
	}
	if e, ok := t.find(entries, id); ok {
		return e.rec, nil
	}
	return nil, nil
}

// FindOne devolve o primeiro registro que satisfaz match, ou nil.
func (t *Table[T]) FindOne(ctx context.Context, match func(*T) bool) (_ *T, err error) {
	defer t.observe("find", time.Now(), &err)
	entries, _, err := t.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if match(e.rec) {
			return e.rec, nil
		}
	}
	return nil, nil
}

// Create acrescenta o registro ao final da aba na ordem fixa de colunas.
// Escreve o cabeçalho se a aba estiver vazia. ErrDuplicate se o id já existir.
func (t *Table[T]) Create(ctx context.Context, rec *T) (err error) {
	defer t.observe("create", time.Now(), &err)
	return t.create(ctx, rec, nil)
}

// CreateUnless é Create com uma checagem extra feita sob o mesmo lock: se algum registro
// existente satisfizer conflict, nada é escrito e o erro devolvido por conflict é retornado.
func (t *Table[T]) CreateUnless(ctx context.Context, rec *T, conflict func(*T) error) (err error) {
	defer t.observe("create", time.Now(), &err)
	return t.create(ctx, rec, conflict)
}

func (t *Table[T]) create(ctx context.Context, rec *T, conflict func(*T) error) error {
	id := t.schema.Meta(rec).ID
	if id == 0 {
		return fmt.Errorf("%s: id não atribuído: %w", t.schema.Sheet, domain.ErrInvalidInput)
	}
	return t.withLock(ctx, func() error {
		entries, hasHeader, err := t.load(ctx)
		if err != nil {
			return err
		}
		if _, ok := t.find(entries, id); ok {
			return fmt.Errorf("%s: id %d: %w", t.schema.Sheet, id, domain.ErrDuplicate)
		}
		if conflict != nil {
			for _, e := range entries {
				if err := conflict(e.rec); err != nil {
					return err
				}
			}
		}
		if !hasHeader {
			if err := t.writeHeader(ctx); err != nil {
				return err
			}
		}
		if err := t.store.AppendRow(ctx, AppendRange(t.schema.Sheet), t.schema.Encode(rec)); err != nil {
			return t.unavailable("acrescentar", err)
		}
		return nil
	})
}

// Update localiza o registro pelo id, aplica merge e regrava exatamente a sua linha.
// id e data_criacao são restaurados depois do merge; data_modificacao recebe o instante atual.
// Células que não puderam ser lidas e que o merge não alterou são regravadas com o conteúdo
// original. Registro ausente → (nil, nil).
func (t *Table[T]) Update(ctx context.Context, id int64, merge func(*T) error) (_ *T, err error) {
	defer t.observe("update", time.Now(), &err)
	var updated *T
	err = t.withLock(ctx, func() error {
		entries, _, err := t.load(ctx)
		if err != nil {
			return err
		}
		e, ok := t.find(entries, id)
		if !ok {
			return nil
		}
		rec := e.rec
		orig := *t.schema.Meta(rec)
		before := t.schema.Encode(rec)
		if merge != nil {
			if err := merge(rec); err != nil {
				return err
			}
		}
		m := t.schema.Meta(rec)
		m.ID = orig.ID
		m.DataCriacao = orig.DataCriacao
		m.DataModificacao = t.now().UTC()

		row := t.schema.Encode(rec)
		for i, col := range t.schema.Columns {
			if e.bad[col] && reflect.DeepEqual(before[i], row[i]) {
				row[i] = e.raw[col]
			}
		}

		// +2: cabeçalho na linha 1 e linhas 1-based
		a1 := RowRange(t.schema.Sheet, len(t.schema.Columns), e.index+2)
		if err := t.store.WriteRange(ctx, a1, [][]any{row}); err != nil {
			return t.unavailable("atualizar", err)
		}
		updated = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete remove a linha do registro pelo seu índice estrutural atual.
// Registro ausente → false.
func (t *Table[T]) Delete(ctx context.Context, id int64) (_ bool, err error) {
	defer t.observe("delete", time.Now(), &err)
	var deleted bool
	err = t.withLock(ctx, func() error {
		entries, _, err := t.load(ctx)
		if err != nil {
			return err
		}
		e, ok := t.find(entries, id)
		if !ok {
			return nil
		}
		sheetID, found, err := t.store.SheetID(ctx, t.schema.Sheet)
		if err != nil {
			return t.unavailable("obter id da aba", err)
		}
		if !found {
			return t.unavailable("obter id da aba", errors.New("aba não encontrada"))
		}
		// +1: índice 0-based estrutural, cabeçalho na posição 0
		if err := t.store.DeleteRow(ctx, sheetID, e.index+1); err != nil {
			return t.unavailable("excluir", err)
		}
		deleted = true
		return nil
	})
	return deleted, err
}

func (t *Table[T]) observe(op string, start time.Time, err *error) {
	metrics.ObserveSheetOp(t.schema.Sheet, op, *err, time.Since(start))
}

func (t *Table[T]) withLock(ctx context.Context, fn func() error) error {
	unlock, err := t.locker.Lock(ctx, "sheets:"+t.schema.Sheet)
	if err != nil {
		return fmt.Errorf("%s: obter lock: %w", t.schema.Sheet, err)
	}
	defer unlock()
	return fn()
}

func (t *Table[T]) load(ctx context.Context) ([]entry[T], bool, error) {
	values, err := t.store.ReadRange(ctx, TableRange(t.schema.Sheet, len(t.schema.Columns)))
	if err != nil {
		return nil, false, t.unavailable("ler", err)
	}
	if len(values) == 0 {
		return nil, false, nil
	}
	header := make([]string, len(values[0]))
	for i, h := range values[0] {
		header[i] = strings.TrimSpace(h)
	}
	t.checkHeader(header)

	entries := make([]entry[T], 0, len(values)-1)
	for i, raw := range values[1:] {
		if blank(raw) {
			continue
		}
		row := zipRow(header, raw)
		rec, err := t.schema.Decode(row)
		if rec == nil {
			t.log.Warn().Err(err).Int("linha", i+2).Msg("linha sem id válido ignorada")
			continue
		}
		var bad map[string]bool
		if err != nil {
			var cells CellErrors
			if errors.As(err, &cells) {
				bad = cells.Cols()
			}
			t.log.Warn().Err(err).Int("linha", i+2).Msg("células inválidas lidas como vazias")
		}
		entries = append(entries, entry[T]{index: i, rec: rec, raw: row, bad: bad})
	}
	return entries, true, nil
}

func (t *Table[T]) find(entries []entry[T], id int64) (entry[T], bool) {
	for _, e := range entries {
		if t.schema.Meta(e.rec).ID == id {
			return e, true
		}
	}
	return entry[T]{}, false
}

func (t *Table[T]) checkHeader(header []string) {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}
	for _, c := range t.schema.Columns {
		if !present[c] {
			t.log.Warn().Str("coluna", c).Strs("cabecalho", header).Msg("coluna ausente no cabeçalho")
		}
	}
}

func (t *Table[T]) writeHeader(ctx context.Context) error {
	row := make([]any, len(t.schema.Columns))
	for i, c := range t.schema.Columns {
		row[i] = c
	}
	a1 := RowRange(t.schema.Sheet, len(t.schema.Columns), 1)
	if err := t.store.WriteRange(ctx, a1, [][]any{row}); err != nil {
		return t.unavailable("escrever cabeçalho", err)
	}
	return nil
}

func (t *Table[T]) unavailable(op string, err error) error {
	t.log.Error().Err(err).Str("op", op).Msg("falha na planilha")
	return fmt.Errorf("%s: %s: %w: %w", t.schema.Sheet, op, domain.ErrStoreUnavailable, err)
}
