package sheets

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/fazenda-api/internal/domain/entity"
)

// Colunas comuns a todas as abas.
const (
	colID              = "id"
	colDataCriacao     = "data_criacao"
	colDataModificacao = "data_modificacao"
)

// Layouts aceitos na leitura de carimbos de tempo. O primeiro é o usado na escrita.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Row é uma linha de dados indexada pelo nome da coluna no cabeçalho.
type Row map[string]string

// zipRow associa cada célula ao cabeçalho. Linhas curtas (a API omite células vazias no
// final) são completadas com "".
func zipRow(header, values []string) Row {
	r := make(Row, len(header))
	for i, h := range header {
		if h == "" {
			continue
		}
		if i < len(values) {
			r[h] = strings.TrimSpace(values[i])
		} else {
			r[h] = ""
		}
	}
	return r
}

func blank(values []string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// CellError célula que não pôde ser convertida. O registro segue com o valor zero do
// campo e o conteúdo bruto é preservado na próxima regravação da linha.
type CellError struct {
	Col   string
	Value string
	Err   error
}

func (e *CellError) Error() string { return fmt.Sprintf("coluna %s: %v", e.Col, e.Err) }

func (e *CellError) Unwrap() error { return e.Err }

// CellErrors todas as células inválidas de uma linha.
type CellErrors []*CellError

func (es CellErrors) Error() string {
	parts := make([]string, len(es))
	for i, e := range es {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "; ")
}

// Cols colunas afetadas.
func (es CellErrors) Cols() map[string]bool {
	out := make(map[string]bool, len(es))
	for _, e := range es {
		out[e.Col] = true
	}
	return out
}

// decoder lê campos tipados de uma Row acumulando os erros por coluna.
type decoder struct {
	row   Row
	errs  CellErrors
	badID bool
}

func (r Row) decoder() *decoder { return &decoder{row: r} }

func (d *decoder) fail(col string, err error) {
	d.errs = append(d.errs, &CellError{Col: col, Value: d.row[col], Err: err})
}

func (d *decoder) failed(col string) bool {
	for _, e := range d.errs {
		if e.Col == col {
			return true
		}
	}
	return false
}

func (d *decoder) err() error {
	if len(d.errs) == 0 {
		return nil
	}
	return d.errs
}

// decoded fecha a leitura de uma linha: sem id válido → (nil, err), linha ignorada;
// com id → registro devolvido, acompanhado de CellErrors se alguma célula falhou.
func decoded[T any](rec *T, d *decoder) (*T, error) {
	if d.badID {
		return nil, d.err()
	}
	return rec, d.err()
}

func (d *decoder) str(col string) string { return d.row[col] }

func (d *decoder) int64(col string) int64 {
	s := d.row[col]
	if s == "" {
		return 0
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	// "12.0" quando a célula foi formatada como número decimal
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int64(f)) {
		d.fail(col, fmt.Errorf("inteiro inválido %q", s))
		return 0
	}
	return int64(f)
}

func (d *decoder) float(col string) float64 {
	s := d.row[col]
	if s == "" {
		return 0
	}
	if !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		d.fail(col, fmt.Errorf("número inválido %q", d.row[col]))
		return 0
	}
	return f
}

func (d *decoder) time(col string) time.Time {
	s := d.row[col]
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	d.fail(col, fmt.Errorf("data inválida %q", s))
	return time.Time{}
}

// meta lê id e carimbos. Um registro sem id não pode ser endereçado e é rejeitado.
func (d *decoder) meta() entity.Meta {
	m := entity.Meta{
		ID:              d.int64(colID),
		DataCriacao:     d.time(colDataCriacao),
		DataModificacao: d.time(colDataModificacao),
	}
	if m.ID == 0 {
		d.badID = true
		if !d.failed(colID) {
			d.fail(colID, fmt.Errorf("id ausente"))
		}
	}
	return m
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timeLayouts[0])
}
