package sheets

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

var _ RowStore = (*MemoryStore)(nil)

// MemoryStore implementa RowStore em memória com a mesma semântica A1 da planilha remota:
// leituras omitem células e linhas vazias no final, append escreve após a última linha com
// dados e DeleteRow desloca as linhas seguintes.
type MemoryStore struct {
	mu     sync.Mutex
	sheets map[string]*memorySheet
	nextID int64
	fail   error
}

type memorySheet struct {
	id   int64
	rows [][]string
}

// NewMemoryStore cria o armazenamento com as abas informadas (vazias).
func NewMemoryStore(sheetNames ...string) *MemoryStore {
	s := &MemoryStore{sheets: make(map[string]*memorySheet), nextID: 1}
	for _, name := range sheetNames {
		s.AddSheet(name)
	}
	return s
}

// AddSheet cria a aba se ainda não existir.
func (s *MemoryStore) AddSheet(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sheets[name]; ok {
		return
	}
	s.sheets[name] = &memorySheet{id: s.nextID}
	s.nextID++
}

// SetFailure faz todas as operações seguintes falharem com err (nil restaura).
func (s *MemoryStore) SetFailure(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail = err
}

// Rows devolve uma cópia de todas as linhas da aba, cabeçalho incluído.
func (s *MemoryStore) Rows(sheet string) [][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	sh, ok := s.sheets[sheet]
	if !ok {
		return nil
	}
	out := make([][]string, len(sh.rows))
	for i, r := range sh.rows {
		out[i] = append([]string(nil), r...)
	}
	return out
}

func (s *MemoryStore) sheet(name string) (*memorySheet, error) {
	if s.fail != nil {
		return nil, s.fail
	}
	sh, ok := s.sheets[name]
	if !ok {
		return nil, fmt.Errorf("memory: aba %q não existe", name)
	}
	return sh, nil
}

func (s *MemoryStore) ReadRange(_ context.Context, a1 string) ([][]string, error) {
	r, err := parseA1(a1)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sh, err := s.sheet(r.Sheet)
	if err != nil {
		return nil, err
	}

	last := len(sh.rows)
	if r.EndRow > 0 && r.EndRow < last {
		last = r.EndRow
	}
	var out [][]string
	for i := r.StartRow - 1; i < last; i++ {
		src := sh.rows[i]
		endCol := len(src)
		if r.EndCol > 0 && r.EndCol < endCol {
			endCol = r.EndCol
		}
		var row []string
		if r.StartCol-1 < endCol {
			row = append(row, src[r.StartCol-1:endCol]...)
		}
		out = append(out, trimRow(row))
	}
	for len(out) > 0 && len(out[len(out)-1]) == 0 {
		out = out[:len(out)-1]
	}
	return out, nil
}

func (s *MemoryStore) AppendRow(_ context.Context, a1 string, row []any) error {
	r, err := parseA1(a1)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sh, err := s.sheet(r.Sheet)
	if err != nil {
		return err
	}
	n := len(sh.rows)
	for n > 0 && len(trimRow(sh.rows[n-1])) == 0 {
		n--
	}
	sh.rows = append(sh.rows[:n], padLeft(cells(row), r.StartCol-1))
	return nil
}

func (s *MemoryStore) WriteRange(_ context.Context, a1 string, rows [][]any) error {
	r, err := parseA1(a1)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sh, err := s.sheet(r.Sheet)
	if err != nil {
		return err
	}
	for i, values := range rows {
		idx := r.StartRow - 1 + i
		for len(sh.rows) <= idx {
			sh.rows = append(sh.rows, nil)
		}
		dst := sh.rows[idx]
		for j, v := range cells(values) {
			col := r.StartCol - 1 + j
			for len(dst) <= col {
				dst = append(dst, "")
			}
			dst[col] = v
		}
		sh.rows[idx] = dst
	}
	return nil
}

func (s *MemoryStore) DeleteRow(_ context.Context, sheetID int64, rowIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return s.fail
	}
	for _, sh := range s.sheets {
		if sh.id != sheetID {
			continue
		}
		if rowIndex < 0 || rowIndex >= len(sh.rows) {
			return fmt.Errorf("memory: linha %d fora da aba", rowIndex)
		}
		sh.rows = append(sh.rows[:rowIndex], sh.rows[rowIndex+1:]...)
		return nil
	}
	return fmt.Errorf("memory: aba %d não existe", sheetID)
}

func (s *MemoryStore) SheetID(_ context.Context, name string) (int64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return 0, false, s.fail
	}
	sh, ok := s.sheets[name]
	if !ok {
		return 0, false, nil
	}
	return sh.id, true, nil
}

func cells(values []any) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = cellString(v)
	}
	return out
}

func trimRow(row []string) []string {
	n := len(row)
	for n > 0 && strings.TrimSpace(row[n-1]) == "" {
		n--
	}
	return row[:n]
}

func padLeft(row []string, n int) []string {
	if n <= 0 {
		return row
	}
	return append(make([]string, n), row...)
}
