package sheets

import (
	"fmt"
	"strconv"
	"strings"
)

// ColumnLetter converte um número de coluna 1-based em letras (1 → A, 27 → AA).
func ColumnLetter(n int) string {
	if n <= 0 {
		return ""
	}
	var b []byte
	for n > 0 {
		n--
		b = append([]byte{byte('A' + n%26)}, b...)
		n /= 26
	}
	return string(b)
}

// columnNumber é o inverso de ColumnLetter.
func columnNumber(letters string) int {
	n := 0
	for _, r := range strings.ToUpper(letters) {
		if r < 'A' || r > 'Z' {
			return 0
		}
		n = n*26 + int(r-'A'+1)
	}
	return n
}

// TableRange intervalo completo da aba, cabeçalho incluído ("Usuarios!A1:G").
func TableRange(sheet string, ncols int) string {
	return fmt.Sprintf("%s!A1:%s", sheet, ColumnLetter(ncols))
}

// AppendRange âncora usada para acrescentar linhas ao final da tabela.
func AppendRange(sheet string) string {
	return sheet + "!A1"
}

// RowRange intervalo de uma única linha estrutural 1-based ("Usuarios!A5:G5").
func RowRange(sheet string, ncols, row int) string {
	return fmt.Sprintf("%s!A%d:%s%d", sheet, row, ColumnLetter(ncols), row)
}

// a1Range intervalo decodificado. Linhas e colunas 1-based; zero em EndRow/EndCol = aberto.
type a1Range struct {
	Sheet    string
	StartCol int
	StartRow int
	EndCol   int
	EndRow   int
}

func parseA1(s string) (a1Range, error) {
	var r a1Range
	sheet, cells, ok := strings.Cut(s, "!")
	if !ok {
		return r, fmt.Errorf("intervalo sem aba: %q", s)
	}
	r.Sheet = strings.Trim(sheet, "'")
	start, end, hasEnd := strings.Cut(cells, ":")
	var err error
	if r.StartCol, r.StartRow, err = parseCell(start); err != nil {
		return r, err
	}
	if r.StartRow == 0 {
		r.StartRow = 1
	}
	if hasEnd {
		if r.EndCol, r.EndRow, err = parseCell(end); err != nil {
			return r, err
		}
	} else {
		r.EndCol, r.EndRow = 0, 0
	}
	if r.StartCol == 0 {
		return r, fmt.Errorf("coluna inicial inválida em %q", s)
	}
	return r, nil
}

func parseCell(s string) (col, row int, err error) {
	i := 0
	for i < len(s) && (s[i] >= 'A' && s[i] <= 'Z' || s[i] >= 'a' && s[i] <= 'z') {
		i++
	}
	col = columnNumber(s[:i])
	if i < len(s) {
		row, err = strconv.Atoi(s[i:])
		if err != nil || row <= 0 {
			return 0, 0, fmt.Errorf("célula inválida: %q", s)
		}
	}
	return col, row, nil
}
