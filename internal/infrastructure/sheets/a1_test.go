package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnLetter(t *testing.T) {
	cases := map[int]string{1: "A", 7: "G", 12: "L", 26: "Z", 27: "AA", 52: "AZ", 53: "BA", 703: "AAA"}
	for n, want := range cases {
		assert.Equal(t, want, ColumnLetter(n), "coluna %d", n)
		assert.Equal(t, n, columnNumber(want))
	}
	assert.Equal(t, "", ColumnLetter(0))
}

func TestRanges(t *testing.T) {
	assert.Equal(t, "Usuarios!A1:G", TableRange("Usuarios", 7))
	assert.Equal(t, "Vendas!A1", AppendRange("Vendas"))
	assert.Equal(t, "Funcionarios!A5:K5", RowRange("Funcionarios", 11, 5))
}

func TestParseA1(t *testing.T) {
	r, err := parseA1("Usuarios!A1:G")
	require.NoError(t, err)
	assert.Equal(t, a1Range{Sheet: "Usuarios", StartCol: 1, StartRow: 1, EndCol: 7, EndRow: 0}, r)

	r, err = parseA1("'Minha Aba'!B3:C4")
	require.NoError(t, err)
	assert.Equal(t, a1Range{Sheet: "Minha Aba", StartCol: 2, StartRow: 3, EndCol: 3, EndRow: 4}, r)

	r, err = parseA1("Vendas!A1")
	require.NoError(t, err)
	assert.Equal(t, 0, r.EndCol)

	_, err = parseA1("SemAba")
	assert.Error(t, err)
	_, err = parseA1("X!1:2")
	assert.Error(t, err)
}
