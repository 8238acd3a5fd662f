package sheets

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fazenda-api/internal/domain"
	"github.com/jhoicas/fazenda-api/internal/domain/entity"
)

var (
	t0 = time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)
	t1 = time.Date(2024, 2, 1, 8, 30, 0, 0, time.UTC)
)

func newProdutos(t *testing.T) (*ProdutoRepo, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore(SheetNames()...)
	repo := NewProdutoRepository(store, nil, nil)
	repo.now = func() time.Time { return t1 }
	return repo, store
}

func produto(id int64, nome string) *entity.Produto {
	return &entity.Produto{
		Meta:      entity.Meta{ID: id, DataCriacao: t0, DataModificacao: t0},
		Nome:      nome,
		Descricao: "saca 60kg",
		Peso:      60,
		Preco:     1250.5,
		Estoque:   10,
	}
}

func TestTable_ListVazio(t *testing.T) {
	repo, _ := newProdutos(t)
	list, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestTable_CreateEscreveCabecalhoEGet(t *testing.T) {
	ctx := context.Background()
	repo, store := newProdutos(t)

	in := produto(101, "Café arábica")
	require.NoError(t, repo.Create(ctx, in))

	rows := store.Rows("Produtos")
	require.Len(t, rows, 2)
	assert.Equal(t, ProdutoSchema.Columns, rows[0])

	got, err := repo.GetByID(ctx, 101)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, in, got)
}

func TestTable_GetAusente(t *testing.T) {
	ctx := context.Background()
	repo, _ := newProdutos(t)
	require.NoError(t, repo.Create(ctx, produto(1, "A")))

	got, err := repo.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTable_CreateIDDuplicado(t *testing.T) {
	ctx := context.Background()
	repo, store := newProdutos(t)
	require.NoError(t, repo.Create(ctx, produto(7, "A")))

	err := repo.Create(ctx, produto(7, "B"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Len(t, store.Rows("Produtos"), 2)
}

func TestTable_CreateSemID(t *testing.T) {
	repo, _ := newProdutos(t)
	err := repo.Create(context.Background(), produto(0, "A"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTable_UpdateAlteraSoOCampo(t *testing.T) {
	ctx := context.Background()
	repo, store := newProdutos(t)
	require.NoError(t, repo.Create(ctx, produto(1, "A")))
	require.NoError(t, repo.Create(ctx, produto(2, "B")))
	require.NoError(t, repo.Create(ctx, produto(3, "C")))

	updated, err := repo.Update(ctx, 2, func(p *entity.Produto) error {
		p.Preco = 99.9
		p.DataCriacao = time.Now() // deve ser ignorado
		p.ID = 555                 // idem
		return nil
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	want := produto(2, "B")
	want.Preco = 99.9
	want.DataModificacao = t1
	assert.Equal(t, want, updated)

	got, err := repo.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// só a linha 3 (dados índice 1) mudou
	rows := store.Rows("Produtos")
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "2", rows[2][0])
	assert.Equal(t, "99.9", rows[2][4])
	assert.Equal(t, "1250.5", rows[3][4])

	others, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, produto(1, "A"), others[0])
	assert.Equal(t, produto(3, "C"), others[2])
}

func TestTable_UpdateAusente(t *testing.T) {
	ctx := context.Background()
	repo, _ := newProdutos(t)
	require.NoError(t, repo.Create(ctx, produto(1, "A")))

	called := false
	got, err := repo.Update(ctx, 42, func(*entity.Produto) error { called = true; return nil })
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.False(t, called)
}

func TestTable_UpdateErroNoMergeNaoGrava(t *testing.T) {
	ctx := context.Background()
	repo, store := newProdutos(t)
	require.NoError(t, repo.Create(ctx, produto(1, "A")))
	before := store.Rows("Produtos")

	boom := errors.New("boom")
	_, err := repo.Update(ctx, 1, func(p *entity.Produto) error { p.Nome = "X"; return boom })
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, before, store.Rows("Produtos"))
}

func TestTable_DeleteDeslocaLinhas(t *testing.T) {
	ctx := context.Background()
	repo, _ := newProdutos(t)
	for i, n := range []string{"A", "B", "C"} {
		require.NoError(t, repo.Create(ctx, produto(int64(i+1), n)))
	}

	ok, err := repo.Delete(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, produto(2, "B"), list[0])
	assert.Equal(t, produto(3, "C"), list[1])

	// após o deslocamento, a atualização ainda acerta a linha certa
	_, err = repo.Update(ctx, 3, func(p *entity.Produto) error { p.Estoque = 0; return nil })
	require.NoError(t, err)
	b, err := repo.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, produto(2, "B"), b)
	c, err := repo.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(0), c.Estoque)
}

func TestTable_DeleteAusente(t *testing.T) {
	repo, _ := newProdutos(t)
	ok, err := repo.Delete(context.Background(), 9)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTable_FalhaNaPlanilha(t *testing.T) {
	ctx := context.Background()
	repo, store := newProdutos(t)
	require.NoError(t, repo.Create(ctx, produto(1, "A")))
	store.SetFailure(errors.New("quota exceeded"))

	_, err := repo.List(ctx)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	_, err = repo.GetByID(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	err = repo.Create(ctx, produto(2, "B"))
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	_, err = repo.Update(ctx, 1, nil)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	_, err = repo.Delete(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestTable_LinhasInvalidasMantemIndices(t *testing.T) {
	ctx := context.Background()
	repo, store := newProdutos(t)
	header := make([]any, len(ProdutoSchema.Columns))
	for i, c := range ProdutoSchema.Columns {
		header[i] = c
	}
	require.NoError(t, store.WriteRange(ctx, "Produtos!A1:H4", [][]any{
		header,
		{"abc", "sem id numérico"},
		{},
		{5, "Milho", "", "", "30"}, // linha curta, sem carimbos
	}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Milho", list[0].Nome)
	assert.Equal(t, 30.0, list[0].Preco)

	_, err = repo.Update(ctx, 5, func(p *entity.Produto) error { p.Estoque = 3; return nil })
	require.NoError(t, err)
	rows := store.Rows("Produtos")
	assert.Equal(t, "abc", rows[1][0], "linha inválida intacta")
	assert.Equal(t, "5", rows[3][0])
	assert.Equal(t, "3", rows[3][5])
}

func TestTable_CarimboLegado(t *testing.T) {
	ctx := context.Background()
	repo, store := newProdutos(t)
	header := make([]any, len(ProdutoSchema.Columns))
	for i, c := range ProdutoSchema.Columns {
		header[i] = c
	}
	require.NoError(t, store.WriteRange(ctx, "Produtos!A1:H2", [][]any{
		header,
		{"1704450000", "Feijão", "", "1", "8,5", "2", "2024-01-05T10:00:00.123456", "2024-01-05T10:00:00"},
	}))

	p, err := repo.GetByID(ctx, 1704450000)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 8.5, p.Preco)
	assert.Equal(t, time.Date(2024, 1, 5, 10, 0, 0, 123456000, time.UTC), p.DataCriacao)
}

func TestTable_AtualizacoesConcorrentesSerializadas(t *testing.T) {
	ctx := context.Background()
	repo, _ := newProdutos(t)
	p := produto(1, "A")
	p.Estoque = 0
	require.NoError(t, repo.Create(ctx, p))

	var wg sync.WaitGroup
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Update(ctx, 1, func(p *entity.Produto) error { p.Estoque++; return nil })
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(25), got.Estoque)
}

func TestTable_UltimaEscritaVence(t *testing.T) {
	ctx := context.Background()
	repo, _ := newProdutos(t)
	require.NoError(t, repo.Create(ctx, produto(1, "A")))

	_, err := repo.Update(ctx, 1, func(p *entity.Produto) error { p.Nome = "primeiro"; return nil })
	require.NoError(t, err)
	_, err = repo.Update(ctx, 1, func(p *entity.Produto) error { p.Nome = "segundo"; return nil })
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "segundo", got.Nome)
}
