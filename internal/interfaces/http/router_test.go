package http_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/fazenda-api/internal/application/auth"
	"github.com/jhoicas/fazenda-api/internal/application/report"
	"github.com/jhoicas/fazenda-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/fazenda-api/internal/infrastructure/pdf"
	"github.com/jhoicas/fazenda-api/internal/infrastructure/sheets"
	apphttp "github.com/jhoicas/fazenda-api/internal/interfaces/http"
	"github.com/jhoicas/fazenda-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type testApp struct {
	app   *fiber.App
	store *sheets.MemoryStore
}

// buildApp monta a API completa sobre uma planilha em memória.
func buildApp(t *testing.T) *testApp {
	t.Helper()
	store := sheets.NewMemoryStore(sheets.SheetNames()...)
	usuarios := sheets.NewUsuarioRepository(store, nil, nil)
	vendas := sheets.NewVendaRepository(store, nil, nil)
	despesas := sheets.NewDespesaRepository(store, nil, nil)
	ids := usecase.NewClockIDs()

	app := fiber.New()
	app.Use(apphttp.RequestLogger(logger.Nop()))
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(usuarios, ids, auth.JWTConfig{
			Secret: testJWTSecret, ExpMinutes: 60, Issuer: "fazenda-test",
		}).WithBcryptCost(bcrypt.MinCost),
		UsuarioUC:     usecase.NewUsuarioUseCase(usuarios).WithBcryptCost(bcrypt.MinCost),
		FuncionarioUC: usecase.NewFuncionarioUseCase(sheets.NewFuncionarioRepository(store, nil, nil), ids),
		ClienteUC:     usecase.NewClienteUseCase(sheets.NewClienteRepository(store, nil, nil), ids),
		ProdutoUC:     usecase.NewProdutoUseCase(sheets.NewProdutoRepository(store, nil, nil), ids),
		VendaUC:       usecase.NewVendaUseCase(vendas, ids),
		DespesaUC:     usecase.NewDespesaUseCase(despesas, ids),
		PlantioUC:     usecase.NewPlantioUseCase(sheets.NewPlantioRepository(store, nil, nil), ids),
		ReportUC:      report.NewFinancialUseCase(vendas, despesas, infrapdf.NewMarotoPDFGenerator("")),
		JWTSecret:     testJWTSecret,
	})
	return &testApp{app: app, store: store}
}

type result struct {
	status int
	header http.Header
	raw    []byte
}

func (r result) json(t *testing.T) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(r.raw, &m), string(r.raw))
	return m
}

func (a *testApp) do(t *testing.T, method, path, token string, body any) result {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return result{status: resp.StatusCode, header: resp.Header, raw: raw}
}

// login registra um usuário e devolve um token válido.
func (a *testApp) login(t *testing.T) string {
	t.Helper()
	reg := a.do(t, http.MethodPost, "/auth/register", "", map[string]any{
		"nome": "Ana", "email": "ana@fazenda.com", "senha": "segredo1", "nivel_acesso": "admin",
	})
	require.Equal(t, http.StatusCreated, reg.status, string(reg.raw))
	res := a.do(t, http.MethodPost, "/auth/login", "", map[string]any{"email": "ana@fazenda.com", "senha": "segredo1"})
	require.Equal(t, http.StatusOK, res.status, string(res.raw))
	tok, _ := res.json(t)["access_token"].(string)
	require.NotEmpty(t, tok)
	return tok
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestAuth_RegisterNaoExpoeSenha(t *testing.T) {
	a := buildApp(t)
	res := a.do(t, http.MethodPost, "/auth/register", "", map[string]any{
		"nome": "Ana", "email": "ana@fazenda.com", "senha": "segredo1", "nivel_acesso": "admin",
	})
	require.Equal(t, http.StatusCreated, res.status)

	body := res.json(t)
	assert.Equal(t, "ana@fazenda.com", body["email"])
	assert.NotZero(t, body["id"])
	assert.NotContains(t, body, "senha")
	assert.NotContains(t, body, "senha_hash")
	assert.NotContains(t, string(res.raw), "segredo1")
}

func TestAuth_RegisterEmailDuplicado_Retorna409(t *testing.T) {
	a := buildApp(t)
	a.login(t)
	res := a.do(t, http.MethodPost, "/auth/register", "", map[string]any{
		"nome": "Outra", "email": "ANA@fazenda.com", "senha": "segredo2", "nivel_acesso": "operador",
	})
	assert.Equal(t, http.StatusConflict, res.status)
}

func TestAuth_RegisterInvalido_Retorna400ComCampos(t *testing.T) {
	a := buildApp(t)
	res := a.do(t, http.MethodPost, "/auth/register", "", map[string]any{
		"email": "nao-e-email", "senha": "123", "nivel_acesso": "dono",
	})
	require.Equal(t, http.StatusBadRequest, res.status)

	campos, ok := res.json(t)["campos"].(map[string]any)
	require.True(t, ok, string(res.raw))
	assert.Contains(t, campos, "nome")
	assert.Contains(t, campos, "email")
	assert.Contains(t, campos, "senha")
	assert.Contains(t, campos, "nivel_acesso")
}

func TestAuth_LoginSenhaErrada_Retorna401SemToken(t *testing.T) {
	a := buildApp(t)
	a.login(t)

	res := a.do(t, http.MethodPost, "/auth/login", "", map[string]any{"email": "ana@fazenda.com", "senha": "errada"})
	assert.Equal(t, http.StatusUnauthorized, res.status)
	body := res.json(t)
	assert.NotContains(t, body, "access_token")
	assert.Equal(t, "Credenciais inválidas", body["msg"])

	res = a.do(t, http.MethodPost, "/auth/login", "", map[string]any{"email": "ninguem@fazenda.com", "senha": "x"})
	assert.Equal(t, http.StatusUnauthorized, res.status)
}

func TestAuth_TokenAceitoNaRotaProtegida(t *testing.T) {
	a := buildApp(t)
	tok := a.login(t)

	res := a.do(t, http.MethodGet, "/auth/me", tok, nil)
	require.Equal(t, http.StatusOK, res.status)
	body := res.json(t)
	assert.Equal(t, "admin", body["nivel_acesso"])
	assert.NotZero(t, body["user_id"])
}

func TestProtegido_SemToken_Retorna401(t *testing.T) {
	a := buildApp(t)
	for _, path := range []string{"/produtos/", "/vendas/1", "/relatorios/financeiro", "/usuarios/"} {
		res := a.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, res.status, path)
		assert.Contains(t, res.json(t), "msg")
	}
	res := a.do(t, http.MethodGet, "/produtos/", "token.invalido.aqui", nil)
	assert.Equal(t, http.StatusUnauthorized, res.status)
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD
// ──────────────────────────────────────────────────────────────────────────────

func TestProdutos_CicloCompleto(t *testing.T) {
	a := buildApp(t)
	tok := a.login(t)

	list := a.do(t, http.MethodGet, "/produtos/", tok, nil)
	require.Equal(t, http.StatusOK, list.status)
	assert.JSONEq(t, "[]", string(list.raw))

	created := a.do(t, http.MethodPost, "/produtos/", tok, map[string]any{
		"nome": "Café arábica", "descricao": "saca 60kg", "peso": 60, "preco": 1250.5, "estoque": 10,
	})
	require.Equal(t, http.StatusCreated, created.status, string(created.raw))
	p := created.json(t)
	id := int64(p["id"].(float64))
	path := fmt.Sprintf("/produtos/%d", id)

	got := a.do(t, http.MethodGet, path, tok, nil)
	require.Equal(t, http.StatusOK, got.status)
	assert.JSONEq(t, string(created.raw), string(got.raw))

	upd := a.do(t, http.MethodPut, path, tok, map[string]any{"estoque": 7})
	require.Equal(t, http.StatusOK, upd.status, string(upd.raw))
	u := upd.json(t)
	assert.Equal(t, 7.0, u["estoque"])
	assert.Equal(t, "Café arábica", u["nome"])
	assert.Equal(t, 1250.5, u["preco"])
	assert.Equal(t, p["data_criacao"], u["data_criacao"])

	del := a.do(t, http.MethodDelete, path, tok, nil)
	require.Equal(t, http.StatusOK, del.status)
	assert.Equal(t, "Produto excluído com sucesso", del.json(t)["msg"])

	gone := a.do(t, http.MethodGet, path, tok, nil)
	assert.Equal(t, http.StatusNotFound, gone.status)
	assert.Equal(t, "Produto não encontrado", gone.json(t)["msg"])

	again := a.do(t, http.MethodDelete, path, tok, nil)
	assert.Equal(t, http.StatusNotFound, again.status)
}

func TestRecursos_IDNaoInteiro_Retorna400(t *testing.T) {
	a := buildApp(t)
	tok := a.login(t)
	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		res := a.do(t, method, "/clientes/abc", tok, nil)
		assert.Equal(t, http.StatusBadRequest, res.status, method)
	}
	res := a.do(t, http.MethodPut, "/clientes/1.5", tok, map[string]any{"nome": "x"})
	assert.Equal(t, http.StatusBadRequest, res.status)
}

func TestRecursos_UpdateAusente_Retorna404(t *testing.T) {
	a := buildApp(t)
	tok := a.login(t)
	res := a.do(t, http.MethodPut, "/plantios/42", tok, map[string]any{"localizacao": "talhão 1"})
	assert.Equal(t, http.StatusNotFound, res.status)
	assert.Equal(t, "Plantio não encontrado", res.json(t)["msg"])
}

func TestRecursos_CorpoInvalido_Retorna400(t *testing.T) {
	a := buildApp(t)
	tok := a.login(t)

	req := httptest.NewRequest(http.MethodPost, "/clientes/", bytes.NewBufferString("{nome"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	res := a.do(t, http.MethodPost, "/funcionarios/", tok, map[string]any{
		"nome": "João", "sobrenome": "Silva", "cpf": "12345678900", "cargo": "tratorista",
		"data_contratacao": "01/03/2023",
	})
	require.Equal(t, http.StatusBadRequest, res.status)
	campos := res.json(t)["campos"].(map[string]any)
	assert.Contains(t, campos, "data_contratacao")
}

func TestUsuarios_SemPost(t *testing.T) {
	a := buildApp(t)
	tok := a.login(t)
	res := a.do(t, http.MethodPost, "/usuarios/", tok, map[string]any{"nome": "x"})
	assert.Contains(t, []int{http.StatusNotFound, http.StatusMethodNotAllowed}, res.status)

	list := a.do(t, http.MethodGet, "/usuarios/", tok, nil)
	require.Equal(t, http.StatusOK, list.status)
	assert.NotContains(t, string(list.raw), "senha_hash")
}

func TestUsuarios_UpdateSenhaPermiteNovoLogin(t *testing.T) {
	a := buildApp(t)
	tok := a.login(t)
	me := a.do(t, http.MethodGet, "/auth/me", tok, nil).json(t)
	path := fmt.Sprintf("/usuarios/%d", int64(me["user_id"].(float64)))

	res := a.do(t, http.MethodPut, path, tok, map[string]any{"senha": "nova-senha"})
	require.Equal(t, http.StatusOK, res.status, string(res.raw))

	login := a.do(t, http.MethodPost, "/auth/login", "", map[string]any{"email": "ana@fazenda.com", "senha": "nova-senha"})
	assert.Equal(t, http.StatusOK, login.status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Vendas e relatórios
// ──────────────────────────────────────────────────────────────────────────────

func TestVendas_TotalCalculadoIgnoraCliente(t *testing.T) {
	a := buildApp(t)
	tok := a.login(t)
	res := a.do(t, http.MethodPost, "/vendas/", tok, map[string]any{
		"data_venda":  "2024-01-05",
		"cliente_id":  1,
		"valor_total": 999,
		"produtos": []map[string]any{
			{"quantidade": 2, "preco_unitario": 10},
			{"quantidade": 1, "preco_unitario": 5},
		},
	})
	require.Equal(t, http.StatusCreated, res.status, string(res.raw))
	assert.Equal(t, 25.0, res.json(t)["valor_total"])
}

func TestVendas_ItemLivreVoltaNoGet(t *testing.T) {
	a := buildApp(t)
	tok := a.login(t)
	res := a.do(t, http.MethodPost, "/vendas/", tok, map[string]any{
		"cliente_id": 1,
		"produtos": []map[string]any{
			{"produto": "Cafe arabica", "quantidade": 2, "preco_unitario": 10, "lote": "L-12"},
		},
	})
	require.Equal(t, http.StatusCreated, res.status, string(res.raw))
	id := int64(res.json(t)["id"].(float64))

	got := a.do(t, http.MethodGet, fmt.Sprintf("/vendas/%d", id), tok, nil)
	require.Equal(t, http.StatusOK, got.status, string(got.raw))
	itens := got.json(t)["produtos"].([]any)
	require.Len(t, itens, 1)
	item := itens[0].(map[string]any)
	assert.Equal(t, "Cafe arabica", item["produto"])
	assert.Equal(t, "L-12", item["lote"])
	assert.Equal(t, 20.0, got.json(t)["valor_total"])
}

func TestVendas_ItemInvalido_Retorna400(t *testing.T) {
	a := buildApp(t)
	tok := a.login(t)
	res := a.do(t, http.MethodPost, "/vendas/", tok, map[string]any{
		"cliente_id": 1,
		"produtos":   []map[string]any{{"quantidade": 0, "preco_unitario": 10}},
	})
	require.Equal(t, http.StatusBadRequest, res.status)
	campos := res.json(t)["campos"].(map[string]any)
	assert.Contains(t, campos, "produtos[0].quantidade")
}

func TestRelatorioFinanceiro(t *testing.T) {
	a := buildApp(t)
	tok := a.login(t)
	require.Equal(t, http.StatusCreated, a.do(t, http.MethodPost, "/vendas/", tok, map[string]any{
		"data_venda": "2024-01-05", "cliente_id": 1,
		"produtos": []map[string]any{{"quantidade": 1, "preco_unitario": 100}},
	}).status)
	require.Equal(t, http.StatusCreated, a.do(t, http.MethodPost, "/despesas/", tok, map[string]any{
		"tipo": "insumo", "valor": 40, "data": "2024-01-10",
	}).status)

	res := a.do(t, http.MethodGet, "/relatorios/financeiro", tok, nil)
	require.Equal(t, http.StatusOK, res.status)
	body := res.json(t)
	assert.Equal(t, 100.0, body["total_vendas"])
	assert.Equal(t, 40.0, body["total_despesas"])
	assert.Equal(t, 60.0, body["lucro"])
	assert.Nil(t, body["data_inicio"])

	res = a.do(t, http.MethodGet, "/relatorios/financeiro?data_inicio=2024-01-06", tok, nil)
	require.Equal(t, http.StatusOK, res.status)
	body = res.json(t)
	assert.Equal(t, 0.0, body["total_vendas"])
	assert.Equal(t, 40.0, body["total_despesas"])
	assert.Equal(t, -40.0, body["lucro"])
	assert.Equal(t, "2024-01-06", body["data_inicio"])

	res = a.do(t, http.MethodGet, "/relatorios/financeiro?data_fim=ontem", tok, nil)
	assert.Equal(t, http.StatusBadRequest, res.status)
}

func TestRelatorioFinanceiroPDF(t *testing.T) {
	a := buildApp(t)
	tok := a.login(t)
	res := a.do(t, http.MethodGet, "/relatorios/financeiro/pdf", tok, nil)
	require.Equal(t, http.StatusOK, res.status)
	assert.Equal(t, "application/pdf", res.header.Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(res.raw, []byte("%PDF")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Falhas e middleware
// ──────────────────────────────────────────────────────────────────────────────

func TestPlanilhaIndisponivel_Retorna503(t *testing.T) {
	a := buildApp(t)
	tok := a.login(t)
	a.store.SetFailure(errors.New("quota exceeded"))

	res := a.do(t, http.MethodGet, "/despesas/", tok, nil)
	assert.Equal(t, http.StatusServiceUnavailable, res.status)
	assert.Equal(t, "STORE_UNAVAILABLE", res.json(t)["code"])
	assert.NotContains(t, string(res.raw), "quota")
}

func TestRequestLogger_DevolveRequestID(t *testing.T) {
	a := buildApp(t)
	res := a.do(t, http.MethodGet, "/produtos/", "", nil)
	assert.NotEmpty(t, res.header.Get(apphttp.HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/produtos/", nil)
	req.Header.Set(apphttp.HeaderRequestID, "7d444840-9dc0-11d1-b245-5ffdce74fad2")
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "7d444840-9dc0-11d1-b245-5ffdce74fad2", resp.Header.Get(apphttp.HeaderRequestID))
}
