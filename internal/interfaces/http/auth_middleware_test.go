package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/fazenda-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/fazenda-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = int64(1717171717000001)
	testIssuer    = "fazenda-test"
	testExpMin    = 60
)

// buildMiddlewareApp aplicação Fiber mínima: AuthMiddleware e um handler que ecoa os locals.
func buildMiddlewareApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"user_id":      apphttp.GetUserID(c),
				"nivel_acesso": apphttp.GetNivelAcesso(c),
			})
		},
	)
	return app
}

func bearer(t *testing.T, secret string, expMin int) string {
	t.Helper()
	tok, err := pkgjwt.Generate(secret, testUserID, "operador", testIssuer, expMin)
	require.NoError(t, err, "deve gerar um token JWT válido")
	return "Bearer " + tok
}

func doProtected(t *testing.T, app *fiber.App, authHeader string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

// Token válido: passa e os locals ficam disponíveis para o handler.
func TestAuthMiddleware_TokenValido(t *testing.T) {
	status, body := doProtected(t, buildMiddlewareApp(), bearer(t, testJWTSecret, testExpMin))

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(testUserID), body["user_id"])
	assert.Equal(t, "operador", body["nivel_acesso"])
}

func TestAuthMiddleware_Rejeicoes(t *testing.T) {
	app := buildMiddlewareApp()
	cases := []struct {
		name   string
		header string
		code   string
	}{
		{"sem header", "", "MISSING_TOKEN"},
		{"esquema errado", "Basic dXNlcjpwYXNz", "INVALID_TOKEN"},
		{"lixo", "Bearer abc.def.ghi", "INVALID_TOKEN"},
		{"assinatura de outro segredo", bearer(t, "outro-segredo", testExpMin), "INVALID_TOKEN"},
		{"expirado", bearer(t, testJWTSecret, -5), "INVALID_TOKEN"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := doProtected(t, app, tc.header)
			assert.Equal(t, http.StatusUnauthorized, status)
			assert.Equal(t, tc.code, body["code"])
			assert.NotEmpty(t, body["msg"])
			assert.NotContains(t, body, "user_id")
		})
	}
}

// O prefixo Bearer não diferencia maiúsculas.
func TestAuthMiddleware_BearerMinusculo(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	status, body := doProtected(t, buildMiddlewareApp(), "bearer "+tok)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "admin", body["nivel_acesso"])
}
