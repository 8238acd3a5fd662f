package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fazenda-api/pkg/jwt"
)

// Locals keys para a identidade do token no Fiber.
const (
	LocalUserID      = "user_id"
	LocalNivelAcesso = "nivel_acesso"
)

// AuthMiddleware valida o Bearer Token JWT e coloca user_id e nivel_acesso em c.Locals.
// Falhas respondem 401 com {"msg": ...}.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return errorJSON(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "Token de acesso ausente")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return errorJSON(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "Formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return errorJSON(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "Token vazio")
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return errorJSON(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "Token inválido ou expirado")
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalNivelAcesso, claims.NivelAcesso)
		return c.Next()
	}
}

// GetUserID devolve o id do usuário autenticado (depois do AuthMiddleware).
func GetUserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(LocalUserID).(int64)
	return id
}

// GetNivelAcesso devolve o nível de acesso do token.
func GetNivelAcesso(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalNivelAcesso).(string)
	return s
}
