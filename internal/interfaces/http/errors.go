package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fazenda-api/internal/application/dto"
	"github.com/jhoicas/fazenda-api/internal/domain"
)

func errorJSON(c *fiber.Ctx, status int, code, msg string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Msg: msg, Code: code})
}

func validationJSON(c *fiber.Ctx, campos map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Msg:    "dados inválidos",
		Code:   "VALIDATION",
		Campos: campos,
	})
}

// handleError traduz erros de domínio para status HTTP. Erros inesperados vão para o log e
// saem como 500 sem detalhes.
func handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return errorJSON(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		return errorJSON(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Credenciais inválidas")
	case errors.Is(err, domain.ErrNotFound):
		return errorJSON(c, fiber.StatusNotFound, "NOT_FOUND", "Recurso não encontrado")
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return errorJSON(c, fiber.StatusConflict, "EMAIL_EXISTS", "O email já está cadastrado")
	case errors.Is(err, domain.ErrDuplicate):
		return errorJSON(c, fiber.StatusConflict, "DUPLICATE", "Registro duplicado")
	case errors.Is(err, domain.ErrStoreUnavailable):
		RequestLog(c).Error().Err(err).Msg("planilha indisponível")
		return errorJSON(c, fiber.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Armazenamento indisponível, tente novamente")
	default:
		RequestLog(c).Error().Err(err).Msg("erro interno")
		return errorJSON(c, fiber.StatusInternalServerError, "INTERNAL", "Erro interno")
	}
}

// paramID lê o :id da rota como inteiro.
func paramID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	return id, err == nil
}
