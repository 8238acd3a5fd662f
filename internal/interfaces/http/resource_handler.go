package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fazenda-api/internal/application/dto"
)

// ResourceService contrato comum dos casos de uso CRUD por id.
type ResourceService[U, R any] interface {
	List(ctx context.Context) ([]R, error)
	GetByID(ctx context.Context, id int64) (*R, error)
	Update(ctx context.Context, id int64, in U) (*R, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// Creator caso de uso de criação. Usuários não têm (o registro fica em /auth/register).
type Creator[C, R any] interface {
	Create(ctx context.Context, in C) (*R, error)
}

// Messages textos de resposta de um recurso.
type Messages struct {
	NotFound string // "Venda não encontrada"
	Deleted  string // "Venda excluída com sucesso"
}

// ResourceHandler handler HTTP genérico de um tipo de registro (protegido).
type ResourceHandler[C, U, R any] struct {
	svc     ResourceService[U, R]
	creator Creator[C, R]
	v       *Validator
	msgs    Messages
}

// NewResourceHandler constrói o handler. creator nil deixa o recurso sem POST.
func NewResourceHandler[C, U, R any](svc ResourceService[U, R], creator Creator[C, R], v *Validator, msgs Messages) *ResourceHandler[C, U, R] {
	return &ResourceHandler[C, U, R]{svc: svc, creator: creator, v: v, msgs: msgs}
}

// Mount registra as rotas do recurso no grupo.
func (h *ResourceHandler[C, U, R]) Mount(g fiber.Router) {
	g.Get("/", h.List)
	g.Get("/:id", h.GetByID)
	if h.creator != nil {
		g.Post("/", h.Create)
	}
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}

// List responde todos os registros; coleção vazia sai como [].
func (h *ResourceHandler[C, U, R]) List(c *fiber.Ctx) error {
	out, err := h.svc.List(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

func (h *ResourceHandler[C, U, R]) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_ID", "id deve ser um número inteiro")
	}
	out, err := h.svc.GetByID(c.UserContext(), id)
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return errorJSON(c, fiber.StatusNotFound, "NOT_FOUND", h.msgs.NotFound)
	}
	return c.JSON(out)
}

// Create valida o corpo e cria o registro (201).
func (h *ResourceHandler[C, U, R]) Create(c *fiber.Ctx) error {
	var in C
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_BODY", "corpo inválido")
	}
	if campos := h.v.Struct(in); campos != nil {
		return validationJSON(c, campos)
	}
	out, err := h.creator.Create(c.UserContext(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update aplica uma atualização parcial: só os campos presentes são validados e gravados.
func (h *ResourceHandler[C, U, R]) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_ID", "id deve ser um número inteiro")
	}
	var in U
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_BODY", "corpo inválido")
	}
	if campos := h.v.Struct(in); campos != nil {
		return validationJSON(c, campos)
	}
	out, err := h.svc.Update(c.UserContext(), id, in)
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return errorJSON(c, fiber.StatusNotFound, "NOT_FOUND", h.msgs.NotFound)
	}
	return c.JSON(out)
}

func (h *ResourceHandler[C, U, R]) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_ID", "id deve ser um número inteiro")
	}
	deleted, err := h.svc.Delete(c.UserContext(), id)
	if err != nil {
		return handleError(c, err)
	}
	if !deleted {
		return errorJSON(c, fiber.StatusNotFound, "NOT_FOUND", h.msgs.NotFound)
	}
	return c.JSON(dto.MessageResponse{Msg: h.msgs.Deleted})
}
