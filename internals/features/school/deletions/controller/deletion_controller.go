// internals/features/school/deletions/controller/deletion_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"schoolku_backend/internals/features/school/deletions/registry"
	"schoolku_backend/internals/features/school/deletions/repository"
	"schoolku_backend/internals/features/school/deletions/service"
	helper "schoolku_backend/internals/helpers"
)

type DeletionController struct {
	Engine    *service.Engine
	Validator *validator.Validate
}

func NewDeletionController(engine *service.Engine) *DeletionController {
	return &DeletionController{
		Engine:    engine,
		Validator: validator.New(),
	}
}

type idParam struct {
	ID int64 `validate:"required,gt=0"`
}

func (ctl *DeletionController) parseID(c *fiber.Ctx) (int64, error) {
	raw := strings.TrimSpace(c.Params("id"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}
	if err := ctl.Validator.Struct(idParam{ID: id}); err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "O ID deve ser maior que 0")
	}
	return id, nil
}

// Delete → DELETE /api/a/<entity>/:id
func (ctl *DeletionController) Delete(entity registry.EntityType) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := ctl.parseID(c)
		if err != nil {
			return helper.FromFiberError(c, err)
		}

		rep, err := ctl.Engine.DeleteEntity(c.UserContext(), entity, id)
		if err != nil {
			return ctl.writeError(c, entity, id, err)
		}
		return helper.JsonDeletion(c, rep.Message, string(rep.Kind), rep.Details)
	}
}

// Preview → GET /api/a/<entity>/:id/delete-preview (tanpa mengubah data)
func (ctl *DeletionController) Preview(entity registry.EntityType) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := ctl.parseID(c)
		if err != nil {
			return helper.FromFiberError(c, err)
		}

		prev, err := ctl.Engine.PreviewEntity(c.UserContext(), entity, id)
		if err != nil {
			return ctl.writeError(c, entity, id, err)
		}
		return helper.JsonOK(c, prev.Message, prev)
	}
}

func (ctl *DeletionController) writeError(c *fiber.Ctx, entity registry.EntityType, id int64, err error) error {
	var (
		nf  *service.NotFoundError
		dc  *service.DependencyConflictError
		te  *service.TransactionError
		cfg *registry.ConfigurationError
	)

	switch {
	case errors.As(err, &nf):
		return helper.JsonErrorWithCode(c, fiber.StatusNotFound, "", fmt.Sprintf("%s %d não encontrado(a)", ctl.displayName(entity), id), nil)

	case errors.As(err, &dc):
		msg := fmt.Sprintf("%s não pode ser eliminado(a): existem registos dependentes", ctl.displayName(entity))
		return helper.JsonErrorWithCode(c, fiber.StatusBadRequest, "DEPENDENCY_CONFLICT", msg, dc.Conflicts)

	case errors.As(err, &te):
		if te.Reason == repository.ReasonBudget {
			return helper.JsonErrorWithCode(c, fiber.StatusServiceUnavailable, "EXECUTION_BUDGET_EXCEEDED", te.Error(), nil)
		}
		return helper.JsonErrorWithCode(c, fiber.StatusInternalServerError, "TRANSACTION_ERROR", te.Error(), nil)

	case errors.As(err, &cfg):
		log.Printf("[CASCADE][CONFIG] %s: %v", c.OriginalURL(), cfg)
		return helper.JsonErrorWithCode(c, fiber.StatusInternalServerError, "CONFIGURATION_ERROR", "Configuração de eliminação inválida", nil)

	default:
		log.Printf("[CASCADE][ERROR] %s: %v", c.OriginalURL(), err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao eliminar o registo")
	}
}

func (ctl *DeletionController) displayName(entity registry.EntityType) string {
	if d, err := ctl.Engine.Registry().Describe(entity); err == nil {
		return d.DisplayName
	}
	return string(entity)
}
