package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/costeo-api/internal/application/dto"
)

type inventoryItemService interface {
	Names(ctx context.Context) ([]string, error)
	Groups(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, id string) error
}

// InventoryItemHandler maneja consultas y borrado de insumos (protegido).
type InventoryItemHandler struct {
	uc inventoryItemService
}

// NewInventoryItemHandler construye el handler.
func NewInventoryItemHandler(uc inventoryItemService) *InventoryItemHandler {
	return &InventoryItemHandler{uc: uc}
}

// Names godoc
// @Summary      Nombres de insumos
// @Description  Nombres distintos ordenados según el alfabeto español.
// @Tags         inventory-items
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StringListResponse
// @Router       /api/inventory-items/names [get]
func (h *InventoryItemHandler) Names(c *fiber.Ctx) error {
	names, err := h.uc.Names(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.StringListResponse{Items: names})
}

// Groups godoc
// @Summary      Códigos de grupo de insumos
// @Tags         inventory-items
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StringListResponse
// @Router       /api/inventory-items/groups [get]
func (h *InventoryItemHandler) Groups(c *fiber.Ctx) error {
	groups, err := h.uc.Groups(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.StringListResponse{Items: groups})
}

// Delete godoc
// @Summary      Eliminar insumo
// @Tags         inventory-items
// @Security     Bearer
// @Param        id   path  string  true  "ID del insumo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventory-items/{id} [delete]
func (h *InventoryItemHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
