package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/costeo-api/internal/application/dto"
	"github.com/jhoicas/costeo-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// consumptionService contrato que el handler necesita de consumption.ConsumptionUseCase.
type consumptionService interface {
	GetOrCreateCurrent(ctx context.Context) (*entity.PeriodicConsumption, error)
	GetPrevious(ctx context.Context) (*entity.PeriodicConsumption, error)
	RecalculatePrevious(ctx context.Context) (*entity.PeriodicConsumption, error)
	UpdatePhysicalInventory(ctx context.Context, workPeriodID, inventoryItemID string, qty *decimal.Decimal) (*entity.PeriodicConsumption, error)
	RenderReport(ctx context.Context, workPeriodID string) ([]byte, string, error)
}

// ConsumptionHandler expone el consumo y costeo por período (protegido).
type ConsumptionHandler struct {
	uc consumptionService
}

// NewConsumptionHandler construye el handler.
func NewConsumptionHandler(uc consumptionService) *ConsumptionHandler {
	return &ConsumptionHandler{uc: uc}
}

// Current godoc
// @Summary      Consumo del período actual
// @Description  Devuelve el registro del período actual; lo crea si aún no existe.
// @Tags         consumption
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PeriodicConsumptionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/consumption/current [get]
func (h *ConsumptionHandler) Current(c *fiber.Ctx) error {
	pc, err := h.uc.GetOrCreateCurrent(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewPeriodicConsumptionResponse(pc))
}

// Previous godoc
// @Summary      Consumo del período anterior
// @Tags         consumption
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PeriodicConsumptionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/consumption/previous [get]
func (h *ConsumptionHandler) Previous(c *fiber.Ctx) error {
	pc, err := h.uc.GetPrevious(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	if pc == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no hay registro del período anterior"})
	}
	return c.JSON(dto.NewPeriodicConsumptionResponse(pc))
}

// RecalculatePrevious godoc
// @Summary      Conciliar el período anterior
// @Description  Recalcula el costo real del período anterior con los conteos físicos registrados.
// @Tags         consumption
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PeriodicConsumptionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/consumption/previous/recalculate [post]
func (h *ConsumptionHandler) RecalculatePrevious(c *fiber.Ctx) error {
	pc, err := h.uc.RecalculatePrevious(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	if pc == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no hay registro del período anterior"})
	}
	return c.JSON(dto.NewPeriodicConsumptionResponse(pc))
}

// UpdatePhysicalInventory godoc
// @Summary      Registrar conteo físico
// @Tags         consumption
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        workPeriodId     path  string  true  "ID del período de trabajo"
// @Param        inventoryItemId  path  string  true  "ID del insumo"
// @Param        body             body  dto.UpdatePhysicalInventoryRequest  true  "Conteo físico (null lo borra)"
// @Success      200  {object}  dto.PeriodicConsumptionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/consumption/{workPeriodId}/items/{inventoryItemId}/physical [put]
func (h *ConsumptionHandler) UpdatePhysicalInventory(c *fiber.Ctx) error {
	var in dto.UpdatePhysicalInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	pc, err := h.uc.UpdatePhysicalInventory(c.UserContext(), c.Params("workPeriodId"), c.Params("inventoryItemId"), in.PhysicalInventory)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewPeriodicConsumptionResponse(pc))
}

// Report godoc
// @Summary      Reporte PDF de consumo
// @Tags         consumption
// @Security     Bearer
// @Produce      application/pdf
// @Param        workPeriodId  path  string  true  "ID del período de trabajo"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/consumption/{workPeriodId}/report.pdf [get]
func (h *ConsumptionHandler) Report(c *fiber.Ctx) error {
	doc, filename, err := h.uc.RenderReport(c.UserContext(), c.Params("workPeriodId"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(doc)
}
