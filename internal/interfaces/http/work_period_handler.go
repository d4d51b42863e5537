package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/costeo-api/internal/application/dto"
)

type workPeriodService interface {
	Current(ctx context.Context) (*dto.WorkPeriodResponse, error)
	Start(ctx context.Context, description string) (*dto.WorkPeriodResponse, error)
	End(ctx context.Context, description string) (*dto.WorkPeriodResponse, error)
}

// WorkPeriodHandler abre y cierra períodos de trabajo (protegido).
type WorkPeriodHandler struct {
	uc workPeriodService
}

// NewWorkPeriodHandler construye el handler.
func NewWorkPeriodHandler(uc workPeriodService) *WorkPeriodHandler {
	return &WorkPeriodHandler{uc: uc}
}

// Current godoc
// @Summary      Período de trabajo actual
// @Tags         work-periods
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.WorkPeriodResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/work-periods/current [get]
func (h *WorkPeriodHandler) Current(c *fiber.Ctx) error {
	out, err := h.uc.Current(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Start godoc
// @Summary      Iniciar período de trabajo
// @Tags         work-periods
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WorkPeriodRequest  false  "Descripción"
// @Success      201   {object}  dto.WorkPeriodResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/work-periods/start [post]
func (h *WorkPeriodHandler) Start(c *fiber.Ctx) error {
	in, err := parseWorkPeriodRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Start(c.UserContext(), in.Description)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// End godoc
// @Summary      Cerrar período de trabajo
// @Tags         work-periods
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WorkPeriodRequest  false  "Descripción"
// @Success      200   {object}  dto.WorkPeriodResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/work-periods/end [post]
func (h *WorkPeriodHandler) End(c *fiber.Ctx) error {
	in, err := parseWorkPeriodRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.End(c.UserContext(), in.Description)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// parseWorkPeriodRequest acepta cuerpo vacío.
func parseWorkPeriodRequest(c *fiber.Ctx) (dto.WorkPeriodRequest, error) {
	var in dto.WorkPeriodRequest
	if len(c.Body()) == 0 {
		return in, nil
	}
	err := c.BodyParser(&in)
	return in, err
}
