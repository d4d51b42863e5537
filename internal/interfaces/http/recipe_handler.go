package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/costeo-api/internal/application/dto"
)

type recipeService interface {
	Save(ctx context.Context, in dto.SaveRecipeRequest) (*dto.RecipeResponse, error)
}

// RecipeHandler maneja el guardado de recetas (protegido).
type RecipeHandler struct {
	uc recipeService
}

// NewRecipeHandler construye el handler.
func NewRecipeHandler(uc recipeService) *RecipeHandler {
	return &RecipeHandler{uc: uc}
}

// Save godoc
// @Summary      Crear o reemplazar receta
// @Tags         recipes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveRecipeRequest  true  "Receta"
// @Success      200   {object}  dto.RecipeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/recipes [post]
func (h *RecipeHandler) Save(c *fiber.Ctx) error {
	var in dto.SaveRecipeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Save(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
