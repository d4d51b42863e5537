package http

import (
	"github.com/gofiber/fiber/v2"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ConsumptionUC   consumptionService
	InventoryItemUC inventoryItemService
	RecipeUC        recipeService
	WorkPeriodUC    workPeriodService
	JWTSecret       string
	ServiceName     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	})

	// Todo /api requiere Bearer Token
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))
	managers := RequireRole(RoleAdmin, RoleManager)
	anyRole := RequireRole(RoleAdmin, RoleManager, RoleKitchen)

	consumption := api.Group("/consumption")
	consumptionHandler := NewConsumptionHandler(deps.ConsumptionUC)
	consumption.Get("/current", anyRole, consumptionHandler.Current)
	consumption.Get("/previous", anyRole, consumptionHandler.Previous)
	consumption.Post("/previous/recalculate", managers, consumptionHandler.RecalculatePrevious)
	consumption.Put("/:workPeriodId/items/:inventoryItemId/physical", anyRole, consumptionHandler.UpdatePhysicalInventory)
	consumption.Get("/:workPeriodId/report.pdf", anyRole, consumptionHandler.Report)

	items := api.Group("/inventory-items")
	itemHandler := NewInventoryItemHandler(deps.InventoryItemUC)
	items.Get("/names", anyRole, itemHandler.Names)
	items.Get("/groups", anyRole, itemHandler.Groups)
	items.Delete("/:id", managers, itemHandler.Delete)

	recipes := api.Group("/recipes")
	recipeHandler := NewRecipeHandler(deps.RecipeUC)
	recipes.Post("/", managers, recipeHandler.Save)

	periods := api.Group("/work-periods")
	periodHandler := NewWorkPeriodHandler(deps.WorkPeriodUC)
	periods.Get("/current", anyRole, periodHandler.Current)
	periods.Post("/start", managers, periodHandler.Start)
	periods.Post("/end", managers, periodHandler.End)
}
