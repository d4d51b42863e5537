package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/costeo-api/internal/application/consumption"
	"github.com/jhoicas/costeo-api/internal/application/usecase"
	"github.com/jhoicas/costeo-api/internal/infrastructure/migration"
	infrapdf "github.com/jhoicas/costeo-api/internal/infrastructure/pdf"
	"github.com/jhoicas/costeo-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/costeo-api/internal/interfaces/http"
	"github.com/jhoicas/costeo-api/pkg/config"
	"github.com/jhoicas/costeo-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.DB.AutoMigrate {
		if err := migration.Up(cfg.DB.ConnectionString(), log.Zerolog()); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	repos := postgres.NewRepositories(pool)
	txRunner := postgres.NewTxRunner(pool)

	// PDF: reporte de consumo y costeo por período
	reports := infrapdf.NewMarotoConsumptionReport(cfg.Costing.ReportTitle, cfg.Costing.Location())
	consumptionUC := consumption.NewConsumptionUseCase(txRunner, reports, log.Zerolog())

	// Cambios de período → creación y conciliación de registros de consumo
	dispatcher := consumption.NewPeriodEventDispatcher(log.Zerolog())
	consumption.NewLifecycleOrchestrator(consumptionUC, log.Zerolog()).Register(dispatcher)

	workPeriodUC := usecase.NewWorkPeriodUseCase(repos.WorkPeriods, dispatcher, log.Zerolog())
	inventoryItemUC := usecase.NewInventoryItemUseCase(repos.InventoryItems, repos.Consumptions)
	recipeUC := usecase.NewRecipeUseCase(repos.Recipes, repos.InventoryItems, repos.Menu)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Costeo API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ConsumptionUC:   consumptionUC,
		InventoryItemUC: inventoryItemUC,
		RecipeUC:        recipeUC,
		WorkPeriodUC:    workPeriodUC,
		JWTSecret:       cfg.JWT.Secret,
		ServiceName:     cfg.App.Name,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
