package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/sistema-bodega/bodega-api/internal/application/auth"
	"github.com/sistema-bodega/bodega-api/internal/application/movimiento"
	appprestamo "github.com/sistema-bodega/bodega-api/internal/application/prestamo"
	"github.com/sistema-bodega/bodega-api/internal/application/usecase"
	"github.com/sistema-bodega/bodega-api/internal/domain/entity"
	infrapdf "github.com/sistema-bodega/bodega-api/internal/infrastructure/pdf"
	"github.com/sistema-bodega/bodega-api/internal/infrastructure/postgres"
	httpRouter "github.com/sistema-bodega/bodega-api/internal/interfaces/http"
	"github.com/sistema-bodega/bodega-api/pkg/config"
	"github.com/sistema-bodega/bodega-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	articuloRepo := postgres.NewArticuloRepository(pool)
	personalRepo := postgres.NewPersonalRepository(pool)
	movimientoRepo := postgres.NewMovimientoRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Un repositorio y un usecase por tabla de catálogo.
	catalogoRepos := map[string]*postgres.CatalogoRepo{}
	catalogosUC := map[string]*usecase.CatalogoUseCase{}
	for _, tabla := range []string{
		entity.CatalogoCategorias, entity.CatalogoMarcas, entity.CatalogoModelos,
		entity.CatalogoUbicaciones, entity.CatalogoEstados, entity.CatalogoMotivos,
	} {
		repo := postgres.NewCatalogoRepository(pool, tabla)
		catalogoRepos[tabla] = repo
		catalogosUC[tabla] = usecase.NewCatalogoUseCase(repo)
	}

	articuloUC := usecase.NewArticuloUseCase(articuloRepo)
	personalUC := usecase.NewPersonalUseCase(personalRepo)
	registrarUC := movimiento.NewRegistrarUseCase(txRunner, catalogoRepos[entity.CatalogoMotivos])
	consultaUC := movimiento.NewConsultaUseCase(movimientoRepo)
	historialUC := appprestamo.NewHistorialUseCase(
		movimientoRepo, articuloRepo, personalRepo,
		catalogoRepos[entity.CatalogoMarcas], catalogoRepos[entity.CatalogoModelos],
	)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Sistema Bodega API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ArticuloUC:  articuloUC,
		PersonalUC:  personalUC,
		CatalogosUC: catalogosUC,
		RegistrarUC: registrarUC,
		ConsultaUC:  consultaUC,
		HistorialUC: historialUC,
		PDF:         pdfGenerator,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
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
