package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sistema-bodega/bodega-api/internal/application/auth"
	"github.com/sistema-bodega/bodega-api/internal/application/movimiento"
	appprestamo "github.com/sistema-bodega/bodega-api/internal/application/prestamo"
	"github.com/sistema-bodega/bodega-api/internal/application/usecase"
	"github.com/sistema-bodega/bodega-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ArticuloUC  *usecase.ArticuloUseCase
	PersonalUC  *usecase.PersonalUseCase
	CatalogosUC map[string]*usecase.CatalogoUseCase // keyed por tabla
	RegistrarUC *movimiento.RegistrarUseCase
	ConsultaUC  *movimiento.ConsultaUseCase
	HistorialUC *appprestamo.HistorialUseCase
	PDF         appprestamo.HistorialPDFGenerator
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	escritura := RequireRol(entity.RolAdmin, entity.RolBodeguero)

	// Artículos
	articulos := protected.Group("/articulos")
	articuloHandler := NewArticuloHandler(deps.ArticuloUC)
	articulos.Post("/", escritura, articuloHandler.Create)
	articulos.Get("/", articuloHandler.List)
	articulos.Get("/:id", articuloHandler.GetByID)
	articulos.Put("/:id", escritura, articuloHandler.Update)
	articulos.Delete("/:id", RequireRol(entity.RolAdmin), articuloHandler.Delete)

	// Catálogos: cada tabla id+nombre comparte el mismo handler.
	for _, cat := range []struct {
		ruta, tabla, nombre string
	}{
		{"/categorias", entity.CatalogoCategorias, "categoría"},
		{"/marcas", entity.CatalogoMarcas, "marca"},
		{"/modelos", entity.CatalogoModelos, "modelo"},
		{"/ubicaciones", entity.CatalogoUbicaciones, "ubicación"},
		{"/estados", entity.CatalogoEstados, "estado"},
		{"/motivos", entity.CatalogoMotivos, "motivo"},
	} {
		uc, ok := deps.CatalogosUC[cat.tabla]
		if !ok {
			continue
		}
		NewCatalogoHandler(uc, cat.nombre).Registrar(protected.Group(cat.ruta))
	}

	// Personal
	personal := protected.Group("/personal")
	personalHandler := NewPersonalHandler(deps.PersonalUC)
	personal.Post("/", personalHandler.Create)
	personal.Get("/", personalHandler.List)
	personal.Get("/:id", personalHandler.GetByID)
	personal.Put("/:id", escritura, personalHandler.Update)
	personal.Delete("/:id", RequireRol(entity.RolAdmin), personalHandler.Delete)

	// Movimientos (inmutables: solo POST y consultas)
	movimientos := protected.Group("/movimientos")
	movimientoHandler := NewMovimientoHandler(deps.RegistrarUC, deps.ConsultaUC)
	movimientos.Post("/", escritura, movimientoHandler.Create)
	movimientos.Post("/lote", escritura, movimientoHandler.CreateLote)
	movimientos.Get("/", movimientoHandler.List)
	movimientos.Get("/:id", movimientoHandler.GetByID)

	// Préstamos: historial conciliado, pendientes y export
	prestamos := protected.Group("/prestamos")
	prestamoHandler := NewPrestamoHandler(deps.HistorialUC, deps.PDF)
	prestamos.Get("/historial", prestamoHandler.Historial)
	prestamos.Get("/historial/export", prestamoHandler.Export)
	prestamos.Get("/pendientes/:personalID", prestamoHandler.Pendientes)
}
