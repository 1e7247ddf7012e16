package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stocklist-api/internal/application/csvio"
	"github.com/jhoicas/stocklist-api/internal/application/usecase"
	"github.com/jhoicas/stocklist-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC *usecase.ProductUseCase
	Importer  *csvio.Importer
	Exporter  *csvio.Exporter
	UploadDir string
	Log       *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	csvHandler := NewCSVHandler(deps.Importer, deps.Exporter, deps.UploadDir, deps.Log)

	// Las rutas fijas van antes que las paramétricas para que Fiber no
	// capture "import"/"export" como :id.
	products.Get("/export", csvHandler.Export)
	products.Post("/import", csvHandler.Import)

	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Get("/:id/history", productHandler.History)
}
