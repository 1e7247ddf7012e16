package http

import (
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/stocklist-api/internal/application/csvio"
	"github.com/jhoicas/stocklist-api/internal/application/dto"
	"github.com/jhoicas/stocklist-api/internal/domain"
	"github.com/jhoicas/stocklist-api/pkg/logger"
)

// CSVHandler maneja el import y export CSV del inventario.
type CSVHandler struct {
	importer  *csvio.Importer
	exporter  *csvio.Exporter
	uploadDir string
	log       *logger.Logger
}

// NewCSVHandler construye el handler.
func NewCSVHandler(importer *csvio.Importer, exporter *csvio.Exporter, uploadDir string, log *logger.Logger) *CSVHandler {
	return &CSVHandler{importer: importer, exporter: exporter, uploadDir: uploadDir, log: log}
}

// Import recibe el multipart con campo csvFile, lo guarda como artefacto
// transitorio bajo un nombre uuid, lo procesa y lo borra al terminar,
// independientemente del resultado por fila.
func (h *CSVHandler) Import(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("csvFile")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: domain.ErrMissingFile.Error()})
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	path := filepath.Join(h.uploadDir, uuid.New().String()+".csv")
	if err := c.SaveFile(fileHeader, path); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	defer func() {
		if err := os.Remove(path); err != nil {
			h.log.Warn().Err(err).Str("path", path).Msg("import: no se pudo borrar el archivo subido")
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	defer f.Close()

	summary, err := h.importer.Import(c.UserContext(), f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if summary.Failed > 0 {
		h.log.Warn().Int("failed", summary.Failed).Msg("import: filas con error absorbidas")
	}
	return c.JSON(dto.ImportResponse{
		Message: "Import procesado",
		Added:   summary.Added,
		Skipped: summary.Skipped,
	})
}

// Export responde la tabla completa de productos como adjunto text/csv.
func (h *CSVHandler) Export(c *fiber.Ctx) error {
	body, err := h.exporter.Export()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventory_export.csv"`)
	return c.SendString(body)
}
