// Package csvio implementa la ingesta y serialización CSV del inventario.
package csvio

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/jhoicas/stocklist-api/internal/domain"
	"github.com/jhoicas/stocklist-api/internal/domain/entity"
	"github.com/jhoicas/stocklist-api/internal/domain/repository"
	"github.com/jhoicas/stocklist-api/pkg/logger"
)

// DefaultWorkers tamaño por defecto del pool de workers del import.
const DefaultWorkers = 4

// Summary resultado agregado de un import. Added+Skipped+Failed == filas totales.
type Summary struct {
	Added   int
	Skipped int
	Failed  int
}

// importRow una fila ya mapeada del CSV.
type importRow struct {
	name     string
	unit     string
	category string
	brand    string
	stock    int
	status   string
	image    string
}

// Importer procesa un CSV de productos: filas con nombre ya existente se
// saltan, las nuevas se insertan. Las cabeceras se resuelven sin distinguir
// mayúsculas (Name/name, Stock/stock, etc.). Los inserts del import no
// escriben historial, a diferencia del alta individual.
type Importer struct {
	repo    repository.ProductRepository
	log     *logger.Logger
	workers int
}

// NewImporter construye el importador. workers <= 0 aplica DefaultWorkers.
func NewImporter(repo repository.ProductRepository, log *logger.Logger, workers int) *Importer {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Importer{repo: repo, log: log, workers: workers}
}

// Import parsea el CSV y procesa las filas con un pool acotado de workers.
// Cada fila termina etiquetada como added, skipped o failed; los fallos se
// registran a nivel warn y los contadores siempre suman el total de filas.
// Una fila sin columna de nombre se inserta igual, con nombre vacío.
func (i *Importer) Import(ctx context.Context, r io.Reader) (Summary, error) {
	rows, err := parseRows(r)
	if err != nil {
		return Summary{}, err
	}

	var added, skipped, failed atomic.Int64
	jobs := make(chan importRow)
	var wg sync.WaitGroup

	for w := 0; w < i.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for row := range jobs {
				switch i.processRow(row) {
				case outcomeAdded:
					added.Add(1)
				case outcomeSkipped:
					skipped.Add(1)
				default:
					failed.Add(1)
				}
			}
		}()
	}

dispatch:
	for idx, row := range rows {
		select {
		case jobs <- row:
		case <-ctx.Done():
			// Las filas sin despachar cuentan como failed para que los
			// contadores sigan sumando el total.
			failed.Add(int64(len(rows) - idx))
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()

	return Summary{
		Added:   int(added.Load()),
		Skipped: int(skipped.Load()),
		Failed:  int(failed.Load()),
	}, nil
}

type rowOutcome int

const (
	outcomeAdded rowOutcome = iota
	outcomeSkipped
	outcomeFailed
)

// processRow chequea existencia por nombre exacto e inserta si no existe.
// Dos filas del mismo lote con el mismo nombre nuevo pueden competir: la que
// pierda contra el constraint único cuenta como skipped, no como error.
func (i *Importer) processRow(row importRow) rowOutcome {
	existing, err := i.repo.GetByName(row.name)
	if err != nil {
		i.log.Warn().Err(err).Str("name", row.name).Msg("import: fallo consultando producto")
		return outcomeFailed
	}
	if existing != nil {
		return outcomeSkipped
	}
	product := &entity.Product{
		Name:     row.name,
		Unit:     row.unit,
		Category: row.category,
		Brand:    row.brand,
		Stock:    row.stock,
		Status:   row.status,
		ImageURL: row.image,
	}
	if err := i.repo.Create(product); err != nil {
		if errors.Is(err, domain.ErrDuplicateName) {
			return outcomeSkipped
		}
		i.log.Warn().Err(err).Str("name", row.name).Msg("import: fallo insertando producto")
		return outcomeFailed
	}
	return outcomeAdded
}

// parseRows lee el CSV completo y mapea cada registro según la cabecera.
func parseRows(r io.Reader) ([]importRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	cols := headerIndex(records[0])
	rows := make([]importRow, 0, len(records)-1)
	for _, record := range records[1:] {
		rows = append(rows, importRow{
			name:     fieldAt(record, cols, "name"),
			unit:     fieldAt(record, cols, "unit"),
			category: fieldAt(record, cols, "category"),
			brand:    fieldAt(record, cols, "brand"),
			stock:    parseStock(fieldAt(record, cols, "stock")),
			status:   fieldAt(record, cols, "status"),
			image:    fieldAt(record, cols, "image"),
		})
	}
	return rows, nil
}

// headerIndex mapea nombre de columna (en minúsculas) → posición.
func headerIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for idx, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, exists := cols[key]; !exists {
			cols[key] = idx
		}
	}
	return cols
}

func fieldAt(record []string, cols map[string]int, key string) string {
	idx, ok := cols[key]
	if !ok || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// parseStock convierte el stock a entero; valor ausente o no numérico vale 0.
func parseStock(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
