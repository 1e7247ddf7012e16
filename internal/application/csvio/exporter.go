package csvio

import (
	"strconv"
	"strings"

	"github.com/jhoicas/stocklist-api/internal/domain/entity"
	"github.com/jhoicas/stocklist-api/internal/domain/repository"
)

// exportHeaders columnas exportadas, en orden. image_url y created_at quedan
// fuera deliberadamente: el export es para planillas, no un backup completo.
var exportHeaders = []string{"id", "name", "unit", "category", "brand", "stock", "status"}

// Exporter serializa la tabla completa de productos a CSV.
type Exporter struct {
	repo repository.ProductRepository
}

// NewExporter construye el exportador.
func NewExporter(repo repository.ProductRepository) *Exporter {
	return &Exporter{repo: repo}
}

// Export devuelve el CSV: una fila de cabecera y una por producto, sin
// filtros. Todos los valores van entre comillas y las comillas internas se
// doblan. El stock se exporta siempre como número: cero sale "0", nunca ""
// (los campos de texto vacíos sí salen "").
// encoding/csv no permite forzar comillas en todos los campos, por eso el
// documento se arma a mano.
func (e *Exporter) Export() (string, error) {
	products, err := e.repo.List(repository.ProductFilter{})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(strings.Join(exportHeaders, ","))
	for _, p := range products {
		b.WriteByte('\n')
		b.WriteString(productLine(p))
	}
	return b.String(), nil
}

func productLine(p *entity.Product) string {
	fields := []string{
		quote(strconv.FormatInt(p.ID, 10)),
		quote(p.Name),
		quote(p.Unit),
		quote(p.Category),
		quote(p.Brand),
		quote(strconv.Itoa(p.Stock)),
		quote(p.Status),
	}
	return strings.Join(fields, ",")
}

// quote envuelve el valor en comillas dobles, doblando las internas.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
