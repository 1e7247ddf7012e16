package csvio_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stocklist-api/internal/application/csvio"
	"github.com/jhoicas/stocklist-api/internal/domain/entity"
	"github.com/jhoicas/stocklist-api/internal/domain/repository"
)

// stubListRepo devuelve una lista fija en orden conocido.
type stubListRepo struct {
	mockProductRepo
	list []*entity.Product
}

func (s *stubListRepo) List(filter repository.ProductFilter) ([]*entity.Product, error) {
	return s.list, nil
}

func TestExport_FormatoYComillas(t *testing.T) {
	repo := &stubListRepo{list: []*entity.Product{
		{ID: 2, Name: `Tubo 1/2" acero`, Unit: "pc", Category: "Plomería", Brand: "Acme", Stock: 0, Status: "active", ImageURL: "https://example.com/t.png"},
		{ID: 1, Name: "Widget", Unit: "", Category: "Tools", Brand: "", Stock: 15, Status: "", ImageURL: ""},
	}}
	exporter := csvio.NewExporter(repo)

	out, err := exporter.Export()
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)

	// Cabecera fija, sin image_url ni created_at
	assert.Equal(t, "id,name,unit,category,brand,stock,status", lines[0])

	// Comillas internas dobladas, todos los campos entre comillas,
	// stock cero como "0" (decisión documentada, no "")
	assert.Equal(t, `"2","Tubo 1/2"" acero","pc","Plomería","Acme","0","active"`, lines[1])

	// Campos de texto vacíos como ""
	assert.Equal(t, `"1","Widget","","Tools","","15",""`, lines[2])

	assert.NotContains(t, out, "example.com", "image_url no se exporta")
}

// Tabla vacía: solo la cabecera.
func TestExport_SinProductos(t *testing.T) {
	exporter := csvio.NewExporter(&stubListRepo{})

	out, err := exporter.Export()
	require.NoError(t, err)
	assert.Equal(t, "id,name,unit,category,brand,stock,status", out)
}

// El export re-importado conserva name, category, brand y status. stock cero
// también sobrevive porque se exporta como "0".
func TestExport_RoundTripConImport(t *testing.T) {
	source := &stubListRepo{list: []*entity.Product{
		{ID: 1, Name: "Widget", Category: "Tools", Brand: "Acme", Stock: 0, Status: "active"},
	}}
	out, err := csvio.NewExporter(source).Export()
	require.NoError(t, err)

	dest := newMockProductRepo()
	summary, err := csvio.NewImporter(dest, testLogger(), 2).Import(context.Background(), strings.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, 1, summary.Added)

	p, err := dest.GetByName("Widget")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Tools", p.Category)
	assert.Equal(t, "Acme", p.Brand)
	assert.Equal(t, "active", p.Status)
	assert.Equal(t, 0, p.Stock)
	assert.Empty(t, p.ImageURL, "image_url nunca viaja por el export")
}
