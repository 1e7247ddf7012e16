package csvio_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stocklist-api/internal/application/csvio"
	"github.com/jhoicas/stocklist-api/internal/domain"
	"github.com/jhoicas/stocklist-api/internal/domain/entity"
	"github.com/jhoicas/stocklist-api/internal/domain/repository"
	"github.com/jhoicas/stocklist-api/pkg/logger"
)

// mockProductRepo repositorio en memoria, seguro para los workers concurrentes
// del import. failOn fuerza el fallo del insert de un nombre concreto.
type mockProductRepo struct {
	mu     sync.Mutex
	nextID int64
	byName map[string]*entity.Product
	failOn map[string]bool
}

func newMockProductRepo(existing ...string) *mockProductRepo {
	m := &mockProductRepo{nextID: 1, byName: make(map[string]*entity.Product), failOn: make(map[string]bool)}
	for _, name := range existing {
		m.byName[name] = &entity.Product{ID: m.nextID, Name: name}
		m.nextID++
	}
	return m
}

func (m *mockProductRepo) Create(p *entity.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failOn[p.Name] {
		return errors.New("insert forzado a fallar")
	}
	if _, exists := m.byName[p.Name]; exists {
		return domain.ErrDuplicateName
	}
	p.ID = m.nextID
	m.nextID++
	clone := *p
	m.byName[p.Name] = &clone
	return nil
}

func (m *mockProductRepo) GetByID(id int64) (*entity.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.byName {
		if p.ID == id {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

func (m *mockProductRepo) GetByName(name string) (*entity.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.byName[name]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (m *mockProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var list []*entity.Product
	for _, p := range m.byName {
		clone := *p
		list = append(list, &clone)
	}
	return list, nil
}

func (m *mockProductRepo) Update(p *entity.Product) error { return nil }
func (m *mockProductRepo) Delete(id int64) error          { return nil }

func (m *mockProductRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.byName)
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

// N filas con M nombres ya existentes: added = N-M, skipped = M y no quedan
// nombres duplicados.
func TestImport_AgregadosYSaltados(t *testing.T) {
	repo := newMockProductRepo("Widget", "Gadget")
	importer := csvio.NewImporter(repo, testLogger(), 4)

	csv := "Name,Unit,Category,Brand,Stock,Status,Image\n" +
		"Widget,pc,Tools,Acme,5,active,\n" +
		"Gadget,pc,Tools,Acme,3,active,\n" +
		"Sprocket,pc,Tools,Acme,7,active,\n" +
		"Gear,box,Parts,Bolt,2,paused,https://example.com/g.png\n"

	summary, err := importer.Import(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Added)
	assert.Equal(t, 2, summary.Skipped)
	assert.Equal(t, 0, summary.Failed)
	assert.Equal(t, 4, repo.count())

	gear, err := repo.GetByName("Gear")
	require.NoError(t, err)
	require.NotNil(t, gear)
	assert.Equal(t, 2, gear.Stock)
	assert.Equal(t, "Parts", gear.Category)
	assert.Equal(t, "https://example.com/g.png", gear.ImageURL)
}

// Las cabeceras se aceptan en cualquier combinación de mayúsculas.
func TestImport_CabecerasCaseInsensitive(t *testing.T) {
	repo := newMockProductRepo()
	importer := csvio.NewImporter(repo, testLogger(), 2)

	csv := "name,UNIT,Category,bRand,STOCK,status,image\n" +
		"Widget,pc,Tools,Acme,5,active,\n"

	summary, err := importer.Import(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Added)

	p, err := repo.GetByName("Widget")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "pc", p.Unit)
	assert.Equal(t, "Acme", p.Brand)
	assert.Equal(t, 5, p.Stock)
}

// Una fila sin columna de nombre se inserta igual, con nombre vacío (sin validación).
func TestImport_SinColumnaNombre(t *testing.T) {
	repo := newMockProductRepo()
	importer := csvio.NewImporter(repo, testLogger(), 2)

	csv := "Unit,Category,Stock\npc,Tools,5\n"

	summary, err := importer.Import(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Added)

	p, err := repo.GetByName("")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Tools", p.Category)
}

// Stock no numérico o ausente vale 0.
func TestImport_StockInvalido(t *testing.T) {
	repo := newMockProductRepo()
	importer := csvio.NewImporter(repo, testLogger(), 2)

	csv := "Name,Stock\nWidget,muchos\nGadget,\n"

	summary, err := importer.Import(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Added)

	w, _ := repo.GetByName("Widget")
	require.NotNil(t, w)
	assert.Equal(t, 0, w.Stock)
}

// Un insert fallido cuenta como failed sin frenar las demás filas, y los
// contadores siguen sumando el total.
func TestImport_FallaDeFilaNoFrenaElResto(t *testing.T) {
	repo := newMockProductRepo("Widget")
	repo.failOn["Sprocket"] = true
	importer := csvio.NewImporter(repo, testLogger(), 4)

	csv := "Name,Stock\nWidget,1\nSprocket,2\nGear,3\n"

	summary, err := importer.Import(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Added)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 3, summary.Added+summary.Skipped+summary.Failed)

	gear, _ := repo.GetByName("Gear")
	assert.NotNil(t, gear)
}

// Dos filas del mismo lote con el mismo nombre nuevo: una agrega y la otra
// queda en skipped (por el chequeo o por el constraint único), nunca dos filas.
func TestImport_DuplicadoDentroDelLote(t *testing.T) {
	repo := newMockProductRepo()
	importer := csvio.NewImporter(repo, testLogger(), 4)

	csv := "Name,Stock\nWidget,1\nWidget,2\n"

	summary, err := importer.Import(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Added)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 0, summary.Failed)
	assert.Equal(t, 1, repo.count())
}

// CSV vacío o solo cabecera: resumen en cero, sin error.
func TestImport_Vacio(t *testing.T) {
	repo := newMockProductRepo()
	importer := csvio.NewImporter(repo, testLogger(), 2)

	summary, err := importer.Import(context.Background(), strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, csvio.Summary{}, summary)

	summary, err = importer.Import(context.Background(), strings.NewReader("Name,Stock\n"))
	require.NoError(t, err)
	assert.Equal(t, csvio.Summary{}, summary)
}

// Lote grande con pool acotado: todas las filas terminan contadas.
func TestImport_LoteGrande(t *testing.T) {
	repo := newMockProductRepo()
	importer := csvio.NewImporter(repo, testLogger(), 4)

	var b strings.Builder
	b.WriteString("Name,Stock\n")
	for i := 0; i < 200; i++ {
		b.WriteString(fmt.Sprintf("Producto-%d,1\n", i))
	}

	summary, err := importer.Import(context.Background(), strings.NewReader(b.String()))
	require.NoError(t, err)
	assert.Equal(t, 200, summary.Added)
	assert.Zero(t, summary.Skipped)
	assert.Zero(t, summary.Failed)
	assert.Equal(t, 200, repo.count())
}
