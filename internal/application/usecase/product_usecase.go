package usecase

import (
	"context"

	"github.com/jhoicas/stocklist-api/internal/application/dto"
	"github.com/jhoicas/stocklist-api/internal/domain"
	"github.com/jhoicas/stocklist-api/internal/domain/entity"
	"github.com/jhoicas/stocklist-api/internal/domain/repository"
)

// TxRunner ejecuta fn con repositorios atados a una misma transacción.
// La implementación vive en infraestructura (postgres.TxRunner).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		logRepo repository.InventoryLogRepository,
	) error) error
}

// ProductUseCase casos de uso CRUD para productos con auditoría de stock.
// Cada mutación que cambia stock escribe su entrada de historial en la misma
// transacción que la mutación: o quedan ambas o ninguna.
type ProductUseCase struct {
	repo    repository.ProductRepository
	logRepo repository.InventoryLogRepository
	tx      TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, logRepo repository.InventoryLogRepository, tx TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, logRepo: logRepo, tx: tx}
}

// Create inserta un producto y su entrada CREATE del historial (0 → stock
// inicial) en una transacción. Sin imagen se aplica el placeholder fijo.
// Nombre duplicado → domain.ErrDuplicateName, sin efectos secundarios.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (int64, error) {
	product := &entity.Product{
		Name:     in.Name,
		Unit:     in.Unit,
		Category: in.Category,
		Brand:    in.Brand,
		Stock:    in.Stock,
		Status:   in.Status,
		ImageURL: in.ImageURL,
	}
	if product.ImageURL == "" {
		product.ImageURL = entity.PlaceholderImageURL
	}
	err := uc.tx.Run(ctx, func(products repository.ProductRepository, logs repository.InventoryLogRepository) error {
		if err := products.Create(product); err != nil {
			return err
		}
		return logs.Create(&entity.InventoryLog{
			ProductID:  product.ID,
			ActionType: entity.ActionTypeCreate,
			OldStock:   0,
			NewStock:   product.Stock,
			ChangedBy:  entity.DefaultChangedBy,
		})
	})
	if err != nil {
		return 0, err
	}
	return product.ID, nil
}

// Update sobrescribe name, category, brand, stock y status (reemplazo
// completo). Si el stock cambió, agrega la entrada UPDATE del historial en la
// misma transacción. Producto inexistente → domain.ErrNotFound.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) error {
	return uc.tx.Run(ctx, func(products repository.ProductRepository, logs repository.InventoryLogRepository) error {
		existing, err := products.GetByID(id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		oldStock := existing.Stock

		existing.Name = in.Name
		existing.Category = in.Category
		existing.Brand = in.Brand
		existing.Stock = in.Stock
		existing.Status = in.Status
		if err := products.Update(existing); err != nil {
			return err
		}
		if oldStock == in.Stock {
			return nil
		}
		return logs.Create(&entity.InventoryLog{
			ProductID:  id,
			ActionType: entity.ActionTypeUpdate,
			OldStock:   oldStock,
			NewStock:   in.Stock,
			ChangedBy:  entity.DefaultChangedBy,
		})
	})
}

// Delete elimina el producto sin chequeo de existencia ni entrada de
// historial. Las entradas previas del producto se conservan.
func (uc *ProductUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

// List devuelve los productos filtrados (nombre por subcadena
// case-insensitive, categoría exacta; ambos combinables), más reciente primero.
func (uc *ProductUseCase) List(name, category string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(repository.ProductFilter{Name: name, Category: category})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toProductResponse(p))
	}
	return items, nil
}

// History devuelve el historial de stock de un producto, más reciente
// primero. Lista vacía si no hay entradas o el producto no existe.
func (uc *ProductUseCase) History(productID int64) ([]dto.InventoryLogResponse, error) {
	list, err := uc.logRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryLogResponse, 0, len(list))
	for _, l := range list {
		items = append(items, dto.InventoryLogResponse{
			ID:         l.ID,
			ProductID:  l.ProductID,
			ActionType: l.ActionType,
			OldStock:   l.OldStock,
			NewStock:   l.NewStock,
			ChangedBy:  l.ChangedBy,
			ChangeDate: l.ChangeDate,
		})
	}
	return items, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Unit:      p.Unit,
		Category:  p.Category,
		Brand:     p.Brand,
		Stock:     p.Stock,
		Status:    p.Status,
		ImageURL:  p.ImageURL,
		CreatedAt: p.CreatedAt,
	}
}
