package repository

import (
	"github.com/jhoicas/stocklist-api/internal/domain/entity"
)

// InventoryLogRepository define el puerto de persistencia del historial de
// stock. Solo inserción y lectura: las entradas nunca se actualizan ni borran.
type InventoryLogRepository interface {
	Create(log *entity.InventoryLog) error
	ListByProduct(productID int64) ([]*entity.InventoryLog, error)
}
