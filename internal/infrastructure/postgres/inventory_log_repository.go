package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stocklist-api/internal/domain/entity"
	"github.com/jhoicas/stocklist-api/internal/domain/repository"
)

var _ repository.InventoryLogRepository = (*InventoryLogRepo)(nil)

// InventoryLogRepo implementación sobre PostgreSQL (usable con pool o tx).
type InventoryLogRepo struct {
	q Querier
}

// NewInventoryLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryLogRepository(q Querier) *InventoryLogRepo {
	return &InventoryLogRepo{q: q}
}

// Create persiste una entrada del historial. La base asigna id y change_date.
func (r *InventoryLogRepo) Create(log *entity.InventoryLog) error {
	if log.ChangedBy == "" {
		log.ChangedBy = entity.DefaultChangedBy
	}
	query := `
		INSERT INTO inventory_logs (product_id, action_type, old_stock, new_stock, changed_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, change_date`
	err := r.q.QueryRow(context.Background(), query,
		log.ProductID, log.ActionType, log.OldStock, log.NewStock, log.ChangedBy,
	).Scan(&log.ID, &log.ChangeDate)
	if err != nil {
		return fmt.Errorf("insert inventory log: %w", err)
	}
	return nil
}

// ListByProduct lista el historial de un producto, más reciente primero.
// Sin chequeo de existencia: un producto borrado conserva su historial.
func (r *InventoryLogRepo) ListByProduct(productID int64) ([]*entity.InventoryLog, error) {
	query := `
		SELECT id, product_id, action_type, old_stock, new_stock, changed_by, change_date
		FROM inventory_logs WHERE product_id = $1 ORDER BY change_date DESC`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list inventory logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryLog
	for rows.Next() {
		var l entity.InventoryLog
		if err := rows.Scan(&l.ID, &l.ProductID, &l.ActionType, &l.OldStock, &l.NewStock, &l.ChangedBy, &l.ChangeDate); err != nil {
			return nil, fmt.Errorf("scan inventory log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
