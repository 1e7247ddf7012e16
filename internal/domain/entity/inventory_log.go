package entity

import "time"

// Tipos de acción registrados en el historial de inventario.
const (
	ActionTypeCreate = "CREATE"
	ActionTypeUpdate = "UPDATE"
)

// DefaultChangedBy atribución fija: sistema mono-usuario.
const DefaultChangedBy = "Admin"

// InventoryLog es una entrada inmutable del historial de cambios de stock.
// ProductID es una referencia débil: las entradas sobreviven al borrado del
// producto (la auditoría no se elimina en cascada).
type InventoryLog struct {
	ID         int64
	ProductID  int64
	ActionType string
	OldStock   int
	NewStock   int
	ChangedBy  string
	ChangeDate time.Time
}
