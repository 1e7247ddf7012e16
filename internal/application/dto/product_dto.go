package dto

import "time"

// CreateProductRequest entrada para crear un producto.
// ImageURL es opcional; si falta se aplica la imagen placeholder.
type CreateProductRequest struct {
	Name     string `json:"name"`
	Unit     string `json:"unit"`
	Category string `json:"category"`
	Brand    string `json:"brand"`
	Stock    int    `json:"stock"`
	Status   string `json:"status"`
	ImageURL string `json:"image_url"`
}

// UpdateProductRequest entrada para actualizar un producto.
// Reemplazo completo: los cinco campos se sobrescriben siempre (no es patch).
type UpdateProductRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Brand    string `json:"brand"`
	Stock    int    `json:"stock"`
	Status   string `json:"status"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Unit      string    `json:"unit"`
	Category  string    `json:"category"`
	Brand     string    `json:"brand"`
	Stock     int       `json:"stock"`
	Status    string    `json:"status"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateProductResponse confirmación de alta con el id asignado.
type CreateProductResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// InventoryLogResponse salida de una entrada del historial de stock.
type InventoryLogResponse struct {
	ID         int64     `json:"id"`
	ProductID  int64     `json:"product_id"`
	ActionType string    `json:"action_type"`
	OldStock   int       `json:"old_stock"`
	NewStock   int       `json:"new_stock"`
	ChangedBy  string    `json:"changed_by"`
	ChangeDate time.Time `json:"change_date"`
}

// ImportResponse resumen del import CSV.
type ImportResponse struct {
	Message string `json:"message"`
	Added   int    `json:"added"`
	Skipped int    `json:"skipped"`
}
