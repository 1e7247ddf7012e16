package entity

import "time"

// PlaceholderImageURL imagen por defecto cuando el producto se crea sin imagen.
const PlaceholderImageURL = "https://images.unsplash.com/photo-1556740738-b6a63e27c4df?w=100"

// Product representa un producto del inventario. ID y CreatedAt los asigna la
// base de datos; Name es único en toda la tabla (comparación exacta).
type Product struct {
	ID        int64
	Name      string
	Unit      string
	Category  string
	Brand     string
	Stock     int
	Status    string
	ImageURL  string
	CreatedAt time.Time
}
