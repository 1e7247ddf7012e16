package repository

import (
	"github.com/jhoicas/stocklist-api/internal/domain/entity"
)

// ProductFilter filtros opcionales para listar productos.
// Name filtra por subcadena (case-insensitive); Category por igualdad exacta.
type ProductFilter struct {
	Name     string
	Category string
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	GetByName(name string) (*entity.Product, error)
	List(filter ProductFilter) ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id int64) error
}
