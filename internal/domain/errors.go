package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrDuplicateName = errors.New("el nombre del producto ya existe")
	ErrMissingFile   = errors.New("archivo no proporcionado")
	ErrInvalidInput  = errors.New("entrada inválida")
)
