package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("registro no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrBadDocument  = errors.New("documento inválido")
	ErrUnauthorized = errors.New("credenciales inválidas")
)
