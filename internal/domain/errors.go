package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound = errors.New("recurso no encontrado")
	// ErrInvalidCredentials cubre tanto email desconocido como password incorrecto:
	// el caller nunca distingue cuál de los dos falló.
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	// ErrConflict: el recurso tiene registros dependientes (FK) que bloquean la operación.
	ErrConflict = errors.New("conflicto con registros relacionados")
)
