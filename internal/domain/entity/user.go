package entity

import (
	"strings"
	"time"
)

// Roles disponibles. Deben coincidir con el CHECK de la tabla users.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// NormalizeRole lleva cualquier entrada a uno de los dos roles válidos.
// Solo "admin" (en cualquier capitalización) produce ADMIN; todo lo demás es USER.
func NormalizeRole(role string) string {
	if strings.EqualFold(role, RoleAdmin) {
		return RoleAdmin
	}
	return RoleUser
}

// User representa una cuenta del sistema.
// PasswordHash es bcrypt; nunca viaja en respuestas HTTP.
type User struct {
	ID           int64
	Name         string
	Email        string // único, comparación exacta (case-sensitive)
	PasswordHash string
	Role         string // RoleAdmin | RoleUser
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserPreference blob JSON de preferencias de UI por usuario
// (sidebar colapsado, tema, etc.). No se mezcla con datos de negocio.
type UserPreference struct {
	UserID    int64
	Data      []byte // JSON
	UpdatedAt time.Time
}
