package dto

// UserResponse salida de un usuario embebida en AuthResponse.
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UserListItem fila de GET /api/users. Email solo se incluye cuando el
// caller es ADMIN; para el resto el campo se omite por completo.
type UserListItem struct {
	UserID int64  `json:"userId"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Email  string `json:"email,omitempty"`
}

// UserDetailResponse salida de operaciones de administración de usuarios.
type UserDetailResponse struct {
	UserID int64  `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// CreateUserRequest entrada para crear un usuario (solo admin).
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"`
}

// UpdateUserRequest entrada para actualizar un usuario (solo admin).
// Password vacío conserva el hash actual.
type UpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	Role     *string `json:"role"`
}
