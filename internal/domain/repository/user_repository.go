package repository

import "github.com/sairajmatkardevX/stockpilot-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los métodos Get* devuelven (nil, nil) cuando el registro no existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List() ([]*entity.User, error)
	Delete(id int64) error
}

// PreferenceRepository persiste el blob de preferencias de UI por usuario.
type PreferenceRepository interface {
	GetByUserID(userID int64) (*entity.UserPreference, error)
	Upsert(pref *entity.UserPreference) error
}
