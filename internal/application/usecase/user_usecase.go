package usecase

import (
	"time"

	"github.com/sairajmatkardevX/stockpilot-api/internal/application/dto"
	"github.com/sairajmatkardevX/stockpilot-api/internal/domain/entity"
	"github.com/sairajmatkardevX/stockpilot-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase administración de usuarios (rutas de admin más el listado general).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List lista todos los usuarios. El email solo se expone cuando el caller es
// ADMIN; el check es del servidor, nunca del cliente.
func (uc *UserUseCase) List(callerIsAdmin bool) ([]dto.UserListItem, error) {
	users, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserListItem, 0, len(users))
	for _, u := range users {
		item := dto.UserListItem{
			UserID: u.ID,
			Name:   u.Name,
			Role:   u.Role,
		}
		if callerIsAdmin {
			item.Email = u.Email
		}
		items = append(items, item)
	}
	return items, nil
}

// GetByID obtiene el detalle de un usuario. (nil, nil) si no existe.
func (uc *UserUseCase) GetByID(id int64) (*dto.UserDetailResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toUserDetail(user), nil
}

// Create crea un usuario con password hasheado y rol normalizado.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserDetailResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         entity.NormalizeRole(in.Role),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return toUserDetail(user), nil
}

// Update actualiza un usuario. Password solo se re-hashea si viene en la
// petición; (nil, nil) si el usuario no existe.
func (uc *UserUseCase) Update(id int64, in dto.UpdateUserRequest) (*dto.UserDetailResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Role != nil {
		user.Role = entity.NormalizeRole(*in.Role)
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return toUserDetail(user), nil
}

// Delete elimina un usuario por ID. Propaga domain.ErrNotFound si no existe.
func (uc *UserUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toUserDetail(u *entity.User) *dto.UserDetailResponse {
	return &dto.UserDetailResponse{
		UserID: u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
	}
}
