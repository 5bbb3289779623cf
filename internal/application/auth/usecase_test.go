package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sairajmatkardevX/stockpilot-api/internal/application/auth"
	"github.com/sairajmatkardevX/stockpilot-api/internal/application/dto"
	"github.com/sairajmatkardevX/stockpilot-api/internal/domain"
	"github.com/sairajmatkardevX/stockpilot-api/internal/domain/entity"
	pkgjwt "github.com/sairajmatkardevX/stockpilot-api/pkg/jwt"
)

// fakeUserRepo repositorio en memoria para pruebas del caso de uso.
type fakeUserRepo struct {
	users  map[int64]*entity.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*entity.User{}, nextID: 1}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	user.ID = r.nextID
	r.nextID++
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(user *entity.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(id int64) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

var testJWTCfg = auth.JWTConfig{
	Secret:     "usecase-test-secret",
	ExpMinutes: 60,
	Issuer:     "stockpilot-api-test",
}

func TestRegister_EmiteTokenConRolNormalizado(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWTCfg)

	out, err := uc.Register(dto.RegisterRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secreta123",
		Role:     "Admin", // case-insensitive → ADMIN
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)

	userID, role, err := pkgjwt.Parse(testJWTCfg.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestRegister_RolDesconocidoCaeEnUser(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWTCfg)

	out, err := uc.Register(dto.RegisterRequest{
		Name:     "Beto",
		Email:    "beto@example.com",
		Password: "secreta123",
		Role:     "superuser",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, out.User.Role)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWTCfg)

	_, err := uc.Register(dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Name: "Otra Ana", Email: "ana@example.com", Password: "distinta456"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_CredencialesValidas(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWTCfg)

	reg, err := uc.Register(dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secreta123", Role: "admin"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "secreta123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, reg.User.ID, out.User.ID)

	_, role, err := pkgjwt.Parse(testJWTCfg.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, role, "el rol viaja en el token tras el login")
}

// Email desconocido y password incorrecto devuelven exactamente el mismo error:
// el caller no puede enumerar cuentas por la diferencia de respuesta.
func TestLogin_FallosIndistinguibles(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWTCfg)

	_, err := uc.Register(dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secreta123"})
	require.NoError(t, err)

	_, errUnknown := uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "loquesea"})
	_, errWrongPass := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "incorrecta"})

	assert.ErrorIs(t, errUnknown, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, domain.ErrInvalidCredentials)
	assert.Equal(t, errUnknown, errWrongPass)
}

func TestRegister_NoGuardaPasswordEnClaro(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWTCfg)

	_, err := uc.Register(dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secreta123"})
	require.NoError(t, err)

	stored, err := repo.GetByEmail("ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta123", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}
