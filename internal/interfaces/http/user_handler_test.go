package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sairajmatkardevX/stockpilot-api/internal/application/usecase"
	"github.com/sairajmatkardevX/stockpilot-api/internal/domain"
	"github.com/sairajmatkardevX/stockpilot-api/internal/domain/entity"
	apphttp "github.com/sairajmatkardevX/stockpilot-api/internal/interfaces/http"
	"github.com/sairajmatkardevX/stockpilot-api/pkg/logger"
)

// fakeUserStore repositorio en memoria para los tests de handler.
type fakeUserStore struct {
	users  []*entity.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore { return &fakeUserStore{nextID: 1} }

func (r *fakeUserStore) Create(user *entity.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	user.ID = r.nextID
	r.nextID++
	cp := *user
	r.users = append(r.users, &cp)
	return nil
}

func (r *fakeUserStore) GetByID(id int64) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserStore) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserStore) Update(user *entity.User) error {
	for i, u := range r.users {
		if u.ID == user.ID {
			cp := *user
			r.users[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeUserStore) List() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeUserStore) Delete(id int64) error {
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// buildUserApp monta las rutas de usuarios igual que el router real.
func buildUserApp(repo *fakeUserStore) *fiber.App {
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	handler := apphttp.NewUserHandler(usecase.NewUserUseCase(repo), log)

	app := fiber.New()
	users := app.Group("/api/users", apphttp.AuthMiddleware(testJWTSecret))
	users.Get("/", handler.List)
	users.Get("/:id", apphttp.RequireAdmin(), handler.GetByID)
	users.Post("/", apphttp.RequireAdmin(), handler.Create)
	users.Put("/:id", apphttp.RequireAdmin(), handler.Update)
	users.Delete("/:id", apphttp.RequireAdmin(), handler.Delete)
	return app
}

func seedUsers(t *testing.T, repo *fakeUserStore) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secreta123"), bcrypt.MinCost)
	require.NoError(t, err)
	for _, u := range []*entity.User{
		{Name: "Ana", Email: "ana@example.com", PasswordHash: string(hash), Role: entity.RoleAdmin},
		{Name: "Beto", Email: "beto@example.com", PasswordHash: string(hash), Role: entity.RoleUser},
	} {
		require.NoError(t, repo.Create(u))
	}
}

type userListItem struct {
	UserID int64  `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

func decodeUserList(t *testing.T, resp *http.Response) []userListItem {
	t.Helper()
	var items []userListItem
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	return items
}

// Un caller no-admin ve el listado pero con los emails redactados
// (el campo se omite del JSON, no viaja vacío).
func TestUserList_NoAdmin_EmailRedactado(t *testing.T) {
	repo := newFakeUserStore()
	seedUsers(t, repo)
	app := buildUserApp(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/users/", nil)
	req.Header.Set("Authorization", tokenForRole(t, entity.RoleUser))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := json.Marshal(decodeUserList(t, resp))
	require.NoError(t, err)
	// Re-chequeo directo sobre el cuerpo: el literal del email no aparece.
	assert.NotContains(t, string(raw), "ana@example.com")
	assert.NotContains(t, string(raw), "beto@example.com")
}

func TestUserList_Admin_EmailPresente(t *testing.T) {
	repo := newFakeUserStore()
	seedUsers(t, repo)
	app := buildUserApp(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/users/", nil)
	req.Header.Set("Authorization", tokenForRole(t, entity.RoleAdmin))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	items := decodeUserList(t, resp)
	require.Len(t, items, 2)
	emails := []string{items[0].Email, items[1].Email}
	assert.Contains(t, emails, "ana@example.com")
	assert.Contains(t, emails, "beto@example.com")
}

func TestUserGetByID_IDInvalido_Retorna400(t *testing.T) {
	repo := newFakeUserStore()
	seedUsers(t, repo)
	app := buildUserApp(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/users/abc", nil)
	req.Header.Set("Authorization", tokenForRole(t, entity.RoleAdmin))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "INVALID_ID", body.Code)
}

func TestUserGetByID_Inexistente_Retorna404(t *testing.T) {
	repo := newFakeUserStore()
	app := buildUserApp(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/users/999", nil)
	req.Header.Set("Authorization", tokenForRole(t, entity.RoleAdmin))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUserDelete_Admin_Retorna204(t *testing.T) {
	repo := newFakeUserStore()
	seedUsers(t, repo)
	app := buildUserApp(repo)

	req := httptest.NewRequest(http.MethodDelete, "/api/users/2", nil)
	req.Header.Set("Authorization", tokenForRole(t, entity.RoleAdmin))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	u, err := repo.GetByID(2)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestUserCreate_EmailDuplicado_Retorna400(t *testing.T) {
	repo := newFakeUserStore()
	seedUsers(t, repo)
	app := buildUserApp(repo)

	req := httptest.NewRequest(http.MethodPost, "/api/users/",
		strings.NewReader(`{"name":"Clon","email":"ana@example.com","password":"secreta123","role":"USER"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", tokenForRole(t, entity.RoleAdmin))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "EMAIL_EXISTS", body.Code)
}
