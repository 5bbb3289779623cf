package http_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sairajmatkardevX/stockpilot-api/internal/application/usecase"
	"github.com/sairajmatkardevX/stockpilot-api/internal/domain"
	"github.com/sairajmatkardevX/stockpilot-api/internal/domain/entity"
	apphttp "github.com/sairajmatkardevX/stockpilot-api/internal/interfaces/http"
	"github.com/sairajmatkardevX/stockpilot-api/pkg/logger"
)

// fakeProductRepo repositorio en memoria con contador de registros asociados.
type fakeProductRepo struct {
	products map[string]*entity.Product
	order    []string // ids en orden de inserción (los tests insertan por nombre)
	related  map[string]int64
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		products: map[string]*entity.Product{},
		related:  map[string]int64{},
	}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	r.order = append(r.order, p.ID)
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) matches(p *entity.Product, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), strings.ToLower(search)) || p.ID == search
}

func (r *fakeProductRepo) List(search string, limit, offset int) ([]*entity.Product, error) {
	var filtered []*entity.Product
	for _, id := range r.order {
		p, ok := r.products[id]
		if ok && r.matches(p, search) {
			cp := *p
			filtered = append(filtered, &cp)
		}
	}
	if offset >= len(filtered) {
		return nil, nil
	}
	end := offset + limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[offset:end], nil
}

func (r *fakeProductRepo) Count(search string) (int64, error) {
	var n int64
	for _, p := range r.products {
		if r.matches(p, search) {
			n++
		}
	}
	return n, nil
}

func (r *fakeProductRepo) CountRelated(productID string) (int64, error) {
	return r.related[productID], nil
}

func (r *fakeProductRepo) ListSales(productID string) ([]*entity.Sale, error) {
	return nil, nil
}

func (r *fakeProductRepo) ListPurchases(productID string) ([]*entity.Purchase, error) {
	return nil, nil
}

func (r *fakeProductRepo) Stats() (*entity.ProductStats, error) {
	stats := &entity.ProductStats{}
	sum := decimal.Zero
	for _, p := range r.products {
		stats.Count++
		stats.TotalStock += int64(p.StockQuantity)
		sum = sum.Add(p.Price)
	}
	if stats.Count > 0 {
		stats.AvgPrice = sum.Div(decimal.NewFromInt(stats.Count))
	}
	return stats, nil
}

// buildProductApp monta las rutas de productos igual que el router real:
// auth en todo el grupo y RequireAdmin en las escrituras.
func buildProductApp(repo *fakeProductRepo) *fiber.App {
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	handler := apphttp.NewProductHandler(usecase.NewProductUseCase(repo), log)

	app := fiber.New()
	products := app.Group("/api/products", apphttp.AuthMiddleware(testJWTSecret))
	products.Get("/", handler.List)
	products.Get("/stats/all", handler.Stats)
	products.Get("/:id", handler.GetByID)
	products.Post("/", apphttp.RequireAdmin(), handler.Create)
	products.Put("/:id", apphttp.RequireAdmin(), handler.Update)
	products.Delete("/:id", apphttp.RequireAdmin(), handler.Delete)
	return app
}

func seedProducts(t *testing.T, repo *fakeProductRepo, n int) []string {
	t.Helper()
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("00000000-0000-0000-0000-0000000000%02d", i+1)
		require.NoError(t, repo.Create(&entity.Product{
			ID:            id,
			Name:          fmt.Sprintf("Producto %02d", i+1),
			Price:         decimal.NewFromFloat(10.50),
			StockQuantity: 5,
		}))
		ids = append(ids, id)
	}
	return ids
}

func productRequest(t *testing.T, app *fiber.App, method, target, token, body string) *http.Response {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestProductList_Paginacion(t *testing.T) {
	repo := newFakeProductRepo()
	seedProducts(t, repo, 10)
	app := buildProductApp(repo)

	resp := productRequest(t, app, http.MethodGet, "/api/products/?page=2&limit=6", tokenForRole(t, entity.RoleUser), "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Products   []json.RawMessage `json:"products"`
		Pagination struct {
			Page       int   `json:"page"`
			Limit      int   `json:"limit"`
			TotalCount int64 `json:"totalCount"`
			TotalPages int   `json:"totalPages"`
		} `json:"pagination"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	// 10 productos con limit=6: la página 2 trae los 4 restantes.
	assert.Len(t, body.Products, 4)
	assert.Equal(t, 2, body.Pagination.Page)
	assert.Equal(t, 6, body.Pagination.Limit)
	assert.Equal(t, int64(10), body.Pagination.TotalCount)
	assert.Equal(t, 2, body.Pagination.TotalPages)
}

// Un limit desmedido se recorta a 100 en vez de pasar a la consulta.
func TestProductList_LimitExcesivoSeRecorta(t *testing.T) {
	repo := newFakeProductRepo()
	seedProducts(t, repo, 3)
	app := buildProductApp(repo)

	resp := productRequest(t, app, http.MethodGet, "/api/products/?limit=500", tokenForRole(t, entity.RoleUser), "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Pagination struct {
			Limit int `json:"limit"`
		} `json:"pagination"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 100, body.Pagination.Limit)
}

func TestProductList_BusquedaPorNombre(t *testing.T) {
	repo := newFakeProductRepo()
	seedProducts(t, repo, 3)
	app := buildProductApp(repo)

	resp := productRequest(t, app, http.MethodGet, "/api/products/?search=producto+02", tokenForRole(t, entity.RoleUser), "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Products []struct {
			Name string `json:"name"`
		} `json:"products"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Products, 1)
	assert.Equal(t, "Producto 02", body.Products[0].Name)
}

func TestProductDelete_ConRegistrosAsociados_Bloqueado(t *testing.T) {
	repo := newFakeProductRepo()
	ids := seedProducts(t, repo, 1)
	repo.related[ids[0]] = 3 // tres ventas que referencian al producto

	app := buildProductApp(repo)
	resp := productRequest(t, app, http.MethodDelete, "/api/products/"+ids[0], tokenForRole(t, entity.RoleAdmin), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "CONFLICT", body.Code)

	// El producto sigue intacto.
	p, err := repo.GetByID(ids[0])
	require.NoError(t, err)
	assert.NotNil(t, p)
}

func TestProductDelete_SinRegistros_Elimina(t *testing.T) {
	repo := newFakeProductRepo()
	ids := seedProducts(t, repo, 1)
	app := buildProductApp(repo)

	resp := productRequest(t, app, http.MethodDelete, "/api/products/"+ids[0], tokenForRole(t, entity.RoleAdmin), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	p, err := repo.GetByID(ids[0])
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestProductDelete_Inexistente_Retorna404(t *testing.T) {
	repo := newFakeProductRepo()
	app := buildProductApp(repo)

	resp := productRequest(t, app, http.MethodDelete, "/api/products/no-existe", tokenForRole(t, entity.RoleAdmin), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProductCreate_UserRecibe403(t *testing.T) {
	repo := newFakeProductRepo()
	app := buildProductApp(repo)

	resp := productRequest(t, app, http.MethodPost, "/api/products/", tokenForRole(t, entity.RoleUser),
		`{"name":"Nuevo","price":"9.99","stockQuantity":1}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestProductCreate_SinToken_Retorna401(t *testing.T) {
	repo := newFakeProductRepo()
	app := buildProductApp(repo)

	resp := productRequest(t, app, http.MethodPost, "/api/products/", "",
		`{"name":"Nuevo","price":"9.99","stockQuantity":1}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProductCreate_AdminCrea201(t *testing.T) {
	repo := newFakeProductRepo()
	app := buildProductApp(repo)

	resp := productRequest(t, app, http.MethodPost, "/api/products/", tokenForRole(t, entity.RoleAdmin),
		`{"name":"Nuevo","price":"9.99","stockQuantity":7}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		ID            string `json:"id"`
		Name          string `json:"name"`
		Price         string `json:"price"`
		StockQuantity int    `json:"stockQuantity"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.ID, "el id lo asigna el servidor")
	assert.Equal(t, "Nuevo", body.Name)
	assert.Equal(t, "9.99", body.Price, "price serializa como string decimal")
	assert.Equal(t, 7, body.StockQuantity)
}

func TestProductStats_Agrega(t *testing.T) {
	repo := newFakeProductRepo()
	seedProducts(t, repo, 2) // 2 productos, stock 5 c/u, precio 10.50
	app := buildProductApp(repo)

	resp := productRequest(t, app, http.MethodGet, "/api/products/stats/all", tokenForRole(t, entity.RoleUser), "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Count      int64  `json:"count"`
		TotalStock int64  `json:"totalStock"`
		AvgPrice   string `json:"avgPrice"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(2), body.Count)
	assert.Equal(t, int64(10), body.TotalStock)
	assert.Equal(t, "10.5", body.AvgPrice)
}
