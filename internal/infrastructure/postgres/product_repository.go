package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sairajmatkardevX/stockpilot-api/internal/domain"
	"github.com/sairajmatkardevX/stockpilot-api/internal/domain/entity"
	"github.com/sairajmatkardevX/stockpilot-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

const productColumns = `id, name, price, rating, stock_quantity, created_at, updated_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Name, &p.Price, &p.Rating, &p.StockQuantity, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, price, rating, stock_quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		product.ID, product.Name, product.Price, product.Rating, product.StockQuantity,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Update actualiza un producto existente.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, price = $3, rating = $4, stock_quantity = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		product.ID, product.Name, product.Price, product.Rating, product.StockQuantity, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID. Una violación de FK (ventas o compras
// que lo referencian) se reporta como domain.ErrConflict, no como error interno.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// List lista productos con búsqueda opcional y paginación, orden por nombre.
func (r *ProductRepo) List(search string, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR id::text = $1)
		ORDER BY name ASC
		LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Count cuenta productos que cumplen el mismo filtro de List.
func (r *ProductRepo) Count(search string) (int64, error) {
	query := `
		SELECT COUNT(*) FROM products
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR id::text = $1)`
	var n int64
	if err := r.pool.QueryRow(context.Background(), query, search).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// CountRelated cuenta ventas + compras que referencian al producto.
func (r *ProductRepo) CountRelated(productID string) (int64, error) {
	query := `
		SELECT (SELECT COUNT(*) FROM sales WHERE product_id = $1)
		     + (SELECT COUNT(*) FROM purchases WHERE product_id = $1)`
	var n int64
	if err := r.pool.QueryRow(context.Background(), query, productID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count related records: %w", err)
	}
	return n, nil
}

// ListSales devuelve las ventas de un producto, más recientes primero.
func (r *ProductRepo) ListSales(productID string) ([]*entity.Sale, error) {
	query := `
		SELECT id, product_id, timestamp, quantity, unit_price, total_amount
		FROM sales WHERE product_id = $1 ORDER BY timestamp DESC`
	rows, err := r.pool.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.ProductID, &s.Timestamp, &s.Quantity, &s.UnitPrice, &s.TotalAmount); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// ListPurchases devuelve las compras de un producto, más recientes primero.
func (r *ProductRepo) ListPurchases(productID string) ([]*entity.Purchase, error) {
	query := `
		SELECT id, product_id, timestamp, quantity, unit_cost, total_cost
		FROM purchases WHERE product_id = $1 ORDER BY timestamp DESC`
	rows, err := r.pool.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	var list []*entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(&p.ID, &p.ProductID, &p.Timestamp, &p.Quantity, &p.UnitCost, &p.TotalCost); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Stats agrega conteo, promedios, suma de stock y extremos de precio/stock.
func (r *ProductRepo) Stats() (*entity.ProductStats, error) {
	query := `
		SELECT COUNT(id),
		       COALESCE(AVG(price), 0),
		       AVG(rating),
		       COALESCE(SUM(stock_quantity), 0),
		       COALESCE(MIN(price), 0),
		       COALESCE(MAX(price), 0),
		       COALESCE(MIN(stock_quantity), 0),
		       COALESCE(MAX(stock_quantity), 0)
		FROM products`
	var st entity.ProductStats
	err := r.pool.QueryRow(context.Background(), query).Scan(
		&st.Count, &st.AvgPrice, &st.AvgRating, &st.TotalStock,
		&st.MinPrice, &st.MaxPrice, &st.MinStock, &st.MaxStock,
	)
	if err != nil {
		return nil, fmt.Errorf("product stats: %w", err)
	}
	return &st, nil
}
