package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sairajmatkardevX/stockpilot-api/internal/domain/entity"
	"github.com/sairajmatkardevX/stockpilot-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de solo lectura para los widgets del dashboard.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository construye el adaptador de lectura del dashboard.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

// TopProductsByStock devuelve los productos con mayor stock.
func (r *DashboardRepo) TopProductsByStock(ctx context.Context, limit int) ([]*entity.Product, error) {
	query := `
		SELECT id, name, price, rating, stock_quantity, created_at, updated_at
		FROM products ORDER BY stock_quantity DESC LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("dashboard.TopProductsByStock: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Rating, &p.StockQuantity, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("dashboard: scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// LastSalesSummaries devuelve las últimas filas del read-model de ventas.
func (r *DashboardRepo) LastSalesSummaries(ctx context.Context, limit int) ([]*entity.SalesSummary, error) {
	query := `
		SELECT id, total_value, change_percentage, date
		FROM sales_summary ORDER BY date DESC LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("dashboard.LastSalesSummaries: %w", err)
	}
	defer rows.Close()
	var list []*entity.SalesSummary
	for rows.Next() {
		var s entity.SalesSummary
		if err := rows.Scan(&s.ID, &s.TotalValue, &s.ChangePercentage, &s.Date); err != nil {
			return nil, fmt.Errorf("dashboard: scan sales summary: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// LastPurchaseSummaries devuelve las últimas filas del read-model de compras.
func (r *DashboardRepo) LastPurchaseSummaries(ctx context.Context, limit int) ([]*entity.PurchaseSummary, error) {
	query := `
		SELECT id, total_purchased, change_percentage, date
		FROM purchase_summary ORDER BY date DESC LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("dashboard.LastPurchaseSummaries: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseSummary
	for rows.Next() {
		var s entity.PurchaseSummary
		if err := rows.Scan(&s.ID, &s.TotalPurchased, &s.ChangePercentage, &s.Date); err != nil {
			return nil, fmt.Errorf("dashboard: scan purchase summary: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// LastExpenseSummaries devuelve las últimas filas del read-model de gastos.
func (r *DashboardRepo) LastExpenseSummaries(ctx context.Context, limit int) ([]*entity.ExpenseSummary, error) {
	query := `
		SELECT id, total_expenses, date
		FROM expense_summary ORDER BY date DESC LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("dashboard.LastExpenseSummaries: %w", err)
	}
	defer rows.Close()
	var list []*entity.ExpenseSummary
	for rows.Next() {
		var s entity.ExpenseSummary
		if err := rows.Scan(&s.ID, &s.TotalExpenses, &s.Date); err != nil {
			return nil, fmt.Errorf("dashboard: scan expense summary: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// ListExpensesByCategory devuelve el desglose de gastos por categoría.
// limit <= 0 trae el listado completo.
func (r *DashboardRepo) ListExpensesByCategory(ctx context.Context, limit int) ([]*entity.ExpenseByCategory, error) {
	query := `
		SELECT id, expense_summary_id, category, amount, date
		FROM expense_by_category ORDER BY date DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("dashboard.ListExpensesByCategory: %w", err)
	}
	defer rows.Close()
	var list []*entity.ExpenseByCategory
	for rows.Next() {
		var e entity.ExpenseByCategory
		if err := rows.Scan(&e.ID, &e.ExpenseSummaryID, &e.Category, &e.Amount, &e.Date); err != nil {
			return nil, fmt.Errorf("dashboard: scan expense by category: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
