package repository

import (
	"context"

	"github.com/sairajmatkardevX/stockpilot-api/internal/domain/entity"
)

// DashboardRepository consultas de solo lectura para los widgets del dashboard
// y el reporte de gastos. Todas reciben context: son el punto de suspensión
// natural de la petición.
type DashboardRepository interface {
	// TopProductsByStock devuelve los productos con mayor stock, orden descendente.
	TopProductsByStock(ctx context.Context, limit int) ([]*entity.Product, error)
	// Last* devuelven las últimas filas de cada read-model, por fecha descendente.
	LastSalesSummaries(ctx context.Context, limit int) ([]*entity.SalesSummary, error)
	LastPurchaseSummaries(ctx context.Context, limit int) ([]*entity.PurchaseSummary, error)
	LastExpenseSummaries(ctx context.Context, limit int) ([]*entity.ExpenseSummary, error)
	// ListExpensesByCategory devuelve el desglose por categoría, fecha descendente.
	// limit <= 0 significa sin límite (listado completo de /expenses).
	ListExpensesByCategory(ctx context.Context, limit int) ([]*entity.ExpenseByCategory, error)
}
