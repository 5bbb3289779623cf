// Package analytics contiene el caso de uso de agregación del dashboard.
package analytics

import (
	"context"
	"fmt"

	"github.com/sairajmatkardevX/stockpilot-api/internal/application/dto"
	"github.com/sairajmatkardevX/stockpilot-api/internal/domain/entity"
	"github.com/sairajmatkardevX/stockpilot-api/internal/domain/repository"
)

const (
	dashboardTopProducts = 15 // productos con más stock en el widget principal
	dashboardLastRows    = 5  // filas recientes por read-model
)

// DashboardUseCase arma el snapshot read-only del dashboard.
//
// Fuente de datos: DashboardRepository (consultas de solo lectura).
// Las cinco consultas se lanzan en paralelo; la respuesta se arma cuando
// todas terminan.
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// GetMetrics construye el DashboardResponse: top de productos por stock y
// las últimas 5 filas de ventas, compras, gastos y gastos por categoría.
func (uc *DashboardUseCase) GetMetrics(ctx context.Context) (*dto.DashboardResponse, error) {
	type productsResult struct {
		rows []*entity.Product
		err  error
	}
	type salesResult struct {
		rows []*entity.SalesSummary
		err  error
	}
	type purchasesResult struct {
		rows []*entity.PurchaseSummary
		err  error
	}
	type expensesResult struct {
		rows []*entity.ExpenseSummary
		err  error
	}
	type byCategoryResult struct {
		rows []*entity.ExpenseByCategory
		err  error
	}

	productsCh := make(chan productsResult, 1)
	salesCh := make(chan salesResult, 1)
	purchasesCh := make(chan purchasesResult, 1)
	expensesCh := make(chan expensesResult, 1)
	byCategoryCh := make(chan byCategoryResult, 1)

	go func() {
		rows, err := uc.repo.TopProductsByStock(ctx, dashboardTopProducts)
		productsCh <- productsResult{rows, err}
	}()
	go func() {
		rows, err := uc.repo.LastSalesSummaries(ctx, dashboardLastRows)
		salesCh <- salesResult{rows, err}
	}()
	go func() {
		rows, err := uc.repo.LastPurchaseSummaries(ctx, dashboardLastRows)
		purchasesCh <- purchasesResult{rows, err}
	}()
	go func() {
		rows, err := uc.repo.LastExpenseSummaries(ctx, dashboardLastRows)
		expensesCh <- expensesResult{rows, err}
	}()
	go func() {
		rows, err := uc.repo.ListExpensesByCategory(ctx, dashboardLastRows)
		byCategoryCh <- byCategoryResult{rows, err}
	}()

	products := <-productsCh
	sales := <-salesCh
	purchases := <-purchasesCh
	expenses := <-expensesCh
	byCategory := <-byCategoryCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: productos populares: %w", products.err)
	}
	if sales.err != nil {
		return nil, fmt.Errorf("dashboard: resumen de ventas: %w", sales.err)
	}
	if purchases.err != nil {
		return nil, fmt.Errorf("dashboard: resumen de compras: %w", purchases.err)
	}
	if expenses.err != nil {
		return nil, fmt.Errorf("dashboard: resumen de gastos: %w", expenses.err)
	}
	if byCategory.err != nil {
		return nil, fmt.Errorf("dashboard: gastos por categoría: %w", byCategory.err)
	}

	out := &dto.DashboardResponse{
		PopularProducts:          make([]dto.ProductResponse, 0, len(products.rows)),
		SalesSummary:             make([]dto.SalesSummaryResponse, 0, len(sales.rows)),
		PurchaseSummary:          make([]dto.PurchaseSummaryResponse, 0, len(purchases.rows)),
		ExpenseSummary:           make([]dto.ExpenseSummaryResponse, 0, len(expenses.rows)),
		ExpenseByCategorySummary: make([]dto.ExpenseByCategoryResponse, 0, len(byCategory.rows)),
	}
	for _, p := range products.rows {
		out.PopularProducts = append(out.PopularProducts, dto.ProductResponse{
			ID:            p.ID,
			Name:          p.Name,
			Price:         p.Price,
			Rating:        p.Rating,
			StockQuantity: p.StockQuantity,
			CreatedAt:     p.CreatedAt,
			UpdatedAt:     p.UpdatedAt,
		})
	}
	for _, s := range sales.rows {
		out.SalesSummary = append(out.SalesSummary, dto.SalesSummaryResponse{
			ID:               s.ID,
			TotalValue:       s.TotalValue,
			ChangePercentage: s.ChangePercentage,
			Date:             s.Date,
		})
	}
	for _, s := range purchases.rows {
		out.PurchaseSummary = append(out.PurchaseSummary, dto.PurchaseSummaryResponse{
			ID:               s.ID,
			TotalPurchased:   s.TotalPurchased,
			ChangePercentage: s.ChangePercentage,
			Date:             s.Date,
		})
	}
	for _, s := range expenses.rows {
		out.ExpenseSummary = append(out.ExpenseSummary, dto.ExpenseSummaryResponse{
			ID:            s.ID,
			TotalExpenses: s.TotalExpenses,
			Date:          s.Date,
		})
	}
	for _, e := range byCategory.rows {
		out.ExpenseByCategorySummary = append(out.ExpenseByCategorySummary, dto.ExpenseByCategoryResponse{
			ID:               e.ID,
			ExpenseSummaryID: e.ExpenseSummaryID,
			Category:         e.Category,
			Amount:           e.Amount,
			Date:             e.Date,
		})
	}
	return out, nil
}
