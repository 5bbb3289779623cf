package usecase

import (
	"context"

	"github.com/sairajmatkardevX/stockpilot-api/internal/application/dto"
	"github.com/sairajmatkardevX/stockpilot-api/internal/domain/repository"
)

// ExpenseUseCase reporte de gastos por categoría. Lee del mismo repositorio
// read-only que alimenta el dashboard.
type ExpenseUseCase struct {
	repo repository.DashboardRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(repo repository.DashboardRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo}
}

// ListByCategory devuelve el desglose completo de gastos por categoría,
// fecha descendente, montos como string (decimal).
func (uc *ExpenseUseCase) ListByCategory(ctx context.Context) ([]dto.ExpenseByCategoryResponse, error) {
	rows, err := uc.repo.ListExpensesByCategory(ctx, 0)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ExpenseByCategoryResponse, 0, len(rows))
	for _, e := range rows {
		items = append(items, dto.ExpenseByCategoryResponse{
			ID:               e.ID,
			ExpenseSummaryID: e.ExpenseSummaryID,
			Category:         e.Category,
			Amount:           e.Amount,
			Date:             e.Date,
		})
	}
	return items, nil
}
