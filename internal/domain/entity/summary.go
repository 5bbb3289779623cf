package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Filas read-model para el dashboard. Se alimentan por fuera de esta API
// (jobs de agregación); aquí son solo lectura.

// SalesSummary total de ventas de un período con su variación porcentual.
type SalesSummary struct {
	ID               string // UUID
	TotalValue       decimal.Decimal
	ChangePercentage *float64
	Date             time.Time
}

// PurchaseSummary total de compras de un período.
type PurchaseSummary struct {
	ID               string // UUID
	TotalPurchased   decimal.Decimal
	ChangePercentage *float64
	Date             time.Time
}

// ExpenseSummary total de gastos de un período.
type ExpenseSummary struct {
	ID            string // UUID
	TotalExpenses decimal.Decimal
	Date          time.Time
}

// ExpenseByCategory desglose de gastos por categoría, referencia a su ExpenseSummary.
type ExpenseByCategory struct {
	ID               string // UUID
	ExpenseSummaryID string
	Category         string
	Amount           decimal.Decimal
	Date             time.Time
}
