package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Los montos decimal.Decimal se serializan como string JSON
// (comportamiento por defecto de shopspring/decimal), que es lo que
// espera el cliente para los widgets del dashboard.

// SalesSummaryResponse fila del read-model de ventas.
type SalesSummaryResponse struct {
	ID               string          `json:"salesSummaryId"`
	TotalValue       decimal.Decimal `json:"totalValue"`
	ChangePercentage *float64        `json:"changePercentage"`
	Date             time.Time       `json:"date"`
}

// PurchaseSummaryResponse fila del read-model de compras.
type PurchaseSummaryResponse struct {
	ID               string          `json:"purchaseSummaryId"`
	TotalPurchased   decimal.Decimal `json:"totalPurchased"`
	ChangePercentage *float64        `json:"changePercentage"`
	Date             time.Time       `json:"date"`
}

// ExpenseSummaryResponse fila del read-model de gastos.
type ExpenseSummaryResponse struct {
	ID            string          `json:"expenseSummaryId"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	Date          time.Time       `json:"date"`
}

// ExpenseByCategoryResponse desglose de gastos por categoría.
type ExpenseByCategoryResponse struct {
	ID               string          `json:"expenseByCategoryId"`
	ExpenseSummaryID string          `json:"expenseSummaryId"`
	Category         string          `json:"category"`
	Amount           decimal.Decimal `json:"amount"`
	Date             time.Time       `json:"date"`
}

// DashboardResponse respuesta de GET /api/dashboard: top de productos por
// stock y las últimas 5 filas de cada read-model.
type DashboardResponse struct {
	PopularProducts          []ProductResponse           `json:"popularProducts"`
	SalesSummary             []SalesSummaryResponse      `json:"salesSummary"`
	PurchaseSummary          []PurchaseSummaryResponse   `json:"purchaseSummary"`
	ExpenseSummary           []ExpenseSummaryResponse    `json:"expenseSummary"`
	ExpenseByCategorySummary []ExpenseByCategoryResponse `json:"expenseByCategorySummary"`
}

// UserPreferenceResponse blob de preferencias de UI del caller.
type UserPreferenceResponse struct {
	Preferences json.RawMessage `json:"preferences"`
	UpdatedAt   *time.Time      `json:"updatedAt,omitempty"`
}
