package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
type Product struct {
	ID            string // UUID
	Name          string
	Price         decimal.Decimal
	Rating        *float64 // opcional (1-5)
	StockQuantity int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Sale representa una venta registrada de un producto.
type Sale struct {
	ID          string // UUID
	ProductID   string
	Timestamp   time.Time
	Quantity    int
	UnitPrice   decimal.Decimal
	TotalAmount decimal.Decimal
}

// Purchase representa una compra registrada de un producto.
type Purchase struct {
	ID        string // UUID
	ProductID string
	Timestamp time.Time
	Quantity  int
	UnitCost  decimal.Decimal
	TotalCost decimal.Decimal
}

// ProductStats agregados sobre toda la tabla de productos.
type ProductStats struct {
	Count      int64
	AvgPrice   decimal.Decimal
	AvgRating  *float64
	TotalStock int64
	MinPrice   decimal.Decimal
	MaxPrice   decimal.Decimal
	MinStock   int
	MaxStock   int
}
