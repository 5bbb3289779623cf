package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Price         decimal.Decimal `json:"price"`
	Rating        *float64        `json:"rating" validate:"omitempty,min=0,max=5"`
	StockQuantity int             `json:"stockQuantity" validate:"min=0"`
}

// UpdateProductRequest entrada para actualizar un producto (parcial).
type UpdateProductRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Price         *decimal.Decimal `json:"price"`
	Rating        *float64         `json:"rating" validate:"omitempty,min=0,max=5"`
	StockQuantity *int             `json:"stockQuantity" validate:"omitempty,min=0"`
}

// SaleResponse venta asociada a un producto.
type SaleResponse struct {
	ID          string          `json:"saleId"`
	ProductID   string          `json:"productId"`
	Timestamp   time.Time       `json:"timestamp"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// PurchaseResponse compra asociada a un producto.
type PurchaseResponse struct {
	ID        string          `json:"purchaseId"`
	ProductID string          `json:"productId"`
	Timestamp time.Time       `json:"timestamp"`
	Quantity  int             `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unitCost"`
	TotalCost decimal.Decimal `json:"totalCost"`
}

// ProductResponse salida de un producto. Sales y Purchases solo se
// cargan en el detalle (GET /api/products/:id).
type ProductResponse struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Price         decimal.Decimal    `json:"price"`
	Rating        *float64           `json:"rating"`
	StockQuantity int                `json:"stockQuantity"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
	Sales         []SaleResponse     `json:"sales,omitempty"`
	Purchases     []PurchaseResponse `json:"purchases,omitempty"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Products   []ProductResponse `json:"products"`
	Pagination Pagination        `json:"pagination"`
}

// ProductStatsResponse agregados sobre la tabla de productos.
type ProductStatsResponse struct {
	Count      int64           `json:"count"`
	AvgPrice   decimal.Decimal `json:"avgPrice"`
	AvgRating  *float64        `json:"avgRating"`
	TotalStock int64           `json:"totalStock"`
	MinPrice   decimal.Decimal `json:"minPrice"`
	MaxPrice   decimal.Decimal `json:"maxPrice"`
	MinStock   int             `json:"minStock"`
	MaxStock   int             `json:"maxStock"`
}
