package repository

import "github.com/sairajmatkardevX/stockpilot-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// search filtra por nombre (substring, case-insensitive) o por id exacto;
// vacío = sin filtro. Los Get* devuelven (nil, nil) si no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
	List(search string, limit, offset int) ([]*entity.Product, error)
	Count(search string) (int64, error)
	// CountRelated cuenta ventas + compras que referencian al producto.
	// Un resultado > 0 bloquea el borrado.
	CountRelated(productID string) (int64, error)
	ListSales(productID string) ([]*entity.Sale, error)
	ListPurchases(productID string) ([]*entity.Purchase, error)
	Stats() (*entity.ProductStats, error)
}
