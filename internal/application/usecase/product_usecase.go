package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/sairajmatkardevX/stockpilot-api/internal/application/dto"
	"github.com/sairajmatkardevX/stockpilot-api/internal/domain"
	"github.com/sairajmatkardevX/stockpilot-api/internal/domain/entity"
	"github.com/sairajmatkardevX/stockpilot-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List lista productos con búsqueda opcional y paginación.
// totalPages = ceil(totalCount / limit).
func (uc *ProductUseCase) List(search string, page, limit int) (*dto.ProductListResponse, error) {
	offset := (page - 1) * limit
	products, err := uc.repo.List(search, limit, offset)
	if err != nil {
		return nil, err
	}
	totalCount, err := uc.repo.Count(search)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	totalPages := int((totalCount + int64(limit) - 1) / int64(limit))
	return &dto.ProductListResponse{
		Products: items,
		Pagination: dto.Pagination{
			Page:       page,
			Limit:      limit,
			TotalCount: totalCount,
			TotalPages: totalPages,
		},
	}, nil
}

// GetByID obtiene un producto con sus ventas y compras. (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	out := toProductResponse(product)
	sales, err := uc.repo.ListSales(id)
	if err != nil {
		return nil, err
	}
	purchases, err := uc.repo.ListPurchases(id)
	if err != nil {
		return nil, err
	}
	for _, s := range sales {
		out.Sales = append(out.Sales, dto.SaleResponse{
			ID:          s.ID,
			ProductID:   s.ProductID,
			Timestamp:   s.Timestamp,
			Quantity:    s.Quantity,
			UnitPrice:   s.UnitPrice,
			TotalAmount: s.TotalAmount,
		})
	}
	for _, p := range purchases {
		out.Purchases = append(out.Purchases, dto.PurchaseResponse{
			ID:        p.ID,
			ProductID: p.ProductID,
			Timestamp: p.Timestamp,
			Quantity:  p.Quantity,
			UnitCost:  p.UnitCost,
			TotalCost: p.TotalCost,
		})
	}
	return out, nil
}

// Create crea un nuevo producto con ID UUID.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Price:         in.Price,
		Rating:        in.Rating,
		StockQuantity: in.StockQuantity,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto con semántica parcial. (nil, nil) si no existe.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Rating != nil {
		product.Rating = in.Rating
	}
	if in.StockQuantity != nil {
		product.StockQuantity = *in.StockQuantity
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto. ErrNotFound si no existe; ErrConflict si tiene
// ventas o compras asociadas (el chequeo previo y la FK de la DB cubren lo mismo,
// el primero da el mensaje, la segunda es la garantía).
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	related, err := uc.repo.CountRelated(id)
	if err != nil {
		return err
	}
	if related > 0 {
		return domain.ErrConflict
	}
	return uc.repo.Delete(id)
}

// Stats agregados de toda la tabla de productos.
func (uc *ProductUseCase) Stats() (*dto.ProductStatsResponse, error) {
	st, err := uc.repo.Stats()
	if err != nil {
		return nil, err
	}
	return &dto.ProductStatsResponse{
		Count:      st.Count,
		AvgPrice:   st.AvgPrice,
		AvgRating:  st.AvgRating,
		TotalStock: st.TotalStock,
		MinPrice:   st.MinPrice,
		MaxPrice:   st.MaxPrice,
		MinStock:   st.MinStock,
		MaxStock:   st.MaxStock,
	}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Price:         p.Price,
		Rating:        p.Rating,
		StockQuantity: p.StockQuantity,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
