package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/figurine/backend/internal/domain/catalog"
	"github.com/figurine/backend/internal/domain/shared"
)

// ProductService handles product management. Orders snapshot product data
// when items are added, so edits here never rewrite existing order items.
type ProductService struct {
	productRepo  catalog.ProductRepository
	categoryRepo catalog.CategoryRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, categoryRepo catalog.CategoryRepository) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// Create creates a new product under an existing category
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	if _, err := s.categoryRepo.FindByID(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	product, err := catalog.NewProduct(req.Name, req.Description, req.CategoryID, req.BasePrice, req.IsColored, req.Dimensions)
	if err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// List retrieves products with filtering and pagination
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) ([]ProductResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "name"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "asc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]any),
	}
	if filter.CategoryID != "" {
		domainFilter.Filters["category_id"] = filter.CategoryID
	}
	if filter.Source != "" {
		domainFilter.Filters["source"] = filter.Source
	}
	if filter.ActiveOnly {
		domainFilter.Filters["is_active"] = true
	}

	products, err := s.productRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.productRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToProductResponses(products), total, nil
}

// Update updates a product's details and active flag
func (s *ProductService) Update(ctx context.Context, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	name := product.Name
	if req.Name != nil {
		name = *req.Name
	}
	description := product.Description
	if req.Description != nil {
		description = *req.Description
	}
	categoryID := product.CategoryID
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		categoryID = *req.CategoryID
	}
	basePrice := product.BasePrice
	if req.BasePrice != nil {
		basePrice = *req.BasePrice
	}
	isColored := product.IsColored
	if req.IsColored != nil {
		isColored = *req.IsColored
	}
	dimensions := product.Dimensions
	if req.Dimensions != nil {
		dimensions = *req.Dimensions
	}

	if err := product.Update(name, description, categoryID, basePrice, isColored, dimensions); err != nil {
		return nil, err
	}
	if req.IsActive != nil {
		product.SetActive(*req.IsActive)
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Delete deletes a product. Existing order items keep their snapshots.
func (s *ProductService) Delete(ctx context.Context, productID uuid.UUID) error {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, productID)
}
