package catalog

import (
	"strings"
	"time"

	"github.com/figurine/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductSource represents where a product record originated
type ProductSource string

const (
	ProductSourceLocal      ProductSource = "erp"
	ProductSourceStorefront ProductSource = "storefront"
)

// IsValid checks if the source is a valid ProductSource
func (s ProductSource) IsValid() bool {
	return s == ProductSourceLocal || s == ProductSourceStorefront
}

// Product represents a sellable figurine model. Orders snapshot its name and
// price at the time an item is added; later product changes do not touch
// existing order items.
type Product struct {
	shared.BaseEntity
	Name        string          `gorm:"size:255;not null"`
	Description string          `gorm:"size:2000"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	BasePrice   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	IsColored   bool            `gorm:"not null;default:false"`
	Dimensions  string          `gorm:"size:255"`
	Source      ProductSource   `gorm:"size:20;not null"`
	ExternalID  *int64          `gorm:"index"`
	IsActive    bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new locally-entered product
func NewProduct(name, description string, categoryID uuid.UUID, basePrice decimal.Decimal, isColored bool, dimensions string) (*Product, error) {
	if err := validateProduct(name, categoryID, basePrice); err != nil {
		return nil, err
	}
	return &Product{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        strings.TrimSpace(name),
		Description: description,
		CategoryID:  categoryID,
		BasePrice:   basePrice.Round(2),
		IsColored:   isColored,
		Dimensions:  dimensions,
		Source:      ProductSourceLocal,
		IsActive:    true,
	}, nil
}

// NewStorefrontProduct creates a product imported from the storefront, keyed
// by its external id
func NewStorefrontProduct(name, description string, categoryID uuid.UUID, basePrice decimal.Decimal, externalID int64, active bool) (*Product, error) {
	if err := validateProduct(name, categoryID, basePrice); err != nil {
		return nil, err
	}
	return &Product{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        strings.TrimSpace(name),
		Description: description,
		CategoryID:  categoryID,
		BasePrice:   basePrice.Round(2),
		Source:      ProductSourceStorefront,
		ExternalID:  &externalID,
		IsActive:    active,
	}, nil
}

// Update replaces the product's details
func (p *Product) Update(name, description string, categoryID uuid.UUID, basePrice decimal.Decimal, isColored bool, dimensions string) error {
	if err := validateProduct(name, categoryID, basePrice); err != nil {
		return err
	}
	p.Name = strings.TrimSpace(name)
	p.Description = description
	p.CategoryID = categoryID
	p.BasePrice = basePrice.Round(2)
	p.IsColored = isColored
	p.Dimensions = dimensions
	p.UpdatedAt = time.Now()
	return nil
}

// SetActive toggles whether the product can be added to new orders
func (p *Product) SetActive(active bool) {
	p.IsActive = active
	p.UpdatedAt = time.Now()
}

func validateProduct(name string, categoryID uuid.UUID, basePrice decimal.Decimal) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if categoryID == uuid.Nil {
		return shared.NewDomainError("INVALID_CATEGORY", "Category ID cannot be empty")
	}
	if basePrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Base price cannot be negative")
	}
	return nil
}
