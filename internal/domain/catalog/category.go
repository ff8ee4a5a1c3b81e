package catalog

import (
	"strings"
	"time"

	"github.com/figurine/backend/internal/domain/shared"
)

// Category groups products for reporting and order item classification
type Category struct {
	shared.BaseEntity
	Name        string `gorm:"size:255;not null"`
	Description string `gorm:"size:1000"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "product_categories"
}

// NewCategory creates a new product category
func NewCategory(name, description string) (*Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	return &Category{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        strings.TrimSpace(name),
		Description: description,
	}, nil
}

// Update replaces the category's name and description
func (c *Category) Update(name, description string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	c.Name = strings.TrimSpace(name)
	c.Description = description
	c.UpdatedAt = time.Now()
	return nil
}
