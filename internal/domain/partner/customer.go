package partner

import (
	"strings"
	"time"

	"github.com/figurine/backend/internal/domain/shared"
)

// CustomerSource represents where a customer record originated
type CustomerSource string

const (
	CustomerSourceLocal      CustomerSource = "erp"
	CustomerSourceStorefront CustomerSource = "storefront"
)

// IsValid checks if the source is a valid CustomerSource
func (s CustomerSource) IsValid() bool {
	return s == CustomerSourceLocal || s == CustomerSourceStorefront
}

// Customer represents a buyer, either entered locally or imported from the
// storefront (in which case ExternalID is the idempotency key)
type Customer struct {
	shared.BaseEntity
	Name       string         `gorm:"size:255;not null"`
	Email      string         `gorm:"size:255"`
	Phone      string         `gorm:"size:50"`
	Address    string         `gorm:"size:500"`
	City       string         `gorm:"size:100"`
	PostalCode string         `gorm:"size:20"`
	Source     CustomerSource `gorm:"size:20;not null"`
	ExternalID *int64         `gorm:"index"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new locally-entered customer
func NewCustomer(name, email, phone, address, city, postalCode string) (*Customer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	return &Customer{
		BaseEntity: shared.NewBaseEntity(),
		Name:       strings.TrimSpace(name),
		Email:      email,
		Phone:      phone,
		Address:    address,
		City:       city,
		PostalCode: postalCode,
		Source:     CustomerSourceLocal,
	}, nil
}

// NewStorefrontCustomer creates a customer imported from the storefront.
// A zero externalID marks a guest checkout with no storefront account.
func NewStorefrontCustomer(name, email, phone, address, city, postalCode string, externalID int64) (*Customer, error) {
	if strings.TrimSpace(name) == "" {
		name = "Guest"
	}
	c := &Customer{
		BaseEntity: shared.NewBaseEntity(),
		Name:       strings.TrimSpace(name),
		Email:      email,
		Phone:      phone,
		Address:    address,
		City:       city,
		PostalCode: postalCode,
		Source:     CustomerSourceStorefront,
	}
	if externalID != 0 {
		c.ExternalID = &externalID
	}
	return c, nil
}

// Update replaces the customer's contact details
func (c *Customer) Update(name, email, phone, address, city, postalCode string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	c.Name = strings.TrimSpace(name)
	c.Email = email
	c.Phone = phone
	c.Address = address
	c.City = city
	c.PostalCode = postalCode
	c.UpdatedAt = time.Now()
	return nil
}
