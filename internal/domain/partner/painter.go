package partner

import (
	"strings"
	"time"

	"github.com/figurine/backend/internal/domain/shared"
)

// Painter represents a painter who can be assigned to orders
type Painter struct {
	shared.BaseEntity
	Name     string `gorm:"size:255;not null"`
	Email    string `gorm:"size:255"`
	Phone    string `gorm:"size:50"`
	IsActive bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Painter) TableName() string {
	return "painters"
}

// NewPainter creates a new active painter
func NewPainter(name, email, phone string) (*Painter, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Painter name cannot be empty")
	}
	return &Painter{
		BaseEntity: shared.NewBaseEntity(),
		Name:       strings.TrimSpace(name),
		Email:      email,
		Phone:      phone,
		IsActive:   true,
	}, nil
}

// Update replaces the painter's contact details
func (p *Painter) Update(name, email, phone string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Painter name cannot be empty")
	}
	p.Name = strings.TrimSpace(name)
	p.Email = email
	p.Phone = phone
	p.UpdatedAt = time.Now()
	return nil
}

// SetActive toggles whether the painter can take new assignments
func (p *Painter) SetActive(active bool) {
	p.IsActive = active
	p.UpdatedAt = time.Now()
}
