package storefront

import (
	"time"

	"github.com/shopspring/decimal"
)

// wireCustomer is a customer record on the wire
type wireCustomer struct {
	ID        int64       `json:"id"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Email     string      `json:"email"`
	Billing   wireAddress `json:"billing"`
}

// wireAddress is a billing or shipping address block on the wire
type wireAddress struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Address1   string `json:"address_1"`
	City       string `json:"city"`
	PostalCode string `json:"postcode"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

// wireProduct is a product record on the wire. Prices arrive as strings.
type wireProduct struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Status      string `json:"status"`
}

// wireLineItem is an order line item on the wire
type wireLineItem struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
	Total     string `json:"total"`
}

// wireOrder is an order record on the wire
type wireOrder struct {
	ID           int64          `json:"id"`
	CustomerID   int64          `json:"customer_id"`
	Status       string         `json:"status"`
	DateCreated  string         `json:"date_created"`
	Total        string         `json:"total"`
	CustomerNote string         `json:"customer_note"`
	Billing      wireAddress    `json:"billing"`
	LineItems    []wireLineItem `json:"line_items"`
}

// statusUpdateRequest is the body of an order status push
type statusUpdateRequest struct {
	Status string `json:"status"`
}

// parsePrice parses a wire price string, treating blank and malformed
// values as zero. Storefronts report empty prices for draft products.
func parsePrice(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// parseWireDate parses the storefront's ISO timestamp, which omits the zone
func parseWireDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}
