package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSortOrder(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultDir string
		want       string
	}{
		{"lowercase asc", "asc", "DESC", "ASC"},
		{"uppercase desc", "DESC", "ASC", "DESC"},
		{"padded", "  Asc ", "DESC", "ASC"},
		{"empty falls back", "", "ASC", "ASC"},
		{"garbage falls back", "ascending; --", "DESC", "DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateSortOrder(tt.input, tt.defaultDir))
		})
	}
}

func TestValidateSortField(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"whitelisted field", "order_number", "order_number"},
		{"empty falls back", "", "order_date"},
		{"unknown column falls back", "secret_column", "order_date"},
		{"injection attempt falls back", "order_number; DROP TABLE orders", "order_date"},
		{"subquery falls back", "(SELECT 1)", "order_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateSortField(tt.input, OrderSortFields, "order_date"))
		})
	}
}
