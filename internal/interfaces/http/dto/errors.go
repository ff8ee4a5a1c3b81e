package dto

import (
	"net/http"
	"strings"
)

// Error codes shared between the domain layer and the HTTP layer. Domain
// errors carry these codes verbatim; the tables below decide the status line.

// General error codes
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL_ERROR"
	// ErrCodeBadRequest is used for malformed requests (bad JSON, bad UUIDs)
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeInvalidInput is used for input that fails validation
	ErrCodeInvalidInput = "INVALID_INPUT"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeItemNotFound is used when an order line is not part of the order
	ErrCodeItemNotFound = "ITEM_NOT_FOUND"
	// ErrCodeAlreadyExists is used when creating a duplicate resource
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	// ErrCodeConflict is used for general resource conflicts
	ErrCodeConflict = "CONFLICT"
	// ErrCodeMethodInUse is used when deleting a payment method with payments
	ErrCodeMethodInUse = "METHOD_IN_USE"
	// ErrCodeCategoryInUse is used when deleting a category with products
	ErrCodeCategoryInUse = "CATEGORY_IN_USE"
)

// Business rule error codes
const (
	// ErrCodeInvalidState is used when an operation is invalid for the current state
	ErrCodeInvalidState = "INVALID_STATE"
	// ErrCodeLastItem is used when removing the only line of an order
	ErrCodeLastItem = "LAST_ITEM"
	// ErrCodePainterInactive is used when assigning work to a retired painter
	ErrCodePainterInactive = "PAINTER_INACTIVE"
	// ErrCodeProductInactive is used when ordering a delisted product
	ErrCodeProductInactive = "PRODUCT_INACTIVE"
	// ErrCodeDiscountReasonRequired is used when a discount lacks a reason
	ErrCodeDiscountReasonRequired = "DISCOUNT_REASON_REQUIRED"
	// ErrCodeInsufficientPaint is used when paint usage exceeds the remaining volume
	ErrCodeInsufficientPaint = "INSUFFICIENT_PAINT"
)

// Integration error codes
const (
	// ErrCodeNotLinked is used when a storefront operation targets an unlinked order
	ErrCodeNotLinked = "NOT_LINKED"
	// ErrCodeUpstreamFailure is used when the storefront API call fails
	ErrCodeUpstreamFailure = "UPSTREAM_FAILURE"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	// General errors
	ErrCodeInternal:     http.StatusInternalServerError,
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,

	// Resource errors
	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeItemNotFound:  http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,
	ErrCodeConflict:      http.StatusConflict,
	ErrCodeMethodInUse:   http.StatusConflict,
	ErrCodeCategoryInUse: http.StatusConflict,

	// Business rule errors -> 422 Unprocessable Entity
	ErrCodeInvalidState:           http.StatusUnprocessableEntity,
	ErrCodeLastItem:               http.StatusUnprocessableEntity,
	ErrCodePainterInactive:        http.StatusUnprocessableEntity,
	ErrCodeProductInactive:        http.StatusUnprocessableEntity,
	ErrCodeInsufficientPaint:      http.StatusUnprocessableEntity,
	ErrCodeDiscountReasonRequired: http.StatusBadRequest,

	// Integration errors
	ErrCodeNotLinked:       http.StatusUnprocessableEntity,
	ErrCodeUpstreamFailure: http.StatusBadGateway,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Field-level validation codes (INVALID_AMOUNT, INVALID_DISCOUNT and the
// rest of the INVALID_ family) fall through to 400; anything unknown is
// treated as an internal error.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
