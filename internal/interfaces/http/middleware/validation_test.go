package middleware

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validatedPayload struct {
	Name   string `json:"name" binding:"required,min=2"`
	Email  string `json:"email" binding:"omitempty,email"`
	Source string `json:"source" binding:"omitempty,oneof=website custom other"`
}

func TestFormatValidationErrors_UsesJSONFieldNames(t *testing.T) {
	SetupValidator()

	err := binding.Validator.ValidateStruct(&validatedPayload{Name: "", Email: "nope"})
	require.Error(t, err)

	resp := FormatValidationErrors(err, "req-9")

	assert.False(t, resp.Success)
	assert.Equal(t, "req-9", resp.Error.RequestID)
	require.Len(t, resp.Error.Details, 2)
	assert.Equal(t, "name", resp.Error.Details[0].Field)
	assert.Equal(t, "This field is required", resp.Error.Details[0].Message)
	assert.Equal(t, "email", resp.Error.Details[1].Field)
	assert.Equal(t, "Invalid email format", resp.Error.Details[1].Message)
}

func TestGetValidationMessage(t *testing.T) {
	SetupValidator()

	err := binding.Validator.ValidateStruct(&validatedPayload{Name: "ok", Source: "teleported"})
	require.Error(t, err)

	verrs, ok := err.(validator.ValidationErrors)
	require.True(t, ok)
	require.Len(t, verrs, 1)
	assert.Equal(t, "Must be one of: website custom other", getValidationMessage(verrs[0]))
}
