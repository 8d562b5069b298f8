package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type registerPayload struct {
	Username string `validate:"required,min=3,max=50"`
	Password string `validate:"required,min=6,max=100"`
	Email    string `validate:"required,email,max=100"`
	Role     string `validate:"omitempty,oneof=admin manager cashier"`
}

func TestValidateStructPasses(t *testing.T) {
	errs := ValidateStruct(registerPayload{
		Username: "budi",
		Password: "secret123",
		Email:    "budi@example.com",
		Role:     "cashier",
	})
	assert.Nil(t, errs)
}

func TestValidateStructCollectsFieldErrors(t *testing.T) {
	errs := ValidateStruct(registerPayload{
		Username: "ab",
		Password: "short",
		Email:    "not-an-email",
		Role:     "superuser",
	})

	assert.Equal(t, "Minimum length is 3", errs["Username"])
	assert.Equal(t, "Minimum length is 6", errs["Password"])
	assert.Equal(t, "Invalid email format", errs["Email"])
	assert.Equal(t, "Must be one of: admin, manager, cashier", errs["Role"])
}

func TestValidateStructRequired(t *testing.T) {
	errs := ValidateStruct(registerPayload{})

	assert.Equal(t, "This field is required", errs["Username"])
	assert.Equal(t, "This field is required", errs["Email"])
	// Role is optional; empty is fine.
	assert.NotContains(t, errs, "Role")
}
