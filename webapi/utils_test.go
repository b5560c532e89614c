package webapi

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/novabank/accounts/pkg/domain"
	"github.com/novabank/accounts/pkg/domain/account"
	"github.com/novabank/accounts/pkg/domain/customer"
	"github.com/stretchr/testify/assert"
)

func TestErrorToStatusCode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{"customer not found", customer.ErrCustomerNotFound, fiber.StatusNotFound},
		{"customer already exists", customer.ErrCustomerAlreadyExists, fiber.StatusBadRequest},
		{"invalid mobile number", customer.ErrInvalidMobileNumber, fiber.StatusBadRequest},
		{"invalid account number", account.ErrInvalidAccountNumber, fiber.StatusBadRequest},
		{"validation error", domain.ErrValidation, fiber.StatusBadRequest},
		{"wrapped customer not found", fmt.Errorf("fetch: %w", customer.ErrCustomerNotFound), fiber.StatusNotFound},
		{"integrity error stays 500", account.ErrAccountRecordMissing, fiber.StatusInternalServerError},
		{"unknown error", errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, ErrorToStatusCode(tt.input))
		})
	}
}
