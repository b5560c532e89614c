package dto

import (
	"time"

	"github.com/google/uuid"
)

// CustomerCreate is a DTO for persisting a new customer.
type CustomerCreate struct {
	ID           uuid.UUID
	Name         string
	Email        string
	MobileNumber string
}

// CustomerRead is a read-optimized DTO for customer queries.
type CustomerRead struct {
	ID           uuid.UUID
	Name         string
	Email        string
	MobileNumber string
	CreatedAt    time.Time
	CreatedBy    string
	UpdatedAt    time.Time
	UpdatedBy    string
}

// CustomerUpdate is a DTO for updating one or more mutable customer fields.
// Nil fields are left untouched.
type CustomerUpdate struct {
	Name         *string
	Email        *string
	MobileNumber *string
}
