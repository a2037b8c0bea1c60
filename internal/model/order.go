package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderRequest is a customer inquiry submitted from the contact form.
// Field rules are checked by package validation before submission.
type OrderRequest struct {
	Name      string `json:"name" validate:"required,person_name"`
	Company   string `json:"company,omitempty"`
	Phone     string `json:"phone" validate:"required,phone"`
	Email     string `json:"email,omitempty" validate:"omitempty,contact_email"`
	ProductID string `json:"productId,omitempty"`
	Alloy     string `json:"alloy,omitempty"`
	Quantity  string `json:"quantity,omitempty"`
	Comment   string `json:"comment,omitempty"`
}

// OrderResponse is the envelope returned for an order submission.
type OrderResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	OrderID *string `json:"orderId,omitempty"`
}

// Inquiry is an accepted order request as it is recorded.
type Inquiry struct {
	ID        uuid.UUID    `json:"id" db:"id"`
	Request   OrderRequest `json:"request"`
	CreatedAt time.Time    `json:"createdAt" db:"created_at"`
}
