package repository

import (
	"context"

	"alloy-catalog/internal/model"

	"github.com/google/uuid"
)

// InquiryRepository defines the interface for order inquiry storage.
type InquiryRepository interface {
	// EnsureSchema creates the inquiries table if it does not exist.
	EnsureSchema(ctx context.Context) error

	// Create inserts a new inquiry.
	Create(ctx context.Context, inquiry *model.Inquiry) error

	// GetByID retrieves an inquiry by its ID. Returns nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Inquiry, error)

	// ListRecent retrieves the newest inquiries first.
	ListRecent(ctx context.Context, limit int) ([]model.Inquiry, error)
}
