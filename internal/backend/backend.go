// Package backend defines the operation surface of the catalogue backend.
// The static implementation answers from the in-memory catalogue; the
// remote implementation lives in package client.
package backend

import (
	"context"

	"alloy-catalog/internal/model"
)

// Backend is the catalogue backend as seen by the query service.
type Backend interface {
	// Products returns every product in catalogue order.
	Products(ctx context.Context) ([]model.Product, error)

	// ProductByID returns the product or nil when no product has that id.
	ProductByID(ctx context.Context, id string) (*model.Product, error)

	// ProductsByCategory returns products of one category in catalogue order.
	ProductsByCategory(ctx context.Context, category model.Category) ([]model.Product, error)

	// SearchProducts matches query against product names and descriptions.
	SearchProducts(ctx context.Context, query string) ([]model.Product, error)

	// SubmitOrder delivers a customer inquiry.
	SubmitOrder(ctx context.Context, req *model.OrderRequest) (*model.OrderResponse, error)

	// ContactInfo returns the manufacturer's contact details.
	ContactInfo(ctx context.Context) (*model.ContactInfo, error)

	// HomeData returns the landing screen content.
	HomeData(ctx context.Context) (*model.HomeData, error)
}

// InquirySink records accepted order inquiries.
type InquirySink interface {
	Store(ctx context.Context, inquiry *model.Inquiry) error
}
