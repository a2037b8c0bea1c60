package backend

import (
	"context"
	"fmt"
	"time"

	"alloy-catalog/internal/catalog"
	"alloy-catalog/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// staticBackend implements Backend over the in-memory catalogue.
type staticBackend struct {
	store   *catalog.Store
	contact model.ContactInfo
	home    model.HomeData
	sink    InquirySink
	logger  zerolog.Logger
}

// StaticOptions configures the static backend.
type StaticOptions struct {
	Contact model.ContactInfo
	Home    *model.HomeData

	// Sink receives accepted inquiries. Nil accepts every order without
	// recording it.
	Sink InquirySink
}

// NewStatic creates a backend that answers from the given store.
func NewStatic(store *catalog.Store, opts StaticOptions, logger zerolog.Logger) Backend {
	home := model.DefaultHomeData()
	if opts.Home != nil {
		home = *opts.Home
	}
	return &staticBackend{
		store:   store,
		contact: opts.Contact,
		home:    home,
		sink:    opts.Sink,
		logger:  logger.With().Str("component", "static-backend").Logger(),
	}
}

func (b *staticBackend) Products(ctx context.Context) ([]model.Product, error) {
	return b.store.ListAll(), nil
}

func (b *staticBackend) ProductByID(ctx context.Context, id string) (*model.Product, error) {
	p, ok := b.store.FindByID(id)
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (b *staticBackend) ProductsByCategory(ctx context.Context, category model.Category) ([]model.Product, error) {
	return b.store.ListByCategory(category), nil
}

func (b *staticBackend) SearchProducts(ctx context.Context, query string) ([]model.Product, error) {
	return b.store.Search(query), nil
}

// SubmitOrder accepts the inquiry. With a sink configured the inquiry is
// recorded first and a sink failure is returned to the caller.
func (b *staticBackend) SubmitOrder(ctx context.Context, req *model.OrderRequest) (*model.OrderResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("order request is nil")
	}

	inquiry := &model.Inquiry{
		ID:        uuid.New(),
		Request:   *req,
		CreatedAt: time.Now().UTC(),
	}
	orderID := inquiry.ID.String()

	if b.sink != nil {
		if err := b.sink.Store(ctx, inquiry); err != nil {
			b.logger.Error().Err(err).Str("order_id", orderID).Msg("failed to record inquiry")
			return nil, fmt.Errorf("failed to record inquiry: %w", err)
		}
	}

	b.logger.Info().
		Str("order_id", orderID).
		Str("product_id", req.ProductID).
		Bool("recorded", b.sink != nil).
		Msg("order inquiry accepted")

	return &model.OrderResponse{
		Success: true,
		Message: model.MsgOrderAccepted,
		OrderID: &orderID,
	}, nil
}

func (b *staticBackend) ContactInfo(ctx context.Context) (*model.ContactInfo, error) {
	c := b.contact
	return &c, nil
}

func (b *staticBackend) HomeData(ctx context.Context) (*model.HomeData, error) {
	h := b.home
	return &h, nil
}
