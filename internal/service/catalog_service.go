package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"alloy-catalog/internal/backend"
	"alloy-catalog/internal/model"

	"github.com/rs/zerolog"
)

// Operation names reported to the Recorder.
const (
	OpProducts           = "products"
	OpProductsByCategory = "products_by_category"
	OpProduct            = "product"
	OpSearch             = "search"
	OpSubmitOrder        = "submit_order"
	OpContactInfo        = "contact_info"
	OpHomeData           = "home_data"
)

// CatalogService exposes catalogue reads and order submission as short
// state streams. Each stream yields Loading, then exactly one Success or
// Error, then closes.
type CatalogService interface {
	// Products streams every product in catalogue order.
	Products(ctx context.Context) <-chan Result[[]model.Product]

	// ProductsByCategory streams the products of one category.
	ProductsByCategory(ctx context.Context, category model.Category) <-chan Result[[]model.Product]

	// Product streams a single product; an unknown id ends in a not-found error.
	Product(ctx context.Context, id string) <-chan Result[model.Product]

	// Search streams products whose name or description contains query.
	Search(ctx context.Context, query string) <-chan Result[[]model.Product]

	// SubmitOrder streams the outcome of an order inquiry.
	SubmitOrder(ctx context.Context, req *model.OrderRequest) <-chan Result[bool]

	// PlaceOrder is SubmitOrder with the accepted response, including the
	// recorded order id when the backend assigns one.
	PlaceOrder(ctx context.Context, req *model.OrderRequest) <-chan Result[model.OrderResponse]

	// ContactInfo streams the manufacturer's contact details.
	ContactInfo(ctx context.Context) <-chan Result[model.ContactInfo]

	// HomeData streams the landing screen content.
	HomeData(ctx context.Context) <-chan Result[model.HomeData]
}

// Recorder observes finished queries.
type Recorder interface {
	ObserveQuery(operation, outcome string, duration time.Duration)
}

// catalogService implements CatalogService.
type catalogService struct {
	backend  backend.Backend
	recorder Recorder
	logger   zerolog.Logger
}

// NewCatalogService creates a new catalogue query service. recorder may be nil.
func NewCatalogService(b backend.Backend, recorder Recorder, logger zerolog.Logger) CatalogService {
	return &catalogService{
		backend:  b,
		recorder: recorder,
		logger:   logger.With().Str("service", "catalog").Logger(),
	}
}

func (s *catalogService) Products(ctx context.Context) <-chan Result[[]model.Product] {
	return execute(s, OpProducts, model.MsgLoadFailed, func() ([]model.Product, error) {
		return s.backend.Products(ctx)
	})
}

func (s *catalogService) ProductsByCategory(ctx context.Context, category model.Category) <-chan Result[[]model.Product] {
	return execute(s, OpProductsByCategory, model.MsgLoadFailed, func() ([]model.Product, error) {
		return s.backend.ProductsByCategory(ctx, category)
	})
}

func (s *catalogService) Product(ctx context.Context, id string) <-chan Result[model.Product] {
	return execute(s, OpProduct, model.MsgLoadFailed, func() (model.Product, error) {
		p, err := s.backend.ProductByID(ctx, id)
		if err != nil {
			return model.Product{}, err
		}
		if p == nil {
			s.logger.Debug().Str("product_id", id).Msg("product not found")
			return model.Product{}, model.ErrProductNotFound
		}
		return *p, nil
	})
}

func (s *catalogService) Search(ctx context.Context, query string) <-chan Result[[]model.Product] {
	return execute(s, OpSearch, model.MsgLoadFailed, func() ([]model.Product, error) {
		return s.backend.SearchProducts(ctx, query)
	})
}

func (s *catalogService) SubmitOrder(ctx context.Context, req *model.OrderRequest) <-chan Result[bool] {
	return execute(s, OpSubmitOrder, model.MsgOrderFailed, func() (bool, error) {
		if _, err := s.placeOrder(ctx, req); err != nil {
			return false, err
		}
		return true, nil
	})
}

func (s *catalogService) PlaceOrder(ctx context.Context, req *model.OrderRequest) <-chan Result[model.OrderResponse] {
	return execute(s, OpSubmitOrder, model.MsgOrderFailed, func() (model.OrderResponse, error) {
		resp, err := s.placeOrder(ctx, req)
		if err != nil {
			return model.OrderResponse{}, err
		}
		return *resp, nil
	})
}

func (s *catalogService) placeOrder(ctx context.Context, req *model.OrderRequest) (*model.OrderResponse, error) {
	resp, err := s.backend.SubmitOrder(ctx, req)
	if err != nil {
		return nil, err
	}
	if resp == nil || !resp.Success {
		message := model.MsgOrderFailed
		if resp != nil && resp.Message != "" {
			message = resp.Message
		}
		return nil, model.NewDomainError(model.ErrCodeOrderRejected, message)
	}
	if resp.Message == "" {
		resp.Message = model.MsgOrderAccepted
	}
	return resp, nil
}

func (s *catalogService) ContactInfo(ctx context.Context) <-chan Result[model.ContactInfo] {
	return execute(s, OpContactInfo, model.MsgLoadFailed, func() (model.ContactInfo, error) {
		c, err := s.backend.ContactInfo(ctx)
		if err != nil {
			return model.ContactInfo{}, err
		}
		if c == nil {
			return model.ContactInfo{}, errors.New(model.MsgLoadFailed)
		}
		return *c, nil
	})
}

func (s *catalogService) HomeData(ctx context.Context) <-chan Result[model.HomeData] {
	return execute(s, OpHomeData, model.MsgLoadFailed, func() (model.HomeData, error) {
		h, err := s.backend.HomeData(ctx)
		if err != nil {
			return model.HomeData{}, err
		}
		if h == nil {
			return model.HomeData{}, errors.New(model.MsgLoadFailed)
		}
		return *h, nil
	})
}

// execute runs fn on its own goroutine and streams Loading followed by the
// terminal state. The channel holds both emissions, so the producer never
// blocks on a consumer that stopped listening.
func execute[T any](s *catalogService, op, fallback string, fn func() (T, error)) <-chan Result[T] {
	out := make(chan Result[T], 2)
	out <- Loading[T]()

	go func() {
		defer close(out)

		start := time.Now()
		result := invokeResult(s, op, fallback, fn)
		duration := time.Since(start)

		if s.recorder != nil {
			s.recorder.ObserveQuery(op, result.Outcome(), duration)
		}

		out <- result
	}()

	return out
}

func invokeResult[T any](s *catalogService, op, fallback string, fn func() (T, error)) (result Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().
				Interface("panic", r).
				Str("operation", op).
				Msg("query panicked")
			result = Failure[T](panicError(r, fallback))
		}
	}()

	value, err := fn()
	if err == nil {
		return Success(value)
	}

	if errors.Is(err, model.ErrProductNotFound) {
		return Failure[T](&QueryError{Kind: KindNotFound, Message: model.MsgProductNotFound, Err: err})
	}

	s.logger.Error().Err(err).Str("operation", op).Msg("query failed")

	message := err.Error()
	if message == "" {
		message = fallback
	}
	return Failure[T](&QueryError{Kind: KindFault, Message: message, Err: err})
}

func panicError(r any, fallback string) *QueryError {
	switch v := r.(type) {
	case error:
		if v.Error() != "" {
			return &QueryError{Kind: KindFault, Message: v.Error(), Err: v}
		}
	case string:
		if v != "" {
			return &QueryError{Kind: KindFault, Message: v, Err: errors.New(v)}
		}
	}
	return &QueryError{Kind: KindFault, Message: fallback, Err: fmt.Errorf("panic: %v", r)}
}
