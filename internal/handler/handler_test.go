package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"alloy-catalog/internal/model"
	"alloy-catalog/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCatalogService is a mock implementation of service.CatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Products(ctx context.Context) <-chan service.Result[[]model.Product] {
	args := m.Called(ctx)
	return args.Get(0).(<-chan service.Result[[]model.Product])
}

func (m *MockCatalogService) ProductsByCategory(ctx context.Context, category model.Category) <-chan service.Result[[]model.Product] {
	args := m.Called(ctx, category)
	return args.Get(0).(<-chan service.Result[[]model.Product])
}

func (m *MockCatalogService) Product(ctx context.Context, id string) <-chan service.Result[model.Product] {
	args := m.Called(ctx, id)
	return args.Get(0).(<-chan service.Result[model.Product])
}

func (m *MockCatalogService) Search(ctx context.Context, query string) <-chan service.Result[[]model.Product] {
	args := m.Called(ctx, query)
	return args.Get(0).(<-chan service.Result[[]model.Product])
}

func (m *MockCatalogService) SubmitOrder(ctx context.Context, req *model.OrderRequest) <-chan service.Result[bool] {
	args := m.Called(ctx, req)
	return args.Get(0).(<-chan service.Result[bool])
}

func (m *MockCatalogService) PlaceOrder(ctx context.Context, req *model.OrderRequest) <-chan service.Result[model.OrderResponse] {
	args := m.Called(ctx, req)
	return args.Get(0).(<-chan service.Result[model.OrderResponse])
}

func (m *MockCatalogService) ContactInfo(ctx context.Context) <-chan service.Result[model.ContactInfo] {
	args := m.Called(ctx)
	return args.Get(0).(<-chan service.Result[model.ContactInfo])
}

func (m *MockCatalogService) HomeData(ctx context.Context) <-chan service.Result[model.HomeData] {
	args := m.Called(ctx)
	return args.Get(0).(<-chan service.Result[model.HomeData])
}

// stream builds a closed state stream: Loading followed by terminal.
func stream[T any](terminal service.Result[T]) <-chan service.Result[T] {
	ch := make(chan service.Result[T], 2)
	ch <- service.Loading[T]()
	ch <- terminal
	close(ch)
	return ch
}

func notFound[T any]() service.Result[T] {
	return service.Failure[T](&service.QueryError{
		Kind:    service.KindNotFound,
		Message: model.MsgProductNotFound,
		Err:     model.ErrProductNotFound,
	})
}

func fault[T any](err error) service.Result[T] {
	return service.Failure[T](&service.QueryError{Kind: service.KindFault, Message: err.Error(), Err: err})
}

// serve routes req through a chi router so URL params resolve.
func serve(pattern string, h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Method(req.Method, pattern, h)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) model.ErrorResponse {
	t.Helper()
	var body model.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

var testProducts = []model.Product{
	{ID: "6", Name: "Сплавы на никелевой основе", Category: model.CategoryNickelBase, Alloys: []string{"ХН78Т"}},
	{ID: "10", Name: "Нихромовая проволока", Category: model.CategoryNichromeWire, Alloys: []string{"Х20Н80", "Х15Н60"}},
}

func TestProductHandler_GetAll(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		result         service.Result[[]model.Product]
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Success",
			result:         service.Success(testProducts),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Empty catalogue",
			result:         service.Success([]model.Product{}),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Backend fault",
			result:         fault[[]model.Product](errors.New("connection refused")),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   model.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockCatalogService)
			svc.On("Products", mock.Anything).Return(stream(tt.result))

			h := NewProductHandler(svc, logger)
			rec := serve("/api/products", h.GetAll, httptest.NewRequest(http.MethodGet, "/api/products", nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			if tt.expectedCode != "" {
				body := decodeError(t, rec)
				assert.Equal(t, tt.expectedCode, body.Error)
				assert.Equal(t, "connection refused", body.Message)
			} else {
				want, _ := tt.result.Value()
				var got []model.Product
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, want, got)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestProductHandler_GetByID(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		id             string
		result         service.Result[model.Product]
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Product exists",
			id:             "10",
			result:         service.Success(testProducts[1]),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Product not found",
			id:             "999",
			result:         notFound[model.Product](),
			expectedStatus: http.StatusNotFound,
			expectedCode:   model.ErrCodeProductNotFound,
		},
		{
			name:           "Backend fault",
			id:             "1",
			result:         fault[model.Product](errors.New("timeout")),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   model.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockCatalogService)
			svc.On("Product", mock.Anything, tt.id).Return(stream(tt.result))

			h := NewProductHandler(svc, logger)
			rec := serve("/api/products/{id}", h.GetByID, httptest.NewRequest(http.MethodGet, "/api/products/"+tt.id, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeError(t, rec).Error)
				return
			}

			var got model.Product
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, testProducts[1], got)
		})
	}

	t.Run("Not found message", func(t *testing.T) {
		svc := new(MockCatalogService)
		svc.On("Product", mock.Anything, "999").Return(stream(notFound[model.Product]()))

		h := NewProductHandler(svc, logger)
		rec := serve("/api/products/{id}", h.GetByID, httptest.NewRequest(http.MethodGet, "/api/products/999", nil))

		assert.Equal(t, model.MsgProductNotFound, decodeError(t, rec).Message)
	})
}

func TestProductHandler_ByCategory(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Valid category in any case", func(t *testing.T) {
		svc := new(MockCatalogService)
		svc.On("ProductsByCategory", mock.Anything, model.CategoryNichromeWire).
			Return(stream(service.Success(testProducts[1:])))

		h := NewProductHandler(svc, logger)
		rec := serve("/api/products/category/{category}", h.ByCategory,
			httptest.NewRequest(http.MethodGet, "/api/products/category/nichrome-wire", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		var got []model.Product
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "10", got[0].ID)
		svc.AssertExpectations(t)
	})

	t.Run("Unknown category", func(t *testing.T) {
		svc := new(MockCatalogService)
		svc.On("ProductsByCategory", mock.Anything, model.Category("TITANIUM")).
			Return(stream(service.Success([]model.Product{})))

		h := NewProductHandler(svc, logger)
		rec := serve("/api/products/category/{category}", h.ByCategory,
			httptest.NewRequest(http.MethodGet, "/api/products/category/TITANIUM", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
		svc.AssertExpectations(t)
	})
}

func TestProductHandler_Search(t *testing.T) {
	svc := new(MockCatalogService)
	svc.On("Search", mock.Anything, "нихром").Return(stream(service.Success(testProducts[1:])))

	h := NewProductHandler(svc, zerolog.Nop())
	rec := serve("/api/products/search", h.Search,
		httptest.NewRequest(http.MethodGet, "/api/products/search?q=%D0%BD%D0%B8%D1%85%D1%80%D0%BE%D0%BC", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var got []model.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 1)
	svc.AssertExpectations(t)
}

func TestOrderHandler_Create(t *testing.T) {
	logger := zerolog.Nop()

	validBody := `{"name":"Иван Петров","phone":"+7 912 345-67-89","email":"ivan@example.com","productId":"10","alloy":"Х20Н80"}`
	orderID := "5b0c7d4e-8f1a-4c2b-9d3e-6a7b8c9d0e1f"

	tests := []struct {
		name           string
		body           string
		result         *service.Result[model.OrderResponse]
		expectedStatus int
		expectedCode   string
		expectedFields []string
	}{
		{
			name:           "Accepted",
			body:           validBody,
			result: ptr(service.Success(model.OrderResponse{
				Success: true,
				Message: model.MsgOrderAccepted,
				OrderID: &orderID,
			})),
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Invalid JSON",
			body:           `{"name":`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidJSON,
		},
		{
			name:           "Invalid fields",
			body:           `{"name":"Ivan2","phone":"123","email":"not-an-email"}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeValidation,
			expectedFields: []string{"email", "name", "phone"},
		},
		{
			name:           "Missing required fields",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeValidation,
			expectedFields: []string{"name", "phone"},
		},
		{
			name: "Rejected by backend",
			body: validBody,
			result: ptr(service.Failure[model.OrderResponse](&service.QueryError{
				Kind:    service.KindFault,
				Message: model.MsgOrderFailed,
				Err:     model.NewDomainError(model.ErrCodeOrderRejected, model.MsgOrderFailed),
			})),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   model.ErrCodeOrderRejected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockCatalogService)
			if tt.result != nil {
				svc.On("PlaceOrder", mock.Anything, mock.AnythingOfType("*model.OrderRequest")).Return(stream(*tt.result))
			}

			h := NewOrderHandler(svc, logger)
			req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := serve("/api/orders", h.Create, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedCode != "" {
				body := decodeError(t, rec)
				assert.Equal(t, tt.expectedCode, body.Error)
				for _, f := range tt.expectedFields {
					assert.Contains(t, body.Fields, f)
				}
				if tt.expectedFields != nil {
					assert.Len(t, body.Fields, len(tt.expectedFields))
				}
			} else {
				var resp model.OrderResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.True(t, resp.Success)
				assert.Equal(t, model.MsgOrderAccepted, resp.Message)
				require.NotNil(t, resp.OrderID)
				assert.Equal(t, orderID, *resp.OrderID)
			}

			if tt.result == nil {
				svc.AssertNotCalled(t, "PlaceOrder", mock.Anything, mock.Anything)
			} else {
				svc.AssertExpectations(t)
			}
		})
	}
}

func TestInfoHandler(t *testing.T) {
	logger := zerolog.Nop()
	contact := model.ContactInfo{Email: "info@example.ru", Address: "Мценск"}

	svc := new(MockCatalogService)
	svc.On("ContactInfo", mock.Anything).Return(stream(service.Success(contact)))
	svc.On("HomeData", mock.Anything).Return(stream(service.Success(model.DefaultHomeData())))

	h := NewInfoHandler(svc, logger)

	t.Run("Contacts", func(t *testing.T) {
		rec := serve("/api/contacts", h.Contacts, httptest.NewRequest(http.MethodGet, "/api/contacts", nil))
		assert.Equal(t, http.StatusOK, rec.Code)

		var got model.ContactInfo
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, contact, got)
	})

	t.Run("Home", func(t *testing.T) {
		rec := serve("/api/home", h.Home, httptest.NewRequest(http.MethodGet, "/api/home", nil))
		assert.Equal(t, http.StatusOK, rec.Code)

		var got model.HomeData
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, model.DefaultHomeData(), got)
	})
}

func TestRespond_CancelledRequest(t *testing.T) {
	svc := new(MockCatalogService)
	// A stream that never reaches a terminal state.
	pending := make(chan service.Result[[]model.Product], 1)
	pending <- service.Loading[[]model.Product]()
	svc.On("Products", mock.Anything).Return((<-chan service.Result[[]model.Product])(pending))

	h := NewProductHandler(svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil).WithContext(ctx)
	rec := serve("/api/products", h.GetAll, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, model.ErrCodeInternalError, decodeError(t, rec).Error)
}

func ptr[T any](v T) *T { return &v }
