package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"alloy-catalog/internal/backend"
	"alloy-catalog/internal/catalog"
	"alloy-catalog/internal/client"
	"alloy-catalog/internal/handler"
	"alloy-catalog/internal/metrics"
	"alloy-catalog/internal/model"
	"alloy-catalog/internal/service"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, opts Options) http.Handler {
	t.Helper()

	logger := zerolog.Nop()
	b := backend.NewStatic(catalog.Default(), backend.StaticOptions{
		Contact: model.ContactInfo{Email: "info@mzenskprokat.ru"},
	}, logger)

	var recorder service.Recorder
	if opts.Metrics != nil {
		recorder = opts.Metrics
	}
	svc := service.NewCatalogService(b, recorder, logger)

	return New(Handlers{
		Products: handler.NewProductHandler(svc, logger),
		Orders:   handler.NewOrderHandler(svc, logger),
		Info:     handler.NewInfoHandler(svc, logger),
	}, opts, logger)
}

func do(h http.Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_CatalogRoutes(t *testing.T) {
	h := newTestRouter(t, Options{})

	tests := []struct {
		name           string
		target         string
		expectedStatus int
		expectedLen    int
	}{
		{name: "All products", target: "/api/products", expectedStatus: http.StatusOK, expectedLen: 10},
		{name: "All products trailing slash", target: "/api/products/", expectedStatus: http.StatusOK, expectedLen: 10},
		{name: "By category", target: "/api/products/category/NICHROME_WIRE", expectedStatus: http.StatusOK, expectedLen: 1},
		{name: "Search", target: "/api/products/search?q=%D0%BD%D0%B8%D1%85%D1%80%D0%BE%D0%BC", expectedStatus: http.StatusOK, expectedLen: 1},
		{name: "Blank search", target: "/api/products/search?q=", expectedStatus: http.StatusOK, expectedLen: 0},
		{name: "Unknown category", target: "/api/products/category/UNKNOWN", expectedStatus: http.StatusOK, expectedLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(h, http.MethodGet, tt.target, "", nil)

			require.Equal(t, tt.expectedStatus, rec.Code, rec.Body.String())
			assert.NotEmpty(t, rec.Header().Get("Content-Type"))

			if tt.expectedStatus == http.StatusOK {
				var got []model.Product
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.NotNil(t, got)
				assert.Len(t, got, tt.expectedLen)
			}
		})
	}
}

func TestRouter_ProductByID(t *testing.T) {
	h := newTestRouter(t, Options{})

	t.Run("Found", func(t *testing.T) {
		rec := do(h, http.MethodGet, "/api/products/7", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var p model.Product
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
		assert.Equal(t, "7", p.ID)
		assert.Contains(t, p.Name, "упругих элементов")
	})

	t.Run("Not found", func(t *testing.T) {
		rec := do(h, http.MethodGet, "/api/products/999", "", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)

		var body model.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, model.ErrCodeProductNotFound, body.Error)
		assert.Equal(t, model.MsgProductNotFound, body.Message)
		assert.NotEmpty(t, body.RequestID)
	})
}

func TestRouter_OrdersAndInfo(t *testing.T) {
	h := newTestRouter(t, Options{})

	rec := do(h, http.MethodPost, "/api/orders",
		`{"name":"Иван","phone":"8 (912) 345-67-89"}`,
		map[string]string{"Content-Type": "application/json"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp model.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.OrderID)
	_, err := uuid.Parse(*resp.OrderID)
	assert.NoError(t, err)

	rec = do(h, http.MethodGet, "/api/contacts", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "info@mzenskprokat.ru")

	rec = do(h, http.MethodGet, "/api/home", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Мценскпрокат")

	rec = do(h, http.MethodGet, "/api/orders", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), model.ErrCodeMethodNotAllowed)

	rec = do(h, http.MethodGet, "/api/alloys", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), model.ErrCodeNotFound)
}

func TestRouter_APIKey(t *testing.T) {
	h := newTestRouter(t, Options{APIKey: "secret"})

	tests := []struct {
		name           string
		target         string
		headers        map[string]string
		expectedStatus int
	}{
		{name: "Missing key", target: "/api/products", expectedStatus: http.StatusUnauthorized},
		{name: "Wrong key", target: "/api/products", headers: map[string]string{"X-API-Key": "nope"}, expectedStatus: http.StatusUnauthorized},
		{name: "Valid key", target: "/api/products", headers: map[string]string{"X-API-Key": "secret"}, expectedStatus: http.StatusOK},
		{name: "Health is public", target: "/health", expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(h, http.MethodGet, tt.target, "", tt.headers)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}

	t.Run("Preflight needs no key", func(t *testing.T) {
		rec := do(h, http.MethodOptions, "/api/orders", "", nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestRouter_Health(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		h := newTestRouter(t, Options{Health: func(context.Context) error { return nil }})
		rec := do(h, http.MethodGet, "/health", "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
	})

	t.Run("Unhealthy", func(t *testing.T) {
		h := newTestRouter(t, Options{Health: func(context.Context) error { return errors.New("db down") }})
		rec := do(h, http.MethodGet, "/health", "", nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.JSONEq(t, `{"status":"unhealthy"}`, rec.Body.String())
	})
}

func TestRouter_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	h := newTestRouter(t, Options{Metrics: m, Gatherer: reg})

	do(h, http.MethodGet, "/api/products/1", "", nil)
	do(h, http.MethodGet, "/api/products/999", "", nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues("GET", "/api/products/{id}", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues("GET", "/api/products/{id}", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Queries.WithLabelValues(service.OpProduct, "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Queries.WithLabelValues(service.OpProduct, "not_found")))

	rec := do(h, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "alloy_catalog_http_requests_total")
}

func TestRouter_InquiriesRequireKey(t *testing.T) {
	logger := zerolog.Nop()
	svc := service.NewCatalogService(backend.NewStatic(catalog.Default(), backend.StaticOptions{}, logger), nil, logger)
	handlers := Handlers{
		Products:  handler.NewProductHandler(svc, logger),
		Orders:    handler.NewOrderHandler(svc, logger),
		Info:      handler.NewInfoHandler(svc, logger),
		Inquiries: handler.NewInquiryHandler(nil, logger),
	}

	h := New(handlers, Options{}, logger)
	rec := do(h, http.MethodGet, "/api/inquiries", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_RemoteBackendMatchesStatic(t *testing.T) {
	logger := zerolog.Nop()
	srv := httptest.NewServer(newTestRouter(t, Options{}))
	t.Cleanup(srv.Close)

	c, err := client.New(client.Config{BaseURL: srv.URL, Timeout: 2 * time.Second}, logger)
	require.NoError(t, err)

	remote := service.NewCatalogService(c, nil, logger)
	local := service.NewCatalogService(backend.NewStatic(catalog.Default(), backend.StaticOptions{}, logger), nil, logger)

	categories := []model.Category{
		model.CategoryNichromeWire,
		model.CategoryMagneticSoft,
		model.Category("BOGUS"),
	}

	for _, category := range categories {
		t.Run("category "+string(category), func(t *testing.T) {
			ctx := context.Background()
			want := service.Await(ctx, local.ProductsByCategory(ctx, category))
			got := service.Await(ctx, remote.ProductsByCategory(ctx, category))

			require.Equal(t, service.StateSuccess, got.State(), "remote outcome %s", got.Outcome())
			assert.Equal(t, want.State(), got.State())

			wantProducts, _ := want.Value()
			gotProducts, _ := got.Value()
			assert.NotNil(t, gotProducts)
			assert.Equal(t, wantProducts, gotProducts)
		})
	}
}
