// Package client implements backend.Backend over the catalogue REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"alloy-catalog/internal/backend"
	"alloy-catalog/internal/model"

	"github.com/rs/zerolog"
)

var (
	ErrNotFound    = errors.New("catalog resource not found")
	ErrBadStatus   = errors.New("catalog bad status")
	ErrUnavailable = errors.New("catalog unavailable")
)

const (
	defaultTimeout = 30 * time.Second
	maxErrorBody   = 4 << 10
)

// Config configures the REST client.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client calls the catalogue REST API.
type Client struct {
	baseURL *url.URL
	apiKey  string
	http    *http.Client
	logger  zerolog.Logger
}

var _ backend.Backend = (*Client)(nil)

// New creates a client for the API rooted at cfg.BaseURL.
func New(cfg Config, logger zerolog.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(cfg.BaseURL))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: scheme and host are required", cfg.BaseURL)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL: u,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: timeout},
		logger:  logger.With().Str("component", "catalog-client").Str("base_url", u.String()).Logger(),
	}, nil
}

func (c *Client) Products(ctx context.Context) ([]model.Product, error) {
	var out []model.Product
	if err := c.get(ctx, "api/products", nil, &out); err != nil {
		return nil, err
	}
	return nonNil(out), nil
}

// ProductByID returns nil without error when the API answers 404.
func (c *Client) ProductByID(ctx context.Context, id string) (*model.Product, error) {
	var out model.Product
	err := c.get(ctx, "api/products/"+url.PathEscape(id), nil, &out)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ProductsByCategory(ctx context.Context, category model.Category) ([]model.Product, error) {
	var out []model.Product
	err := c.get(ctx, "api/products/category/"+url.PathEscape(string(category)), nil, &out)
	if errors.Is(err, ErrNotFound) || isDomainCode(err, model.ErrCodeInvalidCategory) {
		return []model.Product{}, nil
	}
	if err != nil {
		return nil, err
	}
	return nonNil(out), nil
}

func (c *Client) SearchProducts(ctx context.Context, query string) ([]model.Product, error) {
	var out []model.Product
	if err := c.get(ctx, "api/products/search", url.Values{"q": {query}}, &out); err != nil {
		return nil, err
	}
	return nonNil(out), nil
}

func (c *Client) SubmitOrder(ctx context.Context, req *model.OrderRequest) (*model.OrderResponse, error) {
	if req == nil {
		return nil, errors.New("order request is nil")
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode order: %w", err)
	}

	var out model.OrderResponse
	if err := c.do(ctx, http.MethodPost, "api/orders", nil, bytes.NewReader(body), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ContactInfo(ctx context.Context) (*model.ContactInfo, error) {
	var out model.ContactInfo
	if err := c.get(ctx, "api/contacts", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// HomeData falls back to the built-in landing content when the API does
// not serve it.
func (c *Client) HomeData(ctx context.Context) (*model.HomeData, error) {
	var out model.HomeData
	err := c.get(ctx, "api/home", nil, &out)
	if errors.Is(err, ErrNotFound) {
		home := model.DefaultHomeData()
		return &home, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, out any) error {
	u := c.baseURL.JoinPath(path)
	if query != nil {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Str("method", method).Str("path", path).Msg("catalog request failed")
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%w: %w", ErrUnavailable, ctxErr)
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("catalog request")

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
	case resp.StatusCode == http.StatusNotFound:
		_, _ = io.Copy(io.Discard, resp.Body)
		return ErrNotFound
	default:
		return statusError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

// statusError reads the error envelope, when present, into the returned error.
func statusError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var envelope model.ErrorResponse
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error != "" {
		return fmt.Errorf("%w: status=%d: %w", ErrBadStatus, resp.StatusCode,
			model.NewDomainError(envelope.Error, envelope.Message))
	}
	return fmt.Errorf("%w: status=%d", ErrBadStatus, resp.StatusCode)
}

func isDomainCode(err error, code string) bool {
	var de *model.DomainError
	return errors.As(err, &de) && de.Code == code
}

func nonNil(products []model.Product) []model.Product {
	if products == nil {
		return []model.Product{}
	}
	return products
}
