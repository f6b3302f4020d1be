package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"order-desk/internal/model"

	"github.com/rs/zerolog"
)

// Client implements OrderRepository and SettingsRepository against the
// external Orders REST API. The caller's bearer token is read from the
// request context and forwarded as an Authorization header; a configured
// service token is used when the context carries none.
type Client struct {
	baseURL      *url.URL
	httpClient   *http.Client
	serviceToken string
	logger       zerolog.Logger
}

var _ OrderRepository = (*Client)(nil)
var _ SettingsRepository = (*Client)(nil)

// NewClient creates an Orders API client with a default timeout.
func NewClient(baseURL, serviceToken string, logger zerolog.Logger) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse orders api url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("orders api url must be absolute")
	}

	return &Client{
		baseURL:      parsed,
		serviceToken: serviceToken,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		logger: logger.With().Str("component", "orders-api").Logger(),
	}, nil
}

// List retrieves the full order collection.
func (c *Client) List(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders", nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Search performs the header quick-search.
func (c *Client) Search(ctx context.Context, query string) ([]model.Order, error) {
	var orders []model.Order
	q := url.Values{"q": {query}}
	if err := c.do(ctx, http.MethodGet, "/api/orders/search", q, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Get retrieves a single order.
func (c *Client) Get(ctx context.Context, id int64) (*model.Order, error) {
	var order model.Order
	if err := c.do(ctx, http.MethodGet, orderPath(id), nil, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// Update applies a partial update via PUT and returns the updated order.
func (c *Client) Update(ctx context.Context, id int64, patch OrderPatch) (*model.Order, error) {
	var order model.Order
	if err := c.do(ctx, http.MethodPut, orderPath(id), nil, patch, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// Delete removes an order.
func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, orderPath(id), nil, nil, nil)
}

// StatusHistory retrieves the full status log of an order.
func (c *Client) StatusHistory(ctx context.Context, orderID int64) ([]model.StatusHistoryEntry, error) {
	var entries []model.StatusHistoryEntry
	if err := c.do(ctx, http.MethodGet, orderPath(orderID)+"/status-history", nil, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// AddStatusHistory appends a note to the status log.
func (c *Client) AddStatusHistory(ctx context.Context, orderID int64, notes string) (*model.StatusHistoryEntry, error) {
	var entry model.StatusHistoryEntry
	body := map[string]string{"notes": notes}
	if err := c.do(ctx, http.MethodPost, orderPath(orderID)+"/status-history", nil, body, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// InvoicePrefix returns the configured order-number prefix.
func (c *Client) InvoicePrefix(ctx context.Context) (string, error) {
	var payload struct {
		InvoiceString string `json:"invoiceString"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/settings/invoice-string", nil, nil, &payload); err != nil {
		return "", err
	}
	return payload.InvoiceString, nil
}

func orderPath(id int64) string {
	return "/api/orders/" + strconv.FormatInt(id, 10)
}

// do issues one request against the Orders API and decodes the response
// into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, endpoint string, query url.Values, body, out any) error {
	token, ok := TokenFrom(ctx)
	if !ok {
		token = c.serviceToken
	}
	if token == "" {
		return ErrNoToken
	}

	target := *c.baseURL
	target.Path = path.Join(target.Path, endpoint)
	if query != nil {
		target.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	// only an order endpoint 404 means "order not found"; elsewhere a 404 is
	// an upstream failure like any other
	case resp.StatusCode == http.StatusNotFound && strings.HasPrefix(endpoint, "/api/orders/"):
		return ErrOrderNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		raw, _ := io.ReadAll(resp.Body)
		c.logger.Error().
			Str("method", method).
			Str("endpoint", endpoint).
			Int("status", resp.StatusCode).
			Msg("orders api request failed")
		return &UpstreamError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode orders api response: %w", err)
	}
	return nil
}
