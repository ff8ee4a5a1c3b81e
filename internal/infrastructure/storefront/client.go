package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/figurine/backend/internal/domain/integration"
	"github.com/figurine/backend/internal/domain/shared"
)

// maxResponseSize is the maximum allowed response size from the storefront API (10MB)
const maxResponseSize = 10 * 1024 * 1024

// apiBasePath is the storefront REST API root
const apiBasePath = "/wp-json/wc/v3"

// Client implements StorefrontClient against a WooCommerce-compatible REST
// API. Every call is a single attempt; failures surface as UPSTREAM_FAILURE
// and are never retried here.
type Client struct {
	config     *Config
	httpClient *http.Client
}

// NewClient creates a new storefront client with the given configuration
func NewClient(config *Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
	}, nil
}

// FetchCustomers pulls one page of customers
func (c *Client) FetchCustomers(ctx context.Context, page, perPage int) ([]integration.StorefrontCustomer, error) {
	body, err := c.doGet(ctx, "/customers", page, perPage)
	if err != nil {
		return nil, err
	}

	var wire []wireCustomer
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("%w: invalid customers payload: %v", shared.ErrUpstreamFailure, err)
	}

	customers := make([]integration.StorefrontCustomer, 0, len(wire))
	for _, wc := range wire {
		customers = append(customers, integration.StorefrontCustomer{
			ID:         wc.ID,
			FirstName:  wc.FirstName,
			LastName:   wc.LastName,
			Email:      wc.Email,
			Phone:      wc.Billing.Phone,
			Address:    wc.Billing.Address1,
			City:       wc.Billing.City,
			PostalCode: wc.Billing.PostalCode,
		})
	}
	return customers, nil
}

// FetchProducts pulls one page of products
func (c *Client) FetchProducts(ctx context.Context, page, perPage int) ([]integration.StorefrontProduct, error) {
	body, err := c.doGet(ctx, "/products", page, perPage)
	if err != nil {
		return nil, err
	}

	var wire []wireProduct
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("%w: invalid products payload: %v", shared.ErrUpstreamFailure, err)
	}

	products := make([]integration.StorefrontProduct, 0, len(wire))
	for _, wp := range wire {
		products = append(products, integration.StorefrontProduct{
			ID:          wp.ID,
			Name:        wp.Name,
			Description: wp.Description,
			Price:       parsePrice(wp.Price),
			Published:   wp.Status == "publish",
		})
	}
	return products, nil
}

// FetchOrders pulls one page of orders
func (c *Client) FetchOrders(ctx context.Context, page, perPage int) ([]integration.StorefrontOrder, error) {
	body, err := c.doGet(ctx, "/orders", page, perPage)
	if err != nil {
		return nil, err
	}

	var wire []wireOrder
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("%w: invalid orders payload: %v", shared.ErrUpstreamFailure, err)
	}

	orders := make([]integration.StorefrontOrder, 0, len(wire))
	for _, wo := range wire {
		order := integration.StorefrontOrder{
			ID:           wo.ID,
			CustomerID:   wo.CustomerID,
			Status:       integration.StorefrontStatus(wo.Status),
			CreatedAt:    parseWireDate(wo.DateCreated),
			Total:        parsePrice(wo.Total),
			CustomerNote: wo.CustomerNote,
			Billing: integration.StorefrontCustomer{
				FirstName:  wo.Billing.FirstName,
				LastName:   wo.Billing.LastName,
				Email:      wo.Billing.Email,
				Phone:      wo.Billing.Phone,
				Address:    wo.Billing.Address1,
				City:       wo.Billing.City,
				PostalCode: wo.Billing.PostalCode,
			},
			LineItems: make([]integration.StorefrontLineItem, 0, len(wo.LineItems)),
		}
		for _, li := range wo.LineItems {
			order.LineItems = append(order.LineItems, integration.StorefrontLineItem{
				ProductID: li.ProductID,
				Name:      li.Name,
				Quantity:  li.Quantity,
				UnitPrice: parsePrice(li.Price),
				Total:     parsePrice(li.Total),
			})
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// UpdateOrderStatus pushes a status change to the storefront
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID int64, status integration.StorefrontStatus) error {
	payload, err := json.Marshal(statusUpdateRequest{Status: status.String()})
	if err != nil {
		return err
	}

	endpoint := c.config.BaseURL + apiBasePath + "/orders/" + strconv.FormatInt(orderID, 10)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.config.ConsumerKey, c.config.ConsumerSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrUpstreamFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status push returned HTTP %d", shared.ErrUpstreamFailure, resp.StatusCode)
	}
	return nil
}

// doGet performs a single paginated GET against the storefront API
func (c *Client) doGet(ctx context.Context, path string, page, perPage int) ([]byte, error) {
	endpoint := c.config.BaseURL + apiBasePath + path
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(perPage))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(c.config.ConsumerKey, c.config.ConsumerSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrUpstreamFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrUpstreamFailure, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned HTTP %d: %s",
			shared.ErrUpstreamFailure, path, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}

// Ensure Client implements StorefrontClient
var _ integration.StorefrontClient = (*Client)(nil)
