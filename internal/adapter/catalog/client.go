// Package catalog is the HTTP client for the remote read-only product
// catalog.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.CatalogProvider = (*Client)(nil)

const requestTimeout = 10 * time.Second

type Client struct {
	httpClient *http.Client
	baseURL    string
	limit      int
}

// New returns a catalog client for the endpoint root. limit is the
// page size of the initial products fetch.
func New(baseURL string, limit int) Client {
	return Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		limit:      limit,
	}
}

// FetchProducts requests the catalog page. One outstanding request,
// no retry: a non-2xx status or transport failure is returned as is.
func (c Client) FetchProducts(
	ctx context.Context,
) ([]domain.Product, error) {
	const op = "CatalogClient.FetchProducts"

	url := fmt.Sprintf("%s/products?limit=%d", c.baseURL, c.limit)

	var body productsResponse
	if err := c.getJSON(ctx, url, &body); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return toDomainProducts(body.Products), nil
}

// FetchReviews requests the reviews of one product. The caller decides
// whether a failure degrades or propagates.
func (c Client) FetchReviews(
	ctx context.Context, productID int,
) ([]domain.Review, error) {
	const op = "CatalogClient.FetchReviews"

	url := fmt.Sprintf("%s/products/%d/reviews", c.baseURL, productID)

	var body reviewsResponse
	if err := c.getJSON(ctx, url, &body); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return toDomainReviews(body.Reviews), nil
}

func (c Client) getJSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, url, nil,
	)
	if err != nil {
		return err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK ||
		res.StatusCode > http.StatusIMUsed {
		return fmt.Errorf("unexpected status: %s", res.Status)
	}

	if err := json.NewDecoder(res.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode body: %w", err)
	}
	return nil
}
