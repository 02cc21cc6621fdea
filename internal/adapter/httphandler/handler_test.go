package httphandler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/niksmo/storefront/internal/adapter/events"
	"github.com/niksmo/storefront/internal/adapter/httphandler"
	"github.com/niksmo/storefront/internal/adapter/storage"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalog struct {
	products []domain.Product
	err      error
}

func (s stubCatalog) FetchProducts(
	context.Context,
) ([]domain.Product, error) {
	return s.products, s.err
}

func (s stubCatalog) FetchReviews(
	context.Context, int,
) ([]domain.Review, error) {
	return []domain.Review{
		{ID: 1, Rating: 5, Comment: "Great", Date: "2024-03-05"},
	}, nil
}

func storeFixture() []domain.Product {
	return []domain.Product{
		{ID: 1, Title: "iPhone 9", Description: "An apple mobile phone",
			Category: "electronics"},
		{ID: 2, Title: "Eyeshadow Palette", Description: "Matte shades",
			Category: "beauty"},
		{ID: 3, Title: "Landline Phone", Description: "Classic desk set",
			Category: "electronics"},
	}
}

func newTestServer(
	t *testing.T, provider port.CatalogProvider,
) (*httptest.Server, storage.CartRepository) {
	t.Helper()

	repo := storage.NewCartRepository(storage.NewMemoryStorage(), "cart")
	cartService := service.NewCartService(repo, events.NopProducer{})
	catalogService := service.NewCatalogService(
		provider, events.NopProducer{}, "All",
	)

	mux := http.NewServeMux()
	httphandler.RegisterProducts(mux, catalogService, "All")
	httphandler.RegisterCart(mux, cartService, cartService)

	srv := httptest.NewServer(httphandler.AllowJSON(mux))
	t.Cleanup(srv.Close)
	return srv, repo
}

func doJSON(
	t *testing.T, method, url string, body any,
) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))

	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = res.Body.Close() })
	return res
}

func getJSON(t *testing.T, url string, v any) *http.Response {
	t.Helper()

	res, err := http.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = res.Body.Close() })
	if v != nil {
		require.NoError(t, json.NewDecoder(res.Body).Decode(v))
	}
	return res
}

func TestCartEndToEnd(t *testing.T) {
	srv, repo := newTestServer(t, stubCatalog{products: storeFixture()})

	product := httphandler.Product{
		ID: 7, Title: "Essence Mascara", Price: 100, DiscountPercentage: 20,
		Category: "beauty",
	}

	// add id=7 qty=2
	res := doJSON(t, http.MethodPut, srv.URL+"/v1/cart/items",
		httphandler.AddItemRequest{Product: product, Quantity: 2})
	require.Equal(t, http.StatusNoContent, res.StatusCode)

	var cart httphandler.CartResponse
	getJSON(t, srv.URL+"/v1/cart", &cart)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 7, cart.Items[0].ID)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.InDelta(t, 80.0, cart.Items[0].UnitPrice, 1e-9)
	assert.InDelta(t, 160.0, cart.Items[0].Subtotal, 1e-9)
	assert.InDelta(t, 160.0, cart.Total, 1e-9)

	// increment to 3 via the cart page control
	res = doJSON(t, http.MethodPatch, srv.URL+"/v1/cart/items/7",
		httphandler.UpdateItemRequest{Quantity: 3})
	require.Equal(t, http.StatusNoContent, res.StatusCode)

	entries, err := repo.ReadCart(t.Context())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 3, entries[0].Quantity)

	var quantity httphandler.QuantityResponse
	getJSON(t, srv.URL+"/v1/cart/items/7", &quantity)
	assert.Equal(t, 3, quantity.Quantity)

	// decrement to 0 removes the row
	res = doJSON(t, http.MethodPatch, srv.URL+"/v1/cart/items/7",
		httphandler.UpdateItemRequest{Quantity: 0})
	require.Equal(t, http.StatusNoContent, res.StatusCode)

	getJSON(t, srv.URL+"/v1/cart", &cart)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Total)

	entries, err = repo.ReadCart(t.Context())
	require.NoError(t, err)
	assert.Empty(t, entries)

	getJSON(t, srv.URL+"/v1/cart/items/7", &quantity)
	assert.Equal(t, 0, quantity.Quantity)
}

func TestCartValidation(t *testing.T) {
	srv, _ := newTestServer(t, stubCatalog{})

	t.Run("AddNonPositiveQuantity", func(t *testing.T) {
		res := doJSON(t, http.MethodPut, srv.URL+"/v1/cart/items",
			httphandler.AddItemRequest{
				Product:  httphandler.Product{ID: 7},
				Quantity: 0,
			})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("PatchNegativeQuantity", func(t *testing.T) {
		res := doJSON(t, http.MethodPatch, srv.URL+"/v1/cart/items/7",
			httphandler.UpdateItemRequest{Quantity: -1})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("PatchAbsentItemIsNoop", func(t *testing.T) {
		res := doJSON(t, http.MethodPatch, srv.URL+"/v1/cart/items/42",
			httphandler.UpdateItemRequest{Quantity: 5})
		require.Equal(t, http.StatusNoContent, res.StatusCode)

		var cart httphandler.CartResponse
		getJSON(t, srv.URL+"/v1/cart", &cart)
		assert.Empty(t, cart.Items)
	})

	t.Run("InvalidProductID", func(t *testing.T) {
		res := doJSON(t, http.MethodPatch, srv.URL+"/v1/cart/items/seven",
			httphandler.UpdateItemRequest{Quantity: 1})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("NonJSONBody", func(t *testing.T) {
		req, err := http.NewRequest(
			http.MethodPut, srv.URL+"/v1/cart/items",
			bytes.NewBufferString("quantity=2"),
		)
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		res, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer res.Body.Close()
		assert.Equal(t, http.StatusUnsupportedMediaType, res.StatusCode)
	})
}

func TestProductsEndpoints(t *testing.T) {

	t.Run("FilteredProducts", func(t *testing.T) {
		srv, _ := newTestServer(t, stubCatalog{products: storeFixture()})

		var body httphandler.ProductsResponse
		getJSON(t, srv.URL+"/v1/products?category=electronics&q=phone", &body)
		require.Len(t, body.Products, 2)
		assert.Equal(t, 1, body.Products[0].ID)
		assert.Equal(t, 3, body.Products[1].ID)
	})

	t.Run("DefaultCategoryKeepsAll", func(t *testing.T) {
		srv, _ := newTestServer(t, stubCatalog{products: storeFixture()})

		var body httphandler.ProductsResponse
		getJSON(t, srv.URL+"/v1/products", &body)
		assert.Len(t, body.Products, len(storeFixture()))
	})

	t.Run("FetchErrorIsBadGateway", func(t *testing.T) {
		srv, _ := newTestServer(
			t, stubCatalog{err: errors.New("catalog is unavailable")},
		)

		res := getJSON(t, srv.URL+"/v1/products", nil)
		assert.Equal(t, http.StatusBadGateway, res.StatusCode)
	})

	t.Run("Categories", func(t *testing.T) {
		srv, _ := newTestServer(t, stubCatalog{products: storeFixture()})

		var body httphandler.CategoriesResponse
		getJSON(t, srv.URL+"/v1/categories", &body)
		assert.Equal(
			t, []string{"All", "electronics", "beauty"}, body.Categories,
		)
	})

	t.Run("ReviewsRenderAnonymousAndLongDate", func(t *testing.T) {
		srv, _ := newTestServer(t, stubCatalog{products: storeFixture()})

		var body httphandler.ReviewsResponse
		getJSON(t, fmt.Sprintf("%s/v1/products/%d/reviews", srv.URL, 1), &body)
		require.Len(t, body.Reviews, 1)
		assert.Equal(t, "Anonymous", body.Reviews[0].User.Name)
		assert.Equal(t, "March 5, 2024", body.Reviews[0].Date)
	})
}
