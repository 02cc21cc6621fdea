package catalog_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/niksmo/storefront/internal/adapter/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productsBody = `{
	"products": [
		{
			"id": 1,
			"title": "iPhone 9",
			"description": "An apple mobile phone",
			"price": 549,
			"discountPercentage": 12.96,
			"rating": 4.69,
			"stock": 94,
			"brand": "Apple",
			"category": "smartphones",
			"thumbnail": "https://cdn.example.com/1/thumb.png",
			"images": ["https://cdn.example.com/1/1.png"],
			"reviews": [
				{
					"id": 10,
					"rating": 5,
					"comment": "Great phone",
					"date": "2024-05-23T08:56:21.618Z",
					"user": {"name": "John Doe"}
				}
			]
		},
		{"id": 2, "title": "Eyeshadow Palette", "category": "beauty"}
	]
}`

const reviewsBody = `{
	"reviews": [
		{"id": 10, "rating": 5, "comment": "Great phone",
		 "date": "2024-05-23T08:56:21.618Z", "user": {"name": "John Doe"}},
		{"id": 11, "rating": 3, "comment": "It is fine",
		 "date": "2024-06-01T10:00:00.000Z", "user": {}}
	]
}`

func TestFetchProducts(t *testing.T) {
	t.Run("Regular", func(t *testing.T) {
		var gotPath, gotLimit string
		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				gotLimit = r.URL.Query().Get("limit")
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(productsBody))
			}))
		defer srv.Close()

		c := catalog.New(srv.URL, 30)
		ps, err := c.FetchProducts(t.Context())
		require.NoError(t, err)

		assert.Equal(t, "/products", gotPath)
		assert.Equal(t, "30", gotLimit)

		require.Len(t, ps, 2)
		assert.Equal(t, 1, ps[0].ID)
		assert.Equal(t, "iPhone 9", ps[0].Title)
		assert.Equal(t, 549.0, ps[0].Price)
		assert.Equal(t, 12.96, ps[0].DiscountPercentage)
		assert.Equal(t, "smartphones", ps[0].Category)
		require.Len(t, ps[0].Reviews, 1)
		assert.Equal(t, "John Doe", ps[0].Reviews[0].Reviewer)
		assert.Equal(t, "Eyeshadow Palette", ps[1].Title)
	})

	t.Run("NonOKStatus", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			}))
		defer srv.Close()

		c := catalog.New(srv.URL, 30)
		_, err := c.FetchProducts(t.Context())
		require.Error(t, err)
	})

	t.Run("InvalidBody", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("{not json"))
			}))
		defer srv.Close()

		c := catalog.New(srv.URL, 30)
		_, err := c.FetchProducts(t.Context())
		require.Error(t, err)
	})
}

func TestFetchReviews(t *testing.T) {
	t.Run("Regular", func(t *testing.T) {
		var gotPath string
		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(reviewsBody))
			}))
		defer srv.Close()

		c := catalog.New(srv.URL, 30)
		rs, err := c.FetchReviews(t.Context(), 1)
		require.NoError(t, err)

		assert.Equal(t, "/products/1/reviews", gotPath)
		require.Len(t, rs, 2)
		assert.Equal(t, "John Doe", rs[0].Reviewer)
		assert.Empty(t, rs[1].Reviewer)
	})

	t.Run("NonOKStatus", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "not found", http.StatusNotFound)
			}))
		defer srv.Close()

		c := catalog.New(srv.URL, 30)
		_, err := c.FetchReviews(t.Context(), 1)
		require.Error(t, err)
	})
}
