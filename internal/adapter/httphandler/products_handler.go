package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/niksmo/storefront/internal/core/port"
)

// GET /v1/products?category=&q= (200 OK, 502 Bad gateway)
// GET /v1/categories (200 OK, 502 Bad gateway)
// GET /v1/products/{id}/reviews (200 OK, 400 Bad request)

type ProductsHandler struct {
	catalog         port.ProductsProvider
	defaultCategory string
}

func RegisterProducts(
	mux *http.ServeMux,
	catalog port.ProductsProvider,
	defaultCategory string,
) {
	h := ProductsHandler{catalog, defaultCategory}
	mux.HandleFunc("GET /v1/products", h.GetProducts)
	mux.HandleFunc("GET /v1/categories", h.GetCategories)
	mux.HandleFunc("GET /v1/products/{id}/reviews", h.GetReviews)
}

func (h ProductsHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.GetProducts"
	log := slog.With("op", op)

	ps, err := h.catalog.Products(r.Context())
	if err != nil {
		http.Error(w, "failed to fetch products", http.StatusBadGateway)
		log.Error("failed to fetch products", "err", err)
		return
	}

	category := r.URL.Query().Get("category")
	if category == "" {
		category = h.defaultCategory
	}
	query := r.URL.Query().Get("q")

	filtered := h.catalog.FilterProducts(ps, category, query)
	writeJSON(w, log, ProductsResponse{fromDomainProducts(filtered)})
}

func (h ProductsHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.GetCategories"
	log := slog.With("op", op)

	ps, err := h.catalog.Products(r.Context())
	if err != nil {
		http.Error(w, "failed to fetch products", http.StatusBadGateway)
		log.Error("failed to fetch products", "err", err)
		return
	}

	writeJSON(w, log, CategoriesResponse{h.catalog.UniqueCategories(ps)})
}

func (h ProductsHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.GetReviews"
	log := slog.With("op", op)

	productID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	rs := h.catalog.Reviews(r.Context(), productID)
	writeJSON(w, log, ReviewsResponse{fromDomainReviews(rs)})
}

func writeJSON(w http.ResponseWriter, log *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to write response body", "err", err)
	}
}
