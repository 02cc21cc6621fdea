package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/pkg/format"
)

// GET /v1/cart (200 OK)
// GET /v1/cart/items/{id} (200 OK, 400 Bad request)
// PUT /v1/cart/items JSON {product, quantity} (204 No content, 400 Bad request)
// PATCH /v1/cart/items/{id} JSON {quantity} (204 No content, 400 Bad request)

type CartHandler struct {
	provider port.CartProvider
	mutator  port.CartMutator
}

func RegisterCart(
	mux *http.ServeMux,
	provider port.CartProvider,
	mutator port.CartMutator,
) {
	h := CartHandler{provider, mutator}
	mux.HandleFunc("GET /v1/cart", h.GetCart)
	mux.HandleFunc("GET /v1/cart/items/{id}", h.GetItemQuantity)
	mux.HandleFunc("PUT /v1/cart/items", h.PutItem)
	mux.HandleFunc("PATCH /v1/cart/items/{id}", h.PatchItem)
}

func (h CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.GetCart"
	log := slog.With("op", op)

	snap := h.provider.Cart(r.Context())

	res := CartResponse{Items: make([]CartItem, 0, len(snap.Entries))}
	for _, e := range snap.Entries {
		unitPrice := format.DiscountedPrice(e.Price, e.DiscountPercentage)
		subtotal := unitPrice * float64(e.Quantity)
		res.Items = append(res.Items, CartItem{
			Product:   fromDomainProduct(e.Product),
			Quantity:  e.Quantity,
			UnitPrice: unitPrice,
			Subtotal:  subtotal,
		})
		res.Total += subtotal
	}

	writeJSON(w, log, res)
}

func (h CartHandler) GetItemQuantity(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.GetItemQuantity"
	log := slog.With("op", op)

	productID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	quantity := h.provider.ItemQuantity(r.Context(), productID)
	writeJSON(w, log, QuantityResponse{quantity})
}

func (h CartHandler) PutItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PutItem"
	log := slog.With("op", op)

	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	if req.Quantity < 1 {
		http.Error(w, "quantity must be positive", http.StatusBadRequest)
		return
	}

	h.mutator.AddToCart(r.Context(), toDomainProduct(req.Product), req.Quantity)
	w.WriteHeader(http.StatusNoContent)

	log.Info("cart item set", "productID", req.Product.ID,
		"quantity", req.Quantity)
}

func (h CartHandler) PatchItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PatchItem"
	log := slog.With("op", op)

	productID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	var req UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	if req.Quantity < 0 {
		http.Error(w, "quantity must not be negative", http.StatusBadRequest)
		return
	}

	h.mutator.SetQuantity(r.Context(), productID, req.Quantity)
	w.WriteHeader(http.StatusNoContent)

	log.Info("cart item updated", "productID", productID,
		"quantity", req.Quantity)
}
