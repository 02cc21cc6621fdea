package port

import (
	"context"

	"github.com/niksmo/storefront/internal/core/domain"
)

// Outbound ports.

// BlobStorage is a client-local key-value store: an opaque value per
// key. Get returns [ErrNotFound]-compatible errors through the
// implementing package when the key is absent.
type BlobStorage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

type CartRepository interface {
	ReadCart(ctx context.Context) ([]domain.CartEntry, error)
	WriteCart(ctx context.Context, entries []domain.CartEntry) error
}

type CatalogProvider interface {
	FetchProducts(ctx context.Context) ([]domain.Product, error)
	FetchReviews(ctx context.Context, productID int) ([]domain.Review, error)
}

type EventProducer interface {
	ProduceEvent(ctx context.Context, e domain.ClientEvent) error
	Close()
}

// Inbound ports.

type CartProvider interface {
	Cart(ctx context.Context) domain.CartSnapshot
	ItemQuantity(ctx context.Context, productID int) int
}

type CartMutator interface {
	AddToCart(ctx context.Context, p domain.Product, quantity int)
	SetQuantity(ctx context.Context, productID, quantity int)
}

type ProductsProvider interface {
	Products(ctx context.Context) ([]domain.Product, error)
	Reviews(ctx context.Context, productID int) []domain.Review
	UniqueCategories(ps []domain.Product) []string
	FilterProducts(ps []domain.Product, category, query string) []domain.Product
}
