package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.CartProvider = (*CartService)(nil)
var _ port.CartMutator = (*CartService)(nil)

// A CartService is the single authority over the persisted cart.
//
// Every operation is synchronous and swallows storage failures: the
// fallback is an empty cart, a zero quantity or a skipped write, logged
// but never returned. The mutex serializes read-modify-write cycles of
// the whole blob, the persistence policy is last-writer-wins.
type CartService struct {
	mu     sync.Mutex
	repo   port.CartRepository
	events port.EventProducer
}

func NewCartService(
	repo port.CartRepository, events port.EventProducer,
) *CartService {
	return &CartService{repo: repo, events: events}
}

// Cart returns the persisted cart entries. A missing blob yields an
// empty snapshot, an unreadable one yields an empty snapshot with
// Degraded set. Never returns an error.
func (s *CartService) Cart(ctx context.Context) domain.CartSnapshot {
	const op = "CartService.Cart"

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.readCart(ctx, op)
}

// ItemQuantity returns the stored quantity for the product, or zero
// when the product is absent or the cart cannot be read.
func (s *CartService) ItemQuantity(ctx context.Context, productID int) int {
	const op = "CartService.ItemQuantity"

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.readCart(ctx, op).Entries {
		if e.ID == productID {
			return e.Quantity
		}
	}
	return 0
}

// AddToCart sets the quantity for the product, appending a new entry
// when none exists. An existing entry's quantity is overwritten, not
// incremented.
func (s *CartService) AddToCart(
	ctx context.Context, p domain.Product, quantity int,
) {
	const op = "CartService.AddToCart"

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.readCart(ctx, op).Entries

	exists := false
	for i := range entries {
		if entries[i].ID == p.ID {
			entries[i].Quantity = quantity
			exists = true
			break
		}
	}
	if !exists {
		entries = append(entries, domain.CartEntry{Product: p, Quantity: quantity})
	}

	if !s.writeCart(ctx, op, entries) {
		return
	}
	s.emit(ctx, domain.EventAddToCart, p.ID, quantity)
}

// SetQuantity overwrites the quantity of an existing entry. Zero
// removes the entry entirely. A product not in the cart is left
// untouched: unlike AddToCart this never creates an entry, the card
// and modal controls rely on the asymmetry. Sign validation is the
// caller's duty.
func (s *CartService) SetQuantity(
	ctx context.Context, productID, quantity int,
) {
	const op = "CartService.SetQuantity"

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.readCart(ctx, op).Entries

	if quantity == 0 {
		kept := entries[:0]
		for _, e := range entries {
			if e.ID != productID {
				kept = append(kept, e)
			}
		}
		if !s.writeCart(ctx, op, kept) {
			return
		}
		s.emit(ctx, domain.EventSetQuantity, productID, 0)
		return
	}

	for i := range entries {
		if entries[i].ID == productID {
			entries[i].Quantity = quantity
			if !s.writeCart(ctx, op, entries) {
				return
			}
			s.emit(ctx, domain.EventSetQuantity, productID, quantity)
			return
		}
	}
}

func (s *CartService) readCart(
	ctx context.Context, op string,
) domain.CartSnapshot {
	entries, err := s.repo.ReadCart(ctx)
	if err != nil {
		slog.Error("failed to read cart, degrading to empty",
			"op", op, "err", err)
		return domain.CartSnapshot{Degraded: true}
	}
	return domain.CartSnapshot{Entries: entries}
}

func (s *CartService) writeCart(
	ctx context.Context, op string, entries []domain.CartEntry,
) bool {
	if err := s.repo.WriteCart(ctx, entries); err != nil {
		slog.Error("failed to persist cart, write skipped",
			"op", op, "err", err)
		return false
	}
	return true
}

func (s *CartService) emit(
	ctx context.Context, eventType string, productID, quantity int,
) {
	e := domain.ClientEvent{
		EventID:    uuid.NewString(),
		Type:       eventType,
		ProductID:  productID,
		Quantity:   quantity,
		OccurredAt: time.Now(),
	}
	if err := s.events.ProduceEvent(ctx, e); err != nil {
		slog.Warn("failed to produce client event",
			"eventType", eventType, "err", err)
	}
}
