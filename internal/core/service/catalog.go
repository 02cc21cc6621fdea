package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.ProductsProvider = (*CatalogService)(nil)

// A CatalogService combines the remote catalog fetch with the pure
// query transforms the storefront pages apply to the fetched list.
type CatalogService struct {
	provider        port.CatalogProvider
	events          port.EventProducer
	defaultCategory string
}

func NewCatalogService(
	provider port.CatalogProvider,
	events port.EventProducer,
	defaultCategory string,
) CatalogService {
	return CatalogService{provider, events, defaultCategory}
}

// Products fetches the catalog page. A fetch failure propagates to the
// caller: it is the only error the presentation layer surfaces.
func (s CatalogService) Products(
	ctx context.Context,
) ([]domain.Product, error) {
	const op = "CatalogService.Products"

	ps, err := s.provider.FetchProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}

// Reviews fetches the reviews of one product. Failures degrade to an
// empty list, logged, never propagated.
func (s CatalogService) Reviews(
	ctx context.Context, productID int,
) []domain.Review {
	const op = "CatalogService.Reviews"

	rs, err := s.provider.FetchReviews(ctx, productID)
	if err != nil {
		slog.Error("failed to fetch reviews, degrading to empty",
			"op", op, "productID", productID, "err", err)
		return nil
	}

	e := domain.ClientEvent{
		EventID:    uuid.NewString(),
		Type:       domain.EventProductViewed,
		ProductID:  productID,
		OccurredAt: time.Now(),
	}
	if err := s.events.ProduceEvent(ctx, e); err != nil {
		slog.Warn("failed to produce client event",
			"eventType", e.Type, "err", err)
	}
	return rs
}

// UniqueCategories lists the sentinel "all" category first, then each
// distinct category in first-encountered order.
func (s CatalogService) UniqueCategories(ps []domain.Product) []string {
	cs := []string{s.defaultCategory}
	seen := make(map[string]struct{}, len(ps))
	for _, p := range ps {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		cs = append(cs, p.Category)
	}
	return cs
}

// FilterProducts keeps products whose category matches exactly (or the
// sentinel is given) and whose title or description contains the
// case-folded query. Order is preserved. Category matching is
// case-sensitive while the text search is not.
func (s CatalogService) FilterProducts(
	ps []domain.Product, category, query string,
) []domain.Product {
	query = strings.ToLower(query)

	var filtered []domain.Product
	for _, p := range ps {
		matchesCategory := category == s.defaultCategory ||
			p.Category == category
		matchesSearch := query == "" ||
			strings.Contains(strings.ToLower(p.Title), query) ||
			strings.Contains(strings.ToLower(p.Description), query)
		if matchesCategory && matchesSearch {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
