package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.CartRepository = (*CartRepository)(nil)

// The persisted blob is a JSON array of product fields flattened with
// an added quantity, exactly the shape the browser storefront kept
// under its "cart" localStorage key. No version field: a format change
// is a breaking migration.
type (
	cartEntryRecord struct {
		ID                 int            `json:"id"`
		Title              string         `json:"title"`
		Description        string         `json:"description"`
		Price              float64        `json:"price"`
		DiscountPercentage float64        `json:"discountPercentage"`
		Rating             float64        `json:"rating"`
		Stock              int            `json:"stock"`
		Brand              string         `json:"brand"`
		Category           string         `json:"category"`
		Thumbnail          string         `json:"thumbnail"`
		Images             []string       `json:"images"`
		Reviews            []reviewRecord `json:"reviews"`
		Quantity           int            `json:"quantity"`
	}

	reviewRecord struct {
		ID      int          `json:"id"`
		Rating  float64      `json:"rating"`
		Comment string       `json:"comment"`
		Date    string       `json:"date"`
		User    reviewerUser `json:"user"`
	}

	reviewerUser struct {
		Name string `json:"name"`
	}
)

// A CartRepository maps the cart blob stored under a fixed key to
// domain cart entries.
type CartRepository struct {
	storage port.BlobStorage
	key     string
}

func NewCartRepository(storage port.BlobStorage, key string) CartRepository {
	return CartRepository{storage, key}
}

// ReadCart returns the persisted entries. An absent key is an empty
// cart, not an error. A blob that cannot be decoded is an error the
// service layer degrades on.
func (r CartRepository) ReadCart(
	ctx context.Context,
) ([]domain.CartEntry, error) {
	const op = "CartRepository.ReadCart"

	b, err := r.storage.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var records []cartEntryRecord
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, fmt.Errorf("%s: corrupt cart blob: %w", op, err)
	}
	return toDomainEntries(records), nil
}

func (r CartRepository) WriteCart(
	ctx context.Context, entries []domain.CartEntry,
) error {
	const op = "CartRepository.WriteCart"

	records := make([]cartEntryRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, toRecord(e))
	}

	b, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := r.storage.Set(ctx, r.key, b); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func toDomainEntries(records []cartEntryRecord) []domain.CartEntry {
	var entries []domain.CartEntry
	for _, rec := range records {
		e := domain.CartEntry{
			Product: domain.Product{
				ID:                 rec.ID,
				Title:              rec.Title,
				Description:        rec.Description,
				Price:              rec.Price,
				DiscountPercentage: rec.DiscountPercentage,
				Rating:             rec.Rating,
				Stock:              rec.Stock,
				Brand:              rec.Brand,
				Category:           rec.Category,
				Thumbnail:          rec.Thumbnail,
				Images:             rec.Images,
			},
			Quantity: rec.Quantity,
		}
		for _, rv := range rec.Reviews {
			e.Reviews = append(e.Reviews, domain.Review{
				ID:       rv.ID,
				Rating:   rv.Rating,
				Comment:  rv.Comment,
				Date:     rv.Date,
				Reviewer: rv.User.Name,
			})
		}
		entries = append(entries, e)
	}
	return entries
}

func toRecord(e domain.CartEntry) cartEntryRecord {
	rec := cartEntryRecord{
		ID:                 e.ID,
		Title:              e.Title,
		Description:        e.Description,
		Price:              e.Price,
		DiscountPercentage: e.DiscountPercentage,
		Rating:             e.Rating,
		Stock:              e.Stock,
		Brand:              e.Brand,
		Category:           e.Category,
		Thumbnail:          e.Thumbnail,
		Images:             e.Images,
		Quantity:           e.Quantity,
	}
	for _, rv := range e.Reviews {
		rec.Reviews = append(rec.Reviews, reviewRecord{
			ID:      rv.ID,
			Rating:  rv.Rating,
			Comment: rv.Comment,
			Date:    rv.Date,
			User:    reviewerUser{rv.Reviewer},
		})
	}
	return rec
}
