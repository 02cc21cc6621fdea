package format_test

import (
	"testing"

	"github.com/niksmo/storefront/pkg/format"
	"github.com/stretchr/testify/assert"
)

func TestCategoryName(t *testing.T) {
	t.Run("Hyphenated", func(t *testing.T) {
		assert.Equal(t, "Home Decor", format.CategoryName("home-decor"))
	})

	t.Run("SingleWord", func(t *testing.T) {
		assert.Equal(t, "Electronics", format.CategoryName("electronics"))
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, "", format.CategoryName(""))
	})

	t.Run("ManySegments", func(t *testing.T) {
		assert.Equal(
			t, "Mens Shirts Casual", format.CategoryName("mens-shirts-casual"),
		)
	})
}

func TestPrice(t *testing.T) {
	t.Run("TwoDecimals", func(t *testing.T) {
		assert.Equal(t, "$19.99", format.Price(19.99))
	})

	t.Run("RoundsAtDisplay", func(t *testing.T) {
		assert.Equal(t, "$80.00", format.Price(79.999))
	})

	t.Run("Zero", func(t *testing.T) {
		assert.Equal(t, "$0.00", format.Price(0))
	})
}

func TestDiscountedPrice(t *testing.T) {
	t.Run("NoRounding", func(t *testing.T) {
		assert.InDelta(t, 80.0, format.DiscountedPrice(100, 20), 1e-9)
	})

	t.Run("ZeroDiscount", func(t *testing.T) {
		assert.InDelta(t, 49.5, format.DiscountedPrice(49.5, 0), 1e-9)
	})

	t.Run("FullDiscount", func(t *testing.T) {
		assert.InDelta(t, 0.0, format.DiscountedPrice(15, 100), 1e-9)
	})
}

func TestDate(t *testing.T) {
	t.Run("RFC3339", func(t *testing.T) {
		assert.Equal(t, "May 23, 2024", format.Date("2024-05-23T08:56:21.618Z"))
	})

	t.Run("DateOnly", func(t *testing.T) {
		assert.Equal(t, "March 5, 2024", format.Date("2024-03-05"))
	})

	t.Run("Unparseable", func(t *testing.T) {
		assert.Equal(t, "yesterday", format.Date("yesterday"))
	})
}
