// Package format holds the display formatting helpers shared by the
// storefront surfaces. All functions are pure and total.
package format

import (
	"fmt"
	"strings"
	"time"
)

// CategoryName turns a hyphenated catalog category into a display
// name: "home-decor" becomes "Home Decor". Empty input yields "".
func CategoryName(category string) string {
	if category == "" {
		return ""
	}

	words := strings.Split(category, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Price renders a fixed two-decimal currency string.
func Price(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}

// DiscountedPrice applies the percentage discount without rounding.
// Rounding happens only at display formatting.
func DiscountedPrice(price, discountPercentage float64) float64 {
	return price * (1 - discountPercentage/100)
}

// Date renders an ISO date string as a long-form date, e.g.
// "March 5, 2024". Unparseable input is returned unchanged, matching
// the lenient rendering of the review list.
func Date(dateString string) string {
	t, err := time.Parse(time.RFC3339, dateString)
	if err != nil {
		t, err = time.Parse("2006-01-02", dateString)
	}
	if err != nil {
		return dateString
	}
	return t.Format("January 2, 2006")
}
