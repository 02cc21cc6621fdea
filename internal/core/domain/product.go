package domain

type (
	Product struct {
		ID                 int
		Title              string
		Description        string
		Price              float64
		DiscountPercentage float64
		Rating             float64
		Stock              int
		Brand              string
		Category           string
		Thumbnail          string
		Images             []string
		Reviews            []Review
	}

	// A Review is nested inside [Product] and never mutated.
	// Reviewer is the author display name, empty when the
	// catalog omits it.
	Review struct {
		ID       int
		Rating   float64
		Comment  string
		Date     string
		Reviewer string
	}
)
