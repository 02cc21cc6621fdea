package catalog

import "github.com/niksmo/storefront/internal/core/domain"

// Wire shapes of the remote catalog API.
type (
	productsResponse struct {
		Products []product `json:"products"`
	}

	reviewsResponse struct {
		Reviews []review `json:"reviews"`
	}

	product struct {
		ID                 int      `json:"id"`
		Title              string   `json:"title"`
		Description        string   `json:"description"`
		Price              float64  `json:"price"`
		DiscountPercentage float64  `json:"discountPercentage"`
		Rating             float64  `json:"rating"`
		Stock              int      `json:"stock"`
		Brand              string   `json:"brand"`
		Category           string   `json:"category"`
		Thumbnail          string   `json:"thumbnail"`
		Images             []string `json:"images"`
		Reviews            []review `json:"reviews"`
	}

	review struct {
		ID      int     `json:"id"`
		Rating  float64 `json:"rating"`
		Comment string  `json:"comment"`
		Date    string  `json:"date"`
		User    struct {
			Name string `json:"name"`
		} `json:"user"`
	}
)

func toDomainProducts(ps []product) (domainPs []domain.Product) {
	for _, p := range ps {
		domainPs = append(domainPs, domain.Product{
			ID:                 p.ID,
			Title:              p.Title,
			Description:        p.Description,
			Price:              p.Price,
			DiscountPercentage: p.DiscountPercentage,
			Rating:             p.Rating,
			Stock:              p.Stock,
			Brand:              p.Brand,
			Category:           p.Category,
			Thumbnail:          p.Thumbnail,
			Images:             p.Images,
			Reviews:            toDomainReviews(p.Reviews),
		})
	}
	return domainPs
}

func toDomainReviews(rs []review) (domainRs []domain.Review) {
	for _, r := range rs {
		domainRs = append(domainRs, domain.Review{
			ID:       r.ID,
			Rating:   r.Rating,
			Comment:  r.Comment,
			Date:     r.Date,
			Reviewer: r.User.Name,
		})
	}
	return domainRs
}
