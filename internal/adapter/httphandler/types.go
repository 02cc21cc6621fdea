package httphandler

import (
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/pkg/format"
)

type (
	Product struct {
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
		Reviews            []Review `json:"reviews,omitempty"`
	}

	Review struct {
		ID      int      `json:"id"`
		Rating  float64  `json:"rating"`
		Comment string   `json:"comment"`
		Date    string   `json:"date"`
		User    Reviewer `json:"user"`
	}

	Reviewer struct {
		Name string `json:"name"`
	}
)

type (
	ProductsResponse struct {
		Products []Product `json:"products"`
	}

	CategoriesResponse struct {
		Categories []string `json:"categories"`
	}

	ReviewsResponse struct {
		Reviews []Review `json:"reviews"`
	}

	CartItem struct {
		Product
		Quantity  int     `json:"quantity"`
		UnitPrice float64 `json:"unitPrice"`
		Subtotal  float64 `json:"subtotal"`
	}

	CartResponse struct {
		Items []CartItem `json:"items"`
		Total float64    `json:"total"`
	}

	QuantityResponse struct {
		Quantity int `json:"quantity"`
	}

	AddItemRequest struct {
		Product  Product `json:"product"`
		Quantity int     `json:"quantity"`
	}

	UpdateItemRequest struct {
		Quantity int `json:"quantity"`
	}
)

func toDomainProduct(p Product) domain.Product {
	dp := domain.Product{
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
	}
	for _, r := range p.Reviews {
		dp.Reviews = append(dp.Reviews, domain.Review{
			ID:       r.ID,
			Rating:   r.Rating,
			Comment:  r.Comment,
			Date:     r.Date,
			Reviewer: r.User.Name,
		})
	}
	return dp
}

func fromDomainProduct(p domain.Product) Product {
	rp := Product{
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
	}
	rp.Reviews = fromDomainReviews(p.Reviews)
	return rp
}

func fromDomainProducts(ps []domain.Product) []Product {
	res := make([]Product, 0, len(ps))
	for _, p := range ps {
		res = append(res, fromDomainProduct(p))
	}
	return res
}

// The storefront renders a missing author name as "Anonymous".
func fromDomainReviews(rs []domain.Review) []Review {
	res := make([]Review, 0, len(rs))
	for _, r := range rs {
		name := r.Reviewer
		if name == "" {
			name = "Anonymous"
		}
		res = append(res, Review{
			ID:      r.ID,
			Rating:  r.Rating,
			Comment: r.Comment,
			Date:    format.Date(r.Date),
			User:    Reviewer{name},
		})
	}
	return res
}
