package catalog

import "context"

// Product is a single catalog record. The assistant treats it as read-only;
// writes happen in the storefront admin panel, not here.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	ImageURL    string  `json:"image_url,omitempty"`
}

// Repo — persistence
type Repo interface {
	LoadProducts(ctx context.Context) ([]Product, error)
}

// Filter narrows a catalog search. Zero values mean "no constraint".
type Filter struct {
	Query    string
	Category string
	MinPrice *float64
	MaxPrice *float64
}
