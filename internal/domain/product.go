package domain

import "context"

// Catalog domain errors.
var (
	ErrProductNotFound    = &Error{Code: ENOTFOUND, Message: "Product not found"}
	ErrCatalogUnavailable = &Error{Code: EUNAVAILABLE, Message: "Product catalog is unavailable"}
)

// Catalog reads product documents from the headless content backend.
// Implementations are read-only; nothing in this application mutates
// the catalog.
type Catalog interface {
	// ListProducts returns every product document.
	ListProducts(ctx context.Context) ([]Product, error)

	// GetProduct returns the product with the given identifier.
	// Returns ErrProductNotFound when the backend has no such document.
	GetProduct(ctx context.Context, id string) (*Product, error)

	// ImageURL builds a fetchable CDN URL from a raw asset reference.
	// Returns "" when the reference cannot be resolved.
	ImageURL(assetID string) string
}

// Product is a catalog document as projected by the content backend.
type Product struct {
	ID                   string   `json:"_id"`
	Title                string   `json:"title"`
	Price                Amount   `json:"price"`
	Discount             *float64 `json:"discount,omitempty"`
	PriceWithoutDiscount *Amount  `json:"priceWithoutDiscount,omitempty"`
	Badge                string   `json:"badge,omitempty"`
	Image                ImageRef `json:"image"`
	Description          string   `json:"description,omitempty"`
	Inventory            *int     `json:"inventory,omitempty"`
	Tags                 []string `json:"tags,omitempty"`
}
