package routes

import (
	"net/http"

	"github.com/comforty/storefront/internal/handler/storefront"
)

// StorefrontDeps contains dependencies for storefront routes
type StorefrontDeps struct {
	// Products
	ProductHandler *storefront.ProductHandler

	// Cart
	CartHandler *storefront.CartHandler

	// Checkout
	CheckoutHandler *storefront.CheckoutHandler

	// Post-checkout landing pages
	OutcomeHandler *storefront.OutcomeHandler
}

// OpsDeps contains dependencies for operational routes
type OpsDeps struct {
	// MetricsHandler serves the Prometheus scrape endpoint
	MetricsHandler http.Handler
}
