package routes

import (
	"net/http"

	"github.com/comforty/storefront/internal/router"
)

// RegisterStorefrontRoutes registers all customer-facing storefront routes.
func RegisterStorefrontRoutes(r *router.Router, deps StorefrontDeps) {
	// Product browsing
	r.Get("/api/products", deps.ProductHandler.List)
	r.Get("/api/products/{id}", deps.ProductHandler.Get)

	// Shopping cart
	r.Get("/cart", deps.CartHandler.View)
	r.Post("/cart/add", deps.CartHandler.Add)
	r.Post("/cart/increment", deps.CartHandler.Increment)
	r.Post("/cart/decrement", deps.CartHandler.Decrement)
	r.Post("/cart/remove", deps.CartHandler.Remove)
	r.Delete("/cart", deps.CartHandler.Clear)

	// Checkout flow
	r.Post("/api/payment", deps.CheckoutHandler.CreatePaymentSession)
	r.Post("/checkout", deps.CheckoutHandler.Start)
	r.Get("/success", deps.OutcomeHandler.Success)
	r.Get("/cancel", deps.OutcomeHandler.Cancel)
}

// RegisterOpsRoutes registers health and metrics endpoints.
func RegisterOpsRoutes(r *router.Router, deps OpsDeps) {
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle(http.MethodGet, "/metrics", deps.MetricsHandler)
}
