package storefront

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/comforty/storefront/internal/domain"
	"github.com/comforty/storefront/internal/handler"
	"github.com/comforty/storefront/internal/telemetry"
)

// CartHandler handles all cart-related storefront routes
type CartHandler struct {
	cartService domain.CartService
	catalog     domain.Catalog
	logger      *slog.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService domain.CartService, catalog domain.Catalog, logger *slog.Logger) *CartHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CartHandler{
		cartService: cartService,
		catalog:     catalog,
		logger:      logger,
	}
}

// cartLineRequest targets an existing line by product identifier.
type cartLineRequest struct {
	ProductID string `json:"productId"`
}

// cartResponse is the cart view plus the open-drawer signal returned after
// an add.
type cartResponse struct {
	*domain.CartView
	CartOpened bool `json:"cartOpened,omitempty"`
}

// View handles GET /cart
func (h *CartHandler) View(w http.ResponseWriter, r *http.Request) {
	view, err := h.cartService.View(r.Context())
	if err != nil {
		handler.RespondError(w, h.logger, err)
		return
	}

	if telemetry.Business != nil {
		telemetry.Business.CartOpened.Inc()
	}

	handler.RespondJSON(w, http.StatusOK, cartResponse{CartView: view})
}

// Add handles POST /cart/add. The product is fetched from the catalog so the
// line snapshot carries authoritative pricing.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := h.decodeLineRequest(w, r)
	if !ok {
		return
	}

	product, err := h.catalog.GetProduct(ctx, req.ProductID)
	if err != nil {
		handler.RespondError(w, h.logger, err)
		return
	}

	view, err := h.cartService.Add(ctx, *product)
	if err != nil {
		handler.RespondError(w, h.logger, err)
		return
	}

	if telemetry.Business != nil {
		telemetry.Business.ProductAddToCart.WithLabelValues(product.ID).Inc()
		telemetry.Business.CartUpdated.WithLabelValues("add").Inc()
	}

	handler.RespondJSON(w, http.StatusOK, cartResponse{CartView: view, CartOpened: true})
}

// Increment handles POST /cart/increment
func (h *CartHandler) Increment(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, "increment", h.cartService.Increment)
}

// Decrement handles POST /cart/decrement
func (h *CartHandler) Decrement(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, "decrement", h.cartService.Decrement)
}

// Remove handles POST /cart/remove
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, "remove", h.cartService.Remove)
}

func (h *CartHandler) adjust(w http.ResponseWriter, r *http.Request, action string, op func(ctx context.Context, id string) (*domain.CartView, error)) {
	req, ok := h.decodeLineRequest(w, r)
	if !ok {
		return
	}

	view, err := op(r.Context(), req.ProductID)
	if err != nil {
		handler.RespondError(w, h.logger, err)
		return
	}

	if telemetry.Business != nil {
		telemetry.Business.CartUpdated.WithLabelValues(action).Inc()
	}

	handler.RespondJSON(w, http.StatusOK, cartResponse{CartView: view})
}

// Clear handles DELETE /cart
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.cartService.Clear(r.Context()); err != nil {
		handler.RespondError(w, h.logger, err)
		return
	}

	if telemetry.Business != nil {
		telemetry.Business.CartCleared.WithLabelValues("manual").Inc()
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CartHandler) decodeLineRequest(w http.ResponseWriter, r *http.Request) (cartLineRequest, bool) {
	var req cartLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handler.RespondError(w, h.logger, domain.Invalid("cart.request", "Invalid request body"))
		return req, false
	}
	if req.ProductID == "" {
		handler.RespondError(w, h.logger, domain.Invalid("cart.request", "productId is required"))
		return req, false
	}
	return req, true
}
