package storefront

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/comforty/storefront/internal/domain"
	"github.com/comforty/storefront/internal/handler"
	"github.com/comforty/storefront/internal/telemetry"
)

// CheckoutHandler handles payment session creation and the redirect-based
// checkout flow.
type CheckoutHandler struct {
	cartService     domain.CartService
	checkoutService domain.CheckoutService
	baseURL         string
	logger          *slog.Logger
}

// NewCheckoutHandler creates a new checkout handler. baseURL is the fallback
// origin when the request carries none.
func NewCheckoutHandler(cartService domain.CartService, checkoutService domain.CheckoutService, baseURL string, logger *slog.Logger) *CheckoutHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CheckoutHandler{
		cartService:     cartService,
		checkoutService: checkoutService,
		baseURL:         baseURL,
		logger:          logger,
	}
}

// paymentRequest is the client-submitted checkout payload.
type paymentRequest struct {
	CartProducts []domain.CartLine `json:"cartProducts"`
}

// paymentResponse carries the created session identifier.
type paymentResponse struct {
	ID string `json:"id"`
}

// CreatePaymentSession handles POST /api/payment.
//
// The wire contract is fixed: {"id": "..."} on success, {"error": "..."}
// with status 500 on any failure. Clients branch only on the presence of an
// id, so failures are not differentiated by status here.
func (h *CheckoutHandler) CreatePaymentSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Info("payment request rejected", "error", err)
		h.respondPaymentError(w)
		return
	}

	h.trackCheckoutStarted(req.CartProducts)

	session, err := h.checkoutService.CreateSession(ctx, requestOrigin(r, h.baseURL), req.CartProducts)
	if err != nil {
		h.logger.Error("payment session creation failed",
			"error", err,
			"code", domain.ErrorCode(err),
			"lines", len(req.CartProducts),
		)
		if telemetry.Business != nil {
			telemetry.Business.CheckoutFailed.WithLabelValues(domain.ErrorCode(err)).Inc()
		}
		h.respondPaymentError(w)
		return
	}

	handler.RespondJSON(w, http.StatusOK, paymentResponse{ID: session.ID})
}

// Start handles POST /checkout: the server-driven flow. It reads the held
// cart, creates a session, and redirects the browser to the hosted payment
// page. On failure the cart is left untouched.
func (h *CheckoutHandler) Start(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	view, err := h.cartService.View(ctx)
	if err != nil {
		handler.RespondError(w, h.logger, err)
		return
	}

	h.trackCheckoutStarted(view.Lines)

	session, err := h.checkoutService.CreateSession(ctx, requestOrigin(r, h.baseURL), view.Lines)
	if err != nil {
		if telemetry.Business != nil {
			telemetry.Business.CheckoutFailed.WithLabelValues(domain.ErrorCode(err)).Inc()
		}
		handler.RespondError(w, h.logger, err)
		return
	}

	if session.URL == "" {
		handler.RespondJSON(w, http.StatusOK, paymentResponse{ID: session.ID})
		return
	}
	http.Redirect(w, r, session.URL, http.StatusSeeOther)
}

func (h *CheckoutHandler) trackCheckoutStarted(lines []domain.CartLine) {
	if telemetry.Business == nil {
		return
	}
	telemetry.Business.CheckoutStarted.Inc()

	subtotal := domain.NewAmount(0)
	for _, line := range lines {
		subtotal = subtotal.Add(line.TotalPrice)
	}
	telemetry.Business.CartValue.WithLabelValues("usd").Observe(float64(subtotal.MinorUnits()))
}

func (h *CheckoutHandler) respondPaymentError(w http.ResponseWriter) {
	handler.RespondJSON(w, http.StatusInternalServerError,
		handler.ErrorResponse{Error: "Error creating checkout session"})
}
