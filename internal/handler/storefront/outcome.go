package storefront

import (
	"fmt"
	"html/template"
	"log/slog"
	"math/rand/v2"
	"net/http"

	"github.com/comforty/storefront/internal/domain"
	"github.com/comforty/storefront/internal/telemetry"
)

// OutcomeHandler serves the post-checkout landing pages. Both pages are
// display-only: they read whatever cart state is left over but never treat
// the landing as proof of payment.
type OutcomeHandler struct {
	cartService domain.CartService
	logger      *slog.Logger
	success     *template.Template
	cancel      *template.Template
}

// NewOutcomeHandler creates a new outcome handler
func NewOutcomeHandler(cartService domain.CartService, logger *slog.Logger) *OutcomeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &OutcomeHandler{
		cartService: cartService,
		logger:      logger,
		success:     template.Must(template.New("success").Parse(successPage)),
		cancel:      template.Must(template.New("cancel").Parse(cancelPage)),
	}
}

// Success handles GET /success
func (h *OutcomeHandler) Success(w http.ResponseWriter, r *http.Request) {
	if telemetry.Business != nil {
		telemetry.Business.CheckoutCompleted.Inc()
	}

	data := map[string]any{
		"TrackingRef": newTrackingRef(),
	}

	view, err := h.cartService.View(r.Context())
	if err != nil {
		h.logger.Error("failed to load cart for success page", "error", err)
	} else {
		data["Lines"] = view.Lines
		data["Subtotal"] = view.Subtotal
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.success.Execute(w, data); err != nil {
		h.logger.Error("failed to render success page", "error", err)
	}
}

// Cancel handles GET /cancel
func (h *OutcomeHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if telemetry.Business != nil {
		telemetry.Business.CheckoutCanceled.Inc()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.cancel.Execute(w, nil); err != nil {
		h.logger.Error("failed to render cancel page", "error", err)
	}
}

// newTrackingRef generates a display-only order reference. It is not an
// order identifier; no order record exists behind it.
func newTrackingRef() string {
	return fmt.Sprintf("TRACK-%d", rand.IntN(10000))
}

const successPage = `<!DOCTYPE html>
<html>
<head><title>Order Confirmed</title></head>
<body>
  <h1>Thank you for your order!</h1>
  <p>Your payment was received. Tracking reference: <strong>{{.TrackingRef}}</strong></p>
  {{if .Lines}}
  <h2>Order summary</h2>
  <ul>
    {{range .Lines}}<li>{{.Title}} &times; {{.Quantity}} &mdash; {{.TotalPrice}}</li>{{end}}
  </ul>
  <p>Subtotal: {{.Subtotal}}</p>
  {{end}}
  <p><a href="/">Continue shopping</a></p>
</body>
</html>
`

const cancelPage = `<!DOCTYPE html>
<html>
<head><title>Checkout Canceled</title></head>
<body>
  <h1>Checkout canceled</h1>
  <p>Your payment was not processed. Your cart is unchanged.</p>
  <p><a href="/cart">Return to cart</a></p>
</body>
</html>
`
