package domain

import "context"

// Cart domain errors.
var (
	ErrLineNotFound = &Error{Code: ENOTFOUND, Message: "Cart line not found"}
	ErrCartEmpty    = &Error{Code: EINVALID, Message: "Cart is empty"}
)

// ShipmentStatusProcessing is the fixed marker a new cart line starts with.
// Nothing in this subsystem transitions it further.
const ShipmentStatusProcessing = "Processing"

// CartService maintains the authoritative in-session cart and mirrors it to
// durable local storage on every mutation.
type CartService interface {
	// Add creates a line for the product with quantity 1, or increments the
	// existing line. The product snapshot (title, price, image) is captured
	// at add time and never re-fetched.
	Add(ctx context.Context, p Product) (*CartView, error)

	// Increment raises an existing line's quantity by 1 and recomputes its
	// total. Returns ErrLineNotFound for an unknown identifier.
	Increment(ctx context.Context, id string) (*CartView, error)

	// Decrement lowers an existing line's quantity by 1 and recomputes its
	// total. A quantity-1 line is left unchanged; the quantity never reaches
	// zero through this path. Returns ErrLineNotFound for an unknown
	// identifier.
	Decrement(ctx context.Context, id string) (*CartView, error)

	// Remove deletes the line unconditionally. Unknown identifiers are a
	// no-op.
	Remove(ctx context.Context, id string) (*CartView, error)

	// Clear removes every line.
	Clear(ctx context.Context) error

	// View returns the current lines and totals.
	View(ctx context.Context) (*CartView, error)
}

// CartLine is one product entry in the cart: a product snapshot taken at add
// time plus the quantity and its derived total. The JSON tags are the
// persisted snapshot layout.
type CartLine struct {
	ProductID      string   `json:"_id"`
	Title          string   `json:"title" validate:"required"`
	Image          ImageRef `json:"image"`
	UnitPrice      Amount   `json:"price"`
	Quantity       int      `json:"quantity" validate:"gte=1"`
	TotalPrice     Amount   `json:"totalPrice"`
	ShipmentStatus string   `json:"shipmentStatus"`
}

// CartView aggregates the cart's lines with calculated totals.
// Lines preserve insertion order for display.
type CartView struct {
	Lines     []CartLine `json:"lines"`
	Subtotal  Amount     `json:"subtotal"`
	ItemCount int        `json:"itemCount"`
}

// CheckoutService turns submitted cart lines into a hosted payment session.
type CheckoutService interface {
	// CreateSession creates a one-time payment session for the given lines.
	// origin is the scheme://host of the storefront request; the success and
	// cancel destinations are derived from it. On any failure no session
	// exists and the error carries a user-facing message.
	CreateSession(ctx context.Context, origin string, lines []CartLine) (*CheckoutSession, error)
}

// CheckoutSession is the processor's handle for a checkout attempt.
type CheckoutSession struct {
	// ID is the opaque session identifier the client redirects with.
	ID string `json:"id"`

	// URL is the hosted payment page for server-driven redirects.
	URL string `json:"url,omitempty"`
}
