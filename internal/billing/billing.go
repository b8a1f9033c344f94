package billing

import (
	"context"
	"time"
)

// Provider defines the interface for hosted payment session creation.
// Implementations can use Stripe, PayPal, Square, etc.
type Provider interface {
	// CreateCheckoutSession creates a one-time hosted payment session and
	// returns its opaque identifier. Sessions are never partially created:
	// on error the processor holds no session for this request.
	CreateCheckoutSession(ctx context.Context, params CreateCheckoutSessionParams) (*CheckoutSession, error)
}

// CreateCheckoutSessionParams contains parameters for creating a checkout session.
type CreateCheckoutSessionParams struct {
	// Currency code (ISO 4217 lowercase) - e.g., "usd"
	Currency string

	// LineItems are the purchasable entries, one per cart line.
	LineItems []LineItem

	// SuccessURL is where the processor redirects after payment completes.
	SuccessURL string

	// CancelURL is where the processor redirects when the customer backs out.
	CancelURL string

	// Metadata for filtering and reporting in the processor dashboard.
	Metadata map[string]string
}

// LineItem represents one purchasable entry in a checkout session.
type LineItem struct {
	// Name shown to the customer on the hosted payment page.
	Name string

	// ImageURL is a fetchable product image URL (placeholder when absent).
	ImageURL string

	// UnitAmountMinor is the per-unit price in the currency's minor units
	// (cents for USD).
	UnitAmountMinor int64

	// Quantity of this line item.
	Quantity int64
}

// CheckoutSession represents a created hosted payment session.
type CheckoutSession struct {
	// ID is the processor's session identifier (cs_...)
	ID string

	// URL is the hosted payment page the customer is sent to.
	URL string

	// CreatedAt is when the session was created.
	CreatedAt time.Time
}
