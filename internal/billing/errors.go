package billing

import "errors"

var (
	// ErrSessionCreateFailed is returned when the processor rejects a
	// checkout session request. The underlying processor error is wrapped.
	ErrSessionCreateFailed = errors.New("billing: failed to create checkout session")

	// ErrNoLineItems is returned when a session is requested with no
	// purchasable entries.
	ErrNoLineItems = errors.New("billing: checkout session requires at least one line item")
)
