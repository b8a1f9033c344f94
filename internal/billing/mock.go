package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MockProvider is a mock billing provider for testing.
// Simulates session creation without calling the Stripe API.
type MockProvider struct {
	// CreateCheckoutSessionFunc allows customizing session creation behavior
	CreateCheckoutSessionFunc func(ctx context.Context, params CreateCheckoutSessionParams) (*CheckoutSession, error)

	// Sessions stores created sessions by ID for test assertions
	Sessions map[string]*CheckoutSession

	// Requests records the params of every CreateCheckoutSession call
	Requests []CreateCheckoutSessionParams
}

// NewMockProvider creates a new mock billing provider.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		Sessions: make(map[string]*CheckoutSession),
	}
}

// CreateCheckoutSession records the request and returns a fake session,
// unless a custom func overrides the behavior.
func (m *MockProvider) CreateCheckoutSession(ctx context.Context, params CreateCheckoutSessionParams) (*CheckoutSession, error) {
	m.Requests = append(m.Requests, params)

	if m.CreateCheckoutSessionFunc != nil {
		return m.CreateCheckoutSessionFunc(ctx, params)
	}

	if len(params.LineItems) == 0 {
		return nil, ErrNoLineItems
	}

	session := &CheckoutSession{
		ID:        fmt.Sprintf("cs_test_%s", uuid.New().String()[:8]),
		URL:       fmt.Sprintf("https://checkout.example.com/c/pay/%s", uuid.New().String()[:8]),
		CreatedAt: time.Now(),
	}
	m.Sessions[session.ID] = session

	return session, nil
}
