package storefront

import (
	"context"
	"io"
	"log/slog"

	"github.com/comforty/storefront/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockCartService implements domain.CartService for testing
type mockCartService struct {
	addFunc       func(ctx context.Context, p domain.Product) (*domain.CartView, error)
	incrementFunc func(ctx context.Context, id string) (*domain.CartView, error)
	decrementFunc func(ctx context.Context, id string) (*domain.CartView, error)
	removeFunc    func(ctx context.Context, id string) (*domain.CartView, error)
	clearFunc     func(ctx context.Context) error
	viewFunc      func(ctx context.Context) (*domain.CartView, error)
}

func (m *mockCartService) Add(ctx context.Context, p domain.Product) (*domain.CartView, error) {
	if m.addFunc != nil {
		return m.addFunc(ctx, p)
	}
	return &domain.CartView{}, nil
}

func (m *mockCartService) Increment(ctx context.Context, id string) (*domain.CartView, error) {
	if m.incrementFunc != nil {
		return m.incrementFunc(ctx, id)
	}
	return &domain.CartView{}, nil
}

func (m *mockCartService) Decrement(ctx context.Context, id string) (*domain.CartView, error) {
	if m.decrementFunc != nil {
		return m.decrementFunc(ctx, id)
	}
	return &domain.CartView{}, nil
}

func (m *mockCartService) Remove(ctx context.Context, id string) (*domain.CartView, error) {
	if m.removeFunc != nil {
		return m.removeFunc(ctx, id)
	}
	return &domain.CartView{}, nil
}

func (m *mockCartService) Clear(ctx context.Context) error {
	if m.clearFunc != nil {
		return m.clearFunc(ctx)
	}
	return nil
}

func (m *mockCartService) View(ctx context.Context) (*domain.CartView, error) {
	if m.viewFunc != nil {
		return m.viewFunc(ctx)
	}
	return &domain.CartView{}, nil
}

// mockCheckoutService implements domain.CheckoutService for testing
type mockCheckoutService struct {
	createSessionFunc func(ctx context.Context, origin string, lines []domain.CartLine) (*domain.CheckoutSession, error)
}

func (m *mockCheckoutService) CreateSession(ctx context.Context, origin string, lines []domain.CartLine) (*domain.CheckoutSession, error) {
	if m.createSessionFunc != nil {
		return m.createSessionFunc(ctx, origin, lines)
	}
	return &domain.CheckoutSession{ID: "cs_test_123"}, nil
}

// mockCatalog implements domain.Catalog for testing
type mockCatalog struct {
	listProductsFunc func(ctx context.Context) ([]domain.Product, error)
	getProductFunc   func(ctx context.Context, id string) (*domain.Product, error)
	imageURLFunc     func(assetID string) string
}

func (m *mockCatalog) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if m.listProductsFunc != nil {
		return m.listProductsFunc(ctx)
	}
	return nil, nil
}

func (m *mockCatalog) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	if m.getProductFunc != nil {
		return m.getProductFunc(ctx, id)
	}
	return nil, domain.ErrProductNotFound
}

func (m *mockCatalog) ImageURL(assetID string) string {
	if m.imageURLFunc != nil {
		return m.imageURLFunc(assetID)
	}
	return ""
}
