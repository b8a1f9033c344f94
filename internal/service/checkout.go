package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/comforty/storefront/internal/billing"
	"github.com/comforty/storefront/internal/domain"
)

// checkoutService implements domain.CheckoutService on top of a billing
// provider. Pricing is recomputed from the catalog for every line that
// carries a product identifier; the client-submitted amount is never billed
// for known products.
type checkoutService struct {
	catalog  domain.Catalog
	provider billing.Provider
	currency string
	validate *validator.Validate
	logger   *slog.Logger
}

// NewCheckoutService creates a checkout service. currency is the ISO 4217
// code used for every line item.
func NewCheckoutService(catalog domain.Catalog, provider billing.Provider, currency string, logger *slog.Logger) domain.CheckoutService {
	return &checkoutService{
		catalog:  catalog,
		provider: provider,
		currency: strings.ToLower(currency),
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

func (s *checkoutService) CreateSession(ctx context.Context, origin string, lines []domain.CartLine) (*domain.CheckoutSession, error) {
	const op = "checkout.create_session"

	if len(lines) == 0 {
		return nil, domain.ErrCartEmpty
	}
	if origin == "" {
		return nil, domain.Invalid(op, "Request origin is required")
	}

	items := make([]billing.LineItem, 0, len(lines))
	for i, line := range lines {
		if err := s.validate.Struct(line); err != nil {
			return nil, domain.WrapError(err, domain.EINVALID, op,
				fmt.Sprintf("Cart line %d is invalid", i))
		}

		unitMinor, err := s.unitAmount(ctx, line)
		if err != nil {
			return nil, err
		}

		items = append(items, billing.LineItem{
			Name:            line.Title,
			ImageURL:        line.Image.Resolve(s.catalog.ImageURL),
			UnitAmountMinor: unitMinor,
			Quantity:        int64(line.Quantity),
		})
	}

	base := strings.TrimSuffix(origin, "/")
	session, err := s.provider.CreateCheckoutSession(ctx, billing.CreateCheckoutSessionParams{
		Currency:   s.currency,
		LineItems:  items,
		SuccessURL: base + "/success",
		CancelURL:  base + "/cancel",
		Metadata: map[string]string{
			"line_count": fmt.Sprintf("%d", len(lines)),
		},
	})
	if err != nil {
		s.logger.Error("checkout session creation failed", "error", err, "lines", len(lines))
		return nil, domain.WrapError(err, domain.EPAYMENT, op, "Failed to create checkout session")
	}

	s.logger.Info("checkout session created", "session_id", session.ID, "lines", len(lines))
	return &domain.CheckoutSession{ID: session.ID, URL: session.URL}, nil
}

// unitAmount resolves the per-unit charge in minor units. Lines with a
// product identifier are priced from the catalog. Lines without one fall
// back to the submitted totalPrice, which is the line's declared charge per
// unit in that shape.
func (s *checkoutService) unitAmount(ctx context.Context, line domain.CartLine) (int64, error) {
	const op = "checkout.price"

	if line.ProductID == "" {
		if line.TotalPrice.IsNegative() {
			return 0, domain.Invalid(op, "Line amount must not be negative")
		}
		return line.TotalPrice.MinorUnits(), nil
	}

	p, err := s.catalog.GetProduct(ctx, line.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) || domain.ErrorCode(err) == domain.ENOTFOUND {
			return 0, domain.Invalid(op, fmt.Sprintf("Unknown product %q", line.ProductID))
		}
		return 0, domain.WrapError(err, domain.EUNAVAILABLE, op, "Product pricing is unavailable")
	}
	return p.Price.MinorUnits(), nil
}
