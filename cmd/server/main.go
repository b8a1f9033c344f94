package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/comforty/storefront/internal"
	"github.com/comforty/storefront/internal/billing"
	"github.com/comforty/storefront/internal/catalog"
	"github.com/comforty/storefront/internal/handler/storefront"
	"github.com/comforty/storefront/internal/middleware"
	"github.com/comforty/storefront/internal/router"
	"github.com/comforty/storefront/internal/routes"
	"github.com/comforty/storefront/internal/service"
	"github.com/comforty/storefront/internal/storage"
	"github.com/comforty/storefront/internal/telemetry"
)

func run() error {
	ctx := context.Background()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Initialize content catalog client
	logger.Info("Initializing catalog client...",
		"project", cfg.Content.ProjectID,
		"dataset", cfg.Content.Dataset,
		"cdn", cfg.Content.UseCDN,
	)
	catalogClient := catalog.NewClient(cfg.Content)

	// Initialize cart snapshot storage
	store, err := storage.NewStore(cfg.Cart)
	if err != nil {
		return fmt.Errorf("failed to initialize cart storage: %w", err)
	}
	logger.Info("Cart storage initialized", "provider", cfg.Cart.Provider)

	// Initialize cart service from the persisted snapshot
	cartService, err := service.NewCartService(ctx, store, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize cart service: %w", err)
	}

	// Initialize Stripe billing provider
	logger.Info("Initializing Stripe billing provider...")
	stripeConfig := billing.StripeConfig{
		APIKey:     cfg.Stripe.SecretKey,
		MaxRetries: 3,
	}
	billingProvider, err := billing.NewStripeProvider(stripeConfig)
	if err != nil {
		return fmt.Errorf("failed to initialize Stripe provider: %w", err)
	}
	logger.Info("Stripe billing provider initialized", "test_mode", stripeConfig.IsTestMode())

	// Initialize checkout service
	checkoutService := service.NewCheckoutService(catalogClient, billingProvider, cfg.Currency, logger)

	// Initialize Prometheus metrics
	metrics := middleware.NewMetrics("comforty")
	telemetry.InitBusinessMetrics("comforty")

	// Build route dependencies
	storefrontDeps := routes.StorefrontDeps{
		ProductHandler:  storefront.NewProductHandler(catalogClient, logger),
		CartHandler:     storefront.NewCartHandler(cartService, catalogClient, logger),
		CheckoutHandler: storefront.NewCheckoutHandler(cartService, checkoutService, cfg.BaseURL, logger),
		OutcomeHandler:  storefront.NewOutcomeHandler(cartService, logger),
	}
	opsDeps := routes.OpsDeps{
		MetricsHandler: metrics.Handler(),
	}

	// Create router and register routes
	r := router.New(
		router.Recovery(logger),
		middleware.RequestID,
		metrics.Middleware,
		middleware.MaxBodySize(middleware.DefaultMaxBodySize),
		middleware.Timeout(middleware.DefaultTimeout),
		router.Logger(logger),
		router.CORS([]string{"*"}),
	)

	routes.RegisterStorefrontRoutes(r, storefrontDeps)
	routes.RegisterOpsRoutes(r, opsDeps)

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("Starting storefront server", "address", addr, "env", cfg.Env)

	if err := http.ListenAndServe(addr, r); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
