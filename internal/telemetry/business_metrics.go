package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BusinessMetrics holds Prometheus metrics for business-level observability:
// the catalog, cart, and checkout funnel.
type BusinessMetrics struct {
	// Product engagement
	ProductListViews *prometheus.CounterVec
	ProductViews     *prometheus.CounterVec
	ProductAddToCart *prometheus.CounterVec

	// Cart
	CartUpdated *prometheus.CounterVec
	CartCleared *prometheus.CounterVec
	CartValue   *prometheus.HistogramVec
	CartOpened  prometheus.Counter

	// Checkout funnel
	CheckoutStarted   prometheus.Counter
	CheckoutCompleted prometheus.Counter
	CheckoutCanceled  prometheus.Counter
	CheckoutFailed    *prometheus.CounterVec

	// Upstream dependencies
	CatalogRequestDuration *prometheus.HistogramVec
	CatalogFailures        *prometheus.CounterVec
}

// NewBusinessMetrics creates and registers all business metrics
func NewBusinessMetrics(namespace string) *BusinessMetrics {
	if namespace == "" {
		namespace = "comforty"
	}

	subsystem := "business"

	m := &BusinessMetrics{
		ProductListViews: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "product_list_views_total",
				Help:      "Total product listing requests",
			},
			[]string{"source"}, // source: api, cdn_fallback
		),
		ProductViews: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "product_views_total",
				Help:      "Total single-product fetches",
			},
			[]string{"found"},
		),
		ProductAddToCart: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "product_add_to_cart_total",
				Help:      "Total add to cart actions",
			},
			[]string{"product_id"},
		),
		CartUpdated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "cart_updated_total",
				Help:      "Total cart update operations",
			},
			[]string{"action"}, // action: add, increment, decrement, remove
		),
		CartCleared: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "cart_cleared_total",
				Help:      "Total carts cleared",
			},
			[]string{"reason"}, // reason: purchase, manual
		),
		CartValue: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "cart_value_cents",
				Help:      "Cart value at checkout start",
				Buckets:   []float64{1000, 2500, 5000, 10000, 25000, 50000, 100000, 250000},
			},
			[]string{"currency"},
		),
		CartOpened: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "cart_opened_total",
				Help:      "Total cart page views",
			},
		),
		CheckoutStarted: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "checkout_started_total",
				Help:      "Total checkout session requests",
			},
		),
		CheckoutCompleted: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "checkout_completed_total",
				Help:      "Total landings on the success page",
			},
		),
		CheckoutCanceled: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "checkout_canceled_total",
				Help:      "Total landings on the cancel page",
			},
		),
		CheckoutFailed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "checkout_failed_total",
				Help:      "Total checkout session failures",
			},
			[]string{"reason"}, // reason: invalid, payment, unavailable, internal
		),
		CatalogRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "catalog_request_duration_seconds",
				Help:      "Content backend query duration",
				Buckets:   []float64{.025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"operation"}, // operation: list_products, get_product
		),
		CatalogFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "catalog_failures_total",
				Help:      "Total content backend query failures",
			},
			[]string{"operation"},
		),
	}

	return m
}

// Global instance for easy access from handlers
var Business *BusinessMetrics

// InitBusinessMetrics initializes the global business metrics instance
func InitBusinessMetrics(namespace string) *BusinessMetrics {
	Business = NewBusinessMetrics(namespace)
	return Business
}
