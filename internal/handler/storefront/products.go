package storefront

import (
	"log/slog"
	"net/http"

	"github.com/comforty/storefront/internal/domain"
	"github.com/comforty/storefront/internal/handler"
	"github.com/comforty/storefront/internal/telemetry"
)

// ProductHandler serves the product catalog read endpoints.
type ProductHandler struct {
	catalog domain.Catalog
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(catalog domain.Catalog, logger *slog.Logger) *ProductHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProductHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// List handles GET /api/products.
// A content backend failure degrades to an empty list so the storefront
// still renders; the failure is logged server-side.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.ListProducts(r.Context())
	if err != nil {
		h.logger.Error("product listing failed", "error", err)
		products = nil
	}
	if products == nil {
		products = []domain.Product{}
	}

	if telemetry.Business != nil {
		telemetry.Business.ProductListViews.WithLabelValues("api").Inc()
	}

	handler.RespondJSON(w, http.StatusOK, products)
}

// Get handles GET /api/products/{id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		handler.RespondError(w, h.logger, domain.Invalid("products.get", "Product identifier is required"))
		return
	}

	product, err := h.catalog.GetProduct(r.Context(), id)
	if err != nil {
		if telemetry.Business != nil {
			telemetry.Business.ProductViews.WithLabelValues("false").Inc()
		}
		handler.RespondError(w, h.logger, err)
		return
	}

	if telemetry.Business != nil {
		telemetry.Business.ProductViews.WithLabelValues("true").Inc()
	}

	handler.RespondJSON(w, http.StatusOK, product)
}
