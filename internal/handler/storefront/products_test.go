package storefront

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/comforty/storefront/internal/domain"
)

func TestProductHandler_List(t *testing.T) {
	h := NewProductHandler(&mockCatalog{
		listProductsFunc: func(ctx context.Context) ([]domain.Product, error) {
			return []domain.Product{
				{ID: "chair-1", Title: "Cozy Chair", Price: domain.NewAmount(99.5)},
				{ID: "lamp-1", Title: "Arc Lamp", Price: domain.NewAmount(45)},
			}, nil
		},
	}, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	w := httptest.NewRecorder()
	h.List(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var products []domain.Product
	if err := json.Unmarshal(w.Body.Bytes(), &products); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(products) != 2 {
		t.Errorf("expected 2 products, got %d", len(products))
	}
}

func TestProductHandler_ListDegradesToEmpty(t *testing.T) {
	h := NewProductHandler(&mockCatalog{
		listProductsFunc: func(ctx context.Context) ([]domain.Product, error) {
			return nil, domain.ErrCatalogUnavailable
		},
	}, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	w := httptest.NewRecorder()
	h.List(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("catalog failure must still answer 200, got %d", w.Code)
	}
	if body := w.Body.String(); body != "[]\n" {
		t.Errorf("expected empty list, got %q", body)
	}
}

func TestProductHandler_Get(t *testing.T) {
	h := NewProductHandler(&mockCatalog{
		getProductFunc: func(ctx context.Context, id string) (*domain.Product, error) {
			if id != "chair-1" {
				return nil, domain.ErrProductNotFound
			}
			return &domain.Product{ID: id, Title: "Cozy Chair", Price: domain.NewAmount(99.5)}, nil
		},
	}, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/products/chair-1", nil)
	req.SetPathValue("id", "chair-1")
	w := httptest.NewRecorder()
	h.Get(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/products/ghost", nil)
	req.SetPathValue("id", "ghost")
	w = httptest.NewRecorder()
	h.Get(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}
