package storefront

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/comforty/storefront/internal/domain"
)

func cartViewWith(lines ...domain.CartLine) *domain.CartView {
	view := &domain.CartView{Lines: lines, Subtotal: domain.NewAmount(0)}
	for _, l := range lines {
		view.Subtotal = view.Subtotal.Add(l.TotalPrice)
		view.ItemCount += l.Quantity
	}
	return view
}

func TestCartHandler_View(t *testing.T) {
	chair := domain.CartLine{
		ProductID:      "chair-1",
		Title:          "Cozy Chair",
		UnitPrice:      domain.NewAmount(99.5),
		Quantity:       2,
		TotalPrice:     domain.NewAmount(199),
		ShipmentStatus: domain.ShipmentStatusProcessing,
	}

	h := NewCartHandler(&mockCartService{
		viewFunc: func(ctx context.Context) (*domain.CartView, error) {
			return cartViewWith(chair), nil
		},
	}, &mockCatalog{}, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	w := httptest.NewRecorder()
	h.View(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var body struct {
		Lines    []json.RawMessage `json:"lines"`
		Subtotal float64           `json:"subtotal"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(body.Lines))
	}
	if body.Subtotal != 199 {
		t.Errorf("expected subtotal 199, got %v", body.Subtotal)
	}
	if strings.Contains(w.Body.String(), `"cartOpened"`) {
		t.Error("view response must not carry the cartOpened signal")
	}
}

func TestCartHandler_Add(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		getProduct     func(ctx context.Context, id string) (*domain.Product, error)
		add            func(ctx context.Context, p domain.Product) (*domain.CartView, error)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "adds known product",
			body: `{"productId":"chair-1"}`,
			getProduct: func(ctx context.Context, id string) (*domain.Product, error) {
				return &domain.Product{ID: id, Title: "Cozy Chair", Price: domain.NewAmount(99.5)}, nil
			},
			add: func(ctx context.Context, p domain.Product) (*domain.CartView, error) {
				return cartViewWith(domain.CartLine{
					ProductID:  p.ID,
					Title:      p.Title,
					UnitPrice:  p.Price,
					Quantity:   1,
					TotalPrice: p.Price,
				}), nil
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				if !strings.Contains(body, `"cartOpened":true`) {
					t.Error("expected cartOpened signal in add response")
				}
				if !strings.Contains(body, `"chair-1"`) {
					t.Error("expected added line in response")
				}
			},
		},
		{
			name:           "unknown product",
			body:           `{"productId":"ghost"}`,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "missing productId",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed body",
			body:           `{"productId":`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewCartHandler(
				&mockCartService{addFunc: tt.add},
				&mockCatalog{getProductFunc: tt.getProduct},
				testLogger(),
			)

			req := httptest.NewRequest(http.MethodPost, "/cart/add", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			h.Add(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
			if tt.checkBody != nil {
				tt.checkBody(t, w.Body.String())
			}
		})
	}
}

func TestCartHandler_AdjustRoutes(t *testing.T) {
	var gotID string
	record := func(ctx context.Context, id string) (*domain.CartView, error) {
		gotID = id
		return cartViewWith(), nil
	}

	svc := &mockCartService{
		incrementFunc: record,
		decrementFunc: record,
		removeFunc:    record,
	}
	h := NewCartHandler(svc, &mockCatalog{}, testLogger())

	handlers := map[string]http.HandlerFunc{
		"/cart/increment": h.Increment,
		"/cart/decrement": h.Decrement,
		"/cart/remove":    h.Remove,
	}

	for path, fn := range handlers {
		gotID = ""
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{"productId":"lamp-1"}`))
		w := httptest.NewRecorder()
		fn(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("%s: expected status 200, got %d", path, w.Code)
		}
		if gotID != "lamp-1" {
			t.Errorf("%s: expected service call with lamp-1, got %q", path, gotID)
		}
	}
}

func TestCartHandler_AdjustUnknownLine(t *testing.T) {
	h := NewCartHandler(&mockCartService{
		incrementFunc: func(ctx context.Context, id string) (*domain.CartView, error) {
			return nil, domain.ErrLineNotFound
		},
	}, &mockCatalog{}, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/cart/increment", strings.NewReader(`{"productId":"ghost"}`))
	w := httptest.NewRecorder()
	h.Increment(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestCartHandler_Clear(t *testing.T) {
	cleared := false
	h := NewCartHandler(&mockCartService{
		clearFunc: func(ctx context.Context) error {
			cleared = true
			return nil
		},
	}, &mockCatalog{}, testLogger())

	req := httptest.NewRequest(http.MethodDelete, "/cart", nil)
	w := httptest.NewRecorder()
	h.Clear(w, req)

	if !cleared {
		t.Error("expected Clear to be called")
	}
	if w.Code != http.StatusNoContent {
		t.Errorf("expected status 204, got %d", w.Code)
	}
}
