package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRouter_MethodRouting(t *testing.T) {
	r := New()

	var called string
	r.Get("/cart", func(w http.ResponseWriter, req *http.Request) {
		called = "get"
	})
	r.Delete("/cart", func(w http.ResponseWriter, req *http.Request) {
		called = "delete"
	})

	req := httptest.NewRequest(http.MethodDelete, "/cart", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if called != "delete" {
		t.Errorf("expected delete handler, got %q", called)
	}

	req = httptest.NewRequest(http.MethodGet, "/cart", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if called != "get" {
		t.Errorf("expected get handler, got %q", called)
	}
}

func TestRouter_PathValue(t *testing.T) {
	r := New()

	var gotID string
	r.Get("/api/products/{id}", func(w http.ResponseWriter, req *http.Request) {
		gotID = req.PathValue("id")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/products/chair-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if gotID != "chair-1" {
		t.Errorf("expected path value chair-1, got %q", gotID)
	}
}

func TestRouter_MiddlewareOrder(t *testing.T) {
	var order []string

	middleware1 := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "before1")
			next.ServeHTTP(w, r)
			order = append(order, "after1")
		})
	}

	middleware2 := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "before2")
			next.ServeHTTP(w, r)
			order = append(order, "after2")
		})
	}

	r := New(middleware1)
	r.Get("/test", func(w http.ResponseWriter, req *http.Request) {
		order = append(order, "handler")
		w.WriteHeader(http.StatusOK)
	}, middleware2)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	expected := []string{"before1", "before2", "handler", "after2", "after1"}
	if len(order) != len(expected) {
		t.Fatalf("expected %d elements, got %d", len(expected), len(order))
	}
	for i, v := range expected {
		if order[i] != v {
			t.Errorf("position %d: expected %s, got %s", i, v, order[i])
		}
	}
}

func TestRouter_Group(t *testing.T) {
	globalCalled := false
	groupCalled := false

	globalMiddleware := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			globalCalled = true
			next.ServeHTTP(w, r)
		})
	}
	groupMiddleware := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			groupCalled = true
			next.ServeHTTP(w, r)
		})
	}

	r := New(globalMiddleware)
	g := r.Group(groupMiddleware)
	g.Get("/grouped", func(w http.ResponseWriter, req *http.Request) {})
	r.Get("/plain", func(w http.ResponseWriter, req *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/grouped", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)
	if !globalCalled || !groupCalled {
		t.Error("group route must run global and group middleware")
	}

	globalCalled, groupCalled = false, false
	req = httptest.NewRequest(http.MethodGet, "/plain", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)
	if !globalCalled {
		t.Error("plain route must run global middleware")
	}
	if groupCalled {
		t.Error("plain route must not run group middleware")
	}
}
