// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/quickly-draw/models"
	"github.com/danielhkuo/quickly-draw/raffle"
	"github.com/danielhkuo/quickly-draw/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "quickly-draw API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},
		{"GET", "/message"},
		{"POST", "/registrations"},
		{"POST", "/admin/login"},
		{"GET", "/admin/registrations"},
		{"GET", "/admin/registrations/export"},
		{"DELETE", "/admin/registrations"},
		{"POST", "/admin/draws"},
		{"PUT", "/admin/message"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusNotFound || w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s not registered (status %d)", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestUnknownRoute(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	mux := NewRouter(db, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/polls/abc", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestAdminRoutesRequireKey(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	testCases := []struct {
		name    string
		headers map[string]string
	}{
		{"missing key", nil},
		{"wrong key", map[string]string{"X-Admin-Key": "not-the-key"}},
	}

	routes := []struct {
		method string
		path   string
		body   interface{}
	}{
		{"GET", "/admin/registrations", nil},
		{"GET", "/admin/registrations/export", nil},
		{"DELETE", "/admin/registrations", nil},
		{"POST", "/admin/draws", models.DrawRequest{Quantity: 1}},
		{"PUT", "/admin/message", models.SetMessageRequest{Text: "hi"}},
	}

	for _, tc := range testCases {
		for _, route := range routes {
			t.Run(tc.name+" "+route.method+" "+route.path, func(t *testing.T) {
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, testutil.MakeRequest(route.method, route.path, route.body, tc.headers))
				testutil.AssertStatus(t, w, http.StatusUnauthorized)
			})
		}
	}
}

// Walks the admin session end to end through the mux.
func TestAdminFlow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg, raffle.WithSeed(3))

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/registrations",
		models.RegisterRequest{Name: "Ana", Numbers: "1,2"}, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/admin/login",
		models.LoginRequest{Password: testutil.TestAdminPassword}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var login models.LoginResponse
	testutil.AssertJSON(t, w, &login)
	headers := map[string]string{"X-Admin-Key": login.AdminKey}

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/admin/draws", models.DrawRequest{Quantity: 2}, headers))
	testutil.AssertStatus(t, w, http.StatusOK)

	var draw models.DrawResponse
	testutil.AssertJSON(t, w, &draw)
	if draw.DrawnNumbers != "1, 2" {
		t.Errorf("Expected drawn numbers '1, 2', got %q", draw.DrawnNumbers)
	}

	if w.Header().Get("X-Request-ID") == "" {
		t.Error("Expected X-Request-ID header on admin route")
	}
}
