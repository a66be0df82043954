package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}
}

func TestRequireAdminToken_SkipsWhenUnconfigured(t *testing.T) {
	handler := RequireAdminToken("", okHandler())

	req := httptest.NewRequest(http.MethodPut, "/v1/team", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 without a configured token, got %d", rec.Code)
	}
}

func TestRequireAdminToken_RejectsMissingToken(t *testing.T) {
	handler := RequireAdminToken("sekret", okHandler())

	req := httptest.NewRequest(http.MethodPut, "/v1/team", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 for missing token, got %d", rec.Code)
	}
}

func TestRequireAdminToken_RejectsWrongToken(t *testing.T) {
	handler := RequireAdminToken("sekret", okHandler())

	req := httptest.NewRequest(http.MethodPut, "/v1/team", nil)
	req.Header.Set("X-Admin-Token", "wrong")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 for wrong token, got %d", rec.Code)
	}
}

func TestRequireAdminToken_AcceptsMatchingToken(t *testing.T) {
	handler := RequireAdminToken("sekret", okHandler())

	req := httptest.NewRequest(http.MethodPut, "/v1/team", nil)
	req.Header.Set("X-Admin-Token", "sekret")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 for matching token, got %d", rec.Code)
	}
}

func TestCORS_AllowsConfiguredOrigin(t *testing.T) {
	handler := CORS([]string{"https://klubhuset.app"}, okHandler())

	req := httptest.NewRequest(http.MethodGet, "/v1/scoreboard", nil)
	req.Header.Set("Origin", "https://klubhuset.app")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://klubhuset.app" {
		t.Fatalf("unexpected Access-Control-Allow-Origin: %q", got)
	}
}

func TestCORS_OptionsPreflight(t *testing.T) {
	handler := CORS([]string{"*"}, okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/v1/scoreboard", nil)
	req.Header.Set("Origin", "https://klubhuset.app")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("unexpected Access-Control-Allow-Origin: %q", got)
	}
}

func TestCORS_DisallowsUnconfiguredOrigin(t *testing.T) {
	handler := CORS([]string{"https://allowed.example.com"}, okHandler())

	req := httptest.NewRequest(http.MethodGet, "/v1/scoreboard", nil)
	req.Header.Set("Origin", "https://not-allowed.example.com")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected empty Access-Control-Allow-Origin, got %q", got)
	}
}
