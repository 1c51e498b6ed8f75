package users_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"geowiz-backend/internal/bootstrap"
	"geowiz-backend/internal/shared/config"
)

func buildTestApp(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		MediaStoreType:  "local",
		LocalMediaDir:   t.TempDir(),
		Env:             "dev",
		SeedQuestions:   true,
	}
	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app.Router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, guestID string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Guest-Id", guestID)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestProfileUpdateAndFetch(t *testing.T) {
	router := buildTestApp(t)

	// No profile yet.
	respMissing := doJSON(t, router, http.MethodGet, "/api/v1/users/me", "profile-guest", nil)
	if respMissing.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 before profile exists, got %d", respMissing.Code)
	}

	respPut := doJSON(t, router, http.MethodPut, "/api/v1/users/me", "profile-guest", map[string]string{
		"displayName": "Ada",
		"country":     "GB",
	})
	if respPut.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", respPut.Code, respPut.Body.String())
	}

	respGet := doJSON(t, router, http.MethodGet, "/api/v1/users/me", "profile-guest", nil)
	if respGet.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respGet.Code)
	}
	var profile struct {
		ID          string `json:"id"`
		DisplayName string `json:"displayName"`
		Country     string `json:"country"`
	}
	if err := json.NewDecoder(respGet.Body).Decode(&profile); err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	if profile.ID != "guest:profile-guest" || profile.DisplayName != "Ada" || profile.Country != "GB" {
		t.Fatalf("unexpected profile: %+v", profile)
	}

	// Updates overwrite the display name, not the identity.
	respPut2 := doJSON(t, router, http.MethodPut, "/api/v1/users/me", "profile-guest", map[string]string{
		"displayName": "Ada Lovelace",
	})
	if respPut2.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respPut2.Code)
	}
	var updated struct {
		ID          string `json:"id"`
		DisplayName string `json:"displayName"`
	}
	if err := json.NewDecoder(respPut2.Body).Decode(&updated); err != nil {
		t.Fatalf("decode updated profile: %v", err)
	}
	if updated.ID != "guest:profile-guest" || updated.DisplayName != "Ada Lovelace" {
		t.Fatalf("unexpected updated profile: %+v", updated)
	}
}

func TestProfileUpdateRequiresDisplayName(t *testing.T) {
	router := buildTestApp(t)

	resp := doJSON(t, router, http.MethodPut, "/api/v1/users/me", "empty-guest", map[string]string{
		"country": "GB",
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestProfilesAreIsolatedByIdentity(t *testing.T) {
	router := buildTestApp(t)

	respPut := doJSON(t, router, http.MethodPut, "/api/v1/users/me", "first-guest", map[string]string{
		"displayName": "First",
	})
	if respPut.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respPut.Code)
	}

	respOther := doJSON(t, router, http.MethodGet, "/api/v1/users/me", "second-guest", nil)
	if respOther.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for other identity, got %d", respOther.Code)
	}
}
