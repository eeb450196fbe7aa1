package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"thikana_backend/internal/security"

	"github.com/gin-gonic/gin"
)

func protectedRouter(tokens security.TokenManager) *gin.Engine {
	r := gin.New()
	r.GET("/protected", RequireAuth(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString(UserEmailKey)})
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens := security.NewTokenManager("test-secret")

	t.Run("missing header", func(t *testing.T) {
		r := protectedRouter(tokens)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("malformed header", func(t *testing.T) {
		r := protectedRouter(tokens)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		r := protectedRouter(tokens)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid token sets email", func(t *testing.T) {
		r := protectedRouter(tokens)

		token, err := tokens.GenerateAccessToken("rahim@example.com", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := w.Body.String(); body != `{"email":"rahim@example.com"}` {
			t.Fatalf("unexpected body: %s", body)
		}
	})

	t.Run("case insensitive bearer prefix", func(t *testing.T) {
		r := protectedRouter(tokens)

		token, err := tokens.GenerateAccessToken("rahim@example.com", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
