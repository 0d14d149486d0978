package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tradeportal/internal/adapter/persistence/repository"
	"tradeportal/internal/domain/entities"
	"tradeportal/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func identityRouter(store *repository.MemoryTokenStore) (*gin.Engine, *usecase.Actor) {
	gin.SetMode(gin.TestMode)
	captured := &usecase.Actor{}
	r := gin.New()
	r.Use(Identity(store))
	r.GET("/whoami", func(c *gin.Context) {
		actor, ok := CurrentActor(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		*captured = actor
		c.JSON(http.StatusOK, actor)
	})
	return r, captured
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestIdentity_BearerJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("valid token attaches actor", func(t *testing.T) {
		r, captured := identityRouter(nil)

		signed := signToken(t, "test-secret", jwt.MapClaims{
			"sub":         "cust-1",
			"role":        "customer",
			"tier":        "basic",
			"business_id": "",
			"exp":         time.Now().Add(time.Hour).Unix(),
		})

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+signed)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if captured.UserID != "cust-1" || captured.Role != entities.RoleCustomer {
			t.Fatalf("unexpected actor: %+v", captured)
		}
		if captured.Tier != entities.TierBasic {
			t.Fatalf("expected basic tier, got %s", captured.Tier)
		}
	})

	t.Run("missing header rejected", func(t *testing.T) {
		r, _ := identityRouter(nil)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		r, _ := identityRouter(nil)

		signed := signToken(t, "other-secret", jwt.MapClaims{"sub": "cust-1", "role": "customer"})

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+signed)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("token without identity claims rejected", func(t *testing.T) {
		r, _ := identityRouter(nil)

		signed := signToken(t, "test-secret", jwt.MapClaims{"sub": "cust-1"})

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+signed)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("expired token rejected", func(t *testing.T) {
		r, _ := identityRouter(nil)

		signed := signToken(t, "test-secret", jwt.MapClaims{
			"sub":  "cust-1",
			"role": "customer",
			"exp":  time.Now().Add(-time.Hour).Unix(),
		})

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+signed)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestIdentity_TestTokens(t *testing.T) {
	t.Run("one-time token attaches actor and is consumed", func(t *testing.T) {
		t.Setenv("AUTH_TEST_TOKENS", "on")

		store := repository.NewMemoryTokenStore()
		if err := store.Create(context.Background(), "tok-1", "tp-1|tradesperson|pro|biz-1"); err != nil {
			t.Fatalf("create token: %v", err)
		}

		r, captured := identityRouter(store)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("X-Auth-Token", "tok-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if captured.UserID != "tp-1" || captured.Role != entities.RoleTradesperson {
			t.Fatalf("unexpected actor: %+v", captured)
		}
		if captured.Tier != entities.TierPro || captured.BusinessID != "biz-1" {
			t.Fatalf("expected tier and business from subject, got %+v", captured)
		}

		// Second use must fall through to the bearer path and fail.
		w2 := httptest.NewRecorder()
		req2 := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req2.Header.Set("X-Auth-Token", "tok-1")
		r.ServeHTTP(w2, req2)
		if w2.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 on reuse, got %d", w2.Code)
		}
	})

	t.Run("flag off ignores the header", func(t *testing.T) {
		t.Setenv("AUTH_TEST_TOKENS", "")

		store := repository.NewMemoryTokenStore()
		if err := store.Create(context.Background(), "tok-1", "tp-1|tradesperson"); err != nil {
			t.Fatalf("create token: %v", err)
		}

		r, _ := identityRouter(store)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("X-Auth-Token", "tok-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}
