package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"school-backend/internal/auth"
	"school-backend/internal/config"
)

func testAuthMiddleware() *AuthMiddleware {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpirationHours = 1
	// The user repo is only reached after a token validates
	return NewAuthMiddleware(auth.NewJWTManager(cfg), nil)
}

func TestAuthenticateRejectsBadHeaders(t *testing.T) {
	m := testAuthMiddleware()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler should not be called")
	})

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"missing token", "Bearer"},
		{"invalid token", "Bearer not.a.token"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/students", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()

			m.Authenticate(next).ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
			}
		})
	}
}

func TestContextAccessors(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDKey, 3)
	ctx = context.WithValue(ctx, EmailKey, "admin@school.com")
	ctx = context.WithValue(ctx, RoleKey, "admin")

	if id, ok := GetUserIDFromContext(ctx); !ok || id != 3 {
		t.Errorf("GetUserIDFromContext = %d, %v", id, ok)
	}
	if email, ok := GetEmailFromContext(ctx); !ok || email != "admin@school.com" {
		t.Errorf("GetEmailFromContext = %q, %v", email, ok)
	}
	if role, ok := GetRoleFromContext(ctx); !ok || role != "admin" {
		t.Errorf("GetRoleFromContext = %q, %v", role, ok)
	}

	if _, ok := GetUserIDFromContext(context.Background()); ok {
		t.Error("expected missing user ID to report ok=false")
	}
}
