package auth

import (
	"testing"

	"school-backend/internal/config"
	"school-backend/internal/models"
)

func testConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.ExpirationHours = 1
	cfg.JWT.Issuer = "school-backend"
	return cfg
}

func TestGenerateAndValidateToken(t *testing.T) {
	manager := NewJWTManager(testConfig("test-secret"))

	user := &models.User{
		ID:       7,
		Email:    "accountant@school.com",
		Role:     "accountant",
		IsActive: true,
	}

	token, err := manager.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken returned empty token")
	}

	claims, err := manager.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}

	if claims.UserID != 7 {
		t.Errorf("UserID = %d, want 7", claims.UserID)
	}
	if claims.Email != "accountant@school.com" {
		t.Errorf("Email = %q, want accountant@school.com", claims.Email)
	}
	if claims.Role != "accountant" {
		t.Errorf("Role = %q, want accountant", claims.Role)
	}
	if !claims.IsActive {
		t.Error("IsActive = false, want true")
	}
	if claims.Issuer != "school-backend" {
		t.Errorf("Issuer = %q, want school-backend", claims.Issuer)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	manager := NewJWTManager(testConfig("secret-one"))
	other := NewJWTManager(testConfig("secret-two"))

	token, err := manager.GenerateToken(&models.User{ID: 1, Email: "a@b.com", Role: "admin", IsActive: true})
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	if _, err := other.ValidateToken(token); err == nil {
		t.Error("expected validation to fail with a different secret")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	manager := NewJWTManager(testConfig("test-secret"))
	if _, err := manager.ValidateToken("not.a.token"); err == nil {
		t.Error("expected validation to fail for garbage input")
	}
}
