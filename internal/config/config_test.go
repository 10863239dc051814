package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg := Load()

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.JWT.Secret != "test-secret" {
		t.Errorf("JWT.Secret = %q, want test-secret", cfg.JWT.Secret)
	}
	if cfg.JWT.ExpirationHours != 24 {
		t.Errorf("JWT.ExpirationHours = %d, want 24", cfg.JWT.ExpirationHours)
	}
	if cfg.JWT.Issuer != "school-backend" {
		t.Errorf("JWT.Issuer = %q, want school-backend", cfg.JWT.Issuer)
	}
	if cfg.Monitoring.Port != 9090 {
		t.Errorf("Monitoring.Port = %d, want 9090", cfg.Monitoring.Port)
	}
	if cfg.Database.Host != "localhost" || cfg.Database.Port != 5432 {
		t.Errorf("Database defaults = %s:%d, want localhost:5432", cfg.Database.Host, cfg.Database.Port)
	}
	if cfg.Database.Name != "school_db" {
		t.Errorf("Database.Name = %q, want school_db", cfg.Database.Name)
	}
	if cfg.Razorpay.FeePercent != 2.5 {
		t.Errorf("Razorpay.FeePercent = %v, want 2.5", cfg.Razorpay.FeePercent)
	}
	if cfg.Razorpay.Enabled {
		t.Error("Razorpay.Enabled = true, want false without credentials")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6432")
	t.Setenv("DB_NAME", "school_test")

	cfg := Load()

	if cfg.Database.Host != "db.internal" {
		t.Errorf("Database.Host = %q, want db.internal", cfg.Database.Host)
	}
	if cfg.Database.Port != 6432 {
		t.Errorf("Database.Port = %d, want 6432", cfg.Database.Port)
	}
	if cfg.Database.Name != "school_test" {
		t.Errorf("Database.Name = %q, want school_test", cfg.Database.Name)
	}
}
