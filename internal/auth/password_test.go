package auth

import "testing"

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("admin123")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "admin123" {
		t.Fatal("hash equals plaintext")
	}

	if !VerifyPassword(hash, "admin123") {
		t.Error("VerifyPassword rejected the correct password")
	}
	if VerifyPassword(hash, "wrong-password") {
		t.Error("VerifyPassword accepted the wrong password")
	}
	if VerifyPassword("not-a-hash", "admin123") {
		t.Error("VerifyPassword accepted an invalid hash")
	}
}
