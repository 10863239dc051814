package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"school-backend/internal/config"
)

func testRazorpayService(secret, webhookSecret string) *RazorpayService {
	return NewRazorpayService(&config.RazorpayConfig{
		Enabled:       true,
		KeyID:         "rzp_test_key",
		KeySecret:     secret,
		WebhookSecret: webhookSecret,
		FeePercent:    2.5,
	}, nil, nil)
}

func sign(secret, data string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	s := testRazorpayService("key-secret", "")

	orderID := "order_abc123"
	paymentID := "pay_xyz789"
	valid := sign("key-secret", orderID+"|"+paymentID)

	if !s.verifySignature(orderID, paymentID, valid) {
		t.Error("expected valid signature to verify")
	}
	if s.verifySignature(orderID, paymentID, "deadbeef") {
		t.Error("expected invalid signature to be rejected")
	}
	if s.verifySignature(orderID, "pay_other", valid) {
		t.Error("expected signature over different payment to be rejected")
	}

	unconfigured := testRazorpayService("", "")
	if unconfigured.verifySignature(orderID, paymentID, valid) {
		t.Error("expected verification to fail without a key secret")
	}
}

func TestVerifyWebhookSignature(t *testing.T) {
	s := testRazorpayService("key-secret", "webhook-secret")
	body := []byte(`{"event":"payment.captured"}`)

	if !s.VerifyWebhookSignature(body, sign("webhook-secret", string(body))) {
		t.Error("expected valid webhook signature to verify")
	}
	if s.VerifyWebhookSignature(body, "deadbeef") {
		t.Error("expected invalid webhook signature to be rejected")
	}

	// Verification is skipped when no webhook secret is configured
	unconfigured := testRazorpayService("key-secret", "")
	if !unconfigured.VerifyWebhookSignature(body, "anything") {
		t.Error("expected verification to pass when webhook secret is unset")
	}
}

func TestCalculateFee(t *testing.T) {
	s := testRazorpayService("key-secret", "")

	cases := []struct {
		amount float64
		want   float64
	}{
		{1000, 25},
		{400, 10},
		{0, 0},
	}
	for _, tc := range cases {
		if got := s.CalculateFee(tc.amount); got != tc.want {
			t.Errorf("CalculateFee(%v) = %v, want %v", tc.amount, got, tc.want)
		}
	}
}
