package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"

	"school-backend/internal/models"
	"school-backend/internal/services"
)

type RazorpayHandler struct {
	Service *services.RazorpayService
}

func NewRazorpayHandler(service *services.RazorpayService) *RazorpayHandler {
	return &RazorpayHandler{Service: service}
}

// GetStatus returns whether online payments are enabled and the convenience
// fee percentage.
// GET /api/payments/status
func (h *RazorpayHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Service.GetPaymentStatus())
}

// CreateOrder creates a Razorpay order against an unpaid fee record.
// POST /api/payments/create-order
func (h *RazorpayHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOnlinePaymentRequest
	if err := decodeAndValidate(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	response, err := h.Service.CreateOrder(r.Context(), &req)
	if err != nil {
		log.Printf("[Razorpay] CreateOrder error: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusCreated, response)
}

// VerifyPayment verifies the checkout callback signature and applies the
// payment to the fee record.
// POST /api/payments/verify
func (h *RazorpayHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyPaymentRequest
	if err := decodeAndValidate(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tx, err := h.Service.VerifyPayment(r.Context(), &req)
	if err != nil {
		log.Printf("[Razorpay] VerifyPayment error for order %s: %v", req.RazorpayOrderID, err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"message":     "Payment verified successfully",
		"transaction": tx,
	})
}

// HandleWebhook processes Razorpay webhook events.
// POST /api/payments/webhook
func (h *RazorpayHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("[Razorpay] Failed to read webhook body: %v", err)
		http.Error(w, "Failed to read body", http.StatusBadRequest)
		return
	}

	signature := r.Header.Get("X-Razorpay-Signature")
	if !h.Service.VerifyWebhookSignature(body, signature) {
		log.Printf("[Razorpay] Invalid webhook signature")
		http.Error(w, "Invalid signature", http.StatusUnauthorized)
		return
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		log.Printf("[Razorpay] Failed to parse webhook: %v", err)
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	event, _ := payload["event"].(string)
	payloadData, _ := payload["payload"].(map[string]interface{})

	log.Printf("[Razorpay] Received webhook: %s", event)

	if err := h.Service.ProcessWebhook(r.Context(), event, payloadData); err != nil {
		log.Printf("[Razorpay] Webhook processing error: %v", err)
		// Return 200 anyway to prevent retries for known errors
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// ListTransactions returns online transactions, optionally filtered by
// student.
// GET /api/payments/transactions?roll_no=
func (h *RazorpayHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	if rollStr := r.URL.Query().Get("roll_no"); rollStr != "" {
		rollNo, err := strconv.Atoi(rollStr)
		if err != nil {
			http.Error(w, "Invalid roll number", http.StatusBadRequest)
			return
		}
		transactions, err := h.Service.ListTransactionsByStudent(r.Context(), rollNo)
		if err != nil {
			http.Error(w, "Failed to get transactions", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, transactions)
		return
	}

	transactions, err := h.Service.ListTransactions(r.Context())
	if err != nil {
		http.Error(w, "Failed to get transactions", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, transactions)
}
