package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"

	"school-backend/internal/config"
	"school-backend/internal/metrics"
	"school-backend/internal/models"
	"school-backend/internal/repositories"
	"school-backend/internal/timeutil"

	razorpay "github.com/razorpay/razorpay-go"
)

// RazorpayService handles online fee payments. A verified payment is
// applied to the target fee record through the fee engine, so the derived
// fields and the cached pending fee stay consistent.
type RazorpayService struct {
	cfg             *config.RazorpayConfig
	transactionRepo *repositories.OnlineTransactionRepository
	feeService      *FeeService
}

func NewRazorpayService(cfg *config.RazorpayConfig, transactionRepo *repositories.OnlineTransactionRepository, feeService *FeeService) *RazorpayService {
	return &RazorpayService{
		cfg:             cfg,
		transactionRepo: transactionRepo,
		feeService:      feeService,
	}
}

func (s *RazorpayService) getClient() *razorpay.Client {
	if s.cfg.KeyID == "" || s.cfg.KeySecret == "" {
		return nil
	}
	return razorpay.NewClient(s.cfg.KeyID, s.cfg.KeySecret)
}

func (s *RazorpayService) IsEnabled() bool {
	return s.cfg.Enabled
}

// CalculateFee calculates the gateway convenience fee for a given amount
func (s *RazorpayService) CalculateFee(amount float64) float64 {
	return float64(int((amount*s.cfg.FeePercent/100)*100+0.5)) / 100 // Round to 2 decimal places
}

// GetPaymentStatus returns payment status info for frontend
func (s *RazorpayService) GetPaymentStatus() *models.PaymentStatusResponse {
	resp := &models.PaymentStatusResponse{
		Enabled:    s.cfg.Enabled,
		FeePercent: s.cfg.FeePercent,
	}
	if s.cfg.Enabled {
		resp.KeyID = s.cfg.KeyID
	}
	return resp
}

// CreateOrder creates a Razorpay order against a fee record and stores a
// pending transaction
func (s *RazorpayService) CreateOrder(ctx context.Context, req *models.CreateOnlinePaymentRequest) (*models.CreateOrderResponse, error) {
	if !s.cfg.Enabled {
		return nil, fmt.Errorf("online payments are currently disabled")
	}

	client := s.getClient()
	if client == nil {
		return nil, fmt.Errorf("razorpay client not configured")
	}

	fee, err := s.feeService.GetFee(ctx, req.FeeID)
	if err != nil {
		return nil, fmt.Errorf("fee %d not found", req.FeeID)
	}
	if fee.Balance <= 0 {
		return nil, fmt.Errorf("fee %d has no outstanding balance", req.FeeID)
	}

	feeAmount := s.CalculateFee(req.Amount)
	totalAmount := req.Amount + feeAmount

	// Razorpay amounts are in paise
	amountPaise := int(totalAmount * 100)

	orderData := map[string]interface{}{
		"amount":   amountPaise,
		"currency": "INR",
		"receipt":  fmt.Sprintf("fee_%d_%d", fee.ID, timeutil.Now().Unix()),
		"notes": map[string]interface{}{
			"student_roll_no": fee.StudentRollNo,
			"fee_id":          fee.ID,
			"month":           fee.Month.Format(timeutil.MonthLayout),
		},
	}

	order, err := client.Order.Create(orderData, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create razorpay order: %w", err)
	}

	orderID := order["id"].(string)

	tx := &models.OnlineTransaction{
		RazorpayOrderID: orderID,
		StudentRollNo:   fee.StudentRollNo,
		StudentName:     fee.StudentName,
		FeeID:           fee.ID,
		Amount:          req.Amount,
		FeeAmount:       feeAmount,
		TotalAmount:     totalAmount,
	}

	if err := s.transactionRepo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to store transaction: %w", err)
	}

	return &models.CreateOrderResponse{
		OrderID:     orderID,
		Amount:      int(req.Amount * 100),
		FeeAmount:   int(feeAmount * 100),
		TotalAmount: amountPaise,
		Currency:    "INR",
		KeyID:       s.cfg.KeyID,
		StudentName: fee.StudentName,
		FeePercent:  s.cfg.FeePercent,
	}, nil
}

// VerifyPayment verifies the payment signature and applies the payment to
// the fee record
func (s *RazorpayService) VerifyPayment(ctx context.Context, req *models.VerifyPaymentRequest) (*models.OnlineTransaction, error) {
	if !s.verifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		_ = s.transactionRepo.MarkFailed(ctx, req.RazorpayOrderID, "Invalid signature")
		metrics.OnlinePaymentsTotal.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("invalid payment signature")
	}

	tx, err := s.transactionRepo.GetByOrderID(ctx, req.RazorpayOrderID)
	if err != nil {
		return nil, fmt.Errorf("transaction not found: %w", err)
	}

	// Webhook may have processed this already
	if tx.Status == models.OnlineTxStatusSuccess {
		return tx, nil
	}

	if err := s.applyPayment(ctx, tx, req.RazorpayPaymentID); err != nil {
		return nil, err
	}

	return s.transactionRepo.GetByOrderID(ctx, req.RazorpayOrderID)
}

// applyPayment marks the transaction successful and adds the amount to the
// fee record through the fee engine
func (s *RazorpayService) applyPayment(ctx context.Context, tx *models.OnlineTransaction, paymentID string) error {
	if err := s.transactionRepo.MarkSuccess(ctx, tx.RazorpayOrderID, paymentID); err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	description := fmt.Sprintf("Online payment %s", paymentID)
	if _, err := s.feeService.ApplyPayment(ctx, tx.FeeID, tx.Amount, description); err != nil {
		// The money was captured; log loudly so an operator reconciles it
		log.Printf("[Razorpay] CAPTURED payment %s not applied to fee %d: %v", paymentID, tx.FeeID, err)
		return fmt.Errorf("payment captured but not applied to fee: %w", err)
	}

	metrics.OnlinePaymentsTotal.WithLabelValues("success").Inc()
	log.Printf("[Razorpay] Applied %.2f to fee %d for student %d", tx.Amount, tx.FeeID, tx.StudentRollNo)
	return nil
}

// verifySignature verifies the Razorpay payment signature
func (s *RazorpayService) verifySignature(orderID, paymentID, signature string) bool {
	if s.cfg.KeySecret == "" {
		return false
	}
	data := orderID + "|" + paymentID
	h := hmac.New(sha256.New, []byte(s.cfg.KeySecret))
	h.Write([]byte(data))
	expectedSignature := hex.EncodeToString(h.Sum(nil))
	return hmac.Equal([]byte(expectedSignature), []byte(signature))
}

// VerifyWebhookSignature verifies the webhook signature
func (s *RazorpayService) VerifyWebhookSignature(body []byte, signature string) bool {
	if s.cfg.WebhookSecret == "" {
		return true // Skip verification if not configured
	}

	h := hmac.New(sha256.New, []byte(s.cfg.WebhookSecret))
	h.Write(body)
	expectedSignature := hex.EncodeToString(h.Sum(nil))
	return hmac.Equal([]byte(expectedSignature), []byte(signature))
}

// ProcessWebhook processes Razorpay webhook events
func (s *RazorpayService) ProcessWebhook(ctx context.Context, event string, paymentData map[string]interface{}) error {
	switch event {
	case "payment.captured":
		return s.handlePaymentCaptured(ctx, paymentData)
	case "payment.failed":
		return s.handlePaymentFailed(ctx, paymentData)
	default:
		log.Printf("[Razorpay] Unhandled webhook event: %s", event)
		return nil
	}
}

func webhookEntity(paymentData map[string]interface{}) map[string]interface{} {
	paymentEntity, ok := paymentData["payment"].(map[string]interface{})
	if !ok {
		paymentEntity = paymentData
	}
	entity, ok := paymentEntity["entity"].(map[string]interface{})
	if !ok {
		entity = paymentEntity
	}
	return entity
}

func (s *RazorpayService) handlePaymentCaptured(ctx context.Context, paymentData map[string]interface{}) error {
	entity := webhookEntity(paymentData)

	orderID, _ := entity["order_id"].(string)
	paymentID, _ := entity["id"].(string)

	if orderID == "" {
		return fmt.Errorf("missing order_id in webhook")
	}

	// Frontend verification may have processed this already
	processed, _ := s.transactionRepo.IsPaymentProcessed(ctx, orderID)
	if processed {
		log.Printf("[Razorpay] Payment already processed: %s", orderID)
		return nil
	}

	tx, err := s.transactionRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("transaction not found: %w", err)
	}

	return s.applyPayment(ctx, tx, paymentID)
}

func (s *RazorpayService) handlePaymentFailed(ctx context.Context, paymentData map[string]interface{}) error {
	entity := webhookEntity(paymentData)

	orderID, _ := entity["order_id"].(string)
	reason := "Payment failed"
	if errorData, ok := entity["error_description"].(string); ok {
		reason = errorData
	}

	if orderID != "" {
		metrics.OnlinePaymentsTotal.WithLabelValues("failed").Inc()
		return s.transactionRepo.MarkFailed(ctx, orderID, reason)
	}

	return nil
}

// ListTransactions returns all online transactions
func (s *RazorpayService) ListTransactions(ctx context.Context) ([]*models.OnlineTransaction, error) {
	return s.transactionRepo.List(ctx)
}

// ListTransactionsByStudent returns a student's online transactions
func (s *RazorpayService) ListTransactionsByStudent(ctx context.Context, rollNo int) ([]*models.OnlineTransaction, error) {
	return s.transactionRepo.ListByStudent(ctx, rollNo)
}
