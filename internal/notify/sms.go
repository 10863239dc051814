package notify

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

// SMSProvider is an interface for sending SMS messages
type SMSProvider interface {
	SendSMS(phone, message string) error
}

// Fast2SMSService implements SMSProvider for Fast2SMS (India)
type Fast2SMSService struct {
	APIKey string
	Client *http.Client
}

func NewFast2SMSService(apiKey string) *Fast2SMSService {
	return &Fast2SMSService{
		APIKey: apiKey,
		Client: &http.Client{Timeout: 30 * time.Second},
	}
}

// SendSMS sends a single SMS via the quick route
func (s *Fast2SMSService) SendSMS(phone, message string) error {
	apiURL := fmt.Sprintf(
		"https://www.fast2sms.com/dev/bulkV2?authorization=%s&route=q&message=%s&language=english&flash=0&numbers=%s",
		url.QueryEscape(s.APIKey),
		url.QueryEscape(message),
		url.QueryEscape(phone),
	)

	resp, err := s.Client.Get(apiURL)
	if err != nil {
		return fmt.Errorf("failed to send SMS: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("SMS API returned %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

// MockSMSService prints messages to the log instead of sending them. Used
// when no API key is configured.
type MockSMSService struct{}

func NewMockSMSService() *MockSMSService {
	return &MockSMSService{}
}

func (s *MockSMSService) SendSMS(phone, message string) error {
	log.Printf("[MockSMS] To %s: %s", phone, message)
	return nil
}
