package notify

import (
	"context"
	"fmt"
	"log"

	"school-backend/internal/repositories"
)

// FeeReminderService sends pending fee reminders to the guardians of
// enrolled students.
type FeeReminderService struct {
	StudentRepo *repositories.StudentRepository
	Provider    SMSProvider
}

func NewFeeReminderService(studentRepo *repositories.StudentRepository, provider SMSProvider) *FeeReminderService {
	return &FeeReminderService{StudentRepo: studentRepo, Provider: provider}
}

// ReminderResult reports how a reminder run went
type ReminderResult struct {
	Sent    int `json:"sent"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// SendPendingFeeReminders messages every enrolled student with outstanding
// dues. Students without a contact number are skipped.
func (s *FeeReminderService) SendPendingFeeReminders(ctx context.Context) (*ReminderResult, error) {
	students, err := s.StudentRepo.ListEnrolled(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}

	result := &ReminderResult{}
	for _, student := range students {
		if student.PendingFee <= 0 || student.Contact == "" {
			result.Skipped++
			continue
		}

		message := fmt.Sprintf(
			"Dear Parent, the pending fee for %s (Roll No %d) is Rs. %.0f. Kindly clear the dues at your earliest convenience.",
			student.Name, student.RollNo, student.PendingFee,
		)

		if err := s.Provider.SendSMS(student.Contact, message); err != nil {
			log.Printf("[Reminder] Failed to send to roll no %d: %v", student.RollNo, err)
			result.Failed++
			continue
		}
		result.Sent++
	}

	log.Printf("[Reminder] Fee reminders: %d sent, %d skipped, %d failed", result.Sent, result.Skipped, result.Failed)
	return result, nil
}
