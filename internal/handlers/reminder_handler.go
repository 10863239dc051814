package handlers

import (
	"net/http"

	"school-backend/internal/notify"
)

type ReminderHandler struct {
	Service *notify.FeeReminderService
}

func NewReminderHandler(service *notify.FeeReminderService) *ReminderHandler {
	return &ReminderHandler{Service: service}
}

// SendFeeReminders triggers an SMS reminder run for all students with
// outstanding dues
func (h *ReminderHandler) SendFeeReminders(w http.ResponseWriter, r *http.Request) {
	result, err := h.Service.SendPendingFeeReminders(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
