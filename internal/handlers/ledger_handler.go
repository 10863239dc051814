package handlers

import (
	"net/http"
	"strconv"

	"school-backend/internal/models"
	"school-backend/internal/services"

	"github.com/gorilla/mux"
)

type LedgerHandler struct {
	Service *services.LedgerService
}

func NewLedgerHandler(service *services.LedgerService) *LedgerHandler {
	return &LedgerHandler{Service: service}
}

// Populate recomputes monthly totals and upserts the ledger
func (h *LedgerHandler) Populate(w http.ResponseWriter, r *http.Request) {
	breakdowns, err := h.Service.Populate(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, breakdowns)
}

// GetBreakdown serves the computed monthly breakdown without writing the
// ledger table
func (h *LedgerHandler) GetBreakdown(w http.ResponseWriter, r *http.Request) {
	breakdowns, err := h.Service.Breakdown(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, breakdowns)
}

func (h *LedgerHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Service.ListEntries(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

func (h *LedgerHandler) GetEntry(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid ledger ID", http.StatusBadRequest)
		return
	}

	entry, err := h.Service.GetEntry(r.Context(), id)
	if err != nil {
		http.Error(w, "Ledger entry not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

func (h *LedgerHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid ledger ID", http.StatusBadRequest)
		return
	}

	var req models.UpdateLedgerRequest
	if err := decodeAndValidate(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	entry, err := h.Service.UpdateEntry(r.Context(), id, &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

func (h *LedgerHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid ledger ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeleteEntry(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Ledger entry deleted"})
}
