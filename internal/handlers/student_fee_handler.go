package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"school-backend/internal/models"
	"school-backend/internal/services"

	"github.com/gorilla/mux"
)

type StudentFeeHandler struct {
	Service        *services.FeeService
	ReceiptService *services.ReceiptService
}

func NewStudentFeeHandler(service *services.FeeService, receiptService *services.ReceiptService) *StudentFeeHandler {
	return &StudentFeeHandler{
		Service:        service,
		ReceiptService: receiptService,
	}
}

func (h *StudentFeeHandler) RecordFee(w http.ResponseWriter, r *http.Request) {
	var req models.CreateStudentFeeRequest
	if err := decodeAndValidate(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	fee, err := h.Service.RecordFee(r.Context(), &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, fee)
}

// ListFees lists all fee records, or one student's with ?roll_no=
func (h *StudentFeeHandler) ListFees(w http.ResponseWriter, r *http.Request) {
	if rollNoParam := r.URL.Query().Get("roll_no"); rollNoParam != "" {
		rollNo, err := strconv.Atoi(rollNoParam)
		if err != nil {
			http.Error(w, "Invalid roll number", http.StatusBadRequest)
			return
		}
		fees, err := h.Service.ListFeesByStudent(r.Context(), rollNo)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, fees)
		return
	}

	fees, err := h.Service.ListFees(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, fees)
}

func (h *StudentFeeHandler) GetFee(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid fee ID", http.StatusBadRequest)
		return
	}

	fee, err := h.Service.GetFee(r.Context(), id)
	if err != nil {
		http.Error(w, "Fee not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, fee)
}

func (h *StudentFeeHandler) UpdateFee(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid fee ID", http.StatusBadRequest)
		return
	}

	var req models.UpdateStudentFeeRequest
	if err := decodeAndValidate(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	fee, err := h.Service.UpdateFee(r.Context(), id, &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, fee)
}

func (h *StudentFeeHandler) DeleteFee(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid fee ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeleteFee(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Fee deleted"})
}

// GetReceipt streams a PDF receipt for a fee record
func (h *StudentFeeHandler) GetReceipt(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid fee ID", http.StatusBadRequest)
		return
	}

	pdf, err := h.ReceiptService.GenerateFeeReceipt(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=fee_receipt_%d.pdf", id))
	w.Write(pdf)
}

// GetStatement streams a PDF fee statement for a student
func (h *StudentFeeHandler) GetStatement(w http.ResponseWriter, r *http.Request) {
	rollNo, err := strconv.Atoi(mux.Vars(r)["roll_no"])
	if err != nil {
		http.Error(w, "Invalid roll number", http.StatusBadRequest)
		return
	}

	pdf, err := h.ReceiptService.GenerateStudentStatement(r.Context(), rollNo)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=fee_statement_%d.pdf", rollNo))
	w.Write(pdf)
}
