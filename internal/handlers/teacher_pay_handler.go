package handlers

import (
	"net/http"
	"strconv"

	"school-backend/internal/models"
	"school-backend/internal/services"

	"github.com/gorilla/mux"
)

type TeacherPayHandler struct {
	Service *services.PayrollService
}

func NewTeacherPayHandler(service *services.PayrollService) *TeacherPayHandler {
	return &TeacherPayHandler{Service: service}
}

func (h *TeacherPayHandler) RecordPay(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTeacherPayRequest
	if err := decodeAndValidate(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	pay, err := h.Service.RecordPay(r.Context(), &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, pay)
}

// ListPays lists all pay records, or one teacher's with ?teacher_id=
func (h *TeacherPayHandler) ListPays(w http.ResponseWriter, r *http.Request) {
	if teacherParam := r.URL.Query().Get("teacher_id"); teacherParam != "" {
		teacherID, err := strconv.Atoi(teacherParam)
		if err != nil {
			http.Error(w, "Invalid teacher ID", http.StatusBadRequest)
			return
		}
		pays, err := h.Service.ListPaysByTeacher(r.Context(), teacherID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, pays)
		return
	}

	pays, err := h.Service.ListPays(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, pays)
}

func (h *TeacherPayHandler) GetPay(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid pay ID", http.StatusBadRequest)
		return
	}

	pay, err := h.Service.GetPay(r.Context(), id)
	if err != nil {
		http.Error(w, "Pay record not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, pay)
}

func (h *TeacherPayHandler) UpdatePay(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid pay ID", http.StatusBadRequest)
		return
	}

	var req models.UpdateTeacherPayRequest
	if err := decodeAndValidate(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	pay, err := h.Service.UpdatePay(r.Context(), id, &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, pay)
}

func (h *TeacherPayHandler) DeletePay(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid pay ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeletePay(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Pay record deleted"})
}
