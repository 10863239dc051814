package handlers

import (
	"net/http"
	"strconv"

	"school-backend/internal/models"
	"school-backend/internal/services"

	"github.com/gorilla/mux"
)

type StudentHandler struct {
	Service *services.StudentService
}

func NewStudentHandler(service *services.StudentService) *StudentHandler {
	return &StudentHandler{Service: service}
}

func (h *StudentHandler) AdmitStudent(w http.ResponseWriter, r *http.Request) {
	var req models.CreateStudentRequest
	if err := decodeAndValidate(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	student, err := h.Service.AdmitStudent(r.Context(), &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, student)
}

func (h *StudentHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	students, err := h.Service.ListStudents(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, students)
}

func (h *StudentHandler) GetStudent(w http.ResponseWriter, r *http.Request) {
	rollNo, err := strconv.Atoi(mux.Vars(r)["roll_no"])
	if err != nil {
		http.Error(w, "Invalid roll number", http.StatusBadRequest)
		return
	}

	student, err := h.Service.GetStudent(r.Context(), rollNo)
	if err != nil {
		http.Error(w, "Student not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, student)
}

func (h *StudentHandler) UpdateStudent(w http.ResponseWriter, r *http.Request) {
	rollNo, err := strconv.Atoi(mux.Vars(r)["roll_no"])
	if err != nil {
		http.Error(w, "Invalid roll number", http.StatusBadRequest)
		return
	}

	var req models.UpdateStudentRequest
	if err := decodeAndValidate(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	student, err := h.Service.UpdateStudent(r.Context(), rollNo, &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, student)
}

func (h *StudentHandler) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	rollNo, err := strconv.Atoi(mux.Vars(r)["roll_no"])
	if err != nil {
		http.Error(w, "Invalid roll number", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeleteStudent(r.Context(), rollNo); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Student deleted"})
}

// GraduateStudent archives a student into alumni
func (h *StudentHandler) GraduateStudent(w http.ResponseWriter, r *http.Request) {
	rollNo, err := strconv.Atoi(mux.Vars(r)["roll_no"])
	if err != nil {
		http.Error(w, "Invalid roll number", http.StatusBadRequest)
		return
	}

	alumni, err := h.Service.GraduateStudent(r.Context(), rollNo)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, alumni)
}

func (h *StudentHandler) ListAlumni(w http.ResponseWriter, r *http.Request) {
	alumni, err := h.Service.ListAlumni(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, alumni)
}
