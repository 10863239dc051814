package handlers

import (
	"net/http"
	"strconv"

	"school-backend/internal/models"
	"school-backend/internal/services"

	"github.com/gorilla/mux"
)

type PayGenerationHandler struct {
	Service *services.PayrollService
}

func NewPayGenerationHandler(service *services.PayrollService) *PayGenerationHandler {
	return &PayGenerationHandler{Service: service}
}

// Generate runs a bulk pay generation for a month
func (h *PayGenerationHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateGenerateTeacherPayRequest
	if err := decodeAndValidate(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.Service.Generate(r.Context(), &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

func (h *PayGenerationHandler) ListGenerations(w http.ResponseWriter, r *http.Request) {
	gens, err := h.Service.ListGenerations(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, gens)
}

func (h *PayGenerationHandler) GetGeneration(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid generation ID", http.StatusBadRequest)
		return
	}

	gen, err := h.Service.GetGeneration(r.Context(), id)
	if err != nil {
		http.Error(w, "Generation not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, gen)
}

// UpdateGeneration edits the trigger record without regenerating pays
func (h *PayGenerationHandler) UpdateGeneration(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid generation ID", http.StatusBadRequest)
		return
	}

	var req models.UpdateGenerateTeacherPayRequest
	if err := decodeAndValidate(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	gen, err := h.Service.UpdateGeneration(r.Context(), id, &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, gen)
}

func (h *PayGenerationHandler) DeleteGeneration(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid generation ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeleteGeneration(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Generation deleted"})
}
