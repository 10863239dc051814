package handlers

import (
	"net/http"
	"strconv"

	"school-backend/internal/models"
	"school-backend/internal/services"

	"github.com/gorilla/mux"
)

type FeeGenerationHandler struct {
	Service *services.FeeGenerationService
}

func NewFeeGenerationHandler(service *services.FeeGenerationService) *FeeGenerationHandler {
	return &FeeGenerationHandler{Service: service}
}

// Generate runs a bulk fee generation for a month
func (h *FeeGenerationHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateFeeGenerationRequest
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

func (h *FeeGenerationHandler) ListGenerations(w http.ResponseWriter, r *http.Request) {
	gens, err := h.Service.ListGenerations(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, gens)
}

func (h *FeeGenerationHandler) GetGeneration(w http.ResponseWriter, r *http.Request) {
	serial, err := strconv.Atoi(mux.Vars(r)["serial"])
	if err != nil {
		http.Error(w, "Invalid serial", http.StatusBadRequest)
		return
	}

	gen, err := h.Service.GetGeneration(r.Context(), serial)
	if err != nil {
		http.Error(w, "Generation not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, gen)
}
