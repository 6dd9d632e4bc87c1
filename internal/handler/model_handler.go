package handler

import (
	"encoding/json"
	"net/http"

	"github.com/aaronbul/gamesup/internal/service"
)

type ModelHandler struct {
	rec   *service.RecommendService
	games *service.GameService
}

func NewModelHandler(rec *service.RecommendService, games *service.GameService) *ModelHandler {
	return &ModelHandler{rec: rec, games: games}
}

// @Summary Información del modelo de recomendación
// @Tags model
// @Produce json
// @Success 200 {object} models.ModelInfo
// @Router /model/info [get]
func (h *ModelHandler) GetInfo(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.rec.Info())
}

// @Summary Reentrena el modelo con los datos actuales
// @Tags model
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {string} string "error de entrenamiento"
// @Router /train [post]
func (h *ModelHandler) Train(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	// entrenar sí puede fallar visible: mejor enterarse que servir mal
	if err := h.rec.Train(); err != nil {
		http.Error(w, "Error al entrenar el modelo: "+err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]string{
		"message": "Modelo entrenado con éxito",
		"status":  "success",
	})
}

// @Summary Recarga los datos y reentrena el modelo
// @Tags model
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {string} string "error de actualización"
// @Router /update-model [post]
func (h *ModelHandler) UpdateModel(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := h.games.ReloadData(); err != nil {
		http.Error(w, "Error al recargar los datos: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if err := h.rec.Train(); err != nil {
		http.Error(w, "Error al entrenar el modelo: "+err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]string{
		"message": "Modelo actualizado con éxito",
		"status":  "success",
	})
}
