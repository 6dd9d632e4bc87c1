package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/aaronbul/gamesup/internal/service"
)

type HealthHandler struct {
	rec *service.RecommendService
}

func NewHealthHandler(rec *service.RecommendService) *HealthHandler {
	return &HealthHandler{rec: rec}
}

// @Summary Estado base de la API
// @Tags status
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"message": "API de recomendación GamesUP en línea",
		"status":  "active",
		"version": "1.0.0",
	})
}

// @Summary Healthcheck con estado del modelo
// @Tags status
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":     "healthy",
		"model_info": h.rec.Info(),
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	})
}
