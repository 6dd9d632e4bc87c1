package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/aaronbul/gamesup/internal/service"

	"github.com/go-chi/chi/v5"
)

type GameHandler struct {
	svc *service.GameService
	rec *service.RecommendService
}

func NewGameHandler(svc *service.GameService, rec *service.RecommendService) *GameHandler {
	return &GameHandler{svc: svc, rec: rec}
}

// @Summary Lista todos los juegos del catálogo
// @Tags games
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /games [get]
func (h *GameHandler) ListGames(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	games := h.svc.All()
	_ = json.NewEncoder(w).Encode(map[string]any{
		"games": games,
		"total": len(games),
	})
}

// @Summary Detalle de un juego
// @Tags games
// @Produce json
// @Param id path int true "gameId"
// @Success 200 {object} models.Game
// @Failure 404 {string} string "Juego no encontrado"
// @Router /games/{id} [get]
func (h *GameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	gameID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	game, ok := h.svc.Get(gameID)
	if !ok {
		http.Error(w, "Juego no encontrado", http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode(game)
}

// @Summary Juegos por categoría
// @Tags games
// @Produce json
// @Param category path string true "categoría"
// @Success 200 {object} map[string]interface{}
// @Router /games/category/{category} [get]
func (h *GameHandler) ByCategory(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	category := chi.URLParam(r, "category")
	games := h.svc.ByCategory(category)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"games":    games,
		"category": category,
		"total":    len(games),
	})
}

// @Summary Estadísticas del catálogo y del modelo
// @Tags stats
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /stats [get]
func (h *GameHandler) Stats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	stats := h.svc.Stats()
	_ = json.NewEncoder(w).Encode(map[string]any{
		"total_games":       stats.TotalGames,
		"total_users":       stats.TotalUsers,
		"games_by_category": stats.GamesByCategory,
		"model_info":        h.rec.Info(),
	})
}
