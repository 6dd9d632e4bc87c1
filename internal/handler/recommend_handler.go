package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/aaronbul/gamesup/internal/models"
	"github.com/aaronbul/gamesup/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

// Tope de recomendaciones por petición. Lo valida el handler, no el
// motor: el motor acepta cualquier count positivo.
const MaxRecommendations = 20

type RecommendHandler struct {
	svc *service.RecommendService
}

func NewRecommendHandler(s *service.RecommendService) *RecommendHandler {
	return &RecommendHandler{svc: s}
}

// @Summary Recomendaciones para un perfil de usuario
// @Tags recommend
// @Accept json
// @Produce json
// @Param request body models.RecommendationRequest true "perfil + cantidad"
// @Success 200 {object} models.RecommendationResponse
// @Failure 400 {string} string "petición inválida"
// @Router /recommendations [post]
func (h *RecommendHandler) PostRecommendations(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req models.RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if req.NumRecommendations == 0 {
		req.NumRecommendations = 5
	}

	if len(req.UserData.Purchases) == 0 {
		http.Error(w, "El usuario debe tener al menos una compra", http.StatusBadRequest)
		return
	}
	if req.NumRecommendations < 0 || req.NumRecommendations > MaxRecommendations {
		http.Error(w, "El número de recomendaciones debe estar entre 1 y 20", http.StatusBadRequest)
		return
	}

	recs := h.svc.Recommend(r.Context(), req.UserData, req.NumRecommendations)

	scores := make([]float64, len(recs))
	for i, rec := range recs {
		scores[i] = rec.Confidence
	}

	_ = json.NewEncoder(w).Encode(models.RecommendationResponse{
		UserID:           req.UserData.UserID,
		Recommendations:  recs,
		ConfidenceScores: scores,
		AlgorithmUsed:    "KNN",
	})
}

// @Summary Recomendaciones simples (5 fijas) para un perfil
// @Tags recommend
// @Accept json
// @Produce json
// @Param user_data body models.UserData true "perfil del usuario"
// @Success 200 {object} map[string]interface{}
// @Router /recommendations/simple [post]
func (h *RecommendHandler) PostSimple(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var user models.UserData
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	recs := h.svc.Recommend(r.Context(), user, 5)
	_ = json.NewEncoder(w).Encode(map[string]any{"recommendations": recs})
}

// @Summary Ids recomendados para un usuario (compatibilidad Spring Boot)
// @Tags recommend
// @Produce json
// @Param id path int true "userId"
// @Success 200 {array} int
// @Router /recommendations/user/{id} [get]
func (h *RecommendHandler) GetForUser(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userID, _ := strconv.Atoi(chi.URLParam(r, "id"))

	// Perfil simulado: en producción vendría de la base del backend Java
	user := models.UserData{
		UserID: userID,
		Purchases: []models.Purchase{
			{GameID: 1, Rating: 4.5},
			{GameID: 3, Rating: 4.0},
			{GameID: 5, Rating: 3.5},
		},
	}

	_ = json.NewEncoder(w).Encode(recommendedIDs(h.svc.Recommend(r.Context(), user, 5)))
}

// @Summary Ids recomendados a partir de un juego (compatibilidad Spring Boot)
// @Tags recommend
// @Produce json
// @Param id path int true "gameId"
// @Success 200 {array} int
// @Router /recommendations/game/{id} [get]
func (h *RecommendHandler) GetForGame(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	gameID, _ := strconv.Atoi(chi.URLParam(r, "id"))

	user := models.UserData{
		UserID:    999, // id temporal
		Purchases: []models.Purchase{{GameID: gameID, Rating: 4.0}},
	}

	_ = json.NewEncoder(w).Encode(recommendedIDs(h.svc.Recommend(r.Context(), user, 5)))
}

func recommendedIDs(recs []models.Recommendation) []int {
	ids := make([]int, len(recs))
	for i, rec := range recs {
		ids[i] = rec.GameID
	}
	return ids
}

// upgrader global (no afecta a swagger)
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Recomendaciones en tiempo real (WebSocket)
// @Tags recommend
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /ws/recommendations [get]
func (h *RecommendHandler) GetRecommendationsWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "No se pudo abrir WebSocket", http.StatusBadRequest)
		return
	}
	defer conn.Close()

	// El cliente manda el perfil como primer mensaje
	var req models.RecommendationRequest
	if err := conn.ReadJSON(&req); err != nil {
		_ = conn.WriteJSON(map[string]any{"type": "error", "error": "perfil inválido"})
		return
	}
	if req.NumRecommendations <= 0 || req.NumRecommendations > MaxRecommendations {
		req.NumRecommendations = 5
	}

	_ = conn.WriteJSON(map[string]any{
		"type": "start",
		"msg":  "Conexión WS abierta, generando recomendaciones…",
	})

	info := h.svc.Info()
	_ = conn.WriteJSON(map[string]any{
		"type":      "progress",
		"msg":       "Consultando vecinos más cercanos",
		"k":         info.KValue,
		"algorithm": info.Algorithm,
	})

	recs := h.svc.Recommend(r.Context(), req.UserData, req.NumRecommendations)

	_ = conn.WriteJSON(map[string]any{
		"type":        "recommendations",
		"user_id":     req.UserData.UserID,
		"items":       recs,
		"generatedAt": time.Now(),
	})
}
