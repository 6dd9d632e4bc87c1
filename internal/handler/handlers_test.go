package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aaronbul/gamesup/internal/handler"
	"github.com/aaronbul/gamesup/internal/models"
	"github.com/aaronbul/gamesup/internal/repository"
	"github.com/aaronbul/gamesup/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

// newRouter levanta la API completa con datos de prueba, sin Redis.
func newRouter(t *testing.T) chi.Router {
	t.Helper()

	catalogRepo := repository.NewCatalogRepository()
	catalogRepo.LoadSampleGames()
	ratingRepo := repository.NewRatingRepository()
	ratingRepo.LoadSampleUsers()

	gameSvc := service.NewGameService(catalogRepo, ratingRepo, "")
	recSvc := service.NewRecommendService(catalogRepo, ratingRepo, 3)
	if err := recSvc.Train(); err != nil {
		t.Fatalf("Train() error = %v", err)
	}

	healthH := handler.NewHealthHandler(recSvc)
	gameH := handler.NewGameHandler(gameSvc, recSvc)
	recH := handler.NewRecommendHandler(recSvc)
	modelH := handler.NewModelHandler(recSvc, gameSvc)

	r := chi.NewRouter()
	r.Get("/", healthH.Root)
	r.Get("/health", healthH.Health)
	r.Get("/model/info", modelH.GetInfo)
	r.Post("/train", modelH.Train)
	r.Post("/update-model", modelH.UpdateModel)
	r.Post("/recommendations", recH.PostRecommendations)
	r.Post("/recommendations/simple", recH.PostSimple)
	r.Get("/recommendations/user/{id}", recH.GetForUser)
	r.Get("/recommendations/game/{id}", recH.GetForGame)
	r.Get("/ws/recommendations", recH.GetRecommendationsWS)
	r.Get("/games", gameH.ListGames)
	r.Get("/games/category/{category}", gameH.ByCategory)
	r.Get("/games/{id}", gameH.GetGame)
	r.Get("/stats", gameH.Stats)
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestPostRecommendations(t *testing.T) {
	r := newRouter(t)

	validUser := models.UserData{
		UserID:    42,
		Purchases: []models.Purchase{{GameID: 1, Rating: 4.0}},
	}

	tests := []struct {
		name       string
		body       any
		wantStatus int
	}{
		{
			name:       "perfil válido",
			body:       models.RecommendationRequest{UserData: validUser, NumRecommendations: 5},
			wantStatus: http.StatusOK,
		},
		{
			name:       "sin compras",
			body:       models.RecommendationRequest{UserData: models.UserData{UserID: 42}, NumRecommendations: 5},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "count fuera de rango",
			body:       models.RecommendationRequest{UserData: validUser, NumRecommendations: 21},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "count negativo",
			body:       models.RecommendationRequest{UserData: validUser, NumRecommendations: -3},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, r, http.MethodPost, "/recommendations", tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %q)", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}

	t.Run("JSON inválido", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/recommendations", strings.NewReader("{no es json"))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("forma de la respuesta", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/recommendations", models.RecommendationRequest{
			UserData:           validUser,
			NumRecommendations: 3,
		})
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}

		var resp models.RecommendationResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.UserID != 42 {
			t.Errorf("UserID = %d, want 42", resp.UserID)
		}
		if resp.AlgorithmUsed != "KNN" {
			t.Errorf("AlgorithmUsed = %q, want KNN", resp.AlgorithmUsed)
		}
		if len(resp.Recommendations) == 0 || len(resp.Recommendations) > 3 {
			t.Errorf("len(Recommendations) = %d, want 1..3", len(resp.Recommendations))
		}
		if len(resp.ConfidenceScores) != len(resp.Recommendations) {
			t.Errorf("len(ConfidenceScores) = %d, want %d", len(resp.ConfidenceScores), len(resp.Recommendations))
		}
		for _, rcm := range resp.Recommendations {
			if rcm.GameID == 1 {
				t.Errorf("recomendó el juego 1, que el usuario ya valoró")
			}
			if rcm.Confidence < 0 || rcm.Confidence > 1 {
				t.Errorf("Confidence = %f fuera de [0,1]", rcm.Confidence)
			}
		}
	})
}

func TestRecommendationCompatEndpoints(t *testing.T) {
	r := newRouter(t)

	for _, path := range []string{"/recommendations/user/1", "/recommendations/game/2"} {
		t.Run(path, func(t *testing.T) {
			rec := doJSON(t, r, http.MethodGet, path, nil)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}
			var ids []int
			if err := json.Unmarshal(rec.Body.Bytes(), &ids); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if len(ids) == 0 {
				t.Errorf("sin ids recomendados")
			}
		})
	}

	t.Run("simple", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/recommendations/simple", models.UserData{
			UserID:    8,
			Purchases: []models.Purchase{{GameID: 2, Rating: 4.5}},
		})
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var resp struct {
			Recommendations []models.Recommendation `json:"recommendations"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(resp.Recommendations) > 5 {
			t.Errorf("len = %d, want <= 5", len(resp.Recommendations))
		}
	})
}

func TestGameEndpoints(t *testing.T) {
	r := newRouter(t)

	t.Run("lista completa", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/games", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var resp struct {
			Games []models.Game `json:"games"`
			Total int           `json:"total"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Total != 10 || len(resp.Games) != 10 {
			t.Errorf("total = %d len = %d, want 10", resp.Total, len(resp.Games))
		}
	})

	t.Run("detalle", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/games/1", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var g models.Game
		if err := json.Unmarshal(rec.Body.Bytes(), &g); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if g.Name != "Catan" {
			t.Errorf("Name = %q, want Catan", g.Name)
		}
	})

	t.Run("no encontrado", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/games/999", nil)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
	})

	t.Run("por categoría", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/games/category/Cooperativo", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var resp struct {
			Games []models.Game `json:"games"`
			Total int           `json:"total"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Total != 2 {
			t.Errorf("total = %d, want 2 (Pandemic y The Crew)", resp.Total)
		}
	})
}

func TestModelEndpoints(t *testing.T) {
	r := newRouter(t)

	t.Run("info", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/model/info", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var info models.ModelInfo
		if err := json.Unmarshal(rec.Body.Bytes(), &info); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !info.IsTrained {
			t.Error("IsTrained = false, want true")
		}
		if info.TotalGames != 10 || info.TotalUsers != 5 {
			t.Errorf("totales = %d juegos / %d usuarios, want 10/5", info.TotalGames, info.TotalUsers)
		}
	})

	t.Run("train", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/train", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200 (body %q)", rec.Code, rec.Body.String())
		}
	})

	t.Run("update-model", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/update-model", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200 (body %q)", rec.Code, rec.Body.String())
		}
	})

	t.Run("health", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/health", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "healthy") {
			t.Errorf("body sin status healthy: %q", rec.Body.String())
		}
	})

	t.Run("stats", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/stats", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var resp struct {
			TotalGames      int            `json:"total_games"`
			GamesByCategory map[string]int `json:"games_by_category"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.TotalGames != 10 {
			t.Errorf("total_games = %d, want 10", resp.TotalGames)
		}
		if resp.GamesByCategory["Estrategia"] != 5 {
			t.Errorf("Estrategia = %d, want 5", resp.GamesByCategory["Estrategia"])
		}
	})
}

func TestRecommendationsWS(t *testing.T) {
	srv := httptest.NewServer(newRouter(t))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/recommendations"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial WS: %v", err)
	}
	defer conn.Close()

	req := models.RecommendationRequest{
		UserData: models.UserData{
			UserID:    5,
			Purchases: []models.Purchase{{GameID: 1, Rating: 4.0}},
		},
		NumRecommendations: 3,
	}
	if err := conn.WriteJSON(req); err != nil {
		t.Fatalf("write perfil: %v", err)
	}

	// start -> progress -> recommendations
	var got []string
	for i := 0; i < 3; i++ {
		var msg map[string]any
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("read mensaje %d: %v", i, err)
		}
		typ, _ := msg["type"].(string)
		got = append(got, typ)

		if typ == "recommendations" {
			items, ok := msg["items"].([]any)
			if !ok {
				t.Fatalf("items con tipo inesperado: %T", msg["items"])
			}
			if len(items) > 3 {
				t.Errorf("len(items) = %d, want <= 3", len(items))
			}
		}
	}

	want := []string{"start", "progress", "recommendations"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("mensaje %d = %q, want %q", i, got[i], want[i])
		}
	}
}
