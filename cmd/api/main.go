package main

import (
	"log"
	"net/http"

	_ "github.com/aaronbul/gamesup/docs" // swagger docs

	"github.com/aaronbul/gamesup/internal/cache"
	"github.com/aaronbul/gamesup/internal/config"
	"github.com/aaronbul/gamesup/internal/handler"
	"github.com/aaronbul/gamesup/internal/repository"
	"github.com/aaronbul/gamesup/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title GamesUP Recommendation API
// @version 1.0
// @description API de recomendación de juegos de mesa basada en KNN (user-based, coseno)
// @host localhost:8001
// @BasePath /
func main() {
	cfg := config.Load()

	// cache opcional de respuestas
	cache.InitRedis(cfg)

	// repos en memoria
	catalogRepo := repository.NewCatalogRepository()
	ratingRepo := repository.NewRatingRepository()

	// services
	gameSvc := service.NewGameService(catalogRepo, ratingRepo, cfg.GamesCSV)
	recSvc := service.NewRecommendService(catalogRepo, ratingRepo, cfg.KNeighbors)

	// carga inicial + entrenamiento: si falla acá preferimos no servir
	if err := gameSvc.ReloadData(); err != nil {
		log.Fatalf("[main] error cargando datos: %v", err)
	}
	if err := recSvc.Train(); err != nil {
		log.Fatalf("[main] error entrenando el modelo: %v", err)
	}

	// handlers
	healthH := handler.NewHealthHandler(recSvc)
	gameH := handler.NewGameHandler(gameSvc, recSvc)
	recH := handler.NewRecommendHandler(recSvc)
	modelH := handler.NewModelHandler(recSvc, gameSvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// estado
	r.Get("/", healthH.Root)
	r.Get("/health", healthH.Health)

	// modelo
	r.Get("/model/info", modelH.GetInfo)
	r.Post("/train", modelH.Train)
	r.Post("/update-model", modelH.UpdateModel)

	// recomendaciones
	r.Post("/recommendations", recH.PostRecommendations)
	r.Post("/recommendations/simple", recH.PostSimple)
	r.Get("/recommendations/user/{id}", recH.GetForUser)
	r.Get("/recommendations/game/{id}", recH.GetForGame)

	// WebSocket
	r.Get("/ws/recommendations", recH.GetRecommendationsWS)

	// catálogo
	r.Get("/games", gameH.ListGames)
	r.Get("/games/category/{category}", gameH.ByCategory)
	r.Get("/games/{id}", gameH.GetGame)

	// estadísticas
	r.Get("/stats", gameH.Stats)

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
