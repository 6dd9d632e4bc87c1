package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"
	"sync"

	"github.com/aaronbul/gamesup/internal/cache"
	"github.com/aaronbul/gamesup/internal/knn"
	"github.com/aaronbul/gamesup/internal/models"
	"github.com/aaronbul/gamesup/internal/repository"
)

const (
	DefaultK      = 3
	AlgorithmName = "KNN (K-Nearest Neighbors)"

	ratingScale = 5.0 // las notas van de 0 a 5
	cacheTTL    = 60 * 60
)

// RecommendService es el motor de recomendaciones. Es el único dueño del
// par (matriz, índice): Train lo reemplaza completo bajo lock y Recommend
// trabaja sobre una foto tomada al inicio, así un retrain concurrente no
// le cambia la matriz a una consulta en vuelo.
type RecommendService struct {
	k       int
	catalog *repository.CatalogRepository
	ratings *repository.RatingRepository

	mu    sync.RWMutex
	model *trainedModel
	gen   uint64 // generación de entrenamiento, entra en la key del cache
}

// El índice y el orden de columnas se capturan juntos: mezclar un índice
// nuevo con un orden de juegos viejo daría columnas corridas.
type trainedModel struct {
	index   *knn.Index
	gameIDs []int
}

func NewRecommendService(catalog *repository.CatalogRepository, ratings *repository.RatingRepository, k int) *RecommendService {
	if k <= 0 {
		k = DefaultK
	}
	return &RecommendService{
		k:       k,
		catalog: catalog,
		ratings: ratings,
	}
}

// Train reconstruye matriz + índice desde el snapshot actual de catálogo
// y ratings, y los cambia de un golpe. Es la única operación que puede
// fallar hacia el caller (catálogo o usuarios vacíos, por ejemplo al
// arrancar sin datos): ahí sí conviene enterarse y no servir.
func (s *RecommendService) Train() error {
	gameIDs := s.catalog.GameIDs()
	userIDs, ratings := s.ratings.Snapshot()

	matrix, err := knn.BuildRatingsMatrix(gameIDs, userIDs, ratings)
	if err != nil {
		return fmt.Errorf("construyendo matriz de ratings: %w", err)
	}

	index := knn.NewIndex(s.k)
	if err := index.Train(matrix); err != nil {
		return fmt.Errorf("entrenando índice KNN: %w", err)
	}

	s.mu.Lock()
	s.model = &trainedModel{index: index, gameIDs: gameIDs}
	s.gen++
	s.mu.Unlock()

	log.Printf("[recommender] modelo KNN entrenado con %d usuarios y %d juegos", len(userIDs), len(gameIDs))
	return nil
}

// snapshot devuelve el modelo actual, entrenando primero si hace falta
// (el estado Untrained solo se sale por Train).
func (s *RecommendService) snapshot() (*trainedModel, uint64, error) {
	s.mu.RLock()
	m, gen := s.model, s.gen
	s.mu.RUnlock()
	if m != nil {
		return m, gen, nil
	}

	if err := s.Train(); err != nil {
		return nil, 0, err
	}

	s.mu.RLock()
	m, gen = s.model, s.gen
	s.mu.RUnlock()
	return m, gen, nil
}

// Recommend genera hasta `count` recomendaciones para el perfil dado.
// Nunca falla hacia el caller: cualquier problema interno termina en la
// lista fija de respaldo. La validación de count (1..20) es del handler.
func (s *RecommendService) Recommend(ctx context.Context, user models.UserData, count int) []models.Recommendation {
	if count <= 0 {
		count = 5
	}

	model, gen, err := s.snapshot()
	if err != nil {
		log.Printf("[recommender] sin modelo para user=%d: %v", user.UserID, err)
		return s.fallback(count)
	}

	// Cache por usuario + count + generación: al reentrenar cambia gen y
	// las respuestas viejas dejan de matchear solas.
	key := fmt.Sprintf("rec:user:%d:n:%d:gen:%d", user.UserID, count, gen)
	var cached []models.Recommendation
	if ok, err := cache.GetJSON(ctx, key, &cached); err == nil && ok {
		return cached
	}

	res, err := s.predict(model, user, count)
	if err != nil {
		log.Printf("[recommender] predicción falló para user=%d: %v", user.UserID, err)
		return s.fallback(count)
	}

	if !res.degraded {
		if err := cache.SetJSON(ctx, key, res.items, cacheTTL); err != nil {
			log.Printf("[recommender] error cacheando recomendación: %v", err)
		}
	}
	return res.items
}

// Resultado interno de predict: separa "predicción real" de "respaldo"
// para poder testear la política de degradado sin mirar el contenido.
type recResult struct {
	items    []models.Recommendation
	degraded bool
}

func (s *RecommendService) predict(m *trainedModel, user models.UserData, count int) (recResult, error) {
	vector, err := knn.UserVector(m.gameIDs, user.Purchases)
	if err != nil {
		return recResult{}, err
	}

	neighbors, _, err := m.index.Search(vector, s.k)
	if err != nil {
		return recResult{}, err
	}

	// Candidatos: columnas que el usuario aún tiene en 0 (sin valorar).
	// Para cada una se promedian las notas no nulas de los vecinos; si
	// ningún vecino valoró el juego no hay señal y se salta.
	type scored struct {
		col   int
		score float64
	}
	var predictions []scored
	hasCandidates := false

	for j := range vector {
		if vector[j] != 0 {
			continue
		}
		hasCandidates = true

		var sum float64
		var n int
		for _, row := range neighbors {
			if v := m.index.Row(row)[j]; v > 0 {
				sum += v
				n++
			}
		}
		if n > 0 {
			predictions = append(predictions, scored{col: j, score: sum / float64(n)})
		}
	}

	if !hasCandidates {
		// ya valoró todo el catálogo, no hay nada que predecir
		return recResult{items: s.fallback(count), degraded: true}, nil
	}

	// Orden por score descendente; empates quedan en orden de columna
	// (sort estable) para que la salida sea determinística.
	sort.SliceStable(predictions, func(a, b int) bool {
		return predictions[a].score > predictions[b].score
	})

	total := len(predictions) // señal disponible, antes de truncar
	if len(predictions) > count {
		predictions = predictions[:count]
	}

	items := make([]models.Recommendation, 0, len(predictions))
	for _, p := range predictions {
		gameID := m.gameIDs[p.col]
		game, ok := s.catalog.Get(gameID)
		if !ok {
			return recResult{}, fmt.Errorf("juego %d no está en el catálogo", gameID)
		}
		items = append(items, models.Recommendation{
			GameID:          gameID,
			GameName:        game.Name,
			Category:        game.Category,
			Publisher:       game.Publisher,
			Price:           game.Price,
			PredictedRating: round2(p.score),
			Confidence:      confidence(p.score, total),
		})
	}
	return recResult{items: items}, nil
}

// confidence mezcla qué tan buena es la nota predicha (70%) con cuánta
// señal había para predecir (30%), ambas acotadas a 1 para que el
// resultado quede en [0,1].
func confidence(score float64, total int) float64 {
	scoreConf := math.Min(score/ratingScale, 1.0)
	availConf := math.Min(float64(total)/10.0, 1.0)
	return round2(scoreConf*0.7 + availConf*0.3)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// fallback devuelve la lista fija de respaldo recortada a count.
// Política "nunca devolver vacío": disponibilidad antes que
// personalización cuando algo sale mal.
func (s *RecommendService) fallback(count int) []models.Recommendation {
	defaults := defaultRecommendations()
	if count < len(defaults) {
		defaults = defaults[:count]
	}
	return defaults
}

func defaultRecommendations() []models.Recommendation {
	return []models.Recommendation{
		{GameID: 1, GameName: "Catan", Category: "Estrategia", Publisher: "Asmodee", Price: 45.0, PredictedRating: 4.0, Confidence: 0.8},
		{GameID: 2, GameName: "Pandemic", Category: "Cooperativo", Publisher: "Z-Man Games", Price: 35.0, PredictedRating: 4.2, Confidence: 0.8},
		{GameID: 3, GameName: "Ticket to Ride", Category: "Familiar", Publisher: "Days of Wonder", Price: 50.0, PredictedRating: 4.1, Confidence: 0.8},
		{GameID: 4, GameName: "7 Wonders", Category: "Estrategia", Publisher: "Repos Production", Price: 40.0, PredictedRating: 4.3, Confidence: 0.8},
		{GameID: 5, GameName: "Carcassonne", Category: "Familiar", Publisher: "Hans im Glück", Price: 30.0, PredictedRating: 4.0, Confidence: 0.8},
	}
}

// Info devuelve el estado del modelo para /model/info y /health.
func (s *RecommendService) Info() models.ModelInfo {
	s.mu.RLock()
	trained := s.model != nil
	s.mu.RUnlock()

	return models.ModelInfo{
		Algorithm:  AlgorithmName,
		KValue:     s.k,
		IsTrained:  trained,
		TotalGames: s.catalog.Count(),
		TotalUsers: s.ratings.Count(),
	}
}
