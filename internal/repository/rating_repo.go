package repository

import (
	"sync"

	"github.com/aaronbul/gamesup/internal/models"
)

// RatingRepository guarda los ratings de los usuarios de entrenamiento.
// userIDs fija el orden de las filas de la matriz. Los ratings no se
// editan en sitio: se reemplaza el lote completo por usuario.
type RatingRepository struct {
	mu      sync.RWMutex
	userIDs []int
	ratings map[int][]models.Purchase
}

func NewRatingRepository() *RatingRepository {
	return &RatingRepository{ratings: map[int][]models.Purchase{}}
}

// LoadSampleUsers reemplaza todo con los 5 perfiles de prueba.
func (r *RatingRepository) LoadSampleUsers() {
	ids, ratings := sampleUsers()

	r.mu.Lock()
	r.userIDs = ids
	r.ratings = ratings
	r.mu.Unlock()
}

// SetUserRatings reemplaza el lote de ratings de un usuario. Si el
// usuario es nuevo se agrega al final (mantiene el orden de inserción
// de las filas).
func (r *RatingRepository) SetUserRatings(userID int, purchases []models.Purchase) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ya := r.ratings[userID]; !ya {
		r.userIDs = append(r.userIDs, userID)
	}
	batch := make([]models.Purchase, len(purchases))
	copy(batch, purchases)
	r.ratings[userID] = batch
}

// Snapshot devuelve una copia del estado actual: ids de usuario en orden
// de fila y el mapa de ratings. Es lo que consume el entrenamiento.
func (r *RatingRepository) Snapshot() ([]int, map[int][]models.Purchase) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]int, len(r.userIDs))
	copy(ids, r.userIDs)

	ratings := make(map[int][]models.Purchase, len(r.ratings))
	for id, ps := range r.ratings {
		cp := make([]models.Purchase, len(ps))
		copy(cp, ps)
		ratings[id] = cp
	}
	return ids, ratings
}

func (r *RatingRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.userIDs)
}
