package knn

import (
	"fmt"

	"github.com/aaronbul/gamesup/internal/models"
)

// BuildRatingsMatrix arma la matriz usuario×juego.
// Filas = userIDs (en ese orden), columnas = gameIDs (en ese orden).
// Celda = nota del usuario para ese juego, 0 si nunca lo valoró.
// OJO: el 0 es centinela de "sin valorar", una nota genuina de 0 se pierde.
func BuildRatingsMatrix(gameIDs []int, userIDs []int, ratings map[int][]models.Purchase) ([][]float64, error) {
	if len(gameIDs) == 0 || len(userIDs) == 0 {
		return nil, fmt.Errorf("%w: se necesitan juegos y usuarios cargados", ErrPrecondition)
	}

	colOf := columnIndex(gameIDs)

	matrix := make([][]float64, len(userIDs))
	for i, userID := range userIDs {
		row := make([]float64, len(gameIDs))
		for _, p := range ratings[userID] {
			if j, ok := colOf[p.GameID]; ok {
				row[j] = p.Rating
			}
		}
		matrix[i] = row
	}
	return matrix, nil
}

// UserVector convierte las compras de un usuario cualquiera en un vector
// con el mismo orden de columnas que la matriz. Compras de juegos que no
// están en el catálogo se ignoran en silencio (puede llegar un id viejo).
func UserVector(gameIDs []int, purchases []models.Purchase) ([]float64, error) {
	if len(gameIDs) == 0 {
		return nil, fmt.Errorf("%w: el catálogo de juegos está vacío", ErrPrecondition)
	}

	colOf := columnIndex(gameIDs)

	vec := make([]float64, len(gameIDs))
	for _, p := range purchases {
		if j, ok := colOf[p.GameID]; ok {
			vec[j] = p.Rating
		}
	}
	return vec, nil
}

func columnIndex(gameIDs []int) map[int]int {
	colOf := make(map[int]int, len(gameIDs))
	for j, id := range gameIDs {
		colOf[id] = j
	}
	return colOf
}
