package knn_test

import (
	"errors"
	"testing"

	"github.com/aaronbul/gamesup/internal/knn"
	"github.com/aaronbul/gamesup/internal/models"
	. "github.com/smartystreets/goconvey/convey"
)

func TestBuildRatingsMatrix(t *testing.T) {
	Convey("Dada una tabla de ratings de entrenamiento", t, func() {
		gameIDs := []int{10, 20, 30, 40}
		userIDs := []int{1, 2, 3}
		ratings := map[int][]models.Purchase{
			1: {{GameID: 10, Rating: 4.5}, {GameID: 40, Rating: 3.0}},
			2: {{GameID: 20, Rating: 5.0}},
			3: {}, // usuario sin compras: fila de ceros
		}

		Convey("La matriz sale con una fila por usuario y una columna por juego", func() {
			matrix, err := knn.BuildRatingsMatrix(gameIDs, userIDs, ratings)
			So(err, ShouldBeNil)
			So(len(matrix), ShouldEqual, 3)
			for _, row := range matrix {
				So(len(row), ShouldEqual, 4)
			}
		})

		Convey("Cada celda valorada tiene la nota exacta y el resto queda en 0", func() {
			matrix, err := knn.BuildRatingsMatrix(gameIDs, userIDs, ratings)
			So(err, ShouldBeNil)

			So(matrix[0][0], ShouldEqual, 4.5)
			So(matrix[0][3], ShouldEqual, 3.0)
			So(matrix[1][1], ShouldEqual, 5.0)

			// todas las demás en el centinela 0
			rated := map[[2]int]bool{{0, 0}: true, {0, 3}: true, {1, 1}: true}
			for i := range matrix {
				for j := range matrix[i] {
					if !rated[[2]int{i, j}] {
						So(matrix[i][j], ShouldEqual, 0)
					}
				}
			}
		})

		Convey("Compras de juegos fuera del catálogo no generan columna", func() {
			ratings[1] = append(ratings[1], models.Purchase{GameID: 999, Rating: 5.0})
			matrix, err := knn.BuildRatingsMatrix(gameIDs, userIDs, ratings)
			So(err, ShouldBeNil)
			So(len(matrix[0]), ShouldEqual, 4)
		})

		Convey("Sin catálogo o sin usuarios falla con ErrPrecondition", func() {
			_, err := knn.BuildRatingsMatrix(nil, userIDs, ratings)
			So(errors.Is(err, knn.ErrPrecondition), ShouldBeTrue)

			_, err = knn.BuildRatingsMatrix(gameIDs, nil, ratings)
			So(errors.Is(err, knn.ErrPrecondition), ShouldBeTrue)
		})
	})
}

func TestUserVector(t *testing.T) {
	Convey("Dado el orden de columnas del catálogo", t, func() {
		gameIDs := []int{10, 20, 30}

		Convey("El vector respeta el orden de columnas", func() {
			vec, err := knn.UserVector(gameIDs, []models.Purchase{
				{GameID: 30, Rating: 2.5},
				{GameID: 10, Rating: 4.0},
			})
			So(err, ShouldBeNil)
			So(vec, ShouldResemble, []float64{4.0, 0, 2.5})
		})

		Convey("Ids desconocidos se ignoran en silencio", func() {
			vec, err := knn.UserVector(gameIDs, []models.Purchase{
				{GameID: 777, Rating: 5.0},
			})
			So(err, ShouldBeNil)
			So(vec, ShouldResemble, []float64{0, 0, 0})
		})

		Convey("Catálogo vacío falla con ErrPrecondition", func() {
			_, err := knn.UserVector(nil, []models.Purchase{{GameID: 10, Rating: 4.0}})
			So(errors.Is(err, knn.ErrPrecondition), ShouldBeTrue)
		})
	})
}
