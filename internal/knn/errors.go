package knn

import "errors"

var (
	// ErrPrecondition: falta input obligatorio (catálogo vacío, sin usuarios).
	// Se propaga al que llamó a Train, no se reintenta solo.
	ErrPrecondition = errors.New("knn: datos de entrada vacíos")

	// ErrNotTrained: se consultó el índice antes de entrenarlo
	ErrNotTrained = errors.New("knn: el índice no está entrenado")
)
