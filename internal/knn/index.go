package knn

import (
	"fmt"
	"math"
	"sort"
)

// Index es un buscador de vecinos por similitud coseno sobre las filas
// de la matriz de ratings. Fuerza bruta, igual que en la PC: con cientos
// de usuarios no hace falta nada más.
type Index struct {
	k      int
	matrix [][]float64
}

func NewIndex(k int) *Index {
	if k <= 0 {
		k = 3
	}
	return &Index{k: k}
}

func (ix *Index) K() int { return ix.k }

// Train descarta el índice anterior y se queda con la matriz nueva.
func (ix *Index) Train(matrix [][]float64) error {
	if len(matrix) == 0 {
		return fmt.Errorf("%w: la matriz no tiene filas", ErrPrecondition)
	}
	ix.matrix = matrix
	return nil
}

func (ix *Index) Trained() bool { return ix.matrix != nil }

// Row devuelve la fila i de la matriz entrenada (los ratings completos
// de ese usuario de entrenamiento).
func (ix *Index) Row(i int) []float64 { return ix.matrix[i] }

func (ix *Index) Rows() int { return len(ix.matrix) }

// Search devuelve los índices de las k filas más parecidas al vector,
// con sus distancias coseno (1 - similitud). k se recorta al número de
// filas disponibles. Empates se resuelven por índice de fila ascendente
// para que el resultado sea determinístico.
func (ix *Index) Search(vec []float64, k int) ([]int, []float64, error) {
	if ix.matrix == nil {
		return nil, nil, ErrNotTrained
	}
	if k <= 0 {
		k = ix.k
	}
	if k > len(ix.matrix) {
		k = len(ix.matrix)
	}

	type cand struct {
		row  int
		dist float64
	}
	cands := make([]cand, len(ix.matrix))
	for i, row := range ix.matrix {
		cands[i] = cand{row: i, dist: 1 - cosine(vec, row)}
	}

	sort.Slice(cands, func(a, b int) bool {
		if cands[a].dist != cands[b].dist {
			return cands[a].dist < cands[b].dist
		}
		return cands[a].row < cands[b].row
	})

	rows := make([]int, k)
	dists := make([]float64, k)
	for i := 0; i < k; i++ {
		rows[i] = cands[i].row
		dists[i] = cands[i].dist
	}
	return rows, dists, nil
}

// cosine: producto punto / normas. Si alguno de los vectores es todo
// ceros la similitud es 0/0; la definimos como 0 (distancia máxima) para
// que un usuario sin ratings reciba respuesta en vez de un NaN.
func cosine(a, b []float64) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
