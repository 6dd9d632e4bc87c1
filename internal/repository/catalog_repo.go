package repository

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/aaronbul/gamesup/internal/models"
)

// CatalogRepository guarda el catálogo de juegos en memoria.
// gameIDs fija el orden de las columnas de la matriz de ratings, así que
// tiene que ser estable entre llamadas dentro de un mismo entrenamiento.
type CatalogRepository struct {
	mu      sync.RWMutex
	gameIDs []int
	games   map[int]models.Game
}

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{games: map[int]models.Game{}}
}

// LoadSampleGames carga el catálogo de prueba de GamesUP (10 juegos).
// Reemplaza el catálogo completo, nunca lo edita en sitio.
func (r *CatalogRepository) LoadSampleGames() {
	r.LoadGames(sampleGames())
}

// LoadFromCSV reemplaza el catálogo con el contenido de un CSV con cabecera:
// game_id,name,category,publisher,price,min_players,max_players,min_age,duration
func (r *CatalogRepository) LoadFromCSV(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("abriendo catálogo %s: %w", path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return fmt.Errorf("leyendo catálogo %s: %w", path, err)
	}
	if len(rows) < 2 {
		return fmt.Errorf("catálogo %s sin filas de datos", path)
	}

	games := make([]models.Game, 0, len(rows)-1)
	for i, row := range rows[1:] { // saltamos la cabecera
		if len(row) < 9 {
			return fmt.Errorf("catálogo %s: fila %d incompleta", path, i+2)
		}
		g, err := parseGameRow(row)
		if err != nil {
			return fmt.Errorf("catálogo %s: fila %d: %w", path, i+2, err)
		}
		games = append(games, g)
	}

	r.LoadGames(games)
	return nil
}

func parseGameRow(row []string) (models.Game, error) {
	var g models.Game
	var err error

	if g.GameID, err = strconv.Atoi(row[0]); err != nil {
		return g, fmt.Errorf("game_id inválido %q", row[0])
	}
	g.Name = row[1]
	g.Category = row[2]
	g.Publisher = row[3]
	if g.Price, err = strconv.ParseFloat(row[4], 64); err != nil {
		return g, fmt.Errorf("price inválido %q", row[4])
	}
	if g.MinPlayers, err = strconv.Atoi(row[5]); err != nil {
		return g, fmt.Errorf("min_players inválido %q", row[5])
	}
	if g.MaxPlayers, err = strconv.Atoi(row[6]); err != nil {
		return g, fmt.Errorf("max_players inválido %q", row[6])
	}
	if g.MinAge, err = strconv.Atoi(row[7]); err != nil {
		return g, fmt.Errorf("min_age inválido %q", row[7])
	}
	if g.Duration, err = strconv.Atoi(row[8]); err != nil {
		return g, fmt.Errorf("duration inválido %q", row[8])
	}
	return g, nil
}

// LoadGames reemplaza el catálogo completo. Ids repetidos se quedan con
// la última versión sin duplicar la columna.
func (r *CatalogRepository) LoadGames(games []models.Game) {
	ids := make([]int, 0, len(games))
	byID := make(map[int]models.Game, len(games))
	for _, g := range games {
		if _, ya := byID[g.GameID]; !ya {
			ids = append(ids, g.GameID)
		}
		byID[g.GameID] = g
	}

	r.mu.Lock()
	r.gameIDs = ids
	r.games = byID
	r.mu.Unlock()
}

// GameIDs devuelve una copia del orden de ids (orden de las columnas).
func (r *CatalogRepository) GameIDs() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]int, len(r.gameIDs))
	copy(out, r.gameIDs)
	return out
}

func (r *CatalogRepository) Get(gameID int) (models.Game, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.games[gameID]
	return g, ok
}

// All devuelve los juegos en el orden del catálogo.
func (r *CatalogRepository) All() []models.Game {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Game, 0, len(r.gameIDs))
	for _, id := range r.gameIDs {
		out = append(out, r.games[id])
	}
	return out
}

// ByCategory filtra por categoría sin distinguir mayúsculas.
func (r *CatalogRepository) ByCategory(category string) []models.Game {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Game
	for _, id := range r.gameIDs {
		g := r.games[id]
		if strings.EqualFold(g.Category, category) {
			out = append(out, g)
		}
	}
	return out
}

func (r *CatalogRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.gameIDs)
}
