package service

import (
	"log"

	"github.com/aaronbul/gamesup/internal/models"
	"github.com/aaronbul/gamesup/internal/repository"
)

// GameService: consultas de catálogo y recarga de datos.
type GameService struct {
	catalog *repository.CatalogRepository
	ratings *repository.RatingRepository
	csvPath string
}

func NewGameService(catalog *repository.CatalogRepository, ratings *repository.RatingRepository, csvPath string) *GameService {
	return &GameService{catalog: catalog, ratings: ratings, csvPath: csvPath}
}

// ReloadData vuelve a cargar catálogo y usuarios de entrenamiento
// (CSV si hay ruta configurada, datos de prueba si no). El modelo no se
// reentrena acá: eso lo decide quien llama (POST /update-model).
func (s *GameService) ReloadData() error {
	if s.csvPath != "" {
		if err := s.catalog.LoadFromCSV(s.csvPath); err != nil {
			return err
		}
		log.Printf("[games] catálogo cargado desde %s (%d juegos)", s.csvPath, s.catalog.Count())
	} else {
		s.catalog.LoadSampleGames()
		log.Printf("[games] catálogo de prueba cargado (%d juegos)", s.catalog.Count())
	}

	s.ratings.LoadSampleUsers()
	return nil
}

func (s *GameService) Get(gameID int) (models.Game, bool) {
	return s.catalog.Get(gameID)
}

func (s *GameService) All() []models.Game {
	return s.catalog.All()
}

func (s *GameService) ByCategory(category string) []models.Game {
	return s.catalog.ByCategory(category)
}

// Stats arma los totales para /stats.
type CatalogStats struct {
	TotalGames      int            `json:"total_games"`
	TotalUsers      int            `json:"total_users"`
	GamesByCategory map[string]int `json:"games_by_category"`
}

func (s *GameService) Stats() CatalogStats {
	byCategory := map[string]int{}
	for _, g := range s.catalog.All() {
		byCategory[g.Category]++
	}
	return CatalogStats{
		TotalGames:      s.catalog.Count(),
		TotalUsers:      s.ratings.Count(),
		GamesByCategory: byCategory,
	}
}
