package models

// Catálogo de juegos de mesa (mismo formato que el CSV de carga)
type Game struct {
	GameID     int     `json:"game_id"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Publisher  string  `json:"publisher"`
	Price      float64 `json:"price"`
	MinPlayers int     `json:"min_players"`
	MaxPlayers int     `json:"max_players"`
	MinAge     int     `json:"min_age"`
	Duration   int     `json:"duration"` // en minutos
}
