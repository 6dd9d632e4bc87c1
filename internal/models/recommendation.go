package models

// Recomendación final que devolvemos por API
type Recommendation struct {
	GameID          int     `json:"game_id"`
	GameName        string  `json:"game_name"`
	Category        string  `json:"category"`
	Publisher       string  `json:"publisher"`
	Price           float64 `json:"price"`
	PredictedRating float64 `json:"predicted_rating"`
	Confidence      float64 `json:"confidence"` // siempre en [0,1]
}

// ====== Petición / respuesta de /recommendations ======

type RecommendationRequest struct {
	UserData           UserData `json:"user_data"`
	NumRecommendations int      `json:"num_recommendations"`
}

type RecommendationResponse struct {
	UserID           int              `json:"user_id"`
	Recommendations  []Recommendation `json:"recommendations"`
	ConfidenceScores []float64        `json:"confidence_scores"`
	AlgorithmUsed    string           `json:"algorithm_used"`
}

// Estado del modelo (para /model/info y /health)
type ModelInfo struct {
	Algorithm  string `json:"algorithm"`
	KValue     int    `json:"k_value"`
	IsTrained  bool   `json:"is_trained"`
	TotalGames int    `json:"total_games"`
	TotalUsers int    `json:"total_users"`
}
