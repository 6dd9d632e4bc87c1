package models

// Compra de un usuario con su nota (escala 0 a 5)
type Purchase struct {
	GameID       int     `json:"game_id"`
	Rating       float64 `json:"rating"`
	PurchaseDate int64   `json:"purchase_date,omitempty"` // epoch, opcional
	PlayTime     int     `json:"play_time,omitempty"`     // en minutos, opcional
}

// Perfil que llega en la petición de recomendaciones.
// No tiene por qué ser un usuario de entrenamiento.
type UserData struct {
	UserID    int            `json:"user_id"`
	Purchases []Purchase     `json:"purchases"`
	Prefs     map[string]any `json:"preferences,omitempty"`
}
