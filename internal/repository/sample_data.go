package repository

import "github.com/aaronbul/gamesup/internal/models"

// Datos de prueba de GamesUP: el catálogo y los usuarios que se usan
// cuando no hay CSV configurado.

func sampleGames() []models.Game {
	return []models.Game{
		{GameID: 1, Name: "Catan", Category: "Estrategia", Publisher: "Asmodee", Price: 45.0, MinPlayers: 3, MaxPlayers: 4, MinAge: 10, Duration: 90},
		{GameID: 2, Name: "Pandemic", Category: "Cooperativo", Publisher: "Z-Man Games", Price: 35.0, MinPlayers: 2, MaxPlayers: 4, MinAge: 8, Duration: 45},
		{GameID: 3, Name: "Ticket to Ride", Category: "Familiar", Publisher: "Days of Wonder", Price: 50.0, MinPlayers: 2, MaxPlayers: 5, MinAge: 8, Duration: 60},
		{GameID: 4, Name: "7 Wonders", Category: "Estrategia", Publisher: "Repos Production", Price: 40.0, MinPlayers: 3, MaxPlayers: 7, MinAge: 10, Duration: 30},
		{GameID: 5, Name: "Carcassonne", Category: "Familiar", Publisher: "Hans im Glück", Price: 30.0, MinPlayers: 2, MaxPlayers: 5, MinAge: 7, Duration: 45},
		{GameID: 6, Name: "Dominion", Category: "Estrategia", Publisher: "Rio Grande Games", Price: 35.0, MinPlayers: 2, MaxPlayers: 4, MinAge: 13, Duration: 30},
		{GameID: 7, Name: "Splendor", Category: "Estrategia", Publisher: "Space Cowboys", Price: 40.0, MinPlayers: 2, MaxPlayers: 4, MinAge: 10, Duration: 30},
		{GameID: 8, Name: "Azul", Category: "Abstracto", Publisher: "Plan B Games", Price: 45.0, MinPlayers: 2, MaxPlayers: 4, MinAge: 8, Duration: 45},
		{GameID: 9, Name: "Wingspan", Category: "Estrategia", Publisher: "Stonemaier Games", Price: 55.0, MinPlayers: 1, MaxPlayers: 5, MinAge: 10, Duration: 70},
		{GameID: 10, Name: "The Crew", Category: "Cooperativo", Publisher: "Kosmos", Price: 15.0, MinPlayers: 2, MaxPlayers: 5, MinAge: 10, Duration: 20},
	}
}

// 5 perfiles con gustos distintos para que el KNN tenga algo que aprender
func sampleUsers() ([]int, map[int][]models.Purchase) {
	users := map[int][]models.Purchase{
		1: { // estratega
			{GameID: 1, Rating: 4.5},
			{GameID: 4, Rating: 4.8},
			{GameID: 6, Rating: 4.2},
			{GameID: 7, Rating: 4.6},
		},
		2: { // prefiere cooperativos
			{GameID: 2, Rating: 4.7},
			{GameID: 10, Rating: 4.3},
			{GameID: 3, Rating: 3.8},
		},
		3: { // juegos familiares
			{GameID: 3, Rating: 4.4},
			{GameID: 5, Rating: 4.1},
			{GameID: 8, Rating: 4.0},
		},
		4: { // gustos variados
			{GameID: 1, Rating: 4.0},
			{GameID: 2, Rating: 4.5},
			{GameID: 9, Rating: 4.8},
			{GameID: 10, Rating: 4.2},
		},
		5: { // juegos complejos
			{GameID: 9, Rating: 4.9},
			{GameID: 4, Rating: 4.6},
			{GameID: 6, Rating: 4.7},
		},
	}
	return []int{1, 2, 3, 4, 5}, users
}
