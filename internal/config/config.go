package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort   string
	RedisAddr  string
	RedisPass  string
	GamesCSV   string // ruta opcional al catálogo; vacío = datos de prueba
	KNeighbors int
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		HTTPPort:   getEnv("HTTP_PORT", "8001"),
		RedisAddr:  getEnv("REDIS_ADDR", ""),
		RedisPass:  getEnv("REDIS_PASSWORD", ""),
		GamesCSV:   getEnv("GAMES_CSV", ""),
		KNeighbors: getEnvInt("K_NEIGHBORS", 3),
	}
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Printf("[config] %s no está seteado, usando valor por defecto\n", key)
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		log.Printf("[config] %s no está seteado, usando valor por defecto\n", key)
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[config] %s=%q no es un entero, usando %d\n", key, v, def)
		return def
	}
	return n
}
