package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DBDSN         string
	AdminPassword string
	JWTSecret     string
	GeminiAPIKey  string
	GeminiModel   string
	CORSOrigins   string
	LogFile       string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func Load() Config {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err == nil {
		log.Println("[config] loaded .env")
	}

	cfg := Config{
		Port:  getenv("PORT", "8080"),
		DBDSN: getenv("DB_DSN", "jeancro.db"), // sqlite file in project root
		// Demo placeholder, not a security mechanism. Matches the mock
		// password the admin UI was built against.
		AdminPassword: getenv("ADMIN_PASSWORD", "admin"),
		JWTSecret:     getenv("JWT_SECRET", "jeancro-dev-secret"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   getenv("GEMINI_MODEL", "gemini-1.5-flash"),
		CORSOrigins:   getenv("CORS_ORIGINS", "http://localhost:5173"),
		LogFile:       getenv("LOG_FILE", "./jeancro.log"),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s GEMINI_MODEL=%s gemini_key_set=%t",
		cfg.Port, cfg.DBDSN, cfg.GeminiModel, cfg.GeminiAPIKey != "")
	return cfg
}
