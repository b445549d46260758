package infra

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	PostgresURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	SerpAPIKey       string
	AirportsDataPath string

	SummaryProvider string
	OpenAIKey       string
	GeminiKey       string
	SummaryModel    string

	JWTSecret string
}

// LoadConfig reads .env when present, then the environment. Missing optional
// values get defaults; the server runs without Redis and without AI keys.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	redisDB := 0
	if raw := os.Getenv("REDIS_DB"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			log.Printf("Invalid REDIS_DB %q, using 0", raw)
		} else {
			redisDB = parsed
		}
	}

	return &Config{
		Port:        envOr("PORT", "8080"),
		PostgresURL: os.Getenv("POSTGRES_URL"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,

		SerpAPIKey:       os.Getenv("SERPAPI_KEY"),
		AirportsDataPath: envOr("AIRPORTS_DATA_PATH", "data/airports.dat"),

		SummaryProvider: envOr("SUMMARY_PROVIDER", "openai"),
		OpenAIKey:       os.Getenv("OPENAI_API_KEY"),
		GeminiKey:       os.Getenv("GEMINI_API_KEY"),
		SummaryModel:    os.Getenv("SUMMARY_MODEL"),

		JWTSecret: os.Getenv("JWT_SECRET"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
