package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	AI       AIConfig
	Vector   VectorConfig
	Session  SessionConfig
}

type AppConfig struct {
	Port      string
	StoreName string
}

type DatabaseConfig struct {
	URL string
}

// AIConfig selects and configures the generation/embedding provider.
type AIConfig struct {
	Provider         string // "openai" or "ollama"
	OpenAIModel      string
	OpenAIEmbedModel string
	OllamaBaseURL    string
	OllamaModel      string
	OllamaEmbedModel string
}

// VectorConfig selects the vector index driver.
type VectorConfig struct {
	Driver     string // "memory" or "qdrant"
	QdrantURL  string
	QdrantKey  string
	Collection string
}

// SessionConfig selects the session store driver.
type SessionConfig struct {
	Driver   string // "memory" or "redis"
	RedisURL string
	TTL      time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:      getEnv("PORT", "8080"),
			StoreName: getEnv("STORE_NAME", "our store"),
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		AI: AIConfig{
			Provider:         getEnv("AI_PROVIDER", "openai"),
			OpenAIModel:      getEnv("OPENAI_MODEL", ""),
			OpenAIEmbedModel: getEnv("OPENAI_EMBED_MODEL", "text-embedding-3-small"),
			OllamaBaseURL:    getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:      getEnv("OLLAMA_MODEL", "llama3.2"),
			OllamaEmbedModel: getEnv("OLLAMA_EMBED_MODEL", "mxbai-embed-large"),
		},
		Vector: VectorConfig{
			Driver:     getEnv("VECTOR_DRIVER", "memory"),
			QdrantURL:  getEnv("QDRANT_URL", ""),
			QdrantKey:  getEnv("QDRANT_API_KEY", ""),
			Collection: getEnv("QDRANT_COLLECTION", "store_assistant"),
		},
		Session: SessionConfig{
			Driver:   getEnv("SESSION_DRIVER", "memory"),
			RedisURL: getEnv("REDIS_URL", "redis://localhost:6379"),
			TTL:      getEnvAsDuration("SESSION_TTL", 24*time.Hour),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if strValue == "" {
		return fallback
	}
	if d, err := time.ParseDuration(strValue); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(strValue); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
