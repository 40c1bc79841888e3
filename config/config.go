package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const DefaultPlaceholderImage = "https://learnberry.com/images/logo.png"

type Config struct {
	AppPort string
	AppMode string

	// TrustedProxies lists the proxy CIDRs/IPs whose forwarding headers are
	// believed. Empty means the client IP is always the socket peer.
	TrustedProxies []string

	MongoURI        string
	MongoDB         string
	MongoTimeoutSec int

	PlaceholderImageURL string
	BcryptCost          int

	RateLimitBackend   string
	RateLimitAuth      int
	RateLimitWindowSec int

	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
}

func LoadConfig() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		AppPort:             getEnv("APP_PORT", "8080"),
		AppMode:             getEnv("APP_MODE", "debug"),
		TrustedProxies:      getEnvAsList("TRUSTED_PROXIES"),
		MongoURI:            getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:             getEnv("MONGO_DB", "places"),
		MongoTimeoutSec:     getEnvAsInt("MONGO_TIMEOUT_SEC", 10),
		PlaceholderImageURL: getEnv("PLACEHOLDER_IMAGE_URL", DefaultPlaceholderImage),
		BcryptCost:          getEnvAsInt("BCRYPT_COST", 10),
		RateLimitBackend:    getEnv("RATE_LIMIT_BACKEND", "memory"),
		RateLimitAuth:       getEnvAsInt("RATE_LIMIT_AUTH", 20),
		RateLimitWindowSec:  getEnvAsInt("RATE_LIMIT_WINDOW_SEC", 60),
		RedisHost:           getEnv("REDIS_HOST", "localhost"),
		RedisPort:           getEnv("REDIS_PORT", "6379"),
		RedisPassword:       getEnv("REDIS_PASSWORD", ""),
		RedisDB:             getEnvAsInt("REDIS_DB", 0),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// getEnvAsList splits a comma separated variable, dropping empty items.
func getEnvAsList(key string) []string {
	var out []string
	for _, item := range strings.Split(getEnv(key, ""), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
