package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr           string
	LogFile        string
	PaymentTimeout time.Duration
}

// Load reads the optional .env file and resolves settings with defaults.
// A missing .env is fine; real deployments set the environment directly.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded:", err)
	}
	return Config{
		Addr:           getString("ADDR", ":8080"),
		LogFile:        getString("LOG_FILE", "blobfield.log"),
		PaymentTimeout: time.Duration(getInt("PAYMENT_TIMEOUT_SECONDS", 30)) * time.Second,
	}
}

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
