package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultPort = 8080

	// Bucket name inherited from the original deployment: the project id
	// prefixed onto the config bucket suffix.
	defaultBucket = "neural-network-config-neural-network-config"
)

// Config holds process-level settings. Values come from a .env file when
// present, with real environment variables taking precedence.
type Config struct {
	Port    int
	Bucket  string
	Store   string // "gcs" or "file"
	DataDir string
}

// Load reads the service configuration from the environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := Config{
		Port:    DefaultPort,
		Bucket:  defaultBucket,
		Store:   "gcs",
		DataDir: "data",
	}

	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			log.Printf("Invalid PORT %q, using %d", port, DefaultPort)
		} else {
			cfg.Port = p
		}
	}
	if bucket := os.Getenv("NETVIZ_BUCKET"); bucket != "" {
		cfg.Bucket = bucket
	}
	if store := os.Getenv("NETVIZ_STORE"); store != "" {
		cfg.Store = store
	}
	if dir := os.Getenv("NETVIZ_DATA_DIR"); dir != "" {
		cfg.DataDir = dir
	}

	return cfg
}
