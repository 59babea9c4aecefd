package config

import (
	"log"
	"os"
	"time"
)

type Config struct {
	Port           string
	StoreBackend   string
	DatabaseURL    string
	DatabaseURLSet bool
	DatabaseName   string
	StoreTimeout   time.Duration
	LogFile        string
	GRPCPort       string
	CORSOrigins    string
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func Load() Config {
	url := os.Getenv("DATABASE_URL")
	timeout, err := time.ParseDuration(getEnv("STORE_TIMEOUT", "5s"))
	if err != nil || timeout <= 0 {
		log.Printf("[config] bad STORE_TIMEOUT %q, using 5s", os.Getenv("STORE_TIMEOUT"))
		timeout = 5 * time.Second
	}

	cfg := Config{
		Port:           getEnv("PORT", "8000"),
		StoreBackend:   getEnv("STORE_BACKEND", "sqlite"),
		DatabaseURL:    url,
		DatabaseURLSet: url != "",
		DatabaseName:   getEnv("DATABASE_NAME", "urbanbean"),
		StoreTimeout:   timeout,
		LogFile:        os.Getenv("LOG_FILE"), // empty: stdout only
		GRPCPort:       os.Getenv("GRPC_PORT"),
		CORSOrigins:    getEnv("CORS_ORIGINS", "*"),
	}
	// the DSN may carry credentials; only report whether it is set
	log.Printf("[config] PORT=%s STORE_BACKEND=%s DATABASE_URL set=%t DATABASE_NAME=%s STORE_TIMEOUT=%s LOG_FILE=%s GRPC_PORT=%s CORS_ORIGINS=%s",
		cfg.Port, cfg.StoreBackend, cfg.DatabaseURLSet, cfg.DatabaseName, cfg.StoreTimeout, cfg.LogFile, cfg.GRPCPort, cfg.CORSOrigins)
	return cfg
}
