// Package shared carries configuration and logging setup used by every
// stockroom binary.
package shared

import (
	"os"
	"strconv"
	"time"
)

// Store backends for the user service.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

type ServerConfig struct {
	Addr         string
	LogLevel     string
	Backend      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// LoadServerConfig reads SR_* env vars, falling back to dev defaults.
func LoadServerConfig(defaultAddr string) ServerConfig {
	return ServerConfig{
		Addr:         getEnv("SR_ADDR", defaultAddr),
		LogLevel:     getEnv("SR_LOG_LEVEL", "info"),
		Backend:      getEnv("SR_STORE", BackendMemory),
		ReadTimeout:  getEnvSeconds("SR_READ_TIMEOUT", 15),
		WriteTimeout: getEnvSeconds("SR_WRITE_TIMEOUT", 15),
		IdleTimeout:  getEnvSeconds("SR_IDLE_TIMEOUT", 60),
	}
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvSeconds(key string, def int) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return time.Duration(def) * time.Second
}
