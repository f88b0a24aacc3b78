package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for our application
type Config struct {
	Port                 string
	Origin               string
	Environment          string
	JWTSecret            string
	JWTExpirationMinutes int
	Storage              StorageConfig
}

// StorageConfig selects and parameterizes the record store backend.
type StorageConfig struct {
	Driver    string // memory | file | mysql | redis
	DataDir   string // file driver
	DSN       string // mysql driver
	RedisAddr string // redis driver
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	storageCfg := StorageConfig{
		Driver:    getEnv("STORAGE_DRIVER", "file"),
		DataDir:   getEnv("STORAGE_DATA_DIR", "data"),
		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
	}

	// Build DSN for the mysql driver from the usual DB_* variables.
	dbUser := getEnv("DB_USERNAME", "root")
	dbPass := getEnv("DB_PASSWORD", "")
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "3306")
	dbName := getEnv("DB_NAME", "clinic")
	storageCfg.DSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		dbUser, dbPass, dbHost, dbPort, dbName)

	jwtExpMinutes, err := strconv.Atoi(getEnv("JWT_EXPIRATION_MINUTES", "480"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRATION_MINUTES: %w", err)
	}

	return &Config{
		Port:                 getEnv("PORT", "3001"),
		Origin:               getEnv("ORIGIN", "http://localhost:3000"),
		Environment:          getEnv("APP_ENV", "development"),
		JWTSecret:            getEnv("JWT_SECRET", "default_jwt_secret"),
		JWTExpirationMinutes: jwtExpMinutes,
		Storage:              storageCfg,
	}, nil
}

// Helper function to get environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
