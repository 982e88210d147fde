package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultInputPath = "input/sample.in"
	defaultCacheTTL  = 3600
)

// Config holds the configuration shared by every binary.
type Config struct {
	InputPath string // Maze file solved when no path flag is given
	MaxNodes  int    // Search node limit, 0 for none
}

// ServerConfig holds the configuration of the REST server.
type ServerConfig struct {
	HostIP          string // Host IP for the server
	RESTPort        int    // Port for the REST API
	GinMode         string // Mode for the Gin framework (e.g., release, debug, test)
	RedisAddr       string // host:port of the Redis instance backing the result cache
	RedisPassword   string // Password for Redis
	RedisDB         int    // Redis logical database
	CacheTTLSeconds int    // Lifetime of cached results
	DBHost          string // Hostname or IP address for the database
	DBPort          int    // Port number for the database
	DBUser          string // Username for the database
	DBPassword      string // Password for the database
	DBName          string // Name of the database
	JWTSecret       string // Secret key for JWT signing
	JWTIssuer       string // Issuer claim for JWTs
	APIClientID     string // Client allowed to request tokens
	APISecretHash   string // bcrypt hash of that client's secret
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig loads the .env file if present and reads the shared settings.
func initConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		InputPath: getEnvWithDefault("LABYRINTH_INPUT_PATH", defaultInputPath),
		MaxNodes:  getEnvAsIntWithDefault("LABYRINTH_MAX_NODES", 0),
	}
}

// MustServerConfig reads the server settings, exiting when a required one is missing.
func MustServerConfig() ServerConfig {
	return ServerConfig{
		HostIP:          getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:        mustGetEnvAsInt("REST_PORT"),
		GinMode:         getEnvWithDefault("GIN_MODE", "release"),
		RedisAddr:       mustGetEnv("REDIS_ADDR"),
		RedisPassword:   getEnvWithDefault("REDIS_PASSWORD", ""),
		RedisDB:         getEnvAsIntWithDefault("REDIS_DB", 0),
		CacheTTLSeconds: getEnvAsIntWithDefault("CACHE_TTL_SECONDS", defaultCacheTTL),
		DBHost:          mustGetEnv("DB_HOST"),
		DBPort:          mustGetEnvAsInt("DB_PORT"),
		DBUser:          mustGetEnv("DB_USER"),
		DBPassword:      mustGetEnv("DB_PASS"),
		DBName:          mustGetEnv("DB_NAME"),
		JWTSecret:       mustGetEnv("JWT_SECRET"),
		JWTIssuer:       mustGetEnv("JWT_ISSUER"),
		APIClientID:     mustGetEnv("API_CLIENT_ID"),
		APISecretHash:   mustGetEnv("API_SECRET_HASH"),
	}
}

// mustGetEnv retrieves the value of an environment variable or logs a fatal error if not set.
func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("[APP] [FATAL] Environment variable %s is not set", key)
	}
	return value
}

// mustGetEnvAsInt retrieves the value of an environment variable as an integer or logs a fatal error if not set or cannot be parsed.
func mustGetEnvAsInt(key string) int {
	valueStr := mustGetEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an integer environment variable, falling back to defaultValue
// when it is unset or not a number.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("[APP] [WARNING] Environment variable %s must be an integer, using %d: %v", key, defaultValue, err)
		return defaultValue
	}
	return value
}
