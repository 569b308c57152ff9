package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

const (
	defaultPort             = "8080"
	defaultDatabasePath     = "moodmate.db"
	defaultJWTIssuer        = "moodmate"
	defaultLoginTokenTTL    = time.Hour
	defaultRegisterTokenTTL = 7 * 24 * time.Hour
	defaultDisplayTimezone  = "Asia/Jakarta"
	defaultDBLogLevel       = "warn"
)

// wibOffset is used when the tz database has no entry for the display zone.
const wibOffset = 7 * 60 * 60

type Config struct {
	Port string

	// database path
	DatabasePath string
	DBLogLevel   string

	// token settings
	JWTSecret        string
	JWTIssuer        string
	LoginTokenTTL    time.Duration // lifetime of tokens issued by /login
	RegisterTokenTTL time.Duration // lifetime of tokens issued by /register

	CORSAllowedOrigins []string

	// zone used to render record dates for display
	DisplayLocation *time.Location
}

func getEnvOrDefault(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvDurationOrDefault(envVar string, defaultVal time.Duration) time.Duration {
	valStr := strings.TrimSpace(os.Getenv(envVar))
	if valStr == "" {
		return defaultVal
	}
	val, err := time.ParseDuration(valStr)
	if err != nil || val <= 0 {
		log.Printf("Warning: Invalid %s '%s'. Using default %s. Error: %v", envVar, valStr, defaultVal, err)
		return defaultVal
	}
	return val
}

func parseCSV(input string) []string {
	var out []string
	for _, part := range strings.Split(input, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// LoadLocation resolves name from the tz database, falling back to a fixed
// UTC+7 zone named WIB.
func LoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("Warning: Unknown time zone '%s', falling back to WIB (UTC+7): %v", name, err)
		return time.FixedZone("WIB", wibOffset)
	}
	return loc
}

func LoadConfig() (Config, error) {
	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}

	origins := parseCSV(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000"))
	if len(origins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS must list at least one origin")
	}

	cfg := Config{
		Port:               getEnvOrDefault("PORT", defaultPort),
		DatabasePath:       getEnvOrDefault("DATABASE_PATH", defaultDatabasePath),
		DBLogLevel:         strings.ToLower(getEnvOrDefault("DB_LOG_LEVEL", defaultDBLogLevel)),
		JWTSecret:          secret,
		JWTIssuer:          getEnvOrDefault("JWT_ISSUER", defaultJWTIssuer),
		LoginTokenTTL:      getEnvDurationOrDefault("LOGIN_TOKEN_TTL", defaultLoginTokenTTL),
		RegisterTokenTTL:   getEnvDurationOrDefault("REGISTER_TOKEN_TTL", defaultRegisterTokenTTL),
		CORSAllowedOrigins: origins,
		DisplayLocation:    LoadLocation(getEnvOrDefault("DISPLAY_TIMEZONE", defaultDisplayTimezone)),
	}

	return cfg, nil
}

// HTTPAddress returns the address the HTTP server binds to.
func (c Config) HTTPAddress() string {
	return ":" + c.Port
}
