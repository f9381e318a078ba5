package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultSessionTTL = 24 * time.Hour

// AppConfig collects everything the server needs at startup.
type AppConfig struct {
	ListenAddr        string
	Port              string
	DatabasePath      string
	GinMode           string
	AdminPassword     string
	AdminPasswordHash string
	SessionTTL        time.Duration
	AllowedOrigins    []string
}

// Load reads the application config from environment variables and fills in
// safe defaults for missing values. The admin secret has no default: when
// neither ADMIN_PASSWORD nor ADMIN_PASSWORD_HASH is set, logins always fail.
func Load() AppConfig {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8001"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	databasePath := strings.TrimSpace(os.Getenv("DATABASE_PATH"))
	if databasePath == "" {
		databasePath = "portfolio.db"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	sessionTTL := defaultSessionTTL
	if raw := strings.TrimSpace(os.Getenv("SESSION_TTL_HOURS")); raw != "" {
		if hours, err := strconv.Atoi(raw); err == nil && hours > 0 {
			sessionTTL = time.Duration(hours) * time.Hour
		}
	}

	return AppConfig{
		ListenAddr:        listenAddr,
		Port:              port,
		DatabasePath:      databasePath,
		GinMode:           ginMode,
		AdminPassword:     strings.TrimSpace(os.Getenv("ADMIN_PASSWORD")),
		AdminPasswordHash: strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH")),
		SessionTTL:        sessionTTL,
		AllowedOrigins:    parseOrigins(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}
}

// parseOrigins splits a comma-separated origin list. An empty value falls
// back to allowing every origin.
func parseOrigins(raw string) []string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return []string{"*"}
	}

	parts := strings.Split(trimmed, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
