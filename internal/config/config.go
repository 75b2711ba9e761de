package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	HTTP     HTTPConfig
	GitHub   GitHubConfig
	Auth     AuthConfig
	Sync     SyncConfig
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type HTTPConfig struct {
	Addr string
}

type GitHubConfig struct {
	// Token is optional; unauthenticated API calls get a lower rate limit.
	Token             string
	OAuthClientID     string
	OAuthClientSecret string
	OAuthRedirectURL  string
}

type AuthConfig struct {
	// SessionSecret signs the session cookie.
	SessionSecret string
	// AllowedUsers is the login whitelist (GitHub usernames).
	AllowedUsers []string
}

type SyncConfig struct {
	// Repos is the default "owner/name" list synced periodically.
	Repos    []string
	Interval time.Duration
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "worklog"),
			Password: getEnv("DB_PASSWORD", "worklog"),
			DBName:   getEnv("DB_NAME", "worklog"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		HTTP: HTTPConfig{
			Addr: getEnv("HTTP_ADDR", ":8080"),
		},
		GitHub: GitHubConfig{
			Token:             getEnv("GITHUB_PAT", ""),
			OAuthClientID:     getEnv("GITHUB_OAUTH_CLIENT_ID", ""),
			OAuthClientSecret: getEnv("GITHUB_OAUTH_CLIENT_SECRET", ""),
			OAuthRedirectURL:  getEnv("GITHUB_OAUTH_REDIRECT_URL", "http://localhost:8080/auth/github/callback"),
		},
		Auth: AuthConfig{
			SessionSecret: getEnv("SESSION_SECRET", "dev-secret"),
			AllowedUsers:  splitList(getEnv("ALLOWED_USERS", "")),
		},
		Sync: SyncConfig{
			Repos:    splitList(getEnv("GITHUB_REPOS", "")),
			Interval: getDuration("SYNC_INTERVAL", time.Hour),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
