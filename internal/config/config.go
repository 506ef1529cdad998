package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"menuboard/internal/menu"

	"github.com/joho/godotenv"
)

const devJWTSecret = "menuboard-dev-secret"

type Config struct {
	Env    string
	Server ServerConfig
	Auth   AuthConfig
	Menu   MenuConfig
	Log    LogConfig
}

type ServerConfig struct {
	Port        string
	CORSOrigins []string
}

type AuthConfig struct {
	JWTSecret string
}

type MenuConfig struct {
	Variant menu.Variant
	Seed    string // "default", "empty" or a YAML file path
}

type LogConfig struct {
	Level  string
	Format string // "text" or "json"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from the environment, after loading a .env
// file when one is present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	variant, err := menu.ParseVariant(getEnv("MENU_VARIANT", string(menu.VariantBasic)))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Env: getEnv("APP_ENV", "development"),
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		},
		Auth: AuthConfig{
			JWTSecret: os.Getenv("JWT_SECRET"),
		},
		Menu: MenuConfig{
			Variant: variant,
			Seed:    getEnv("MENU_SEED", menu.SeedDefault),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}

	if cfg.Auth.JWTSecret == "" {
		if cfg.IsProduction() {
			return nil, errors.New("JWT_SECRET is not set")
		}
		cfg.Auth.JWTSecret = devJWTSecret
	}

	if cfg.Log.Format != "text" && cfg.Log.Format != "json" {
		return nil, fmt.Errorf("unknown LOG_FORMAT %q", cfg.Log.Format)
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
