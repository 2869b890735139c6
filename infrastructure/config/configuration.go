package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port           string   `yaml:"port"`
	DSN            string   `yaml:"dsn"`
	JWTSecret      string   `yaml:"jwtSecret"`
	MaxConnections int      `yaml:"maxConnections"`
	AllowOrigins   []string `yaml:"allowOrigins"`
}

var (
	once    sync.Once
	cfg     ServerConfig
	loadErr error
)

// Load reads config.yaml (optional) and overlays environment variables on
// top. A .env file is honored when present. The result is cached for the
// process lifetime.
func Load() (ServerConfig, error) {
	once.Do(func() {
		_ = godotenv.Load()

		cfg = ServerConfig{
			Port:           "8080",
			MaxConnections: 10,
			AllowOrigins:   []string{"http://localhost:3000", "http://localhost:8080"},
		}

		path := os.Getenv("CONFIG_FILE")
		if path == "" {
			path = "config.yaml"
		}
		if raw, err := os.ReadFile(path); err == nil {
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				loadErr = fmt.Errorf("unmarshal yaml: %w", err)
				return
			}
		}

		if loadErr = applyEnvOverrides(&cfg); loadErr != nil {
			return
		}

		if cfg.DSN == "" {
			loadErr = fmt.Errorf("no DSN configured")
			return
		}
		if cfg.JWTSecret == "" {
			loadErr = fmt.Errorf("no JWT secret configured")
			return
		}
	})

	return cfg, loadErr
}

// applyEnvOverrides lets every yaml field be overridden from the
// environment. ALLOW_ORIGINS is a comma separated list.
func applyEnvOverrides(c *ServerConfig) error {
	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("DSN"); v != "" {
		c.DSN = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.JWTSecret = v
	}
	if v := os.Getenv("MAX_CONNECTIONS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid MAX_CONNECTIONS %q", v)
		}
		c.MaxConnections = n
	}
	if v := os.Getenv("ALLOW_ORIGINS"); v != "" {
		origins := make([]string, 0)
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
		c.AllowOrigins = origins
	}
	return nil
}
