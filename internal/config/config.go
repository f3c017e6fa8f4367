package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"paper-analyzer/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort     string   `yaml:"server_port"`
	LogLevel       string   `yaml:"log_level"`
	RedisAddr      string   `yaml:"redis_addr"`
	RedisPassword  string   `yaml:"redis_password"`
	RedisDB        int      `yaml:"redis_db"`
	PDFEngine      string   `yaml:"pdf_engine"`
	SessionsDir    string   `yaml:"sessions_dir"`
	MaxFileSize    int64    `yaml:"max_file_size"`
	WorkerMode     string   `yaml:"worker_mode"`
	WorkerImage    string   `yaml:"worker_image"`
	UnpaywallEmail string   `yaml:"unpaywall_email"`
	SupabaseURL    string   `yaml:"supabase_url"`
	SupabaseKey    string   `yaml:"supabase_key"`
	SupabaseBucket string   `yaml:"supabase_bucket"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Worker modes
const (
	WorkerModeInProcess = "inprocess"
	WorkerModeDocker    = "docker"
)

// NewConfig creates a new configuration instance from the environment and default values
func NewConfig() domain.Config {
	cfg := defaultConfig()
	applyEnv(cfg)
	return cfg
}

// Load reads a YAML config file and overlays the environment on top of it.
// An empty path or a missing file yields the environment-only configuration.
func Load(path string) (*AppConfig, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, err
		}
	}
	applyEnv(cfg)
	return cfg, nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		ServerPort:     "8080",
		LogLevel:       "info",
		RedisAddr:      "redis:6379",
		PDFEngine:      string(domain.PDFEngineFitz),
		SessionsDir:    "./sessions",
		MaxFileSize:    10 << 20, // 10MB default
		WorkerMode:     WorkerModeInProcess,
		WorkerImage:    "paper-processor:latest",
		UnpaywallEmail: "tester@ressist.com",
		SupabaseBucket: "papers",
		AllowedOrigins: []string{"http://localhost:5173"},
	}
}

func applyEnv(c *AppConfig) {
	// Cloud Run (and many PaaS) provide the listening port via PORT.
	// Keep SERVER_PORT for local/dev compatibility.
	c.ServerPort = getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", c.ServerPort))
	c.LogLevel = getEnvOrDefault("LOG_LEVEL", c.LogLevel)
	c.RedisAddr = getEnvOrDefault("REDIS_ADDR", c.RedisAddr)
	c.RedisPassword = getEnvOrDefault("REDIS_PASSWORD", c.RedisPassword)
	c.RedisDB = int(getEnvInt64OrDefault("REDIS_DB", int64(c.RedisDB)))
	c.PDFEngine = strings.ToLower(getEnvOrDefault("PDF_ENGINE", c.PDFEngine))
	c.SessionsDir = getEnvOrDefault("SESSIONS_DIR", c.SessionsDir)
	c.MaxFileSize = getEnvInt64OrDefault("MAX_FILE_SIZE", c.MaxFileSize)
	c.WorkerMode = strings.ToLower(getEnvOrDefault("WORKER_MODE", c.WorkerMode))
	c.WorkerImage = getEnvOrDefault("WORKER_IMAGE", c.WorkerImage)
	c.UnpaywallEmail = getEnvOrDefault("UNPAYWALL_EMAIL", c.UnpaywallEmail)
	c.SupabaseURL = getEnvOrDefault("SUPABASE_URL", c.SupabaseURL)
	c.SupabaseKey = getEnvOrDefault("SUPABASE_ANON_KEY", c.SupabaseKey)
	c.SupabaseBucket = getEnvOrDefault("SUPABASE_BUCKET", c.SupabaseBucket)
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		c.AllowedOrigins = splitList(origins)
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetRedisAddr returns the host:port of the summary store
func (c *AppConfig) GetRedisAddr() string {
	return c.RedisAddr
}

// GetRedisPassword returns the summary store password, empty for none
func (c *AppConfig) GetRedisPassword() string {
	return c.RedisPassword
}

// GetRedisDB returns the logical Redis database index
func (c *AppConfig) GetRedisDB() int {
	return c.RedisDB
}

// GetPDFEngine returns the text extraction backend name
func (c *AppConfig) GetPDFEngine() string {
	return c.PDFEngine
}

// GetSessionsDir returns the root directory for per-session files
func (c *AppConfig) GetSessionsDir() string {
	return c.SessionsDir
}

// GetMaxFileSize returns the maximum allowed upload size
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetWorkerMode returns how analyses are launched
func (c *AppConfig) GetWorkerMode() string {
	return c.WorkerMode
}

// GetWorkerImage returns the container image used in docker mode
func (c *AppConfig) GetWorkerImage() string {
	return c.WorkerImage
}

// GetUnpaywallEmail returns the contact address sent to Unpaywall
func (c *AppConfig) GetUnpaywallEmail() string {
	return c.UnpaywallEmail
}

// GetSupabaseURL returns the Supabase URL
func (c *AppConfig) GetSupabaseURL() string {
	return c.SupabaseURL
}

// GetSupabaseKey returns the Supabase anon key
func (c *AppConfig) GetSupabaseKey() string {
	return c.SupabaseKey
}

// GetSupabaseBucket returns the storage bucket for archived PDFs
func (c *AppConfig) GetSupabaseBucket() string {
	return c.SupabaseBucket
}

// GetAllowedOrigins returns the CORS origin allow-list
func (c *AppConfig) GetAllowedOrigins() []string {
	return c.AllowedOrigins
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
