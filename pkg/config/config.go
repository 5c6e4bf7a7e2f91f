package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Provider names accepted by LLM_PROVIDER and TRANSCRIPTION_PROVIDER.
const (
	ProviderOpenAI     = "openai"
	ProviderGroq       = "groq"
	ProviderGemini     = "gemini"
	ProviderWhisper    = "whisper"
	ProviderAssemblyAI = "assemblyai"

	DraftStoreRedis  = "redis"
	DraftStoreMemory = "memory"
)

// Config holds application configuration
type Config struct {
	Server        ServerConfig        `envconfig:"SERVER"`
	Database      DatabaseConfig      `envconfig:"DB"`
	Redis         RedisConfig         `envconfig:"REDIS"`
	Storage       StorageConfig       `envconfig:"MINIO"`
	LLM           LLMConfig           `envconfig:"LLM"`
	Transcription TranscriptionConfig `envconfig:"TRANSCRIPTION"`
	Auth          AuthConfig          `envconfig:"AUTH"`
	Scoring       ScoringConfig       `envconfig:"SCORING"`
	Draft         DraftConfig         `envconfig:"DRAFT"`
	Log           LogConfig           `envconfig:"LOG"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string      `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"15s"`
	MaxAudioBytes   int64         `envconfig:"MAX_AUDIO_BYTES" default:"26214400"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `envconfig:"HOST" default:"localhost"`
	Port            string        `envconfig:"PORT" default:"5432"`
	User            string        `envconfig:"USER" default:"postgres"`
	Password        string        `envconfig:"PASSWORD" default:"postgres"`
	Name            string        `envconfig:"NAME" default:"candidate_screening"`
	SSLMode         string        `envconfig:"SSLMODE" default:"disable"`
	MaxConns        int           `envconfig:"MAX_CONNS" default:"25"`
	MinConns        int           `envconfig:"MIN_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"1h"`
	AutoMigrate     bool          `envconfig:"AUTO_MIGRATE" default:"true"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"6379"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0"`
}

// StorageConfig holds object storage configuration
type StorageConfig struct {
	Endpoint        string        `envconfig:"ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string        `envconfig:"ACCESS_KEY" default:"minioadmin"`
	SecretAccessKey string        `envconfig:"SECRET_KEY" default:"minioadmin"`
	BucketName      string        `envconfig:"BUCKET" default:"candidate-audio"`
	UseSSL          bool          `envconfig:"USE_SSL" default:"false"`
	PublicURL       string        `envconfig:"PUBLIC_URL"`
	PresignExpiry   time.Duration `envconfig:"PRESIGN_EXPIRY" default:"1h"`
}

// LLMConfig selects and configures the text-generation backend.
type LLMConfig struct {
	Provider    string        `envconfig:"PROVIDER" default:"openai"`
	APIKey      string        `envconfig:"API_KEY"`
	BaseURL     string        `envconfig:"BASE_URL"`
	Model       string        `envconfig:"MODEL"`
	Temperature float32       `envconfig:"TEMPERATURE" default:"0.7"`
	MaxTokens   int           `envconfig:"MAX_TOKENS" default:"2048"`
	Timeout     time.Duration `envconfig:"TIMEOUT" default:"60s"`
}

// TranscriptionConfig selects and configures the speech-to-text backend.
type TranscriptionConfig struct {
	Provider string        `envconfig:"PROVIDER" default:"whisper"`
	APIKey   string        `envconfig:"API_KEY"`
	BaseURL  string        `envconfig:"BASE_URL"`
	Model    string        `envconfig:"MODEL" default:"whisper-1"`
	Timeout  time.Duration `envconfig:"TIMEOUT" default:"120s"`
}

// AuthConfig holds admin token verification settings
type AuthConfig struct {
	JWTSecret  string   `envconfig:"JWT_SECRET"`
	Issuer     string   `envconfig:"ISSUER"`
	AdminRoles []string `envconfig:"ADMIN_ROLES" default:"admin"`
	Disabled   bool     `envconfig:"DISABLED" default:"false"`
}

// ScoringConfig bounds background scoring work
type ScoringConfig struct {
	Workers int           `envconfig:"WORKERS" default:"4"`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"2m"`
}

// DraftConfig holds form draft storage settings
type DraftConfig struct {
	Store string        `envconfig:"STORE" default:"redis"`
	TTL   time.Duration `envconfig:"TTL" default:"168h"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Format string `envconfig:"FORMAT" default:"json"`
	Level  string `envconfig:"LEVEL" default:"info"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	return FromEnv()
}

// FromEnv reads the process environment without touching .env files.
func FromEnv() (*Config, error) {
	config := &Config{}
	if err := envconfig.Process("", config); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	config.LLM.Provider = strings.ToLower(strings.TrimSpace(config.LLM.Provider))
	config.Transcription.Provider = strings.ToLower(strings.TrimSpace(config.Transcription.Provider))
	config.Draft.Store = strings.ToLower(strings.TrimSpace(config.Draft.Store))

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case ProviderOpenAI, ProviderGroq, ProviderGemini:
	default:
		return fmt.Errorf("LLM_PROVIDER must be one of openai, groq, gemini, got %q", c.LLM.Provider)
	}
	if c.LLM.APIKey == "" {
		return fmt.Errorf("LLM_API_KEY is required")
	}

	switch c.Transcription.Provider {
	case ProviderWhisper, ProviderAssemblyAI:
	default:
		return fmt.Errorf("TRANSCRIPTION_PROVIDER must be whisper or assemblyai, got %q", c.Transcription.Provider)
	}
	if c.TranscriptionAPIKey() == "" {
		return fmt.Errorf("TRANSCRIPTION_API_KEY is required")
	}

	switch c.Draft.Store {
	case DraftStoreRedis, DraftStoreMemory:
	default:
		return fmt.Errorf("DRAFT_STORE must be redis or memory, got %q", c.Draft.Store)
	}

	if !c.Auth.Disabled && c.Auth.JWTSecret == "" {
		return fmt.Errorf("AUTH_JWT_SECRET is required unless AUTH_DISABLED=true")
	}
	if c.Scoring.Workers < 1 {
		return fmt.Errorf("SCORING_WORKERS must be at least 1")
	}
	return nil
}

// TranscriptionAPIKey falls back to the LLM key when whisper shares the OpenAI account.
func (c *Config) TranscriptionAPIKey() string {
	if c.Transcription.APIKey != "" {
		return c.Transcription.APIKey
	}
	if c.Transcription.Provider == ProviderWhisper && c.LLM.Provider == ProviderOpenAI {
		return c.LLM.APIKey
	}
	return ""
}

// IsProduction reports whether the server runs with production settings.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Environment, "production")
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}
