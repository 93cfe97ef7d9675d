package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var (
	ErrMissingEnvironmentVariables = errors.New("missing required environment variables")
	ErrInvalidConfig               = errors.New("invalid configuration")
)

const (
	ProviderOllama = "ollama"
	ProviderGemini = "gemini"

	DefaultOllamaModel = "mistral"
	DefaultGeminiModel = "gemini-2.5-flash"

	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env       string    `mapstructure:"env"`       // current application environment (local, dev, production etc)
	LogLevel  string    `mapstructure:"log_level"` // zap level name
	Generator Generator `mapstructure:"generator"` // question generation backend
	Board     Board     `mapstructure:"board"`     // board shape
	Game      Game      `mapstructure:"game"`      // console game pacing
	Results   Results   `mapstructure:"results"`   // where finished games are recorded
	DB        DB        `mapstructure:"database"`  // database configuration section
}

// Generator configures the text generation service.
type Generator struct {
	Provider string        `mapstructure:"provider"` // ollama or gemini
	Model    string        `mapstructure:"model"`    // model name passed to the provider
	URL      string        `mapstructure:"url"`      // ollama generate endpoint
	Timeout  time.Duration `mapstructure:"timeout"`  // per request timeout
	Delay    time.Duration `mapstructure:"delay"`    // pause between two generation calls
	APIKey   string        `mapstructure:"-"`        // gemini API key loaded from environment
}

// Board contains the fixed topics and point values.
type Board struct {
	Topics []string `mapstructure:"topics"`
	Points []int    `mapstructure:"points"`
}

// Game contains presentation settings of the console loop.
type Game struct {
	RevealPause time.Duration `mapstructure:"reveal_pause"` // pause after an answer is judged
	BestScores  int           `mapstructure:"best_scores"`  // number of best scores shown at the end, 0 disables
}

// Results selects the game result store.
type Results struct {
	Backend    string `mapstructure:"backend"`     // memory, postgres or sqlite
	SQLitePath string `mapstructure:"sqlite_path"` // database file for the sqlite backend
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	return load("./config")
}

func load(paths ...string) (*Config, error) {
	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	setDefaults(v)

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("gemini_api_key", "GEMINI_API_KEY")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.Generator.APIKey = v.GetString("gemini_api_key")
	cfg.DB.URL = v.GetString("database_url")

	if cfg.Generator.Model == "" {
		cfg.Generator.Model = defaultModel(cfg.Generator.Provider)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "local")
	v.SetDefault("log_level", "warn")
	v.SetDefault("generator.provider", ProviderOllama)
	v.SetDefault("generator.model", "")
	v.SetDefault("generator.url", "http://localhost:11434/api/generate")
	v.SetDefault("generator.timeout", "60s")
	v.SetDefault("generator.delay", "500ms")
	v.SetDefault("board.topics", []string{"Science", "History", "Geography", "Arts", "Sports"})
	v.SetDefault("board.points", []int{100, 200, 300, 400, 500})
	v.SetDefault("game.reveal_pause", "2s")
	v.SetDefault("game.best_scores", 5)
	v.SetDefault("results.backend", BackendMemory)
	v.SetDefault("results.sqlite_path", "data/jeopardy.db")
	v.SetDefault("database.max_connections", 4)
	v.SetDefault("database.max_conn_lifetime", "30m")
}

func defaultModel(provider string) string {
	if provider == ProviderGemini {
		return DefaultGeminiModel
	}
	return DefaultOllamaModel
}

// Validate checks that the configuration describes a playable game.
func (c *Config) Validate() error {
	switch c.Generator.Provider {
	case ProviderOllama:
	case ProviderGemini:
		if c.Generator.APIKey == "" {
			return ErrMissingEnvironmentVariables
		}
	default:
		return fmt.Errorf("%w: unknown generator provider %q", ErrInvalidConfig, c.Generator.Provider)
	}

	if len(c.Board.Topics) == 0 || len(c.Board.Points) == 0 {
		return fmt.Errorf("%w: board needs at least one topic and one point value", ErrInvalidConfig)
	}

	topics := make(map[string]bool, len(c.Board.Topics))
	for _, t := range c.Board.Topics {
		if strings.TrimSpace(t) == "" {
			return fmt.Errorf("%w: empty topic", ErrInvalidConfig)
		}
		key := strings.ToLower(t)
		if topics[key] {
			return fmt.Errorf("%w: duplicate topic %q", ErrInvalidConfig, t)
		}
		topics[key] = true
	}

	points := make(map[int]bool, len(c.Board.Points))
	for _, p := range c.Board.Points {
		if p <= 0 {
			return fmt.Errorf("%w: point value %d must be positive", ErrInvalidConfig, p)
		}
		if points[p] {
			return fmt.Errorf("%w: duplicate point value %d", ErrInvalidConfig, p)
		}
		points[p] = true
	}

	switch c.Results.Backend {
	case BackendMemory:
	case BackendSQLite:
		if c.Results.SQLitePath == "" {
			return fmt.Errorf("%w: sqlite backend needs results.sqlite_path", ErrInvalidConfig)
		}
	case BackendPostgres:
		if _, err := c.DB.DSN(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: unknown results backend %q", ErrInvalidConfig, c.Results.Backend)
	}

	return nil
}
