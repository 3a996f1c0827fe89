package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"influence-nexus/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	HTTP configs.HTTP   `envPrefix:"HTTP_"`
	Log  configs.Logger `envPrefix:"LOG_"`

	// Psql is only used when Store.Driver is postgres.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	Store    configs.Store    `envPrefix:"STORE_"`
	Supabase configs.Supabase `envPrefix:"SUPABASE_"`
	OpenAI   configs.OpenAI   `envPrefix:"OPENAI_"`
}

// Load reads an optional dotenv file (ENV_FILE, default .env) and then the
// environment into a Config. Variables already set in the environment win
// over the file.
func Load() (Config, error) {
	var cfg Config
	if err := loadDotenv(); err != nil {
		return cfg, err
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks cross-section requirements.
func (c *Config) Validate() error {
	if err := c.Store.Validate(); err != nil {
		return err
	}
	if c.Supabase.URL == "" {
		return errors.New("SUPABASE_URL is required")
	}
	if c.Supabase.AnonKey == "" {
		return errors.New("SUPABASE_ANON_KEY is required")
	}
	if c.Store.Driver == configs.StoreDriverSupabase && c.Supabase.ServiceKey == "" {
		return errors.New("SUPABASE_SERVICE_KEY is required with STORE_DRIVER=supabase")
	}
	return nil
}

func loadDotenv() error {
	path := os.Getenv("ENV_FILE")
	explicit := path != ""
	if !explicit {
		path = ".env"
	}
	err := godotenv.Load(path)
	if err == nil || (!explicit && errors.Is(err, fs.ErrNotExist)) {
		return nil
	}
	return fmt.Errorf("load %s: %w", path, err)
}
