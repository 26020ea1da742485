package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/nonsonwune/srms/backend"
)

type Config struct {
	Admin   AdminConfig
	Roster  RosterConfig
	Logging LoggingConfig
}

type AdminConfig struct {
	Username  string
	Password  string
	DisplayID string
}

type RosterConfig struct {
	RollMode string
}

type LoggingConfig struct {
	Level      string
	Format     string
	OutputPath string
}

// Load reads an optional .env file and then resolves settings from
// SRMS_* environment variables, an optional srms.yaml and defaults.
// A missing .env file is not an error.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("srms")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("SRMS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the application cannot start with
func (c *Config) Validate() error {
	if c.Admin.Username == "" || c.Admin.Password == "" {
		return errors.New("admin username and password must not be empty")
	}
	if _, err := c.RollMode(); err != nil {
		return err
	}
	return nil
}

// RollMode returns the configured numbering mode for auto-added students
func (c *Config) RollMode() (backend.RollMode, error) {
	return backend.ParseRollMode(strings.ToLower(c.Roster.RollMode))
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.password", "1234")
	v.SetDefault("admin.displayId", "SRMS-ADMIN-001")

	v.SetDefault("roster.rollMode", "last")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.outputPath", "stderr")
}
