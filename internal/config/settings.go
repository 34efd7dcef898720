package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Settings holds the start-up configuration of the desktop application.
// Values come from the environment (optionally seeded by a .env file) and
// may later be overridden by CLI flags or stored preferences.
type Settings struct {
	Language string `validate:"required,oneof=en fa"`
	Port     string `validate:"required,numeric,max=5"`
	Layout   string
}

var settingsValidator = validator.New()

// LoadSettings reads the given env files (missing files are ignored) and
// builds validated Settings from the process environment.
func LoadSettings(files ...string) (Settings, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				slog.Debug(MsgEnvMissing, LogKeyComponent, CompConfig, LogKeyFile, f)
				continue
			}
			return Settings{}, fmt.Errorf("%s: %w", ErrEnvLoad, err)
		}
	}

	s := Settings{
		Language: envOr(EnvLanguage, DefaultLanguage),
		Port:     envOr(EnvPort, DefaultPort),
		Layout:   os.Getenv(EnvLayout),
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks the settings against their struct tags.
func (s Settings) Validate() error {
	if err := settingsValidator.Struct(s); err != nil {
		return fmt.Errorf("%s: %w", ErrSettings, err)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
