package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Settings is the process configuration read from the environment.
type Settings struct {
	Token           string        `env:"ARTIFACTS_TOKEN,required,notEmpty"`
	BaseURL         string        `env:"ARTIFACTS_BASE_URL" envDefault:"https://api.artifactsmmo.com"`
	ConfigPath      string        `env:"ARTIFACTS_CONFIG" envDefault:"config.yaml"`
	OpsAddr         string        `env:"ARTIFACTS_OPS_ADDR"`
	DBDSN           string        `env:"ARTIFACTS_DB_DSN"`
	RequestTimeout  time.Duration `env:"ARTIFACTS_REQUEST_TIMEOUT" envDefault:"30s"`
	CooldownBackoff time.Duration `env:"ARTIFACTS_COOLDOWN_BACKOFF" envDefault:"5s"`
	LogLevel        string        `env:"ARTIFACTS_LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"ARTIFACTS_LOG_FORMAT" envDefault:"text"`
	OTelEndpoint    string        `env:"ARTIFACTS_OTEL_ENDPOINT"`
	OTelEnabled     bool          `env:"ARTIFACTS_OTEL_ENABLED" envDefault:"true"`
}

// LoadSettings reads the optional dotenv files (".env" when none are given)
// and then the environment. Variables already set take precedence over the
// files.
func LoadSettings(dotenvFiles ...string) (Settings, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	var s Settings
	if err := ParseEnv(&s); err != nil {
		return Settings{}, err
	}
	return s, nil
}
