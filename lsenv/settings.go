package lsenv

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap/zapcore"
)

// DefaultEdgePort is the port LocalStack exposes all emulated services on.
const DefaultEdgePort = 4566

const (
	edgeHost = "localhost.localstack.cloud"
	s3Host   = "s3." + edgeHost
)

// Flag is a boolean environment setting that is only true for the exact values "1" and "true".
// Anything else, including "TRUE" or "yes", reads as false.
type Flag bool

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Flag) UnmarshalText(text []byte) error {
	switch string(text) {
	case "1", "true":
		*f = true
	default:
		*f = false
	}
	return nil
}

// Settings holds the process-wide emulator settings.
type Settings struct {
	EdgePort  int           `env:"EDGE_PORT" envDefault:"4566" validate:"min=1,max=65535"`
	UseSSL    Flag          `env:"USE_SSL"`
	AllowList string        `env:"AWS_ENVAR_ALLOWLIST"`
	LogLevel  zapcore.Level `env:"LOG_LEVEL" envDefault:"info"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		EdgePort: DefaultEdgePort,
		LogLevel: zapcore.InfoLevel,
	}
}

// Protocol returns the URL scheme of the emulator endpoints.
func (s Settings) Protocol() string {
	if s.UseSSL {
		return "https"
	}
	return "http"
}

// EndpointURL returns the default generic emulator endpoint.
func (s Settings) EndpointURL() string {
	return fmt.Sprintf("%s://%s:%d", s.Protocol(), edgeHost, s.EdgePort)
}

// S3EndpointURL returns the default S3 emulator endpoint.
func (s Settings) S3EndpointURL() string {
	return fmt.Sprintf("%s://%s:%d", s.Protocol(), s3Host, s.EdgePort)
}

// ParseSettings parses Settings from the process environment.
func ParseSettings() (Settings, error) {
	s, err := env.ParseAs[Settings]()
	if err != nil {
		return s, errors.Wrap(err, "failed to parse environment")
	}
	return s, validateSettings(s)
}

// ParseSettingsFrom parses Settings from the given environment instead of the process environment.
func ParseSettingsFrom(environ map[string]string) (Settings, error) {
	s, err := env.ParseAsWithOptions[Settings](env.Options{Environment: environ})
	if err != nil {
		return s, errors.Wrap(err, "failed to parse environment")
	}
	return s, validateSettings(s)
}

func validateSettings(s Settings) error {
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := validate.Struct(s); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			msgs := make([]string, 0, len(validationErrs))
			for _, e := range validationErrs {
				msgs = append(msgs, formatValidationError(e))
			}
			return errors.Errorf("settings validation errors:\n  - %s", strings.Join(msgs, "\n  - "))
		}
		return errors.Wrap(err, "settings validation failed")
	}
	return nil
}

func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "min":
		return fmt.Sprintf("%s must be at least %s (got %v)", e.Field(), e.Param(), e.Value())
	case "max":
		return fmt.Sprintf("%s must be at most %s (got %v)", e.Field(), e.Param(), e.Value())
	default:
		return fmt.Sprintf("%s failed validation %q", e.Field(), e.Tag())
	}
}
