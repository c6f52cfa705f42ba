package lsenv

import (
	"slices"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Well-known environment variables read or written by the Configurator.
const (
	AccessKeyID     = "AWS_ACCESS_KEY_ID"
	SecretAccessKey = "AWS_SECRET_ACCESS_KEY"
	EndpointURL     = "AWS_ENDPOINT_URL"
	EndpointURLS3   = "AWS_ENDPOINT_URL_S3"
)

const (
	awsPrefix         = "AWS_"
	defaultCredential = "test"
	endpointURLPrefix = EndpointURL
)

// Environment is a set of environment variables keyed by name.
type Environment map[string]string

// MisconfigurationError reports an environment that cannot be pointed at the emulator safely.
type MisconfigurationError struct {
	Message string
}

func (e *MisconfigurationError) Error() string {
	return e.Message
}

// IsMisconfiguration reports whether err is or wraps a MisconfigurationError.
func IsMisconfiguration(err error) bool {
	var mErr *MisconfigurationError
	return errors.As(err, &mErr)
}

type options struct {
	logger *zap.Logger
}

// Option configures a Configurator.
type Option func(*options)

// WithLogger sets the logger used to report stripped and defaulted variables.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Configurator rewrites environments for the emulator described by its Settings.
type Configurator struct {
	settings Settings
	logger   *zap.Logger
}

// New creates a Configurator for the given settings.
func New(settings Settings, opts ...Option) *Configurator {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	return &Configurator{settings: settings, logger: o.logger}
}

// Settings returns the settings the Configurator was created with.
func (c *Configurator) Settings() Settings {
	return c.settings
}

// Configure rewrites env in place. AWS_* variables that are neither endpoint URLs
// nor listed in allowList are removed, then credentials and endpoint URLs are
// defaulted. allowList is a comma separated list of variable names.
//
// If env sets AWS_ENDPOINT_URL but not AWS_ENDPOINT_URL_S3 a *MisconfigurationError
// is returned and env is left untouched.
func (c *Configurator) Configure(env map[string]string, allowList string) error {
	if env == nil {
		return errors.New("lsenv: environment must not be nil")
	}

	_, hasEndpoint := env[EndpointURL]
	_, hasS3Endpoint := env[EndpointURLS3]
	if hasEndpoint && !hasS3Endpoint {
		return errors.WithHintf(
			&MisconfigurationError{
				Message: "If specifying '" + EndpointURL + "' then '" + EndpointURLS3 + "' must be specified",
			},
			"set %s to an S3 endpoint that supports virtual-host style subdomains", EndpointURLS3)
	}

	allowed := ParseAllowList(allowList)

	var stripped []string
	for key := range env {
		if isStripped(key, allowed) {
			stripped = append(stripped, key)
		}
	}
	sort.Strings(stripped)
	for _, key := range stripped {
		delete(env, key)
	}
	if len(stripped) > 0 {
		c.logger.Debug("stripped AWS configuration variables", zap.Strings("keys", stripped))
	}

	c.setDefault(env, AccessKeyID, defaultCredential)
	c.setDefault(env, SecretAccessKey, defaultCredential)
	c.setDefault(env, EndpointURLS3, c.settings.S3EndpointURL())
	c.setDefault(env, EndpointURL, c.settings.EndpointURL())
	return nil
}

func (c *Configurator) setDefault(env map[string]string, key, value string) {
	if env[key] != "" {
		return
	}
	env[key] = value
	c.logger.Debug("defaulted environment variable", zap.String("key", key), zap.String("value", value))
}

func isStripped(key string, allowed []string) bool {
	if !strings.HasPrefix(key, awsPrefix) {
		return false
	}
	if strings.HasPrefix(key, endpointURLPrefix) {
		return false
	}
	return !slices.Contains(allowed, key)
}

// ParseAllowList splits a comma separated allow-list and trims every entry.
// Empty entries are kept, so "" yields a single empty entry.
func ParseAllowList(raw string) []string {
	parts := strings.Split(raw, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// Configure rewrites env using DefaultSettings.
func Configure(env map[string]string, allowList string) error {
	return New(DefaultSettings()).Configure(env, allowList)
}
