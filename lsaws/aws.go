package lsaws

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/basewarphq/cdklocal/lsenv"
	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/contrib/instrumentation/github.com/aws/aws-sdk-go-v2/otelaws"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// DefaultRegion is used when the environment names no region.
const DefaultRegion = "us-east-1"

const (
	sessionToken       = "AWS_SESSION_TOKEN"
	profileEnv         = "AWS_PROFILE"
	configFileEnv      = "AWS_CONFIG_FILE"
	credentialsFileEnv = "AWS_SHARED_CREDENTIALS_FILE"
)

type options struct {
	tracerProvider trace.TracerProvider
	propagator     propagation.TextMapPropagator
}

// Option configures NewConfig.
type Option func(*options)

// WithTracing instruments SDK calls with OpenTelemetry. A nil propagator keeps the otelaws default.
func WithTracing(tp trace.TracerProvider, prop propagation.TextMapPropagator) Option {
	return func(o *options) {
		o.tracerProvider = tp
		o.propagator = prop
	}
}

// Region returns the region named by AWS_REGION or AWS_DEFAULT_REGION, or DefaultRegion.
func Region(env map[string]string) string {
	if r := regionFromEnv(env); r != "" {
		return r
	}
	return DefaultRegion
}

func regionFromEnv(env map[string]string) string {
	for _, key := range []string{"AWS_REGION", "AWS_DEFAULT_REGION"} {
		if r := env[key]; r != "" {
			return r
		}
	}
	return ""
}

// NewConfig builds an aws.Config with static credentials and the base endpoint taken from env.
// env must have been configured by an lsenv.Configurator.
//
// Only env is consulted, never the process environment, so variables that were
// stripped from env cannot reach the SDK. A shared config profile is read only
// when AWS_PROFILE survived in env, and only for its region.
func NewConfig(ctx context.Context, env map[string]string, opts ...Option) (aws.Config, error) {
	if err := requireConfigured(env); err != nil {
		return aws.Config{}, err
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	region, err := resolveRegion(ctx, env)
	if err != nil {
		return aws.Config{}, err
	}

	cfg := aws.Config{
		Region:       region,
		BaseEndpoint: aws.String(env[lsenv.EndpointURL]),
		Credentials: aws.NewCredentialsCache(credentials.NewStaticCredentialsProvider(
			env[lsenv.AccessKeyID], env[lsenv.SecretAccessKey], env[sessionToken],
		)),
	}

	if o.tracerProvider != nil {
		otelOpts := []otelaws.Option{otelaws.WithTracerProvider(o.tracerProvider)}
		if o.propagator != nil {
			otelOpts = append(otelOpts, otelaws.WithTextMapPropagator(o.propagator))
		}
		otelaws.AppendMiddlewares(&cfg.APIOptions, otelOpts...)
	}
	return cfg, nil
}

// resolveRegion prefers the region variables in env, then the region of an
// allow-listed AWS_PROFILE, then DefaultRegion.
func resolveRegion(ctx context.Context, env map[string]string) (string, error) {
	if r := regionFromEnv(env); r != "" {
		return r, nil
	}

	profile := env[profileEnv]
	if profile == "" {
		return DefaultRegion, nil
	}

	sc, err := awsconfig.LoadSharedConfigProfile(ctx, profile, func(o *awsconfig.LoadSharedConfigOptions) {
		if f := env[configFileEnv]; f != "" {
			o.ConfigFiles = []string{f}
		}
		if f := env[credentialsFileEnv]; f != "" {
			o.CredentialsFiles = []string{f}
		}
	})
	if err != nil {
		return "", errors.Wrapf(err, "loading shared config profile %q", profile)
	}
	if sc.Region != "" {
		return sc.Region, nil
	}
	return DefaultRegion, nil
}

func requireConfigured(env map[string]string) error {
	var missing []string
	for _, key := range []string{
		lsenv.AccessKeyID, lsenv.SecretAccessKey, lsenv.EndpointURL, lsenv.EndpointURLS3,
	} {
		if env[key] == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return errors.WithHint(
			errors.Newf("environment is not configured for the emulator, missing %s", strings.Join(missing, ", ")),
			"run lsenv.Configurator.Configure on the environment first")
	}
	return nil
}
