package lsaws

import (
	"context"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/basewarphq/cdklocal/lsenv"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const awsConfigTimeout = 10 * time.Second

// Module provides lsenv.Settings, *lsenv.Configurator, lsenv.Environment, aws.Config
// and S3, SQS and DynamoDB clients for the emulator.
var Module = fx.Module("lsaws",
	fx.Provide(
		lsenv.ParseSettings,
		provideConfigurator,
		provideEnvironment,
		provideAWSConfig,
		func(cfg aws.Config, env lsenv.Environment) *s3.Client { return NewS3Client(cfg, env) },
		func(cfg aws.Config, env lsenv.Environment) *sqs.Client { return NewSQSClient(cfg, env) },
		func(cfg aws.Config, env lsenv.Environment) *dynamodb.Client { return NewDynamoDBClient(cfg, env) },
	),
)

type configuratorParams struct {
	fx.In
	Settings lsenv.Settings
	Logger   *zap.Logger `optional:"true"`
}

func provideConfigurator(p configuratorParams) *lsenv.Configurator {
	return lsenv.New(p.Settings, lsenv.WithLogger(p.Logger))
}

// provideEnvironment configures a copy of the process environment.
func provideEnvironment(c *lsenv.Configurator) (lsenv.Environment, error) {
	env := lsenv.FromEnviron(os.Environ())
	if err := c.Configure(env, c.Settings().AllowList); err != nil {
		return nil, err
	}
	return env, nil
}

type awsConfigParams struct {
	fx.In
	Env            lsenv.Environment
	TracerProvider trace.TracerProvider          `optional:"true"`
	Propagator     propagation.TextMapPropagator `optional:"true"`
}

// provideAWSConfig builds the emulator config with a timeout. Tracing is enabled
// when the application provides a TracerProvider.
func provideAWSConfig(p awsConfigParams) (aws.Config, error) {
	ctx, cancel := context.WithTimeout(context.Background(), awsConfigTimeout)
	defer cancel()

	var opts []Option
	if p.TracerProvider != nil {
		opts = append(opts, WithTracing(p.TracerProvider, p.Propagator))
	}
	return NewConfig(ctx, p.Env, opts...)
}
