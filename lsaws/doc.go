// Package lsaws builds AWS SDK v2 configuration, service clients and CDK
// environments that target a LocalStack emulator.
//
// It consumes an environment that was rewritten by [lsenv.Configurator], so the
// endpoint URLs and credentials it needs are always present:
//
//	env := lsenv.FromEnviron(os.Environ())
//	if err := lsenv.New(settings).Configure(env, settings.AllowList); err != nil {
//	    return err
//	}
//	cfg, err := lsaws.NewConfig(ctx, env)
//	if err != nil {
//	    return err
//	}
//	bucket := lsaws.NewS3Client(cfg, env)
//
// [NewConfig] reads only the map it is given. Variables stripped by the
// configurator, such as a process-wide AWS_PROFILE, never reach the SDK. An
// allow-listed AWS_PROFILE is consulted for its region only.
//
// S3 clients use AWS_ENDPOINT_URL_S3 so bucket names resolve as virtual-host
// subdomains of the emulator. Other clients use AWS_ENDPOINT_URL unless a
// service-specific AWS_ENDPOINT_URL_<SERVICE> variable is set.
//
// # Dependency Injection
//
// [Module] wires everything with [go.uber.org/fx]: settings are parsed from the
// process environment, the environment is configured and exposed as
// [lsenv.Environment], and aws.Config plus the S3, SQS and DynamoDB clients are
// provided. A *zap.Logger, trace.TracerProvider and propagation.TextMapPropagator
// are picked up when the application provides them.
package lsaws
