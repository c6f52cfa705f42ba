// Package lsenv rewrites a process environment so that AWS SDK and CDK tooling
// talks to a LocalStack emulator instead of real AWS endpoints.
//
// # Overview
//
// A [Configurator] strips AWS configuration variables that were not explicitly
// allow-listed and fills in the credentials and endpoint URLs the emulator expects:
//
//	env := lsenv.FromEnviron(os.Environ())
//	if err := lsenv.New(settings).Configure(env, settings.AllowList); err != nil {
//	    return err
//	}
//
// After a successful call the map always contains:
//
//	| Variable              | Default                                           |
//	|-----------------------|---------------------------------------------------|
//	| AWS_ACCESS_KEY_ID     | test                                              |
//	| AWS_SECRET_ACCESS_KEY | test                                              |
//	| AWS_ENDPOINT_URL      | {protocol}://localhost.localstack.cloud:{port}    |
//	| AWS_ENDPOINT_URL_S3   | {protocol}://s3.localhost.localstack.cloud:{port} |
//
// Existing non-empty values win over the defaults. Every AWS_ENDPOINT_URL* variable
// is kept as is.
//
// # Settings
//
// [Settings] are parsed once from the process environment:
//
//	| Variable            | Default | Description                                  |
//	|---------------------|---------|----------------------------------------------|
//	| EDGE_PORT           | 4566    | Port the emulator exposes all services on    |
//	| USE_SSL             | -       | "1" or "true" switches endpoints to https    |
//	| AWS_ENVAR_ALLOWLIST | -       | Comma separated AWS_* variables to keep      |
//	| LOG_LEVEL           | info    | Log level (debug, info, warn, error)         |
//
// # Endpoint consistency
//
// Setting AWS_ENDPOINT_URL without AWS_ENDPOINT_URL_S3 is rejected with a
// [MisconfigurationError]. S3 on the emulator relies on virtual-host style
// subdomains, which cannot be derived from an arbitrary custom endpoint.
package lsenv
