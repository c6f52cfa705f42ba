package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/basewarphq/cdklocal/lsenv"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type App struct {
	Env       EnvCmd       `cmd:"" help:"Print the process environment rewritten for LocalStack."`
	Endpoints EndpointsCmd `cmd:"" help:"Print the default LocalStack endpoint URLs."`
}

// processEnv is the "KEY=value" environment the commands operate on.
type processEnv []string

func newLogger(level zapcore.Level, w io.Writer) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		level,
	)
	return zap.New(core)
}

func main() {
	os.Exit(run(os.Args[1:], os.Environ(), os.Stdout, os.Stderr))
}

func run(args, environ []string, stdout, stderr io.Writer) int {
	settings, err := lsenv.ParseSettingsFrom(lsenv.FromEnviron(environ))
	if err != nil {
		return fail(stderr, err)
	}

	logger := newLogger(settings.LogLevel, stderr)
	defer logger.Sync() //nolint:errcheck

	var app App
	parser, err := kong.New(&app,
		kong.Name("cdklocal"),
		kong.Description("Point AWS SDK and CDK tooling at LocalStack."),
		kong.Writers(stdout, stderr),
		kong.Vars{
			"allow_list": settings.AllowList,
			"formats":    formatEnum(),
		},
		kong.Bind(settings, processEnv(environ)),
		kong.Bind(lsenv.New(settings, lsenv.WithLogger(logger))),
		kong.BindTo(stdout, (*io.Writer)(nil)),
	)
	if err != nil {
		return fail(stderr, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return fail(stderr, err)
	}
	if err := ctx.Run(); err != nil {
		return fail(stderr, err)
	}
	return 0
}

func fail(w io.Writer, err error) int {
	fmt.Fprintf(w, "error: %v\n", err)
	if hint := errors.FlattenHints(err); hint != "" {
		fmt.Fprintf(w, "hint: %s\n", strings.ReplaceAll(hint, "\n", "\nhint: "))
	}
	return 1
}
