package main

import (
	"io"
	"maps"
	"strings"

	"github.com/basewarphq/cdklocal/cmd/internal/envfmt"
	"github.com/basewarphq/cdklocal/lsenv"
)

type EnvCmd struct {
	AllowList string   `name:"allow-list" default:"${allow_list}" help:"Comma separated AWS_* variables to keep. Defaults to AWS_ENVAR_ALLOWLIST."`
	Format    string   `short:"f" enum:"${formats}" default:"export" help:"Output format: ${formats}."`
	EnvFile   []string `name:"env-file" sep:"none" help:"Dotenv file merged over the process environment before configuring. Repeatable."`
}

func (c *EnvCmd) Run(cfgr *lsenv.Configurator, environ processEnv, stdout io.Writer) error {
	env := lsenv.FromEnviron(environ)
	if len(c.EnvFile) > 0 {
		fileEnv, err := envfmt.ReadFiles(c.EnvFile...)
		if err != nil {
			return err
		}
		maps.Copy(env, fileEnv)
	}

	if err := cfgr.Configure(env, c.AllowList); err != nil {
		return err
	}
	return envfmt.Write(stdout, env, envfmt.Format(c.Format))
}

func formatEnum() string {
	names := make([]string, 0, len(envfmt.Formats))
	for _, f := range envfmt.Formats {
		names = append(names, string(f))
	}
	return strings.Join(names, ",")
}
