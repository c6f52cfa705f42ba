// Package envfmt renders an environment for consumption by shells and tools.
package envfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"strings"

	"github.com/basewarphq/cdklocal/lsenv"
	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
)

type Format string

const (
	Export Format = "export"
	Dotenv Format = "dotenv"
	JSON   Format = "json"
)

// Formats lists the supported formats in the order they are documented.
var Formats = []Format{Export, Dotenv, JSON}

// Write renders env to w, sorted by key.
func Write(w io.Writer, env map[string]string, f Format) error {
	switch f {
	case Export:
		for _, k := range lsenv.SortedKeys(env) {
			if _, err := fmt.Fprintf(w, "export %s=%s\n", k, shellQuote(env[k])); err != nil {
				return errors.Wrap(err, "writing export line")
			}
		}
		return nil
	case Dotenv:
		for _, k := range lsenv.SortedKeys(env) {
			if _, err := fmt.Fprintf(w, "%s=\"%s\"\n", k, dotenvEscape(env[k])); err != nil {
				return errors.Wrap(err, "writing dotenv line")
			}
		}
		return nil
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(env), "encoding json")
	default:
		return errors.Newf("unknown format %q", f)
	}
}

// ReadFiles loads and merges dotenv files, later files winning.
func ReadFiles(paths ...string) (map[string]string, error) {
	merged := map[string]string{}
	for _, p := range paths {
		vals, err := godotenv.Read(p)
		if err != nil {
			return nil, errors.Wrapf(err, "reading env file %q", p)
		}
		maps.Copy(merged, vals)
	}
	return merged, nil
}

// dotenvEscape escapes a value for a double-quoted dotenv entry the way godotenv
// reads it back. Every value is quoted, so numeric-looking values keep leading zeros.
var dotenvEscaper = strings.NewReplacer(
	`\`, `\\`,
	"\n", `\n`,
	"\r", `\r`,
	`"`, `\"`,
	"!", `\!`,
	"$", `\$`,
	"`", "\\`",
)

func dotenvEscape(s string) string {
	return dotenvEscaper.Replace(s)
}

// shellQuote wraps s in single quotes for POSIX shells.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
