package lsenv

import (
	"sort"
	"strings"
)

// FromEnviron converts "KEY=value" entries, as returned by os.Environ, into an Environment.
// Entries without a name are skipped. Later duplicates win.
func FromEnviron(environ []string) Environment {
	env := make(Environment, len(environ))
	for _, kv := range environ {
		key, value, _ := strings.Cut(kv, "=")
		if key == "" {
			continue
		}
		env[key] = value
	}
	return env
}

// Environ returns env as "KEY=value" entries sorted by key.
func Environ(env map[string]string) []string {
	keys := SortedKeys(env)
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+"="+env[k])
	}
	return out
}

// SortedKeys returns the keys of env in lexical order.
func SortedKeys(env map[string]string) []string {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
