package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"
)

// YAMLLoader reads flag values from a YAML document. Keys are flag names;
// underscores are accepted in place of hyphens.
//
//	base-url: https://wxcrawl.example.com
//	api_key: ak-123
//	timeout: 30s
func YAMLLoader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && err != io.EOF {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return kong.ResolverFunc(func(kctx *kong.Context, parent *kong.Path, flag *kong.Flag) (any, error) {
		for _, key := range []string{flag.Name, strings.ReplaceAll(flag.Name, "-", "_")} {
			v, ok := values[key]
			if !ok {
				continue
			}
			switch v := v.(type) {
			case nil:
				return nil, nil
			case map[string]any, []any:
				return nil, fmt.Errorf("config key %q: expected a scalar value", key)
			default:
				return fmt.Sprint(v), nil
			}
		}
		return nil, nil
	}), nil
}
