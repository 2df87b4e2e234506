// Package config loads the purepath CLI configuration. Settings merge in
// layers: embedded defaults, then the user config file under the XDG
// config directory, then PUREPATH_* environment variables.
package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/purepath/pkg/flavor"
	"github.com/arthur-debert/purepath/pkg/patherrors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvPrefix is the prefix for environment overrides, e.g.
// PUREPATH_FLAVOR=windows.
const EnvPrefix = "PUREPATH_"

// ConfigFileName is the user config file looked up under the XDG config
// directory.
const ConfigFileName = "config.toml"

// Config holds the CLI settings.
type Config struct {
	// Flavor names the ruleset to parse under: "posix", "windows", or
	// "native" to follow the host platform.
	Flavor string

	// Locale is the BCP 47 tag used for case folding; empty selects the
	// locale-neutral rules.
	Locale string

	// Output selects the command output format: "text" or "json".
	Output string
}

// Load merges defaults, the user config file, and environment overrides.
func Load() (*Config, error) {
	return load(filepath.Join(xdg.ConfigHome, "purepath", ConfigFileName))
}

// load is the path-injectable body of Load, used directly by tests.
func load(userConfigPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, patherrors.Wrap(err, patherrors.ErrConfigLoad, "failed to load defaults")
	}

	if _, err := os.Stat(userConfigPath); err == nil {
		if err := k.Load(file.Provider(userConfigPath), toml.Parser()); err != nil {
			return nil, patherrors.Wrapf(err, patherrors.ErrConfigLoad,
				"failed to load config from %s", userConfigPath)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, patherrors.Wrap(err, patherrors.ErrConfigLoad, "failed to load env vars")
	}

	cfg := &Config{
		Flavor: k.String("flavor"),
		Locale: k.String("locale"),
		Output: k.String("output"),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Flavor != "native" {
		if _, ok := flavor.ByName(c.Flavor); !ok {
			return patherrors.Newf(patherrors.ErrConfigValid, "unknown flavor %q", c.Flavor)
		}
	}
	if c.Output != "text" && c.Output != "json" {
		return patherrors.Newf(patherrors.ErrConfigValid, "unknown output format %q", c.Output)
	}
	return nil
}

// ResolveFlavor maps the configured flavor name to a ruleset, resolving
// "native" against the host platform.
func (c *Config) ResolveFlavor() flavor.Flavor {
	name := c.Flavor
	if name == "native" {
		name = runtime.GOOS
		if name != "windows" {
			name = "posix"
		}
	}
	fl, ok := flavor.ByName(name)
	if !ok {
		return flavor.Posix()
	}
	return fl
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}
