package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// LoadInspector loads the analyze-excel configuration.
// Precedence (highest to lowest): flags > env vars > config file > defaults
func LoadInspector(cfgFile string, flags *pflag.FlagSet) (*Inspector, error) {
	var cfg Inspector
	if err := load(&cfg, inspectorDefaults(), InspectorEnvPrefix, cfgFile, flags); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// LoadGenerator loads the tmdlgen configuration.
// Precedence (highest to lowest): flags > env vars > config file > defaults
func LoadGenerator(cfgFile string, flags *pflag.FlagSet) (*Generator, error) {
	var cfg Generator
	if err := load(&cfg, generatorDefaults(), GeneratorEnvPrefix, cfgFile, flags); err != nil {
		return nil, err
	}
	cfg.SiteURL = strings.TrimRight(cfg.SiteURL, "/")
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func load(out interface{}, defaults map[string]interface{}, envPrefix, cfgFile string, flags *pflag.FlagSet) error {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	// 3. Environment, e.g. TMDLGEN_SITE_URL -> site_url
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags that were explicitly set
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return fmt.Errorf("failed to load flags: %w", err)
		}
	}

	if err := k.Unmarshal("", out); err != nil {
		return fmt.Errorf("unable to decode config: %w", err)
	}
	return nil
}
