/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package config loads the fstatus configuration from TOML or YAML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"dirpx.dev/fstatus/apis"
	"dirpx.dev/fstatus/code"
	"dirpx.dev/fstatus/mapper"
)

// EnvConfig names the environment variable holding the config file path.
const EnvConfig = "FSTATUS_CONFIG"

// Config holds the complete configuration.
type Config struct {
	Log LogConfig `toml:"log" yaml:"log"`

	// HTTP overrides the HTTP status of error kinds, keyed by kind name
	// (e.g. CANCELLED = 408).
	HTTP map[string]int `toml:"http" yaml:"http"`

	// GRPC overrides the gRPC code of error kinds, keyed by kind name.
	GRPC map[string]int `toml:"grpc" yaml:"grpc"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`   // debug|info|warn|error
	Format string `toml:"format" yaml:"format"` // console|json
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads the file at path. The format is chosen by extension: .toml,
// .yaml or .yml. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
		if und := md.Undecoded(); len(und) > 0 {
			return nil, fmt.Errorf("config: %s: unknown key %q", path, und[0].String())
		}
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		defer f.Close()
		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("config: %s: unsupported extension %q", path, ext)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadFromEnv loads the file named by FSTATUS_CONFIG, or returns Default()
// when the variable is unset.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfig)
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
}

// Validate checks the log settings and the override tables.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q: want debug, info, warn or error", c.Log.Level)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format %q: want console or json", c.Log.Format)
	}
	_, err := c.Mapper()
	return err
}

// MapperOptions turns the [http] and [grpc] tables into mapper overrides.
// Kind names are parsed with code.Parse, so "not-found" and "5" are
// accepted for NOT_FOUND.
func (c *Config) MapperOptions() ([]mapper.Option, error) {
	var opts []mapper.Option
	for _, k := range sortedKeys(c.HTTP) {
		kind, err := code.Parse(k)
		if err != nil {
			return nil, fmt.Errorf("http.%s: %w", k, err)
		}
		opts = append(opts, mapper.WithHTTPOverride(kind, c.HTTP[k]))
	}
	for _, k := range sortedKeys(c.GRPC) {
		kind, err := code.Parse(k)
		if err != nil {
			return nil, fmt.Errorf("grpc.%s: %w", k, err)
		}
		opts = append(opts, mapper.WithGRPCOverride(kind, c.GRPC[k]))
	}
	return opts, nil
}

// Mapper builds the mapper described by the configuration.
func (c *Config) Mapper() (apis.Mapper, error) {
	opts, err := c.MapperOptions()
	if err != nil {
		return nil, err
	}
	return mapper.New(opts...)
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
