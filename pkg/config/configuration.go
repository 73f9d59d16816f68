// Copyright 2021 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
	"github.com/tidwall/jsonc"

	"github.com/4Looped/hash-map/pkg/common/moerr"
	"github.com/4Looped/hash-map/pkg/container/hashtable"
	"github.com/4Looped/hash-map/pkg/logutil"
)

type ConfigurationKeyType int

const (
	ConfigKey ConfigurationKeyType = 1
)

const (
	KindChaining       = "chaining"
	KindOpenAddressing = "open-addressing"

	defaultCapacity = hashtable.DefaultChainedCapacity
	defaultKind     = KindChaining
	defaultHash     = "sum"
	defaultWorkers  = 4
	defaultLevel    = "info"
	defaultFormat   = "console"
)

// MapConfig selects the map built for counting tokens.
type MapConfig struct {
	// Kind is chaining or open-addressing. default: chaining
	Kind string `toml:"kind" json:"kind"`

	// Capacity is the initial capacity, rounded up to a prime. default: 11
	Capacity int `toml:"capacity" json:"capacity"`

	// Hash names a built-in hash function. default: sum
	Hash string `toml:"hash" json:"hash"`
}

// Config of mo-hashmap
type Config struct {
	Log logutil.LogConfig `toml:"log" json:"log"`

	Map MapConfig `toml:"map" json:"map"`

	// Workers bounds the number of files read concurrently. default: 4
	Workers int `toml:"workers" json:"workers"`
}

// Default returns a Config with every field set to its default.
func Default() *Config {
	cfg := &Config{}
	cfg.SetDefaults()
	return cfg
}

// SetDefaults fills the zero fields.
func (cfg *Config) SetDefaults() {
	if cfg.Map.Kind == "" {
		cfg.Map.Kind = defaultKind
	}
	if cfg.Map.Capacity == 0 {
		cfg.Map.Capacity = defaultCapacity
	}
	if cfg.Map.Hash == "" {
		cfg.Map.Hash = defaultHash
	}
	if cfg.Workers == 0 {
		cfg.Workers = defaultWorkers
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaultLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = defaultFormat
	}
}

// Validate checks the fields after SetDefaults.
func (cfg *Config) Validate(ctx context.Context) error {
	if err := cfg.Map.Validate(ctx); err != nil {
		return err
	}
	if cfg.Workers < 1 {
		return moerr.NewBadConfig(ctx, "workers must be positive, got %d", cfg.Workers)
	}
	if cfg.Log.Format != "console" && cfg.Log.Format != "json" {
		return moerr.NewBadConfig(ctx, "unsupported log format %q", cfg.Log.Format)
	}
	return nil
}

func (mc *MapConfig) Validate(ctx context.Context) error {
	switch mc.Kind {
	case KindChaining, KindOpenAddressing:
	default:
		return moerr.NewBadConfig(ctx, "unknown map kind %q", mc.Kind)
	}
	if mc.Capacity < 1 {
		return moerr.NewBadConfig(ctx, "capacity must be positive, got %d", mc.Capacity)
	}
	if _, err := hashtable.HasherByName(mc.Hash); err != nil {
		return moerr.NewBadConfig(ctx, "unknown hash %q, want one of %s",
			mc.Hash, strings.Join(hashtable.HasherNames(), ", "))
	}
	return nil
}

// Hasher returns the hash function named by Hash.
func (mc *MapConfig) Hasher() (hashtable.Hasher, error) {
	return hashtable.HasherByName(mc.Hash)
}

// LoadFromFile decodes a toml file, or a json file that may carry
// comments, then applies defaults and validates the result.
func LoadFromFile(ctx context.Context, fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, moerr.ConvertGoError(ctx, err)
	}

	cfg := &Config{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, moerr.NewBadConfig(ctx, "%s: %v", path, err)
		}
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
			return nil, moerr.NewBadConfig(ctx, "%s: %v", path, err)
		}
	default:
		return nil, moerr.NewBadConfig(ctx, "unsupported config file %s", path)
	}

	cfg.SetDefaults()
	if err := cfg.Validate(ctx); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WithConfig returns a child context carrying cfg.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ConfigKey, cfg)
}

// GetConfig gets the configuration from the context.
func GetConfig(ctx context.Context) *Config {
	cfg, ok := ctx.Value(ConfigKey).(*Config)
	if !ok || cfg == nil {
		panic("configuration is invalid")
	}
	return cfg
}
