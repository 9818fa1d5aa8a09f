// Package config loads the project file (.tour.yaml) that selects which
// demonstrations run and how their shared environment is built.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	tt "github.com/gnoswap-labs/tour/internal/types"
)

const (
	DefaultPath = ".tour.yaml"
	EnvPrefix   = "TOUR"
)

// Config represents the overall configuration of a tour project.
type Config struct {
	Name    string                   `mapstructure:"name" yaml:"name" validate:"required"`
	Seed    uint64                   `mapstructure:"seed" yaml:"seed"`
	Timeout time.Duration            `mapstructure:"timeout" yaml:"timeout" validate:"gt=0"`
	Root    string                   `mapstructure:"root" yaml:"root" validate:"required"`
	Demos   map[string]tt.DemoConfig `mapstructure:"demos" yaml:"demos"`
	Memo    MemoConfig               `mapstructure:"memo" yaml:"memo"`
	Server  ServerConfig             `mapstructure:"server" yaml:"server"`
}

type MemoConfig struct {
	Backend    string `mapstructure:"backend" yaml:"backend" validate:"oneof=memory file redis"`
	Dir        string `mapstructure:"dir" yaml:"dir" validate:"required_if=Backend file"`
	RedisAddr  string `mapstructure:"redis_addr" yaml:"redis_addr" validate:"required_if=Backend redis"`
	MaxEntries int    `mapstructure:"max_entries" yaml:"max_entries" validate:"gte=0"`

	// MaxAge expires file-backed entries; zero keeps them.
	MaxAge time.Duration `mapstructure:"max_age" yaml:"max_age" validate:"gte=0"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr" yaml:"addr" validate:"required"`
}

// State reports whether the named demonstration ("module/demo") is enabled.
// A module-level entry ("module") applies to every demo of that module
// unless the demo has its own entry.
func (c *Config) State(name string) tt.State {
	if dc, ok := c.Demos[name]; ok {
		return dc.State
	}
	module, _, _ := strings.Cut(name, "/")
	if dc, ok := c.Demos[module]; ok {
		return dc.State
	}
	return tt.StateOn
}

// Default returns the configuration written by `tour init`.
func Default() *Config {
	return &Config{
		Name:    "tour",
		Seed:    42,
		Timeout: time.Minute,
		Root:    ".",
		Demos:   map[string]tt.DemoConfig{},
		Memo: MemoConfig{
			Backend:    "memory",
			Dir:        ".tour-cache",
			MaxEntries: 128,
		},
		Server: ServerConfig{Addr: ":8080"},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("name", d.Name)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("timeout", d.Timeout)
	v.SetDefault("root", d.Root)
	v.SetDefault("memo.backend", d.Memo.Backend)
	v.SetDefault("memo.dir", d.Memo.Dir)
	v.SetDefault("memo.redis_addr", d.Memo.RedisAddr)
	v.SetDefault("memo.max_entries", d.Memo.MaxEntries)
	v.SetDefault("memo.max_age", d.Memo.MaxAge)
	v.SetDefault("server.addr", d.Server.Addr)
}

// Load reads the project file at path from afs, overlays TOUR_* environment
// variables and validates the result. A missing file is not an error: the
// defaults apply.
func Load(afs afero.Fs, path string) (*Config, error) {
	v := viper.New()
	v.SetFs(afs)
	setDefaults(v)

	if path == "" {
		path = DefaultPath
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if cfg.Demos == nil {
		cfg.Demos = map[string]tt.DemoConfig{}
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	for name := range cfg.Demos {
		if name == "" || strings.Count(name, "/") > 1 {
			return fmt.Errorf("configuration validation failed: invalid demo name %q", name)
		}
	}
	return nil
}

// Write stores cfg as YAML at path, replacing any existing file.
func Write(afs afero.Fs, path string, cfg *Config) error {
	if path == "" {
		path = DefaultPath
	}
	d, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return afero.WriteFile(afs, path, d, 0o644)
}
