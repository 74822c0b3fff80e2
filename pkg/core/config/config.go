package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/msto63/mRACF/pkg/utils/stringx"
)

// Config holds the complete racfls configuration
type Config struct {
	Log     LogConfig     `toml:"log" yaml:"log"`
	Server  ServerConfig  `toml:"server" yaml:"server"`
	Catalog CatalogConfig `toml:"catalog" yaml:"catalog"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`   // trace, debug, info, warn, error
	Format string `toml:"format" yaml:"format"` // json or text
}

// ServerConfig holds language server transport settings
type ServerConfig struct {
	Transport    string   `toml:"transport" yaml:"transport"` // stdio or websocket
	Listen       string   `toml:"listen" yaml:"listen"`       // websocket listen address
	ReadTimeout  Duration `toml:"read_timeout" yaml:"read_timeout"`
	WriteTimeout Duration `toml:"write_timeout" yaml:"write_timeout"`
}

// CatalogConfig holds vocabulary catalog settings
type CatalogConfig struct {
	EnableAbbreviations bool `toml:"enable_abbreviations" yaml:"enable_abbreviations"`
}

// Duration wraps time.Duration for TOML/YAML string parsing ("30s", "2m")
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for TOML
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(raw))
}

// Std returns the wrapped time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Server: ServerConfig{
			Transport:    "stdio",
			Listen:       "localhost:9180",
			ReadTimeout:  Duration(120 * time.Second),
			WriteTimeout: Duration(30 * time.Second),
		},
		Catalog: CatalogConfig{
			EnableAbbreviations: true,
		},
	}
}

// Load reads configuration from a TOML or YAML file, detected by file
// extension, merged over defaults and environment overrides. An empty
// path returns defaults (plus environment overrides) without error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if stringx.IsNotBlank(path) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}

		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse yaml config %s: %w", path, err)
			}
		case ".toml", "":
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse toml config %s: %w", path, err)
			}
		default:
			return nil, fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv applies RACFLS_* environment variable overrides. Unset
// variables leave the configured value in place.
func (c *Config) applyEnv() {
	c.Log.Level = stringx.FromDefault(os.Getenv("RACFLS_LOG_LEVEL"), c.Log.Level)
	c.Log.Format = stringx.FromDefault(os.Getenv("RACFLS_LOG_FORMAT"), c.Log.Format)
	c.Server.Transport = stringx.FromDefault(os.Getenv("RACFLS_TRANSPORT"), c.Server.Transport)
	c.Server.Listen = stringx.FromDefault(os.Getenv("RACFLS_LISTEN"), c.Server.Listen)
}

// Validate checks the configuration for consistency
func (c *Config) Validate() error {
	switch c.Server.Transport {
	case "stdio", "websocket":
	default:
		return fmt.Errorf("invalid transport %q (must be stdio or websocket)", c.Server.Transport)
	}

	if c.Server.Transport == "websocket" && stringx.IsBlank(c.Server.Listen) {
		return fmt.Errorf("websocket transport requires a listen address")
	}

	switch c.Log.Format {
	case "json", "text", "":
	default:
		return fmt.Errorf("invalid log format %q (must be json or text)", c.Log.Format)
	}

	return nil
}
