package cli

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/arloliu/wkb/format"
	"go.uber.org/zap/zapcore"
)

// Config holds the settings shared by every wkbctl command.
type Config struct {
	// Output is the result format: table, json or yaml.
	Output string
	// Compression is the payload compression used by pack.
	Compression string
	// Packing restricts roundtrip to one coordinate layout. Empty means both.
	Packing string
	// LogLevel is a zap level name.
	LogLevel string
}

// wkbctl config.toml keys.
type fileConfig struct {
	Output      string `toml:"output"`
	Compression string `toml:"compression"`
	Packing     string `toml:"packing"`
	LogLevel    string `toml:"log_level"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		Output:      "table",
		Compression: "zstd",
		LogLevel:    "warn",
	}
}

// LoadConfig overlays the keys defined in the TOML file at path onto the
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load wkbctl config: %w", err)
	}

	if meta.IsDefined("output") {
		cfg.Output = strings.TrimSpace(raw.Output)
	}
	if meta.IsDefined("compression") {
		cfg.Compression = strings.TrimSpace(raw.Compression)
	}
	if meta.IsDefined("packing") {
		cfg.Packing = strings.TrimSpace(raw.Packing)
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load wkbctl config: unknown key %q", undecoded[0].String())
	}

	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch strings.ToLower(c.Output) {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("invalid output format %q (want table, json or yaml)", c.Output)
	}

	if _, ok := format.ParseCompression(c.Compression); !ok {
		return fmt.Errorf("invalid compression %q (want none, zstd, s2 or lz4)", c.Compression)
	}

	if _, err := c.PackingModes(); err != nil {
		return err
	}

	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}

	return nil
}

// CompressionType returns the parsed compression setting.
func (c Config) CompressionType() format.CompressionType {
	ct, _ := format.ParseCompression(c.Compression)

	return ct
}

// PackingModes returns the layouts selected by the packing setting.
func (c Config) PackingModes() ([]format.PackingMode, error) {
	if c.Packing == "" || strings.EqualFold(c.Packing, "all") {
		return []format.PackingMode{format.PackingAOS, format.PackingSOA}, nil
	}

	mode, ok := format.ParsePackingMode(c.Packing)
	if !ok {
		return nil, fmt.Errorf("invalid packing %q (want aos, soa or all)", c.Packing)
	}

	return []format.PackingMode{mode}, nil
}
