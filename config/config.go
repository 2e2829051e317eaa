// Package config loads the mazepath configuration: cost model, start
// heading, maze alphabet, cache size, logging and HTTP server settings.
//
// Priority is env > file > defaults. A YAML file is decoded over Default(),
// MAZEPATH_* environment variables are applied on top, and the result is
// validated.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazepath/mazeio"
	"github.com/katalvlaran/mazepath/statespace"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the top-level configuration.
//
// Thread Safety: Safe to read concurrently. Not safe to modify after creation.
type Config struct {
	// Costs prices steps and turns.
	Costs statespace.CostModel `json:"costs" yaml:"costs"`

	// StartHeading is the orientation at the start cell.
	StartHeading statespace.Heading `json:"start_heading" yaml:"start_heading"`

	// Symbols is the maze alphabet, one character per role.
	Symbols SymbolsConfig `json:"symbols" yaml:"symbols"`

	// CacheSize bounds the solver's result cache. 0 disables caching.
	CacheSize int `json:"cache_size" yaml:"cache_size"`

	// MaxCells is the largest grid (rows × cols) the solver accepts.
	// 0 removes the limit.
	MaxCells int `json:"max_cells" yaml:"max_cells"`

	// Log configures the slog handler.
	Log LogConfig `json:"log" yaml:"log"`

	// Server configures the HTTP listener.
	Server ServerConfig `json:"server" yaml:"server"`
}

// SymbolsConfig holds the maze alphabet as strings so it reads naturally
// in YAML.
type SymbolsConfig struct {
	Wall  string `json:"wall" yaml:"wall"`
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
	Floor string `json:"floor" yaml:"floor"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`   // debug | info | warn | error
	Format string `json:"format" yaml:"format"` // text | json
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Addr         string        `json:"addr" yaml:"addr"`
	ReadTimeout  time.Duration `json:"read_timeout" yaml:"read_timeout"`
	WriteTimeout time.Duration `json:"write_timeout" yaml:"write_timeout"`
	MaxBodyBytes int64         `json:"max_body_bytes" yaml:"max_body_bytes"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Costs:        statespace.DefaultCostModel(),
		StartHeading: statespace.East,
		Symbols:      SymbolsConfig{Wall: "#", Start: "S", End: "E", Floor: "."},
		CacheSize:    128,
		MaxCells:     1 << 16,
		Log:          LogConfig{Level: "info", Format: "text"},
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			MaxBodyBytes: 1 << 20,
		},
	}
}

// Load reads the YAML file at path over Default(), applies MAZEPATH_*
// environment overrides and validates the result. An empty path skips the
// file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty file decodes to io.EOF and leaves the defaults.
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("%w: parse %s: %v", ErrInvalidConfig, path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// applyEnv overrides fields from the environment.
func applyEnv(cfg *Config) error {
	if v := os.Getenv("MAZEPATH_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("MAZEPATH_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("MAZEPATH_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if err := envInt("MAZEPATH_CACHE_SIZE", &cfg.CacheSize); err != nil {
		return err
	}
	if err := envInt("MAZEPATH_MAX_CELLS", &cfg.MaxCells); err != nil {
		return err
	}
	if v := os.Getenv("MAZEPATH_START_HEADING"); v != "" {
		h, err := statespace.ParseHeading(v)
		if err != nil {
			return fmt.Errorf("%w: MAZEPATH_START_HEADING: %v", ErrInvalidConfig, err)
		}
		cfg.StartHeading = h
	}

	return nil
}

// envInt overwrites *dst with the integer in the named variable, if set.
func envInt(name string, dst *int) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, name, v, err)
	}
	*dst = n

	return nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if err := c.Costs.Validate(); err != nil {
		return fmt.Errorf("%w: costs: %v", ErrInvalidConfig, err)
	}
	if !c.StartHeading.Valid() {
		return fmt.Errorf("%w: start_heading %v", ErrInvalidConfig, c.StartHeading)
	}
	if _, err := c.Symbols.ToSymbols(); err != nil {
		return fmt.Errorf("%w: symbols: %v", ErrInvalidConfig, err)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("%w: cache_size must be >= 0", ErrInvalidConfig)
	}
	if c.MaxCells < 0 {
		return fmt.Errorf("%w: max_cells must be >= 0", ErrInvalidConfig)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q (want text or json)", ErrInvalidConfig, c.Log.Format)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("%w: server.addr is empty", ErrInvalidConfig)
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("%w: server timeouts must be > 0", ErrInvalidConfig)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("%w: server.max_body_bytes must be > 0", ErrInvalidConfig)
	}

	return nil
}

// ToSymbols converts the string alphabet to a mazeio.Symbols. Each role
// must be exactly one character.
func (s SymbolsConfig) ToSymbols() (mazeio.Symbols, error) {
	var out mazeio.Symbols
	fields := []struct {
		name string
		val  string
		dst  *rune
	}{
		{"wall", s.Wall, &out.Wall},
		{"start", s.Start, &out.Start},
		{"end", s.End, &out.End},
		{"floor", s.Floor, &out.Floor},
	}
	for _, f := range fields {
		if utf8.RuneCountInString(f.val) != 1 {
			return out, fmt.Errorf("%s must be a single character, got %q", f.name, f.val)
		}
		*f.dst, _ = utf8.DecodeRuneInString(f.val)
	}

	return out, out.Validate()
}
