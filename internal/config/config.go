// Package config loads lvsteiner settings from YAML or TOML files and
// environment overrides.
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsteiner/core"
)

// EnvPrefix starts every environment override, e.g. LVSTEINER_LOG_LEVEL.
const EnvPrefix = "LVSTEINER_"

// searchPaths are tried, in order, under the XDG config directories.
var searchPaths = []string{
	"lvsteiner/config.yaml",
	"lvsteiner/config.yml",
	"lvsteiner/config.toml",
}

var (
	// ErrExtension is returned by Load for files other than .yaml, .yml or .toml.
	ErrExtension = errors.New("config: unsupported file extension")

	// ErrUnknown indicates keys in a config file that no field accepts.
	ErrUnknown = errors.New("config: unknown keys")

	// ErrInvalid indicates a setting that Validate or ApplyEnv cannot accept.
	ErrInvalid = errors.New("config: invalid value")
)

// Config is the full set of CLI settings.
type Config struct {
	Log    LogConfig    `yaml:"log" toml:"log"`
	Solver SolverConfig `yaml:"solver" toml:"solver"`
	Gen    GenConfig    `yaml:"gen" toml:"gen"`
}

// LogConfig controls internal/logging.
type LogConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

// SolverConfig controls query.Runner.
type SolverConfig struct {
	SharedQueue bool   `yaml:"shared_queue" toml:"shared_queue"`
	Verify      bool   `yaml:"verify" toml:"verify"`
	NoSolution  string `yaml:"no_solution" toml:"no_solution"`
	// MemoryGuard rejects cases whose tables exceed available host memory.
	MemoryGuard bool `yaml:"memory_guard" toml:"memory_guard"`
	// MemoryLimit is a fixed table budget in bytes; 0 leaves it to the guard.
	MemoryLimit uint64 `yaml:"memory_limit" toml:"memory_limit"`
}

// GenConfig controls the instance generator.
type GenConfig struct {
	Seed      int64 `yaml:"seed" toml:"seed"`
	MinWeight int64 `yaml:"min_weight" toml:"min_weight"`
	MaxWeight int64 `yaml:"max_weight" toml:"max_weight"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Solver: SolverConfig{
			NoSolution:  "No solution",
			MemoryGuard: true,
		},
		Gen: GenConfig{
			Seed:      1,
			MinWeight: 1,
			MaxWeight: 100,
		},
	}
}

// Load reads path on top of Default. The decoder is picked by extension
// (.yaml, .yml, .toml) and unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "config: read")
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err = dec.Decode(&cfg); err != nil && err != io.EOF {
			return cfg, errors.Wrapf(err, "config: decode %s", path)
		}
	case ".toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return cfg, errors.Wrapf(err, "config: decode %s", path)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return cfg, errors.Wrapf(ErrUnknown, "%s: %v", path, undecoded)
		}
	default:
		return cfg, errors.Wrapf(ErrExtension, "%q", ext)
	}
	return cfg, nil
}

// Discover returns the first config file found under the XDG config
// directories, or "" when there is none.
func Discover() string {
	for _, rel := range searchPaths {
		if p, err := xdg.SearchConfigFile(rel); err == nil {
			return p
		}
	}

	return ""
}

// ApplyEnv overlays LVSTEINER_* variables. Values from envFile (a dotenv
// file, optional) take precedence over the process environment.
func (c *Config) ApplyEnv(envFile string) error {
	file := map[string]string{}
	if envFile != "" {
		var err error
		if file, err = godotenv.Read(envFile); err != nil {
			return errors.Wrapf(err, "config: read env file %s", envFile)
		}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := file[EnvPrefix+key]; ok {
			return v, true
		}
		return os.LookupEnv(EnvPrefix + key)
	}

	if v, ok := lookup("LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := lookup("LOG_FORMAT"); ok {
		c.Log.Format = v
	}
	if v, ok := lookup("NO_SOLUTION"); ok {
		c.Solver.NoSolution = v
	}
	for key, dst := range map[string]*bool{
		"SHARED_QUEUE": &c.Solver.SharedQueue,
		"VERIFY":       &c.Solver.Verify,
		"MEMORY_GUARD": &c.Solver.MemoryGuard,
	} {
		if v, ok := lookup(key); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return errors.Wrapf(ErrInvalid, "%s%s=%q", EnvPrefix, key, v)
			}
			*dst = b
		}
	}
	if v, ok := lookup("MEMORY_LIMIT"); ok {
		limit, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return errors.Wrapf(ErrInvalid, "%sMEMORY_LIMIT=%q", EnvPrefix, v)
		}
		c.Solver.MemoryLimit = limit
	}
	if v, ok := lookup("SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return errors.Wrapf(ErrInvalid, "%sSEED=%q", EnvPrefix, v)
		}
		c.Gen.Seed = seed
	}

	return nil
}

// Validate checks every field for a usable value.
func (c Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrapf(ErrInvalid, "log.level: %v", err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.Wrapf(ErrInvalid, "log.format %q, want text or json", c.Log.Format)
	}
	if strings.TrimSpace(c.Solver.NoSolution) == "" {
		return errors.Wrap(ErrInvalid, "solver.no_solution must not be empty")
	}
	if c.Gen.MinWeight < 0 || c.Gen.MaxWeight < c.Gen.MinWeight || c.Gen.MaxWeight > core.MaxWeight {
		return errors.Wrapf(ErrInvalid, "gen weights [%d,%d], want 0 ≤ min ≤ max ≤ %d",
			c.Gen.MinWeight, c.Gen.MaxWeight, core.MaxWeight)
	}

	return nil
}
