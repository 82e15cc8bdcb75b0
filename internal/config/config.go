// Package config holds the command line tool's settings.
package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/crystalix007/pointset/pointset"
)

// Backend names a [pointset.Set] implementation.
type Backend string

const (
	// BackendTree selects [pointset.NewTree].
	BackendTree Backend = "tree"

	// BackendOrdered selects [pointset.NewOrdered].
	BackendOrdered Backend = "ordered"
)

// Config is the resolved configuration of the command line tool.
type Config struct {
	// File is the path of the point file to load. Empty means no file.
	File string

	// Backend selects the set implementation.
	Backend Backend

	// Tolerance is the point equality tolerance.
	Tolerance pointset.Tolerance
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Backend:   BackendTree,
		Tolerance: pointset.DefaultTolerance,
	}
}

// Load returns the default configuration overridden by POINTSET_FILE,
// POINTSET_BACKEND and POINTSET_TOLERANCE. Variables are read from the
// environment after loading any of the given dotenv files that exist; values
// already in the environment win.
func Load(envFiles ...string) (Config, error) {
	for _, name := range envFiles {
		if _, err := os.Stat(name); err != nil {
			continue
		}

		if err := godotenv.Load(name); err != nil {
			return Config{}, fmt.Errorf("loading %s: %w", name, err)
		}
	}

	return FromLookup(os.LookupEnv)
}

// FromLookup resolves the configuration using lookup to read variables.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup("POINTSET_FILE"); ok {
		cfg.File = v
	}

	if v, ok := lookup("POINTSET_BACKEND"); ok && v != "" {
		if err := cfg.SetBackend(v); err != nil {
			return Config{}, err
		}
	}

	if v, ok := lookup("POINTSET_TOLERANCE"); ok && v != "" {
		if err := cfg.SetTolerance(v); err != nil {
			return Config{}, err
		}
	}

	return cfg, nil
}

// SetBackend parses and sets the backend name.
func (c *Config) SetBackend(name string) error {
	switch b := Backend(strings.ToLower(name)); b {
	case BackendTree, BackendOrdered:
		c.Backend = b

		return nil
	default:
		return fmt.Errorf("unknown backend %q", name)
	}
}

// SetTolerance parses and sets the tolerance.
func (c *Config) SetTolerance(value string) error {
	t, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("parsing tolerance: %w", err)
	}

	if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
		return fmt.Errorf("tolerance %v is not a finite non-negative number", t)
	}

	c.Tolerance = pointset.Tolerance(t)

	return nil
}

// NewSet creates an empty set of the configured backend.
func (c Config) NewSet() pointset.Set {
	opt := pointset.WithTolerance(c.Tolerance)

	if c.Backend == BackendOrdered {
		return pointset.NewOrdered(opt)
	}

	return pointset.NewTree(opt)
}
