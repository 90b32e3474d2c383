// Package config loads the runtime settings of dramkit from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvLogRequests = "DRAMKIT_LOG_REQUESTS"
	EnvOutputDir   = "DRAMKIT_OUTPUT_DIR"
	EnvParallelID  = "DRAMKIT_PARALLEL_ID"
)

// Config holds the settings shared by the dramkit packages.
type Config struct {
	// LogRequests makes the dummy read and write callbacks print the
	// returned addresses.
	LogRequests bool

	// OutputDir is where recorded data is written.
	OutputDir string

	// ParallelID selects the xid-based ID generator.
	ParallelID bool
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		OutputDir: ".",
	}
}

// Load reads the given .env files, or ".env" if none is given, and then the
// process environment. Missing files are ignored. Variables already in the
// environment take precedence over the files.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, f := range files {
		err := godotenv.Load(f)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	return FromEnv()
}

// FromEnv builds a configuration from the process environment only.
func FromEnv() (Config, error) {
	c := Default()

	var err error

	c.LogRequests, err = boolEnv(EnvLogRequests, c.LogRequests)
	if err != nil {
		return Config{}, err
	}

	c.ParallelID, err = boolEnv(EnvParallelID, c.ParallelID)
	if err != nil {
		return Config{}, err
	}

	if dir, ok := os.LookupEnv(EnvOutputDir); ok && dir != "" {
		c.OutputDir = dir
	}

	return c, nil
}

func boolEnv(name string, def bool) (bool, error) {
	v, ok := os.LookupEnv(name)
	if !ok || v == "" {
		return def, nil
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", name, err)
	}

	return b, nil
}
