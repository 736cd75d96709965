package main

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "AOC"

// Config holds the driver settings shared by every day command.
type Config struct {
	InputDir string
	Verbose  bool
	Unfold   int
}

// loadConfig merges an optional .env file, AOC_* variables and flags.
// Flags win over the environment; a missing .env is not an error.
func loadConfig(flags *pflag.FlagSet, envFile string) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("input-dir", ".")
	v.SetDefault("verbose", false)
	v.SetDefault("unfold", 5)
	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}

	return &Config{
		InputDir: v.GetString("input-dir"),
		Verbose:  v.GetBool("verbose"),
		Unfold:   v.GetInt("unfold"),
	}, nil
}

// inputPath returns args[0] when given, else <InputDir>/<day>/input.txt.
func (c *Config) inputPath(day string, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return filepath.Join(c.InputDir, day, "input.txt")
}
