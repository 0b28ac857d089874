package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Environment variables consulted during resolution.
const (
	EnvPrefix = "PROJECTOR"

	// EnvHome is only read when no store path was supplied.
	EnvHome = "HOME"

	EnvConfig   = EnvPrefix + "_CONFIG"
	EnvPwd      = EnvPrefix + "_PWD"
	EnvLogLevel = EnvPrefix + "_LOG_LEVEL"
)

// Defaults applied when neither a flag nor an environment variable is set.
const (
	DefaultStoreDir  = "projector"
	DefaultStoreFile = "projector.json"
	DefaultLogLevel  = "warn"
)

// getwd is swapped out in tests to simulate a deleted working directory.
var getwd = os.Getwd

// Resolve builds a validated Config from raw CLI options.
//
// Each setting is taken from the explicit option when present, then from its
// PROJECTOR_* environment variable, then from its default. The default store
// path is $HOME/projector/projector.json and the default working directory
// is the current directory of the process. Only paths are constructed here;
// nothing is checked for existence.
func Resolve(opts Options) (*Config, error) {
	op, err := ParseOperation(opts.Args)
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetDefault("log_level", DefaultLogLevel)

	for _, key := range []string{"config", "pwd", "log_level"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment for %s: %w", key, err)
		}
	}
	if err := v.BindEnv("home", EnvHome); err != nil {
		return nil, fmt.Errorf("failed to bind environment for home: %w", err)
	}

	if opts.ConfigPath != "" {
		v.Set("config", opts.ConfigPath)
	}
	if opts.WorkingDir != "" {
		v.Set("pwd", opts.WorkingDir)
	}
	if opts.LogLevel != "" {
		v.Set("log_level", opts.LogLevel)
	}

	if v.GetString("config") == "" {
		storePath, err := defaultStorePath(v.GetString("home"))
		if err != nil {
			return nil, err
		}
		v.Set("config", storePath)
	}

	if v.GetString("pwd") == "" {
		pwd, err := getwd()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrWorkingDir, err)
		}
		v.Set("pwd", pwd)
	}

	v.Set("log_level", strings.ToLower(v.GetString("log_level")))

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	cfg.Operation = op

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return &cfg, nil
}

// defaultStorePath places the store under a dedicated directory in home.
func defaultStorePath(home string) (string, error) {
	if home == "" {
		return "", ErrMissingHome
	}
	return filepath.Join(home, DefaultStoreDir, DefaultStoreFile), nil
}
