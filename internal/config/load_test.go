package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets environment variables for the duration of the test.
// An empty value leaves the variable set but empty, which viper treats as unset.
func setupEnv(t *testing.T, envVars map[string]string) {
	t.Helper()

	clean := map[string]string{
		EnvConfig:   "",
		EnvPwd:      "",
		EnvLogLevel: "",
	}
	for name, value := range envVars {
		clean[name] = value
	}
	for name, value := range clean {
		t.Setenv(name, value)
	}
}

// stubGetwd replaces the working directory lookup for one test.
func stubGetwd(t *testing.T, fn func() (string, error)) {
	t.Helper()

	original := getwd
	getwd = fn
	t.Cleanup(func() { getwd = original })
}

// TestResolveDefaults verifies the store path is derived from HOME and the
// working directory from the process when nothing is supplied.
func TestResolveDefaults(t *testing.T) {
	home := t.TempDir()
	setupEnv(t, map[string]string{EnvHome: home})
	stubGetwd(t, func() (string, error) { return "/foo/bar", nil })

	cfg, err := Resolve(Options{})

	require.NoError(t, err, "Resolve() should not fail with HOME set")
	require.NotNil(t, cfg)
	assert.Equal(t, filepath.Join(home, "projector", "projector.json"), cfg.StorePath)
	assert.Equal(t, "/foo/bar", cfg.WorkingDir)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, PrintAll{}, cfg.Operation)
}

// TestResolveExplicitOptions verifies explicit options win and that HOME is
// never consulted when a store path is given.
func TestResolveExplicitOptions(t *testing.T) {
	setupEnv(t, map[string]string{
		EnvHome:     "",
		EnvConfig:   "/from/env.json",
		EnvPwd:      "/from/env",
		EnvLogLevel: "error",
	})
	stubGetwd(t, func() (string, error) {
		t.Fatal("getwd should not be called when a working directory is supplied")
		return "", nil
	})

	cfg, err := Resolve(Options{
		Args:       []string{"add", "foo", "bar"},
		ConfigPath: "/tmp/store.json",
		WorkingDir: "/foo",
		LogLevel:   "DEBUG",
	})

	require.NoError(t, err)
	assert.Equal(t, "/tmp/store.json", cfg.StorePath)
	assert.Equal(t, "/foo", cfg.WorkingDir)
	assert.Equal(t, "debug", cfg.LogLevel, "log level should be normalized to lower case")
	assert.Equal(t, Add{Key: "foo", Value: "bar"}, cfg.Operation)
}

// TestResolveFromEnv verifies PROJECTOR_* variables fill in missing options.
func TestResolveFromEnv(t *testing.T) {
	setupEnv(t, map[string]string{
		EnvHome:     "",
		EnvConfig:   "/env/store.json",
		EnvPwd:      "/env/pwd",
		EnvLogLevel: "info",
	})

	cfg, err := Resolve(Options{Args: []string{"foo"}})

	require.NoError(t, err)
	assert.Equal(t, "/env/store.json", cfg.StorePath)
	assert.Equal(t, "/env/pwd", cfg.WorkingDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, PrintKey{Key: "foo"}, cfg.Operation)
}

func TestResolveErrors(t *testing.T) {
	testCases := []struct {
		name           string
		envVars        map[string]string
		getwdErr       error
		opts           Options
		expectedErr    error
		errorSubstring string
	}{
		{
			name:           "Missing HOME",
			envVars:        map[string]string{EnvHome: ""},
			opts:           Options{WorkingDir: "/foo"},
			expectedErr:    ErrMissingHome,
			errorSubstring: "unable to find HOME",
		},
		{
			name:           "Working directory unavailable",
			envVars:        map[string]string{EnvHome: "/home/user"},
			getwdErr:       errors.New("getwd: no such file or directory"),
			expectedErr:    ErrWorkingDir,
			errorSubstring: "no such file or directory",
		},
		{
			name:           "Invalid log level",
			envVars:        map[string]string{EnvHome: "/home/user"},
			opts:           Options{WorkingDir: "/foo", LogLevel: "verbose"},
			expectedErr:    ErrInvalidConfig,
			errorSubstring: "validation failed",
		},
		{
			name:           "Usage error is reported before environment errors",
			envVars:        map[string]string{EnvHome: ""},
			opts:           Options{Args: []string{"rm"}},
			expectedErr:    ErrUsage,
			errorSubstring: "expects 1 argument, got 0",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setupEnv(t, tc.envVars)
			stubGetwd(t, func() (string, error) {
				if tc.getwdErr != nil {
					return "", tc.getwdErr
				}
				return "/cwd", nil
			})

			cfg, err := Resolve(tc.opts)

			require.Error(t, err)
			assert.ErrorIs(t, err, tc.expectedErr)
			assert.Contains(t, err.Error(), tc.errorSubstring)
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}
