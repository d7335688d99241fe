package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/relaxicons/relaxicons/pkg/errors"
)

// Env is the configuration read from environment variables.
type Env struct {
	Offline     bool          `env:"RELAXICONS_OFFLINE"`
	CacheDir    string        `env:"RELAXICONS_CACHE_DIR"`
	APIBase     string        `env:"RELAXICONS_API_BASE"    envDefault:"https://api.iconify.design"`
	CacheTTL    time.Duration `env:"RELAXICONS_CACHE_TTL"   envDefault:"24h"`
	Concurrency int           `env:"RELAXICONS_CONCURRENCY" envDefault:"4"`
	RedisURL    string        `env:"RELAXICONS_REDIS_URL"`
	NoColor     string        `env:"NO_COLOR"`

	XDGCacheHome string `env:"XDG_CACHE_HOME"`
	Home         string `env:"HOME"`
}

// LoadEnv reads Env from the process environment.
func LoadEnv() (Env, error) {
	return parseEnv(env.Options{})
}

// LoadEnvFrom reads Env from the given variables only.
func LoadEnvFrom(vars map[string]string) (Env, error) {
	return parseEnv(env.Options{Environment: vars})
}

func parseEnv(opts env.Options) (Env, error) {
	var e Env
	if err := env.ParseWithOptions(&e, opts); err != nil {
		return Env{}, errors.Wrap(errors.ErrCodeConfigInvalid, err, "parse environment")
	}
	if e.Concurrency < 1 {
		return Env{}, errors.New(errors.ErrCodeConfigInvalid, "RELAXICONS_CONCURRENCY must be at least 1, got %d", e.Concurrency)
	}
	if e.CacheTTL < 0 {
		return Env{}, errors.New(errors.ErrCodeConfigInvalid, "RELAXICONS_CACHE_TTL must not be negative")
	}
	if err := errors.ValidateURL(e.APIBase); err != nil {
		return Env{}, errors.Wrap(errors.ErrCodeConfigInvalid, err, "RELAXICONS_API_BASE")
	}
	return e, nil
}

// CacheDirectory returns where the file cache lives: RELAXICONS_CACHE_DIR,
// else $XDG_CACHE_HOME/relaxicons, else ~/.cache/relaxicons.
func (e Env) CacheDirectory() string {
	switch {
	case e.CacheDir != "":
		return e.CacheDir
	case e.XDGCacheHome != "":
		return filepath.Join(e.XDGCacheHome, "relaxicons")
	}
	home := e.Home
	if home == "" {
		home, _ = os.UserHomeDir()
	}
	return filepath.Join(home, ".cache", "relaxicons")
}

// ColorDisabled follows the NO_COLOR convention: any non-empty value.
func (e Env) ColorDisabled() bool {
	return e.NoColor != ""
}
