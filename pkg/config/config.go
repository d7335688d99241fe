// Package config loads the project configuration and the process
// environment.
//
// The project file is relaxicons.config.json (or relaxicons.config.toml),
// found by walking up from the working directory:
//
//	{
//	  "framework": "react",
//	  "iconPath": "components/ui/icons",
//	  "typescript": true,
//	  "templatesDir": "icon-templates",
//	  "optimizeSvg": {"precision": 3},
//	  "schemaVersion": 2
//	}
//
// Relative paths resolve against the directory holding the file. The legacy
// "outDir" key is read as iconPath. Only the fields the pipeline consumes are
// validated; unknown keys are ignored.
//
// Environment settings live in [Env] and are read with caarlos0/env.
package config

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/relaxicons/relaxicons/pkg/errors"
	"github.com/relaxicons/relaxicons/pkg/render"
)

const (
	// FileName is the JSON config file created by init.
	FileName = "relaxicons.config.json"
	// TOMLFileName is the alternative TOML config file.
	TOMLFileName = "relaxicons.config.toml"
	// SchemaVersion is the current config schema.
	SchemaVersion = 2
	// DefaultIconPath is where init puts icons unless told otherwise.
	DefaultIconPath = "components/ui/icons"
)

// Config is the project configuration.
type Config struct {
	Framework     string    `json:"framework" toml:"framework"`
	IconPath      string    `json:"iconPath,omitempty" toml:"iconPath,omitempty"`
	OutDir        string    `json:"outDir,omitempty" toml:"outDir,omitempty"` // legacy name of IconPath
	TypeScript    bool      `json:"typescript" toml:"typescript"`
	TemplatesDir  string    `json:"templatesDir,omitempty" toml:"templatesDir,omitempty"`
	OptimizeSvg   *Optimize `json:"optimizeSvg,omitempty" toml:"optimizeSvg,omitempty"`
	SchemaVersion int       `json:"schemaVersion,omitempty" toml:"schemaVersion,omitempty"`
	GeneratedAt   string    `json:"generatedAt,omitempty" toml:"generatedAt,omitempty"`

	path string
}

// New returns the config init writes.
func New(framework render.Framework, iconPath string, typescript bool, now time.Time) *Config {
	if iconPath == "" {
		iconPath = DefaultIconPath
	}
	return &Config{
		Framework:     string(framework),
		IconPath:      iconPath,
		TypeScript:    typescript,
		SchemaVersion: SchemaVersion,
		GeneratedAt:   now.UTC().Format(time.RFC3339),
	}
}

// Find walks up from start to the first directory holding a config file.
// The JSON file wins when both exist.
func Find(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeConfigInvalid, err, "resolve %s", start)
	}
	for {
		for _, name := range []string{FileName, TOMLFileName} {
			p := filepath.Join(dir, name)
			if info, err := os.Stat(p); err == nil && !info.IsDir() {
				return p, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New(errors.ErrCodeConfigMissing,
				"Configuration file %s not found. Run \"relaxicons init\" first.", FileName)
		}
		dir = parent
	}
}

// Load finds and reads the config governing start.
func Load(start string) (*Config, error) {
	path, err := Find(start)
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads and validates the config at path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeConfigMissing, err, "read %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeConfigInvalid, err, "read %s", path)
	}

	var cfg Config
	if isTOML(path) {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, errors.Wrap(errors.ErrCodeConfigInvalid, err, "Failed to read %s", filepath.Base(path))
		}
	} else if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfigInvalid, err, "Failed to read %s", filepath.Base(path))
	}

	if cfg.IconPath == "" && cfg.OutDir != "" {
		cfg.IconPath = cfg.OutDir
	}
	cfg.path, _ = filepath.Abs(path)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the fields the pipeline relies on.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.IconPath) == "" {
		return errors.New(errors.ErrCodeConfigInvalid, "Invalid %s: iconPath is required", c.name())
	}
	if _, err := render.ParseFramework(c.Framework); err != nil {
		return errors.Wrap(errors.ErrCodeConfigInvalid, err, "Invalid %s", c.name())
	}
	if c.OptimizeSvg != nil && c.OptimizeSvg.Precision < 0 {
		return errors.New(errors.ErrCodeConfigInvalid, "Invalid %s: optimizeSvg.precision must not be negative", c.name())
	}
	return nil
}

// Variant returns the configured framework.
func (c *Config) Variant() render.Framework {
	fw, err := render.ParseFramework(c.Framework)
	if err != nil {
		return render.Unknown
	}
	return fw
}

// Path returns the file the config was loaded from, or "".
func (c *Config) Path() string {
	return c.path
}

// Dir returns the directory relative paths resolve against. Configs that
// were not loaded from disk resolve against the working directory.
func (c *Config) Dir() string {
	if c.path == "" {
		wd, _ := os.Getwd()
		return wd
	}
	return filepath.Dir(c.path)
}

// IconDir returns the absolute destination directory for icons.
func (c *Config) IconDir() string {
	return c.resolve(c.IconPath)
}

// TemplatesPath returns the absolute override directory, or "".
func (c *Config) TemplatesPath() string {
	if c.TemplatesDir == "" {
		return ""
	}
	return c.resolve(c.TemplatesDir)
}

// Optimization reports whether the minifier runs and with which settings.
// It is on unless the config says optimizeSvg: false.
func (c *Config) Optimization() Optimize {
	if c.OptimizeSvg == nil {
		return Optimize{Enabled: true}
	}
	return *c.OptimizeSvg
}

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(c.Dir(), p)
}

func (c *Config) name() string {
	if c.path != "" {
		return filepath.Base(c.path)
	}
	return FileName
}

// Write stores c at path. An existing file is only replaced with overwrite.
func (c *Config) Write(path string, overwrite bool) error {
	if _, err := os.Stat(path); err == nil && !overwrite {
		return errors.New(errors.ErrCodeConfigInvalid, "%s already exists. Use --force to overwrite.", filepath.Base(path))
	}

	data, err := encode(path, c)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode %s", filepath.Base(path))
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	c.path, _ = filepath.Abs(path)
	return nil
}

// Migrate upgrades the config file at path to the current schema: it sets
// schemaVersion and renames outDir to iconPath. Keys it does not know are
// kept. It reports whether the file changed.
func Migrate(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, errors.Wrap(errors.ErrCodeConfigMissing, err, "read %s", path)
	}

	doc := make(map[string]any)
	if isTOML(path) {
		_, err = toml.Decode(string(data), &doc)
	} else {
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return false, errors.Wrap(errors.ErrCodeConfigInvalid, err, "Failed to read %s", filepath.Base(path))
	}

	changed := false
	if outDir, ok := doc["outDir"]; ok {
		if _, has := doc["iconPath"]; !has {
			doc["iconPath"] = outDir
		}
		delete(doc, "outDir")
		changed = true
	}
	if v, ok := doc["schemaVersion"]; !ok || !isVersion(v, SchemaVersion) {
		doc["schemaVersion"] = SchemaVersion
		changed = true
	}
	if !changed {
		return false, nil
	}

	out, err := encode(path, doc)
	if err != nil {
		return false, errors.Wrap(errors.ErrCodeInternal, err, "encode %s", filepath.Base(path))
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return false, errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return true, nil
}

func isVersion(v any, want int) bool {
	switch n := v.(type) {
	case float64:
		return n == float64(want)
	case int64:
		return n == int64(want)
	case int:
		return n == want
	}
	return false
}

func encode(path string, v any) ([]byte, error) {
	if isTOML(path) {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(v); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
