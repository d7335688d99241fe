package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relaxicons/relaxicons/pkg/errors"
	"github.com/relaxicons/relaxicons/pkg/render"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadWalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, FileName), `{"framework":"next","iconPath":"src/icons","typescript":true}`)
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))

	cfg, err := Load(nested)
	require.NoError(t, err)
	assert.Equal(t, render.ReactServer, cfg.Variant())
	assert.True(t, cfg.TypeScript)
	assert.Equal(t, filepath.Join(root, "src", "icons"), cfg.IconDir())
	assert.True(t, cfg.Optimization().Enabled)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.True(t, errors.Is(err, errors.ErrCodeConfigMissing), "err = %v", err)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed json", `{"framework":`},
		{"no icon path", `{"framework":"react"}`},
		{"unknown framework", `{"framework":"ember","iconPath":"icons"}`},
		{"bad optimize", `{"framework":"react","iconPath":"icons","optimizeSvg":"yes"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), FileName)
			writeFile(t, path, tt.content)
			_, err := LoadFile(path)
			assert.True(t, errors.Is(err, errors.ErrCodeConfigInvalid), "err = %v", err)
		})
	}
}

func TestLegacyOutDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	writeFile(t, path, `{"framework":"vue","outDir":"icons"}`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "icons", cfg.IconPath)
}

func TestOptimizeSvgForms(t *testing.T) {
	tests := []struct {
		raw  string
		want Optimize
	}{
		{`true`, Optimize{Enabled: true}},
		{`false`, Optimize{}},
		{`{"precision":3}`, Optimize{Enabled: true, Precision: 3}},
		{`{"keepComments":true}`, Optimize{Enabled: true, KeepComments: true}},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), FileName)
			writeFile(t, path, `{"framework":"react","iconPath":"i","optimizeSvg":`+tt.raw+`}`)
			cfg, err := LoadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Optimization())
		})
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), TOMLFileName)
	writeFile(t, path, `framework = "svelte"
iconPath = "lib/icons"
templatesDir = "tpl"
optimizeSvg = { precision = 2 }
`)

	cfg, err := Load(filepath.Dir(path))
	require.NoError(t, err)
	assert.Equal(t, render.Svelte, cfg.Variant())
	assert.Equal(t, filepath.Join(filepath.Dir(path), "tpl"), cfg.TemplatesPath())
	assert.Equal(t, Optimize{Enabled: true, Precision: 2}, cfg.Optimization())
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	cfg := New(render.React, "", true, now)
	require.NoError(t, cfg.Write(path, false))

	var doc map[string]any
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "react", doc["framework"])
	assert.Equal(t, DefaultIconPath, doc["iconPath"])
	assert.Equal(t, float64(SchemaVersion), doc["schemaVersion"])
	assert.Equal(t, "2026-01-02T03:04:05Z", doc["generatedAt"])

	err = cfg.Write(path, false)
	assert.True(t, errors.Is(err, errors.ErrCodeConfigInvalid))
	require.NoError(t, cfg.Write(path, true))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, DefaultIconPath), loaded.IconDir())
}

func TestMigrate(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	writeFile(t, path, `{"framework":"react","outDir":"icons","custom":"kept"}`)

	changed, err := Migrate(path)
	require.NoError(t, err)
	assert.True(t, changed)

	var doc map[string]any
	data, _ := os.ReadFile(path)
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "icons", doc["iconPath"])
	assert.Equal(t, "kept", doc["custom"])
	assert.Equal(t, float64(SchemaVersion), doc["schemaVersion"])
	assert.NotContains(t, doc, "outDir")

	changed, err = Migrate(path)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestEnv(t *testing.T) {
	e, err := LoadEnvFrom(map[string]string{"HOME": "/home/u"})
	require.NoError(t, err)
	assert.False(t, e.Offline)
	assert.Equal(t, "https://api.iconify.design", e.APIBase)
	assert.Equal(t, 24*time.Hour, e.CacheTTL)
	assert.Equal(t, 4, e.Concurrency)
	assert.Equal(t, filepath.Join("/home/u", ".cache", "relaxicons"), e.CacheDirectory())
	assert.False(t, e.ColorDisabled())

	e, err = LoadEnvFrom(map[string]string{
		"RELAXICONS_OFFLINE":     "1",
		"RELAXICONS_CONCURRENCY": "8",
		"RELAXICONS_CACHE_TTL":   "1h",
		"XDG_CACHE_HOME":         "/xdg",
		"NO_COLOR":               "yes",
	})
	require.NoError(t, err)
	assert.True(t, e.Offline)
	assert.Equal(t, 8, e.Concurrency)
	assert.Equal(t, time.Hour, e.CacheTTL)
	assert.Equal(t, filepath.Join("/xdg", "relaxicons"), e.CacheDirectory())
	assert.True(t, e.ColorDisabled())

	e, err = LoadEnvFrom(map[string]string{"RELAXICONS_CACHE_DIR": "/c", "XDG_CACHE_HOME": "/xdg"})
	require.NoError(t, err)
	assert.Equal(t, "/c", e.CacheDirectory())
}

func TestEnvInvalid(t *testing.T) {
	for name, vars := range map[string]map[string]string{
		"concurrency":  {"RELAXICONS_CONCURRENCY": "0"},
		"not a number": {"RELAXICONS_CONCURRENCY": "many"},
		"api base":     {"RELAXICONS_API_BASE": "ftp://x"},
		"offline":      {"RELAXICONS_OFFLINE": "sometimes"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := LoadEnvFrom(vars)
			assert.True(t, errors.Is(err, errors.ErrCodeConfigInvalid), "err = %v", err)
		})
	}
}
